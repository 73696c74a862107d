// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the hostkit CLI, a small front end over the
// foundation packages: build mode inspection, the enumeration and size
// tables, message translation and the issue catalog.
package cmd
