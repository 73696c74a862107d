// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that touch process
// state: environment variables and the user directories the config loader
// resolves. Every helper restores the original state when the test ends.
package testutil
