// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries the failed operation, the resource involved and
// remediation hints. Issue is the registry of Markdown guidance pages, keyed
// by the bounded enumeration Id; an ActionableError can link to one with
// WithIssue so the CLI can render the matching page. Titles and bodies are
// English source strings passed through the active translation catalog.
package issue
