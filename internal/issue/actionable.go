// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/hostkit/hostkit/pkg/i18n"
)

type (
	// ActionableError reports a failed operation together with the resource
	// involved, remediation hints and, optionally, a link to an Issue page.
	//
	//	return issue.NewErrorContext().
	//		WithOperation("load catalog").
	//		WithResource(path).
	//		WithSuggestion("Check the file's locale field").
	//		WithIssue(issue.CatalogLoadFailedId).
	//		Wrap(err).
	//		BuildError()
	ActionableError struct {
		// Operation is a verb phrase: "load catalog", "select locale".
		Operation string
		// Resource names the file, locale or value involved. Optional.
		Resource string
		// Suggestions are English hints, translated when formatted.
		Suggestions []string
		// Cause is the underlying error.
		Cause error
		// IssueId links to a registry page; zero means no link.
		IssueId Id
	}

	// ErrorContext accumulates ActionableError fields. A context can be
	// kept and reused: each Build snapshots the current state.
	ErrorContext struct {
		err ActionableError
	}
)

// NewErrorContext returns an empty builder.
func NewErrorContext() *ErrorContext {
	return &ErrorContext{}
}

// Error renders "failed to <operation>[: <resource>][: <cause>]" in English,
// so messages stay stable for logs and matching.
func (e *ActionableError) Error() string {
	parts := []string{"failed to " + e.Operation}
	if e.Resource != "" {
		parts = append(parts, e.Resource)
	}
	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}
	return strings.Join(parts, ": ")
}

// Unwrap returns the cause for errors.Is and errors.As.
func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// Format returns Error followed by the bulleted suggestions. When verbose,
// the numbered cause chain is appended. Suggestions and headings go through
// the active translation catalog.
func (e *ActionableError) Format(verbose bool) string {
	var sb strings.Builder
	sb.WriteString(e.Error())

	if len(e.Suggestions) > 0 {
		sb.WriteByte('\n')
		for _, s := range e.Suggestions {
			sb.WriteString("\n  • " + i18n.ExpandMessage(s))
		}
	}

	if verbose && e.Cause != nil {
		sb.WriteString("\n\n" + i18n.ExpandMessage("Error chain:"))
		for depth, err := 1, e.Cause; err != nil; depth, err = depth+1, errors.Unwrap(err) {
			fmt.Fprintf(&sb, "\n  %d. %s", depth, err)
		}
	}
	return sb.String()
}

// Issue returns the linked registry page, or nil.
func (e *ActionableError) Issue() *Issue {
	if e.IssueId == 0 {
		return nil
	}
	return Get(e.IssueId)
}

// HasSuggestions reports whether any remediation hint is attached.
func (e *ActionableError) HasSuggestions() bool {
	return len(e.Suggestions) > 0
}

// Linked returns the issue linked by the outermost ActionableError in err's
// chain that carries one.
func Linked(err error) (Id, bool) {
	for err != nil {
		var ae *ActionableError
		if !errors.As(err, &ae) {
			return 0, false
		}
		if ae.IssueId != 0 {
			return ae.IssueId, true
		}
		err = ae.Cause
	}
	return 0, false
}

// WithOperation sets the failed operation. Required.
func (c *ErrorContext) WithOperation(op string) *ErrorContext {
	c.err.Operation = op
	return c
}

// WithResource sets the resource involved.
func (c *ErrorContext) WithResource(res string) *ErrorContext {
	c.err.Resource = res
	return c
}

// WithSuggestion appends one hint.
func (c *ErrorContext) WithSuggestion(s string) *ErrorContext {
	c.err.Suggestions = append(c.err.Suggestions, s)
	return c
}

// WithSuggestions appends several hints.
func (c *ErrorContext) WithSuggestions(s ...string) *ErrorContext {
	c.err.Suggestions = append(c.err.Suggestions, s...)
	return c
}

// WithIssue links the error to a registry page.
func (c *ErrorContext) WithIssue(id Id) *ErrorContext {
	c.err.IssueId = id
	return c
}

// Wrap sets the cause.
func (c *ErrorContext) Wrap(err error) *ErrorContext {
	c.err.Cause = err
	return c
}

// Build snapshots the context, or returns nil when no operation is set.
func (c *ErrorContext) Build() *ActionableError {
	if c.err.Operation == "" {
		return nil
	}
	ae := c.err
	ae.Suggestions = slices.Clone(c.err.Suggestions)
	return &ae
}

// BuildError is Build typed as error, keeping a missing operation a nil
// interface rather than a typed nil.
func (c *ErrorContext) BuildError() error {
	if ae := c.Build(); ae != nil {
		return ae
	}
	return nil
}
