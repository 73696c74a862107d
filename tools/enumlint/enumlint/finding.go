// SPDX-License-Identifier: MPL-2.0

package enumlint

import (
	"crypto/sha256"
	"encoding/hex"
	"go/token"
	"strings"

	"golang.org/x/tools/go/analysis"
)

const (
	// findingIDVersion is part of the ID preimage. Bump only for
	// incompatible ID schema changes.
	findingIDVersion = "1"

	// DiagnosticURLPrefix prefixes analysis.Diagnostic.URL so -json output
	// carries the stable finding ID.
	DiagnosticURLPrefix = "enumlint://finding/"
)

// StableFindingID returns a deterministic ID for a finding. The ID depends
// on the category and the semantic parts, never on message wording.
func StableFindingID(category string, parts ...string) string {
	preimage := make([]string, 0, 2+len(parts))
	preimage = append(preimage, findingIDVersion, category)
	preimage = append(preimage, parts...)

	sum := sha256.Sum256([]byte(strings.Join(preimage, "\x1f")))
	return "enl" + findingIDVersion + "_" + hex.EncodeToString(sum[:])
}

// FallbackFindingID derives an ID for diagnostics emitted without a URL.
func FallbackFindingID(category, message string) string {
	return StableFindingID(category, "message", message)
}

// DiagnosticURLForFinding formats a finding ID for analysis.Diagnostic.URL.
func DiagnosticURLForFinding(id string) string {
	if id == "" {
		return ""
	}
	return DiagnosticURLPrefix + id
}

// FindingIDFromDiagnosticURL extracts the finding ID from a diagnostic URL,
// or returns "" when the URL is not an enumlint finding URL.
func FindingIDFromDiagnosticURL(raw string) string {
	if !strings.HasPrefix(raw, DiagnosticURLPrefix) {
		return ""
	}
	return strings.TrimPrefix(raw, DiagnosticURLPrefix)
}

// reporter emits findings that are not suppressed by the baseline.
type reporter struct {
	pass     *analysis.Pass
	baseline *Baseline
}

func (r reporter) report(pos token.Pos, category, findingID, message string) {
	if r.baseline.Contains(category, findingID) {
		return
	}
	r.pass.Report(analysis.Diagnostic{
		Pos:      pos,
		Category: category,
		Message:  message,
		URL:      DiagnosticURLForFinding(findingID),
	})
}
