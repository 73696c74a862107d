// SPDX-License-Identifier: MPL-2.0

// enumlint checks bounded enumerations: constant Bounds, no gaps in
// [first, count), no constants outside the range and a String display hook.
//
// Usage:
//
//	enumlint [-baseline=baseline.toml] [-json] ./...
//	enumlint -update-baseline=baseline.toml ./...
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"slices"
	"strings"

	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/hostkit/hostkit/tools/enumlint/enumlint"
)

func main() {
	// singlechecker.Main exits the process, so baseline generation is
	// intercepted before it parses flags.
	if outputPath := extractUpdateBaselinePath(os.Args[1:]); outputPath != "" {
		if err := generateBaseline(outputPath, os.Args[1:]); err != nil {
			fmt.Fprintf(os.Stderr, "enumlint: update-baseline: %v\n", err)
			os.Exit(1)
		}
		return
	}

	singlechecker.Main(enumlint.Analyzer)
}

// extractUpdateBaselinePath returns the value of -update-baseline=PATH, or
// "" when the flag is absent.
func extractUpdateBaselinePath(args []string) string {
	for _, arg := range args {
		trimmed := strings.TrimLeft(arg, "-")
		if path, ok := strings.CutPrefix(trimmed, "update-baseline="); ok {
			return path
		}
	}
	return ""
}

// generateBaseline reruns the analyzer with -json and writes every finding
// to outputPath.
func generateBaseline(outputPath string, originalArgs []string) error {
	selfPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolving executable path: %w", err)
	}

	cmd := exec.Command(selfPath, buildSubprocessArgs(originalArgs)...)
	cmd.Stderr = os.Stderr
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := tolerateAnalyzerExit(cmd.Run(), stdout.Len()); err != nil {
		return err
	}

	findings, err := parseAnalysisJSON(stdout.Bytes())
	if err != nil {
		return fmt.Errorf("parsing analysis output: %w", err)
	}
	if err := enumlint.WriteBaseline(outputPath, findings); err != nil {
		return fmt.Errorf("writing baseline: %w", err)
	}

	total := 0
	for _, entries := range findings {
		total += len(entries)
	}
	fmt.Fprintf(os.Stderr, "Baseline written: %s (%d findings)\n", outputPath, total)
	return nil
}

// tolerateAnalyzerExit accepts the non-zero exit singlechecker uses when it
// found diagnostics, as long as it produced output.
func tolerateAnalyzerExit(err error, stdoutLen int) error {
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && stdoutLen > 0 {
		return nil
	}
	return fmt.Errorf("running analyzer: %w", err)
}

// buildSubprocessArgs drops -update-baseline and -baseline, and ensures
// -json is present.
func buildSubprocessArgs(args []string) []string {
	result := make([]string, 0, len(args)+1)
	hasJSON := false
	for _, arg := range args {
		trimmed := strings.TrimLeft(arg, "-")
		if strings.HasPrefix(trimmed, "update-baseline") || strings.HasPrefix(trimmed, "baseline=") {
			continue
		}
		if trimmed == "json" {
			hasJSON = true
		}
		result = append(result, arg)
	}
	if !hasJSON {
		result = slices.Insert(result, 0, "-json")
	}
	return result
}

// analysisResult is the go/analysis -json shape: package path to analyzer
// name to diagnostics.
type analysisResult map[string]map[string][]analysisDiagnostic

type analysisDiagnostic struct {
	Posn     string `json:"posn"`
	Message  string `json:"message"`
	Category string `json:"category"`
	URL      string `json:"url"`
}

// parseAnalysisJSON decodes the concatenated per-package JSON objects and
// groups enumlint findings by category, deduplicating test variants.
func parseAnalysisJSON(data []byte) (map[string][]enumlint.BaselineFinding, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	seen := make(map[string]map[string]enumlint.BaselineFinding)

	for decoder.More() {
		var result analysisResult
		if err := decoder.Decode(&result); err != nil {
			return nil, fmt.Errorf("decoding JSON object: %w", err)
		}
		for _, analyzers := range result {
			for _, d := range analyzers[enumlint.Analyzer.Name] {
				if d.Category == "" || d.Message == "" {
					continue
				}
				if !enumlint.IsCategory(d.Category) {
					return nil, fmt.Errorf("unknown diagnostic category %q", d.Category)
				}
				id := enumlint.FindingIDFromDiagnosticURL(d.URL)
				if id == "" {
					id = enumlint.FallbackFindingID(d.Category, d.Message)
				}
				if seen[d.Category] == nil {
					seen[d.Category] = make(map[string]enumlint.BaselineFinding)
				}
				seen[d.Category][id] = enumlint.BaselineFinding{ID: id, Message: d.Message}
			}
		}
	}

	findings := make(map[string][]enumlint.BaselineFinding, len(seen))
	for category, entries := range seen {
		list := make([]enumlint.BaselineFinding, 0, len(entries))
		for _, e := range entries {
			list = append(list, e)
		}
		findings[category] = list
	}
	return findings, nil
}
