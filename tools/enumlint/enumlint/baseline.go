// SPDX-License-Identifier: MPL-2.0

package enumlint

import (
	"cmp"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type (
	// Baseline holds accepted findings keyed by category. Findings present
	// in the baseline are not reported, so only regressions surface.
	Baseline struct {
		ids map[string]map[string]bool
	}

	// BaselineFinding is one accepted finding. Message is kept for readers;
	// matching uses ID only.
	BaselineFinding struct {
		ID      string `toml:"id"`
		Message string `toml:"message"`
	}

	// BaselineCategory holds the accepted findings of one category.
	BaselineCategory struct {
		Entries []BaselineFinding `toml:"entries"`
	}
)

// LoadBaseline reads a baseline TOML file. An empty path or a missing file
// yields an empty baseline.
func LoadBaseline(path string) (*Baseline, error) {
	b := &Baseline{ids: make(map[string]map[string]bool)}
	if path == "" {
		return b, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return b, nil
		}
		return nil, fmt.Errorf("reading baseline: %w", err)
	}

	var raw map[string]BaselineCategory
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing baseline TOML: %w", err)
	}

	for category, entries := range raw {
		if !IsCategory(category) {
			return nil, fmt.Errorf("baseline %s: unknown category %q", path, category)
		}
		set := make(map[string]bool, len(entries.Entries))
		for _, e := range entries.Entries {
			if e.ID != "" {
				set[e.ID] = true
			}
		}
		b.ids[category] = set
	}
	return b, nil
}

// Contains reports whether the finding is accepted by the baseline.
func (b *Baseline) Contains(category, findingID string) bool {
	if b == nil || findingID == "" {
		return false
	}
	return b.ids[category][findingID]
}

// Count returns the number of accepted findings.
func (b *Baseline) Count() int {
	if b == nil {
		return 0
	}
	total := 0
	for _, set := range b.ids {
		total += len(set)
	}
	return total
}

// WriteBaseline writes findings grouped by category. Categories follow the
// registry order and entries are sorted by ID; empty categories are omitted.
func WriteBaseline(path string, findings map[string][]BaselineFinding) error {
	var sb strings.Builder

	total := 0
	for _, entries := range findings {
		total += len(entries)
	}

	sb.WriteString("# SPDX-License-Identifier: MPL-2.0\n")
	sb.WriteString("#\n")
	sb.WriteString("# enumlint baseline: accepted bounded-enumeration findings\n")
	fmt.Fprintf(&sb, "# Generated: %s\n", time.Now().UTC().Format("2006-01-02"))
	fmt.Fprintf(&sb, "# Total: %d findings\n", total)

	for _, category := range Categories() {
		entries := slices.Clone(findings[category])
		if len(entries) == 0 {
			continue
		}
		slices.SortFunc(entries, func(a, b BaselineFinding) int {
			return cmp.Compare(a.ID, b.ID)
		})
		entries = slices.CompactFunc(entries, func(a, b BaselineFinding) bool {
			return a.ID == b.ID
		})

		fmt.Fprintf(&sb, "\n[%s]\n", category)
		sb.WriteString("entries = [\n")
		for _, e := range entries {
			fmt.Fprintf(&sb, "    { id = %s, message = %s },\n", strconv.Quote(e.ID), strconv.Quote(e.Message))
		}
		sb.WriteString("]\n")
	}

	return os.WriteFile(path, []byte(sb.String()), 0o644)
}
