// SPDX-License-Identifier: MPL-2.0

// Package bytesize provides human-readable constants for common power-of-two
// sizes, plus formatting and parsing helpers for logs and config values.
package bytesize

import (
	"fmt"

	units "github.com/docker/go-units"
)

// Sizes up to 256KB, sized for buffers and pages.
const (
	Size1KB   int64 = units.KiB
	Size4KB         = Size1KB * 4
	Size16KB        = Size1KB * 16
	Size32KB        = Size1KB * 32
	Size64KB        = Size1KB * 64
	Size128KB       = Size1KB * 128
	Size256KB       = Size1KB * 256
)

// Sizes from 1MB, sized for allocations and files.
const (
	Size1MB   int64 = units.MiB
	Size8MB         = Size1MB * 8
	Size16MB        = Size1MB * 16
	Size32MB        = Size1MB * 32
	Size64MB        = Size1MB * 64
	Size256MB       = Size1MB * 256
	Size1GB         = Size1MB * 1024
	Size4GB         = Size1GB * 4
)

// Named pairs a size constant with its identifier.
type Named struct {
	Name  string
	Bytes int64
}

// All lists every size constant in ascending order.
func All() []Named {
	return []Named{
		{"Size1KB", Size1KB},
		{"Size4KB", Size4KB},
		{"Size16KB", Size16KB},
		{"Size32KB", Size32KB},
		{"Size64KB", Size64KB},
		{"Size128KB", Size128KB},
		{"Size256KB", Size256KB},
		{"Size1MB", Size1MB},
		{"Size8MB", Size8MB},
		{"Size16MB", Size16MB},
		{"Size32MB", Size32MB},
		{"Size64MB", Size64MB},
		{"Size256MB", Size256MB},
		{"Size1GB", Size1GB},
		{"Size4GB", Size4GB},
	}
}

// Format renders n with binary units, e.g. 4MiB.
func Format(n int64) string {
	return units.BytesSize(float64(n))
}

// Parse reads a human-readable binary size such as "64k", "16MiB" or "1g".
func Parse(s string) (int64, error) {
	n, err := units.RAMInBytes(s)
	if err != nil {
		return 0, fmt.Errorf("parse size %q: %w", s, err)
	}
	return n, nil
}
