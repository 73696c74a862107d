// SPDX-License-Identifier: MPL-2.0

// Package nocopy declares types that must not be copied after first use.
//
// Go cannot reject a copy at compile time, so the declaration is enforced
// at vet time: embed NoCopy as the first field and the copylocks pass of
// `go vet` reports every by-value copy (assignment, argument, return,
// range variable, composite literal), naming the containing type:
//
//	type Session struct {
//		_ nocopy.NoCopy
//		...
//	}
//
//	s2 := *s // vet: assignment copies lock value to s2: Session contains nocopy.NoCopy
//
// NoCopy occupies no space and its methods do nothing.
package nocopy

// NoCopy is a zero-size marker recognized by go vet's copylocks check.
type NoCopy struct{}

// Lock is a no-op used by the copylocks checker.
func (*NoCopy) Lock() {}

// Unlock is a no-op used by the copylocks checker.
func (*NoCopy) Unlock() {}
