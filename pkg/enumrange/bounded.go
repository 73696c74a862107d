// SPDX-License-Identifier: MPL-2.0

package enumrange

import (
	"golang.org/x/exp/constraints"
)

type (
	// Bounded is the structural contract of a bounded enumeration: an
	// integer-backed type reporting its First and Count boundaries.
	// Bounds must not depend on the receiver's value; it is always called
	// on the zero value.
	Bounded[T any] interface {
		constraints.Integer
		Bounds() (first, count T)
	}

	// Named is a Bounded enumeration that supplies its own display text.
	Named[T any] interface {
		Bounded[T]
		String() string
	}

	// EndMarker is the type of the End sentinel.
	EndMarker struct{}
)

// End is the one-past-the-last sentinel shared by every bounded
// enumeration. It is only meaningful as the right-hand operand of Less,
// Equal and NotEqual, which compare against the enumeration's own Count.
var End EndMarker

// String returns "End".
func (EndMarker) String() string { return "End" }

// bounds reads the boundaries from T's zero value.
func bounds[T Bounded[T]]() (first, count T) {
	var zero T
	return zero.Bounds()
}

// First returns the first valid value of T.
func First[T Bounded[T]]() T {
	first, _ := bounds[T]()
	return first
}

// Count returns the one-past-the-last boundary of T.
func Count[T Bounded[T]]() T {
	_, count := bounds[T]()
	return count
}

// Len returns the number of valid values of T (Count - First).
func Len[T Bounded[T]]() int {
	first, count := bounds[T]()
	if count <= first {
		return 0
	}
	return int(count - first)
}
