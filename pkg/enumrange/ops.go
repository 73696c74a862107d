// SPDX-License-Identifier: MPL-2.0

package enumrange

import (
	"github.com/hostkit/hostkit/pkg/assert"
)

// Inc advances *v to the next value and returns the new value. There is no
// upper-bound check: advancing past Count yields an out-of-range value.
func Inc[T Bounded[T]](v *T) T {
	*v++
	return *v
}

// PostInc advances *v to the next value and returns the prior value.
func PostInc[T Bounded[T]](v *T) T {
	prev := *v
	*v++
	return prev
}

// Dec moves *v to the previous value and returns the new value. There is no
// lower-bound check.
func Dec[T Bounded[T]](v *T) T {
	*v--
	return *v
}

// PostDec moves *v to the previous value and returns the prior value.
func PostDec[T Bounded[T]](v *T) T {
	prev := *v
	*v--
	return prev
}

// Less reports whether v is below T's Count boundary.
func Less[T Bounded[T]](v T, _ EndMarker) bool {
	return v < Count[T]()
}

// Equal reports whether v sits exactly on T's Count boundary.
func Equal[T Bounded[T]](v T, _ EndMarker) bool {
	return v == Count[T]()
}

// NotEqual reports whether v differs from T's Count boundary.
func NotEqual[T Bounded[T]](v T, _ EndMarker) bool {
	return v != Count[T]()
}

// IsValid reports whether First <= v < Count.
func IsValid[T Bounded[T]](v T) bool {
	first, count := bounds[T]()
	return v >= first && v < count
}

// AssertValid reports an assertion failure when v is outside [First, Count).
// Range violations are programmer errors, never returned errors.
func AssertValid[T Bounded[T]](v T) {
	if IsValid(v) {
		return
	}
	first, count := bounds[T]()
	assert.ThatSkip(1, false, outOfRangeMessage(v, first, count))
}
