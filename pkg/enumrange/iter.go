// SPDX-License-Identifier: MPL-2.0

package enumrange

import (
	"fmt"
	"iter"
)

// All yields every valid value of T in ascending order. It is the sentinel
// loop packaged for range-over-func.
func All[T Bounded[T]]() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := First[T](); NotEqual(v, End); Inc(&v) {
			if !yield(v) {
				return
			}
		}
	}
}

// Values returns every valid value of T in ascending order.
func Values[T Bounded[T]]() []T {
	values := make([]T, 0, Len[T]())
	for v := range All[T]() {
		values = append(values, v)
	}
	return values
}

// Display returns v's display text for valid values and "Type(n)" for
// out-of-range ones, whose String result is unspecified.
func Display[T Named[T]](v T) string {
	if !IsValid(v) {
		return fmt.Sprintf("%s(%d)", typeName[T](), int64(v))
	}
	return v.String()
}

// Parse returns the valid value of T whose display text is s.
func Parse[T Named[T]](s string) (T, error) {
	known := make([]string, 0, Len[T]())
	for v := range All[T]() {
		text := v.String()
		if text == s {
			return v, nil
		}
		known = append(known, text)
	}
	var zero T
	return zero, &UnknownValueError{Type: typeName[T](), Text: s, Known: known}
}
