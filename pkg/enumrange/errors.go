// SPDX-License-Identifier: MPL-2.0

package enumrange

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrOutOfRange is the sentinel error wrapped by OutOfRangeError.
	ErrOutOfRange = errors.New("enumeration value out of range")
	// ErrUnknownValue is the sentinel error wrapped by UnknownValueError.
	ErrUnknownValue = errors.New("unknown enumeration value")
)

type (
	// OutOfRangeError is returned by Validate when a value lies outside
	// [First, Count).
	OutOfRangeError struct {
		Type  string
		Value int64
		First int64
		Count int64
	}

	// UnknownValueError is returned by Parse when no valid value displays
	// as the given text.
	UnknownValueError struct {
		Type  string
		Text  string
		Known []string
	}
)

// Error implements the error interface.
func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s value %d out of range [%d, %d)", e.Type, e.Value, e.First, e.Count)
}

// Unwrap returns ErrOutOfRange for errors.Is() compatibility.
func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }

// Error implements the error interface.
func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("unknown %s %q (valid: %s)", e.Type, e.Text, strings.Join(e.Known, ", "))
}

// Unwrap returns ErrUnknownValue for errors.Is() compatibility.
func (e *UnknownValueError) Unwrap() error { return ErrUnknownValue }

// Validate returns an *OutOfRangeError when v is outside [First, Count).
// Use it where the value comes from outside the program; use AssertValid
// for internal invariants.
func Validate[T Bounded[T]](v T) error {
	if IsValid(v) {
		return nil
	}
	first, count := bounds[T]()
	return &OutOfRangeError{
		Type:  typeName[T](),
		Value: int64(v),
		First: int64(first),
		Count: int64(count),
	}
}

func outOfRangeMessage[T Bounded[T]](v, first, count T) string {
	return fmt.Sprintf("%s value %d out of range [%d, %d)", typeName[T](), int64(v), int64(first), int64(count))
}

// typeName returns the unqualified type name of T ("Color", not "pkg.Color").
func typeName[T any]() string {
	var zero T
	name := fmt.Sprintf("%T", zero)
	if idx := strings.LastIndexByte(name, '.'); idx >= 0 {
		return name[idx+1:]
	}
	return name
}
