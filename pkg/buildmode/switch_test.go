// SPDX-License-Identifier: MPL-2.0

package buildmode

import (
	"errors"
	"fmt"
	"testing"
)

type patchError struct {
	offset int
}

func (e *patchError) Error() string { return fmt.Sprintf("bad patch at %d", e.offset) }

type timeoutError struct{}

func (timeoutError) Error() string { return "timed out" }
func (timeoutError) Timeout() bool { return true }

type timeouter interface {
	error
	Timeout() bool
}

// panicsWith runs fn and returns the value it panicked with, or nil.
func panicsWith(fn func()) (r any) {
	defer func() { r = recover() }()
	fn()
	return nil
}

func TestCaught_MatchingValue(t *testing.T) {
	t.Parallel()

	got, ok := Caught[string](func() { panic("boom") })
	if !ok || got != "boom" {
		t.Errorf("Caught[string] = %q, %v; want boom, true", got, ok)
	}
}

func TestCaught_NoPanic(t *testing.T) {
	t.Parallel()

	ran := false
	got, ok := Caught[error](func() { ran = true })
	if !ran {
		t.Error("body should run")
	}
	if ok || got != nil {
		t.Errorf("Caught without panic = %v, %v; want nil, false", got, ok)
	}
}

func TestCaught_WrappedErrorMatchesThroughChain(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("applying: %w", &patchError{offset: 12})
	got, ok := Caught[*patchError](func() { panic(wrapped) })
	if !ok {
		t.Fatal("wrapped *patchError should be caught")
	}
	if got.offset != 12 {
		t.Errorf("offset = %d, want 12", got.offset)
	}
}

func TestCaught_WrappedErrorMatchesInterface(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("dialing: %w", timeoutError{})
	got, ok := Caught[timeouter](func() { panic(wrapped) })
	if !ok {
		t.Fatal("a wrapped error satisfying timeouter should be caught")
	}
	if !got.Timeout() {
		t.Error("Timeout() = false, want true")
	}
}

func TestCaught_NonMatchingPanicPropagates(t *testing.T) {
	t.Parallel()

	r := panicsWith(func() {
		Caught[*patchError](func() { panic("not an error") })
	})
	if r != "not an error" {
		t.Errorf("propagated panic = %v, want the original value", r)
	}

	sentinel := errors.New("other")
	r = panicsWith(func() {
		Caught[*patchError](func() { panic(sentinel) })
	})
	if r != sentinel {
		t.Errorf("propagated panic = %v, want %v", r, sentinel)
	}
}

func TestMatch(t *testing.T) {
	t.Parallel()

	if _, ok := match[int]("text"); ok {
		t.Error("string should not match int")
	}
	if _, ok := match[int](errors.New("e")); ok {
		t.Error("an error should not match a non-error type")
	}
	if v, ok := match[int](7); !ok || v != 7 {
		t.Errorf("match[int](7) = %v, %v", v, ok)
	}
	if v, ok := match[error](&patchError{offset: 1}); !ok || v == nil {
		t.Errorf("match[error] should accept any error, got %v, %v", v, ok)
	}
	if v, ok := match[timeouter](fmt.Errorf("w: %w", timeoutError{})); !ok || v == nil {
		t.Errorf("match[timeouter] should search the wrapped chain, got %v, %v", v, ok)
	}
	if v, ok := match[any](struct{}{}); !ok || v == nil {
		t.Errorf("match[any] should accept any value, got %v, %v", v, ok)
	}
}

func TestSwitchConstantsFollowCurrent(t *testing.T) {
	t.Parallel()

	if DebugEnabled != (Current == Debug) {
		t.Errorf("DebugEnabled = %v with Current = %v", DebugEnabled, Current)
	}
	if DevelEnabled != (Current == Devel || Current == Debug) {
		t.Errorf("DevelEnabled = %v with Current = %v", DevelEnabled, Current)
	}
	if DebugEnabled && !DevelEnabled {
		t.Error("Debug builds must also enable the devel switch")
	}
}

// assertIntercepts checks that try intercepts a matching panic and that the
// body and handler both ran.
func assertIntercepts(t *testing.T, name string, try func(body func(), catch func(*patchError))) {
	t.Helper()

	var bodyRan, caught bool
	r := panicsWith(func() {
		try(func() {
			bodyRan = true
			panic(&patchError{offset: 3})
		}, func(err *patchError) {
			caught = err.offset == 3
		})
	})
	if !bodyRan {
		t.Errorf("%s: body should run", name)
	}
	if r != nil {
		t.Errorf("%s: panic should be intercepted, got %v", name, r)
	}
	if !caught {
		t.Errorf("%s: handler should observe the panic", name)
	}
}

// assertPassesThrough checks that try runs the body inline, never calls the
// handler, and lets the panic propagate.
func assertPassesThrough(t *testing.T, name string, try func(body func(), catch func(*patchError))) {
	t.Helper()

	var bodyRan, caught bool
	thrown := &patchError{offset: 4}
	r := panicsWith(func() {
		try(func() {
			bodyRan = true
			panic(thrown)
		}, func(*patchError) {
			caught = true
		})
	})
	if !bodyRan {
		t.Errorf("%s: body should run", name)
	}
	if r != thrown {
		t.Errorf("%s: panic should propagate unchanged, got %v", name, r)
	}
	if caught {
		t.Errorf("%s: handler must not run", name)
	}
}
