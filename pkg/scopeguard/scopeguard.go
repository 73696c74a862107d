// SPDX-License-Identifier: MPL-2.0

// Package scopeguard ties an "inside operation X" boolean to the lexical
// scope of the operation. Acquire sets the flag; the deferred Release clears
// it on every exit path, including early returns and propagating panics:
//
//	func (c *Cache) Flush() error {
//		defer scopeguard.Acquire(&c.flushing).Release()
//		...
//	}
//
// The guard references the flag; it never owns it. Flag access is a plain,
// non-atomic write: callers sharing a flag across goroutines must provide
// their own mutual exclusion. Only one guard may be live per flag, and a
// guard must not be copied (go vet enforces the latter).
package scopeguard

import (
	"github.com/hostkit/hostkit/pkg/assert"
	"github.com/hostkit/hostkit/pkg/nocopy"
)

// BoolGuard holds a flag true until Release.
type BoolGuard struct {
	_    nocopy.NoCopy
	flag *bool
}

// Acquire sets *flag to true and returns a guard that resets it to false on
// Release. A nil flag is a programmer error; if the assertion handler lets
// execution continue, the returned guard is inert.
func Acquire(flag *bool) *BoolGuard {
	if flag == nil {
		assert.ThatSkip(1, false, "scopeguard: Acquire called with a nil flag")
		return &BoolGuard{}
	}
	*flag = true
	return &BoolGuard{flag: flag}
}

// Release sets the guarded flag to false. Calling it more than once is
// harmless.
func (g *BoolGuard) Release() {
	if g.flag == nil {
		return
	}
	*g.flag = false
}

// Do holds *flag true for the duration of fn and returns fn's error. The
// flag is cleared even when fn panics.
func Do(flag *bool, fn func() error) error {
	defer Acquire(flag).Release()
	return fn()
}
