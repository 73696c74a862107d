// SPDX-License-Identifier: MPL-2.0

package buildmode

import (
	"errors"
	"reflect"
)

// TryDebug runs body. In Debug builds, a panic from body whose value
// matches E is recovered and passed to catch. In other builds body runs
// inline, catch is never called and every panic propagates.
func TryDebug[E any](body func(), catch func(E)) {
	if !DebugEnabled {
		body()
		return
	}
	try(body, catch)
}

// TryDevel is TryDebug gated on Devel and Debug builds.
func TryDevel[E any](body func(), catch func(E)) {
	if !DevelEnabled {
		body()
		return
	}
	try(body, catch)
}

// Caught runs body with panic interception always active and returns the
// recovered value when it matches E. Non-matching panics propagate.
func Caught[E any](body func()) (caught E, ok bool) {
	try(body, func(e E) {
		caught, ok = e, true
	})
	return caught, ok
}

func try[E any](body func(), catch func(E)) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		e, ok := match[E](r)
		if !ok {
			panic(r)
		}
		catch(e)
	}()
	body()
}

// match reports whether a recovered panic value r satisfies E, either
// directly or, when r is an error and E is an error type, anywhere in r's
// chain.
func match[E any](r any) (E, bool) {
	if e, ok := r.(E); ok {
		return e, true
	}
	var target E
	err, isErr := r.(error)
	if !isErr || !reflect.TypeFor[E]().Implements(errorType) {
		return target, false
	}
	if errors.As(err, &target) {
		return target, true
	}
	return target, false
}

var errorType = reflect.TypeFor[error]()
