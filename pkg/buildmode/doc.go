// SPDX-License-Identifier: MPL-2.0

// Package buildmode exposes the compile-time build mode and the exception
// switch built on it.
//
// The mode is fixed per binary by build tags:
//
//	go build ./...                         # Release
//	go build -tags hostkit_devel ./...     # Devel
//	go build -tags hostkit_debug ./...     # Debug (wins over hostkit_devel)
//
// Current, DebugEnabled and DevelEnabled are constants, so every branch on
// them is resolved by the compiler and the inactive path is eliminated.
//
// TryDebug and TryDevel let a call site keep a single source form for
// defensive panic interception that only exists in development builds:
//
//	buildmode.TryDebug(func() {
//		applyPatch(p)
//	}, func(err *PatchError) {
//		logger.Error("patch rejected", "err", err)
//	})
//
// With the switch active, a panic from the body whose value matches the
// handler's parameter type is intercepted and passed to the handler; any
// other panic keeps propagating. With the switch inactive, the body runs
// inline and the handler is never called, so a handler must not carry side
// effects that release builds depend on.
package buildmode
