// SPDX-License-Identifier: MPL-2.0

// Package assert is the fatal-assertion backend shared by every hostkit
// package. A failed assertion signals a programmer error (a broken contract
// between caller and callee), never a recoverable runtime condition.
//
// Failures are routed to a single process-wide Handler. The default,
// PanicHandler, logs the failure and panics with the *Failure value so the
// caller-visible abort carries the failed condition's description and its
// call site. Hosts that prefer to keep running can install LogHandler:
//
//	restore := assert.SetHandler(assert.LogHandler(logger))
//	defer restore()
//
// This package is a leaf dependency: it must not import other hostkit
// packages.
package assert
