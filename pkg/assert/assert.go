// SPDX-License-Identifier: MPL-2.0

package assert

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

// ErrAssertion is the sentinel error wrapped by every *Failure.
var ErrAssertion = errors.New("assertion failed")

type (
	// Failure describes a failed assertion and where it happened.
	Failure struct {
		// Description is the failed condition as supplied by the caller.
		Description string
		// File and Line locate the assertion call site.
		File string
		Line int
		// Func is the fully qualified name of the asserting function.
		Func string
	}

	// Handler receives every failed assertion. A Handler that returns lets
	// the asserting code continue past the failed check.
	Handler func(*Failure)
)

var (
	handler atomic.Pointer[Handler]
	logger  atomic.Pointer[log.Logger]
)

func init() {
	h := Handler(PanicHandler)
	handler.Store(&h)
	logger.Store(log.NewWithOptions(os.Stderr, log.Options{Prefix: "assert"}))
}

// Error implements the error interface.
func (f *Failure) Error() string {
	if f.File == "" {
		return fmt.Sprintf("assertion failed: %s", f.Description)
	}
	return fmt.Sprintf("assertion failed: %s (%s:%d)", f.Description, f.File, f.Line)
}

// Unwrap returns ErrAssertion for errors.Is() compatibility.
func (f *Failure) Unwrap() error { return ErrAssertion }

// That reports a failure to the current Handler when cond is false.
func That(cond bool, description string) {
	if cond {
		return
	}
	report(newFailure(description, 2))
}

// Thatf is That with a formatted description. The arguments are only
// formatted when the assertion fails.
func Thatf(cond bool, format string, args ...any) {
	if cond {
		return
	}
	report(newFailure(fmt.Sprintf(format, args...), 2))
}

// ThatSkip is That for assertion helpers: the recorded call site is skip
// frames above the function calling ThatSkip.
func ThatSkip(skip int, cond bool, description string) {
	if cond {
		return
	}
	report(newFailure(description, 2+skip))
}

// Fail reports an unconditional failure, for code paths that must be
// unreachable.
func Fail(description string) {
	report(newFailure(description, 2))
}

// SetHandler installs h as the process-wide failure handler and returns a
// function restoring the previous one. A nil h restores PanicHandler.
func SetHandler(h Handler) (restore func()) {
	if h == nil {
		h = PanicHandler
	}
	prev := handler.Swap(&h)
	return func() { handler.Store(prev) }
}

// SetLogger replaces the logger used by PanicHandler.
func SetLogger(l *log.Logger) {
	if l == nil {
		return
	}
	logger.Store(l)
}

// Logger returns the logger used by PanicHandler.
func Logger() *log.Logger {
	return logger.Load()
}

// PanicHandler logs f at error level and panics with it.
func PanicHandler(f *Failure) {
	logFailure(logger.Load(), f)
	panic(f)
}

// LogHandler returns a Handler that only logs failures to l and lets the
// caller continue. A nil l uses the package logger.
func LogHandler(l *log.Logger) Handler {
	return func(f *Failure) {
		if l == nil {
			logFailure(logger.Load(), f)
			return
		}
		logFailure(l, f)
	}
}

func report(f *Failure) {
	(*handler.Load())(f)
}

func logFailure(l *log.Logger, f *Failure) {
	l.Error("assertion failed",
		"condition", f.Description,
		"at", fmt.Sprintf("%s:%d", f.File, f.Line),
		"func", f.Func)
}

// newFailure captures the call site skip frames above its caller.
func newFailure(description string, skip int) *Failure {
	f := &Failure{Description: description}
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return f
	}
	f.File = trimPath(file)
	f.Line = line
	if fn := runtime.FuncForPC(pc); fn != nil {
		f.Func = fn.Name()
	}
	return f
}

// trimPath keeps the last two path elements, which is enough to locate a
// file inside a module without leaking build-machine paths.
func trimPath(file string) string {
	idx := strings.LastIndexByte(file, '/')
	if idx < 0 {
		return file
	}
	if prev := strings.LastIndexByte(file[:idx], '/'); prev >= 0 {
		return file[prev+1:]
	}
	return file
}
