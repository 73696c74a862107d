// SPDX-License-Identifier: MPL-2.0

package buildmode

import (
	"github.com/hostkit/hostkit/pkg/enumrange"
)

const (
	// Release is the optimized production build; both exception switches
	// are compiled out.
	Release Mode = iota
	// Devel is a developer build; TryDevel intercepts panics.
	Devel
	// Debug is a full debug build; TryDebug and TryDevel intercept panics.
	Debug
	// ModeCount is one past the last build mode.
	ModeCount

	// ModeFirst is the first build mode.
	ModeFirst = Release
)

const (
	// DebugEnabled reports whether TryDebug intercepts panics in this binary.
	DebugEnabled = Current == Debug
	// DevelEnabled reports whether TryDevel intercepts panics in this binary.
	DevelEnabled = Current >= Devel
)

// Mode is a build configuration. It is a bounded enumeration over
// [ModeFirst, ModeCount).
type Mode uint8

// Bounds reports the enumeration boundaries of Mode.
func (Mode) Bounds() (first, count Mode) { return ModeFirst, ModeCount }

// String returns the lower-case name of the mode.
func (m Mode) String() string {
	switch m {
	case Release:
		return "release"
	case Devel:
		return "devel"
	case Debug:
		return "debug"
	default:
		return "unknown"
	}
}

// Validate returns an error wrapping enumrange.ErrOutOfRange when m is not
// a defined build mode.
func (m Mode) Validate() error {
	return enumrange.Validate(m)
}

// ParseMode returns the Mode named s ("release", "devel" or "debug").
func ParseMode(s string) (Mode, error) {
	return enumrange.Parse[Mode](s)
}

// Modes returns every build mode in ascending order.
func Modes() []Mode {
	return enumrange.Values[Mode]()
}

// Tag returns the build tag that selects m, or "" for Release.
func (m Mode) Tag() string {
	switch m {
	case Devel:
		return TagDevel
	case Debug:
		return TagDebug
	default:
		return ""
	}
}

const (
	// TagDevel is the build tag selecting Devel.
	TagDevel = "hostkit_devel"
	// TagDebug is the build tag selecting Debug.
	TagDebug = "hostkit_debug"
)
