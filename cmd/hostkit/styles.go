// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hostkit/hostkit/pkg/buildmode"
	"github.com/hostkit/hostkit/pkg/enumrange"
)

// Palette entries adapt to light and dark terminals.
var (
	colorAccent  = lipgloss.AdaptiveColor{Light: "#5B21B6", Dark: "#A78BFA"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"}
	colorGood    = lipgloss.AdaptiveColor{Light: "#047857", Dark: "#34D399"}
	colorBad     = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"}
	colorCaution = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}
	colorKey     = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"}
)

var (
	// TitleStyle renders section titles.
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	// SubtitleStyle renders placeholders and secondary text.
	SubtitleStyle = lipgloss.NewStyle().Foreground(colorMuted)
	// SuccessStyle renders values and passing checks.
	SuccessStyle = lipgloss.NewStyle().Foreground(colorGood)
	// ErrorStyle renders failing checks.
	ErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(colorBad)
	// WarningStyle renders warnings.
	WarningStyle = lipgloss.NewStyle().Foreground(colorCaution)
	// CmdStyle renders keys, names and commands.
	CmdStyle = lipgloss.NewStyle().Foreground(colorKey)
)

// modeStyles is indexed by buildmode.Mode.
var modeStyles = [buildmode.ModeCount]lipgloss.Style{
	buildmode.Release: lipgloss.NewStyle().Foreground(colorGood),
	buildmode.Devel:   lipgloss.NewStyle().Foreground(colorCaution),
	buildmode.Debug:   lipgloss.NewStyle().Bold(true).Foreground(colorBad),
}

// ModeStyle returns the style used to render m.
func ModeStyle(m buildmode.Mode) lipgloss.Style {
	enumrange.AssertValid(m)
	if !enumrange.IsValid(m) {
		return CmdStyle
	}
	return modeStyles[m]
}

// onOff renders a switch state.
func onOff(on bool) string {
	if on {
		return SuccessStyle.Render("on")
	}
	return SubtitleStyle.Render("off")
}
