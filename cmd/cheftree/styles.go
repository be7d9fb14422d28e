// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color palette for CLI chrome. Tree lines use the per-cookbook palette
// from the tree package instead.
const (
	// ColorPrimary is purple - used for titles.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray - used for subtitles and headings.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorError is red - used for fatal error cards.
	ColorError = lipgloss.Color("#EF4444")
)

var (
	// TitleStyle is for the program name in help output.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary headers and descriptions.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// headingStyle returns the style for section headings written to w, plain
// when noColor is set or w is not a color terminal.
func headingStyle(w io.Writer, noColor bool) lipgloss.Style {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return r.NewStyle().Bold(true).Foreground(ColorMuted)
}

// errorStyle returns the bold red style for error cards written to w.
func errorStyle(w io.Writer) lipgloss.Style {
	return lipgloss.NewRenderer(w).NewStyle().Bold(true).Foreground(ColorError)
}

// glamourStyle picks the issue catalog style for w: "notty" unless w is a
// color terminal.
func glamourStyle(w io.Writer) string {
	out := termenv.NewOutput(w)
	if out.Profile == termenv.Ascii {
		return "notty"
	}
	if out.HasDarkBackground() {
		return "dark"
	}
	return "light"
}
