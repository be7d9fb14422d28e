// SPDX-License-Identifier: MPL-2.0

package tree

import "github.com/charmbracelet/lipgloss"

// Palette is the ordered set of line colors. Black is left out so lines stay
// readable on dark terminals; the last entry is the terminal's default color.
var Palette = []lipgloss.TerminalColor{
	lipgloss.Color("8"),  // bright black
	lipgloss.Color("1"),  // red
	lipgloss.Color("9"),  // bright red
	lipgloss.Color("2"),  // green
	lipgloss.Color("10"), // bright green
	lipgloss.Color("3"),  // yellow
	lipgloss.Color("11"), // bright yellow
	lipgloss.Color("4"),  // blue
	lipgloss.Color("12"), // bright blue
	lipgloss.Color("5"),  // magenta
	lipgloss.Color("13"), // bright magenta
	lipgloss.Color("6"),  // cyan
	lipgloss.Color("14"), // bright cyan
	lipgloss.Color("7"),  // white
	lipgloss.Color("15"), // bright white
	lipgloss.NoColor{},
}

// Colors hands out palette colors to cookbooks in first-seen order. A
// cookbook keeps its color for the lifetime of the Colors value.
type Colors struct {
	palette  []lipgloss.TerminalColor
	assigned map[string]int
}

// NewColors creates an assigner over Palette.
func NewColors() *Colors {
	return &Colors{
		palette:  Palette,
		assigned: make(map[string]int),
	}
}

// Index returns the palette index of the cookbook, assigning the next one
// (modulo the palette size) on first use.
func (c *Colors) Index(cookbook string) int {
	if i, ok := c.assigned[cookbook]; ok {
		return i
	}
	i := len(c.assigned) % len(c.palette)
	c.assigned[cookbook] = i
	return i
}

// For returns the cookbook's color.
func (c *Colors) For(cookbook string) lipgloss.TerminalColor {
	return c.palette[c.Index(cookbook)]
}

// Len returns how many cookbooks have been assigned a color.
func (c *Colors) Len() int {
	return len(c.assigned)
}
