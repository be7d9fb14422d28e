// SPDX-License-Identifier: MPL-2.0

package tree

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const indent = "    "

const (
	// LabelStart marks the root of a walk.
	LabelStart VersionLabel = "START"
	// LabelAny marks a dependency declared without a version constraint.
	LabelAny VersionLabel = "ANY"
	// LabelNotFound marks an include of a cookbook missing from the includer's depends.
	LabelNotFound VersionLabel = "NOT FOUND"
	// LabelSameCookbook marks an include of a recipe from the same cookbook.
	// It is empty because a declared constraint never is, and it is never printed.
	LabelSameCookbook VersionLabel = ""
)

type (
	// VersionLabel annotates a line with how its version requirement was determined.
	VersionLabel string

	// Line is one printed node of the tree.
	Line struct {
		Depth int
		// Display is the cookbook::recipe text.
		Display string
		// Version is the cookbook's declared version, empty when unknown.
		Version string
		Label   VersionLabel
		// Cycle is set when the node re-enters a recipe already on the current path.
		Cycle bool
	}

	// Printer writes tree lines to a writer, colored when the writer supports it.
	Printer struct {
		w        io.Writer
		renderer *lipgloss.Renderer
	}
)

// NewPrinter creates a Printer. Color support is detected from w unless
// noColor is set.
func NewPrinter(w io.Writer, noColor bool) *Printer {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{w: w, renderer: r}
}

// String formats the line without color.
func (l Line) String() string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat(indent, l.Depth))
	sb.WriteString(l.Display)

	if l.Label != LabelSameCookbook {
		info := make([]string, 0, 2)
		if l.Version != "" {
			info = append(info, l.Version)
		}
		info = append(info, string(l.Label))
		sb.WriteString(" (")
		sb.WriteString(strings.Join(info, " "))
		sb.WriteString(")")
	}

	if l.Cycle {
		sb.WriteString(" (cycle)")
	}

	return sb.String()
}

// Print writes the line in the given color.
func (p *Printer) Print(line Line, color lipgloss.TerminalColor) error {
	style := p.renderer.NewStyle().Foreground(color)
	if _, err := fmt.Fprintln(p.w, style.Render(line.String())); err != nil {
		return fmt.Errorf("failed to write tree line: %w", err)
	}
	return nil
}

// Println writes an uncolored line, used for reports printed after the tree.
func (p *Printer) Println(text string) error {
	if _, err := fmt.Fprintln(p.w, text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
