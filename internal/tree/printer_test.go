// SPDX-License-Identifier: MPL-2.0

package tree

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestLineString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line Line
		want string
	}{
		{name: "root", line: Line{Display: "A::default", Version: "1.0", Label: LabelStart}, want: "A::default (1.0 START)"},
		{name: "constraint", line: Line{Depth: 1, Display: "B::setup", Version: "2.1.0", Label: "~> 2.0"}, want: "    B::setup (2.1.0 ~> 2.0)"},
		{name: "unresolved has no version", line: Line{Depth: 2, Display: "C::default", Label: LabelAny}, want: "        C::default (ANY)"},
		{name: "same cookbook has no suffix", line: Line{Depth: 1, Display: "A::other", Version: "1.0", Label: LabelSameCookbook}, want: "    A::other"},
		{name: "not found label", line: Line{Depth: 1, Display: "D::default", Version: "0.3.0", Label: LabelNotFound}, want: "    D::default (0.3.0 NOT FOUND)"},
		{name: "cycle", line: Line{Depth: 3, Display: "A::default", Version: "1.0", Label: LabelAny, Cycle: true}, want: "            A::default (1.0 ANY) (cycle)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.line.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrinter_NoColor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := NewPrinter(&buf, true)

	if err := p.Print(Line{Depth: 1, Display: "B::setup", Label: LabelAny}, lipgloss.Color("1")); err != nil {
		t.Fatalf("Print() returned error: %v", err)
	}
	if err := p.Println("order: b"); err != nil {
		t.Fatalf("Println() returned error: %v", err)
	}

	want := "    B::setup (ANY)\norder: b\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestColors(t *testing.T) {
	t.Parallel()

	c := NewColors()
	if got := c.Index("first"); got != 0 {
		t.Errorf("Index(first) = %d, want 0", got)
	}
	if got := c.Index("second"); got != 1 {
		t.Errorf("Index(second) = %d, want 1", got)
	}
	if got := c.Index("first"); got != 0 {
		t.Errorf("Index(first) again = %d, want 0", got)
	}
	if c.For("second") != Palette[1] {
		t.Error("For(second) should return Palette[1]")
	}

	// The palette wraps around once every color is taken.
	for i := 2; i < len(Palette); i++ {
		c.Index(string(rune('a' + i)))
	}
	if got := c.Index("wrapped"); got != 0 {
		t.Errorf("Index(wrapped) = %d, want 0", got)
	}
}

func TestPaletteExcludesBlack(t *testing.T) {
	t.Parallel()

	for i, color := range Palette {
		if color == lipgloss.Color("0") {
			t.Errorf("Palette[%d] is black", i)
		}
	}
	if len(Palette) != 16 {
		t.Errorf("len(Palette) = %d, want 16", len(Palette))
	}
}
