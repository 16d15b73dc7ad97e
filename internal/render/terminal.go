// Package render draws simulation snapshots to a terminal or, in the ebiten
// build, to a window.
package render

import (
	"bufio"
	"io"

	"github.com/gookit/color"
	"github.com/pkg/errors"
)

// clearScreen erases the terminal and homes the cursor.
const clearScreen = "\x1b[2J\x1b[1;1H"

// Frame is one snapshot handed to a renderer.
type Frame struct {
	Cells   []uint8
	Width   int
	Caption string
}

// Terminal prints frames as one glyph per cell.
type Terminal struct {
	out    io.Writer
	glyphs []string
	styles []color.Color
	clear  bool
}

// TerminalOption configures a Terminal.
type TerminalOption func(*Terminal)

// WithStyles colours each glyph with the style at the same cell index.
func WithStyles(styles []color.Color) TerminalOption {
	return func(t *Terminal) { t.styles = styles }
}

// WithoutClear appends frames instead of redrawing in place.
func WithoutClear() TerminalOption {
	return func(t *Terminal) { t.clear = false }
}

// NewTerminal builds a renderer writing to out. glyphs is indexed by cell
// value.
func NewTerminal(out io.Writer, glyphs []string, opts ...TerminalOption) *Terminal {
	t := &Terminal{out: out, glyphs: glyphs, clear: true}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Render writes f to the output.
func (t *Terminal) Render(f Frame) error {
	if f.Width <= 0 || len(f.Cells)%f.Width != 0 {
		return errors.Errorf("frame of %d cells does not split into rows of %d", len(f.Cells), f.Width)
	}
	w := bufio.NewWriter(t.out)
	if t.clear {
		w.WriteString(clearScreen)
	}
	for i, c := range f.Cells {
		w.WriteString(t.glyph(c))
		if (i+1)%f.Width == 0 {
			w.WriteByte('\n')
		}
	}
	if f.Caption != "" {
		w.WriteString(f.Caption)
		w.WriteByte('\n')
	}
	return errors.Wrap(w.Flush(), "flush frame")
}

func (t *Terminal) glyph(c uint8) string {
	idx := int(c)
	if idx >= len(t.glyphs) {
		return "?"
	}
	g := t.glyphs[idx]
	if idx < len(t.styles) && t.styles[idx] != color.FgDefault {
		return t.styles[idx].Sprint(g)
	}
	return g
}
