package fire

import (
	"image/color"
	"sort"

	"github.com/pkg/errors"
)

var firePalette = []color.RGBA{
	Empty:   {R: 70, G: 52, B: 32, A: 255},
	Tree:    {R: 40, G: 120, B: 55, A: 255},
	Burning: {R: 255, G: 130, B: 40, A: 255},
	Burned:  {R: 90, G: 90, B: 90, A: 255},
}

// Palette returns the window colours indexed by Cell.
func (f *Forest) Palette() []color.RGBA { return firePalette }

// Glyphs maps every Cell to the string printed for it, indexed by Cell.
type Glyphs [4]string

var glyphSets = map[string]Glyphs{
	// Emoji render two columns wide, so Empty is padded to match.
	"emoji": {Empty: "  ", Tree: "🌲", Burning: "🔥", Burned: "⬜"},
	"ascii": {Empty: " ", Tree: "T", Burning: "*", Burned: "."},
}

// GlyphSet looks up a glyph set by name.
func GlyphSet(name string) (Glyphs, error) {
	g, ok := glyphSets[name]
	if !ok {
		return Glyphs{}, errors.Wrapf(ErrInvalidParameter, "unknown glyph set %q (have %v)", name, GlyphSetNames())
	}
	return g, nil
}

// GlyphSetNames lists the available glyph sets.
func GlyphSetNames() []string {
	out := make([]string, 0, len(glyphSets))
	for name := range glyphSets {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Table flattens the set into a slice indexed by cell value.
func (g Glyphs) Table() []string { return g[:] }
