package gg2d

import (
	"errors"

	"github.com/gogpu/gg/text"

	"github.com/gogpu/gg2d/g2d"
)

var errNilGlyphVector = errors.New("gg2d: nil glyph vector")

// DrawString fills the outlines of s in the current font with its baseline
// origin at (x, y).
func (g *Graphics) DrawString(s string, x, y float64) error {
	if s == "" {
		return nil
	}
	g.canvas.DrawString(s, x, y, g.face, g.backend)
	return nil
}

// CreateGlyphVector shapes s with the current font.
func (g *Graphics) CreateGlyphVector(s string) (g2d.GlyphVector, error) {
	return newGlyphVector(g.font, g.face, s), nil
}

// DrawGlyphVector draws gv with its baseline origin at (x, y). Glyph
// vectors made by another implementation are filled from their outline.
func (g *Graphics) DrawGlyphVector(gv g2d.GlyphVector, x, y float64) error {
	switch v := gv.(type) {
	case nil:
		return errNilGlyphVector
	case *glyphVector:
		g.canvas.DrawString(v.text, x, y, v.face, g.backend)
		return nil
	default:
		return g.Fill(gv.Outline(x, y))
	}
}

// FontMetrics returns metrics for f, or for the current font when f is nil.
func (g *Graphics) FontMetrics(f *g2d.Font) (g2d.FontMetrics, error) {
	if f == nil {
		return newFontMetrics(g.font, g.face), nil
	}
	face, err := g.resolveFace(*f)
	if err != nil {
		return nil, err
	}
	return newFontMetrics(*f, face), nil
}

// resolveFace maps f through the font mapping hint and the typeface cache.
func (g *Graphics) resolveFace(f g2d.Font) (text.Face, error) {
	family := MapFamily(f.Name, g.hints.FontMapping())
	src, err := g.typefaces.Typeface(family, f.Style)
	if err != nil {
		return nil, err
	}
	return src.Face(f.Size), nil
}
