package g2d

import "github.com/gogpu/gg2d/geom"

// FontMetrics reports integer measurements of a font, rounded the way the
// legacy API rounds them.
type FontMetrics interface {
	Font() Font
	Ascent() int
	Descent() int
	Leading() int
	// Height is Ascent + Descent + Leading.
	Height() int
	MaxAdvance() int
	CharWidth(r rune) int
	CharsWidth(rs []rune) int
	StringWidth(s string) int
}

// GlyphVector is a shaped run of text.
type GlyphVector interface {
	Font() Font
	Text() string
	NumGlyphs() int
	// Outline returns the glyph outlines with the baseline origin at (x, y).
	Outline(x, y float64) geom.Shape
	// LogicalBounds returns the advance box relative to the baseline origin.
	LogicalBounds() geom.Rect
}
