package gg2d

import (
	"sync"

	"github.com/gogpu/gg/text"

	"github.com/gogpu/gg2d/canvas"
	"github.com/gogpu/gg2d/g2d"
	"github.com/gogpu/gg2d/geom"
)

// fontMetrics reports face measurements truncated to integers.
type fontMetrics struct {
	font g2d.Font
	face text.Face
	m    text.Metrics

	maxOnce sync.Once
	max     int
}

var _ g2d.FontMetrics = (*fontMetrics)(nil)

func newFontMetrics(f g2d.Font, face text.Face) *fontMetrics {
	return &fontMetrics{font: f, face: face, m: face.Metrics()}
}

func (fm *fontMetrics) Font() g2d.Font { return fm.font }
func (fm *fontMetrics) Ascent() int    { return int(fm.m.Ascent) }
func (fm *fontMetrics) Descent() int   { return int(fm.m.Descent) }
func (fm *fontMetrics) Leading() int   { return int(fm.m.LineGap) }

func (fm *fontMetrics) Height() int {
	return fm.Ascent() + fm.Descent() + fm.Leading()
}

// MaxAdvance returns the widest advance among the printable ASCII
// characters.
func (fm *fontMetrics) MaxAdvance() int {
	fm.maxOnce.Do(func() {
		for r := rune(0x20); r < 0x7f; r++ {
			fm.max = max(fm.max, fm.CharWidth(r))
		}
	})
	return fm.max
}

func (fm *fontMetrics) CharWidth(r rune) int     { return int(fm.face.Advance(string(r))) }
func (fm *fontMetrics) CharsWidth(rs []rune) int { return int(fm.face.Advance(string(rs))) }
func (fm *fontMetrics) StringWidth(s string) int { return int(fm.face.Advance(s)) }

// glyphVector is a string shaped with one face.
type glyphVector struct {
	font    g2d.Font
	face    text.Face
	text    string
	glyphs  []text.ShapedGlyph
	advance float64
}

var _ g2d.GlyphVector = (*glyphVector)(nil)

func newGlyphVector(f g2d.Font, face text.Face, s string) *glyphVector {
	return &glyphVector{
		font:    f,
		face:    face,
		text:    s,
		glyphs:  text.Shape(s, face),
		advance: face.Advance(s),
	}
}

func (gv *glyphVector) Font() g2d.Font { return gv.font }
func (gv *glyphVector) Text() string   { return gv.text }
func (gv *glyphVector) NumGlyphs() int { return len(gv.glyphs) }

func (gv *glyphVector) Outline(x, y float64) geom.Shape {
	return canvas.GeomPath(canvas.TextPath(gv.text, x, y, gv.face), geom.WindNonZero)
}

func (gv *glyphVector) LogicalBounds() geom.Rect {
	m := gv.face.Metrics()
	return geom.Rect{X: 0, Y: -m.Ascent, W: gv.advance, H: m.Ascent + m.Descent + m.LineGap}
}
