package canvas

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// TextPath returns the glyph outlines of s shaped with face, with the
// baseline origin at (x, y). Glyphs without an outline are skipped. The
// result is empty when face has no font source.
func TextPath(s string, x, y float64, face text.Face) *gg.Path {
	p := gg.NewPath()
	if face == nil || s == "" {
		return p
	}
	src := face.Source()
	if src == nil {
		return p
	}
	parsed := src.Parsed()
	ex := text.NewOutlineExtractor()
	for _, g := range text.Shape(s, face) {
		o, err := ex.ExtractOutline(parsed, g.GID, face.Size())
		if err != nil || o == nil || o.IsEmpty() {
			continue
		}
		appendOutline(p, o, x+g.X, y+g.Y)
	}
	return p
}

// appendOutline adds o at (ox, oy). Outline coordinates are y-down
// relative to the baseline. Each contour is closed.
func appendOutline(p *gg.Path, o *text.GlyphOutline, ox, oy float64) {
	open := false
	pt := func(q text.OutlinePoint) (float64, float64) {
		return ox + float64(q.X), oy + float64(q.Y)
	}
	for _, seg := range o.Segments {
		switch seg.Op {
		case text.OutlineOpMoveTo:
			if open {
				p.Close()
			}
			p.MoveTo(pt(seg.Points[0]))
			open = true
		case text.OutlineOpLineTo:
			p.LineTo(pt(seg.Points[0]))
		case text.OutlineOpQuadTo:
			cx, cy := pt(seg.Points[0])
			x, y := pt(seg.Points[1])
			p.QuadraticTo(cx, cy, x, y)
		case text.OutlineOpCubicTo:
			c1x, c1y := pt(seg.Points[0])
			c2x, c2y := pt(seg.Points[1])
			x, y := pt(seg.Points[2])
			p.CubicTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
	if open {
		p.Close()
	}
}
