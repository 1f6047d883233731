package gg2d

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/gg2d/canvas"
	"github.com/gogpu/gg2d/geom"
)

// TranslateShape converts the outline of s into a gg path, keeping its
// coordinates. It fails with a *SegmentError when s yields a segment kind
// other than MoveTo, LineTo, QuadTo, CubicTo or Close.
func TranslateShape(s geom.Shape) (*gg.Path, error) {
	p := gg.NewPath()
	if err := AppendShape(p, s, nil); err != nil {
		return nil, err
	}
	return p, nil
}

// AppendShape appends the outline of s, mapped by t when t is non-nil, to
// p. On error p holds the segments appended before the failing one.
func AppendShape(p *gg.Path, s geom.Shape, t *geom.Affine) error {
	if s == nil {
		return nil
	}
	for seg := range s.Segments(t) {
		pt := seg.Points
		switch seg.Kind {
		case geom.SegMoveTo:
			p.MoveTo(pt[0].X, pt[0].Y)
		case geom.SegLineTo:
			p.LineTo(pt[0].X, pt[0].Y)
		case geom.SegQuadTo:
			p.QuadraticTo(pt[0].X, pt[0].Y, pt[1].X, pt[1].Y)
		case geom.SegCubicTo:
			p.CubicTo(pt[0].X, pt[0].Y, pt[1].X, pt[1].Y, pt[2].X, pt[2].Y)
		case geom.SegClose:
			p.Close()
		default:
			return &SegmentError{Kind: seg.Kind}
		}
	}
	return nil
}

// WalkPath returns the segments of a gg path. Walking the result of
// TranslateShape gives back the segments of the source shape.
func WalkPath(p *gg.Path) []geom.Segment {
	if p == nil {
		return nil
	}
	return geom.Collect(canvas.GeomPath(p, geom.WindNonZero), nil)
}

// fillRule maps a geom winding rule to the gg rule.
func fillRule(r geom.WindingRule) gg.FillRule {
	if r == geom.WindEvenOdd {
		return gg.FillRuleEvenOdd
	}
	return gg.FillRuleNonZero
}
