package canvas

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/gg2d/geom"
)

// GeomPath converts a gg path into a geom path with the given rule,
// keeping the verb sequence.
func GeomPath(p *gg.Path, rule geom.WindingRule) *geom.Path {
	out := geom.NewPath(rule)
	p.Iterate(func(verb gg.PathVerb, c []float64) {
		switch verb {
		case gg.MoveTo:
			out.MoveTo(c[0], c[1])
		case gg.LineTo:
			out.LineTo(c[0], c[1])
		case gg.QuadTo:
			out.QuadTo(c[0], c[1], c[2], c[3])
		case gg.CubicTo:
			out.CubicTo(c[0], c[1], c[2], c[3], c[4], c[5])
		case gg.Close:
			out.Close()
		}
	})
	return out
}

// nonZeroPath rewrites an even-odd path as an equivalent non-zero one.
// The gg clip stack always uses the non-zero rule.
func nonZeroPath(p *gg.Path) *gg.Path {
	area := geom.NewArea(GeomPath(p, geom.WindEvenOdd))
	out := gg.NewPath()
	for seg := range area.Segments(nil) {
		switch seg.Kind {
		case geom.SegMoveTo:
			out.MoveTo(seg.Points[0].X, seg.Points[0].Y)
		case geom.SegLineTo:
			out.LineTo(seg.Points[0].X, seg.Points[0].Y)
		case geom.SegClose:
			out.Close()
		}
	}
	return out
}
