package geom

import "iter"

// Polygon is a closed outline through its points, filled even-odd as in
// the legacy API.
type Polygon struct {
	Points []Point
}

// NewPolygon pairs the first n coordinates of xs and ys.
func NewPolygon(xs, ys []float64, n int) Polygon {
	n = min(n, len(xs), len(ys))
	pts := make([]Point, n)
	for i := range n {
		pts[i] = Pt(xs[i], ys[i])
	}
	return Polygon{Points: pts}
}

// Bounds returns the box around all points.
func (p Polygon) Bounds() Rect {
	if len(p.Points) == 0 {
		return Rect{}
	}
	r := Rect{X: p.Points[0].X, Y: p.Points[0].Y}
	for _, pt := range p.Points[1:] {
		r = r.Add(pt)
	}
	return r
}

// WindingRule returns WindEvenOdd.
func (Polygon) WindingRule() WindingRule { return WindEvenOdd }

// Contains reports whether pt lies inside the polygon.
func (p Polygon) Contains(pt Point) bool {
	if len(p.Points) < 3 {
		return false
	}
	return containsByWinding(p, pt)
}

// Segments emits a move, lines through the remaining points and a close.
func (p Polygon) Segments(t *Affine) iter.Seq[Segment] {
	if len(p.Points) == 0 {
		return segmentsOf(nil, t)
	}
	segs := make([]Segment, 0, len(p.Points)+1)
	segs = append(segs, Segment{Kind: SegMoveTo, Points: [3]Point{p.Points[0]}})
	for _, pt := range p.Points[1:] {
		segs = append(segs, Segment{Kind: SegLineTo, Points: [3]Point{pt}})
	}
	segs = append(segs, Segment{Kind: SegClose})
	return segmentsOf(segs, t)
}

// Polyline returns an open path through the first n coordinates.
func Polyline(xs, ys []float64, n int) *Path {
	n = min(n, len(xs), len(ys))
	p := NewPath(WindNonZero)
	for i := range n {
		if i == 0 {
			p.MoveTo(xs[i], ys[i])
			continue
		}
		p.LineTo(xs[i], ys[i])
	}
	return p
}
