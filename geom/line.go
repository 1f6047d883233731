package geom

import "iter"

// Line is a straight segment. It encloses no area.
type Line struct {
	X1, Y1, X2, Y2 float64
}

// Bounds returns the rectangle spanned by the endpoints.
func (l Line) Bounds() Rect {
	return RectFromPoints(Pt(l.X1, l.Y1), Pt(l.X2, l.Y2))
}

// Contains always returns false.
func (Line) Contains(Point) bool { return false }

// WindingRule returns WindNonZero.
func (Line) WindingRule() WindingRule { return WindNonZero }

// Segments emits a move and a line.
func (l Line) Segments(t *Affine) iter.Seq[Segment] {
	return segmentsOf([]Segment{
		{Kind: SegMoveTo, Points: [3]Point{{l.X1, l.Y1}}},
		{Kind: SegLineTo, Points: [3]Point{{l.X2, l.Y2}}},
	}, t)
}
