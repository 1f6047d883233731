package geom

import (
	"iter"
	"math"
)

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
// A rectangle with W <= 0 or H <= 0 is empty.
type Rect struct {
	X, Y, W, H float64
}

// NewRect returns the rectangle (x, y, w, h).
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFromPoints returns the rectangle spanned by two corners in any order.
func RectFromPoints(p0, p1 Point) Rect {
	x0, x1 := math.Min(p0.X, p1.X), math.Max(p0.X, p1.X)
	y0, y1 := math.Min(p0.Y, p1.Y), math.Max(p0.Y, p1.Y)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Empty reports whether the rectangle encloses no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Bounds returns r.
func (r Rect) Bounds() Rect { return r }

// WindingRule returns WindNonZero.
func (Rect) WindingRule() WindingRule { return WindNonZero }

// Contains reports whether p lies inside r. The left and top edges are
// inclusive, the right and bottom edges exclusive.
func (r Rect) Contains(p Point) bool {
	return !r.Empty() && p.X >= r.X && p.Y >= r.Y && p.X < r.MaxX() && p.Y < r.MaxY()
}

// Intersects reports whether r and o share interior area.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.MaxX() && o.X < r.MaxX() && r.Y < o.MaxY() && o.Y < r.MaxY()
}

// Intersect returns the overlap of r and o. The result may be empty.
func (r Rect) Intersect(o Rect) Rect {
	x0 := math.Max(r.X, o.X)
	y0 := math.Max(r.Y, o.Y)
	x1 := math.Min(r.MaxX(), o.MaxX())
	y1 := math.Min(r.MaxY(), o.MaxY())
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Union returns the smallest rectangle containing r and o.
// Empty rectangles are ignored.
func (r Rect) Union(o Rect) Rect {
	switch {
	case r.Empty():
		return o
	case o.Empty():
		return r
	}
	x0 := math.Min(r.X, o.X)
	y0 := math.Min(r.Y, o.Y)
	x1 := math.Max(r.MaxX(), o.MaxX())
	y1 := math.Max(r.MaxY(), o.MaxY())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Add grows r to include p.
func (r Rect) Add(p Point) Rect {
	x0 := math.Min(r.X, p.X)
	y0 := math.Min(r.Y, p.Y)
	x1 := math.Max(r.MaxX(), p.X)
	y1 := math.Max(r.MaxY(), p.Y)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// ApproxEqual reports whether all fields differ by at most eps.
func (r Rect) ApproxEqual(o Rect, eps float64) bool {
	return math.Abs(r.X-o.X) <= eps && math.Abs(r.Y-o.Y) <= eps &&
		math.Abs(r.W-o.W) <= eps && math.Abs(r.H-o.H) <= eps
}

// Segments emits the rectangle clockwise from the top-left corner.
func (r Rect) Segments(t *Affine) iter.Seq[Segment] {
	return segmentsOf([]Segment{
		{Kind: SegMoveTo, Points: [3]Point{{r.X, r.Y}}},
		{Kind: SegLineTo, Points: [3]Point{{r.MaxX(), r.Y}}},
		{Kind: SegLineTo, Points: [3]Point{{r.MaxX(), r.MaxY()}}},
		{Kind: SegLineTo, Points: [3]Point{{r.X, r.MaxY()}}},
		{Kind: SegClose},
	}, t)
}
