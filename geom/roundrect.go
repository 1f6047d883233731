package geom

import (
	"iter"
	"math"
)

// RoundRect is a rectangle with elliptical corners. ArcW and ArcH are the
// full diameters of the corner ellipse, as in the legacy API.
type RoundRect struct {
	X, Y, W, H float64
	ArcW, ArcH float64
}

// Bounds returns the framing rectangle.
func (r RoundRect) Bounds() Rect { return Rect{X: r.X, Y: r.Y, W: r.W, H: r.H} }

// WindingRule returns WindNonZero.
func (RoundRect) WindingRule() WindingRule { return WindNonZero }

// Contains reports whether p lies inside the rounded rectangle.
func (r RoundRect) Contains(p Point) bool {
	return containsByWinding(r, p)
}

func (r RoundRect) radii() (rx, ry float64) {
	rx = math.Min(math.Abs(r.ArcW), math.Abs(r.W)) / 2
	ry = math.Min(math.Abs(r.ArcH), math.Abs(r.H)) / 2
	return rx, ry
}

// Segments emits the outline clockwise starting after the top-left corner.
func (r RoundRect) Segments(t *Affine) iter.Seq[Segment] {
	rx, ry := r.radii()
	if rx <= 0 || ry <= 0 {
		return r.Bounds().Segments(t)
	}
	x0, y0 := r.X, r.Y
	x1, y1 := r.X+r.W, r.Y+r.H
	kx, ky := rx*kappa, ry*kappa
	return segmentsOf([]Segment{
		{Kind: SegMoveTo, Points: [3]Point{{x0 + rx, y0}}},
		{Kind: SegLineTo, Points: [3]Point{{x1 - rx, y0}}},
		{Kind: SegCubicTo, Points: [3]Point{{x1 - rx + kx, y0}, {x1, y0 + ry - ky}, {x1, y0 + ry}}},
		{Kind: SegLineTo, Points: [3]Point{{x1, y1 - ry}}},
		{Kind: SegCubicTo, Points: [3]Point{{x1, y1 - ry + ky}, {x1 - rx + kx, y1}, {x1 - rx, y1}}},
		{Kind: SegLineTo, Points: [3]Point{{x0 + rx, y1}}},
		{Kind: SegCubicTo, Points: [3]Point{{x0 + rx - kx, y1}, {x0, y1 - ry + ky}, {x0, y1 - ry}}},
		{Kind: SegLineTo, Points: [3]Point{{x0, y0 + ry}}},
		{Kind: SegCubicTo, Points: [3]Point{{x0, y0 + ry - ky}, {x0 + rx - kx, y0}, {x0 + rx, y0}}},
		{Kind: SegClose},
	}, t)
}
