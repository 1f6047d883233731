package geom

import "iter"

// kappa is the cubic Bezier control distance for a quarter circle.
const kappa = 0.5522847498307936

// Ellipse is an ellipse inscribed in its framing rectangle.
type Ellipse struct {
	X, Y, W, H float64
}

// Frame returns the framing rectangle.
func (e Ellipse) Frame() Rect { return Rect{X: e.X, Y: e.Y, W: e.W, H: e.H} }

// Empty reports whether the ellipse encloses no area.
func (e Ellipse) Empty() bool { return e.W <= 0 || e.H <= 0 }

// Bounds returns the framing rectangle.
func (e Ellipse) Bounds() Rect { return e.Frame() }

// WindingRule returns WindNonZero.
func (Ellipse) WindingRule() WindingRule { return WindNonZero }

// Contains reports whether p lies inside the ellipse.
func (e Ellipse) Contains(p Point) bool {
	if e.Empty() {
		return false
	}
	nx := (p.X-e.X)/e.W - 0.5
	ny := (p.Y-e.Y)/e.H - 0.5
	return nx*nx+ny*ny < 0.25
}

// Segments emits four cubic arcs starting at three o'clock.
func (e Ellipse) Segments(t *Affine) iter.Seq[Segment] {
	return segmentsOf(ellipseSegments(e.X+e.W/2, e.Y+e.H/2, e.W/2, e.H/2), t)
}

func ellipseSegments(cx, cy, rx, ry float64) []Segment {
	kx, ky := rx*kappa, ry*kappa
	return []Segment{
		{Kind: SegMoveTo, Points: [3]Point{{cx + rx, cy}}},
		{Kind: SegCubicTo, Points: [3]Point{{cx + rx, cy + ky}, {cx + kx, cy + ry}, {cx, cy + ry}}},
		{Kind: SegCubicTo, Points: [3]Point{{cx - kx, cy + ry}, {cx - rx, cy + ky}, {cx - rx, cy}}},
		{Kind: SegCubicTo, Points: [3]Point{{cx - rx, cy - ky}, {cx - kx, cy - ry}, {cx, cy - ry}}},
		{Kind: SegCubicTo, Points: [3]Point{{cx + kx, cy - ry}, {cx + rx, cy - ky}, {cx + rx, cy}}},
		{Kind: SegClose},
	}
}
