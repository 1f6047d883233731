package geom

import (
	"iter"
	"math"
)

// ArcType selects how an arc outline is closed.
type ArcType uint8

const (
	// ArcOpen leaves the arc unclosed.
	ArcOpen ArcType = iota
	// ArcChord closes the arc with a straight segment between its ends.
	ArcChord
	// ArcPie closes the arc through the ellipse center.
	ArcPie
)

// Arc is a section of the ellipse inscribed in (X, Y, W, H).
//
// Start and Extent are in degrees. Positive angles run counterclockwise on
// screen, with zero at three o'clock.
type Arc struct {
	X, Y, W, H    float64
	Start, Extent float64
	Type          ArcType
}

// Bounds returns the framing rectangle of the full ellipse.
func (a Arc) Bounds() Rect { return Rect{X: a.X, Y: a.Y, W: a.W, H: a.H} }

// WindingRule returns WindNonZero.
func (Arc) WindingRule() WindingRule { return WindNonZero }

// Contains reports whether p lies inside the arc. Open arcs are tested as
// if closed by their chord.
func (a Arc) Contains(p Point) bool {
	if a.W <= 0 || a.H <= 0 || a.Extent == 0 {
		return false
	}
	return containsByWinding(a, p)
}

// Segments emits the arc as cubic pieces of at most ninety degrees.
func (a Arc) Segments(t *Affine) iter.Seq[Segment] {
	return segmentsOf(a.segments(), t)
}

func (a Arc) segments() []Segment {
	cx, cy := a.X+a.W/2, a.Y+a.H/2
	rx, ry := a.W/2, a.H/2

	ext := a.Extent
	if ext > 360 {
		ext = 360
	} else if ext < -360 {
		ext = -360
	}

	at := func(theta float64) Point {
		s, c := math.Sincos(theta)
		return Point{X: cx + rx*c, Y: cy - ry*s}
	}
	tangent := func(theta float64) Point {
		s, c := math.Sincos(theta)
		return Point{X: -rx * s, Y: -ry * c}
	}

	start := a.Start * math.Pi / 180
	sweep := ext * math.Pi / 180
	n := int(math.Ceil(math.Abs(ext) / 90))
	if n == 0 {
		n = 1
	}
	step := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)

	segs := make([]Segment, 0, n+4)
	if a.Type == ArcPie {
		segs = append(segs,
			Segment{Kind: SegMoveTo, Points: [3]Point{{cx, cy}}},
			Segment{Kind: SegLineTo, Points: [3]Point{at(start)}},
		)
	} else {
		segs = append(segs, Segment{Kind: SegMoveTo, Points: [3]Point{at(start)}})
	}
	for i := 0; i < n; i++ {
		a0 := start + float64(i)*step
		a1 := a0 + step
		p0, p3 := at(a0), at(a1)
		d0, d1 := tangent(a0), tangent(a1)
		segs = append(segs, Segment{Kind: SegCubicTo, Points: [3]Point{
			{p0.X + k*d0.X, p0.Y + k*d0.Y},
			{p3.X - k*d1.X, p3.Y - k*d1.Y},
			p3,
		}})
	}
	if a.Type != ArcOpen {
		segs = append(segs, Segment{Kind: SegClose})
	}
	return segs
}
