package geom

import (
	"fmt"
	"iter"
)

// SegmentKind identifies the operation of a path segment.
type SegmentKind uint8

// Segment kinds. A shape outline is a sequence of these.
const (
	SegMoveTo SegmentKind = iota
	SegLineTo
	SegQuadTo
	SegCubicTo
	SegClose
)

// String returns the segment kind name.
func (k SegmentKind) String() string {
	switch k {
	case SegMoveTo:
		return "MoveTo"
	case SegLineTo:
		return "LineTo"
	case SegQuadTo:
		return "QuadTo"
	case SegCubicTo:
		return "CubicTo"
	case SegClose:
		return "Close"
	default:
		return fmt.Sprintf("SegmentKind(%d)", uint8(k))
	}
}

// PointCount returns how many points a segment of this kind carries,
// or -1 for kinds outside the closed set.
func (k SegmentKind) PointCount() int {
	switch k {
	case SegMoveTo, SegLineTo:
		return 1
	case SegQuadTo:
		return 2
	case SegCubicTo:
		return 3
	case SegClose:
		return 0
	default:
		return -1
	}
}

// Segment is one step of a shape outline.
//
// Points holds, in order: the target (MoveTo, LineTo); control then target
// (QuadTo); two controls then target (CubicTo). Close uses no points.
type Segment struct {
	Kind   SegmentKind
	Points [3]Point
}

// End returns the segment's end point. For Close it returns the zero point.
func (s Segment) End() Point {
	n := s.Kind.PointCount()
	if n <= 0 {
		return Point{}
	}
	return s.Points[n-1]
}

// Transformed returns a copy of s with its points mapped by t.
func (s Segment) Transformed(t Affine) Segment {
	n := s.Kind.PointCount()
	for i := 0; i < n; i++ {
		s.Points[i] = t.Apply(s.Points[i])
	}
	return s
}

// WindingRule decides which points lie inside a self-overlapping outline.
type WindingRule uint8

const (
	// WindNonZero is the nonzero winding rule.
	WindNonZero WindingRule = iota
	// WindEvenOdd is the even-odd rule.
	WindEvenOdd
)

// Inside reports whether a winding number counts as inside under the rule.
func (r WindingRule) Inside(winding int) bool {
	if r == WindEvenOdd {
		return winding%2 != 0
	}
	return winding != 0
}

// Shape is any closed or open 2D outline.
type Shape interface {
	// Bounds returns the axis-aligned bounding box in the shape's own space.
	Bounds() Rect

	// Contains reports whether p lies inside the shape.
	Contains(p Point) bool

	// Segments iterates the outline. A non-nil t transforms every point.
	Segments(t *Affine) iter.Seq[Segment]

	// WindingRule returns the fill rule of the outline.
	WindingRule() WindingRule
}

// segmentsOf emits a fixed segment list, optionally transformed.
func segmentsOf(segs []Segment, t *Affine) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for _, s := range segs {
			if t != nil {
				s = s.Transformed(*t)
			}
			if !yield(s) {
				return
			}
		}
	}
}

// Transform returns s mapped by t. Rectangles under rectilinear transforms
// stay rectangles; every other combination becomes a Path.
func Transform(s Shape, t Affine) Shape {
	if s == nil {
		return nil
	}
	if t.IsIdentity() {
		return s
	}
	if r, ok := s.(Rect); ok && t.IsRectilinear() {
		p0 := t.Apply(Pt(r.X, r.Y))
		p1 := t.Apply(Pt(r.X+r.W, r.Y+r.H))
		return RectFromPoints(p0, p1)
	}
	if a, ok := s.(*Area); ok {
		return a.Transform(t)
	}
	return PathFromShape(s, &t)
}

// Collect returns all segments of s as a slice.
func Collect(s Shape, t *Affine) []Segment {
	var out []Segment
	for seg := range s.Segments(t) {
		out = append(out, seg)
	}
	return out
}
