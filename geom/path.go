package geom

import (
	"iter"
	"slices"
)

// Path is a general outline built from segments, with an explicit
// winding rule.
type Path struct {
	segs  []Segment
	rule  WindingRule
	start Point
	cur   Point
	open  bool
}

// NewPath returns an empty path using rule.
func NewPath(rule WindingRule) *Path {
	return &Path{rule: rule}
}

// PathFromShape copies the outline of s into a new path, transforming it
// by t when t is non-nil. The winding rule of s is kept.
func PathFromShape(s Shape, t *Affine) *Path {
	p := NewPath(s.WindingRule())
	p.Append(s, t)
	return p
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.segs = append(p.segs, Segment{Kind: SegMoveTo, Points: [3]Point{pt}})
	p.start, p.cur, p.open = pt, pt, true
}

// LineTo adds a straight segment. Without a current point it acts as MoveTo.
func (p *Path) LineTo(x, y float64) {
	if !p.open {
		p.MoveTo(x, y)
		return
	}
	pt := Pt(x, y)
	p.segs = append(p.segs, Segment{Kind: SegLineTo, Points: [3]Point{pt}})
	p.cur = pt
}

// QuadTo adds a quadratic Bezier segment.
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.ensureStart(cx, cy)
	pt := Pt(x, y)
	p.segs = append(p.segs, Segment{Kind: SegQuadTo, Points: [3]Point{{cx, cy}, pt}})
	p.cur = pt
}

// CubicTo adds a cubic Bezier segment.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.ensureStart(c1x, c1y)
	pt := Pt(x, y)
	p.segs = append(p.segs, Segment{Kind: SegCubicTo, Points: [3]Point{{c1x, c1y}, {c2x, c2y}, pt}})
	p.cur = pt
}

// Close closes the current subpath. It does nothing on an empty subpath.
func (p *Path) Close() {
	if !p.open {
		return
	}
	p.segs = append(p.segs, Segment{Kind: SegClose})
	p.cur = p.start
	p.open = false
}

func (p *Path) ensureStart(x, y float64) {
	if !p.open {
		p.MoveTo(x, y)
	}
}

// Append adds every segment of s, transformed by t when non-nil.
func (p *Path) Append(s Shape, t *Affine) {
	for seg := range s.Segments(t) {
		p.AppendSegment(seg)
	}
}

// AppendSegment adds one segment. Segments of unknown kind are stored as
// given so that consumers can reject them.
func (p *Path) AppendSegment(seg Segment) {
	switch seg.Kind {
	case SegMoveTo:
		p.MoveTo(seg.Points[0].X, seg.Points[0].Y)
	case SegLineTo:
		p.LineTo(seg.Points[0].X, seg.Points[0].Y)
	case SegQuadTo:
		p.QuadTo(seg.Points[0].X, seg.Points[0].Y, seg.Points[1].X, seg.Points[1].Y)
	case SegCubicTo:
		p.CubicTo(seg.Points[0].X, seg.Points[0].Y, seg.Points[1].X, seg.Points[1].Y,
			seg.Points[2].X, seg.Points[2].Y)
	case SegClose:
		p.Close()
	default:
		p.segs = append(p.segs, seg)
	}
}

// Len returns the number of segments.
func (p *Path) Len() int { return len(p.segs) }

// CurrentPoint returns the end of the last segment and whether a subpath
// is open.
func (p *Path) CurrentPoint() (Point, bool) { return p.cur, p.open }

// SetWindingRule changes the fill rule.
func (p *Path) SetWindingRule(r WindingRule) { p.rule = r }

// WindingRule returns the fill rule.
func (p *Path) WindingRule() WindingRule { return p.rule }

// Segments iterates the path.
func (p *Path) Segments(t *Affine) iter.Seq[Segment] {
	return segmentsOf(p.segs, t)
}

// Bounds returns the box around every point of the path, control points
// included.
func (p *Path) Bounds() Rect {
	var r Rect
	first := true
	for _, s := range p.segs {
		n := s.Kind.PointCount()
		for i := 0; i < n; i++ {
			if first {
				r = Rect{X: s.Points[i].X, Y: s.Points[i].Y}
				first = false
				continue
			}
			r = r.Add(s.Points[i])
		}
	}
	return r
}

// Contains reports whether pt lies inside the path under its winding rule.
func (p *Path) Contains(pt Point) bool {
	return containsByWinding(p, pt)
}

// Clone returns an independent copy.
func (p *Path) Clone() *Path {
	c := *p
	c.segs = slices.Clone(p.segs)
	return &c
}
