package geom

import (
	"cmp"
	"iter"
	"math"
	"slices"

	"github.com/ctessum/polyclip-go"
)

// areaEpsilon is the smallest slab height kept by the decomposition.
const areaEpsilon = 1e-9

// Area is a region stored as non-overlapping trapezoids. It is the result
// of planar set operations and is always filled with the nonzero rule.
//
// The zero Area is empty.
type Area struct {
	quads [][4]Point
}

// NewArea decomposes s into trapezoids, resolving self-intersections and
// the shape's winding rule.
func NewArea(s Shape) *Area {
	if a, ok := s.(*Area); ok {
		return a.Clone()
	}
	return &Area{quads: decompose([]Shape{s})}
}

// Intersect returns the region covered by both a and b. Two rectangles
// intersect to a Rect; every other combination yields an *Area.
//
// Pairs of simple outlines (rectangles, ellipses and round rectangles) are
// clipped with polyclip; everything else goes through the slab
// decomposition, which also resolves self-intersections and winding rules.
func Intersect(a, b Shape) Shape {
	ra, okA := a.(Rect)
	rb, okB := b.(Rect)
	if okA && okB {
		r := ra.Intersect(rb)
		if r.Empty() {
			return Rect{}
		}
		return r
	}
	if !a.Bounds().Intersects(b.Bounds()) {
		return &Area{}
	}
	if okA && covers(ra, b.Bounds()) {
		return NewArea(b)
	}
	if okB && covers(rb, a.Bounds()) {
		return NewArea(a)
	}
	if simpleOutline(a) && simpleOutline(b) {
		return clipOutlines(a, b)
	}
	return &Area{quads: decompose([]Shape{a, b})}
}

// covers reports whether o lies inside r.
func covers(r, o Rect) bool {
	return !r.Empty() && o.X >= r.X && o.Y >= r.Y && o.MaxX() <= r.MaxX() && o.MaxY() <= r.MaxY()
}

// simpleOutline reports whether s is a single contour that never crosses
// itself, so its even-odd and nonzero interiors agree.
func simpleOutline(s Shape) bool {
	switch s.(type) {
	case Rect, Ellipse, RoundRect:
		return true
	}
	return false
}

// clipOutlines intersects two simple outlines with polyclip and
// decomposes the result, whose contours use the even-odd rule.
func clipOutlines(a, b Shape) *Area {
	pa, pb := clipPolygon(a), clipPolygon(b)
	if len(pa) == 0 || len(pb) == 0 {
		return &Area{}
	}
	res := pa.Construct(polyclip.INTERSECTION, pb)
	if len(res) == 0 {
		return &Area{}
	}
	out := NewPath(WindEvenOdd)
	for _, c := range res {
		if len(c) < 3 {
			continue
		}
		out.MoveTo(c[0].X, c[0].Y)
		for _, p := range c[1:] {
			out.LineTo(p.X, p.Y)
		}
		out.Close()
	}
	return &Area{quads: decompose([]Shape{out})}
}

func clipPolygon(s Shape) polyclip.Polygon {
	var poly polyclip.Polygon
	for _, pts := range Flatten(s, nil, DefaultTolerance) {
		c := make(polyclip.Contour, 0, len(pts))
		for _, p := range pts {
			c = append(c, polyclip.Point{X: p.X, Y: p.Y})
		}
		if n := len(c); n > 1 && c[0].Equals(c[n-1]) {
			c = c[:n-1]
		}
		if len(c) >= 3 {
			poly.Add(c)
		}
	}
	return poly
}

// Empty reports whether the area covers nothing.
func (a *Area) Empty() bool { return a == nil || len(a.quads) == 0 }

// Clone returns an independent copy.
func (a *Area) Clone() *Area {
	if a == nil {
		return &Area{}
	}
	return &Area{quads: slices.Clone(a.quads)}
}

// Transform returns the area mapped by t.
func (a *Area) Transform(t Affine) *Area {
	out := &Area{quads: make([][4]Point, len(a.quads))}
	for i, q := range a.quads {
		for j := range q {
			out.quads[i][j] = t.Apply(q[j])
		}
	}
	return out
}

// Rect returns the area as a rectangle when it is exactly one
// axis-aligned box.
func (a *Area) Rect() (Rect, bool) {
	if a == nil || len(a.quads) != 1 {
		return Rect{}, false
	}
	q := a.quads[0]
	if q[0].Y != q[1].Y || q[2].Y != q[3].Y || q[0].X != q[3].X || q[1].X != q[2].X {
		return Rect{}, false
	}
	return RectFromPoints(q[0], q[2]), true
}

// Bounds returns the box around all trapezoids.
func (a *Area) Bounds() Rect {
	if a.Empty() {
		return Rect{}
	}
	r := Rect{X: a.quads[0][0].X, Y: a.quads[0][0].Y}
	for _, q := range a.quads {
		for _, p := range q {
			r = r.Add(p)
		}
	}
	return r
}

// Contains reports whether p lies in any trapezoid.
func (a *Area) Contains(p Point) bool {
	if a.Empty() {
		return false
	}
	for _, q := range a.quads {
		if Winding([][]Point{q[:]}, p) != 0 {
			return true
		}
	}
	return false
}

// WindingRule returns WindNonZero.
func (*Area) WindingRule() WindingRule { return WindNonZero }

// Segments emits every trapezoid as a closed subpath.
func (a *Area) Segments(t *Affine) iter.Seq[Segment] {
	if a.Empty() {
		return segmentsOf(nil, t)
	}
	segs := make([]Segment, 0, len(a.quads)*5)
	for _, q := range a.quads {
		segs = append(segs,
			Segment{Kind: SegMoveTo, Points: [3]Point{q[0]}},
			Segment{Kind: SegLineTo, Points: [3]Point{q[1]}},
			Segment{Kind: SegLineTo, Points: [3]Point{q[2]}},
			Segment{Kind: SegLineTo, Points: [3]Point{q[3]}},
			Segment{Kind: SegClose},
		)
	}
	return segmentsOf(segs, t)
}

// edge is a non-horizontal polyline edge oriented top to bottom.
type edge struct {
	x0, y0, x1, y1 float64
	dir            int
	id             int
}

func (e *edge) xAt(y float64) float64 {
	return e.x0 + (e.x1-e.x0)*(y-e.y0)/(e.y1-e.y0)
}

type operand struct {
	edges []*edge
	rule  WindingRule
}

type span struct {
	l, r *edge
}

// decompose intersects the interiors of all shapes and returns the result
// as trapezoids. The plane is cut into horizontal slabs at every vertex and
// every edge crossing, so no two edges cross inside a slab.
func decompose(shapes []Shape) [][4]Point {
	ops := make([]operand, len(shapes))
	var all []*edge
	for i, s := range shapes {
		ops[i].rule = s.WindingRule()
		for _, poly := range Flatten(s, nil, DefaultTolerance) {
			n := len(poly)
			for j := range n {
				a, b := poly[j], poly[(j+1)%n]
				if a.Y == b.Y || math.IsNaN(a.Y) || math.IsNaN(b.Y) {
					continue
				}
				dir := 1
				if a.Y > b.Y {
					a, b = b, a
					dir = -1
				}
				e := &edge{x0: a.X, y0: a.Y, x1: b.X, y1: b.Y, dir: dir, id: len(all)}
				ops[i].edges = append(ops[i].edges, e)
				all = append(all, e)
			}
		}
		if len(ops[i].edges) == 0 {
			return nil
		}
	}

	ys := breakpoints(all)

	var (
		quads [][4]Point
		open  = map[[2]int]int{}
	)
	for i := 0; i+1 < len(ys); i++ {
		ya, yb := ys[i], ys[i+1]
		if yb-ya <= areaEpsilon {
			continue
		}
		ym := (ya + yb) / 2

		spans := slabSpans(ops[0], ym)
		for _, op := range ops[1:] {
			if len(spans) == 0 {
				break
			}
			spans = intersectSpans(spans, slabSpans(op, ym), ym)
		}

		next := make(map[[2]int]int, len(spans))
		for _, s := range spans {
			key := [2]int{s.l.id, s.r.id}
			if idx, ok := open[key]; ok && quads[idx][2].Y == ya {
				quads[idx][2] = Pt(s.r.xAt(yb), yb)
				quads[idx][3] = Pt(s.l.xAt(yb), yb)
				next[key] = idx
				continue
			}
			quads = append(quads, [4]Point{
				Pt(s.l.xAt(ya), ya),
				Pt(s.r.xAt(ya), ya),
				Pt(s.r.xAt(yb), yb),
				Pt(s.l.xAt(yb), yb),
			})
			next[key] = len(quads) - 1
		}
		open = next
	}
	return quads
}

// breakpoints returns the sorted distinct y values of all edge endpoints
// and all pairwise edge crossings. Edges are swept top to bottom, so only
// pairs whose y ranges overlap are compared.
func breakpoints(edges []*edge) []float64 {
	ys := make([]float64, 0, len(edges)*2)
	for _, e := range edges {
		ys = append(ys, e.y0, e.y1)
	}
	sorted := slices.Clone(edges)
	slices.SortFunc(sorted, func(a, b *edge) int { return cmp.Compare(a.y0, b.y0) })
	for i, a := range sorted {
		for _, b := range sorted[i+1:] {
			if b.y0 >= a.y1 {
				break
			}
			lo := math.Max(a.y0, b.y0)
			hi := math.Min(a.y1, b.y1)
			if hi-lo <= areaEpsilon {
				continue
			}
			d0 := a.xAt(lo) - b.xAt(lo)
			d1 := a.xAt(hi) - b.xAt(hi)
			if d0*d1 < 0 {
				ys = append(ys, lo+(hi-lo)*d0/(d0-d1))
			}
		}
	}
	slices.Sort(ys)
	return slices.CompactFunc(ys, func(a, b float64) bool { return math.Abs(a-b) <= areaEpsilon })
}

// slabSpans returns the inside intervals of op on the scanline y, ordered
// left to right.
func slabSpans(op operand, y float64) []span {
	var active []*edge
	for _, e := range op.edges {
		if e.y0 < y && y < e.y1 {
			active = append(active, e)
		}
	}
	slices.SortFunc(active, func(a, b *edge) int { return cmp.Compare(a.xAt(y), b.xAt(y)) })

	var (
		out  []span
		left *edge
		w    int
	)
	for _, e := range active {
		was := op.rule.Inside(w)
		w += e.dir
		now := op.rule.Inside(w)
		switch {
		case !was && now:
			left = e
		case was && !now && left != nil:
			out = append(out, span{l: left, r: e})
			left = nil
		}
	}
	return out
}

func intersectSpans(a, b []span, y float64) []span {
	var out []span
	for _, sa := range a {
		for _, sb := range b {
			l := sa.l
			if sb.l.xAt(y) > l.xAt(y) {
				l = sb.l
			}
			r := sa.r
			if sb.r.xAt(y) < r.xAt(y) {
				r = sb.r
			}
			if l.xAt(y) < r.xAt(y) {
				out = append(out, span{l: l, r: r})
			}
		}
	}
	return out
}
