package geom

import "math"

// DefaultTolerance is the maximum distance between a curve and its
// flattened polyline, in the units of the shape being flattened.
const DefaultTolerance = 0.05

// maxCurveSteps bounds the number of line segments emitted per curve.
const maxCurveSteps = 256

// Flatten converts the outline of s into polylines, one per subpath.
// Every polyline is implicitly closed.
func Flatten(s Shape, t *Affine, tol float64) [][]Point {
	if tol <= 0 {
		tol = DefaultTolerance
	}
	var (
		out  [][]Point
		poly []Point
		cur  Point
	)
	flush := func() {
		if len(poly) > 1 {
			out = append(out, poly)
		}
		poly = nil
	}
	for seg := range s.Segments(t) {
		switch seg.Kind {
		case SegMoveTo:
			flush()
			cur = seg.Points[0]
			poly = []Point{cur}
		case SegLineTo:
			if poly == nil {
				poly = []Point{cur}
			}
			cur = seg.Points[0]
			poly = append(poly, cur)
		case SegQuadTo:
			if poly == nil {
				poly = []Point{cur}
			}
			poly = flattenQuad(poly, cur, seg.Points[0], seg.Points[1], tol)
			cur = seg.Points[1]
		case SegCubicTo:
			if poly == nil {
				poly = []Point{cur}
			}
			poly = flattenCubic(poly, cur, seg.Points[0], seg.Points[1], seg.Points[2], tol)
			cur = seg.Points[2]
		case SegClose:
			if len(poly) > 0 {
				cur = poly[0]
			}
			flush()
		}
	}
	flush()
	return out
}

func curveSteps(dd, tol float64) int {
	n := int(math.Ceil(math.Sqrt(dd / tol)))
	return max(1, min(n, maxCurveSteps))
}

func flattenQuad(poly []Point, p0, p1, p2 Point, tol float64) []Point {
	dd := math.Hypot(p0.X-2*p1.X+p2.X, p0.Y-2*p1.Y+p2.Y) / 4
	n := curveSteps(dd, tol)
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		mt := 1 - t
		poly = append(poly, Point{
			X: mt*mt*p0.X + 2*mt*t*p1.X + t*t*p2.X,
			Y: mt*mt*p0.Y + 2*mt*t*p1.Y + t*t*p2.Y,
		})
	}
	return poly
}

func flattenCubic(poly []Point, p0, p1, p2, p3 Point, tol float64) []Point {
	d1 := math.Hypot(p0.X-2*p1.X+p2.X, p0.Y-2*p1.Y+p2.Y)
	d2 := math.Hypot(p1.X-2*p2.X+p3.X, p1.Y-2*p2.Y+p3.Y)
	n := curveSteps(0.75*math.Max(d1, d2), tol)
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		mt := 1 - t
		a, b, c, d := mt*mt*mt, 3*mt*mt*t, 3*mt*t*t, t*t*t
		poly = append(poly, Point{
			X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
			Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
		})
	}
	return poly
}

// Winding returns the winding number of the closed polylines around p.
func Winding(polys [][]Point, p Point) int {
	w := 0
	for _, poly := range polys {
		n := len(poly)
		for i := range n {
			a, b := poly[i], poly[(i+1)%n]
			if a.Y <= p.Y {
				if b.Y > p.Y && cross(a, b, p) > 0 {
					w++
				}
			} else if b.Y <= p.Y && cross(a, b, p) < 0 {
				w--
			}
		}
	}
	return w
}

// cross is the z component of (b-a) x (p-a).
func cross(a, b, p Point) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (p.X-a.X)*(b.Y-a.Y)
}

func containsByWinding(s Shape, p Point) bool {
	return s.WindingRule().Inside(Winding(Flatten(s, nil, DefaultTolerance), p))
}
