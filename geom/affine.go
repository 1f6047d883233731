package geom

import (
	"errors"
	"math"

	"github.com/gogpu/gg"
)

// ErrNonInvertible is returned when an affine transform has no inverse.
var ErrNonInvertible = errors.New("geom: transform is not invertible")

// determinantEpsilon is the smallest determinant magnitude treated as
// invertible. It matches the cutoff of gg.Matrix.Invert.
const determinantEpsilon = 1e-10

// Point is a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Affine is a 2D affine transform. It is a gg.Matrix, so it converts to
// and from the engine's type for free:
//
//	| A B C |
//	| D E F |
//	| 0 0 1 |
//
// A point maps to (A*x + B*y + C, D*x + E*y + F).
type Affine gg.Matrix

// Identity returns the identity transform.
func Identity() Affine { return Affine(gg.Identity()) }

// NewAffine builds a transform from the six matrix entries in the legacy
// column order (m00, m10, m01, m11, m02, m12).
func NewAffine(m00, m10, m01, m11, m02, m12 float64) Affine {
	return Affine{A: m00, B: m01, C: m02, D: m10, E: m11, F: m12}
}

// Translation returns a pure translation.
func Translation(tx, ty float64) Affine { return Affine(gg.Translate(tx, ty)) }

// Scaling returns a pure scale.
func Scaling(sx, sy float64) Affine { return Affine(gg.Scale(sx, sy)) }

// Rotation returns a rotation by theta radians.
func Rotation(theta float64) Affine { return Affine(gg.Rotate(theta)) }

// Shearing returns a shear transform.
func Shearing(shx, shy float64) Affine { return Affine(gg.Shear(shx, shy)) }

// Matrix returns m as the engine's matrix type.
func (m Affine) Matrix() gg.Matrix { return gg.Matrix(m) }

// Concat returns m × t: t is applied first, then m, as the legacy
// concatenate does.
func (m Affine) Concat(t Affine) Affine {
	return Affine(gg.Matrix(m).Multiply(gg.Matrix(t)))
}

// Translate returns m with a translation applied before it.
func (m Affine) Translate(tx, ty float64) Affine { return m.Concat(Translation(tx, ty)) }

// Scale returns m with a scale applied before it.
func (m Affine) Scale(sx, sy float64) Affine { return m.Concat(Scaling(sx, sy)) }

// Rotate returns m with a rotation applied before it.
func (m Affine) Rotate(theta float64) Affine { return m.Concat(Rotation(theta)) }

// RotateAbout returns m with a rotation about (x, y) applied before it.
func (m Affine) RotateAbout(theta, x, y float64) Affine {
	return m.Translate(x, y).Rotate(theta).Translate(-x, -y)
}

// Shear returns m with a shear applied before it.
func (m Affine) Shear(shx, shy float64) Affine { return m.Concat(Shearing(shx, shy)) }

// Apply transforms a point.
func (m Affine) Apply(p Point) Point {
	return Point(gg.Matrix(m).TransformPoint(gg.Point(p)))
}

// ApplyVector transforms a vector, ignoring translation.
func (m Affine) ApplyVector(p Point) Point {
	return Point(gg.Matrix(m).TransformVector(gg.Point(p)))
}

// Determinant returns the determinant of the linear part.
func (m Affine) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// Invertible reports whether Inverse would succeed.
func (m Affine) Invertible() bool {
	det := m.Determinant()
	return !math.IsNaN(det) && !math.IsInf(det, 0) && math.Abs(det) >= determinantEpsilon
}

// Inverse returns the inverse transform, or ErrNonInvertible when the
// determinant is zero or not finite. gg's Invert silently returns the
// identity in that case.
func (m Affine) Inverse() (Affine, error) {
	if !m.Invertible() {
		return Affine{}, ErrNonInvertible
	}
	return Affine(gg.Matrix(m).Invert()), nil
}

// IsIdentity reports whether m is exactly the identity.
func (m Affine) IsIdentity() bool { return gg.Matrix(m).IsIdentity() }

// IsRectilinear reports whether m maps axis-aligned rectangles to
// axis-aligned rectangles (no rotation or shear).
func (m Affine) IsRectilinear() bool {
	return m.B == 0 && m.D == 0
}

// ScaleX returns the m00 entry, the horizontal scale factor of the legacy API.
func (m Affine) ScaleX() float64 { return m.A }

// ScaleY returns the m11 entry.
func (m Affine) ScaleY() float64 { return m.E }

// TranslateX returns the m02 entry.
func (m Affine) TranslateX() float64 { return m.C }

// TranslateY returns the m12 entry.
func (m Affine) TranslateY() float64 { return m.F }

// ApproxEqual reports whether all entries differ by at most eps.
func (m Affine) ApproxEqual(o Affine, eps float64) bool {
	return math.Abs(m.A-o.A) <= eps && math.Abs(m.B-o.B) <= eps && math.Abs(m.C-o.C) <= eps &&
		math.Abs(m.D-o.D) <= eps && math.Abs(m.E-o.E) <= eps && math.Abs(m.F-o.F) <= eps
}
