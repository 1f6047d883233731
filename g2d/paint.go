package g2d

import (
	"slices"

	"github.com/gogpu/gg2d/geom"
)

// Paint is the source of color for fills, strokes and text.
// The set of paints is closed: Color, GradientPaint, LinearGradientPaint
// and RadialGradientPaint.
type Paint interface {
	isPaint()
}

// CycleMethod controls how a multi-stop gradient extends past its ends.
type CycleMethod uint8

const (
	// NoCycle extends the end colors.
	NoCycle CycleMethod = iota
	// Reflect mirrors the gradient back and forth.
	Reflect
	// Repeat restarts the gradient.
	Repeat
)

// String returns the legacy name of the cycle method.
func (m CycleMethod) String() string {
	switch m {
	case NoCycle:
		return "NO_CYCLE"
	case Reflect:
		return "REFLECT"
	case Repeat:
		return "REPEAT"
	default:
		return "CycleMethod(?)"
	}
}

// GradientPaint is a two-color linear gradient between P1 and P2.
// A cyclic gradient mirrors outside the segment; otherwise the end colors
// extend.
type GradientPaint struct {
	P1, P2 geom.Point
	C1, C2 Color
	Cyclic bool
}

func (*GradientPaint) isPaint() {}

// LinearGradientPaint is a multi-stop gradient along Start to End.
// Fractions are increasing values in [0, 1], one per color.
type LinearGradientPaint struct {
	Start, End geom.Point
	Fractions  []float64
	Colors     []Color
	Cycle      CycleMethod
}

func (*LinearGradientPaint) isPaint() {}

// RadialGradientPaint is a multi-stop gradient from Focus out to the circle
// of Radius around Center.
type RadialGradientPaint struct {
	Center    geom.Point
	Focus     geom.Point
	Radius    float64
	Fractions []float64
	Colors    []Color
	Cycle     CycleMethod
}

func (*RadialGradientPaint) isPaint() {}

// NewRadialGradientPaint returns a radial gradient whose focus is its center.
func NewRadialGradientPaint(center geom.Point, radius float64, fractions []float64, colors []Color, cycle CycleMethod) *RadialGradientPaint {
	return &RadialGradientPaint{
		Center:    center,
		Focus:     center,
		Radius:    radius,
		Fractions: fractions,
		Colors:    colors,
		Cycle:     cycle,
	}
}

// PaintsEqual reports whether two paints describe the same color source.
// Gradients compare by value, field by field, not by pointer.
func PaintsEqual(p1, p2 Paint) bool {
	if p1 == nil || p2 == nil {
		return p1 == nil && p2 == nil
	}
	switch a := p1.(type) {
	case Color:
		b, ok := p2.(Color)
		return ok && a == b
	case *GradientPaint:
		b, ok := p2.(*GradientPaint)
		if !ok {
			return false
		}
		if a == nil || b == nil {
			return a == b
		}
		return *a == *b
	case *LinearGradientPaint:
		b, ok := p2.(*LinearGradientPaint)
		if !ok {
			return false
		}
		if a == nil || b == nil {
			return a == b
		}
		return a.Start == b.Start && a.End == b.End && a.Cycle == b.Cycle &&
			slices.Equal(a.Fractions, b.Fractions) && slices.Equal(a.Colors, b.Colors)
	case *RadialGradientPaint:
		b, ok := p2.(*RadialGradientPaint)
		if !ok {
			return false
		}
		if a == nil || b == nil {
			return a == b
		}
		return a.Center == b.Center && a.Focus == b.Focus && a.Radius == b.Radius && a.Cycle == b.Cycle &&
			slices.Equal(a.Fractions, b.Fractions) && slices.Equal(a.Colors, b.Colors)
	default:
		return false
	}
}

// ClonePaint returns a copy of p that shares no memory with it. Colors are
// returned as is.
func ClonePaint(p Paint) Paint {
	switch v := p.(type) {
	case *GradientPaint:
		if v == nil {
			return v
		}
		c := *v
		return &c
	case *LinearGradientPaint:
		if v == nil {
			return v
		}
		c := *v
		c.Fractions = slices.Clone(v.Fractions)
		c.Colors = slices.Clone(v.Colors)
		return &c
	case *RadialGradientPaint:
		if v == nil {
			return v
		}
		c := *v
		c.Fractions = slices.Clone(v.Fractions)
		c.Colors = slices.Clone(v.Colors)
		return &c
	default:
		return p
	}
}
