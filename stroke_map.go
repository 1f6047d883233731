package gg2d

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/gg2d/g2d"
)

// MinLineWidth is the narrowest stroke drawn. Thinner strokes, including
// zero-width ones, are widened to it so they stay visible.
const MinLineWidth = 0.1

// MapStroke converts a legacy stroke to a gg stroke. Unknown cap or join
// codes fail with a *StrokeAttributeError. An unusable dash pattern is
// dropped and the stroke is drawn solid.
func MapStroke(s g2d.BasicStroke) (gg.Stroke, error) {
	out := gg.Stroke{
		Width:      max(s.Width, MinLineWidth),
		MiterLimit: s.MiterLimit,
	}
	switch s.Cap {
	case g2d.CapButt:
		out.Cap = gg.LineCapButt
	case g2d.CapRound:
		out.Cap = gg.LineCapRound
	case g2d.CapSquare:
		out.Cap = gg.LineCapSquare
	default:
		return gg.Stroke{}, &StrokeAttributeError{Attribute: "cap", Code: int(s.Cap)}
	}
	switch s.Join {
	case g2d.JoinMiter:
		out.Join = gg.LineJoinMiter
	case g2d.JoinRound:
		out.Join = gg.LineJoinRound
	case g2d.JoinBevel:
		out.Join = gg.LineJoinBevel
	default:
		return gg.Stroke{}, &StrokeAttributeError{Attribute: "join", Code: int(s.Join)}
	}
	if len(s.Dash) > 0 {
		out.Dash = buildDash(s.Dash, s.DashPhase)
	}
	return out, nil
}

// buildDash returns the gg dash for pattern, or nil when the pattern
// cannot be used.
func buildDash(pattern []float64, phase float64) (d *gg.Dash) {
	defer func() {
		if r := recover(); r != nil {
			Logger().Debug("gg2d: dash construction failed, drawing solid", "pattern", pattern, "panic", r)
			d = nil
		}
	}()
	for _, v := range pattern {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			Logger().Debug("gg2d: non-finite dash pattern, drawing solid", "pattern", pattern)
			return nil
		}
	}
	if math.IsNaN(phase) || math.IsInf(phase, 0) {
		phase = 0
	}
	d = gg.NewDash(pattern...)
	if d == nil {
		Logger().Debug("gg2d: empty dash pattern, drawing solid", "pattern", pattern)
		return nil
	}
	return d.WithOffset(phase)
}
