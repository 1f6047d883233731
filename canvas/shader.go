package canvas

import (
	"math"

	"github.com/gogpu/gg"
)

// TileMode controls how a gradient extends past its end stops.
type TileMode uint8

const (
	// TileClamp extends the end colors.
	TileClamp TileMode = iota
	// TileRepeat restarts the gradient.
	TileRepeat
	// TileMirror reflects the gradient back and forth.
	TileMirror
)

func (m TileMode) extend() gg.ExtendMode {
	switch m {
	case TileRepeat:
		return gg.ExtendRepeat
	case TileMirror:
		return gg.ExtendReflect
	default:
		return gg.ExtendPad
	}
}

// Shader is a source of color defined in user space.
type Shader interface {
	// Brush returns a brush that samples the shader at device coordinates
	// for a canvas whose current matrix is ctm.
	Brush(ctm gg.Matrix, alpha float64) gg.Brush

	// DeviceBrush returns a solid or native gradient brush with its
	// geometry mapped to device space by ctm. Recording backends only
	// keep these brush kinds. Gradients under rotation or non-uniform
	// scale are approximated by mapping their control points.
	DeviceBrush(ctm gg.Matrix, alpha float64) gg.Brush
}

// ShaderFactory builds shaders. The gg2d adapter creates every shader
// through one, so tests can count constructions.
type ShaderFactory interface {
	Color(c gg.RGBA) Shader
	LinearGradient(start, end gg.Point, stops []gg.ColorStop, tile TileMode) Shader
	RadialGradient(center gg.Point, radius float64, stops []gg.ColorStop, tile TileMode) Shader
	TwoPointConical(start gg.Point, startRadius float64, end gg.Point, endRadius float64, stops []gg.ColorStop, tile TileMode) Shader
}

// DefaultShaderFactory builds the shaders of this package.
type DefaultShaderFactory struct{}

var _ ShaderFactory = DefaultShaderFactory{}

func (DefaultShaderFactory) Color(c gg.RGBA) Shader { return ColorShader{Color: c} }

func (DefaultShaderFactory) LinearGradient(start, end gg.Point, stops []gg.ColorStop, tile TileMode) Shader {
	return &LinearGradientShader{Start: start, End: end, Stops: stops, Tile: tile}
}

func (DefaultShaderFactory) RadialGradient(center gg.Point, radius float64, stops []gg.ColorStop, tile TileMode) Shader {
	return &RadialGradientShader{Center: center, Radius: radius, Stops: stops, Tile: tile}
}

func (DefaultShaderFactory) TwoPointConical(start gg.Point, startRadius float64, end gg.Point, endRadius float64, stops []gg.ColorStop, tile TileMode) Shader {
	return &TwoPointConicalShader{
		Start: start, StartRadius: startRadius,
		End: end, EndRadius: endRadius,
		Stops: stops, Tile: tile,
	}
}

// ColorShader paints a single color.
type ColorShader struct {
	Color gg.RGBA
}

func (s ColorShader) Brush(_ gg.Matrix, alpha float64) gg.Brush {
	return gg.Solid(withAlpha(s.Color, alpha))
}

func (s ColorShader) DeviceBrush(_ gg.Matrix, alpha float64) gg.Brush {
	return gg.Solid(withAlpha(s.Color, alpha))
}

// LinearGradientShader interpolates its stops along Start to End.
type LinearGradientShader struct {
	Start, End gg.Point
	Stops      []gg.ColorStop
	Tile       TileMode
}

func (s *LinearGradientShader) native(m gg.Matrix, alpha float64) *gg.LinearGradientBrush {
	p0 := m.TransformPoint(s.Start)
	p1 := m.TransformPoint(s.End)
	b := gg.NewLinearGradientBrush(p0.X, p0.Y, p1.X, p1.Y).SetExtend(s.Tile.extend())
	for _, st := range s.Stops {
		b.AddColorStop(st.Offset, withAlpha(st.Color, alpha))
	}
	return b
}

func (s *LinearGradientShader) Brush(ctm gg.Matrix, alpha float64) gg.Brush {
	return userSpaceBrush(s.native(gg.Identity(), alpha), ctm)
}

func (s *LinearGradientShader) DeviceBrush(ctm gg.Matrix, alpha float64) gg.Brush {
	return s.native(ctm, alpha)
}

// RadialGradientShader interpolates its stops from Center out to Radius.
type RadialGradientShader struct {
	Center gg.Point
	Radius float64
	Stops  []gg.ColorStop
	Tile   TileMode
}

func (s *RadialGradientShader) native(m gg.Matrix, alpha float64) *gg.RadialGradientBrush {
	c := m.TransformPoint(s.Center)
	b := gg.NewRadialGradientBrush(c.X, c.Y, 0, s.Radius*m.ScaleFactor()).SetExtend(s.Tile.extend())
	for _, st := range s.Stops {
		b.AddColorStop(st.Offset, withAlpha(st.Color, alpha))
	}
	return b
}

func (s *RadialGradientShader) Brush(ctm gg.Matrix, alpha float64) gg.Brush {
	return userSpaceBrush(s.native(gg.Identity(), alpha), ctm)
}

func (s *RadialGradientShader) DeviceBrush(ctm gg.Matrix, alpha float64) gg.Brush {
	return s.native(ctm, alpha)
}

// TwoPointConicalShader interpolates between the circle (Start,
// StartRadius) and the circle (End, EndRadius).
type TwoPointConicalShader struct {
	Start       gg.Point
	StartRadius float64
	End         gg.Point
	EndRadius   float64
	Stops       []gg.ColorStop
	Tile        TileMode
}

func (s *TwoPointConicalShader) native(m gg.Matrix, alpha float64) *gg.RadialGradientBrush {
	sc := m.ScaleFactor()
	c := m.TransformPoint(s.End)
	f := m.TransformPoint(s.Start)
	b := gg.NewRadialGradientBrush(c.X, c.Y, s.StartRadius*sc, s.EndRadius*sc).
		SetFocus(f.X, f.Y).
		SetExtend(s.Tile.extend())
	for _, st := range s.Stops {
		b.AddColorStop(st.Offset, withAlpha(st.Color, alpha))
	}
	return b
}

func (s *TwoPointConicalShader) Brush(ctm gg.Matrix, alpha float64) gg.Brush {
	return userSpaceBrush(s.native(gg.Identity(), alpha), ctm)
}

func (s *TwoPointConicalShader) DeviceBrush(ctm gg.Matrix, alpha float64) gg.Brush {
	return s.native(ctm, alpha)
}

// userSpaceBrush wraps a brush defined in user space so it can be sampled
// at device coordinates. A singular ctm collapses user space to a line, so
// the brush's color at the origin is used everywhere.
func userSpaceBrush(b gg.Brush, ctm gg.Matrix) gg.Brush {
	if ctm.IsIdentity() {
		return b
	}
	if det := ctm.A*ctm.E - ctm.B*ctm.D; math.Abs(det) < 1e-10 {
		return gg.Solid(b.ColorAt(0, 0))
	}
	inv := ctm.Invert()
	return gg.NewCustomBrush(func(x, y float64) gg.RGBA {
		p := inv.TransformPoint(gg.Pt(x, y))
		return b.ColorAt(p.X, p.Y)
	})
}

func withAlpha(c gg.RGBA, alpha float64) gg.RGBA {
	c.A *= alpha
	return c
}

// brushShader adapts an already device-space brush, as produced by
// playback, to the Shader interface.
type brushShader struct {
	brush gg.Brush
}

func (s brushShader) Brush(_ gg.Matrix, alpha float64) gg.Brush {
	return alphaBrush(s.brush, alpha)
}

func (s brushShader) DeviceBrush(_ gg.Matrix, alpha float64) gg.Brush {
	return alphaBrush(s.brush, alpha)
}

func alphaBrush(b gg.Brush, alpha float64) gg.Brush {
	if alpha >= 1 {
		return b
	}
	if sb, ok := b.(gg.SolidBrush); ok {
		return gg.Solid(withAlpha(sb.Color, alpha))
	}
	return gg.NewCustomBrush(func(x, y float64) gg.RGBA {
		return withAlpha(b.ColorAt(x, y), alpha)
	})
}
