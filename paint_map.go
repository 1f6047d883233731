package gg2d

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/gg2d/canvas"
	"github.com/gogpu/gg2d/g2d"
)

// MapPaint builds the shader for p through f. Unknown paint kinds map to
// opaque black.
func MapPaint(f canvas.ShaderFactory, p g2d.Paint) canvas.Shader {
	switch v := p.(type) {
	case g2d.Color:
		return f.Color(toRGBA(v))
	case *g2d.LinearGradientPaint:
		return f.LinearGradient(toPoint(v.Start), toPoint(v.End), colorStops(v.Fractions, v.Colors), tileMode(v.Cycle))
	case *g2d.RadialGradientPaint:
		stops := colorStops(v.Fractions, v.Colors)
		if v.Focus == v.Center {
			return f.RadialGradient(toPoint(v.Center), v.Radius, stops, tileMode(v.Cycle))
		}
		return f.TwoPointConical(toPoint(v.Focus), 0, toPoint(v.Center), v.Radius, stops, tileMode(v.Cycle))
	case *g2d.GradientPaint:
		tile := canvas.TileClamp
		if v.Cyclic {
			tile = canvas.TileMirror
		}
		stops := []gg.ColorStop{
			{Offset: 0, Color: toRGBA(v.C1)},
			{Offset: 1, Color: toRGBA(v.C2)},
		}
		return f.LinearGradient(toPoint(v.P1), toPoint(v.P2), stops, tile)
	default:
		return f.Color(gg.Black)
	}
}

func tileMode(m g2d.CycleMethod) canvas.TileMode {
	switch m {
	case g2d.Repeat:
		return canvas.TileRepeat
	case g2d.Reflect:
		return canvas.TileMirror
	default:
		return canvas.TileClamp
	}
}

// colorStops pairs fractions with colors. Extra entries on either side
// are dropped.
func colorStops(fractions []float64, colors []g2d.Color) []gg.ColorStop {
	n := min(len(fractions), len(colors))
	stops := make([]gg.ColorStop, n)
	for i := range n {
		stops[i] = gg.ColorStop{Offset: fractions[i], Color: toRGBA(colors[i])}
	}
	return stops
}

func toRGBA(c g2d.Color) gg.RGBA {
	return gg.RGBA{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}

// blendMode maps a composite rule to the canvas blend mode.
func blendMode(r g2d.CompositeRule) canvas.BlendMode {
	switch r {
	case g2d.RuleClear:
		return canvas.BlendClear
	case g2d.RuleSrc:
		return canvas.BlendSrc
	case g2d.RuleDst:
		return canvas.BlendDst
	case g2d.RuleDstOver:
		return canvas.BlendDstOver
	case g2d.RuleSrcIn:
		return canvas.BlendSrcIn
	case g2d.RuleDstIn:
		return canvas.BlendDstIn
	case g2d.RuleSrcOut:
		return canvas.BlendSrcOut
	case g2d.RuleDstOut:
		return canvas.BlendDstOut
	case g2d.RuleSrcAtop:
		return canvas.BlendSrcATop
	case g2d.RuleDstAtop:
		return canvas.BlendDstATop
	case g2d.RuleXor:
		return canvas.BlendXor
	default:
		return canvas.BlendSrcOver
	}
}
