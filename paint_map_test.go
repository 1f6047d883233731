package gg2d

import (
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/gg2d/canvas"
	"github.com/gogpu/gg2d/g2d"
	"github.com/gogpu/gg2d/geom"
)

func TestMapPaint(t *testing.T) {
	f := canvas.DefaultShaderFactory{}
	fractions := []float64{0, 1}
	colors := []g2d.Color{g2d.Red, g2d.Blue}

	t.Run("color", func(t *testing.T) {
		s, ok := MapPaint(f, g2d.Red).(canvas.ColorShader)
		if !ok || s.Color != (gg.RGBA{R: 1, A: 1}) {
			t.Errorf("MapPaint(Red) = %#v", s)
		}
	})
	t.Run("radial centered", func(t *testing.T) {
		p := g2d.NewRadialGradientPaint(geom.Pt(10, 10), 5, fractions, colors, g2d.Repeat)
		s, ok := MapPaint(f, p).(*canvas.RadialGradientShader)
		if !ok {
			t.Fatalf("MapPaint = %T, want *RadialGradientShader", MapPaint(f, p))
		}
		if s.Radius != 5 || s.Tile != canvas.TileRepeat || len(s.Stops) != 2 {
			t.Errorf("shader = %+v", s)
		}
	})
	t.Run("radial with focus", func(t *testing.T) {
		p := &g2d.RadialGradientPaint{
			Center: geom.Pt(10, 10), Focus: geom.Pt(12, 10), Radius: 5,
			Fractions: fractions, Colors: colors, Cycle: g2d.Reflect,
		}
		s, ok := MapPaint(f, p).(*canvas.TwoPointConicalShader)
		if !ok {
			t.Fatalf("MapPaint = %T, want *TwoPointConicalShader", MapPaint(f, p))
		}
		if s.Start != gg.Pt(12, 10) || s.StartRadius != 0 || s.End != gg.Pt(10, 10) || s.EndRadius != 5 {
			t.Errorf("shader geometry = %+v", s)
		}
		if s.Tile != canvas.TileMirror {
			t.Errorf("Tile = %v, want TileMirror", s.Tile)
		}
	})
	t.Run("two color gradient", func(t *testing.T) {
		for _, cyclic := range []bool{false, true} {
			p := &g2d.GradientPaint{P1: geom.Pt(0, 0), P2: geom.Pt(10, 0), C1: g2d.Red, C2: g2d.Blue, Cyclic: cyclic}
			s, ok := MapPaint(f, p).(*canvas.LinearGradientShader)
			if !ok {
				t.Fatalf("MapPaint = %T", MapPaint(f, p))
			}
			want := canvas.TileClamp
			if cyclic {
				want = canvas.TileMirror
			}
			if s.Tile != want || len(s.Stops) != 2 || s.Stops[1].Color != (gg.RGBA{B: 1, A: 1}) {
				t.Errorf("cyclic=%v: shader = %+v", cyclic, s)
			}
		}
	})
	t.Run("mismatched stops", func(t *testing.T) {
		p := &g2d.LinearGradientPaint{End: geom.Pt(1, 0), Fractions: []float64{0, 0.5, 1}, Colors: colors}
		s := MapPaint(f, p).(*canvas.LinearGradientShader)
		if len(s.Stops) != 2 {
			t.Errorf("got %d stops, want 2", len(s.Stops))
		}
	})
	t.Run("nil paint", func(t *testing.T) {
		s, ok := MapPaint(f, nil).(canvas.ColorShader)
		if !ok || s.Color != gg.Black {
			t.Errorf("MapPaint(nil) = %#v, want black", s)
		}
	})
}

func TestBlendMode(t *testing.T) {
	tests := []struct {
		rule g2d.CompositeRule
		want canvas.BlendMode
	}{
		{g2d.RuleClear, canvas.BlendClear},
		{g2d.RuleSrc, canvas.BlendSrc},
		{g2d.RuleSrcOver, canvas.BlendSrcOver},
		{g2d.RuleDstOver, canvas.BlendDstOver},
		{g2d.RuleSrcIn, canvas.BlendSrcIn},
		{g2d.RuleDstIn, canvas.BlendDstIn},
		{g2d.RuleSrcOut, canvas.BlendSrcOut},
		{g2d.RuleDstOut, canvas.BlendDstOut},
		{g2d.RuleDst, canvas.BlendDst},
		{g2d.RuleSrcAtop, canvas.BlendSrcATop},
		{g2d.RuleDstAtop, canvas.BlendDstATop},
		{g2d.RuleXor, canvas.BlendXor},
		{g2d.CompositeRule(99), canvas.BlendSrcOver},
	}
	for _, tt := range tests {
		if got := blendMode(tt.rule); got != tt.want {
			t.Errorf("blendMode(%v) = %v, want %v", tt.rule, got, tt.want)
		}
	}
}

// countingFactory counts the shaders it builds.
type countingFactory struct {
	canvas.DefaultShaderFactory
	colors, linear int
}

func (f *countingFactory) LinearGradient(start, end gg.Point, stops []gg.ColorStop, tile canvas.TileMode) canvas.Shader {
	f.linear++
	return f.DefaultShaderFactory.LinearGradient(start, end, stops, tile)
}

func (f *countingFactory) Color(c gg.RGBA) canvas.Shader {
	f.colors++
	return f.DefaultShaderFactory.Color(c)
}

func TestSetPaintMemoized(t *testing.T) {
	f := &countingFactory{}
	g := newGraphics(t, 10, 10, WithShaderFactory(f))
	base := f.colors

	g.SetColor(g2d.Red)
	g.SetColor(g2d.Red)
	g.SetPaint(g2d.Red)
	if got := f.colors - base; got != 1 {
		t.Errorf("shader built %d times for the same color, want 1", got)
	}
	g.SetPaint(nil)
	if g.Paint() != g2d.Paint(g2d.Red) {
		t.Errorf("SetPaint(nil) changed the paint to %v", g.Paint())
	}
	g.SetColor(g2d.Blue)
	if got := f.colors - base; got != 2 {
		t.Errorf("shader built %d times, want 2", got)
	}
}

func TestSetPaintCopiesGradient(t *testing.T) {
	f := &countingFactory{}
	g := newGraphics(t, 10, 10, WithShaderFactory(f))
	lg := &g2d.LinearGradientPaint{
		End:       geom.Pt(10, 0),
		Fractions: []float64{0, 1},
		Colors:    []g2d.Color{g2d.Red, g2d.Blue},
	}
	g.SetPaint(lg)
	g.SetPaint(lg)
	if f.linear != 1 {
		t.Fatalf("shader built %d times for an unchanged gradient, want 1", f.linear)
	}

	lg.Colors[1] = g2d.Green
	lg.End = geom.Pt(5, 0)
	got, ok := g.Paint().(*g2d.LinearGradientPaint)
	if !ok || got.Colors[1] != g2d.Blue || got.End != geom.Pt(10, 0) {
		t.Errorf("stored paint follows caller's edits: %+v", got)
	}
	g.SetPaint(lg)
	if f.linear != 2 {
		t.Errorf("shader built %d times after the gradient changed, want 2", f.linear)
	}

	got.Colors[0] = g2d.Green
	g.SetPaint(lg)
	if f.linear != 2 {
		t.Errorf("editing the returned paint rebuilt the shader: %d", f.linear)
	}
}

func TestPaintsEqualSamePointer(t *testing.T) {
	p := &g2d.RadialGradientPaint{Radius: 4, Fractions: []float64{0, 1}, Colors: []g2d.Color{g2d.Red, g2d.Blue}}
	if !g2d.PaintsEqual(p, p) {
		t.Error("paint differs from itself")
	}
	q := g2d.ClonePaint(p).(*g2d.RadialGradientPaint)
	q.Colors[0] = g2d.Green
	if g2d.PaintsEqual(p, q) || p.Colors[0] != g2d.Red {
		t.Errorf("clone shares colors with the original: %v", p.Colors)
	}
}
