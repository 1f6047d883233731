package g2d

import (
	"image/color"
	"testing"

	"github.com/gogpu/gg2d/geom"
)

func TestPaintsEqual(t *testing.T) {
	lin := func() *LinearGradientPaint {
		return &LinearGradientPaint{
			Start:     geom.Pt(0, 0),
			End:       geom.Pt(10, 0),
			Fractions: []float64{0, 1},
			Colors:    []Color{Red, Blue},
			Cycle:     Repeat,
		}
	}
	rad := func() *RadialGradientPaint {
		return NewRadialGradientPaint(geom.Pt(5, 5), 4, []float64{0, 0.5, 1}, []Color{Red, Green, Blue}, NoCycle)
	}
	gp := func() *GradientPaint {
		return &GradientPaint{P1: geom.Pt(0, 0), P2: geom.Pt(1, 1), C1: Black, C2: White, Cyclic: true}
	}

	otherStops := lin()
	otherStops.Fractions = []float64{0, 0.9}
	movedFocus := rad()
	movedFocus.Focus = geom.Pt(6, 5)

	tests := []struct {
		name string
		a, b Paint
		want bool
	}{
		{"nil nil", nil, nil, true},
		{"nil color", nil, Red, false},
		{"same color", Red, RGB(255, 0, 0), true},
		{"different color", Red, Blue, false},
		{"linear by value", lin(), lin(), true},
		{"linear stops differ", lin(), otherStops, false},
		{"radial by value", rad(), rad(), true},
		{"radial focus differs", rad(), movedFocus, false},
		{"two color by value", gp(), gp(), true},
		{"kind mismatch", lin(), rad(), false},
		{"color vs gradient", Red, gp(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PaintsEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("PaintsEqual() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColor(t *testing.T) {
	c := ARGB(0x80ff0000)
	if c != (Color{R: 255, A: 128}) {
		t.Fatalf("ARGB = %v", c)
	}
	if c.Packed() != 0x80ff0000 {
		t.Errorf("Packed = %#x", c.Packed())
	}
	if got := FromColor(color.NRGBA{R: 1, G: 2, B: 3, A: 255}); got != RGB(1, 2, 3) {
		t.Errorf("FromColor = %v", got)
	}
	_, _, _, a := c.RGBA()
	if a != 0x8080 {
		t.Errorf("alpha = %#x, want 0x8080", a)
	}
	if c.String() != "#ff000080" {
		t.Errorf("String = %q", c.String())
	}
}

func TestBasicStroke(t *testing.T) {
	s := DefaultStroke()
	if s.Width != 1 || s.Cap != CapSquare || s.Join != JoinMiter || s.MiterLimit != 10 {
		t.Fatalf("DefaultStroke = %+v", s)
	}
	d := s
	d.Dash = []float64{4, 2}
	c := d.Clone()
	c.Dash[0] = 9
	if d.Dash[0] != 4 {
		t.Error("Clone shares the dash array")
	}
	if s.Equal(d) {
		t.Error("strokes with different dashes compare equal")
	}
	if !d.Equal(BasicStroke{Width: 1, Cap: CapSquare, MiterLimit: 10, Dash: []float64{4, 2}}) {
		t.Error("equal strokes compare unequal")
	}
}

func TestAlphaComposite(t *testing.T) {
	if c := NewAlphaComposite(RuleSrcIn, 2); c.Alpha != 1 {
		t.Errorf("alpha not clamped: %v", c.Alpha)
	}
	if c := NewAlphaComposite(RuleSrcIn, -1); c.Alpha != 0 {
		t.Errorf("alpha not clamped: %v", c.Alpha)
	}
	if s := SrcOver.String(); s != "SRC_OVER@1" {
		t.Errorf("String = %q", s)
	}
	if s := CompositeRule(99).String(); s != "CompositeRule(99)" {
		t.Errorf("String = %q", s)
	}
}

func TestHints(t *testing.T) {
	h := DefaultHints()
	if !h.Antialias() {
		t.Error("default hints disable antialiasing")
	}
	c := h.Clone()
	c[KeyAntialiasing] = ValueAntialiasOff
	if !h.Antialias() {
		t.Error("Clone shares storage")
	}
	if c.Antialias() {
		t.Error("antialias off not honoured")
	}
	if h.FontMapping() != nil {
		t.Error("unexpected font mapping")
	}
	c[KeyFontMapping] = func(s string) string { return s + "!" }
	if fn := c.FontMapping(); fn == nil || fn("a") != "a!" {
		t.Error("font mapping not returned")
	}
}

func TestFont(t *testing.T) {
	f := Font{Name: Serif, Style: BoldItalic, Size: 10}
	if !f.IsBold() || !f.IsItalic() {
		t.Error("style bits")
	}
	if got := f.Derive(20).String(); got != "Serif-bold-italic-20" {
		t.Errorf("String = %q", got)
	}
	if DefaultFont != (Font{Name: SansSerif, Size: 12}) {
		t.Errorf("DefaultFont = %v", DefaultFont)
	}
}
