package canvas

import (
	"fmt"

	"github.com/gogpu/gg"
)

// Style selects whether a paint fills or strokes.
type Style uint8

const (
	// StyleFill fills the interior of a path.
	StyleFill Style = iota
	// StyleStroke strokes the outline of a path.
	StyleStroke
)

// BlendMode is a Porter-Duff compositing operator.
type BlendMode uint8

// Porter-Duff operators. The zero value is BlendSrcOver.
const (
	BlendSrcOver BlendMode = iota
	BlendClear
	BlendSrc
	BlendDst
	BlendDstOver
	BlendSrcIn
	BlendDstIn
	BlendSrcOut
	BlendDstOut
	BlendSrcATop
	BlendDstATop
	BlendXor
)

var blendNames = [...]string{
	BlendSrcOver: "SrcOver",
	BlendClear:   "Clear",
	BlendSrc:     "Src",
	BlendDst:     "Dst",
	BlendDstOver: "DstOver",
	BlendSrcIn:   "SrcIn",
	BlendDstIn:   "DstIn",
	BlendSrcOut:  "SrcOut",
	BlendDstOut:  "DstOut",
	BlendSrcATop: "SrcATop",
	BlendDstATop: "DstATop",
	BlendXor:     "Xor",
}

func (m BlendMode) String() string {
	if int(m) < len(blendNames) {
		return blendNames[m]
	}
	return fmt.Sprintf("BlendMode(%d)", m)
}

// Paint carries everything a draw call needs besides geometry.
type Paint struct {
	Style Style

	// Shader supplies color. A nil shader paints opaque black.
	Shader Shader

	// Alpha multiplies the shader's alpha. NewPaint sets it to 1.
	Alpha float64

	Blend BlendMode

	// Stroke is used when Style is StyleStroke and by DrawLine.
	Stroke gg.Stroke

	// FillRule is used when Style is StyleFill.
	FillRule gg.FillRule

	// Antialias is carried for callers that inspect it. The gg engine
	// always antialiases.
	Antialias bool

	// Interpolation is the image sampling mode for DrawImageRect.
	Interpolation gg.InterpolationMode
}

// NewPaint returns an opaque black SrcOver fill paint with a one pixel
// stroke.
func NewPaint() *Paint {
	return &Paint{
		Style:         StyleFill,
		Shader:        ColorShader{Color: gg.Black},
		Alpha:         1,
		Stroke:        gg.DefaultStroke(),
		FillRule:      gg.FillRuleNonZero,
		Antialias:     true,
		Interpolation: gg.InterpBilinear,
	}
}

// Clone returns a copy that shares the shader but not the dash.
func (p *Paint) Clone() *Paint {
	c := *p
	if p.Stroke.Dash != nil {
		c.Stroke.Dash = p.Stroke.Dash.Clone()
	}
	return &c
}

// WithStyle returns a copy with a different style.
func (p *Paint) WithStyle(s Style) *Paint {
	c := p.Clone()
	c.Style = s
	return c
}

func (p *Paint) shader() Shader {
	if p.Shader == nil {
		return ColorShader{Color: gg.Black}
	}
	return p.Shader
}

// alpha clamps Alpha to [0, 1].
func (p *Paint) alpha() float64 {
	return max(0, min(1, p.Alpha))
}
