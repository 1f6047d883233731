package g2d

import "slices"

// CapStyle is a legacy line cap code.
type CapStyle int

// Legacy cap codes.
const (
	CapButt   CapStyle = 0
	CapRound  CapStyle = 1
	CapSquare CapStyle = 2
)

// JoinStyle is a legacy line join code.
type JoinStyle int

// Legacy join codes.
const (
	JoinMiter JoinStyle = 0
	JoinRound JoinStyle = 1
	JoinBevel JoinStyle = 2
)

// BasicStroke describes how outlines are stroked.
//
// Cap and Join are raw codes so that out-of-range values can be carried to
// the point where they are rejected.
type BasicStroke struct {
	Width      float64
	Cap        CapStyle
	Join       JoinStyle
	MiterLimit float64
	Dash       []float64
	DashPhase  float64
}

// NewBasicStroke returns a solid stroke of the given width with square caps,
// miter joins and a miter limit of 10, the legacy defaults.
func NewBasicStroke(width float64) BasicStroke {
	return BasicStroke{Width: width, Cap: CapSquare, Join: JoinMiter, MiterLimit: 10}
}

// DefaultStroke is the stroke every new graphics context starts with.
func DefaultStroke() BasicStroke { return NewBasicStroke(1) }

// Equal reports whether two strokes are identical, dash array included.
func (s BasicStroke) Equal(o BasicStroke) bool {
	return s.Width == o.Width && s.Cap == o.Cap && s.Join == o.Join &&
		s.MiterLimit == o.MiterLimit && s.DashPhase == o.DashPhase &&
		slices.Equal(s.Dash, o.Dash)
}

// Clone returns a copy that does not share the dash array.
func (s BasicStroke) Clone() BasicStroke {
	s.Dash = slices.Clone(s.Dash)
	return s
}
