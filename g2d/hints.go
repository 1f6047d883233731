package g2d

import "maps"

// HintKey names a rendering hint.
type HintKey string

// Rendering hint keys.
const (
	KeyAntialiasing     HintKey = "Antialiasing"
	KeyTextAntialiasing HintKey = "TextAntialiasing"
	KeyRendering        HintKey = "Rendering"
	KeyInterpolation    HintKey = "Interpolation"
	KeyStrokeControl    HintKey = "StrokeControl"

	// KeyFontMapping holds a func(string) string applied to font names
	// before typeface lookup. A result of "" keeps the original name.
	KeyFontMapping HintKey = "FontMapping"
)

// Rendering hint values.
const (
	ValueAntialiasOn      = "on"
	ValueAntialiasOff     = "off"
	ValueAntialiasDefault = "default"

	ValueRenderSpeed   = "speed"
	ValueRenderQuality = "quality"

	ValueInterpolationNearest  = "nearest"
	ValueInterpolationBilinear = "bilinear"
	ValueInterpolationBicubic  = "bicubic"

	ValueStrokeNormalize = "normalize"
	ValueStrokePure      = "pure"
)

// Hints is a set of rendering hints.
type Hints map[HintKey]any

// DefaultHints returns the hints every new graphics context starts with.
func DefaultHints() Hints {
	return Hints{KeyAntialiasing: ValueAntialiasDefault}
}

// Clone returns an independent copy.
func (h Hints) Clone() Hints {
	if h == nil {
		return Hints{}
	}
	return maps.Clone(h)
}

// Antialias reports whether the antialiasing hint is not explicitly off.
func (h Hints) Antialias() bool {
	v, _ := h[KeyAntialiasing].(string)
	return v != ValueAntialiasOff
}

// FontMapping returns the font-name mapping function, if one is set.
func (h Hints) FontMapping() func(string) string {
	fn, _ := h[KeyFontMapping].(func(string) string)
	return fn
}
