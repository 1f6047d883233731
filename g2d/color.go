package g2d

import (
	"fmt"
	"image/color"
)

// Color is a non-premultiplied 8-bit sRGB color. It is also a Paint.
type Color struct {
	R, G, B, A uint8
}

// Predefined colors.
var (
	Black     = Color{0, 0, 0, 255}
	White     = Color{255, 255, 255, 255}
	Red       = Color{255, 0, 0, 255}
	Green     = Color{0, 255, 0, 255}
	Blue      = Color{0, 0, 255, 255}
	Yellow    = Color{255, 255, 0, 255}
	Gray      = Color{128, 128, 128, 255}
	LightGray = Color{192, 192, 192, 255}
	DarkGray  = Color{64, 64, 64, 255}
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 255} }

// ARGB unpacks a 0xAARRGGBB value.
func ARGB(v uint32) Color {
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: uint8(v >> 24)}
}

// FromColor converts any image/color value.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Packed returns the color as 0xAARRGGBB.
func (c Color) Packed() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// RGBA implements color.Color and returns alpha-premultiplied values.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Opaque reports whether alpha is 255.
func (c Color) Opaque() bool { return c.A == 255 }

// String formats the color as #rrggbbaa.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func (Color) isPaint() {}
