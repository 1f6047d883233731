package g2d

import "fmt"

// FontStyle is a combination of Bold and Italic.
type FontStyle int

// Font styles. BoldItalic is Bold|Italic.
const (
	Plain      FontStyle = 0
	Bold       FontStyle = 1
	Italic     FontStyle = 2
	BoldItalic FontStyle = Bold | Italic
)

// String returns the style name.
func (s FontStyle) String() string {
	switch s {
	case Plain:
		return "plain"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case BoldItalic:
		return "bold-italic"
	default:
		return fmt.Sprintf("FontStyle(%d)", int(s))
	}
}

// Logical font family names. Implementations map them to concrete
// families available on the host.
const (
	Dialog      = "Dialog"
	DialogInput = "DialogInput"
	SansSerif   = "SansSerif"
	Serif       = "Serif"
	Monospaced  = "Monospaced"
)

// Font names a typeface, a style and a point size.
type Font struct {
	Name  string
	Style FontStyle
	Size  float64
}

// DefaultFont is the font every new graphics context starts with.
var DefaultFont = Font{Name: SansSerif, Style: Plain, Size: 12}

// IsBold reports whether the bold bit is set.
func (f Font) IsBold() bool { return f.Style&Bold != 0 }

// IsItalic reports whether the italic bit is set.
func (f Font) IsItalic() bool { return f.Style&Italic != 0 }

// Derive returns a copy with a different size.
func (f Font) Derive(size float64) Font {
	f.Size = size
	return f
}

// String formats the font as name-style-size.
func (f Font) String() string {
	return fmt.Sprintf("%s-%s-%g", f.Name, f.Style, f.Size)
}
