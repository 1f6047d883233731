package gg2d

import (
	"runtime"
	"strings"

	"golang.org/x/text/cases"

	"github.com/gogpu/gg2d/g2d"
)

// defaultFamilies is the host substitution table for logical family
// names.
var defaultFamilies = familyTable(runtime.GOOS)

func familyTable(goos string) map[string]string {
	sans := "Arial"
	if goos == "darwin" {
		sans = "Helvetica"
	}
	return map[string]string{
		g2d.Monospaced:  "Courier New",
		g2d.SansSerif:   sans,
		g2d.Serif:       "Times New Roman",
		g2d.Dialog:      sans,
		g2d.DialogInput: sans,
	}
}

// foldFamily returns the case-folded family name used for comparisons
// and cache keys.
func foldFamily(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// MapFamily resolves a font name to the family looked up in the typeface
// cache. remap, when non-nil, runs first and may return "" to keep the
// name. The host substitution table is applied to the result.
func MapFamily(name string, remap func(string) string) string {
	if remap != nil {
		if mapped := remap(name); mapped != "" {
			Logger().Debug("gg2d: font name remapped", "from", name, "to", mapped)
			name = mapped
		}
	}
	if sub, ok := defaultFamilies[name]; ok {
		return sub
	}
	return name
}

// bundledFamilies lists the folded family names that fall back to the
// bundled Go fonts. The value reports whether the monospaced variant is
// used.
var bundledFamilies = map[string]bool{
	"sansserif":       false,
	"serif":           false,
	"dialog":          false,
	"dialoginput":     false,
	"monospaced":      true,
	"arial":           false,
	"helvetica":       false,
	"times new roman": false,
	"courier new":     true,
}
