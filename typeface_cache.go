package gg2d

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-text/typesetting/fontscan"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/gg2d/g2d"
)

// TypefaceKey identifies a cached typeface.
type TypefaceKey struct {
	Family string
	Style  g2d.FontStyle
}

// TypefaceCache maps (family, style) to loaded font sources. Entries are
// never evicted. A TypefaceCache is safe for concurrent use; two
// goroutines missing on the same key may both load it, and one result is
// kept.
type TypefaceCache struct {
	faces  sync.Map // TypefaceKey -> *text.FontSource
	system *SystemFonts
}

// NewTypefaceCache returns an empty cache. Families are looked up in
// system, then in the bundled Go fonts. A nil system restricts lookups to
// the bundled fonts.
func NewTypefaceCache(system *SystemFonts) *TypefaceCache {
	return &TypefaceCache{system: system}
}

var (
	sharedCacheOnce sync.Once
	sharedCache     *TypefaceCache
)

// SharedTypefaceCache returns the process-wide cache used by contexts
// created without WithTypefaceCache. It searches the host's installed
// fonts.
func SharedTypefaceCache() *TypefaceCache {
	sharedCacheOnce.Do(func() {
		sharedCache = NewTypefaceCache(&SystemFonts{})
	})
	return sharedCache
}

// Typeface returns the font source for family and style, loading it on
// first use. It fails with a *TypefaceError when nothing matches.
func (c *TypefaceCache) Typeface(family string, style g2d.FontStyle) (*text.FontSource, error) {
	key := TypefaceKey{Family: foldFamily(family), Style: style}
	if v, ok := c.faces.Load(key); ok {
		return v.(*text.FontSource), nil
	}
	src, err := c.load(family, style)
	if err != nil {
		return nil, err
	}
	v, loaded := c.faces.LoadOrStore(key, src)
	if loaded {
		_ = src.Close()
	}
	return v.(*text.FontSource), nil
}

// Len returns the number of cached typefaces.
func (c *TypefaceCache) Len() int {
	n := 0
	c.faces.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

func (c *TypefaceCache) load(family string, style g2d.FontStyle) (*text.FontSource, error) {
	if c.system != nil {
		if src := c.system.find(family, style); src != nil {
			Logger().Debug("gg2d: typeface loaded", "family", family, "style", style, "name", src.Name())
			return src, nil
		}
	}
	mono, ok := bundledFamilies[foldFamily(family)]
	if !ok {
		return nil, &TypefaceError{Family: family, Style: style}
	}
	src, err := text.NewFontSource(bundledFont(mono, style))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", &TypefaceError{Family: family, Style: style}, err)
	}
	Logger().Debug("gg2d: typeface from bundled fonts", "family", family, "style", style)
	return src, nil
}

func bundledFont(mono bool, style g2d.FontStyle) []byte {
	switch {
	case mono && style == g2d.BoldItalic:
		return gomonobolditalic.TTF
	case mono && style == g2d.Bold:
		return gomonobold.TTF
	case mono && style == g2d.Italic:
		return gomonoitalic.TTF
	case mono:
		return gomono.TTF
	case style == g2d.BoldItalic:
		return gobolditalic.TTF
	case style == g2d.Bold:
		return gobold.TTF
	case style == g2d.Italic:
		return goitalic.TTF
	default:
		return goregular.TTF
	}
}

// SystemFonts finds typefaces among the fonts installed on the host. The
// font directories are scanned once, on first use; the scan index is kept
// in CacheDir, or in the user cache directory when CacheDir is empty.
type SystemFonts struct {
	CacheDir string

	once sync.Once
	fm   *fontscan.FontMap
}

func (s *SystemFonts) fontMap() *fontscan.FontMap {
	s.once.Do(func() {
		fm := fontscan.NewFontMap(scanLogger{})
		if err := fm.UseSystemFonts(s.CacheDir); err != nil {
			Logger().Warn("gg2d: system font scan failed", "err", err)
			return
		}
		s.fm = fm
	})
	return s.fm
}

// find returns the installed font of family whose name best matches
// style, or nil.
func (s *SystemFonts) find(family string, style g2d.FontStyle) *text.FontSource {
	fm := s.fontMap()
	if fm == nil {
		return nil
	}
	var best *text.FontSource
	bestScore := -1
	for _, loc := range fm.FindSystemFonts(family) {
		src, err := text.NewFontSourceFromFile(loc.File, text.WithCollectionIndex(int(loc.Index)))
		if err != nil {
			Logger().Debug("gg2d: unreadable system font", "file", loc.File, "err", err)
			continue
		}
		score := styleScore(src.Parsed().FullName(), style)
		if score > bestScore {
			if best != nil {
				_ = best.Close()
			}
			best, bestScore = src, score
		} else {
			_ = src.Close()
		}
	}
	return best
}

// styleScore rates how well a full font name such as "Arial Bold Italic"
// matches style. Each matching trait scores one point.
func styleScore(fullName string, style g2d.FontStyle) int {
	n := foldFamily(fullName)
	bold := strings.Contains(n, "bold")
	italic := strings.Contains(n, "italic") || strings.Contains(n, "oblique")
	score := 0
	if bold == (style&g2d.Bold != 0) {
		score++
	}
	if italic == (style&g2d.Italic != 0) {
		score++
	}
	return score
}

// scanLogger routes fontscan diagnostics to the gg2d logger.
type scanLogger struct{}

func (scanLogger) Printf(format string, args ...any) {
	Logger().Debug(fmt.Sprintf(format, args...))
}
