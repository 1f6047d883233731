package gg2d

import (
	"github.com/gogpu/gg2d/canvas"
	"github.com/gogpu/gg2d/g2d"
)

// Option configures a Graphics during creation.
//
// Example:
//
//	g, err := gg2d.New(c,
//	    gg2d.WithColor(g2d.White),
//	    gg2d.WithBackground(&g2d.Black),
//	    gg2d.WithOnDispose(present),
//	)
type Option func(*options)

type options struct {
	remap      func(string) string
	shaders    canvas.ShaderFactory
	dispatcher Dispatcher
	background *g2d.Color
	color      g2d.Color
	font       g2d.Font
	typefaces  *TypefaceCache
	onDispose  func()
	id         uint64
}

func defaultOptions() options {
	bg := g2d.Black
	return options{
		shaders:    canvas.DefaultShaderFactory{},
		background: &bg,
		color:      g2d.Black,
		font:       g2d.DefaultFont,
	}
}

// WithFontRemap installs a font-name mapping applied before the host
// substitution table. The function may return "" to keep a name. It is
// stored as the KeyFontMapping rendering hint, so it is copied by Create.
func WithFontRemap(fn func(string) string) Option {
	return func(o *options) {
		o.remap = fn
	}
}

// WithShaderFactory sets the factory every paint is built through.
func WithShaderFactory(f canvas.ShaderFactory) Option {
	return func(o *options) {
		if f != nil {
			o.shaders = f
		}
	}
}

// WithDispatcher sets the UI thread dispatcher used by Dispose. Without
// one, Dispose runs on the calling goroutine.
func WithDispatcher(d Dispatcher) Option {
	return func(o *options) {
		o.dispatcher = d
	}
}

// WithBackground sets the initial background color. A nil color makes
// ClearRect a no-op. The default is black.
func WithBackground(c *g2d.Color) Option {
	return func(o *options) {
		if c != nil {
			v := *c
			c = &v
		}
		o.background = c
	}
}

// WithColor sets the initial color and paint. The default is black.
func WithColor(c g2d.Color) Option {
	return func(o *options) {
		o.color = c
	}
}

// WithFont sets the initial font. The default is g2d.DefaultFont.
func WithFont(f g2d.Font) Option {
	return func(o *options) {
		o.font = f
	}
}

// WithTypefaceCache sets the typeface cache. The default is
// SharedTypefaceCache.
func WithTypefaceCache(c *TypefaceCache) Option {
	return func(o *options) {
		o.typefaces = c
	}
}

// WithOnDispose sets the function run once, on the UI thread, when the
// context is disposed.
func WithOnDispose(fn func()) Option {
	return func(o *options) {
		o.onDispose = fn
	}
}

// WithID sets the instance id. Contexts made by Create get the following
// ids.
func WithID(id uint64) Option {
	return func(o *options) {
		o.id = id
	}
}
