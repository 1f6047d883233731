// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frame

import (
	"sync"
	"sync/atomic"

	"github.com/gogpu/gg2d"
	"github.com/gogpu/gg2d/bridge"
	"github.com/gogpu/gg2d/canvas"
	"github.com/gogpu/gg2d/g2d"
)

// Option configures a Factory.
type Option func(*Factory)

// WithStrategy selects the offscreen strategy. The default is
// StrategyRaster.
func WithStrategy(k StrategyKind) Option {
	return func(f *Factory) {
		f.kind = k
		f.strategy = nil
	}
}

// WithCustomStrategy installs s as the offscreen strategy.
func WithCustomStrategy(s Strategy) Option {
	return func(f *Factory) {
		f.strategy = s
	}
}

// WithDispatcher sets the UI thread every context disposes on.
func WithDispatcher(d gg2d.Dispatcher) Option {
	return func(f *Factory) {
		f.dispatcher = d
	}
}

// WithBridge composites through b instead of the best registered backend.
func WithBridge(b *bridge.Bridge) Option {
	return func(f *Factory) {
		if b != nil {
			f.withCanvas = b.WithCanvas
		}
	}
}

// WithGraphicsOptions adds options to every context the factory creates.
func WithGraphicsOptions(opts ...gg2d.Option) Option {
	return func(f *Factory) {
		f.extra = append(f.extra, opts...)
	}
}

// Factory creates one graphics context per frame. Disposing a context
// composites its frame onto the host surface.
type Factory struct {
	kind       StrategyKind
	strategy   Strategy
	dispatcher gg2d.Dispatcher
	withCanvas func(bridge.SurfaceData, bridge.CompositeFunc) error
	extra      []gg2d.Option

	// mu serializes strategy use between frame setup and a dispose that
	// runs on another goroutine.
	mu  sync.Mutex
	ids atomic.Uint64
}

// NewFactory returns a factory configured by opts.
func NewFactory(opts ...Option) *Factory {
	f := &Factory{withCanvas: bridge.WithCanvas}
	for _, opt := range opts {
		opt(f)
	}
	if f.strategy == nil {
		f.strategy = f.kind.new()
	}
	gg2d.Logger().Info("frame: factory created", "strategy", f.kind)
	return f
}

// Strategy returns the offscreen strategy.
func (f *Factory) Strategy() Strategy { return f.strategy }

// NewGraphics returns a context for the frame described by sd, drawing in
// fg on bg with font and mapped by the surface's default transform. It
// returns nil, after logging the cause, when the context cannot be made.
func (f *Factory) NewGraphics(sd bridge.SurfaceData, fg, bg g2d.Color, font g2d.Font) (out g2d.Graphics2D) {
	defer func() {
		if r := recover(); r != nil {
			gg2d.Logger().Warn("frame: graphics creation panicked", "panic", r)
			out = nil
		}
	}()
	if sd == nil {
		gg2d.Logger().Warn("frame: graphics requested without surface data")
		return nil
	}
	w, h := sd.NativeSize()

	c, err := f.begin(w, h)
	if err != nil {
		gg2d.Logger().Warn("frame: offscreen canvas failed", "width", w, "height", h, "err", err)
		return nil
	}

	// Each frame's context family numbers its copies in its own range.
	opts := append([]gg2d.Option{
		gg2d.WithID(f.ids.Add(1) << 32),
		gg2d.WithColor(fg),
		gg2d.WithBackground(&bg),
		gg2d.WithFont(font),
		gg2d.WithDispatcher(f.dispatcher),
		gg2d.WithOnDispose(func() { f.composite(sd) }),
	}, f.extra...)
	g, err := gg2d.New(c, opts...)
	if err != nil {
		gg2d.Logger().Warn("frame: graphics creation failed", "err", err)
		return nil
	}
	g.SetTransform(sd.DefaultTransform())
	return g
}

func (f *Factory) begin(w, h int) (canvas.Canvas, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.strategy.Begin(w, h)
}

// composite draws the finished frame onto the host surface.
func (f *Factory) composite(sd bridge.SurfaceData) {
	err := f.withCanvas(sd, func(c canvas.Canvas, _ bridge.ExecutionContext, _ float64) error {
		f.mu.Lock()
		defer f.mu.Unlock()
		return f.strategy.Composite(c)
	})
	if err != nil {
		gg2d.Logger().Warn("frame: composite failed", "err", err)
	}
}
