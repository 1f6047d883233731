package gg2d

import (
	"sync"
	"sync/atomic"

	"github.com/gogpu/gg/text"

	"github.com/gogpu/gg2d/canvas"
	"github.com/gogpu/gg2d/g2d"
	"github.com/gogpu/gg2d/geom"
)

// Dispatcher runs work on the UI thread.
type Dispatcher interface {
	// IsUIThread reports whether the caller runs on the UI thread.
	IsUIThread() bool
	// InvokeLater queues fn to run on the UI thread and returns at once.
	InvokeLater(fn func())
}

// Graphics implements g2d.Graphics2D on a canvas.Canvas.
//
// The current transform is mirrored into the canvas matrix after every
// change. The clip is kept in device space and applied to the canvas inside
// a save level of its own: setting a clip rewinds the canvas to the
// checkpoint taken when the previous clip was set, saves again, and clips.
//
// A Graphics is not safe for concurrent use, except for Dispose.
type Graphics struct {
	canvas     canvas.Canvas
	shaders    canvas.ShaderFactory
	typefaces  *TypefaceCache
	dispatcher Dispatcher
	onDispose  func()
	disposed   sync.Once
	ids        *atomic.Uint64
	id         uint64

	transform    geom.Affine
	clip         geom.Shape // device space
	composite    g2d.AlphaComposite
	paint        g2d.Paint
	color        g2d.Color
	stroke       g2d.BasicStroke
	font         g2d.Font
	face         text.Face
	background   *g2d.Color
	hints        g2d.Hints
	restoreCount int

	// backend carries the mapped paint, composite, stroke and hints.
	backend *canvas.Paint
}

var _ g2d.Graphics2D = (*Graphics)(nil)

// New returns a Graphics drawing into c. The canvas is saved first; Dispose
// rewinds it to that point.
//
// New fails when the initial font cannot be resolved.
func New(c canvas.Canvas, opts ...Option) (*Graphics, error) {
	if c == nil {
		return nil, canvas.ErrNilTarget
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.typefaces == nil {
		o.typefaces = SharedTypefaceCache()
	}
	ids := new(atomic.Uint64)
	ids.Store(o.id)

	g := &Graphics{
		canvas:     c,
		shaders:    o.shaders,
		typefaces:  o.typefaces,
		dispatcher: o.dispatcher,
		onDispose:  o.onDispose,
		ids:        ids,
		id:         o.id,
		transform:  geom.Identity(),
		background: o.background,
		hints:      g2d.DefaultHints(),
		backend:    canvas.NewPaint(),
	}
	if o.remap != nil {
		g.hints[g2d.KeyFontMapping] = o.remap
	}
	g.SetComposite(g2d.SrcOver)
	g.color = o.color
	g.paint = o.color
	g.backend.Shader = MapPaint(g.shaders, o.color)
	g.applyHints()
	if err := g.SetStroke(g2d.DefaultStroke()); err != nil {
		return nil, err
	}
	if err := g.SetFont(o.font); err != nil {
		return nil, err
	}
	g.restoreCount = c.Save()
	g.syncMatrix()
	return g, nil
}

// ID returns the instance id.
func (g *Graphics) ID() uint64 { return g.id }

// Canvas returns the canvas the context draws into.
func (g *Graphics) Canvas() canvas.Canvas { return g.canvas }

// Paint returns a copy of the current paint.
func (g *Graphics) Paint() g2d.Paint { return g2d.ClonePaint(g.paint) }

// SetPaint sets the paint. Setting a paint equal to the current one does
// nothing; a g2d.Color paint also becomes the current color. Gradients are
// copied, so later changes to p take effect only when it is set again.
func (g *Graphics) SetPaint(p g2d.Paint) {
	if p == nil || g2d.PaintsEqual(p, g.paint) {
		return
	}
	g.paint = g2d.ClonePaint(p)
	if c, ok := p.(g2d.Color); ok {
		g.color = c
	}
	g.backend.Shader = MapPaint(g.shaders, p)
}

func (g *Graphics) Color() g2d.Color { return g.color }

// SetColor sets the color and makes it the paint.
func (g *Graphics) SetColor(c g2d.Color) {
	g.color = c
	g.SetPaint(c)
}

func (g *Graphics) Background() *g2d.Color {
	if g.background == nil {
		return nil
	}
	c := *g.background
	return &c
}

func (g *Graphics) SetBackground(c *g2d.Color) {
	if c != nil {
		v := *c
		c = &v
	}
	g.background = c
}

func (g *Graphics) Composite() g2d.AlphaComposite { return g.composite }

// SetComposite sets the composite. Alpha is clamped to [0, 1]; unknown
// rules draw as SrcOver.
func (g *Graphics) SetComposite(c g2d.AlphaComposite) {
	g.composite = c
	g.backend.Alpha = max(0, min(1, c.Alpha))
	g.backend.Blend = blendMode(c.Rule)
}

func (g *Graphics) Stroke() g2d.BasicStroke { return g.stroke.Clone() }

// SetStroke sets the stroke. It fails with a *StrokeAttributeError for an
// unknown cap or join code and leaves the stroke unchanged.
func (g *Graphics) SetStroke(s g2d.BasicStroke) error {
	st, err := MapStroke(s)
	if err != nil {
		return err
	}
	g.stroke = s.Clone()
	g.backend.Stroke = st
	return nil
}

func (g *Graphics) Font() g2d.Font { return g.font }

// SetFont resolves f through the font mapping hint, the host substitution
// table and the typeface cache. It fails with a *TypefaceError and leaves
// the font unchanged when no typeface matches.
func (g *Graphics) SetFont(f g2d.Font) error {
	face, err := g.resolveFace(f)
	if err != nil {
		return err
	}
	g.font = f
	g.face = face
	return nil
}

func (g *Graphics) RenderingHint(key g2d.HintKey) any { return g.hints[key] }

func (g *Graphics) SetRenderingHint(key g2d.HintKey, value any) {
	g.hints[key] = value
	g.applyHints()
}

// RenderingHints returns a copy of the hints.
func (g *Graphics) RenderingHints() g2d.Hints { return g.hints.Clone() }

// SetRenderingHints replaces all hints.
func (g *Graphics) SetRenderingHints(h g2d.Hints) {
	g.hints = h.Clone()
	g.applyHints()
}

// AddRenderingHints merges h into the hints.
func (g *Graphics) AddRenderingHints(h g2d.Hints) {
	for k, v := range h {
		g.hints[k] = v
	}
	g.applyHints()
}

func (g *Graphics) applyHints() {
	g.backend.Antialias = g.hints.Antialias()
	g.backend.Interpolation = interpolation(g.hints[g2d.KeyInterpolation])
}

// SetPaintMode does nothing; the paint mode is always on.
func (g *Graphics) SetPaintMode() {}

// SetXORMode does nothing; XOR mode is not supported.
func (g *Graphics) SetXORMode(g2d.Color) {}

// CopyArea does nothing.
func (g *Graphics) CopyArea(x, y, w, h, dx, dy float64) {
	Logger().Debug("gg2d: CopyArea is not supported", "x", x, "y", y, "w", w, "h", h, "dx", dx, "dy", dy)
}

// Create returns a context drawing to the same canvas with a copy of the
// current state and a checkpoint of its own. It does not inherit the
// dispose callback.
func (g *Graphics) Create() g2d.Graphics2D { return g.create() }

// CreateRegion returns a copy translated to (x, y) and clipped to the w by
// h rect at the new origin.
func (g *Graphics) CreateRegion(x, y, w, h float64) g2d.Graphics2D {
	c := g.create()
	c.Translate(x, y)
	c.ClipRect(0, 0, w, h)
	return c
}

func (g *Graphics) create() *Graphics {
	c := &Graphics{
		canvas:     g.canvas,
		shaders:    g.shaders,
		typefaces:  g.typefaces,
		dispatcher: g.dispatcher,
		ids:        g.ids,
		id:         g.ids.Add(1),
		transform:  g.transform,
		clip:       cloneShape(g.clip),
		composite:  g.composite,
		paint:      g.paint,
		color:      g.color,
		stroke:     g.stroke.Clone(),
		font:       g.font,
		face:       g.face,
		background: g.Background(),
		hints:      g.hints.Clone(),
		backend:    g.backend.Clone(),
	}
	c.restoreCount = c.canvas.Save()
	c.syncMatrix()
	return c
}

// Dispose rewinds the canvas to the context's checkpoint and runs the
// dispose callback. Called off the UI thread, it queues that work on the
// dispatcher and returns. Repeated calls rewind again; the callback runs
// once.
func (g *Graphics) Dispose() {
	if g.dispatcher != nil && !g.dispatcher.IsUIThread() {
		g.dispatcher.InvokeLater(g.dispose)
		return
	}
	g.dispose()
}

func (g *Graphics) dispose() {
	g.canvas.RestoreToCount(g.restoreCount)
	g.disposed.Do(func() {
		if g.onDispose != nil {
			g.onDispose()
		}
	})
}
