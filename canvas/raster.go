package canvas

import (
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Raster is a Canvas that rasterizes every call immediately into a
// gg.Pixmap through a gg.Context.
//
// The gg context keeps the authoritative clip stack. Raster mirrors the
// device-space clip paths so that the layer compositor can rebuild the
// same clip on its scratch surfaces.
type Raster struct {
	ctx    *gg.Context
	pixmap *gg.Pixmap
	matrix gg.Matrix
	saves  []rasterSave
	clips  []deviceClip
	layers *layerScratch
}

type rasterSave struct {
	matrix gg.Matrix
	clips  int
}

type deviceClip struct {
	path *gg.Path
}

var _ Canvas = (*Raster)(nil)

// NewRaster returns a transparent raster canvas of the given size.
func NewRaster(width, height int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	return NewRasterForPixmap(gg.NewPixmap(width, height))
}

// NewRasterForPixmap returns a raster canvas drawing into pm. Existing
// pixels are kept.
func NewRasterForPixmap(pm *gg.Pixmap) (*Raster, error) {
	if pm == nil || pm.Width() <= 0 || pm.Height() <= 0 {
		return nil, ErrInvalidSize
	}
	return &Raster{
		ctx:    gg.NewContextForPixmap(pm),
		pixmap: pm,
		matrix: gg.Identity(),
	}, nil
}

// Pixmap returns the pixmap the canvas draws into.
func (r *Raster) Pixmap() *gg.Pixmap {
	r.flush()
	return r.pixmap
}

// Snapshot returns a copy of the current pixels.
func (r *Raster) Snapshot() *image.RGBA {
	r.flush()
	return r.pixmap.ToImage()
}

// Close releases the gg context. The pixmap stays valid.
func (r *Raster) Close() error {
	if r.layers != nil {
		r.layers.close()
		r.layers = nil
	}
	return r.ctx.Close()
}

func (r *Raster) Width() int  { return r.pixmap.Width() }
func (r *Raster) Height() int { return r.pixmap.Height() }

func (r *Raster) Save() int {
	n := r.SaveCount()
	r.saves = append(r.saves, rasterSave{matrix: r.matrix, clips: len(r.clips)})
	r.ctx.Push()
	return n
}

func (r *Raster) Restore() {
	if len(r.saves) == 0 {
		return
	}
	s := r.saves[len(r.saves)-1]
	r.saves = r.saves[:len(r.saves)-1]
	r.ctx.Pop()
	r.clips = r.clips[:s.clips]
	r.SetMatrix(s.matrix)
}

func (r *Raster) RestoreToCount(count int) {
	count = max(count, 1)
	for r.SaveCount() > count {
		r.Restore()
	}
}

func (r *Raster) SaveCount() int { return len(r.saves) + 1 }

func (r *Raster) SetMatrix(m gg.Matrix) {
	r.matrix = m
	r.ctx.SetTransform(m)
}

func (r *Raster) Matrix() gg.Matrix { return r.matrix }

func (r *Raster) ClipPath(p *gg.Path, rule gg.FillRule) {
	if p == nil {
		return
	}
	dev := p.Transform(r.matrix)
	if rule == gg.FillRuleEvenOdd {
		dev = nonZeroPath(dev)
	}
	r.clips = append(r.clips, deviceClip{path: dev})
	applyClip(r.ctx, dev)
}

// applyClip pushes a device-space clip path onto ctx. SetPath takes
// coordinates as they are, so the current matrix does not apply.
func applyClip(ctx *gg.Context, dev *gg.Path) {
	ctx.SetPath(dev)
	ctx.Clip()
}

func (r *Raster) DrawPath(p *gg.Path, paint *Paint) {
	if p == nil || paint == nil {
		return
	}
	fn := func(ctx *gg.Context, brush gg.Brush) error {
		return strokeOrFill(ctx, p, paint, brush)
	}
	r.draw(paint, fn, fn)
}

func (r *Raster) DrawRect(x, y, w, h float64, paint *Paint) {
	r.DrawPath(rectPath(x, y, w, h), paint)
}

func (r *Raster) DrawOval(x, y, w, h float64, paint *Paint) {
	r.DrawPath(ovalPath(x, y, w, h), paint)
}

func (r *Raster) DrawLine(x1, y1, x2, y2 float64, paint *Paint) {
	if paint == nil {
		return
	}
	r.DrawPath(linePath(x1, y1, x2, y2), paint.WithStyle(StyleStroke))
}

func (r *Raster) DrawImageRect(img *image.RGBA, src image.Rectangle, dst gg.Rect, paint *Paint) {
	if img == nil || paint == nil {
		return
	}
	src = src.Intersect(img.Bounds())
	if src.Empty() || dst.Width() <= 0 || dst.Height() <= 0 {
		return
	}
	buf, err := imageBuf(img)
	if err != nil {
		gg.Logger().Warn("canvas: image conversion failed", "err", err)
		return
	}
	opts := gg.DrawImageOptions{
		X:             dst.Min.X,
		Y:             dst.Min.Y,
		DstWidth:      dst.Width(),
		DstHeight:     dst.Height(),
		SrcRect:       &src,
		Interpolation: paint.Interpolation,
		BlendMode:     gg.BlendNormal,
	}
	rect := rectPath(dst.Min.X, dst.Min.Y, dst.Width(), dst.Height())
	r.draw(paint, func(ctx *gg.Context, _ gg.Brush) error {
		o := opts
		o.Opacity = paint.alpha()
		ctx.DrawImageEx(buf, o)
		return nil
	}, func(ctx *gg.Context, brush gg.Brush) error {
		ctx.SetFillBrush(brush)
		ctx.SetFillRule(gg.FillRuleNonZero)
		return ctx.FillPath(rect)
	})
}

func (r *Raster) DrawString(s string, x, y float64, face text.Face, paint *Paint) {
	if paint == nil {
		return
	}
	p := TextPath(s, x, y, face)
	if p.NumVerbs() == 0 {
		return
	}
	fill := paint.WithStyle(StyleFill)
	fill.FillRule = gg.FillRuleNonZero
	r.DrawPath(p, fill)
}

func (r *Raster) Clear(c gg.RGBA) {
	r.flush()
	r.ctx.ClearWithColor(c)
	r.pixmap.NotifyPixelsChanged()
}

// draw runs a draw call. SrcOver paints straight into the context with
// source. Any other blend mode goes through the layer compositor, which
// runs source for the colors and coverage for the shape.
func (r *Raster) draw(paint *Paint, source, coverage func(*gg.Context, gg.Brush) error) {
	alpha := paint.alpha()
	switch paint.Blend {
	case BlendDst:
		return
	case BlendSrcOver:
		if alpha == 0 {
			return
		}
		if err := source(r.ctx, paint.shader().Brush(r.matrix, alpha)); err != nil {
			gg.Logger().Warn("canvas: draw failed", "err", err)
		}
		return
	}
	r.compositeLayer(paint, source, coverage)
}

func strokeOrFill(ctx *gg.Context, p *gg.Path, paint *Paint, brush gg.Brush) error {
	if paint.Style == StyleStroke {
		ctx.SetStrokeBrush(brush)
		ctx.SetStroke(paint.Stroke)
		return ctx.StrokePath(p)
	}
	ctx.SetFillBrush(brush)
	ctx.SetFillRule(paint.FillRule)
	return ctx.FillPath(p)
}

func (r *Raster) flush() {
	if err := r.ctx.FlushGPU(); err != nil {
		gg.Logger().Warn("canvas: gpu flush failed", "err", err)
	}
}
