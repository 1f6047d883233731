package canvas

import (
	"github.com/gogpu/gg"
)

// layerScratch holds the two offscreen surfaces used to composite a draw
// call with a Porter-Duff mode other than SrcOver. The source layer
// receives the draw with its real colors; the coverage layer receives the
// same geometry in opaque white.
type layerScratch struct {
	src, cov     *gg.Context
	srcPM, covPM *gg.Pixmap
}

func newLayerScratch(w, h int) *layerScratch {
	srcPM := gg.NewPixmap(w, h)
	covPM := gg.NewPixmap(w, h)
	return &layerScratch{
		src:   gg.NewContextForPixmap(srcPM),
		cov:   gg.NewContextForPixmap(covPM),
		srcPM: srcPM,
		covPM: covPM,
	}
}

func (l *layerScratch) close() {
	_ = l.src.Close()
	_ = l.cov.Close()
}

// reset clears both layers and gives them the clip and matrix of the
// canvas.
func (l *layerScratch) reset(clips []deviceClip, m gg.Matrix) {
	for _, ctx := range []*gg.Context{l.src, l.cov} {
		ctx.ClearWithColor(gg.Transparent)
		ctx.ResetClip()
		for _, c := range clips {
			applyClip(ctx, c.path)
		}
		ctx.SetTransform(m)
	}
}

func (r *Raster) compositeLayer(paint *Paint, source, coverage func(*gg.Context, gg.Brush) error) {
	w, h := r.Width(), r.Height()
	if r.layers == nil || r.layers.srcPM.Width() != w || r.layers.srcPM.Height() != h {
		if r.layers != nil {
			r.layers.close()
		}
		r.layers = newLayerScratch(w, h)
	}
	l := r.layers
	l.reset(r.clips, r.matrix)

	if alpha := paint.alpha(); alpha > 0 {
		if err := source(l.src, paint.shader().Brush(r.matrix, alpha)); err != nil {
			gg.Logger().Warn("canvas: layer draw failed", "blend", paint.Blend, "err", err)
			return
		}
	}
	if err := coverage(l.cov, gg.Solid(gg.White)); err != nil {
		gg.Logger().Warn("canvas: coverage draw failed", "blend", paint.Blend, "err", err)
		return
	}
	_ = l.src.FlushGPU()
	_ = l.cov.FlushGPU()
	r.flush()

	blendPixels(r.pixmap.Data(), l.srcPM.Data(), l.covPM.Data(), paint.Blend)
	r.pixmap.NotifyPixelsChanged()
}

// blendPixels composites src over dst inside the coverage mask:
//
//	out = dst + cov*(PD(src, dst) - dst)
//
// where src is the premultiplied source layer divided by coverage. All
// three buffers are premultiplied RGBA of the same size.
func blendPixels(dst, src, cov []uint8, mode BlendMode) {
	for i := 0; i+3 < len(dst); i += 4 {
		c := float64(cov[i+3]) / 255
		if c == 0 {
			continue
		}
		var s, d [4]float64
		for k := range 4 {
			s[k] = min(1, float64(src[i+k])/255/c)
			d[k] = float64(dst[i+k]) / 255
		}
		fa, fb := porterDuff(mode, s[3], d[3])
		for k := range 4 {
			res := s[k]*fa + d[k]*fb
			out := d[k] + c*(res-d[k])
			dst[i+k] = uint8(max(0, min(255, out*255+0.5)))
		}
	}
}

// porterDuff returns the source and destination factors of mode for
// source alpha as and destination alpha ad.
func porterDuff(mode BlendMode, as, ad float64) (fa, fb float64) {
	switch mode {
	case BlendClear:
		return 0, 0
	case BlendSrc:
		return 1, 0
	case BlendDst:
		return 0, 1
	case BlendDstOver:
		return 1 - ad, 1
	case BlendSrcIn:
		return ad, 0
	case BlendDstIn:
		return 0, as
	case BlendSrcOut:
		return 1 - ad, 0
	case BlendDstOut:
		return 0, 1 - as
	case BlendSrcATop:
		return ad, 1 - as
	case BlendDstATop:
		return 1 - ad, as
	case BlendXor:
		return 1 - ad, 1 - as
	default:
		return 1, 1 - as
	}
}
