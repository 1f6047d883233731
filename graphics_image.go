package gg2d

import (
	"image"

	"github.com/gogpu/gg"

	"github.com/gogpu/gg2d/canvas"
	"github.com/gogpu/gg2d/g2d"
	"github.com/gogpu/gg2d/geom"
)

// Images are drawn with the composite alpha and blend rule and sampled
// according to the interpolation hint. A nil image draws nothing.

func (g *Graphics) DrawImage(img image.Image, x, y float64) {
	g.drawImage(img, nil, x, y, -1, -1, nil)
}

func (g *Graphics) DrawImageBg(img image.Image, x, y float64, bg g2d.Color) {
	g.drawImage(img, nil, x, y, -1, -1, &bg)
}

func (g *Graphics) DrawImageScaled(img image.Image, x, y, w, h float64) {
	g.drawImage(img, nil, x, y, w, h, nil)
}

func (g *Graphics) DrawImageScaledBg(img image.Image, x, y, w, h float64, bg g2d.Color) {
	g.drawImage(img, nil, x, y, w, h, &bg)
}

func (g *Graphics) DrawImageRect(img image.Image, dst geom.Rect, src image.Rectangle) {
	g.drawImage(img, &src, dst.X, dst.Y, dst.W, dst.H, nil)
}

func (g *Graphics) DrawImageRectBg(img image.Image, dst geom.Rect, src image.Rectangle, bg g2d.Color) {
	g.drawImage(img, &src, dst.X, dst.Y, dst.W, dst.H, &bg)
}

func (g *Graphics) DrawImageTransformed(img image.Image, xform geom.Affine) {
	if img == nil {
		return
	}
	g.canvas.SetMatrix(g.transform.Concat(xform).Matrix())
	g.drawImage(img, nil, 0, 0, -1, -1, nil)
	g.syncMatrix()
}

// DrawImageFiltered runs img through op, when op is not nil, and draws the
// result at (x, y).
func (g *Graphics) DrawImageFiltered(img image.Image, op g2d.ImageOp, x, y float64) {
	if img == nil {
		return
	}
	if op != nil {
		img = op.Filter(img)
	}
	g.DrawImage(img, x, y)
}

func (g *Graphics) DrawRenderedImage(img image.Image, xform geom.Affine) {
	g.DrawImageTransformed(img, xform)
}

// drawImage draws the src part of img, or all of it when src is nil, into
// the w by h rect at (x, y). A negative size means the natural size of the
// source. The bg color, when given, fills the rect first.
func (g *Graphics) drawImage(img image.Image, src *image.Rectangle, x, y, w, h float64, bg *g2d.Color) {
	rgba := canvas.NormalizeImage(img)
	if rgba == nil {
		return
	}
	sr := rgba.Bounds()
	if src != nil {
		// src is in the coordinates of the original image.
		sr = src.Sub(img.Bounds().Min).Intersect(rgba.Bounds())
	}
	if sr.Empty() {
		return
	}
	if w < 0 || h < 0 {
		w, h = float64(sr.Dx()), float64(sr.Dy())
	}
	if w <= 0 || h <= 0 {
		return
	}
	if bg != nil {
		p := g.backend.Clone()
		p.Style = canvas.StyleFill
		p.FillRule = gg.FillRuleNonZero
		p.Shader = g.shaders.Color(toRGBA(*bg))
		g.canvas.DrawRect(x, y, w, h, p)
	}
	g.canvas.DrawImageRect(rgba, sr, gg.NewRect(gg.Pt(x, y), gg.Pt(x+w, y+h)), g.backend)
}

// interpolation maps the interpolation hint to a sampling mode. Unset and
// unknown values sample bilinearly.
func interpolation(v any) gg.InterpolationMode {
	switch v {
	case g2d.ValueInterpolationNearest:
		return gg.InterpNearest
	case g2d.ValueInterpolationBicubic:
		return gg.InterpBicubic
	default:
		return gg.InterpBilinear
	}
}
