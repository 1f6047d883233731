package g2d

import (
	"image"

	"github.com/gogpu/gg2d/geom"
)

// Graphics2D is the legacy imperative drawing contract.
//
// Shapes, positions and sizes are in user space. The current transform maps
// them to device space. A Graphics2D is owned by a single goroutine, except
// Dispose, which may be called from anywhere.
//
// Methods returning error fail only on programming errors by the caller:
// unsupported path segments, unknown stroke attribute codes or fonts that
// cannot be resolved. Everything else degrades to drawing nothing.
type Graphics2D interface {
	// Draw strokes the outline of s with the current stroke and paint.
	Draw(s geom.Shape) error
	// Fill fills the interior of s with the current paint.
	Fill(s geom.Shape) error
	// Hit reports whether the device-space rect intersects s, or its stroked
	// outline when onStroke is true.
	Hit(rect geom.Rect, s geom.Shape, onStroke bool) bool

	DrawLine(x1, y1, x2, y2 float64)
	DrawRect(x, y, w, h float64)
	FillRect(x, y, w, h float64)
	// ClearRect fills the rect with the background color, ignoring paint
	// and composite. It does nothing when no background is set.
	ClearRect(x, y, w, h float64)
	DrawRoundRect(x, y, w, h, arcW, arcH float64)
	FillRoundRect(x, y, w, h, arcW, arcH float64)
	DrawOval(x, y, w, h float64)
	FillOval(x, y, w, h float64)
	// DrawArc strokes an open arc. Angles are in degrees.
	DrawArc(x, y, w, h, start, extent float64)
	// FillArc fills a pie-shaped arc. Angles are in degrees.
	FillArc(x, y, w, h, start, extent float64)
	DrawPolyline(xs, ys []float64, n int)
	DrawPolygon(xs, ys []float64, n int)
	FillPolygon(xs, ys []float64, n int)

	// DrawString draws s with its baseline origin at (x, y).
	DrawString(s string, x, y float64) error
	CreateGlyphVector(s string) (GlyphVector, error)
	DrawGlyphVector(gv GlyphVector, x, y float64) error
	// FontMetrics returns metrics for f, or for the current font when f is
	// nil.
	FontMetrics(f *Font) (FontMetrics, error)

	// DrawImage draws img at its natural size.
	DrawImage(img image.Image, x, y float64)
	DrawImageBg(img image.Image, x, y float64, bg Color)
	DrawImageScaled(img image.Image, x, y, w, h float64)
	DrawImageScaledBg(img image.Image, x, y, w, h float64, bg Color)
	// DrawImageRect draws the src sub-rectangle of img into dst.
	DrawImageRect(img image.Image, dst geom.Rect, src image.Rectangle)
	DrawImageRectBg(img image.Image, dst geom.Rect, src image.Rectangle, bg Color)
	// DrawImageTransformed draws img through xform, applied before the
	// current transform.
	DrawImageTransformed(img image.Image, xform geom.Affine)
	// DrawImageFiltered filters img through op, then draws it at (x, y).
	DrawImageFiltered(img image.Image, op ImageOp, x, y float64)
	// DrawRenderedImage is DrawImageTransformed for any image. A nil image
	// draws nothing.
	DrawRenderedImage(img image.Image, xform geom.Affine)

	Translate(tx, ty float64)
	// Rotate rotates by theta radians.
	Rotate(theta float64)
	RotateAbout(theta, x, y float64)
	Scale(sx, sy float64)
	Shear(shx, shy float64)
	// Transform concatenates t onto the current transform.
	Transform(t geom.Affine)
	SetTransform(t geom.Affine)
	GetTransform() geom.Affine

	// SetClip replaces the clip. A nil shape removes it.
	SetClip(s geom.Shape)
	// Clip intersects the clip with s.
	Clip(s geom.Shape)
	ClipRect(x, y, w, h float64)
	SetClipRect(x, y, w, h float64)
	// GetClip returns the clip in user space, or nil when there is none or
	// the transform is not invertible.
	GetClip() geom.Shape
	GetClipBounds() (geom.Rect, bool)

	Paint() Paint
	// SetPaint sets the paint. A nil paint is ignored.
	SetPaint(p Paint)
	Color() Color
	SetColor(c Color)
	Background() *Color
	SetBackground(c *Color)
	Composite() AlphaComposite
	SetComposite(c AlphaComposite)
	Stroke() BasicStroke
	SetStroke(s BasicStroke) error
	Font() Font
	SetFont(f Font) error

	RenderingHint(key HintKey) any
	SetRenderingHint(key HintKey, value any)
	RenderingHints() Hints
	SetRenderingHints(h Hints)
	AddRenderingHints(h Hints)

	// SetPaintMode is a no-op; paint mode is always on.
	SetPaintMode()
	// SetXORMode is a no-op; XOR mode is not supported.
	SetXORMode(c Color)
	// CopyArea is a no-op.
	CopyArea(x, y, w, h, dx, dy float64)

	// Create returns an independent context drawing to the same target.
	Create() Graphics2D
	// CreateRegion returns a context translated to (x, y) and clipped to
	// the w by h rect at the new origin.
	CreateRegion(x, y, w, h float64) Graphics2D
	// Dispose rewinds the target and releases the context. Calling it more
	// than once is safe.
	Dispose()
}
