package canvas

import (
	"image"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	"github.com/gogpu/gg/text"
)

// Recorder is a Canvas that captures draw calls into a gg recording
// instead of rasterizing them.
//
// Geometry is mapped to device space at record time, so a finished
// Picture replays without a matrix. Text is recorded as glyph outlines.
// The recording format has no blend modes: Clear, Src and the other
// Porter-Duff modes record as SrcOver, and Dst records nothing. Clear is
// recorded as a full-surface fill, so unlike Raster it respects the clip.
type Recorder struct {
	rec    *recording.Recorder
	width  int
	height int
	matrix gg.Matrix
	saves  []gg.Matrix
}

var _ Canvas = (*Recorder)(nil)

// NewRecorder returns a recorder for a width by height surface.
func NewRecorder(width, height int) (*Recorder, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	return &Recorder{
		rec:    recording.NewRecorder(width, height),
		width:  width,
		height: height,
		matrix: gg.Identity(),
	}, nil
}

// Finish ends the recording. The recorder must not be used afterwards.
func (r *Recorder) Finish() *Picture {
	r.RestoreToCount(1)
	rec := r.rec.FinishRecording()
	return &Picture{rec: rec, width: rec.Width(), height: rec.Height(), commands: len(rec.Commands())}
}

func (r *Recorder) Width() int  { return r.width }
func (r *Recorder) Height() int { return r.height }

func (r *Recorder) Save() int {
	n := r.SaveCount()
	r.saves = append(r.saves, r.matrix)
	r.rec.Save()
	return n
}

func (r *Recorder) Restore() {
	if len(r.saves) == 0 {
		return
	}
	r.matrix = r.saves[len(r.saves)-1]
	r.saves = r.saves[:len(r.saves)-1]
	r.rec.Restore()
}

func (r *Recorder) RestoreToCount(count int) {
	count = max(count, 1)
	for r.SaveCount() > count {
		r.Restore()
	}
}

func (r *Recorder) SaveCount() int { return len(r.saves) + 1 }

func (r *Recorder) SetMatrix(m gg.Matrix) {
	r.matrix = m
	r.rec.SetTransform(recording.Matrix{A: m.A, B: m.B, C: m.C, D: m.D, E: m.E, F: m.F})
}

func (r *Recorder) Matrix() gg.Matrix { return r.matrix }

// ClipPath records a clip. An empty path records an empty rect, which
// clips everything, as it does on Raster.
func (r *Recorder) ClipPath(p *gg.Path, rule gg.FillRule) {
	if p == nil {
		return
	}
	if p.NumVerbs() == 0 {
		p = rectPath(0, 0, 0, 0)
	}
	r.rec.SetFillRuleGG(rule)
	r.replay(p)
	r.rec.Clip()
}

func (r *Recorder) DrawPath(p *gg.Path, paint *Paint) {
	if p == nil || paint == nil || p.NumVerbs() == 0 || !r.recordable(paint) {
		return
	}
	brush := paint.shader().DeviceBrush(r.matrix, paint.alpha())
	if paint.Style == StyleStroke {
		r.rec.SetStrokeBrush(brush)
		r.applyStroke(paint.Stroke)
		r.replay(p)
		r.rec.Stroke()
		return
	}
	r.rec.SetFillBrush(brush)
	r.rec.SetFillRuleGG(paint.FillRule)
	r.replay(p)
	r.rec.Fill()
}

func (r *Recorder) DrawRect(x, y, w, h float64, paint *Paint) {
	r.DrawPath(rectPath(x, y, w, h), paint)
}

func (r *Recorder) DrawOval(x, y, w, h float64, paint *Paint) {
	r.DrawPath(ovalPath(x, y, w, h), paint)
}

func (r *Recorder) DrawLine(x1, y1, x2, y2 float64, paint *Paint) {
	if paint == nil {
		return
	}
	r.DrawPath(linePath(x1, y1, x2, y2), paint.WithStyle(StyleStroke))
}

// DrawImageRect records the src part of img. The recording keeps only the
// device-space bounding box of dst, so rotation and shear are lost, and
// the paint alpha is not recorded.
func (r *Recorder) DrawImageRect(img *image.RGBA, src image.Rectangle, dst gg.Rect, paint *Paint) {
	if img == nil || paint == nil || !r.recordable(paint) {
		return
	}
	src = src.Intersect(img.Bounds())
	if src.Empty() || dst.Width() <= 0 || dst.Height() <= 0 {
		return
	}
	var part image.Image = img
	if src != img.Bounds() {
		part = CropImage(img, src)
	}
	r.rec.DrawImageScaled(part, dst.Min.X, dst.Min.Y, dst.Width(), dst.Height())
}

func (r *Recorder) DrawString(s string, x, y float64, face text.Face, paint *Paint) {
	if paint == nil {
		return
	}
	p := TextPath(s, x, y, face)
	fill := paint.WithStyle(StyleFill)
	fill.FillRule = gg.FillRuleNonZero
	r.DrawPath(p, fill)
}

func (r *Recorder) Clear(c gg.RGBA) {
	r.rec.Save()
	r.rec.SetTransform(recording.Identity())
	r.rec.ClearWithColor(c)
	r.rec.Restore()
}

func (r *Recorder) recordable(paint *Paint) bool {
	return paint.Blend != BlendDst && paint.alpha() > 0
}

// applyStroke records s with its width and dashes scaled by the matrix.
func (r *Recorder) applyStroke(s gg.Stroke) {
	sc := r.matrix.ScaleFactor()
	r.rec.SetLineWidth(s.Width * sc)
	r.rec.SetLineCapGG(s.Cap)
	r.rec.SetLineJoinGG(s.Join)
	r.rec.SetMiterLimit(s.MiterLimit)
	if s.Dash == nil || !s.Dash.IsDashed() {
		r.rec.ClearDash()
		return
	}
	scaled := s.Dash.Scale(sc)
	r.rec.SetDash(scaled.Array...)
	r.rec.SetDashOffset(scaled.Offset)
}

// replay feeds p through the recorder's path builder, which applies the
// recorder's transform.
func (r *Recorder) replay(p *gg.Path) {
	p.Iterate(func(verb gg.PathVerb, c []float64) {
		switch verb {
		case gg.MoveTo:
			r.rec.MoveTo(c[0], c[1])
		case gg.LineTo:
			r.rec.LineTo(c[0], c[1])
		case gg.QuadTo:
			r.rec.QuadraticTo(c[0], c[1], c[2], c[3])
		case gg.CubicTo:
			r.rec.CubicTo(c[0], c[1], c[2], c[3], c[4], c[5])
		case gg.Close:
			r.rec.ClosePath()
		}
	})
}

// Picture is a finished, immutable recording. It can be played back any
// number of times until Release.
type Picture struct {
	mu       sync.Mutex
	rec      *recording.Recording
	released bool

	width, height, commands int
}

// Width returns the recorded surface width.
func (p *Picture) Width() int { return p.width }

// Height returns the recorded surface height.
func (p *Picture) Height() int { return p.height }

// Len returns the number of recorded commands.
func (p *Picture) Len() int { return p.commands }

// Playback draws the picture into dst at the origin. The matrix and clip
// of dst are restored afterwards. Nothing is cleared.
func (p *Picture) Playback(dst Canvas) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.released {
		return ErrPictureConsumed
	}
	if dst == nil {
		return ErrNilTarget
	}
	return p.rec.Playback(NewPlaybackBackend(dst))
}

// Release drops the recording. Later playbacks fail with
// ErrPictureConsumed.
func (p *Picture) Release() {
	p.mu.Lock()
	p.released = true
	p.rec = nil
	p.mu.Unlock()
}
