package canvas

import (
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	"github.com/gogpu/gg/text"
)

// BackendName is the name PlaybackBackend is registered under in the gg
// recording backend registry.
const BackendName = "gg2d"

func init() {
	recording.Register(BackendName, func() recording.Backend {
		return &PlaybackBackend{}
	})
}

// PlaybackBackend replays a gg recording into a Canvas.
//
// Recorded paths are already in device space, so the target's matrix is
// set to identity for the duration of the playback and SetTransform
// commands are ignored. Recorded clips are scoped by Save and Restore.
//
// A backend created through the registry has no target; Begin then
// allocates a Raster of the recording's size, available from Raster.
type PlaybackBackend struct {
	target Canvas
	raster *Raster
	base   int
}

var _ recording.Backend = (*PlaybackBackend)(nil)

// NewPlaybackBackend returns a backend drawing into dst.
func NewPlaybackBackend(dst Canvas) *PlaybackBackend {
	return &PlaybackBackend{target: dst}
}

// Raster returns the raster allocated by Begin, or nil when the backend
// was created with a target.
func (b *PlaybackBackend) Raster() *Raster { return b.raster }

func (b *PlaybackBackend) Begin(width, height int) error {
	if b.target == nil {
		r, err := NewRaster(width, height)
		if err != nil {
			return err
		}
		b.raster = r
		b.target = r
	}
	b.base = b.target.Save()
	b.target.SetMatrix(gg.Identity())
	return nil
}

func (b *PlaybackBackend) End() error {
	if b.target == nil {
		return ErrNilTarget
	}
	b.target.RestoreToCount(b.base)
	return nil
}

func (b *PlaybackBackend) Save() { b.target.Save() }

func (b *PlaybackBackend) Restore() {
	if b.target.SaveCount() > b.base+1 {
		b.target.Restore()
	}
}

func (b *PlaybackBackend) SetTransform(recording.Matrix) {}

func (b *PlaybackBackend) SetClip(path *gg.Path, rule recording.FillRule) {
	b.target.ClipPath(path, fillRule(rule))
}

// ClearClip does nothing. The canvas clip only shrinks within a save
// level, and the recorder emits the matching Restore.
func (b *PlaybackBackend) ClearClip() {}

func (b *PlaybackBackend) FillPath(path *gg.Path, brush recording.Brush, rule recording.FillRule) {
	p := b.paint(brush)
	p.FillRule = fillRule(rule)
	b.target.DrawPath(path, p)
}

func (b *PlaybackBackend) StrokePath(path *gg.Path, brush recording.Brush, s recording.Stroke) {
	p := b.paint(brush)
	p.Style = StyleStroke
	p.Stroke = gg.Stroke{
		Width:      s.Width,
		Cap:        gg.LineCap(s.Cap),
		Join:       gg.LineJoin(s.Join),
		MiterLimit: s.MiterLimit,
	}
	if d := gg.NewDash(s.DashPattern...); d != nil {
		p.Stroke.Dash = d.WithOffset(s.DashOffset)
	}
	b.target.DrawPath(path, p)
}

func (b *PlaybackBackend) FillRect(rect recording.Rect, brush recording.Brush) {
	b.target.DrawRect(rect.MinX, rect.MinY, rect.MaxX-rect.MinX, rect.MaxY-rect.MinY, b.paint(brush))
}

// DrawImage resamples the image to its device size before drawing, so
// playback does not depend on the target's image sampler.
func (b *PlaybackBackend) DrawImage(img image.Image, src, dst recording.Rect, opts recording.ImageOptions) {
	rgba := NormalizeImage(img)
	if rgba == nil {
		return
	}
	sr := image.Rect(int(src.MinX), int(src.MinY), int(src.MaxX), int(src.MaxY))
	w, h := int(dst.MaxX-dst.MinX+0.5), int(dst.MaxY-dst.MinY+0.5)
	if w <= 0 || h <= 0 || sr.Empty() {
		return
	}
	interp := gg.InterpBilinear
	if opts.Interpolation == recording.InterpolationNearest {
		interp = gg.InterpNearest
	}
	scaled := ResampleImage(rgba, sr, w, h, interp)
	p := NewPaint()
	p.Alpha = opts.Alpha
	b.target.DrawImageRect(scaled, scaled.Bounds(),
		gg.NewRect(gg.Pt(dst.MinX, dst.MinY), gg.Pt(dst.MinX+float64(w), dst.MinY+float64(h))), p)
}

// DrawText draws nothing when face is nil, which is always the case for
// recordings replayed by gg: the recording does not keep font faces.
func (b *PlaybackBackend) DrawText(s string, x, y float64, face text.Face, brush recording.Brush) {
	if face == nil {
		return
	}
	b.target.DrawString(s, x, y, face, b.paint(brush))
}

func (b *PlaybackBackend) paint(brush recording.Brush) *Paint {
	p := NewPaint()
	p.Shader = brushShader{brush: deviceBrush(brush)}
	return p
}

// deviceBrush converts a recorded brush back to a gg brush. Pattern
// brushes are not produced by Recorder and fall back to black.
func deviceBrush(b recording.Brush) gg.Brush {
	switch v := b.(type) {
	case recording.SolidBrush:
		return gg.Solid(v.Color)
	case *recording.LinearGradientBrush:
		g := gg.NewLinearGradientBrush(v.Start.X, v.Start.Y, v.End.X, v.End.Y).SetExtend(extendMode(v.Extend))
		for _, st := range v.Stops {
			g.AddColorStop(st.Offset, st.Color)
		}
		return g
	case *recording.RadialGradientBrush:
		g := gg.NewRadialGradientBrush(v.Center.X, v.Center.Y, v.StartRadius, v.EndRadius).
			SetFocus(v.Focus.X, v.Focus.Y).
			SetExtend(extendMode(v.Extend))
		for _, st := range v.Stops {
			g.AddColorStop(st.Offset, st.Color)
		}
		return g
	case *recording.SweepGradientBrush:
		g := gg.NewSweepGradientBrush(v.Center.X, v.Center.Y, v.StartAngle).
			SetEndAngle(v.EndAngle).
			SetExtend(extendMode(v.Extend))
		for _, st := range v.Stops {
			g.AddColorStop(st.Offset, st.Color)
		}
		return g
	default:
		return gg.Solid(gg.Black)
	}
}

func extendMode(m recording.ExtendMode) gg.ExtendMode {
	switch m {
	case recording.ExtendRepeat:
		return gg.ExtendRepeat
	case recording.ExtendReflect:
		return gg.ExtendReflect
	default:
		return gg.ExtendPad
	}
}

func fillRule(r recording.FillRule) gg.FillRule {
	if r == recording.FillRuleEvenOdd {
		return gg.FillRuleEvenOdd
	}
	return gg.FillRuleNonZero
}
