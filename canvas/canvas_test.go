package canvas

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// px returns the premultiplied RGBA bytes at (x, y).
func px(pm *gg.Pixmap, x, y int) [4]uint8 {
	i := (y*pm.Width() + x) * 4
	d := pm.Data()
	return [4]uint8{d[i], d[i+1], d[i+2], d[i+3]}
}

func near(a, b [4]uint8, tol int) bool {
	for k := range 4 {
		d := int(a[k]) - int(b[k])
		if d < -tol || d > tol {
			return false
		}
	}
	return true
}

var (
	opaqueRed   = [4]uint8{255, 0, 0, 255}
	opaqueBlue  = [4]uint8{0, 0, 255, 255}
	transparent = [4]uint8{}
)

func solid(c gg.RGBA) *Paint {
	p := NewPaint()
	p.Shader = ColorShader{Color: c}
	return p
}

func newRaster(t *testing.T, w, h int) *Raster {
	t.Helper()
	r, err := NewRaster(w, h)
	if err != nil {
		t.Fatalf("NewRaster: %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestNewRasterInvalidSize(t *testing.T) {
	for _, sz := range [][2]int{{0, 10}, {10, 0}, {-1, 5}} {
		if _, err := NewRaster(sz[0], sz[1]); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("NewRaster(%d, %d) error = %v, want ErrInvalidSize", sz[0], sz[1], err)
		}
	}
	if _, err := NewRecorder(0, 1); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("NewRecorder error = %v, want ErrInvalidSize", err)
	}
}

func TestRasterSaveRestore(t *testing.T) {
	r := newRaster(t, 10, 10)
	if got := r.SaveCount(); got != 1 {
		t.Fatalf("initial SaveCount = %d", got)
	}
	base := r.Save()
	if base != 1 || r.SaveCount() != 2 {
		t.Fatalf("Save = %d, SaveCount = %d", base, r.SaveCount())
	}
	r.SetMatrix(gg.Translate(3, 4))
	r.Save()
	r.SetMatrix(gg.Scale(2, 2))
	r.RestoreToCount(base)
	if r.SaveCount() != 1 {
		t.Errorf("SaveCount after RestoreToCount = %d", r.SaveCount())
	}
	if !r.Matrix().IsIdentity() {
		t.Errorf("matrix not restored: %+v", r.Matrix())
	}
	r.Restore()
	r.RestoreToCount(-3)
	if r.SaveCount() != 1 {
		t.Errorf("restore below the bottom changed SaveCount to %d", r.SaveCount())
	}
}

func TestRasterFillRect(t *testing.T) {
	r := newRaster(t, 40, 30)
	r.DrawRect(10, 10, 20, 10, solid(gg.Red))
	pm := r.Pixmap()

	tests := []struct {
		name string
		x, y int
		want [4]uint8
	}{
		{"inside", 15, 15, opaqueRed},
		{"inside corner", 10, 10, opaqueRed},
		{"left of rect", 9, 15, transparent},
		{"below rect", 15, 20, transparent},
		{"far corner", 39, 29, transparent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := px(pm, tt.x, tt.y); !near(got, tt.want, 2) {
				t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRasterClipIsScopedBySave(t *testing.T) {
	r := newRaster(t, 20, 20)
	base := r.Save()
	clip := gg.NewPath()
	clip.Rectangle(5, 5, 5, 5)
	r.ClipPath(clip, gg.FillRuleNonZero)
	r.DrawRect(0, 0, 20, 20, solid(gg.Red))

	pm := r.Pixmap()
	if got := px(pm, 7, 7); !near(got, opaqueRed, 2) {
		t.Errorf("inside clip = %v", got)
	}
	if got := px(pm, 2, 2); got != transparent {
		t.Errorf("outside clip = %v", got)
	}

	r.RestoreToCount(base)
	r.DrawRect(0, 0, 20, 20, solid(gg.Blue))
	if got := px(r.Pixmap(), 2, 2); !near(got, opaqueBlue, 2) {
		t.Errorf("clip survived restore: %v", got)
	}
}

func TestRasterClipUnderMatrix(t *testing.T) {
	r := newRaster(t, 20, 20)
	r.SetMatrix(gg.Translate(10, 10))
	clip := gg.NewPath()
	clip.Rectangle(0, 0, 5, 5)
	r.ClipPath(clip, gg.FillRuleNonZero)
	r.SetMatrix(gg.Identity())
	r.DrawRect(0, 0, 20, 20, solid(gg.Red))

	pm := r.Pixmap()
	if got := px(pm, 12, 12); !near(got, opaqueRed, 2) {
		t.Errorf("inside translated clip = %v", got)
	}
	if got := px(pm, 2, 2); got != transparent {
		t.Errorf("clip was not translated: %v", got)
	}
}

func TestRasterEvenOddClip(t *testing.T) {
	r := newRaster(t, 30, 30)
	ring := gg.NewPath()
	ring.Rectangle(0, 0, 30, 30)
	ring.Rectangle(10, 10, 10, 10)
	r.ClipPath(ring, gg.FillRuleEvenOdd)
	r.DrawRect(0, 0, 30, 30, solid(gg.Red))

	pm := r.Pixmap()
	if got := px(pm, 5, 5); !near(got, opaqueRed, 2) {
		t.Errorf("ring = %v", got)
	}
	if got := px(pm, 15, 15); got != transparent {
		t.Errorf("hole = %v", got)
	}
}

func TestRasterBlendModes(t *testing.T) {
	tests := []struct {
		name   string
		mode   BlendMode
		inside [4]uint8
	}{
		{"clear", BlendClear, transparent},
		{"src", BlendSrc, opaqueBlue},
		{"dst", BlendDst, opaqueRed},
		{"src in", BlendSrcIn, opaqueBlue},
		{"dst out", BlendDstOut, transparent},
		{"xor", BlendXor, transparent},
		{"dst over", BlendDstOver, opaqueRed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRaster(t, 20, 20)
			r.DrawRect(0, 0, 10, 20, solid(gg.Red))
			p := solid(gg.Blue)
			p.Blend = tt.mode
			r.DrawRect(5, 5, 10, 10, p)

			pm := r.Pixmap()
			if got := px(pm, 7, 7); !near(got, tt.inside, 3) {
				t.Errorf("overlap = %v, want %v", got, tt.inside)
			}
			if got := px(pm, 2, 2); !near(got, opaqueRed, 2) {
				t.Errorf("outside the shape = %v, want untouched red", got)
			}
		})
	}
}

func TestRasterSrcInRespectsClip(t *testing.T) {
	r := newRaster(t, 20, 20)
	r.DrawRect(0, 0, 20, 20, solid(gg.Red))
	clip := gg.NewPath()
	clip.Rectangle(0, 0, 10, 20)
	r.ClipPath(clip, gg.FillRuleNonZero)
	p := solid(gg.Blue)
	p.Blend = BlendSrc
	r.DrawRect(0, 0, 20, 20, p)

	pm := r.Pixmap()
	if got := px(pm, 5, 5); !near(got, opaqueBlue, 3) {
		t.Errorf("inside clip = %v", got)
	}
	if got := px(pm, 15, 5); !near(got, opaqueRed, 2) {
		t.Errorf("outside clip = %v", got)
	}
}

func TestRasterAlpha(t *testing.T) {
	r := newRaster(t, 10, 10)
	p := solid(gg.Red)
	p.Alpha = 0.5
	r.DrawRect(0, 0, 10, 10, p)
	if got := px(r.Pixmap(), 5, 5); !near(got, [4]uint8{128, 0, 0, 128}, 3) {
		t.Errorf("half alpha = %v", got)
	}

	p.Alpha = 0
	r.Clear(gg.Transparent)
	r.DrawRect(0, 0, 10, 10, p)
	if got := px(r.Pixmap(), 5, 5); got != transparent {
		t.Errorf("zero alpha drew %v", got)
	}
}

func TestRasterLinearGradientUnderMatrix(t *testing.T) {
	r := newRaster(t, 100, 10)
	r.SetMatrix(gg.Scale(10, 1))
	p := NewPaint()
	p.Shader = DefaultShaderFactory{}.LinearGradient(gg.Pt(0, 0), gg.Pt(10, 0),
		[]gg.ColorStop{{Offset: 0, Color: gg.Red}, {Offset: 1, Color: gg.Blue}}, TileClamp)
	r.DrawRect(0, 0, 10, 10, p)

	pm := r.Pixmap()
	left, right := px(pm, 2, 5), px(pm, 97, 5)
	if left[0] < 200 || left[2] > 55 {
		t.Errorf("left end = %v, want red", left)
	}
	if right[2] < 200 || right[0] > 55 {
		t.Errorf("right end = %v, want blue", right)
	}
}

func TestRasterDrawImageRect(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := range 2 {
		for x := range 2 {
			img.Set(x, y, color.RGBA{0, 0, 255, 255})
		}
	}
	r := newRaster(t, 20, 20)
	r.DrawImageRect(img, img.Bounds(), gg.NewRect(gg.Pt(4, 4), gg.Pt(12, 12)), NewPaint())

	pm := r.Pixmap()
	if got := px(pm, 8, 8); !near(got, opaqueBlue, 3) {
		t.Errorf("image center = %v", got)
	}
	if got := px(pm, 15, 15); got != transparent {
		t.Errorf("outside image = %v", got)
	}
}

func TestRasterDrawString(t *testing.T) {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource: %v", err)
	}
	defer src.Close()
	face := src.Face(24)

	r := newRaster(t, 120, 40)
	r.DrawString("HH", 4, 30, face, solid(gg.Black))

	pm := r.Pixmap()
	inked := 0
	for y := range pm.Height() {
		for x := range pm.Width() {
			if px(pm, x, y)[3] > 0 {
				inked++
			}
		}
	}
	if inked == 0 {
		t.Fatal("DrawString left the raster empty")
	}
	if got := px(pm, 4, 35); got != transparent {
		t.Errorf("ink below the baseline = %v", got)
	}
}

func TestPicturePlaybackMatchesRaster(t *testing.T) {
	draw := func(c Canvas) {
		c.DrawRect(0, 0, 40, 40, solid(gg.White))
		base := c.Save()
		c.SetMatrix(gg.Translate(10, 10))
		clip := gg.NewPath()
		clip.Rectangle(0, 0, 10, 10)
		c.ClipPath(clip, gg.FillRuleNonZero)
		c.DrawOval(0, 0, 20, 20, solid(gg.Red))
		c.RestoreToCount(base)
		stroke := solid(gg.Blue).WithStyle(StyleStroke)
		stroke.Stroke.Width = 2
		c.DrawLine(0, 35, 40, 35, stroke)
	}

	direct := newRaster(t, 40, 40)
	draw(direct)

	rec, err := NewRecorder(40, 40)
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}
	draw(rec)
	pic := rec.Finish()
	if pic.Len() == 0 {
		t.Fatal("empty picture")
	}
	replayed := newRaster(t, 40, 40)
	if err := pic.Playback(replayed); err != nil {
		t.Fatalf("Playback: %v", err)
	}
	if replayed.SaveCount() != 1 || !replayed.Matrix().IsIdentity() {
		t.Errorf("playback left state behind: count %d matrix %+v", replayed.SaveCount(), replayed.Matrix())
	}

	for _, pt := range [][2]int{{15, 15}, {25, 25}, {5, 5}, {20, 35}} {
		a, b := px(direct.Pixmap(), pt[0], pt[1]), px(replayed.Pixmap(), pt[0], pt[1])
		if !near(a, b, 4) {
			t.Errorf("pixel %v: raster %v, playback %v", pt, a, b)
		}
	}

	pic.Release()
	if err := pic.Playback(replayed); !errors.Is(err, ErrPictureConsumed) {
		t.Errorf("Playback after Release error = %v", err)
	}
}

func TestRegisteredPlaybackBackend(t *testing.T) {
	rec, _ := NewRecorder(8, 8)
	rec.DrawRect(0, 0, 8, 8, solid(gg.Red))
	pic := rec.Finish()

	be, err := recording.NewBackend(BackendName)
	if err != nil {
		t.Fatalf("NewBackend: %v", err)
	}
	if err := pic.rec.Playback(be); err != nil {
		t.Fatalf("Playback: %v", err)
	}
	pb, ok := be.(*PlaybackBackend)
	if !ok {
		t.Fatalf("registered backend is %T", be)
	}
	if got := px(pb.Raster().Pixmap(), 4, 4); !near(got, opaqueRed, 2) {
		t.Errorf("registered backend pixel = %v", got)
	}
}

func TestNormalizeImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(3, 3, 5, 5))
	src.Set(3, 3, color.NRGBA{255, 0, 0, 128})
	got := NormalizeImage(src)
	if got.Rect != image.Rect(0, 0, 2, 2) {
		t.Fatalf("bounds = %v", got.Rect)
	}
	if c := got.RGBAAt(0, 0); c.A != 128 || c.R != 128 {
		t.Errorf("pixel = %v, want premultiplied half red", c)
	}
	rgba := image.NewRGBA(image.Rect(0, 0, 1, 1))
	if NormalizeImage(rgba) != rgba {
		t.Error("origin RGBA copied")
	}
	if NormalizeImage(nil) != nil {
		t.Error("nil image not passed through")
	}
}

func BenchmarkRasterBlendSrcIn(b *testing.B) {
	r, _ := NewRaster(256, 256)
	defer r.Close()
	p := solid(gg.Blue)
	p.Blend = BlendSrcIn
	b.ReportAllocs()
	for b.Loop() {
		r.DrawRect(10, 10, 200, 200, p)
	}
}
