// Command gg2ddemo draws a few frames through the legacy graphics API onto
// an in-memory window texture and saves the last one as a PNG.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/gg2d"
	"github.com/gogpu/gg2d/bridge"
	"github.com/gogpu/gg2d/frame"
	"github.com/gogpu/gg2d/g2d"
	"github.com/gogpu/gg2d/geom"
)

func main() {
	var (
		width    = flag.Int("width", 800, "window width in points")
		height   = flag.Int("height", 600, "window height in points")
		scale    = flag.Float64("scale", 1, "device pixels per point")
		frames   = flag.Int("frames", 3, "frames to draw")
		strategy = flag.String("strategy", "raster", "offscreen strategy: raster or picture")
		output   = flag.String("output", "demo.png", "output file")
		verbose  = flag.Bool("v", false, "log debug output")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	gg2d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	win := newWindow(int(float64(*width)**scale), int(float64(*height)**scale), *scale)
	backend := bridge.NewDeviceBackend(nil, win.resolve)
	backend.Register()

	kind := frame.StrategyRaster
	if *strategy == "picture" {
		kind = frame.StrategyPicture
	}
	frame.Install(win, frame.NewFactory(frame.WithStrategy(kind)))

	for i := range *frames {
		g := win.factory(win, g2d.Black, g2d.RGB(24, 32, 56), g2d.DefaultFont)
		if g == nil {
			log.Fatalf("frame %d: no graphics context", i)
		}
		drawFrame(g, float64(*width), float64(*height), i)
		g.Dispose()
	}

	if err := win.savePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", *output, win.tex.w, win.tex.h)
}

func drawFrame(g g2d.Graphics2D, w, h float64, n int) {
	g.ClearRect(0, 0, w, h)

	// Sky
	g.SetPaint(&g2d.GradientPaint{
		P1: geom.Pt(0, 0), C1: g2d.RGB(40, 60, 120),
		P2: geom.Pt(0, h), C2: g2d.RGB(200, 120, 80),
	})
	g.FillRect(0, 0, w, h)

	drawShapes(g)
	drawPinwheel(g, w*0.75, h*0.3, float64(n)*math.Pi/12)
	drawText(g, h)
}

func drawShapes(g g2d.Graphics2D) {
	g.SetComposite(g2d.NewAlphaComposite(g2d.RuleSrcOver, 0.8))
	for i, c := range []g2d.Color{g2d.Red, g2d.Green, g2d.Blue} {
		g.SetColor(c)
		g.FillOval(90+float64(i)*50, 90+float64(i%2)*50, 120, 120)
	}
	g.SetComposite(g2d.SrcOver)

	g.SetColor(g2d.RGB(255, 204, 0))
	g.FillRoundRect(350, 100, 120, 80, 30, 30)
	g.SetColor(g2d.White)
	_ = g.SetStroke(g2d.BasicStroke{Width: 4, Cap: g2d.CapRound, Join: g2d.JoinRound, MiterLimit: 10})
	g.DrawRoundRect(350, 100, 120, 80, 30, 30)

	_ = g.SetStroke(g2d.BasicStroke{Width: 2, Cap: g2d.CapButt, Join: g2d.JoinMiter, MiterLimit: 10, Dash: []float64{8, 4}})
	g.DrawArc(350, 220, 120, 120, 30, 300)

	xs := []float64{100, 160, 220, 190, 130}
	ys := []float64{420, 380, 420, 480, 480}
	g.SetPaint(g2d.NewRadialGradientPaint(geom.Pt(160, 440), 70,
		[]float64{0, 1}, []g2d.Color{g2d.White, g2d.Blue}, g2d.NoCycle))
	g.FillPolygon(xs, ys, len(xs))
}

func drawPinwheel(g g2d.Graphics2D, cx, cy, phase float64) {
	sub := g.Create()
	defer sub.Dispose()
	sub.Translate(cx, cy)
	sub.Rotate(phase)
	for i := range 8 {
		sub.SetColor(g2d.RGB(uint8(255-i*25), uint8(80+i*20), 200))
		sub.FillRect(10, -8, 60, 16)
		sub.Rotate(math.Pi / 4)
	}
}

func drawText(g g2d.Graphics2D, h float64) {
	clip := g.CreateRegion(40, h-100, 600, 60)
	defer clip.Dispose()
	clip.SetColor(g2d.White)
	if err := clip.SetFont(g2d.Font{Name: g2d.SansSerif, Style: g2d.Bold, Size: 28}); err != nil {
		log.Printf("font: %v", err)
		return
	}
	if err := clip.DrawString("gg2d legacy graphics", 0, 40); err != nil {
		log.Printf("text: %v", err)
	}
}

// window stands in for a host window: it owns one texture and hands the
// factory its native handles.
type window struct {
	tex     *memTexture
	scale   float64
	factory frame.GraphicsFactory
}

const (
	deviceHandle  uintptr = 1
	queueHandle   uintptr = 2
	textureHandle uintptr = 3
)

func newWindow(w, h int, scale float64) *window {
	return &window{tex: &memTexture{w: w, h: h, data: make([]byte, w*h*4)}, scale: scale}
}

func (w *window) SetGraphicsFactory(f frame.GraphicsFactory) { w.factory = f }
func (w *window) DisableDoubleBuffering()                    {}

func (w *window) RunExternal(task bridge.RenderingTask) {
	task.Run("memory", []uintptr{deviceHandle, queueHandle, textureHandle}, nil)
}

func (w *window) NativeSize() (int, int) { return w.tex.w, w.tex.h }

func (w *window) DefaultTransform() geom.Affine { return geom.Scaling(w.scale, w.scale) }

func (w *window) resolve(handle uintptr) (gpucontext.Texture, error) {
	if handle != textureHandle {
		return nil, bridge.ErrUnknownTexture
	}
	return w.tex, nil
}

func (w *window) savePNG(path string) error {
	img := image.NewRGBA(image.Rect(0, 0, w.tex.w, w.tex.h))
	for i := 0; i < len(w.tex.data); i += 4 {
		// The texture holds BGRA.
		img.Pix[i+0] = w.tex.data[i+2]
		img.Pix[i+1] = w.tex.data[i+1]
		img.Pix[i+2] = w.tex.data[i+0]
		img.Pix[i+3] = w.tex.data[i+3]
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// memTexture is a BGRA texture in host memory.
type memTexture struct {
	w, h int
	data []byte
}

func (t *memTexture) Width() int  { return t.w }
func (t *memTexture) Height() int { return t.h }

func (t *memTexture) UpdateData(data []byte) error {
	copy(t.data, data)
	return nil
}
