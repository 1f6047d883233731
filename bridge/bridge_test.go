// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package bridge

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/gg2d/canvas"
	"github.com/gogpu/gg2d/geom"
)

// mockSurface is a host frame with fixed handles.
type mockSurface struct {
	handles []uintptr
	names   []string
	w, h    int
	scale   float64
	runs    int
}

func (s *mockSurface) RunExternal(task RenderingTask) {
	s.runs++
	task.Run("texture", s.handles, s.names)
}

func (s *mockSurface) NativeSize() (int, int) { return s.w, s.h }

func (s *mockSurface) DefaultTransform() geom.Affine {
	return geom.Identity().Scale(s.scale, s.scale)
}

// mockTexture counts uploads and keeps the last one.
type mockTexture struct {
	w, h    int
	uploads int
	last    []byte
}

func (t *mockTexture) Width() int  { return t.w }
func (t *mockTexture) Height() int { return t.h }

func (t *mockTexture) UpdateData(data []byte) error {
	t.uploads++
	t.last = append(t.last[:0], data...)
	return nil
}

// plainTexture accepts no uploads.
type plainTexture struct{ w, h int }

func (t plainTexture) Width() int  { return t.w }
func (t plainTexture) Height() int { return t.h }

type mockDrawer struct {
	created []gpucontext.Texture
	drawn   int
	pixels  []byte
}

func (d *mockDrawer) DrawTexture(gpucontext.Texture, float32, float32) error {
	d.drawn++
	return nil
}

func (d *mockDrawer) TextureCreator() gpucontext.TextureCreator { return d }

func (d *mockDrawer) NewTextureFromRGBA(w, h int, data []byte) (gpucontext.Texture, error) {
	d.pixels = append([]byte(nil), data...)
	t := plainTexture{w: w, h: h}
	d.created = append(d.created, t)
	return t, nil
}

func resolverFor(textures map[uintptr]gpucontext.Texture) TextureResolver {
	return func(h uintptr) (gpucontext.Texture, error) {
		t, ok := textures[h]
		if !ok {
			return nil, errors.New("no such texture")
		}
		return t, nil
	}
}

func fillRed(c canvas.Canvas, _ ExecutionContext, _ float64) error {
	p := canvas.NewPaint()
	p.Shader = canvas.ColorShader{Color: gg.RGBA{R: 1, A: 1}}
	c.DrawRect(0, 0, 2, 2, p)
	return nil
}

func TestFrame(t *testing.T) {
	sd := &mockSurface{handles: []uintptr{1, 2, 3}, w: 40, h: 30, scale: 2}
	f, err := Frame(sd)
	if err != nil {
		t.Fatal(err)
	}
	want := NativeFrame{SurfaceType: "texture", Device: 1, Queue: 2, Texture: 3, NativeWidth: 40, NativeHeight: 30, Scale: 2}
	if f != want {
		t.Errorf("Frame = %+v, want %+v", f, want)
	}
}

func TestFrameMissingHandles(t *testing.T) {
	tests := []struct {
		name    string
		handles []uintptr
		names   []string
		index   int
		label   string
	}{
		{"none", nil, nil, DeviceIndex, "device"},
		{"zero queue", []uintptr{1, 0, 3}, nil, QueueIndex, "queue"},
		{"short", []uintptr{1, 2}, nil, TextureIndex, "texture"},
		{"named", []uintptr{1, 2, 0}, []string{"dev", "q", "swapchain"}, TextureIndex, "swapchain"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Frame(&mockSurface{handles: tt.handles, names: tt.names, w: 1, h: 1, scale: 1})
			if !errors.Is(err, ErrNativeHandleMissing) {
				t.Fatalf("err = %v, want ErrNativeHandleMissing", err)
			}
			var he *HandleError
			if !errors.As(err, &he) || he.Index != tt.index || he.Name != tt.label {
				t.Errorf("err = %#v, want index %d name %q", err, tt.index, tt.label)
			}
		})
	}
	if _, err := Frame(nil); !errors.Is(err, ErrNativeHandleMissing) {
		t.Errorf("Frame(nil) = %v", err)
	}
}

func TestWithCanvasComposites(t *testing.T) {
	tex := &mockTexture{w: 4, h: 4}
	b := NewDeviceBackend(nil, resolverFor(map[uintptr]gpucontext.Texture{3: tex}))
	sd := &mockSurface{handles: []uintptr{1, 2, 3}, w: 4, h: 4, scale: 1.5}

	calls := 0
	var gotScale float64
	err := New(b).WithCanvas(sd, func(c canvas.Canvas, ctx ExecutionContext, scale float64) error {
		calls++
		gotScale = scale
		if c.Width() != 4 || c.Height() != 4 {
			t.Errorf("surface canvas is %dx%d", c.Width(), c.Height())
		}
		return fillRed(c, ctx, scale)
	})
	if err != nil {
		t.Fatal(err)
	}
	if calls != 1 || tex.uploads != 1 {
		t.Fatalf("composite calls %d, uploads %d", calls, tex.uploads)
	}
	if gotScale != 1.5 {
		t.Errorf("scale = %v", gotScale)
	}
	// BGRA order: red lands in the third byte.
	if got := tex.last[:4]; got[0] != 0 || got[2] != 255 || got[3] != 255 {
		t.Errorf("first pixel = %v, want BGRA red", got)
	}

	// A second frame draws elsewhere; the first frame's pixels remain.
	err = New(b).WithCanvas(sd, func(c canvas.Canvas, _ ExecutionContext, _ float64) error {
		p := canvas.NewPaint()
		p.Shader = canvas.ColorShader{Color: gg.RGBA{B: 1, A: 1}}
		c.DrawRect(2, 2, 2, 2, p)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := tex.last[:4]; got[2] != 255 {
		t.Errorf("earlier frame cleared: first pixel = %v", got)
	}
	last := tex.last[(3*4+3)*4:]
	if last[0] != 255 || last[2] != 0 {
		t.Errorf("second frame pixel = %v, want BGRA blue", last[:4])
	}
}

func TestWithCanvasSkipsMissingHandles(t *testing.T) {
	tex := &mockTexture{w: 4, h: 4}
	b := NewDeviceBackend(nil, resolverFor(map[uintptr]gpucontext.Texture{3: tex}))
	calls := 0
	fn := func(canvas.Canvas, ExecutionContext, float64) error {
		calls++
		return nil
	}
	for _, handles := range [][]uintptr{{0, 2, 3}, {1, 2, 0}, {1}} {
		sd := &mockSurface{handles: handles, w: 4, h: 4, scale: 1}
		if err := New(b).WithCanvas(sd, fn); err != nil {
			t.Errorf("handles %v: err = %v, want the frame skipped", handles, err)
		}
	}
	if calls != 0 || tex.uploads != 0 {
		t.Errorf("skipped frames drew: calls %d, uploads %d", calls, tex.uploads)
	}
}

func TestWithCanvasErrors(t *testing.T) {
	tex := &mockTexture{w: 4, h: 4}
	b := NewDeviceBackend(nil, resolverFor(map[uintptr]gpucontext.Texture{3: tex}))

	sd := &mockSurface{handles: []uintptr{1, 2, 9}, w: 4, h: 4, scale: 1}
	if err := New(b).WithCanvas(sd, fillRed); !errors.Is(err, ErrUnknownTexture) {
		t.Errorf("unknown texture: err = %v", err)
	}
	sd = &mockSurface{handles: []uintptr{1, 2, 3}, w: 8, h: 4, scale: 1}
	if err := New(b).WithCanvas(sd, fillRed); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("size mismatch: err = %v", err)
	}
	sd = &mockSurface{handles: []uintptr{1, 2, 3}, w: 4, h: 4, scale: 1}
	boom := errors.New("boom")
	err := New(b).WithCanvas(sd, func(canvas.Canvas, ExecutionContext, float64) error { return boom })
	if !errors.Is(err, boom) || tex.uploads != 0 {
		t.Errorf("failing composite: err = %v, uploads %d", err, tex.uploads)
	}
	err = New(b).WithCanvas(sd, func(canvas.Canvas, ExecutionContext, float64) error { panic("bad frame") })
	if err == nil {
		t.Error("panic in composite not reported")
	}
}

func TestWithCanvasDrawerFallback(t *testing.T) {
	d := &mockDrawer{}
	b := NewDeviceBackend(nil, resolverFor(map[uintptr]gpucontext.Texture{3: plainTexture{w: 2, h: 2}}), WithTextureDrawer(d))
	sd := &mockSurface{handles: []uintptr{1, 2, 3}, w: 2, h: 2, scale: 1}
	if err := New(b).WithCanvas(sd, fillRed); err != nil {
		t.Fatal(err)
	}
	if len(d.created) != 1 || d.drawn != 1 {
		t.Fatalf("created %d, drawn %d", len(d.created), d.drawn)
	}
	if d.pixels[0] != 255 || d.pixels[2] != 0 {
		t.Errorf("drawer got %v, want RGBA red", d.pixels[:4])
	}

	nb := NewDeviceBackend(nil, resolverFor(map[uintptr]gpucontext.Texture{3: plainTexture{w: 2, h: 2}}))
	if err := New(nb).WithCanvas(sd, fillRed); !errors.Is(err, ErrNoUpload) {
		t.Errorf("err = %v, want ErrNoUpload", err)
	}
}

// hostDevice is a host GPU device; its device and queue tokens are the
// handles a frame reports.
type hostDevice struct {
	dev, queue *int
}

func newHostDevice() *hostDevice { return &hostDevice{dev: new(int), queue: new(int)} }

func (d *hostDevice) Device() gpucontext.Device { return d.dev }
func (d *hostDevice) Queue() gpucontext.Queue   { return d.queue }

func (d *hostDevice) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatBGRA8Unorm
}

func (d *hostDevice) Adapter() gpucontext.Adapter { return nil }

func (d *hostDevice) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Name: "host"}
}

func devicesFor(devices map[uintptr]gpucontext.DeviceProvider) DeviceResolver {
	return func(device, _ uintptr) (gpucontext.DeviceProvider, error) {
		d, ok := devices[device]
		if !ok {
			return nil, errors.New("no such device")
		}
		return d, nil
	}
}

func TestWithCanvasChecksDevice(t *testing.T) {
	host, other := newHostDevice(), newHostDevice()
	textures := resolverFor(map[uintptr]gpucontext.Texture{3: &mockTexture{w: 2, h: 2}})
	devices := devicesFor(map[uintptr]gpucontext.DeviceProvider{1: host, 7: other})
	tests := []struct {
		name    string
		device  uintptr
		resolve DeviceResolver
		wantErr error
	}{
		{"host device", 1, devices, nil},
		{"foreign device", 7, devices, ErrUnknownDevice},
		{"unresolved device", 5, devices, ErrUnknownDevice},
		{"nil device", 1, func(uintptr, uintptr) (gpucontext.DeviceProvider, error) { return nil, nil }, ErrUnknownDevice},
		{"no resolver", 5, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []DeviceOption
			if tt.resolve != nil {
				opts = append(opts, WithDeviceResolver(tt.resolve))
			}
			b := NewDeviceBackend(host, textures, opts...)
			sd := &mockSurface{handles: []uintptr{tt.device, 2, 3}, w: 2, h: 2, scale: 1}
			var got gpucontext.DeviceProvider
			err := New(b).WithCanvas(sd, func(c canvas.Canvas, ctx ExecutionContext, s float64) error {
				got = ctx.(DeviceSource).DeviceProvider()
				return fillRed(c, ctx, s)
			})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && got != gpucontext.DeviceProvider(host) {
				t.Errorf("composite ran on %v, want the host device", got)
			}
		})
	}
}

// countingBackend records resource lifetimes.
type countingBackend struct {
	opened, closed int
	surfaceErr     error
}

func (b *countingBackend) NewExecutionContext(uintptr, uintptr) (ExecutionContext, error) {
	b.opened++
	return &countingContext{b: b}, nil
}

type countingContext struct{ b *countingBackend }

func (c *countingContext) WrapRenderTarget(_ uintptr, w, h int) (RenderTarget, error) {
	c.b.opened++
	return &countingTarget{b: c.b, w: w, h: h}, nil
}

func (c *countingContext) NewSurface(rt RenderTarget, _ Origin, _ gputypes.TextureFormat, _ ColorSpace) (Surface, error) {
	if c.b.surfaceErr != nil {
		return nil, c.b.surfaceErr
	}
	r, err := canvas.NewRaster(rt.Width(), rt.Height())
	if err != nil {
		return nil, err
	}
	c.b.opened++
	return &countingSurface{b: c.b, r: r}, nil
}

func (c *countingContext) FlushAndSubmit(Surface) error { return nil }

func (c *countingContext) Close() error {
	c.b.closed++
	return nil
}

type countingTarget struct {
	b    *countingBackend
	w, h int
}

func (t *countingTarget) Width() int  { return t.w }
func (t *countingTarget) Height() int { return t.h }

func (t *countingTarget) Close() error {
	t.b.closed++
	return nil
}

type countingSurface struct {
	b *countingBackend
	r *canvas.Raster
}

func (s *countingSurface) Canvas() canvas.Canvas { return s.r }

func (s *countingSurface) Close() error {
	s.b.closed++
	return s.r.Close()
}

func TestWithCanvasReleasesResources(t *testing.T) {
	sd := &mockSurface{handles: []uintptr{1, 2, 3}, w: 2, h: 2, scale: 1}
	tests := []struct {
		name       string
		fn         CompositeFunc
		surfaceErr error
		opened     int
	}{
		{"success", fillRed, nil, 3},
		{"composite error", func(canvas.Canvas, ExecutionContext, float64) error { return errors.New("x") }, nil, 3},
		{"composite panic", func(canvas.Canvas, ExecutionContext, float64) error { panic("x") }, nil, 3},
		{"surface error", fillRed, errors.New("no surface"), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &countingBackend{surfaceErr: tt.surfaceErr}
			_ = New(b).WithCanvas(sd, tt.fn)
			if b.opened != tt.opened || b.closed != b.opened {
				t.Errorf("opened %d, closed %d, want %d each", b.opened, b.closed, tt.opened)
			}
		})
	}
}

func TestRegistry(t *testing.T) {
	sd := &mockSurface{handles: []uintptr{1, 2, 3}, w: 2, h: 2, scale: 1}
	if Backends.Count() == 0 {
		if err := WithCanvas(sd, fillRed); !errors.Is(err, ErrNoBackend) {
			t.Errorf("empty registry: err = %v", err)
		}
	}
	tex := &mockTexture{w: 2, h: 2}
	b := NewDeviceBackend(nil, resolverFor(map[uintptr]gpucontext.Texture{3: tex}))
	b.Register()
	t.Cleanup(func() { Backends.Unregister(DeviceBackendName) })
	if Backends.BestName() != DeviceBackendName {
		t.Fatalf("best backend = %q", Backends.BestName())
	}
	if err := WithCanvas(sd, fillRed); err != nil {
		t.Fatal(err)
	}
	if tex.uploads != 1 {
		t.Errorf("uploads = %d", tex.uploads)
	}
}

func TestSwapRB(t *testing.T) {
	got := swapRB([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	want := []byte{3, 2, 1, 4, 7, 6, 5, 8}
	if string(got) != string(want) {
		t.Errorf("swapRB = %v, want %v", got, want)
	}
}
