// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package bridge

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/gg2d"
	"github.com/gogpu/gg2d/canvas"
)

// DeviceBackendName is the registry name of DeviceBackend.
const DeviceBackendName = "device"

var (
	// ErrUnknownTexture means a texture handle did not resolve.
	ErrUnknownTexture = errors.New("bridge: unknown texture handle")

	// ErrSizeMismatch means the texture and the frame disagree on size.
	ErrSizeMismatch = errors.New("bridge: texture size does not match frame")

	// ErrUnsupportedSurface means the requested surface configuration
	// cannot be drawn.
	ErrUnsupportedSurface = errors.New("bridge: unsupported surface")

	// ErrUnknownDevice means the frame's device and queue handles did not
	// resolve to the host device the backend was built for.
	ErrUnknownDevice = errors.New("bridge: unknown device handle")

	// ErrNoUpload means the texture accepts no pixel data and no drawer is
	// configured.
	ErrNoUpload = errors.New("bridge: texture cannot be updated")
)

// TextureResolver maps a native texture handle to the host's texture.
type TextureResolver func(handle uintptr) (gpucontext.Texture, error)

// DeviceResolver maps a frame's native device and queue handles to the
// host device that owns them.
type DeviceResolver func(device, queue uintptr) (gpucontext.DeviceProvider, error)

// DeviceSource is implemented by execution contexts bound to a host device.
type DeviceSource interface {
	DeviceProvider() gpucontext.DeviceProvider
}

// DeviceOption configures a DeviceBackend.
type DeviceOption func(*DeviceBackend)

// WithTextureDrawer sets the drawer used for textures that do not
// implement gpucontext.TextureUpdater. The frame is uploaded as a new
// texture and drawn at the origin.
func WithTextureDrawer(d gpucontext.TextureDrawer) DeviceOption {
	return func(b *DeviceBackend) {
		b.drawer = d
	}
}

// WithDeviceResolver checks every frame's device and queue handles. Frames
// whose handles do not resolve, or resolve to a device other than the
// backend's provider, fail with ErrUnknownDevice.
func WithDeviceResolver(r DeviceResolver) DeviceOption {
	return func(b *DeviceBackend) {
		b.resolveDevice = r
	}
}

// DeviceBackend is a Backend for hosts exposing their GPU through
// gpucontext.
//
// Each texture has a persistent shadow pixmap. Compositing draws into the
// shadow with the software rasterizer and FlushAndSubmit uploads it, so
// earlier frames stay underneath.
type DeviceBackend struct {
	provider      gpucontext.DeviceProvider
	resolve       TextureResolver
	resolveDevice DeviceResolver
	drawer        gpucontext.TextureDrawer

	mu      sync.Mutex
	shadows map[uintptr]*gg.Pixmap
}

var _ Backend = (*DeviceBackend)(nil)

// NewDeviceBackend returns a backend resolving textures through resolve.
// A non-nil provider is also handed to gg's GPU accelerator, so both
// render on the host device.
func NewDeviceBackend(provider gpucontext.DeviceProvider, resolve TextureResolver, opts ...DeviceOption) *DeviceBackend {
	b := &DeviceBackend{
		provider: provider,
		resolve:  resolve,
		shadows:  make(map[uintptr]*gg.Pixmap),
	}
	for _, opt := range opts {
		opt(b)
	}
	if provider != nil {
		if err := gg.SetAcceleratorDeviceProvider(provider); err != nil {
			gg2d.Logger().Warn("bridge: accelerator rejected host device", "err", err)
		} else {
			gg2d.Logger().Info("bridge: sharing host device", "adapter", provider.AdapterInfo().Name)
		}
	}
	return b
}

// Register makes b the DeviceBackendName entry of Backends.
func (b *DeviceBackend) Register() {
	Backends.Register(DeviceBackendName, func() Backend { return b })
}

// Forget drops the shadow of a texture the host has destroyed.
func (b *DeviceBackend) Forget(texture uintptr) {
	b.mu.Lock()
	delete(b.shadows, texture)
	b.mu.Unlock()
}

func (b *DeviceBackend) NewExecutionContext(device, queue uintptr) (ExecutionContext, error) {
	if device == 0 || queue == 0 {
		return nil, ErrNativeHandleMissing
	}
	if b.resolve == nil {
		return nil, ErrUnknownTexture
	}
	dev, err := b.device(device, queue)
	if err != nil {
		return nil, err
	}
	return &deviceContext{b: b, dev: dev}, nil
}

// device resolves the frame's handles. Without a resolver the handles
// are trusted to belong to the provider.
func (b *DeviceBackend) device(device, queue uintptr) (gpucontext.DeviceProvider, error) {
	if b.resolveDevice == nil {
		return b.provider, nil
	}
	dev, err := b.resolveDevice(device, queue)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnknownDevice, err)
	}
	if dev == nil {
		return nil, fmt.Errorf("%w: device %#x queue %#x", ErrUnknownDevice, device, queue)
	}
	if b.provider != nil && (dev.Device() != b.provider.Device() || dev.Queue() != b.provider.Queue()) {
		return nil, fmt.Errorf("%w: device %#x belongs to another provider", ErrUnknownDevice, device)
	}
	return dev, nil
}

// shadow returns the pixmap for texture, replacing it when the size
// changed.
func (b *DeviceBackend) shadow(texture uintptr, w, h int) *gg.Pixmap {
	b.mu.Lock()
	defer b.mu.Unlock()
	pm, ok := b.shadows[texture]
	if !ok || pm.Width() != w || pm.Height() != h {
		pm = gg.NewPixmap(w, h)
		b.shadows[texture] = pm
	}
	return pm
}

type deviceContext struct {
	b   *DeviceBackend
	dev gpucontext.DeviceProvider
}

// DeviceProvider returns the host device the frame renders on, or nil
// when the backend has none.
func (c *deviceContext) DeviceProvider() gpucontext.DeviceProvider { return c.dev }

func (c *deviceContext) WrapRenderTarget(texture uintptr, width, height int) (RenderTarget, error) {
	tex, err := c.b.resolve(texture)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnknownTexture, err)
	}
	if tex == nil {
		return nil, ErrUnknownTexture
	}
	if tex.Width() != width || tex.Height() != height {
		return nil, fmt.Errorf("%w: texture %dx%d, frame %dx%d",
			ErrSizeMismatch, tex.Width(), tex.Height(), width, height)
	}
	return &renderTarget{handle: texture, tex: tex}, nil
}

func (c *deviceContext) NewSurface(rt RenderTarget, origin Origin, format gputypes.TextureFormat, _ ColorSpace) (Surface, error) {
	t, ok := rt.(*renderTarget)
	if !ok {
		return nil, fmt.Errorf("%w: foreign render target %T", ErrUnsupportedSurface, rt)
	}
	if origin != OriginTopLeft {
		return nil, fmt.Errorf("%w: bottom-left origin", ErrUnsupportedSurface)
	}
	if format != gputypes.TextureFormatBGRA8Unorm && format != gputypes.TextureFormatRGBA8Unorm {
		return nil, fmt.Errorf("%w: format %v", ErrUnsupportedSurface, format)
	}
	r, err := canvas.NewRasterForPixmap(c.b.shadow(t.handle, t.Width(), t.Height()))
	if err != nil {
		return nil, err
	}
	return &deviceSurface{target: t, raster: r, format: format}, nil
}

func (c *deviceContext) FlushAndSubmit(s Surface) error {
	ds, ok := s.(*deviceSurface)
	if !ok {
		return fmt.Errorf("%w: foreign surface %T", ErrUnsupportedSurface, s)
	}
	pm := ds.raster.Pixmap()
	if u, ok := ds.target.tex.(gpucontext.TextureUpdater); ok {
		data := pm.Data()
		if ds.format == gputypes.TextureFormatBGRA8Unorm {
			data = swapRB(data)
		}
		return u.UpdateData(data)
	}
	if c.b.drawer == nil {
		return ErrNoUpload
	}
	tex, err := c.b.drawer.TextureCreator().NewTextureFromRGBA(pm.Width(), pm.Height(), pm.Data())
	if err != nil {
		return err
	}
	return c.b.drawer.DrawTexture(tex, 0, 0)
}

func (c *deviceContext) Close() error { return nil }

type renderTarget struct {
	handle uintptr
	tex    gpucontext.Texture
}

func (t *renderTarget) Width() int   { return t.tex.Width() }
func (t *renderTarget) Height() int  { return t.tex.Height() }
func (t *renderTarget) Close() error { return nil }

type deviceSurface struct {
	target *renderTarget
	raster *canvas.Raster
	format gputypes.TextureFormat
}

func (s *deviceSurface) Canvas() canvas.Canvas { return s.raster }

// Close releases the rasterizer. The shadow pixmap is kept.
func (s *deviceSurface) Close() error { return s.raster.Close() }

// swapRB returns a copy of RGBA pixel data in BGRA order.
func swapRB(src []byte) []byte {
	dst := make([]byte, len(src))
	for i := 0; i+3 < len(src); i += 4 {
		dst[i], dst[i+1], dst[i+2], dst[i+3] = src[i+2], src[i+1], src[i], src[i+3]
	}
	return dst
}
