// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package bridge composites offscreen drawing onto the native GPU surface of
// a host frame.
//
// For each frame the host hands over its device, queue and destination
// texture as raw handles through a RenderingTask. WithCanvas wraps them in
// a Surface from the selected Backend, runs a CompositeFunc on the surface
// canvas, and flushes the result to the texture.
package bridge

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gogpu/gg2d"
	"github.com/gogpu/gg2d/canvas"
	"github.com/gogpu/gg2d/geom"
)

var (
	// ErrNativeHandleMissing means the host supplied no usable handle for
	// the device, queue or texture. The frame is skipped.
	ErrNativeHandleMissing = errors.New("bridge: native handle missing")

	// ErrNoBackend means no Backend is registered.
	ErrNoBackend = errors.New("bridge: no backend registered")
)

// HandleError reports which native handle is missing.
type HandleError struct {
	Index int
	Name  string
}

func (e *HandleError) Error() string {
	return fmt.Sprintf("bridge: native %s handle (index %d) missing", e.Name, e.Index)
}

func (e *HandleError) Unwrap() error { return ErrNativeHandleMissing }

// SurfaceData is the host's view of the frame being drawn.
type SurfaceData interface {
	// RunExternal runs task with the frame's native handles.
	RunExternal(task RenderingTask)
	// NativeSize returns the physical size of the surface in pixels.
	NativeSize() (width, height int)
	// DefaultTransform maps logical coordinates to physical pixels.
	DefaultTransform() geom.Affine
}

// NativeFrame holds the handles and geometry of one frame. It is only
// valid during the WithCanvas call that produced it.
type NativeFrame struct {
	SurfaceType  string
	Device       uintptr
	Queue        uintptr
	Texture      uintptr
	NativeWidth  int
	NativeHeight int
	Scale        float64
}

// Frame collects the native handles of sd. It fails with an error matching
// ErrNativeHandleMissing when a handle is absent or zero.
func Frame(sd SurfaceData) (NativeFrame, error) {
	var f NativeFrame
	if sd == nil {
		return f, ErrNativeHandleMissing
	}
	var handles []uintptr
	var names []string
	sd.RunExternal(RenderingTaskFunc(func(surfaceType string, h []uintptr, n []string) {
		f.SurfaceType = surfaceType
		handles = slices.Clone(h)
		names = slices.Clone(n)
	}))
	for i := range TextureIndex + 1 {
		if i < len(handles) && handles[i] != 0 {
			continue
		}
		name := handleNames[i]
		if i < len(names) && names[i] != "" {
			name = names[i]
		}
		return f, &HandleError{Index: i, Name: name}
	}
	f.Device = handles[DeviceIndex]
	f.Queue = handles[QueueIndex]
	f.Texture = handles[TextureIndex]
	f.NativeWidth, f.NativeHeight = sd.NativeSize()
	f.Scale = sd.DefaultTransform().ScaleX()
	return f, nil
}

// CompositeFunc draws onto the surface canvas of a frame. scale is the
// factor from logical to physical pixels.
type CompositeFunc func(c canvas.Canvas, ctx ExecutionContext, scale float64) error

// Bridge composites frames through one Backend.
type Bridge struct {
	backend Backend
}

// New returns a bridge using b.
func New(b Backend) *Bridge {
	return &Bridge{backend: b}
}

// WithCanvas composites one frame of the best registered backend.
func WithCanvas(sd SurfaceData, fn CompositeFunc) error {
	b := Backends.Best()
	if b == nil {
		return ErrNoBackend
	}
	return New(b).WithCanvas(sd, fn)
}

// WithCanvas wraps the frame's texture in a surface, runs fn on its canvas
// and flushes the surface. Nothing is cleared first.
//
// A frame with a missing handle is skipped and WithCanvas returns nil. A
// panic in fn is recovered and returned as an error.
func (b *Bridge) WithCanvas(sd SurfaceData, fn CompositeFunc) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("bridge: composite panicked: %v", r)
			gg2d.Logger().Warn("bridge: composite panicked", "panic", r)
		}
	}()

	f, err := Frame(sd)
	if err != nil {
		gg2d.Logger().Debug("bridge: frame skipped", "err", err)
		return nil
	}
	if b.backend == nil {
		return ErrNoBackend
	}

	ctx, err := b.backend.NewExecutionContext(f.Device, f.Queue)
	if err != nil {
		return fmt.Errorf("bridge: execution context: %w", err)
	}
	defer closeLogged("execution context", ctx)

	rt, err := ctx.WrapRenderTarget(f.Texture, f.NativeWidth, f.NativeHeight)
	if err != nil {
		return fmt.Errorf("bridge: render target: %w", err)
	}
	defer closeLogged("render target", rt)

	s, err := ctx.NewSurface(rt, OriginTopLeft, BGRA8Unorm, SRGB)
	if err != nil {
		return fmt.Errorf("bridge: surface: %w", err)
	}
	defer closeLogged("surface", s)

	if err := fn(s.Canvas(), ctx, f.Scale); err != nil {
		return err
	}
	if err := ctx.FlushAndSubmit(s); err != nil {
		return fmt.Errorf("bridge: flush: %w", err)
	}
	return nil
}

func closeLogged(what string, c interface{ Close() error }) {
	if err := c.Close(); err != nil {
		gg2d.Logger().Warn("bridge: close failed", "resource", what, "err", err)
	}
}
