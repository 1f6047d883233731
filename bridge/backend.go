// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package bridge

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/gg2d/canvas"
)

// Origin is the corner a surface's first row starts at.
type Origin uint8

const (
	OriginTopLeft Origin = iota
	OriginBottomLeft
)

// ColorSpace is the color space surface pixels are encoded in.
type ColorSpace uint8

const (
	SRGB ColorSpace = iota
	LinearSRGB
)

// BGRA8Unorm is the pixel format frames are composited in.
const BGRA8Unorm = gputypes.TextureFormatBGRA8Unorm

// Backend turns native device handles into drawable surfaces.
type Backend interface {
	NewExecutionContext(device, queue uintptr) (ExecutionContext, error)
}

// ExecutionContext owns the GPU work of one frame.
type ExecutionContext interface {
	// WrapRenderTarget wraps a native texture of the given physical size.
	WrapRenderTarget(texture uintptr, width, height int) (RenderTarget, error)
	NewSurface(rt RenderTarget, origin Origin, format gputypes.TextureFormat, cs ColorSpace) (Surface, error)
	// FlushAndSubmit makes everything drawn on s visible in its texture.
	FlushAndSubmit(s Surface) error
	Close() error
}

// RenderTarget is a wrapped native texture.
type RenderTarget interface {
	Width() int
	Height() int
	Close() error
}

// Surface is a canvas drawing into a render target.
type Surface interface {
	Canvas() canvas.Canvas
	Close() error
}

// Backends holds the registered backends. WithCanvas uses the best one.
var Backends = gpucontext.NewRegistry[Backend](gpucontext.WithPriority(DeviceBackendName))
