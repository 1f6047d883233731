// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package frame runs the per-frame lifecycle of a legacy graphics context
// on a host window: the context draws offscreen, and disposing it
// composites the result onto the window's native surface.
package frame

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg2d/canvas"
)

// ErrNotRecording is returned when a picture is composited before any
// recording was started.
var ErrNotRecording = errors.New("frame: no recording in progress")

// Strategy accumulates the drawing of one frame offscreen.
type Strategy interface {
	// Begin returns the canvas the frame draws into.
	Begin(width, height int) (canvas.Canvas, error)
	// Composite draws the accumulated frame into dst at the origin
	// without clearing dst.
	Composite(dst canvas.Canvas) error
}

// StrategyKind selects a built-in Strategy.
type StrategyKind int

const (
	// StrategyRaster draws into a raster kept across frames.
	StrategyRaster StrategyKind = iota
	// StrategyPicture records each frame and replays it onto the surface.
	StrategyPicture
)

func (k StrategyKind) String() string {
	switch k {
	case StrategyRaster:
		return "raster"
	case StrategyPicture:
		return "picture"
	default:
		return fmt.Sprintf("StrategyKind(%d)", int(k))
	}
}

func (k StrategyKind) new() Strategy {
	if k == StrategyPicture {
		return &PictureStrategy{}
	}
	return &RasterStrategy{Reuse: true}
}
