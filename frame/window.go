// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frame

import (
	"github.com/gogpu/gg2d"
	"github.com/gogpu/gg2d/bridge"
	"github.com/gogpu/gg2d/g2d"
)

// GraphicsFactory creates the graphics context for a frame.
type GraphicsFactory func(sd bridge.SurfaceData, fg, bg g2d.Color, font g2d.Font) g2d.Graphics2D

// Window is the part of a host window the factory plugs into.
type Window interface {
	SetGraphicsFactory(GraphicsFactory)
	DisableDoubleBuffering()
}

// Install makes f the window's graphics factory. Double buffering is
// turned off, since frames are already composed offscreen.
func Install(w Window, f *Factory) {
	w.SetGraphicsFactory(f.NewGraphics)
	w.DisableDoubleBuffering()
	gg2d.Logger().Info("frame: factory installed")
}
