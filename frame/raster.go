// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frame

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/gg2d"
	"github.com/gogpu/gg2d/canvas"
)

// RasterStrategy draws frames into a software raster.
//
// With Reuse set the raster, and so its pixels, carries over to the next
// frame while the size stays the same. Otherwise every frame starts from a
// transparent raster.
type RasterStrategy struct {
	Reuse bool

	raster *canvas.Raster
}

var _ Strategy = (*RasterStrategy)(nil)

func (s *RasterStrategy) Begin(width, height int) (canvas.Canvas, error) {
	if s.raster != nil {
		if s.Reuse && s.raster.Width() == width && s.raster.Height() == height {
			return s.raster, nil
		}
		s.release()
	}
	r, err := canvas.NewRaster(width, height)
	if err != nil {
		return nil, err
	}
	gg2d.Logger().Debug("frame: raster allocated", "width", width, "height", height)
	s.raster = r
	return r, nil
}

// Composite draws a snapshot of the raster at the origin of dst, in device
// space.
func (s *RasterStrategy) Composite(dst canvas.Canvas) error {
	if s.raster == nil {
		return nil
	}
	if dst == nil {
		return canvas.ErrNilTarget
	}
	img := s.raster.Snapshot()
	b := img.Bounds()
	p := canvas.NewPaint()
	p.Interpolation = gg.InterpNearest

	base := dst.Save()
	dst.SetMatrix(gg.Identity())
	dst.DrawImageRect(img, b, gg.NewRect(gg.Pt(0, 0), gg.Pt(float64(b.Dx()), float64(b.Dy()))), p)
	dst.RestoreToCount(base)
	return nil
}

// Raster returns the current raster, or nil before the first frame.
func (s *RasterStrategy) Raster() *canvas.Raster { return s.raster }

// Close releases the raster.
func (s *RasterStrategy) Close() error {
	s.release()
	return nil
}

func (s *RasterStrategy) release() {
	if s.raster == nil {
		return
	}
	if err := s.raster.Close(); err != nil {
		gg2d.Logger().Warn("frame: raster close failed", "err", err)
	}
	s.raster = nil
}
