// Package canvas defines the drawing surface the gg2d adapter renders into
// and provides two implementations on top of the gg engine: Raster, which
// rasterizes immediately into a gg.Pixmap, and Recorder, which captures a
// replayable Picture through gg/recording.
//
// A Canvas keeps a save stack of (matrix, clip) pairs. Save returns the
// stack depth before the save, and RestoreToCount rewinds to such a depth,
// so a caller can hold a checkpoint and return to it any number of times.
//
// Paths handed to ClipPath and the Draw methods are in the coordinate space
// of the current matrix. Stroke widths and dash lengths scale with it.
package canvas

import (
	"errors"
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Errors returned by canvas implementations.
var (
	// ErrInvalidSize is returned when a canvas is created with a
	// non-positive width or height.
	ErrInvalidSize = errors.New("canvas: width and height must be positive")

	// ErrNilTarget is returned when playback has no canvas to draw into.
	ErrNilTarget = errors.New("canvas: nil playback target")

	// ErrPictureConsumed is returned when a picture is played back after it
	// has been released.
	ErrPictureConsumed = errors.New("canvas: picture already consumed")
)

// Canvas is a 2D drawing surface with a matrix and clip save stack.
type Canvas interface {
	// Width returns the canvas width in device pixels.
	Width() int
	// Height returns the canvas height in device pixels.
	Height() int

	// Save pushes the matrix and clip and returns the save count before
	// the push.
	Save() int
	// Restore pops one level. It does nothing at the bottom of the stack.
	Restore()
	// RestoreToCount pops until SaveCount equals count. Counts below one
	// are treated as one.
	RestoreToCount(count int)
	// SaveCount returns the current depth. A new canvas has a count of one.
	SaveCount() int

	// SetMatrix replaces the current matrix.
	SetMatrix(m gg.Matrix)
	// Matrix returns the current matrix.
	Matrix() gg.Matrix

	// ClipPath intersects the clip with p. The clip lasts until the save
	// level it was set at is restored.
	ClipPath(p *gg.Path, rule gg.FillRule)

	// DrawPath fills or strokes p according to paint.Style.
	DrawPath(p *gg.Path, paint *Paint)
	DrawRect(x, y, w, h float64, paint *Paint)
	// DrawOval draws the ellipse inscribed in the rect.
	DrawOval(x, y, w, h float64, paint *Paint)
	// DrawLine always strokes, whatever paint.Style says.
	DrawLine(x1, y1, x2, y2 float64, paint *Paint)
	// DrawImageRect draws the src part of img scaled into the dst rect.
	// The paint contributes alpha, blend mode and interpolation only.
	DrawImageRect(img *image.RGBA, src image.Rectangle, dst gg.Rect, paint *Paint)
	// DrawString fills the outlines of s with its baseline origin at (x, y).
	DrawString(s string, x, y float64, face text.Face, paint *Paint)

	// Clear sets every pixel to c, ignoring matrix and clip.
	Clear(c gg.RGBA)
}

func rectPath(x, y, w, h float64) *gg.Path {
	p := gg.NewPath()
	p.Rectangle(x, y, w, h)
	return p
}

func ovalPath(x, y, w, h float64) *gg.Path {
	p := gg.NewPath()
	p.Ellipse(x+w/2, y+h/2, w/2, h/2)
	return p
}

func linePath(x1, y1, x2, y2 float64) *gg.Path {
	p := gg.NewPath()
	p.MoveTo(x1, y1)
	p.LineTo(x2, y2)
	return p
}
