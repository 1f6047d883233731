// Package gg2d implements the legacy 2D graphics contract of package g2d on
// top of the gg vector engine.
//
// A Graphics keeps the legacy drawing state (transform, clip, paint,
// stroke, font, composite and hints) and translates every call into
// canvas.Canvas operations:
//
//	r, _ := canvas.NewRaster(640, 480)
//	g, err := gg2d.New(r, gg2d.WithColor(g2d.Red))
//	if err != nil {
//		return err
//	}
//	g.FillOval(10, 10, 100, 100)
//	g.Dispose()
//
// Shapes go through TranslateShape, paints through MapPaint, strokes
// through MapStroke, and fonts through MapFamily and a TypefaceCache.
//
// The frame package creates one Graphics per window frame and composites
// it onto the host surface through the bridge package when it is
// disposed.
//
// # Logging
//
// Nothing is logged by default. SetLogger installs an slog.Logger that
// gg2d, its sub-packages and the gg engine share.
package gg2d
