package gg2d

import (
	"math"

	"github.com/gogpu/gg2d/canvas"
	"github.com/gogpu/gg2d/geom"
)

// Draw strokes s with the current stroke and paint. Lines, rectangles and
// ellipses go straight to the canvas primitives; rectangles and ellipses
// with a negative size draw nothing.
func (g *Graphics) Draw(s geom.Shape) error {
	g.backend.Style = canvas.StyleStroke
	switch v := s.(type) {
	case nil:
	case geom.Line:
		g.canvas.DrawLine(v.X1, v.Y1, v.X2, v.Y2, g.backend)
	case geom.Rect:
		if v.W < 0 || v.H < 0 {
			return nil
		}
		g.canvas.DrawRect(v.X, v.Y, v.W, v.H, g.backend)
	case geom.Ellipse:
		if v.W < 0 || v.H < 0 {
			return nil
		}
		g.canvas.DrawOval(v.X, v.Y, v.W, v.H, g.backend)
	default:
		p, err := TranslateShape(s)
		if err != nil {
			return err
		}
		g.canvas.DrawPath(p, g.backend)
	}
	return nil
}

// Fill fills s with the current paint using the shape's winding rule.
// Rectangles and ellipses without area draw nothing.
func (g *Graphics) Fill(s geom.Shape) error {
	g.backend.Style = canvas.StyleFill
	g.backend.FillRule = fillRule(geom.WindNonZero)
	switch v := s.(type) {
	case nil:
	case geom.Rect:
		if v.W <= 0 || v.H <= 0 {
			return nil
		}
		g.canvas.DrawRect(v.X, v.Y, v.W, v.H, g.backend)
	case geom.Ellipse:
		if v.W <= 0 || v.H <= 0 {
			return nil
		}
		g.canvas.DrawOval(v.X, v.Y, v.W, v.H, g.backend)
	default:
		p, err := TranslateShape(s)
		if err != nil {
			return err
		}
		g.backend.FillRule = fillRule(s.WindingRule())
		g.canvas.DrawPath(p, g.backend)
	}
	return nil
}

// Hit reports whether rect, in device space, touches the interior of s or,
// when onStroke is set, the band the current stroke would cover along its
// outline. Joins and caps are not modelled.
func (g *Graphics) Hit(rect geom.Rect, s geom.Shape, onStroke bool) bool {
	if s == nil || rect.Empty() {
		return false
	}
	if onStroke {
		half := max(g.stroke.Width, MinLineWidth) * g.transform.Matrix().ScaleFactor() / 2
		grown := geom.Rect{X: rect.X - half, Y: rect.Y - half, W: rect.W + 2*half, H: rect.H + 2*half}
		for _, poly := range geom.Flatten(s, &g.transform, geom.DefaultTolerance) {
			for i := range poly {
				if segmentHitsRect(poly[i], poly[(i+1)%len(poly)], grown) {
					return true
				}
			}
		}
		return false
	}
	dev := geom.Transform(s, g.transform)
	if !rect.Intersects(dev.Bounds()) {
		return false
	}
	switch v := geom.Intersect(rect, dev).(type) {
	case geom.Rect:
		return !v.Empty()
	case *geom.Area:
		return !v.Empty()
	default:
		return true
	}
}

// segmentHitsRect clips the segment a-b against r (Liang-Barsky).
func segmentHitsRect(a, b geom.Point, r geom.Rect) bool {
	t0, t1 := 0.0, 1.0
	dx, dy := b.X-a.X, b.Y-a.Y
	edges := [4][2]float64{
		{-dx, a.X - r.X},
		{dx, r.MaxX() - a.X},
		{-dy, a.Y - r.Y},
		{dy, r.MaxY() - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if math.Abs(p) < 1e-12 {
			if q < 0 {
				return false
			}
			continue
		}
		t := q / p
		if p < 0 {
			t0 = max(t0, t)
		} else {
			t1 = min(t1, t)
		}
		if t0 > t1 {
			return false
		}
	}
	return true
}

func (g *Graphics) DrawLine(x1, y1, x2, y2 float64) {
	_ = g.Draw(geom.Line{X1: x1, Y1: y1, X2: x2, Y2: y2})
}

func (g *Graphics) DrawRect(x, y, w, h float64) {
	_ = g.Draw(geom.NewRect(x, y, w, h))
}

func (g *Graphics) FillRect(x, y, w, h float64) {
	_ = g.Fill(geom.NewRect(x, y, w, h))
}

// ClearRect replaces the pixels of the rect with the background color. It
// does nothing when the background is nil.
func (g *Graphics) ClearRect(x, y, w, h float64) {
	if g.background == nil || w <= 0 || h <= 0 {
		return
	}
	p := g.backend.Clone()
	p.Style = canvas.StyleFill
	p.Shader = g.shaders.Color(toRGBA(*g.background))
	p.Alpha = 1
	p.Blend = canvas.BlendSrc
	g.canvas.DrawRect(x, y, w, h, p)
}

func (g *Graphics) DrawRoundRect(x, y, w, h, arcW, arcH float64) {
	_ = g.Draw(geom.RoundRect{X: x, Y: y, W: w, H: h, ArcW: arcW, ArcH: arcH})
}

func (g *Graphics) FillRoundRect(x, y, w, h, arcW, arcH float64) {
	_ = g.Fill(geom.RoundRect{X: x, Y: y, W: w, H: h, ArcW: arcW, ArcH: arcH})
}

func (g *Graphics) DrawOval(x, y, w, h float64) {
	_ = g.Draw(geom.Ellipse{X: x, Y: y, W: w, H: h})
}

func (g *Graphics) FillOval(x, y, w, h float64) {
	_ = g.Fill(geom.Ellipse{X: x, Y: y, W: w, H: h})
}

func (g *Graphics) DrawArc(x, y, w, h, start, extent float64) {
	_ = g.Draw(geom.Arc{X: x, Y: y, W: w, H: h, Start: start, Extent: extent, Type: geom.ArcOpen})
}

func (g *Graphics) FillArc(x, y, w, h, start, extent float64) {
	_ = g.Fill(geom.Arc{X: x, Y: y, W: w, H: h, Start: start, Extent: extent, Type: geom.ArcPie})
}

func (g *Graphics) DrawPolyline(xs, ys []float64, n int) {
	_ = g.Draw(geom.Polyline(xs, ys, n))
}

func (g *Graphics) DrawPolygon(xs, ys []float64, n int) {
	_ = g.Draw(geom.NewPolygon(xs, ys, n))
}

func (g *Graphics) FillPolygon(xs, ys []float64, n int) {
	_ = g.Fill(geom.NewPolygon(xs, ys, n))
}
