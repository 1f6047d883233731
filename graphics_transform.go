package gg2d

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/gg2d/geom"
)

func (g *Graphics) Translate(tx, ty float64) {
	g.transform = g.transform.Translate(tx, ty)
	g.syncMatrix()
}

// Rotate rotates by theta radians.
func (g *Graphics) Rotate(theta float64) {
	g.transform = g.transform.Rotate(theta)
	g.syncMatrix()
}

// RotateAbout rotates by theta radians around (x, y).
func (g *Graphics) RotateAbout(theta, x, y float64) {
	g.transform = g.transform.RotateAbout(theta, x, y)
	g.syncMatrix()
}

func (g *Graphics) Scale(sx, sy float64) {
	g.transform = g.transform.Scale(sx, sy)
	g.syncMatrix()
}

func (g *Graphics) Shear(shx, shy float64) {
	g.transform = g.transform.Shear(shx, shy)
	g.syncMatrix()
}

// Transform concatenates t: t applies to coordinates before the current
// transform.
func (g *Graphics) Transform(t geom.Affine) {
	g.transform = g.transform.Concat(t)
	g.syncMatrix()
}

func (g *Graphics) SetTransform(t geom.Affine) {
	g.transform = t
	g.syncMatrix()
}

func (g *Graphics) GetTransform() geom.Affine { return g.transform }

// syncMatrix copies the transform into the canvas matrix.
func (g *Graphics) syncMatrix() {
	g.canvas.SetMatrix(g.transform.Matrix())
}

func toPoint(p geom.Point) gg.Point {
	return gg.Pt(p.X, p.Y)
}
