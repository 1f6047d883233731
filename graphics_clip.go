package gg2d

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/gg2d/geom"
)

// SetClip replaces the clip with s, given in user space. A nil shape
// removes the clip.
func (g *Graphics) SetClip(s geom.Shape) {
	g.canvas.RestoreToCount(g.restoreCount)
	g.restoreCount = g.canvas.Save()
	// the rewind may also have reset the matrix
	g.syncMatrix()

	if s == nil {
		g.clip = nil
		return
	}
	var dev geom.Shape
	if g.transform.IsIdentity() {
		dev = cloneShape(s)
	} else {
		dev = geom.Transform(s, g.transform)
	}
	if s.WindingRule() == geom.WindEvenOdd {
		dev = geom.NewArea(dev)
	}
	g.clip = dev

	p, err := TranslateShape(dev)
	if err != nil {
		Logger().Warn("gg2d: clip shape dropped", "err", err)
		return
	}
	g.canvas.SetMatrix(gg.Identity())
	g.canvas.ClipPath(p, gg.FillRuleNonZero)
	g.syncMatrix()
}

// Clip intersects the clip with s, given in user space. A line clips to
// its bounding box.
func (g *Graphics) Clip(s geom.Shape) {
	if s == nil {
		return
	}
	if l, ok := s.(geom.Line); ok {
		s = l.Bounds()
	}
	if g.clip == nil {
		g.SetClip(s)
		return
	}
	user := g.userClip()
	if user == nil {
		Logger().Debug("gg2d: current clip not decodable, replacing it", "err", ErrNonInvertibleTransform)
		g.SetClip(s)
		return
	}
	if !s.Bounds().Intersects(user.Bounds()) {
		g.SetClip(geom.Rect{})
		return
	}
	next := geom.Intersect(s, user)
	if a, ok := next.(*geom.Area); ok {
		if a.Empty() {
			next = geom.Rect{}
		} else if r, ok := a.Rect(); ok {
			next = r
		}
	}
	g.SetClip(next)
}

func (g *Graphics) ClipRect(x, y, w, h float64) {
	g.Clip(geom.NewRect(x, y, w, h))
}

func (g *Graphics) SetClipRect(x, y, w, h float64) {
	g.SetClip(geom.NewRect(x, y, w, h))
}

// GetClip returns the clip in user space. It returns nil when there is no
// clip or the transform cannot be inverted.
func (g *Graphics) GetClip() geom.Shape {
	return cloneShape(g.userClip())
}

// GetClipBounds returns the bounding box of the clip in user space. The
// second result is false when GetClip would return nil.
func (g *Graphics) GetClipBounds() (geom.Rect, bool) {
	user := g.userClip()
	if user == nil {
		return geom.Rect{}, false
	}
	return user.Bounds(), true
}

// userClip maps the device clip back through the inverse transform. The
// result may share storage with the stored clip.
func (g *Graphics) userClip() geom.Shape {
	if g.clip == nil {
		return nil
	}
	if g.transform.IsIdentity() {
		return g.clip
	}
	inv, err := g.transform.Inverse()
	if err != nil {
		return nil
	}
	return geom.Transform(g.clip, inv)
}

// cloneShape copies shapes that have mutable storage.
func cloneShape(s geom.Shape) geom.Shape {
	switch v := s.(type) {
	case *geom.Path:
		return v.Clone()
	case *geom.Area:
		return v.Clone()
	default:
		return s
	}
}
