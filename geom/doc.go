// Package geom provides the user-space geometry of the legacy 2D contract:
// affine transforms, the standard shape kinds, a segment iterator shared by
// all of them, and planar region intersection used by clipping.
//
// Coordinates follow the screen convention: the y axis points down and
// angles passed to arcs are measured in degrees, counter-clockwise on screen
// starting at three o'clock.
//
// Every shape exposes its outline as a sequence of segments:
//
//	for seg := range shape.Segments(nil) {
//	    switch seg.Kind {
//	    case geom.SegMoveTo:
//	        // seg.Points[0]
//	    }
//	}
//
// Passing a non-nil *Affine to Segments yields the transformed outline
// without allocating a new shape.
package geom
