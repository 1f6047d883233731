// Package g2d defines the legacy imperative 2D graphics contract: the
// Graphics2D interface and the value types it exchanges (colors, paints,
// strokes, fonts, composites, rendering hints, image operations, font
// metrics and glyph vectors).
//
// The package holds no rendering code. Implementations live elsewhere; the
// gg2d package provides one on top of the gg vector engine.
//
// # Coordinates
//
// All shapes and positions passed to a Graphics2D are in user space. The
// current transform maps user space to device space (surface pixels).
// Positive angles rotate counterclockwise on screen, following the legacy API.
package g2d
