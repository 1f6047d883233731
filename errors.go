package gg2d

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg2d/g2d"
	"github.com/gogpu/gg2d/geom"
)

// Sentinel errors. Use errors.Is to test for them; the typed errors below
// wrap them with the offending value.
var (
	// ErrUnsupportedSegment is returned when a shape yields a path segment
	// kind the backend cannot express.
	ErrUnsupportedSegment = errors.New("gg2d: unsupported path segment")

	// ErrUnrecognizedStrokeAttribute is returned for a cap or join code
	// outside the known set.
	ErrUnrecognizedStrokeAttribute = errors.New("gg2d: unrecognized stroke attribute")

	// ErrTypefaceResolution is returned when a font family resolves to no
	// typeface.
	ErrTypefaceResolution = errors.New("gg2d: typeface not found")

	// ErrNonInvertibleTransform is logged when the device-space clip cannot
	// be mapped back to user space.
	ErrNonInvertibleTransform = geom.ErrNonInvertible
)

// SegmentError reports an unsupported segment kind.
type SegmentError struct {
	Kind geom.SegmentKind
}

func (e *SegmentError) Error() string {
	return fmt.Sprintf("gg2d: unsupported path segment %v", e.Kind)
}

func (e *SegmentError) Unwrap() error { return ErrUnsupportedSegment }

// StrokeAttributeError reports an unknown cap or join code.
type StrokeAttributeError struct {
	Attribute string // "cap" or "join"
	Code      int
}

func (e *StrokeAttributeError) Error() string {
	return fmt.Sprintf("gg2d: unrecognized stroke %s code %d", e.Attribute, e.Code)
}

func (e *StrokeAttributeError) Unwrap() error { return ErrUnrecognizedStrokeAttribute }

// TypefaceError reports a family and style with no typeface.
type TypefaceError struct {
	Family string
	Style  g2d.FontStyle
}

func (e *TypefaceError) Error() string {
	return fmt.Sprintf("gg2d: no typeface for %q (%v)", e.Family, e.Style)
}

func (e *TypefaceError) Unwrap() error { return ErrTypefaceResolution }
