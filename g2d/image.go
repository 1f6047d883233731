package g2d

import "image"

// ImageOp filters an image before it is drawn.
type ImageOp interface {
	Filter(src image.Image) image.Image
}

// ImageOpFunc adapts a function to ImageOp.
type ImageOpFunc func(src image.Image) image.Image

// Filter calls f(src).
func (f ImageOpFunc) Filter(src image.Image) image.Image { return f(src) }
