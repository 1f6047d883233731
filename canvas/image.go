package canvas

import (
	"image"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
)

// NormalizeImage returns img as a premultiplied *image.RGBA whose bounds
// start at the origin. An *image.RGBA that already qualifies is returned
// as is; anything else is copied.
func NormalizeImage(img image.Image) *image.RGBA {
	if img == nil {
		return nil
	}
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Copy(dst, image.Point{}, img, b, draw.Src, nil)
	return dst
}

// CropImage copies the r part of img into a new image at the origin.
func CropImage(img *image.RGBA, r image.Rectangle) *image.RGBA {
	r = r.Intersect(img.Bounds())
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Copy(dst, image.Point{}, img, r, draw.Src, nil)
	return dst
}

// ResampleImage scales the src part of img to w by h pixels.
func ResampleImage(img *image.RGBA, src image.Rectangle, w, h int, interp gg.InterpolationMode) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	var s draw.Scaler = draw.ApproxBiLinear
	switch interp {
	case gg.InterpNearest:
		s = draw.NearestNeighbor
	case gg.InterpBicubic:
		s = draw.CatmullRom
	}
	s.Scale(dst, dst.Bounds(), img, src, draw.Src, nil)
	return dst
}

// imageBuf wraps premultiplied pixels for gg's image pipeline.
func imageBuf(img *image.RGBA) (*gg.ImageBuf, error) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	buf, err := gg.NewImageBuf(w, h, gg.FormatRGBAPremul)
	if err != nil {
		return nil, err
	}
	for y := range h {
		start := (y+img.Rect.Min.Y)*img.Stride + img.Rect.Min.X*4
		copy(buf.RowBytes(y), img.Pix[start:start+w*4])
	}
	return buf, nil
}
