package export

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample reduces a supersampled frame to its target size with
// CatmullRom filtering. Frames are fully opaque, so no premultiply
// round trip is needed.
func Downsample(img *image.NRGBA, w, h int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= w && b.Dy() <= h {
		return img
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
