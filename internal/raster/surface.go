package raster

import (
	"image"

	"patternforge/internal/colorize"
)

// Surface is the writable raster target: a flat RGBA buffer exposed to
// the renderers as nothing but pixel writes. The backing allocation is
// reused across frames and replaced only on resize.
type Surface struct {
	Width  int
	Height int
	Pix    []uint8 // RGBA interleaved, len = W*H*4
}

// NewSurface allocates an opaque black surface.
func NewSurface(w, h int) *Surface {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	s := &Surface{
		Width:  w,
		Height: h,
		Pix:    make([]uint8, w*h*4),
	}
	s.Clear(colorize.RGB{})
	return s
}

// Clear fills every pixel with c at full opacity.
func (s *Surface) Clear(c colorize.RGB) {
	for i := 0; i < len(s.Pix); i += 4 {
		s.Pix[i] = c.R
		s.Pix[i+1] = c.G
		s.Pix[i+2] = c.B
		s.Pix[i+3] = 255
	}
}

// Set writes one pixel. Out-of-bounds coordinates are ignored.
func (s *Surface) Set(x, y int, c colorize.RGB) {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return
	}
	i := (y*s.Width + x) * 4
	s.Pix[i] = c.R
	s.Pix[i+1] = c.G
	s.Pix[i+2] = c.B
	s.Pix[i+3] = 255
}

// At reads one pixel back. Out-of-bounds reads return black.
func (s *Surface) At(x, y int) colorize.RGB {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return colorize.RGB{}
	}
	i := (y*s.Width + x) * 4
	return colorize.RGB{R: s.Pix[i], G: s.Pix[i+1], B: s.Pix[i+2]}
}

// Image wraps the pixel buffer as an NRGBA image without copying, so a
// finished frame can be sampled or encoded by the caller. The reference
// stays valid until the next resize.
func (s *Surface) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    s.Pix,
		Stride: s.Width * 4,
		Rect:   image.Rect(0, 0, s.Width, s.Height),
	}
}
