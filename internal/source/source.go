package source

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "github.com/ftrvxmtrx/tga"
)

// Image is a decoded input picture with its brightness map precomputed,
// ready for the image-to-character samplers.
type Image struct {
	W, H       int
	Brightness []float64 // per pixel, [0,1], row-major
}

// Load reads and decodes an image file (png, jpeg or tga) and builds
// the normalized brightness map.
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("source: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("source: decode %s: %w", path, err)
	}
	return FromImage(img), nil
}

// FromImage builds the brightness map from an already decoded image.
func FromImage(img image.Image) *Image {
	b := img.Bounds()
	n := toNRGBA(img)
	w, h := b.Dx(), b.Dy()

	src := &Image{
		W:          w,
		H:          h,
		Brightness: make([]float64, w*h),
	}
	for y := 0; y < h; y++ {
		off := y * n.Stride
		for x := 0; x < w; x++ {
			i := off + x*4
			// Rec. 601 luma.
			lum := 0.299*float64(n.Pix[i]) + 0.587*float64(n.Pix[i+1]) + 0.114*float64(n.Pix[i+2])
			src.Brightness[y*w+x] = lum / 255 * float64(n.Pix[i+3]) / 255
		}
	}
	return src
}

// At samples the brightness map at normalized coordinates, clamping at
// the edges.
func (s *Image) At(u, v float64) float64 {
	x := int(u * float64(s.W))
	y := int(v * float64(s.H))
	if x < 0 {
		x = 0
	}
	if x >= s.W {
		x = s.W - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= s.H {
		y = s.H - 1
	}
	return s.Brightness[y*s.W+x]
}

func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	// Opaque formats decode with zeroed alpha through some paths.
	switch src.(type) {
	case *image.YCbCr, *image.Gray:
		for i := 3; i < len(dst.Pix); i += 4 {
			dst.Pix[i] = 255
		}
	}
	return dst
}
