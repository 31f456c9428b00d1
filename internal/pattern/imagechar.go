package pattern

import (
	"math"

	"patternforge/internal/colorize"
	"patternforge/internal/raster"
	"patternforge/internal/source"
)

// Ordered 4×4 Bayer matrix, normalized thresholds in (0,1).
var bayer4 = [16]float64{
	0, 8, 2, 10,
	12, 4, 14, 6,
	3, 11, 1, 9,
	15, 7, 13, 5,
}

// RenderImage maps a loaded picture onto the character grid using one
// of three mutually exclusive samplers over the brightness map: raw
// brightness, Sobel edge magnitude, or ordered 4×4 dithering. Without
// a picture it renders a placeholder frame, never an error.
func RenderImage(g *raster.CellGrid, src *source.Image, fr Frame, p Params) {
	g.Clear()
	if src == nil {
		renderPlaceholder(g, fr, p)
		return
	}

	set := raster.GlyphSet(p.GlyphSet)
	opt := p.ColorOptions()

	for row := 0; row < g.Rows; row++ {
		v := (float64(row) + 0.5) / float64(g.Rows)
		for col := 0; col < g.Cols; col++ {
			u := (float64(col) + 0.5) / float64(g.Cols)

			var val float64
			switch p.RenderMode {
			case "edges":
				val = sobel(src, u, v)
			case "dither":
				b := src.At(u, v)
				threshold := (bayer4[(row%4)*4+col%4] + 0.5) / 16
				if b > threshold {
					val = 1
				}
			default:
				val = src.At(u, v)
			}

			val = raster.Adjust(val, p.Contrast, p.Brightness)
			r := raster.Glyph(set, val)
			if r == ' ' {
				continue
			}
			opt.CellX, opt.CellY = col, row
			g.Set(col, row, r, colorize.Map(val, p.ColorMode, opt))
		}
	}
}

// sobel samples the 3×3 neighborhood one cell apart and returns the
// gradient magnitude, clamped to [0,1].
func sobel(src *source.Image, u, v float64) float64 {
	du := 1.0 / float64(src.W)
	dv := 1.0 / float64(src.H)

	tl := src.At(u-du, v-dv)
	t := src.At(u, v-dv)
	tr := src.At(u+du, v-dv)
	l := src.At(u-du, v)
	r := src.At(u+du, v)
	bl := src.At(u-du, v+dv)
	b := src.At(u, v+dv)
	br := src.At(u+du, v+dv)

	gx := (tr + 2*r + br) - (tl + 2*l + bl)
	gy := (bl + 2*b + br) - (tl + 2*t + tr)
	m := math.Hypot(gx, gy)
	if m > 1 {
		m = 1
	}
	return m
}

// renderPlaceholder shows a slow breathing frame border while no image
// is loaded.
func renderPlaceholder(g *raster.CellGrid, fr Frame, p Params) {
	pulse := (math.Sin(fr.Elapsed*2) + 1) / 2
	opt := p.ColorOptions()
	c := colorize.Map(0.3+0.4*pulse, p.ColorMode, opt)
	for col := 0; col < g.Cols; col++ {
		g.Set(col, 0, '-', c)
		g.Set(col, g.Rows-1, '-', c)
	}
	for row := 0; row < g.Rows; row++ {
		g.Set(0, row, '|', c)
		g.Set(g.Cols-1, row, '|', c)
	}
}
