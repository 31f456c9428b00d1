package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DrawGrid rasterizes a character grid onto a surface using the fixed
// 7×13 bitmap face, one cell per glyph. Used by the offline renderer;
// the live viewer hands cells to the terminal instead.
func DrawGrid(s *Surface, g *CellGrid, cellW, cellH int) {
	if cellW < 1 {
		cellW = basicfont.Face7x13.Advance
	}
	if cellH < 1 {
		cellH = basicfont.Face7x13.Height
	}

	dst := s.Image()
	src := image.NewUniform(color.NRGBA{A: 255})
	d := font.Drawer{
		Dst:  dst,
		Src:  src,
		Face: basicfont.Face7x13,
	}

	ascent := basicfont.Face7x13.Ascent
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			i := row*g.Cols + col
			r := g.Runes[i]
			if r == 0 || r == ' ' {
				continue
			}
			c := g.Color[i]
			src.C = color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
			d.Dot = fixed.P(col*cellW, row*cellH+ascent)
			d.DrawString(string(r))
		}
	}
}
