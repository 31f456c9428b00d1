package pattern

import (
	"patternforge/internal/colorize"
	"patternforge/internal/field"
	"patternforge/internal/raster"
)

// RenderFieldGrid evaluates a stateless scalar field at every cell
// center and maps the value through glyph selection and the color
// model. Cells whose adjusted value rounds to background stay empty.
func RenderFieldGrid(g *raster.CellGrid, fn field.Func, fr Frame, p Params) {
	g.Clear()
	if fn == nil {
		return
	}

	set := raster.GlyphSet(p.GlyphSet)
	fp := p.FieldParams()
	opt := p.ColorOptions()

	for row := 0; row < g.Rows; row++ {
		v := (float64(row) + 0.5) / float64(g.Rows)
		for col := 0; col < g.Cols; col++ {
			u := (float64(col) + 0.5) / float64(g.Cols)
			val := raster.Adjust(fn(u, v, fr.Elapsed, fp), p.Contrast, p.Brightness)
			r := raster.Glyph(set, val)
			if r == ' ' {
				continue
			}
			opt.CellX, opt.CellY = col, row
			g.Set(col, row, r, colorize.Map(val, p.ColorMode, opt))
		}
	}
}
