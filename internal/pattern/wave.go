package pattern

import (
	"patternforge/internal/colorize"
	"patternforge/internal/field"
	"patternforge/internal/raster"
)

// RenderWaveLines draws LineCount horizontal polylines, each displaced
// vertically by the wave field sampled along its row. The classic
// ridge-plot look: later (lower) lines paint over earlier ones.
func RenderWaveLines(s *raster.Surface, fr Frame, p Params) {
	s.Clear(colorize.RGB{})

	n := p.LineCount
	fp := p.FieldParams()
	opt := p.ColorOptions()
	amplitude := float64(s.Height) / float64(n+1) * 2.5

	const stepX = 3

	for i := 0; i < n; i++ {
		v := (float64(i) + 0.5) / float64(n)
		baseY := v * float64(s.Height)
		c := colorize.Map(v, p.ColorMode, opt)

		prevX, prevY := 0, 0
		first := true
		for x := 0; x <= s.Width; x += stepX {
			u := float64(x) / float64(s.Width)
			val := field.Waves(u, v, fr.Elapsed, fp)
			y := int(baseY - val*amplitude)
			if first {
				first = false
			} else {
				s.Line(prevX, prevY, x, y, c)
			}
			prevX, prevY = x, y
		}
	}
}
