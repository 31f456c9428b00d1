package pattern

import (
	"math/rand"

	"patternforge/internal/colorize"
	"patternforge/internal/raster"
)

// Rain integrates drop positions and velocities every frame. Positions
// are in cell units and the state is bound to one grid shape.
type Rain struct {
	cols, rows int
	x, y, vy   []float64
	rng        *rand.Rand
}

func NewRain(cols, rows int, seed int64) *Rain {
	n := cols
	if n < 8 {
		n = 8
	}
	r := &Rain{
		cols: cols,
		rows: rows,
		x:    make([]float64, n),
		y:    make([]float64, n),
		vy:   make([]float64, n),
		rng:  rand.New(rand.NewSource(seed)),
	}
	for i := 0; i < n; i++ {
		r.resetDrop(i, true)
	}
	return r
}

func (r *Rain) Matches(cols, rows int) bool {
	return r.cols == cols && r.rows == rows
}

func (r *Rain) resetDrop(i int, anywhere bool) {
	r.x[i] = r.rng.Float64() * float64(r.cols)
	if anywhere {
		r.y[i] = r.rng.Float64() * float64(r.rows)
	} else {
		r.y[i] = -r.rng.Float64() * 3
	}
	r.vy[i] = 0.4 + 0.6*r.rng.Float64()
}

func (r *Rain) Step(g *raster.CellGrid, fr Frame, p Params) {
	g.Clear()
	opt := p.ColorOptions()
	for i := range r.x {
		r.y[i] += r.vy[i] * p.Speed
		if int(r.y[i]) >= r.rows {
			r.resetDrop(i, false)
		}
		col := int(r.x[i])
		row := int(r.y[i])
		v := r.vy[i]
		opt.CellX, opt.CellY = col, row
		g.Set(col, row, '|', colorize.Map(v, p.ColorMode, opt))
		opt.CellY = row - 1
		g.Set(col, row-1, '.', colorize.Map(v*0.5, p.ColorMode, opt))
	}
}

// Starfield keeps star positions with depth; stars rush toward the
// viewer and respawn far away once they pass or leave the frame.
type Starfield struct {
	cols, rows int
	x, y, z    []float64
	rng        *rand.Rand
}

func NewStarfield(cols, rows int, seed int64) *Starfield {
	n := cols * rows / 12
	if n < 16 {
		n = 16
	}
	s := &Starfield{
		cols: cols,
		rows: rows,
		x:    make([]float64, n),
		y:    make([]float64, n),
		z:    make([]float64, n),
		rng:  rand.New(rand.NewSource(seed)),
	}
	for i := 0; i < n; i++ {
		s.resetStar(i)
		s.z[i] = 0.1 + s.rng.Float64()*0.9
	}
	return s
}

func (s *Starfield) Matches(cols, rows int) bool {
	return s.cols == cols && s.rows == rows
}

func (s *Starfield) resetStar(i int) {
	s.x[i] = s.rng.Float64()*2 - 1
	s.y[i] = s.rng.Float64()*2 - 1
	s.z[i] = 1
}

func (s *Starfield) Step(g *raster.CellGrid, fr Frame, p Params) {
	g.Clear()
	set := raster.GlyphSet(p.GlyphSet)
	opt := p.ColorOptions()
	for i := range s.x {
		s.z[i] -= 0.008 * p.Speed
		if s.z[i] < 0.05 {
			s.resetStar(i)
		}
		// Perspective divide toward the grid center.
		col := g.Cols/2 + int(s.x[i]/s.z[i]*float64(g.Cols)/3)
		row := g.Rows/2 + int(s.y[i]/s.z[i]*float64(g.Rows)/3)
		if col < 0 || col >= g.Cols || row < 0 || row >= g.Rows {
			s.resetStar(i)
			continue
		}
		v := 1 - s.z[i]
		opt.CellX, opt.CellY = col, row
		g.Set(col, row, raster.Glyph(set, v), colorize.Map(v, p.ColorMode, opt))
	}
}

// Fire holds the classic rising-intensity buffer: the bottom row is
// re-seeded every frame and heat diffuses upward with decay.
type Fire struct {
	cols, rows int
	heat       []float64
	rng        *rand.Rand
}

func NewFire(cols, rows int, seed int64) *Fire {
	return &Fire{
		cols: cols,
		rows: rows,
		heat: make([]float64, cols*rows),
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (f *Fire) Matches(cols, rows int) bool {
	return f.cols == cols && f.rows == rows
}

func (f *Fire) Step(g *raster.CellGrid, fr Frame, p Params) {
	g.Clear()

	// Seed the bottom row.
	base := (f.rows - 1) * f.cols
	for col := 0; col < f.cols; col++ {
		f.heat[base+col] = 0.6 + 0.4*f.rng.Float64()
	}

	// Diffuse upward: each cell averages the three cells below it,
	// losing a little heat each step.
	decay := 0.04 / nonzeroF(p.Speed, 1)
	for row := 0; row < f.rows-1; row++ {
		for col := 0; col < f.cols; col++ {
			sum := 0.0
			n := 0
			for d := -1; d <= 1; d++ {
				sc := col + d
				if sc < 0 || sc >= f.cols {
					continue
				}
				sum += f.heat[(row+1)*f.cols+sc]
				n++
			}
			h := sum/float64(n) - decay
			if h < 0 {
				h = 0
			}
			f.heat[row*f.cols+col] = h
		}
	}

	set := raster.GlyphSet(p.GlyphSet)
	for row := 0; row < f.rows; row++ {
		for col := 0; col < f.cols; col++ {
			v := f.heat[row*f.cols+col]
			if v < 0.05 {
				continue
			}
			g.Set(col, row, raster.Glyph(set, v), fireColor(v))
		}
	}
}

// fireColor ramps black→red→orange→yellow→white with intensity.
func fireColor(v float64) colorize.RGB {
	switch {
	case v > 0.9:
		return colorize.RGB{R: 255, G: 255, B: 220}
	case v > 0.7:
		return colorize.RGB{R: 255, G: 200, B: 40}
	case v > 0.45:
		return colorize.RGB{R: 255, G: 120, B: 0}
	default:
		return colorize.RGB{R: uint8(180 + 75*v), G: uint8(60 * v), B: 0}
	}
}

func nonzeroF(v, def float64) float64 {
	if v <= 0 {
		return def
	}
	return v
}
