package pattern

import (
	"math/rand"

	"patternforge/internal/colorize"
	"patternforge/internal/raster"
)

// Cascade keeps the per-column state of the falling-character pattern.
// Positions are in grid-cell units, so the state is only valid for the
// grid it was built for; a resize requires a fresh instance.
type Cascade struct {
	cols, rows int
	pos        []float64 // fractional head row per column
	speed      []float64
	rng        *rand.Rand
}

// NewCascade initializes every column at a random negative position so
// the columns enter the frame staggered.
func NewCascade(cols, rows int, seed int64) *Cascade {
	c := &Cascade{
		cols:  cols,
		rows:  rows,
		pos:   make([]float64, cols),
		speed: make([]float64, cols),
		rng:   rand.New(rand.NewSource(seed)),
	}
	for i := range c.pos {
		c.pos[i] = -c.rng.Float64() * float64(rows)
		c.speed[i] = 0.5 + c.rng.Float64()
	}
	return c
}

// Matches reports whether the state was built for a cols×rows grid.
func (c *Cascade) Matches(cols, rows int) bool {
	return c.cols == cols && c.rows == rows
}

// Step advances every column head by 0.5·speed cells and draws the
// trails. A head past the bottom wraps with randomized probability, so
// columns lose sync naturally instead of marching together.
func (c *Cascade) Step(g *raster.CellGrid, fr Frame, p Params) {
	g.Clear()
	set := raster.GlyphSet(p.GlyphSet)
	if p.GlyphSet == "" {
		set = raster.GlyphsKatakana
	}
	trail := c.rows / 3
	if trail < 4 {
		trail = 4
	}

	for col := 0; col < c.cols; col++ {
		c.pos[col] += 0.5 * p.Speed * c.speed[col]
		if int(c.pos[col]) > c.rows+trail {
			if c.rng.Float64() < 0.1 {
				c.pos[col] = 0
				c.speed[col] = 0.5 + c.rng.Float64()
			}
		}

		head := int(c.pos[col])
		for i := 0; i <= trail; i++ {
			row := head - i
			if row < 0 || row >= c.rows {
				continue
			}
			v := 1 - float64(i)/float64(trail+1)
			r := glyphAt(set, col, row, int(fr.Elapsed*2))
			var rgb colorize.RGB
			if i == 0 {
				rgb = colorize.RGB{R: 220, G: 255, B: 220}
			} else {
				opt := p.ColorOptions()
				opt.CellX, opt.CellY = col, row
				rgb = colorize.Map(v, p.ColorMode, opt)
			}
			g.Set(col, row, r, rgb)
		}
	}
}

// glyphAt picks a pseudo-random glyph that is stable per cell for a
// short while, so trails flicker instead of boiling every frame.
func glyphAt(set []rune, col, row, epoch int) rune {
	if len(set) <= 1 {
		return '#'
	}
	h := uint32(col)*2654435761 + uint32(row)*40503 + uint32(epoch)*97
	h ^= h >> 15
	idx := int(h%uint32(len(set)-1)) + 1 // skip the leading space
	return set[idx]
}
