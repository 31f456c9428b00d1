package raster

import "patternforge/internal/colorize"

// CellGrid is the character-grid target: one rune and color per cell,
// paired with a per-cell reciprocal-depth buffer for the 3D forms.
// Depth stores 1/z, cleared to 0, larger means nearer.
type CellGrid struct {
	Cols  int
	Rows  int
	Runes []rune
	Color []colorize.RGB
	Depth []float64
}

// NewCellGrid sizes a grid for a pixel surface of w×h split into
// cellW×cellH cells. Degenerate cell sizes fall back to one cell.
func NewCellGrid(w, h, cellW, cellH int) *CellGrid {
	if cellW < 1 {
		cellW = 1
	}
	if cellH < 1 {
		cellH = 1
	}
	cols := w / cellW
	rows := h / cellH
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	n := cols * rows
	return &CellGrid{
		Cols:  cols,
		Rows:  rows,
		Runes: make([]rune, n),
		Color: make([]colorize.RGB, n),
		Depth: make([]float64, n),
	}
}

// Clear resets every cell to background and every depth to 0. Called at
// the start of each frame; the allocations are reused.
func (g *CellGrid) Clear() {
	for i := range g.Runes {
		g.Runes[i] = ' '
		g.Color[i] = colorize.RGB{}
		g.Depth[i] = 0
	}
}

// Set writes a cell unconditionally. Out-of-bounds writes are dropped.
func (g *CellGrid) Set(col, row int, r rune, c colorize.RGB) {
	if col < 0 || col >= g.Cols || row < 0 || row >= g.Rows {
		return
	}
	i := row*g.Cols + col
	g.Runes[i] = r
	g.Color[i] = c
}

// SetIfNearer writes a cell only when the sample's reciprocal depth
// beats the stored one. The comparison alone decides, so iteration
// order of the 3D sweep cannot change the final grid.
func (g *CellGrid) SetIfNearer(col, row int, oneOverZ float64, r rune, c colorize.RGB) bool {
	if col < 0 || col >= g.Cols || row < 0 || row >= g.Rows {
		return false
	}
	i := row*g.Cols + col
	if oneOverZ <= g.Depth[i] {
		return false
	}
	g.Depth[i] = oneOverZ
	g.Runes[i] = r
	g.Color[i] = c
	return true
}
