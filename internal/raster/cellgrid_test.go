package raster

import (
	"math/rand"
	"testing"

	"patternforge/internal/colorize"
)

type depthSample struct {
	col, row int
	ooz      float64
	r        rune
	c        colorize.RGB
}

func TestSetIfNearer_OrderIndependent(t *testing.T) {
	// The depth test must depend only on the set of samples, never on
	// their visitation order.
	rng := rand.New(rand.NewSource(42))
	samples := make([]depthSample, 500)
	for i := range samples {
		samples[i] = depthSample{
			col: rng.Intn(20),
			row: rng.Intn(10),
			ooz: rng.Float64(),
			r:   rune('a' + i%26),
			c:   colorize.RGB{R: uint8(i), G: uint8(i >> 8)},
		}
	}
	// Distinct depths so the winner is unambiguous.
	for i := range samples {
		samples[i].ooz += float64(i) * 1e-9
	}

	apply := func(order []depthSample) *CellGrid {
		g := NewCellGrid(20*7, 10*13, 7, 13)
		g.Clear()
		for _, s := range order {
			g.SetIfNearer(s.col, s.row, s.ooz, s.r, s.c)
		}
		return g
	}

	a := apply(samples)

	shuffled := make([]depthSample, len(samples))
	copy(shuffled, samples)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	b := apply(shuffled)

	for i := range a.Depth {
		if a.Depth[i] != b.Depth[i] || a.Runes[i] != b.Runes[i] || a.Color[i] != b.Color[i] {
			t.Fatalf("cell %d differs after shuffle: (%v %q %v) vs (%v %q %v)",
				i, a.Depth[i], a.Runes[i], a.Color[i], b.Depth[i], b.Runes[i], b.Color[i])
		}
	}
}

func TestSetIfNearer_Semantics(t *testing.T) {
	g := NewCellGrid(70, 130, 7, 13)
	g.Clear()

	if !g.SetIfNearer(1, 1, 0.5, 'a', colorize.RGB{}) {
		t.Fatal("first write rejected")
	}
	if g.SetIfNearer(1, 1, 0.3, 'b', colorize.RGB{}) {
		t.Error("farther sample overwrote nearer one")
	}
	if !g.SetIfNearer(1, 1, 0.7, 'c', colorize.RGB{}) {
		t.Error("nearer sample rejected")
	}
	if got := g.Runes[1*g.Cols+1]; got != 'c' {
		t.Errorf("cell rune = %q, want 'c'", got)
	}

	// Out of bounds is dropped, not a panic.
	if g.SetIfNearer(-1, 0, 1, 'x', colorize.RGB{}) || g.SetIfNearer(0, 999, 1, 'x', colorize.RGB{}) {
		t.Error("out-of-bounds write accepted")
	}
}

func TestClearResetsDepth(t *testing.T) {
	g := NewCellGrid(70, 130, 7, 13)
	g.Clear()
	g.SetIfNearer(2, 3, 0.9, '#', colorize.RGB{R: 1})
	g.Clear()
	for i := range g.Depth {
		if g.Depth[i] != 0 || g.Runes[i] != ' ' {
			t.Fatalf("cell %d not reset: depth=%v rune=%q", i, g.Depth[i], g.Runes[i])
		}
	}
}

func TestNewCellGridDegenerateSizes(t *testing.T) {
	// Zero and negative cell sizes must not allocate a zero grid.
	g := NewCellGrid(100, 50, 0, -3)
	if g.Cols < 1 || g.Rows < 1 {
		t.Fatalf("degenerate grid %dx%d", g.Cols, g.Rows)
	}
}

func TestAdjust(t *testing.T) {
	tests := []struct {
		name                    string
		v, contrast, brightness float64
		want                    float64
	}{
		{"identity", 0.25, 1, 0, 0.25},
		{"brightness shifts", 0.25, 1, 0.5, 0.75},
		{"contrast pivots at half", 0.5, 3, 0, 0.5},
		{"clamps high", 0.9, 5, 0, 1},
		{"clamps low", 0.1, 5, 0, 0},
		{"zero contrast treated as one", 0.3, 0, 0, 0.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Adjust(tt.v, tt.contrast, tt.brightness); !approxEq(got, tt.want) {
				t.Errorf("Adjust(%v,%v,%v) = %v, want %v", tt.v, tt.contrast, tt.brightness, got, tt.want)
			}
		})
	}
}

func approxEq(a, b float64) bool {
	d := a - b
	return d < 1e-12 && d > -1e-12
}

func TestGlyphMapping(t *testing.T) {
	set := []rune(" .#@")
	if got := Glyph(set, 0); got != ' ' {
		t.Errorf("Glyph(0) = %q", got)
	}
	if got := Glyph(set, 1); got != '@' {
		t.Errorf("Glyph(1) = %q", got)
	}
	if got := Glyph(set, 0.5); got != '.' {
		t.Errorf("Glyph(0.5) = %q", got)
	}
	// Out of range clamps to the palette ends.
	if got := Glyph(set, 7); got != '@' {
		t.Errorf("Glyph(7) = %q", got)
	}
	if got := Glyph(nil, 0.5); got != ' ' {
		t.Errorf("Glyph(nil) = %q", got)
	}
}

func TestGlyphSetFallback(t *testing.T) {
	if set := GlyphSet("no-such-set"); string(set) != string(GlyphsClassic) {
		t.Errorf("unknown set did not fall back to classic")
	}
}
