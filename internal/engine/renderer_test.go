package engine

import (
	"testing"

	"patternforge/internal/pattern"
)

var allKinds = []string{
	pattern.KindTorus, pattern.KindCube, pattern.KindSphere,
	pattern.KindWaves, pattern.KindSpiral, pattern.KindVortex,
	pattern.KindTerrain, pattern.KindVoronoi, pattern.KindMoire,
	pattern.KindFractal, pattern.KindCascade, pattern.KindRain,
	pattern.KindStarfield, pattern.KindFire, pattern.KindImage,
	"shader", "tunnel-layers", "wave-lines", "isometric",
}

func TestRenderFrameNeverPanics(t *testing.T) {
	r := New(160, 120)
	p := pattern.Default()
	for _, kind := range allKinds {
		p.Kind = kind
		r.RenderFrame(0, p)
		r.RenderFrame(1.0/60, p)
	}
}

func TestRenderFrameSurvivesHostileParams(t *testing.T) {
	r := New(64, 48)
	hostile := pattern.Params{
		Kind:       "shader",
		CellW:      -1,
		CellH:      0,
		Symmetry:   -3,
		LayerCount: 0,
		LineCount:  -2,
		TileSize:   0,
		Kernel:     "no-such-kernel",
	}
	for _, kind := range allKinds {
		hostile.Kind = kind
		r.RenderFrame(0.5, hostile)
	}
}

func TestResizeRebuildsGrid(t *testing.T) {
	r := New(320, 280)
	p := pattern.Default()
	p.Kind = pattern.KindWaves

	g1 := r.RenderGrid(0, p)
	if g1.Cols != 320/p.CellW || g1.Rows != 280/p.CellH {
		t.Fatalf("grid %dx%d for a 320x280 target", g1.Cols, g1.Rows)
	}

	r.Resize(640, 420)
	g2 := r.RenderGrid(0.1, p)
	if g2 == g1 {
		t.Error("grid survived a resize")
	}
	if g2.Cols != 640/p.CellW || g2.Rows != 420/p.CellH {
		t.Fatalf("grid %dx%d after resize to 640x420", g2.Cols, g2.Rows)
	}
}

func TestResizeRebuildsStatefulPattern(t *testing.T) {
	// A dimension change must drop cross-frame state before the next
	// frame evaluates, so no stale cell index is read.
	r := New(100, 100)
	p := pattern.Default()
	p.CellW, p.CellH = 1, 1

	for _, kind := range []string{
		pattern.KindCascade, pattern.KindRain,
		pattern.KindStarfield, pattern.KindFire,
	} {
		p.Kind = kind
		r.RenderGrid(0, p)
		r.Resize(37, 61)
		g := r.RenderGrid(0.1, p) // would index out of bounds on stale state
		if g.Cols != 37 || g.Rows != 61 {
			t.Fatalf("%s: grid %dx%d after resize", kind, g.Cols, g.Rows)
		}
		r.Resize(100, 100)
	}
}

func TestCellSizeChangeRebuildsState(t *testing.T) {
	r := New(120, 120)
	p := pattern.Default()
	p.Kind = pattern.KindFire

	p.CellW, p.CellH = 1, 1
	g1 := r.RenderGrid(0, p)

	p.CellW, p.CellH = 4, 4
	g2 := r.RenderGrid(0.1, p)
	if g2 == g1 {
		t.Error("grid survived a cell size change")
	}
	if g2.Cols != 30 || g2.Rows != 30 {
		t.Fatalf("grid %dx%d for 120x120 at 4x4 cells", g2.Cols, g2.Rows)
	}
}

func TestResizeSameSizeKeepsState(t *testing.T) {
	r := New(80, 80)
	p := pattern.Default()
	p.Kind = pattern.KindWaves
	g1 := r.RenderGrid(0, p)
	r.Resize(80, 80)
	g2 := r.RenderGrid(0.1, p)
	if g1 != g2 {
		t.Error("same-size resize reallocated the grid")
	}
}

func TestSurfaceReferenceStableAcrossFrames(t *testing.T) {
	r := New(64, 64)
	s := r.Surface()
	p := pattern.Default()
	p.Kind = "shader"
	r.RenderFrame(0, p)
	r.RenderFrame(0.5, p)
	if r.Surface() != s {
		t.Error("surface reallocated without a resize")
	}
	r.Resize(65, 64)
	if r.Surface() == s {
		t.Error("surface survived a resize")
	}
}

func TestImageKindWithoutSource(t *testing.T) {
	r := New(64, 64)
	p := pattern.Default()
	p.Kind = pattern.KindImage
	p.CellW, p.CellH = 1, 1
	g := r.RenderGrid(0, p)

	drawn := 0
	for _, ru := range g.Runes {
		if ru != ' ' {
			drawn++
		}
	}
	if drawn == 0 {
		t.Error("image kind without a source rendered nothing")
	}
}
