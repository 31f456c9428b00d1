package engine

import (
	"patternforge/internal/colorize"
	"patternforge/internal/field"
	"patternforge/internal/pattern"
	"patternforge/internal/raster"
	"patternforge/internal/shader"
	"patternforge/internal/source"
)

// Renderer owns one render target and all per-pattern transient state.
// A single task drives it: no method is safe for concurrent use, by
// the one-task-per-instance model.
type Renderer struct {
	w, h    int
	surface *raster.Surface

	// Character-grid target, rebuilt when surface or cell size change.
	grid         *raster.CellGrid
	cellW, cellH int

	// Cross-frame pattern state, keyed to the current grid shape.
	cascade *pattern.Cascade
	rain    *pattern.Rain
	stars   *pattern.Starfield
	fire    *pattern.Fire

	// Optional input picture for the image-to-character kind.
	src *source.Image
}

// New allocates a renderer for a w×h pixel target.
func New(w, h int) *Renderer {
	return &Renderer{
		w:       w,
		h:       h,
		surface: raster.NewSurface(w, h),
	}
}

// Resize is the structural barrier: every buffer and every transient
// state is dropped and reallocated before the next frame evaluates,
// so no stale grid-unit index can survive a dimension change.
func (r *Renderer) Resize(w, h int) {
	if w == r.w && h == r.h {
		return
	}
	r.w, r.h = w, h
	r.surface = raster.NewSurface(w, h)
	r.grid = nil
	r.cascade = nil
	r.rain = nil
	r.stars = nil
	r.fire = nil
}

// Surface returns the drawable target. The reference is stable between
// resizes, so a finished frame can be captured without re-rendering.
func (r *Renderer) Surface() *raster.Surface {
	return r.surface
}

// SetSource installs (or clears, with nil) the input picture used by
// the image-to-character kind.
func (r *Renderer) SetSource(src *source.Image) {
	r.src = src
}

// RenderFrame evaluates exactly one pattern into the surface. It never
// fails: degenerate parameters are substituted, unknown kinds render a
// blank frame.
func (r *Renderer) RenderFrame(elapsed float64, p pattern.Params) {
	p = p.Sanitize()
	fr := pattern.Frame{Elapsed: elapsed, W: r.w, H: r.h}

	switch pattern.FamilyOf(p.Kind) {
	case pattern.FamilyShader:
		rot := p.Rot.Z
		if p.Rot.Auto {
			rot += elapsed * p.Rot.SpeedZ
		}
		shader.Render(r.surface, elapsed, shader.Config{
			Kernel:     p.Kernel,
			Complexity: p.Complexity,
			Symmetry:   p.Symmetry,
			Zoom:       p.Zoom,
			Rotation:   rot,
			A:          p.ColorA,
			B:          p.ColorB,
			C:          p.ColorC,
			Grain:      p.Grain,
			Vignette:   p.Vignette,
		})
	case pattern.FamilyTunnel:
		pattern.RenderTunnel(r.surface, fr, p)
	case pattern.FamilyWave:
		pattern.RenderWaveLines(r.surface, fr, p)
	case pattern.FamilyIso:
		pattern.RenderIso(r.surface, fr, p)
	default:
		r.renderGrid(fr, p)
	}
}

// RenderGrid evaluates a character-grid kind directly into a cell grid,
// skipping the pixel surface. The live terminal viewer uses this and
// hands cells to the screen itself.
func (r *Renderer) RenderGrid(elapsed float64, p pattern.Params) *raster.CellGrid {
	p = p.Sanitize()
	fr := pattern.Frame{Elapsed: elapsed, W: r.w, H: r.h}
	r.evalGrid(fr, p)
	return r.grid
}

func (r *Renderer) renderGrid(fr pattern.Frame, p pattern.Params) {
	r.evalGrid(fr, p)
	r.surface.Clear(colorize.RGB{})
	raster.DrawGrid(r.surface, r.grid, r.cellW, r.cellH)
}

func (r *Renderer) evalGrid(fr pattern.Frame, p pattern.Params) {
	if r.grid == nil || r.cellW != p.CellW || r.cellH != p.CellH {
		r.grid = raster.NewCellGrid(r.w, r.h, p.CellW, p.CellH)
		r.cellW, r.cellH = p.CellW, p.CellH
		r.cascade = nil
		r.rain = nil
		r.stars = nil
		r.fire = nil
	}
	g := r.grid

	switch p.Kind {
	case pattern.KindTorus, pattern.KindCube, pattern.KindSphere:
		pattern.RenderForm(g, fr, p)
	case pattern.KindCascade:
		if r.cascade == nil || !r.cascade.Matches(g.Cols, g.Rows) {
			r.cascade = pattern.NewCascade(g.Cols, g.Rows, p.Seed)
		}
		r.cascade.Step(g, fr, p)
	case pattern.KindRain:
		if r.rain == nil || !r.rain.Matches(g.Cols, g.Rows) {
			r.rain = pattern.NewRain(g.Cols, g.Rows, p.Seed)
		}
		r.rain.Step(g, fr, p)
	case pattern.KindStarfield:
		if r.stars == nil || !r.stars.Matches(g.Cols, g.Rows) {
			r.stars = pattern.NewStarfield(g.Cols, g.Rows, p.Seed)
		}
		r.stars.Step(g, fr, p)
	case pattern.KindFire:
		if r.fire == nil || !r.fire.Matches(g.Cols, g.Rows) {
			r.fire = pattern.NewFire(g.Cols, g.Rows, p.Seed)
		}
		r.fire.Step(g, fr, p)
	case pattern.KindImage:
		pattern.RenderImage(g, r.src, fr, p)
	default:
		pattern.RenderFieldGrid(g, field.Lookup(p.Kind), fr, p)
	}
}
