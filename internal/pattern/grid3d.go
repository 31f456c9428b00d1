package pattern

import (
	"patternforge/internal/colorize"
	"patternforge/internal/project"
	"patternforge/internal/raster"
	"patternforge/internal/vmath"
)

// RenderForm evaluates one of the 3D character-grid forms (torus, cube,
// sphere) into the cell grid. Every generated surface sample is rotated,
// projected and depth-tested; the shade value from the rotated normal
// drives glyph and color choice.
func RenderForm(g *raster.CellGrid, fr Frame, p Params) {
	g.Clear()

	cam := project.NewCamera(g.Cols, g.Rows)
	rot := p.Rot.Matrix(fr.Elapsed)
	light := project.DefaultLight()
	set := raster.GlyphSet(p.GlyphSet)
	opt := p.ColorOptions()

	visit := func(pt, n vmath.Vec3) {
		rp := rot.MulVec3(pt)
		col, row, ooz := cam.Project(rp)
		shade := light.Shade(rot.MulVec3(n))
		v := raster.Adjust(shade, p.Contrast, p.Brightness)
		opt.CellX, opt.CellY = col, row
		g.SetIfNearer(col, row, ooz, raster.Glyph(set, v), colorize.Map(v, p.ColorMode, opt))
	}

	// Density scales the sweep steps: higher density, finer steps.
	d := p.Density
	switch p.Kind {
	case KindCube:
		project.Cube(1.3, 0.04/d, visit)
	case KindSphere:
		project.Sphere(1.5, 0.05/d, 0.02/d, visit)
	default:
		project.Torus(0.07/d, 0.02/d, visit)
	}
}
