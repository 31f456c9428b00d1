package pattern

import (
	"math"
	"sort"

	"patternforge/internal/colorize"
	"patternforge/internal/field"
	"patternforge/internal/raster"
)

// HeightFunc produces a normalized [0,1] height for a grid cell at
// normalized coordinates (u, v) and elapsed time t.
type HeightFunc func(u, v, t float64, p field.Params) float64

var heightFuncs = map[string]HeightFunc{
	"noise":    heightNoise,
	"radial":   heightRadial,
	"pyramid":  heightPyramid,
	"diagonal": heightDiagonal,
	"ripple":   heightRipple,
	"terrain":  heightTerrain,
}

// HeightKinds returns the registered isometric height pattern names.
func HeightKinds() []string {
	names := make([]string, 0, len(heightFuncs))
	for name := range heightFuncs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func heightNoise(u, v, t float64, p field.Params) float64 {
	return field.FBM(u*4+t*0.3, v*4, 4)
}

func heightRadial(u, v, t float64, p field.Params) float64 {
	d := math.Hypot(u-0.5, v-0.5)
	return (math.Sin(d*12-t*2) + 1) / 2 * (1 - d)
}

func heightPyramid(u, v, t float64, p field.Params) float64 {
	h := 1 - 2*math.Max(math.Abs(u-0.5), math.Abs(v-0.5))
	if h < 0 {
		h = 0
	}
	pulse := 0.8 + 0.2*math.Sin(t)
	return h * pulse
}

func heightDiagonal(u, v, t float64, p field.Params) float64 {
	return (math.Sin((u+v)*10-t*2) + 1) / 2
}

func heightRipple(u, v, t float64, p field.Params) float64 {
	d := math.Hypot(u-0.5, v-0.5)
	return (math.Sin(d*25-t*4) + 1) / 2 * math.Exp(-d*2)
}

// heightTerrain is fBm terrain with a slow breathing term layered on.
func heightTerrain(u, v, t float64, p field.Params) float64 {
	h := field.FBM(u*5, v*5, 5)
	return h * (0.75 + 0.25*math.Sin(t*0.5))
}

type isoCell struct {
	gx, gy int
	depth  float64
}

// RenderIso draws the isometric height field: each grid cell becomes a
// three-faced prism. Cells are depth-sorted back-to-front by their
// rotated grid position sum, then composited in order; no z-buffer.
func RenderIso(s *raster.Surface, fr Frame, p Params) {
	s.Clear(colorize.RGB{})

	fn := heightFuncs[p.HeightKind]
	if fn == nil {
		fn = heightTerrain
	}

	tileW := p.TileSize
	tileH := tileW / 2
	if tileH < 2 {
		tileH = 2
	}
	gridN := s.Width / tileW
	if gridN < 2 {
		gridN = 2
	}
	if gridN > 64 {
		gridN = 64
	}

	angle := 0.0
	if p.Rot.Auto {
		angle = fr.Elapsed * p.Rot.SpeedZ * math.Pi / 180
	} else {
		angle = p.Rot.Z * math.Pi / 180
	}
	cosA, sinA := math.Cos(angle), math.Sin(angle)
	half := float64(gridN-1) / 2

	cells := make([]isoCell, 0, gridN*gridN)
	for gy := 0; gy < gridN; gy++ {
		for gx := 0; gx < gridN; gx++ {
			rx, ry := rotateGrid(float64(gx)-half, float64(gy)-half, cosA, sinA)
			cells = append(cells, isoCell{gx: gx, gy: gy, depth: rx + ry})
		}
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i].depth < cells[j].depth })

	fp := p.FieldParams()
	opt := p.ColorOptions()
	cx := s.Width / 2
	cy := s.Height/2 - int(p.HeightScale)/2

	for _, c := range cells {
		u := float64(c.gx) / float64(gridN-1)
		v := float64(c.gy) / float64(gridN-1)
		h := fn(u, v, fr.Elapsed, fp)

		rx, ry := rotateGrid(float64(c.gx)-half, float64(c.gy)-half, cosA, sinA)
		sx := cx + int((rx-ry)*float64(tileW)/2)
		sy := cy + int((rx+ry)*float64(tileH)/2)

		base := colorize.Map(h, p.ColorMode, opt)
		s.DrawPrism(sx, sy, tileW, tileH, int(h*p.HeightScale), base)
	}
}

func rotateGrid(x, y, cosA, sinA float64) (float64, float64) {
	return x*cosA - y*sinA, x*sinA + y*cosA
}
