package shader

import (
	"math"
	"runtime"
	"sync"

	"patternforge/internal/colorize"
	"patternforge/internal/raster"
)

// Config is the per-frame uniform set for the shader driver.
type Config struct {
	Kernel     string
	Complexity float64
	Symmetry   int
	Zoom       float64
	Rotation   float64 // degrees, applied to the sample coordinate
	A, B, C    colorize.RGB
	Grain      float64
	Vignette   float64
}

// Render evaluates the selected kernel once per output pixel. Rows are
// partitioned across workers; each row owns disjoint pixels, so the
// writes never race. Unknown kernel names render the plasma default.
func Render(s *raster.Surface, t float64, cfg Config) {
	kernel := Lookup(cfg.Kernel)
	if kernel == nil {
		kernel = Plasma
	}

	e := Env{
		T:          t,
		Complexity: nz(cfg.Complexity),
		Symmetry:   cfg.Symmetry,
		Zoom:       nz(cfg.Zoom),
	}

	w, h := s.Width, s.Height
	aspect := float64(w) / float64(h)
	rad := cfg.Rotation * math.Pi / 180
	cosR, sinR := math.Cos(rad), math.Sin(rad)

	workers := runtime.GOMAXPROCS(0)
	if workers > h {
		workers = h
	}
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	for wk := 0; wk < workers; wk++ {
		wg.Add(1)
		go func(start int) {
			defer wg.Done()
			for y := start; y < h; y += workers {
				ny := (float64(y)/float64(h)*2 - 1)
				for x := 0; x < w; x++ {
					nx := (float64(x)/float64(w)*2 - 1) * aspect

					// Uniform pre-rotation.
					px := nx*cosR - ny*sinR
					py := nx*sinR + ny*cosR

					// Angular symmetry fold.
					if cfg.Symmetry > 1 {
						r, a := toPolar(px, py)
						a = fold(a, cfg.Symmetry)
						px = r * math.Cos(a)
						py = r * math.Sin(a)
					}

					v := clamp01(kernel(px, py, e))
					v = v * v * (3 - 2*v) // ease before the ramp
					c := ramp(v, cfg.A, cfg.B, cfg.C)
					s.Set(x, y, post(c, nx, ny, x, y, cfg))
				}
			}
		}(wk)
	}
	wg.Wait()
}

// ramp is the shared 3-stop color gradient A→B→C.
func ramp(v float64, a, b, c colorize.RGB) colorize.RGB {
	if v < 0.5 {
		return lerpRGB(a, b, v*2)
	}
	return lerpRGB(b, c, v*2-1)
}

func lerpRGB(a, b colorize.RGB, t float64) colorize.RGB {
	return colorize.RGB{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t + 0.5),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t + 0.5),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t + 0.5),
	}
}

// fold mirrors an angle into a 2π/sym wedge (kaleidoscope repeat).
func fold(a float64, sym int) float64 {
	wedge := 2 * math.Pi / float64(sym)
	a = math.Mod(a+math.Pi, wedge)
	if a < 0 {
		a += wedge
	}
	return math.Abs(a - wedge/2)
}

// post applies the whole-surface pass: dither grain plus a radial
// vignette darkening toward the frame edge.
func post(c colorize.RGB, nx, ny float64, x, y int, cfg Config) colorize.RGB {
	k := 1.0
	if cfg.Vignette > 0 {
		d := (nx*nx + ny*ny) / 2
		k -= cfg.Vignette * d
	}
	if cfg.Grain > 0 {
		h := uint32(x)*374761393 + uint32(y)*668265263
		h = (h ^ (h >> 13)) * 1274126177
		k += cfg.Grain * (float64(h&1023)/1023 - 0.5)
	}
	if k < 0 {
		k = 0
	}
	if k > 1 {
		k = 1
	}
	return colorize.RGB{
		R: uint8(float64(c.R)*k + 0.5),
		G: uint8(float64(c.G)*k + 0.5),
		B: uint8(float64(c.B)*k + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
