package shader

import (
	"math"
	"sort"

	"patternforge/internal/field"
)

// Env carries the per-frame uniforms every kernel receives.
type Env struct {
	T          float64
	Complexity float64
	Symmetry   int
	Zoom       float64
}

// KernelFunc evaluates one pattern value in [0,1] at a centered,
// aspect-corrected sample coordinate. The shared driver applies
// rotation and the symmetry fold before the kernel runs, and the
// 3-stop color ramp after.
type KernelFunc func(x, y float64, e Env) float64

var kernels = map[string]KernelFunc{
	"hypnotic":     Hypnotic,
	"voronoi":      Voronoi,
	"kaleido":      Kaleido,
	"plasma":       Plasma,
	"tunnel":       Tunnel,
	"fractal":      Fractal,
	"moire":        Moire,
	"waves":        Waves,
	"psychedelic":  Psychedelic,
	"vortex":       Vortex,
	"interference": Interference,
}

// Lookup returns the kernel registered under name, or nil.
func Lookup(name string) KernelFunc {
	return kernels[name]
}

// Names returns all kernel names, sorted.
func Names() []string {
	names := make([]string, 0, len(kernels))
	for name := range kernels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

const rEps = 1e-6

func toPolar(x, y float64) (r, a float64) {
	r = math.Hypot(x, y)
	if r < rEps {
		r = rEps
	}
	return r, math.Atan2(y, x)
}

// Hypnotic: concentric rings whose phase wobbles with the angle.
func Hypnotic(x, y float64, e Env) float64 {
	r, a := toPolar(x, y)
	v := math.Sin(r*10*e.Complexity - e.T*2 + 2*math.Sin(a*3+e.T))
	return (v + 1) / 2
}

// Voronoi: drifting cell interiors brightened toward the site, with a
// per-cell hash band so neighboring cells separate.
func Voronoi(x, y float64, e Env) float64 {
	d, h := field.VoronoiAt(x*0.5+0.5, y*0.5+0.5, e.T, field.Params{
		NoiseScale: 5 * e.Complexity,
		Speed:      1,
	})
	if d > 1 {
		d = 1
	}
	return 0.7*(1-d) + 0.3*h
}

// Kaleido: radial stripes inside the folded wedge.
func Kaleido(x, y float64, e Env) float64 {
	r, a := toPolar(x, y)
	sym := e.Symmetry
	if sym < 2 {
		sym = 6
	}
	v := math.Sin(a*float64(sym)*2+r*8*e.Complexity-e.T) * math.Cos(r*5-e.T*0.7)
	return (v + 1) / 2
}

// Plasma: sine superposition blended with fractal noise, 0.7/0.3.
func Plasma(x, y float64, e Env) float64 {
	k := 4 * e.Complexity
	s := math.Sin(x*k+e.T) + math.Sin(y*k*1.3-e.T*0.8) +
		math.Sin((x+y)*k*0.8+e.T*0.6) + math.Sin(math.Hypot(x, y)*k*1.5-e.T*1.2)
	wave := (s + 4) / 8
	noise := field.FBM(x*3+e.T*0.2, y*3, 4)
	return 0.7*wave + 0.3*noise
}

// Tunnel: reciprocal-depth bands crossed by angular stripes.
func Tunnel(x, y float64, e Env) float64 {
	r, a := toPolar(x, y)
	depth := e.Zoom/r + e.T*2
	v := math.Sin(depth*3)*0.7 + math.Sin(a*4+depth)*0.3
	return (v + 1) / 2
}

const fractalIters = 20

// Fractal: escape-time Julia iteration with an orbiting constant.
func Fractal(x, y float64, e Env) float64 {
	zr := x * 1.5 / nz(e.Zoom)
	zi := y * 1.5 / nz(e.Zoom)
	cr := -0.745 + 0.11*math.Cos(e.T*0.1)
	ci := 0.156 + 0.08*math.Sin(e.T*0.13)
	i := 0
	for ; i < fractalIters; i++ {
		zr2 := zr*zr - zi*zi + cr
		zi = 2*zr*zi + ci
		zr = zr2
		if zr*zr+zi*zi > 4 {
			break
		}
	}
	return float64(i) / fractalIters
}

// Moire: three ring fields on orbiting centers, raw interference sum.
func Moire(x, y float64, e Env) float64 {
	k := 15 * e.Complexity
	sum := 0.0
	for i := 0; i < 3; i++ {
		w := 0.4 + 0.2*float64(i)
		phase := float64(i) * 2.094
		cx := 0.5 * math.Cos(e.T*w+phase)
		cy := 0.5 * math.Sin(e.T*w*1.2+phase)
		sum += math.Sin(math.Hypot(x-cx, y-cy) * k)
	}
	return (sum + 3) / 6
}

// Waves: four directional plane waves.
func Waves(x, y float64, e Env) float64 {
	k := 6 * e.Complexity
	s := math.Sin(x*k+e.T) + math.Sin(y*k-e.T*1.3) +
		math.Sin((x*0.7+y*0.7)*k+e.T*0.7) + math.Sin((x*0.7-y*0.7)*k-e.T*0.9)
	return (s + 4) / 8
}

// Psychedelic: spiral arms amplitude-modulated by a slower ring.
func Psychedelic(x, y float64, e Env) float64 {
	r, a := toPolar(x, y)
	sym := e.Symmetry
	if sym < 1 {
		sym = 1
	}
	v := math.Sin(a*float64(sym) + r*15*e.Complexity - e.T*3 + 2*math.Sin(r*5-e.T))
	return (v + 1) / 2
}

// Vortex: rays twisted proportionally to radius, pulled inward over
// time.
func Vortex(x, y float64, e Env) float64 {
	r, a := toPolar(x, y)
	rays := 8.0 * nz(e.Complexity)
	v := math.Sin((a+r*3-e.T*0.8)*rays) * math.Exp(-r*0.4)
	return (v + 1) / 2
}

// Interference: two diagonal plane waves multiplied, not summed.
func Interference(x, y float64, e Env) float64 {
	k := 10 * e.Complexity
	v := math.Sin((x+y)*k+e.T) * math.Sin((x-y)*k*1.1-e.T*0.8)
	return (v + 1) / 2
}

func nz(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}
