package field

import (
	"math"
	"sort"
)

// Params holds the numeric knobs shared by the field evaluators.
// Callers pre-clamp ranges; evaluators guard against zero values but
// never reject input.
type Params struct {
	Complexity float64 // spatial frequency multiplier
	Speed      float64 // temporal frequency multiplier
	Symmetry   int     // angular repeat count, < 2 disables folding
	Zoom       float64 // radial scale for tunnel-style fields
	NoiseScale float64 // lattice frequency for noise-backed fields
}

// Func evaluates a scalar field at normalized coordinates (u, v) in
// [0,1] and elapsed time t. Pure: identical arguments yield identical
// results.
type Func func(u, v, t float64, p Params) float64

var registry = map[string]Func{
	"waves":   Waves,
	"terrain": Terrain,
	"voronoi": VoronoiEdges,
	"spiral":  Spiral,
	"vortex":  Vortex,
	"tunnel":  Tunnel,
	"fractal": Fractal,
	"moire":   Moire,
}

// Lookup returns the evaluator registered under name, or nil.
func Lookup(name string) Func {
	return registry[name]
}

// Names returns the registered field names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

const rEpsilon = 1e-6

// polar converts normalized (u, v) to (r, a) relative to the surface
// center. r is floored at a small epsilon so radial divisions are safe
// at the exact center.
func polar(u, v float64) (r, a float64) {
	x := (u - 0.5) * 2
	y := (v - 0.5) * 2
	r = math.Hypot(x, y)
	if r < rEpsilon {
		r = rEpsilon
	}
	a = math.Atan2(y, x)
	return r, a
}

// Fold maps an angle into a repeated wedge of size 2π/sym, producing
// sym-fold rotational symmetry. Identity for sym < 2.
func Fold(a float64, sym int) float64 {
	if sym < 2 {
		return a
	}
	wedge := 2 * math.Pi / float64(sym)
	a = math.Mod(a+math.Pi, wedge)
	if a < 0 {
		a += wedge
	}
	return math.Abs(a - wedge/2)
}

// Waves superimposes four sine terms at distinct spatial and temporal
// frequencies. The sum's range is known analytically (4 unit
// amplitudes), so normalization into [0,1] is exact.
func Waves(u, v, t float64, p Params) float64 {
	k := 6 * nonzero(p.Complexity, 1)
	s := nonzero(p.Speed, 1)
	sum := math.Sin(u*k+t*s) +
		math.Sin(v*k*1.3-t*s*0.8) +
		math.Sin((u+v)*k*0.7+t*s*0.5) +
		math.Sin(math.Hypot(u-0.5, v-0.5)*k*2-t*s*1.4)
	return (sum + 4) / 8
}

// Terrain is animated fractal terrain: five octaves of value noise with
// the lattice drifting over time.
func Terrain(u, v, t float64, p Params) float64 {
	scale := nonzero(p.NoiseScale, 4)
	return FBM(u*scale+t*0.15*nonzero(p.Speed, 1), v*scale+t*0.07*nonzero(p.Speed, 1), 5)
}

// VoronoiAt searches the 3×3 neighborhood of lattice cells around the
// sample point and returns the distance to the nearest jittered site
// together with that site's hash. Site jitter is itself animated by a
// sine term so cells drift without ever teleporting.
func VoronoiAt(u, v, t float64, p Params) (dist, siteHash float64) {
	scale := nonzero(p.NoiseScale, 5)
	x := u * scale
	y := v * scale
	cx := int32(math.Floor(x))
	cy := int32(math.Floor(y))

	dist = math.Inf(1)
	for dy := int32(-1); dy <= 1; dy++ {
		for dx := int32(-1); dx <= 1; dx++ {
			gx := cx + dx
			gy := cy + dy
			h := hash2(gx, gy)
			jx := 0.5 + 0.4*math.Sin(t*nonzero(p.Speed, 1)+h*6.2832)
			jy := 0.5 + 0.4*math.Cos(t*nonzero(p.Speed, 1)*0.8+h*9.425)
			sx := float64(gx) + jx
			sy := float64(gy) + jy
			d := math.Hypot(x-sx, y-sy)
			if d < dist {
				dist = d
				siteHash = h
			}
		}
	}
	return dist, siteHash
}

// VoronoiEdges is the scalar form of VoronoiAt: nearest-site distance
// clamped into [0,1] for edge/cell shading.
func VoronoiEdges(u, v, t float64, p Params) float64 {
	d, _ := VoronoiAt(u, v, t, p)
	if d > 1 {
		d = 1
	}
	return d
}

// Spiral combines a radius-dependent ring term with an angle-dependent
// arm term after the symmetry fold.
func Spiral(u, v, t float64, p Params) float64 {
	r, a := polar(u, v)
	a = Fold(a, p.Symmetry)
	k := 10 * nonzero(p.Complexity, 1)
	s := nonzero(p.Speed, 1)
	sum := math.Sin(r*k-t*s) + math.Sin(a*float64(max(p.Symmetry, 1))+r*k*0.5)
	return (sum + 2) / 4
}

// Vortex twists the sample angle proportionally to radius before the
// ring term, producing the characteristic inward swirl.
func Vortex(u, v, t float64, p Params) float64 {
	r, a := polar(u, v)
	twist := 3 * nonzero(p.Complexity, 1)
	a = Fold(a+r*twist-t*nonzero(p.Speed, 1)*0.5, p.Symmetry)
	sum := math.Sin(a*6) + math.Sin(r*8*nonzero(p.Complexity, 1)-t*nonzero(p.Speed, 1))
	return (sum + 2) / 4
}

// Tunnel maps radius to reciprocal depth so that equal field bands form
// rings rushing toward (or away from) the viewer as t advances.
func Tunnel(u, v, t float64, p Params) float64 {
	r, a := polar(u, v)
	a = Fold(a, p.Symmetry)
	depth := nonzero(p.Zoom, 1)/r + t*nonzero(p.Speed, 1)
	band := math.Sin(depth*2 + math.Cos(a*3)*0.5)
	return (band + 1) / 2
}

const fractalIters = 20

// Fractal is a 20-iteration escape-time quadratic (z ← z² + c) with a
// slowly orbiting c. Value is iterations-to-escape over the cap.
func Fractal(u, v, t float64, p Params) float64 {
	zoom := nonzero(p.Zoom, 1)
	zr := (u - 0.5) * 3 / zoom
	zi := (v - 0.5) * 3 / zoom
	cr := -0.745 + 0.11*math.Cos(t*0.1*nonzero(p.Speed, 1))
	ci := 0.156 + 0.08*math.Sin(t*0.13*nonzero(p.Speed, 1))

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

// Moire sums three sine ring fields centered on independently orbiting
// points. The interference is the raw sum of the terms, mapped into
// [0,1] only at the end.
func Moire(u, v, t float64, p Params) float64 {
	k := 20 * nonzero(p.Complexity, 1)
	s := nonzero(p.Speed, 1)
	sum := 0.0
	for i := 0; i < 3; i++ {
		w := 0.3 + 0.17*float64(i)
		phase := float64(i) * 2.094
		cx := 0.5 + 0.3*math.Cos(t*s*w+phase)
		cy := 0.5 + 0.3*math.Sin(t*s*w*1.3+phase)
		sum += math.Sin(math.Hypot(u-cx, v-cy) * k)
	}
	return (sum + 3) / 6
}

func nonzero(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
