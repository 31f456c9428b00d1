package pattern

import (
	"math"

	"patternforge/internal/colorize"
	"patternforge/internal/raster"
)

// TunnelLayer is the derived per-frame state of one tunnel ring.
type TunnelLayer struct {
	Radius  float64 // fraction of the half-diagonal
	Opacity float64 // 0 at the far end, 1 at the viewer
}

// TunnelLayerAt computes layer i of n at elapsed time t. The phase
// recurrence is periodic: after exactly one zoom cycle (TunnelPeriod)
// every layer returns to its t=0 radius and opacity.
func TunnelLayerAt(i, n int, t float64, p Params) TunnelLayer {
	speed := p.Speed
	if speed <= 0 {
		speed = 1
	}
	phase := float64(i)/float64(n) + t*speed*0.2
	if p.ZoomDir == "out" {
		phase = -phase
	}
	phase -= math.Floor(phase)

	// Quadratic radius growth reads as constant-speed motion through
	// a tunnel: near layers sweep outward faster.
	return TunnelLayer{
		Radius:  phase * phase,
		Opacity: phase,
	}
}

// TunnelPeriod returns the duration of one full zoom cycle.
func TunnelPeriod(p Params) float64 {
	speed := p.Speed
	if speed <= 0 {
		speed = 1
	}
	return 1 / (speed * 0.2)
}

// RenderTunnel draws LayerCount concentric rings rushing toward (or
// away from) the viewer around a slowly wobbling center.
func RenderTunnel(s *raster.Surface, fr Frame, p Params) {
	s.Clear(colorize.RGB{})

	n := p.LayerCount
	cx := float64(s.Width)/2 + math.Sin(fr.Elapsed*0.7)*float64(s.Width)*0.06
	cy := float64(s.Height)/2 + math.Cos(fr.Elapsed*0.9)*float64(s.Height)*0.06
	maxR := math.Hypot(float64(s.Width), float64(s.Height)) / 2
	opt := p.ColorOptions()

	// Painted far-to-near so nearer rings overwrite.
	order := make([]TunnelLayer, n)
	for i := 0; i < n; i++ {
		order[i] = TunnelLayerAt(i, n, fr.Elapsed, p)
	}
	sortLayers(order)

	for _, l := range order {
		r := l.Radius * maxR
		if r < 1 {
			continue
		}
		c := colorize.Map(l.Opacity, p.ColorMode, opt)
		thickness := 1 + r*0.04
		drawRing(s, cx, cy, r, thickness, c)
	}
}

func sortLayers(layers []TunnelLayer) {
	// Insertion sort by radius ascending; layer counts are small.
	for i := 1; i < len(layers); i++ {
		for j := i; j > 0 && layers[j].Radius < layers[j-1].Radius; j-- {
			layers[j], layers[j-1] = layers[j-1], layers[j]
		}
	}
}

// drawRing rasterizes an annulus by stepping the angle finely enough
// that adjacent samples land on neighboring pixels.
func drawRing(s *raster.Surface, cx, cy, r, thickness float64, c colorize.RGB) {
	step := 1 / (r + thickness)
	for a := 0.0; a < 2*math.Pi; a += step {
		cosA, sinA := math.Cos(a), math.Sin(a)
		for d := 0.0; d < thickness; d += 0.7 {
			s.Set(int(cx+(r+d)*cosA), int(cy+(r+d)*sinA), c)
		}
	}
}
