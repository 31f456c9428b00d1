package project

import "patternforge/internal/vmath"

// Light holds the fixed directional lighting used to shade solid forms.
// The shade value feeds glyph and color selection, not the depth test.
type Light struct {
	Dir     vmath.Vec3
	Ambient float64
	Direct  float64
}

// DefaultLight matches the standard overhead-left key light.
func DefaultLight() Light {
	return Light{
		Dir:     vmath.Vec3{0, 1, -1}.Normalize(),
		Ambient: 0.1,
		Direct:  0.9,
	}
}

// Shade returns the clamped lighting scalar for a rotated surface
// normal: ambient plus the Lambertian term, clipped to [0,1].
func (l Light) Shade(n vmath.Vec3) float64 {
	d := n.Dot(l.Dir)
	if d < 0 {
		d = 0
	}
	s := l.Ambient + d*l.Direct
	if s > 1 {
		s = 1
	}
	return s
}
