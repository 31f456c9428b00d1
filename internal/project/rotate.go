package project

import "patternforge/internal/vmath"

// Rotation holds Euler angles in degrees plus optional per-axis
// auto-rotate speeds in degrees per second.
type Rotation struct {
	X, Y, Z                float64
	SpeedX, SpeedY, SpeedZ float64
	Auto                   bool
}

// Matrix composes the three axis rotations for a given elapsed time.
// With auto-rotate on, each axis advances independently at its own
// speed; off, the static angles are used as-is.
func (r Rotation) Matrix(elapsed float64) vmath.Mat3 {
	ax, ay, az := r.X, r.Y, r.Z
	if r.Auto {
		ax += elapsed * r.SpeedX
		ay += elapsed * r.SpeedY
		az += elapsed * r.SpeedZ
	}
	return vmath.EulerZYX(vmath.Deg2Rad(ax), vmath.Deg2Rad(ay), vmath.Deg2Rad(az))
}
