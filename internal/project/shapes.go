package project

import (
	"math"

	"patternforge/internal/vmath"
)

// Visit receives one surface sample: position and unit normal, both in
// model space before rotation.
type Visit func(p, n vmath.Vec3)

// Torus sweeps the tube surface with two angle steps. Steps must stay
// well under one cell's angular coverage or the projection leaves
// holes; density scaling divides the steps further.
func Torus(thetaStep, phiStep float64, visit Visit) {
	if thetaStep <= 0 {
		thetaStep = 0.07
	}
	if phiStep <= 0 {
		phiStep = 0.02
	}
	for theta := 0.0; theta < 2*math.Pi; theta += thetaStep {
		cosT, sinT := math.Cos(theta), math.Sin(theta)
		for phi := 0.0; phi < 2*math.Pi; phi += phiStep {
			cosP, sinP := math.Cos(phi), math.Sin(phi)
			// Circle of radius R1 at distance R2, swept by phi.
			cx := R2 + R1*cosT
			p := vmath.Vec3{cx * cosP, R1 * sinT, cx * sinP}
			n := vmath.Vec3{cosT * cosP, sinT, cosT * sinP}
			visit(p, n)
		}
	}
}

// Sphere sweeps spherical coordinates at the given radius.
func Sphere(radius, thetaStep, phiStep float64, visit Visit) {
	if radius <= 0 {
		radius = 1.5
	}
	if thetaStep <= 0 {
		thetaStep = 0.05
	}
	if phiStep <= 0 {
		phiStep = 0.02
	}
	for theta := 0.0; theta < math.Pi; theta += thetaStep {
		sinT, cosT := math.Sin(theta), math.Cos(theta)
		for phi := 0.0; phi < 2*math.Pi; phi += phiStep {
			n := vmath.Vec3{sinT * math.Cos(phi), cosT, sinT * math.Sin(phi)}
			visit(n.Scale(radius), n)
		}
	}
}

// Cube rasterizes the six faces of an axis-aligned cube of the given
// half-extent. Each face carries its outward normal.
func Cube(half, step float64, visit Visit) {
	if half <= 0 {
		half = 1.3
	}
	if step <= 0 {
		step = 0.04
	}
	for a := -half; a <= half; a += step {
		for b := -half; b <= half; b += step {
			visit(vmath.Vec3{a, b, half}, vmath.Vec3{0, 0, 1})
			visit(vmath.Vec3{a, b, -half}, vmath.Vec3{0, 0, -1})
			visit(vmath.Vec3{a, half, b}, vmath.Vec3{0, 1, 0})
			visit(vmath.Vec3{a, -half, b}, vmath.Vec3{0, -1, 0})
			visit(vmath.Vec3{half, a, b}, vmath.Vec3{1, 0, 0})
			visit(vmath.Vec3{-half, a, b}, vmath.Vec3{-1, 0, 0})
		}
	}
}
