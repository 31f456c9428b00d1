package project

import "patternforge/internal/vmath"

// Torus generator radii shared by the camera scale derivation.
const (
	R1 = 1.0 // tube radius
	R2 = 2.0 // ring radius
	K2 = 5.0 // camera distance
)

// Camera performs the perspective divide into cell coordinates.
// K1 scales world units to cells and is derived from the grid width so
// the standard forms fill roughly 3/4 of the frame at any size.
type Camera struct {
	K1   float64
	Cols int
	Rows int
}

// NewCamera derives projection constants for a cols×rows cell grid.
func NewCamera(cols, rows int) Camera {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return Camera{
		K1:   float64(cols) * K2 * 3 / (8 * (R1 + R2)),
		Cols: cols,
		Rows: rows,
	}
}

// Project maps a rotated 3D point to integer cell coordinates plus its
// reciprocal depth (larger is nearer). The vertical scale is halved
// because terminal cells are roughly twice as tall as wide.
func (c Camera) Project(p vmath.Vec3) (col, row int, oneOverZ float64) {
	z := K2 + p[2]
	if z < 1e-6 {
		z = 1e-6
	}
	oneOverZ = 1 / z
	col = c.Cols/2 + int(c.K1*oneOverZ*p[0])
	row = c.Rows/2 - int(c.K1*oneOverZ*p[1]/2)
	return col, row, oneOverZ
}
