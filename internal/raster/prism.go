package raster

import "patternforge/internal/colorize"

// Face brightness multipliers for the three visible prism faces. Fixed
// fake lighting: top brightest, right mid, left darkest.
const (
	prismTop   = 1.0
	prismRight = 0.75
	prismLeft  = 0.5
)

// DrawPrism draws one isometric column: a diamond top face at
// (cx, cy-height) and two side faces running down to (cx, cy). tileW
// and tileH are the diamond's full width and height in pixels.
func (s *Surface) DrawPrism(cx, cy, tileW, tileH, height int, base colorize.RGB) {
	if tileW < 2 {
		tileW = 2
	}
	if tileH < 2 {
		tileH = 2
	}
	if height < 0 {
		height = 0
	}
	topY := cy - height
	halfW := tileW / 2
	halfH := tileH / 2

	top := shade(base, prismTop)
	left := shade(base, prismLeft)
	right := shade(base, prismRight)

	// Side faces: for each column of the lower half of the diamond,
	// extrude downward by height.
	for dx := -halfW; dx <= halfW; dx++ {
		// Diamond edge: |dx|/halfW + |dy|/halfH <= 1.
		dy := halfH - (abs(dx)*halfH)/halfW
		edgeY := topY + dy
		c := right
		if dx < 0 {
			c = left
		}
		for y := edgeY; y <= edgeY+height; y++ {
			s.Set(cx+dx, y, c)
		}
	}

	// Top face diamond, drawn last so it wins the shared edge pixels.
	for dy := -halfH; dy <= halfH; dy++ {
		span := halfW - (abs(dy)*halfW)/halfH
		for dx := -span; dx <= span; dx++ {
			s.Set(cx+dx, topY+dy, top)
		}
	}
}

func shade(c colorize.RGB, k float64) colorize.RGB {
	return colorize.RGB{
		R: uint8(float64(c.R)*k + 0.5),
		G: uint8(float64(c.G)*k + 0.5),
		B: uint8(float64(c.B)*k + 0.5),
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
