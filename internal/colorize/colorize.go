package colorize

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Mode selects how a field value maps to an output color.
type Mode string

const (
	ModeSingle  Mode = "single"
	ModeGreen   Mode = "green"
	ModeGray    Mode = "gray"
	ModeRainbow Mode = "rainbow"
	ModeHeight  Mode = "height"
	ModeNeon    Mode = "neon"
)

// RGB is an 8-bit output color sample. Never mutated after creation.
type RGB struct {
	R, G, B uint8
}

// Options carries the color context for one mapping call.
// Saturation and Lightness are percentages (0-100), hues are degrees.
type Options struct {
	HueStart   float64
	HueEnd     float64
	Saturation float64
	Lightness  float64
	Base       RGB

	// Integer cell coordinates, used by the neon mode only.
	CellX int
	CellY int
}

// Map converts a field value in [0,1] to a concrete color.
// Out-of-range values are clamped, never rejected.
func Map(value float64, mode Mode, opt Options) RGB {
	v := clamp01(value)

	switch mode {
	case ModeSingle:
		return opt.Base
	case ModeGreen:
		return RGB{0, uint8(255*v + 0.5), 0}
	case ModeGray:
		g := uint8(255*v + 0.5)
		return RGB{g, g, g}
	case ModeNeon:
		hue := normalizeHue(float64(opt.CellX*29 + opt.CellY*13))
		light := clamp01(opt.Lightness/100 + 0.2*v)
		return fromHSL(hue, opt.Saturation/100, light)
	case ModeRainbow, ModeHeight:
		fallthrough
	default:
		// Raw arithmetic difference may be negative; mod-360
		// normalization handles the wraparound.
		hue := normalizeHue(opt.HueStart + v*(opt.HueEnd-opt.HueStart))
		return fromHSL(hue, opt.Saturation/100, opt.Lightness/100)
	}
}

// Sweep is the rainbow formula with an explicit hue range, used by call
// sites that drive the sweep from a height or grid position instead of a
// generic field value.
func Sweep(v, hueStart, hueEnd, saturation, lightness float64) RGB {
	return Map(v, ModeRainbow, Options{
		HueStart:   hueStart,
		HueEnd:     hueEnd,
		Saturation: saturation,
		Lightness:  lightness,
	})
}

func fromHSL(h, s, l float64) RGB {
	c := colorful.Hsl(h, s, l).Clamped()
	r, g, b := c.RGB255()
	return RGB{r, g, b}
}

// normalizeHue maps any hue to [0,360).
func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
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
