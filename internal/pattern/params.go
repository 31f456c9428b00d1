package pattern

import (
	"patternforge/internal/colorize"
	"patternforge/internal/field"
	"patternforge/internal/project"
)

// Family identifies which renderer pipeline evaluates a pattern kind.
type Family string

const (
	FamilyGrid   Family = "grid"   // character-grid 3D forms and fields
	FamilyShader Family = "shader" // per-pixel kernels
	FamilyTunnel Family = "tunnel" // radial layer tunnel
	FamilyWave   Family = "wave"   // parametric line field
	FamilyIso    Family = "iso"    // isometric height field
)

// Character-grid pattern kinds.
const (
	KindTorus     = "torus"
	KindCube      = "cube"
	KindSphere    = "sphere"
	KindWaves     = "waves"
	KindSpiral    = "spiral"
	KindVortex    = "vortex"
	KindTerrain   = "terrain"
	KindVoronoi   = "voronoi"
	KindMoire     = "moire"
	KindFractal   = "fractal"
	KindCascade   = "cascade"
	KindRain      = "rain"
	KindStarfield = "starfield"
	KindFire      = "fire"
	KindImage     = "image"
)

// Frame is the per-frame context: elapsed animation seconds plus the
// raster dimensions in pixels. Recomputed every frame, never persisted.
type Frame struct {
	Elapsed float64
	W, H    int
}

// Params is the read-only per-frame snapshot of every numeric knob.
// The host pre-clamps ranges; Sanitize only guards against values that
// could crash a frame (zero divisors, empty counts), never validates.
type Params struct {
	Kind string

	// Character grid
	CellW, CellH int
	GlyphSet     string
	Contrast     float64
	Brightness   float64
	Density      float64

	// Rotation, used by the 3D forms and the isometric grid
	Rot project.Rotation

	// Color model
	ColorMode  colorize.Mode
	HueStart   float64
	HueEnd     float64
	Saturation float64
	Lightness  float64
	Base       colorize.RGB

	// Field synthesis
	Complexity float64
	Speed      float64
	Symmetry   int
	Zoom       float64
	NoiseScale float64

	// Tunnel family
	LayerCount int
	ZoomDir    string // "in" or "out"

	// Wave family
	LineCount int

	// Shader family
	Kernel                 string
	ColorA, ColorB, ColorC colorize.RGB
	Grain                  float64
	Vignette               float64

	// Isometric family
	HeightKind  string
	TileSize    int
	HeightScale float64

	// Image-to-character
	ImagePath  string
	RenderMode string // "brightness", "edges" or "dither"

	// Seed for the stateful kinds' internal randomness
	Seed int64
}

// Default returns parameters that render something sensible for every
// family without any host input.
func Default() Params {
	return Params{
		Kind:        KindTorus,
		CellW:       8,
		CellH:       14,
		GlyphSet:    "classic",
		Contrast:    1,
		Density:     1,
		Rot:         project.Rotation{Auto: true, SpeedX: 40, SpeedY: 25, SpeedZ: 0},
		ColorMode:   colorize.ModeRainbow,
		HueStart:    0,
		HueEnd:      360,
		Saturation:  80,
		Lightness:   60,
		Base:        colorize.RGB{G: 255},
		Complexity:  1,
		Speed:       1,
		Symmetry:    6,
		Zoom:        1,
		NoiseScale:  5,
		LayerCount:  30,
		ZoomDir:     "in",
		LineCount:   40,
		Kernel:      "plasma",
		ColorA:      colorize.RGB{R: 26, G: 10, B: 64},
		ColorB:      colorize.RGB{R: 220, G: 50, B: 120},
		ColorC:      colorize.RGB{R: 255, G: 220, B: 120},
		Grain:       0.04,
		Vignette:    0.35,
		HeightKind:  "terrain",
		TileSize:    24,
		HeightScale: 60,
		RenderMode:  "brightness",
		Seed:        1,
	}
}

// Sanitize substitutes safe values for knobs a frame divides or
// allocates by. It mutates a copy; the host's snapshot stays untouched.
func (p Params) Sanitize() Params {
	if p.CellW < 1 {
		p.CellW = 8
	}
	if p.CellH < 1 {
		p.CellH = 14
	}
	if p.Density <= 0 {
		p.Density = 1
	}
	if p.Contrast == 0 {
		p.Contrast = 1
	}
	if p.Symmetry < 1 {
		p.Symmetry = 1
	}
	if p.LayerCount < 1 {
		p.LayerCount = 1
	}
	if p.LineCount < 1 {
		p.LineCount = 1
	}
	if p.TileSize < 2 {
		p.TileSize = 2
	}
	if p.HeightScale <= 0 {
		p.HeightScale = 60
	}
	return p
}

// FieldParams extracts the knobs the field evaluators consume.
func (p Params) FieldParams() field.Params {
	return field.Params{
		Complexity: p.Complexity,
		Speed:      p.Speed,
		Symmetry:   p.Symmetry,
		Zoom:       p.Zoom,
		NoiseScale: p.NoiseScale,
	}
}

// ColorOptions extracts the color-model context.
func (p Params) ColorOptions() colorize.Options {
	return colorize.Options{
		HueStart:   p.HueStart,
		HueEnd:     p.HueEnd,
		Saturation: p.Saturation,
		Lightness:  p.Lightness,
		Base:       p.Base,
	}
}

// FamilyOf maps a pattern kind to its renderer family. Unknown kinds
// fall back to the grid family, which renders a blank frame rather
// than failing.
func FamilyOf(kind string) Family {
	switch kind {
	case "shader":
		return FamilyShader
	case "tunnel-layers":
		return FamilyTunnel
	case "wave-lines":
		return FamilyWave
	case "isometric":
		return FamilyIso
	default:
		return FamilyGrid
	}
}
