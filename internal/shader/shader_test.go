package shader

import (
	"bytes"
	"math"
	"testing"

	"patternforge/internal/colorize"
	"patternforge/internal/raster"
)

func defaultEnv() Env {
	return Env{T: 1.7, Complexity: 1, Symmetry: 6, Zoom: 1}
}

func TestKernelsStayNormalized(t *testing.T) {
	e := defaultEnv()
	for _, name := range Names() {
		k := Lookup(name)
		for y := -1.0; y <= 1.0; y += 0.13 {
			for x := -1.0; x <= 1.0; x += 0.13 {
				v := k(x, y, e)
				if v < -1e-9 || v > 1+1e-9 {
					t.Errorf("%s(%v,%v) = %v outside [0,1]", name, x, y, v)
				}
			}
		}
	}
}

func TestKernelsDeterministic(t *testing.T) {
	e := defaultEnv()
	for _, name := range Names() {
		k := Lookup(name)
		a := k(0.37, -0.52, e)
		b := k(0.37, -0.52, e)
		if a != b {
			t.Errorf("%s not deterministic: %v vs %v", name, a, b)
		}
	}
}

func TestKernelsFiniteAtOrigin(t *testing.T) {
	e := defaultEnv()
	for _, name := range Names() {
		v := Lookup(name)(0, 0, e)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("%s(0,0) = %v", name, v)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	if Lookup("no-such-kernel") != nil {
		t.Error("unknown name returned a kernel")
	}
}

func TestRampEndpoints(t *testing.T) {
	a := colorize.RGB{R: 10, G: 20, B: 30}
	b := colorize.RGB{R: 120, G: 130, B: 140}
	c := colorize.RGB{R: 250, G: 240, B: 230}

	if got := ramp(0, a, b, c); got != a {
		t.Errorf("ramp(0) = %+v, want first stop %+v", got, a)
	}
	if got := ramp(0.5, a, b, c); got != b {
		t.Errorf("ramp(0.5) = %+v, want middle stop %+v", got, b)
	}
	if got := ramp(1, a, b, c); got != c {
		t.Errorf("ramp(1) = %+v, want last stop %+v", got, c)
	}
	mid := ramp(0.25, a, b, c)
	if mid.R != 65 {
		t.Errorf("ramp(0.25).R = %d, want halfway 65", mid.R)
	}
}

func TestFoldWedgePeriodicity(t *testing.T) {
	const sym = 6
	wedge := 2 * math.Pi / float64(sym)
	for a := -math.Pi; a <= math.Pi; a += 0.07 {
		f0 := fold(a, sym)
		f1 := fold(a+wedge, sym)
		if math.Abs(f0-f1) > 1e-9 {
			t.Fatalf("fold(%v) = %v but fold(+wedge) = %v", a, f0, f1)
		}
		if f0 < 0 || f0 > wedge/2+1e-12 {
			t.Fatalf("fold(%v) = %v outside [0, wedge/2]", a, f0)
		}
	}
}

func TestRenderFillsSurface(t *testing.T) {
	s := raster.NewSurface(64, 48)
	cfg := Config{
		Kernel:     "plasma",
		Complexity: 1,
		Zoom:       1,
		A:          colorize.RGB{R: 26, G: 10, B: 64},
		B:          colorize.RGB{R: 220, G: 50, B: 120},
		C:          colorize.RGB{R: 255, G: 220, B: 120},
	}
	Render(s, 2.0, cfg)

	lit := 0
	for i := 0; i < len(s.Pix); i += 4 {
		if s.Pix[i] != 0 || s.Pix[i+1] != 0 || s.Pix[i+2] != 0 {
			lit++
		}
		if s.Pix[i+3] != 255 {
			t.Fatal("shader wrote a non-opaque pixel")
		}
	}
	if lit < 64*48/2 {
		t.Errorf("only %d of %d pixels lit", lit, 64*48)
	}
}

func TestRenderDeterministicAcrossWorkers(t *testing.T) {
	cfg := Config{Kernel: "kaleido", Complexity: 1, Symmetry: 6, Zoom: 1,
		A: colorize.RGB{}, B: colorize.RGB{R: 128, G: 128, B: 128}, C: colorize.RGB{R: 255, G: 255, B: 255},
		Grain: 0.05, Vignette: 0.3}

	render := func() []uint8 {
		s := raster.NewSurface(80, 60)
		Render(s, 1.5, cfg)
		return s.Pix
	}
	if !bytes.Equal(render(), render()) {
		t.Error("identical renders differ")
	}
}

func TestRenderUnknownKernelFallsBack(t *testing.T) {
	cfg := Config{Complexity: 1, Zoom: 1,
		B: colorize.RGB{R: 100, G: 100, B: 100}, C: colorize.RGB{R: 200, G: 200, B: 200}}

	a := raster.NewSurface(32, 24)
	cfg.Kernel = "no-such-kernel"
	Render(a, 1, cfg)

	b := raster.NewSurface(32, 24)
	cfg.Kernel = "plasma"
	Render(b, 1, cfg)

	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("unknown kernel does not match the plasma fallback")
	}
}

func TestVignetteDarkensCorners(t *testing.T) {
	white := colorize.RGB{R: 255, G: 255, B: 255}
	cfg := Config{Vignette: 0.8}
	center := post(white, 0, 0, 5, 5, cfg)
	corner := post(white, 1, 1, 5, 5, cfg)
	if center != white {
		t.Errorf("vignette dimmed the center: %+v", center)
	}
	if corner.R >= center.R {
		t.Errorf("corner %d not darker than center %d", corner.R, center.R)
	}
}

func TestGrainIsBounded(t *testing.T) {
	gray := colorize.RGB{R: 128, G: 128, B: 128}
	cfg := Config{Grain: 0.1}
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			c := post(gray, 0, 0, x, y, cfg)
			d := int(c.R) - 128
			if d < -8 || d > 8 {
				t.Fatalf("grain shifted a pixel by %d levels", d)
			}
		}
	}
}
