package pattern

import (
	"testing"

	"patternforge/internal/colorize"
	"patternforge/internal/field"
	"patternforge/internal/raster"
)

func surfaceHasPixels(s *raster.Surface) bool {
	for i := 0; i < len(s.Pix); i += 4 {
		if s.Pix[i] != 0 || s.Pix[i+1] != 0 || s.Pix[i+2] != 0 {
			return true
		}
	}
	return false
}

func TestRenderWaveLinesDrawsSomething(t *testing.T) {
	s := raster.NewSurface(160, 120)
	p := Default()
	p.LineCount = 10
	RenderWaveLines(s, Frame{Elapsed: 1.2, W: 160, H: 120}, p)
	if !surfaceHasPixels(s) {
		t.Error("wave frame is entirely black")
	}
}

func TestRenderTunnelDrawsSomething(t *testing.T) {
	s := raster.NewSurface(160, 120)
	p := Default()
	RenderTunnel(s, Frame{Elapsed: 3, W: 160, H: 120}, p)
	if !surfaceHasPixels(s) {
		t.Error("tunnel frame is entirely black")
	}
}

func TestRenderIsoDrawsSomething(t *testing.T) {
	s := raster.NewSurface(200, 150)
	p := Default()
	for _, kind := range HeightKinds() {
		p.HeightKind = kind
		RenderIso(s, Frame{Elapsed: 2, W: 200, H: 150}, p)
		if !surfaceHasPixels(s) {
			t.Errorf("%s iso frame is entirely black", kind)
		}
	}
}

func TestRenderIsoUnknownHeightKind(t *testing.T) {
	s := raster.NewSurface(120, 90)
	p := Default()
	p.HeightKind = "no-such-height"
	RenderIso(s, Frame{Elapsed: 0, W: 120, H: 90}, p)
	if !surfaceHasPixels(s) {
		t.Error("fallback height field rendered nothing")
	}
}

func TestHeightFuncsStayNormalized(t *testing.T) {
	fp := field.Params{Complexity: 1, Speed: 1, Symmetry: 1, Zoom: 1, NoiseScale: 5}
	for name, fn := range heightFuncs {
		for _, tt := range []float64{0, 0.5, 3.7, 100} {
			for u := 0.0; u <= 1.0; u += 0.1 {
				for v := 0.0; v <= 1.0; v += 0.1 {
					h := fn(u, v, tt, fp)
					if h < 0 || h > 1 {
						t.Fatalf("%s(%v,%v,t=%v) = %v outside [0,1]", name, u, v, tt, h)
					}
				}
			}
		}
	}
}

func TestRenderFieldGridSkipsSpaceGlyphs(t *testing.T) {
	g := raster.NewCellGrid(320, 280, 8, 14)
	p := Default()
	p.Kind = KindWaves
	RenderFieldGrid(g, field.Waves, Frame{Elapsed: 1, W: 320, H: 280}, p)

	drawn := 0
	for i, r := range g.Runes {
		if r == ' ' {
			if (g.Color[i] != colorize.RGB{}) {
				t.Fatal("skipped cell carries a color")
			}
			continue
		}
		drawn++
	}
	if drawn == 0 {
		t.Error("field grid rendered no glyphs")
	}
}
