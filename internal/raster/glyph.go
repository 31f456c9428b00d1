package raster

// Glyph sets, ordered from sparse to dense so rising field intensity
// reads as rising visual weight.
var (
	GlyphsClassic  = []rune(" .,-~:;=!*#$@")
	GlyphsBlocks   = []rune(" ░▒▓█")
	GlyphsDots     = []rune(" ·•●")
	GlyphsBinary   = []rune(" 01")
	GlyphsKatakana = []rune(" ｦｱｳｴｵｶｷｹｺｻｼｽｾｿﾀﾂﾃﾅﾆﾇﾈﾊﾋﾎﾏﾐﾑﾒﾓﾔﾕﾗﾘﾜ")
)

var glyphSets = map[string][]rune{
	"classic":  GlyphsClassic,
	"blocks":   GlyphsBlocks,
	"dots":     GlyphsDots,
	"binary":   GlyphsBinary,
	"katakana": GlyphsKatakana,
}

// GlyphSet resolves a named glyph palette, defaulting to classic.
func GlyphSet(name string) []rune {
	if set, ok := glyphSets[name]; ok {
		return set
	}
	return GlyphsClassic
}

// Adjust applies contrast and brightness to a field value and clamps
// the result back into [0,1].
func Adjust(v, contrast, brightness float64) float64 {
	if contrast == 0 {
		contrast = 1
	}
	v = (v-0.5)*contrast + 0.5 + brightness
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Glyph picks the rune for an adjusted field value.
func Glyph(set []rune, v float64) rune {
	if len(set) == 0 {
		return ' '
	}
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return set[int(v*float64(len(set)-1))]
}
