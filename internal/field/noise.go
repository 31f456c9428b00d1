package field

import "math"

// hash2 returns a deterministic pseudo-random value in [0,1) for an
// integer lattice point. No RNG state — the same point always hashes
// to the same value.
func hash2(x, y int32) float64 {
	h := uint32(x)*374761393 + uint32(y)*668265263
	h = (h ^ (h >> 13)) * 1274126177
	h ^= h >> 16
	return float64(h) / float64(math.MaxUint32)
}

// smooth is the C1 fade curve applied to lattice interpolation weights.
func smooth(t float64) float64 {
	return t * t * (3 - 2*t)
}

// ValueNoise samples smoothed lattice noise at (x, y), range [0,1).
func ValueNoise(x, y float64) float64 {
	fx := math.Floor(x)
	fy := math.Floor(y)
	ix := int32(fx)
	iy := int32(fy)

	tx := smooth(x - fx)
	ty := smooth(y - fy)

	n00 := hash2(ix, iy)
	n10 := hash2(ix+1, iy)
	n01 := hash2(ix, iy+1)
	n11 := hash2(ix+1, iy+1)

	top := n00 + (n10-n00)*tx
	bot := n01 + (n11-n01)*tx
	return top + (bot-top)*ty
}

// FBM sums octaves of ValueNoise, each at half the amplitude and double
// the frequency of the previous. Result is normalized back into [0,1].
func FBM(x, y float64, octaves int) float64 {
	if octaves < 1 {
		octaves = 1
	}
	sum := 0.0
	amp := 0.5
	freq := 1.0
	norm := 0.0
	for i := 0; i < octaves; i++ {
		sum += amp * ValueNoise(x*freq, y*freq)
		norm += amp
		amp *= 0.5
		freq *= 2
	}
	return sum / norm
}
