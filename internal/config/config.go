package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds all configurable output and render settings.
type Config struct {
	// Output
	OutputDir   string `json:"output_dir"`
	WebPQuality int    `json:"webp_quality"`

	// Frame geometry and timing
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Frames      int     `json:"frames"`
	FPS         float64 `json:"fps"`
	Supersample int     `json:"supersample"`
	Workers     int     `json:"workers"`

	// Pattern selection
	Kind      string `json:"kind"`
	Kernel    string `json:"kernel"`
	ColorMode string `json:"color_mode"`
	GlyphSet  string `json:"glyph_set"`
	ImagePath string `json:"image_path"`
	Seed      int64  `json:"seed"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir string
	Kind      string
	Kernel    string
	Width     int
	Height    int
	Frames    int
	FPS       float64
	Quality   int
	Workers   int
	ImagePath string
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Kind != "" {
		c.Kind = flags.Kind
	}
	if flags.Kernel != "" {
		c.Kernel = flags.Kernel
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.FPS > 0 {
		c.FPS = flags.FPS
	}
	if flags.Quality > 0 {
		c.WebPQuality = flags.Quality
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.ImagePath != "" {
		c.ImagePath = flags.ImagePath
	}

	// Defaults for anything still unset
	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	if c.WebPQuality <= 0 {
		c.WebPQuality = 90
	}
	if c.Width <= 0 {
		c.Width = 1280
	}
	if c.Height <= 0 {
		c.Height = 720
	}
	if c.Frames <= 0 {
		c.Frames = 300
	}
	if c.FPS <= 0 {
		c.FPS = 60
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Kind == "" {
		c.Kind = "torus"
	}
	if c.Seed == 0 {
		c.Seed = 1
	}
}
