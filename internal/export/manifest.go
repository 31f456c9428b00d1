package export

import (
	"encoding/json"
	"fmt"
	"os"
)

// Manifest describes one finished export run.
type Manifest struct {
	Kind   string   `json:"kind"`
	Kernel string   `json:"kernel,omitempty"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	FPS    float64  `json:"fps"`
	Frames []string `json:"frames"`
}

// WriteManifest writes manifest.json next to the rendered frames.
func WriteManifest(path string, opts Options, results []Result) error {
	m := Manifest{
		Kind:   opts.Params.Kind,
		Kernel: opts.Params.Kernel,
		Width:  opts.Width,
		Height: opts.Height,
		FPS:    opts.FPS,
	}
	for _, r := range results {
		if r.Success {
			m.Frames = append(m.Frames, fmt.Sprintf("%06d.webp", r.Frame))
		}
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
