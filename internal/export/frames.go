package export

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"patternforge/internal/engine"
	"patternforge/internal/pattern"
	"patternforge/internal/source"

	"github.com/HugoSmits86/nativewebp"
)

// Options holds all shared resources for one export run.
type Options struct {
	OutputDir   string
	Width       int
	Height      int
	Frames      int
	FPS         float64
	Supersample int
	Workers     int
	Params      pattern.Params
	Source      *source.Image
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	Path    string
	Success bool
	Error   string
}

// Run renders every frame to a numbered WebP file. Stateless kinds are
// re-evaluable at any t, so frames are distributed over a worker pool,
// one renderer per worker. Stateful kinds depend on frame order and
// render sequentially on a single renderer.
func Run(opts Options) []Result {
	total := opts.Frames
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, float64(p)/elapsed)
				}
			}
		}
	}()

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	if Stateful(opts.Params.Kind) {
		workers = 1
	}

	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r := newRenderer(opts)
			for idx := range frameChan {
				results[idx] = renderFrame(r, opts, idx)
				processed.Add(1)
			}
		}()
	}

	for i := 0; i < total; i++ {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

// Stateful reports whether a pattern kind carries cross-frame state and
// therefore cannot be rendered out of order.
func Stateful(kind string) bool {
	switch kind {
	case pattern.KindCascade, pattern.KindRain, pattern.KindStarfield, pattern.KindFire:
		return true
	}
	return false
}

func newRenderer(opts Options) *engine.Renderer {
	ss := opts.Supersample
	if ss < 1 {
		ss = 1
	}
	r := engine.New(opts.Width*ss, opts.Height*ss)
	r.SetSource(opts.Source)
	return r
}

func renderFrame(r *engine.Renderer, opts Options, idx int) Result {
	t := float64(idx) / opts.FPS
	r.RenderFrame(t, opts.Params)

	img := r.Surface().Image()
	if opts.Supersample > 1 {
		img = Downsample(img, opts.Width, opts.Height)
	}

	outPath := filepath.Join(opts.OutputDir, fmt.Sprintf("%06d.webp", idx))
	if err := writeWebP(outPath, img); err != nil {
		return Result{Frame: idx, Path: outPath, Error: err.Error()}
	}
	return Result{Frame: idx, Path: outPath, Success: true}
}

func writeWebP(path string, img *image.NRGBA) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fmt.Errorf("WebP encode: %w", err)
	}
	return nil
}
