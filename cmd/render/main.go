package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"patternforge/internal/colorize"
	"patternforge/internal/config"
	"patternforge/internal/export"
	"patternforge/internal/field"
	"patternforge/internal/pattern"
	"patternforge/internal/shader"
	"patternforge/internal/source"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	kind := flag.String("kind", "", "Pattern kind (see -list)")
	kernel := flag.String("kernel", "", "Shader kernel name (for -kind shader)")
	width := flag.Int("width", 0, "Frame width in pixels (default: 1280)")
	height := flag.Int("height", 0, "Frame height in pixels (default: 720)")
	frames := flag.Int("frames", 0, "Number of frames to render (default: 300)")
	fps := flag.Float64("fps", 0, "Virtual frame rate (default: 60)")
	outputDir := flag.String("output", "", "Output directory (default: frames)")
	quality := flag.Int("quality", 0, "WebP quality 1-100 (default: 90)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	imagePath := flag.String("image", "", "Input picture for -kind image")
	list := flag.Bool("list", false, "List pattern kinds and kernels, then exit")

	flag.Parse()

	if *list {
		printCatalog()
		return
	}

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	cfg.Resolve(config.Flags{
		OutputDir: *outputDir,
		Kind:      *kind,
		Kernel:    *kernel,
		Width:     *width,
		Height:    *height,
		Frames:    *frames,
		FPS:       *fps,
		Quality:   *quality,
		Workers:   *workers,
		ImagePath: *imagePath,
	})

	params := pattern.Default()
	params.Kind = cfg.Kind
	if cfg.Kernel != "" {
		params.Kernel = cfg.Kernel
	}
	if cfg.ColorMode != "" {
		params.ColorMode = colorize.Mode(cfg.ColorMode)
	}
	if cfg.GlyphSet != "" {
		params.GlyphSet = cfg.GlyphSet
	}
	params.Seed = cfg.Seed

	var src *source.Image
	if cfg.ImagePath != "" {
		var err error
		src, err = source.Load(cfg.ImagePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (rendering placeholder)\n", err)
		}
	}

	opts := export.Options{
		OutputDir:   cfg.OutputDir,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Frames:      cfg.Frames,
		FPS:         cfg.FPS,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
		Params:      params,
		Source:      src,
	}

	mode := ""
	if export.Stateful(params.Kind) {
		mode = " (sequential: stateful pattern)"
	}
	fmt.Printf("patternforge frame renderer → WebP%s\n", mode)
	fmt.Printf("Pattern: %s, Frames: %d @ %.0f fps, Workers: %d\n",
		params.Kind, cfg.Frames, cfg.FPS, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println(strings.Repeat("-", 60))

	start := time.Now()
	results := export.Run(opts)
	elapsed := time.Since(start)

	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	success, failed := 0, 0
	var errors []export.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}
	fmt.Printf("Rendered: %d/%d\n", success, len(results))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  frame %d: %s\n", e.Frame, e.Error)
		}
	}

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	os.MkdirAll(cfg.OutputDir, 0755)
	if err := export.WriteManifest(manifestPath, opts, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func printCatalog() {
	fmt.Println("Character-grid kinds:")
	fmt.Println("  torus cube sphere cascade rain starfield fire image")
	fmt.Printf("  field-driven: %s\n", strings.Join(field.Names(), " "))
	fmt.Println("Pixel families:")
	fmt.Printf("  shader (kernels: %s)\n", strings.Join(shader.Names(), " "))
	fmt.Println("  tunnel-layers wave-lines isometric")
	fmt.Printf("Isometric height kinds: %s\n", strings.Join(pattern.HeightKinds(), " "))
}
