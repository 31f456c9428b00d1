package main

import (
	"flag"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"patternforge/internal/clock"
	"patternforge/internal/colorize"
	"patternforge/internal/engine"
	"patternforge/internal/pattern"
	"patternforge/internal/source"
)

// Kinds cycled by the 'n' key, all character-grid patterns.
var liveKinds = []string{
	pattern.KindTorus, pattern.KindCube, pattern.KindSphere,
	pattern.KindWaves, pattern.KindSpiral, pattern.KindVortex,
	pattern.KindTerrain, pattern.KindVoronoi, pattern.KindMoire,
	pattern.KindFractal, pattern.KindCascade, pattern.KindRain,
	pattern.KindStarfield, pattern.KindFire,
}

func main() {
	kind := flag.String("kind", pattern.KindTorus, "Initial pattern kind")
	imagePath := flag.String("image", "", "Input picture for the image kind")
	fpsFlag := flag.Float64("fps", 60, "Refresh rate")
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.HideCursor()

	params := pattern.Default()
	params.Kind = *kind
	// One terminal cell per grid cell.
	params.CellW, params.CellH = 1, 1
	kindIdx := 0
	for i, k := range liveKinds {
		if k == *kind {
			kindIdx = i
		}
	}

	cols, rows := screen.Size()
	var mu sync.Mutex
	renderer := engine.New(cols, rows)

	if *imagePath != "" {
		if src, err := source.Load(*imagePath); err == nil {
			renderer.SetSource(src)
			params.Kind = pattern.KindImage
		}
	}

	cl := clock.New()
	sched := clock.NewScheduler(cl, time.Duration(float64(time.Second)/(*fpsFlag)), func(elapsed float64) {
		mu.Lock()
		g := renderer.RenderGrid(elapsed, params)
		for row := 0; row < g.Rows; row++ {
			for col := 0; col < g.Cols; col++ {
				i := row*g.Cols + col
				style := tcell.StyleDefault.Foreground(toTcell(g.Color[i]))
				screen.SetContent(col, row, g.Runes[i], nil, style)
			}
		}
		mu.Unlock()
		screen.Show()
	})
	sched.Start()
	defer sched.Stop()

	paused := false
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			// Resize barrier: every transient buffer is rebuilt for
			// the new grid before the next frame evaluates.
			w, h := ev.Size()
			mu.Lock()
			renderer.Resize(w, h)
			mu.Unlock()
			screen.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
				return
			case ev.Rune() == ' ':
				if paused {
					sched.Resume()
				} else {
					sched.Pause()
				}
				paused = !paused
			case ev.Rune() == 'n':
				mu.Lock()
				kindIdx = (kindIdx + 1) % len(liveKinds)
				params.Kind = liveKinds[kindIdx]
				mu.Unlock()
			}
		}
	}
}

func toTcell(c colorize.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
