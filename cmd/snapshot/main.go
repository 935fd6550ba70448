// Command snapshot renders effect frames headlessly to PNG files.
//
// Usage:
//
//	go run ./cmd/snapshot --mode "Cool Links" --frames 120 --every 30 --out frames/
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/iburimskiy/retro-effects/internal/config"
	"github.com/iburimskiy/retro-effects/internal/effects"
	"github.com/iburimskiy/retro-effects/internal/render/raster"
	"github.com/iburimskiy/retro-effects/internal/runner"
)

var (
	configFlag = flag.String("config", "", "Path to a YAML config file")
	modeFlag   = flag.String("mode", "", "Trigger label to fire before rendering (empty = bouncing)")
	framesFlag = flag.Int("frames", 60, "Number of frames to render")
	everyFlag  = flag.Int("every", 10, "Write every Nth frame")
	outFlag    = flag.String("out", "frames", "Output directory")
	seedFlag   = flag.Int64("seed", 1, "Random seed")
)

func main() {
	flag.Parse()
	n, err := render(*configFlag, *modeFlag, *outFlag, *framesFlag, *everyFlag, *seedFlag)
	if err != nil {
		log.Printf("[Snapshot] Error: %v", err)
		os.Exit(1)
	}
	log.Printf("[Snapshot] Wrote %d frames to %s", n, *outFlag)
}

// render returns the number of PNG files written.
func render(configPath, label, outDir string, frames, every int, seed int64) (int, error) {
	if every <= 0 {
		return 0, fmt.Errorf("every must be positive, got %d", every)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create output dir: %w", err)
	}

	state := effects.New(cfg, rand.New(rand.NewSource(seed)), nil)
	if label != "" && !state.Trigger(label) {
		log.Printf("[Snapshot] Warning: unknown label %q, staying in %s", label, state.Mode())
	}
	surface := raster.New(cfg.Width, cfg.Height, cfg.BgColor)

	written := 0
	err = runner.Frames(frames, func(frame uint64) error {
		state.Tick(surface)
		if int(frame)%every != 0 {
			return nil
		}
		name := filepath.Join(outDir, fmt.Sprintf("%s-%04d.png", state.Mode(), frame))
		if err := surface.SavePNG(name); err != nil {
			return err
		}
		written++
		return nil
	})
	return written, err
}
