package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/iburimskiy/retro-effects/internal/config"
	"github.com/iburimskiy/retro-effects/internal/game"
	"github.com/iburimskiy/retro-effects/internal/sfx"
	"github.com/ncruces/zenity"
)

var (
	configFlag = flag.String("config", "", "Path to a YAML config file")
	seedFlag   = flag.Int64("seed", 0, "Random seed (0 = time based)")
	muteFlag   = flag.Bool("mute", false, "Disable mode switch chimes")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var player *sfx.Player
	if cfg.Audio.Enabled && !*muteFlag {
		player = sfx.NewPlayer(cfg.Audio.Volume)
		if err := player.Start(); err != nil {
			// Non-fatal, the demo runs without sound
			log.Printf("[Audio] Warning: %v (continuing muted)", err)
		}
		defer player.Close()
	}

	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.WindowHeight()*cfg.Scale)
	ebiten.SetWindowTitle("Retro Effects - 1/2/3/H or click a button, Esc/Q: Quit")

	g := game.NewGame(cfg, seed, player)
	log.Printf("[Game] Starting %dx%d canvas, seed %d", cfg.Width, cfg.Height, seed)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// fatal logs err, shows it in a dialog when a desktop is available, and
// exits. Only main calls it, after run's deferred cleanup has finished.
func fatal(err error) {
	log.Printf("[Game] Error: %v", err)
	if derr := zenity.Error(err.Error(), zenity.Title("Retro Effects")); derr != nil {
		log.Printf("[Game] Could not show error dialog: %v", derr)
	}
	os.Exit(1)
}
