// Command effects-term runs the effects in a terminal.
//
// Usage:
//
//	go run ./cmd/effects-term [flags]
//
// Flags:
//
//	--config <path>   YAML config file
//	--seed <n>        Random seed (0 = time based)
//	--fps <n>         Frames per second (default 30)
//
// Controls:
//
//	1 / 2 / 3   Enter Site / Guestbook / Cool Links
//	H           Home (bouncing balls)
//	Q / Esc     Quit
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/iburimskiy/retro-effects/internal/config"
	"github.com/iburimskiy/retro-effects/internal/effects"
	"github.com/iburimskiy/retro-effects/internal/render/term"
	"github.com/iburimskiy/retro-effects/internal/runner"
)

var (
	configFlag = flag.String("config", "", "Path to a YAML config file")
	seedFlag   = flag.Int64("seed", 0, "Random seed (0 = time based)")
	fpsFlag    = flag.Int("fps", 30, "Frames per second")
)

var runeLabels = map[rune]string{
	'1': effects.LabelEnterSite,
	'2': effects.LabelGuestbook,
	'3': effects.LabelCoolLinks,
	'h': effects.LabelHome,
	'H': effects.LabelHome,
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Printf("[Term] Error: %v", err)
		os.Exit(1)
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

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	state := effects.New(cfg, rand.New(rand.NewSource(seed)), nil)
	surface := term.New(screen, cfg.Width, cfg.Height, 1, cfg.BgColor)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// tcell delivers events on its own goroutine; forward only the labels so
	// the state is touched from the render loop alone.
	labels := make(chan string, 16)
	go pollEvents(screen, labels, cancel)

	err = runner.Run(ctx, *fpsFlag, func(uint64) error {
	drain:
		for {
			select {
			case l := <-labels:
				state.Trigger(l)
			default:
				break drain
			}
		}
		state.Tick(surface)
		st := state.Stats()
		surface.DrawStatus(fmt.Sprintf(" %s x%d | 1 Enter Site  2 Guestbook  3 Cool Links  H Home  Q Quit", st.Mode, st.Active()))
		screen.Show()
		return nil
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func pollEvents(screen tcell.Screen, labels chan<- string, quit context.CancelFunc) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' || ev.Rune() == 'Q' {
				quit()
				return
			}
			if l, ok := runeLabels[ev.Rune()]; ok {
				select {
				case labels <- l:
				default:
				}
			}
		}
	}
}
