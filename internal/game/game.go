// Package game runs the effects in an ebiten window. Ebiten calls Update once
// per tick, which plays the role of the browser's animation frame: each call
// handles pending triggers, renders exactly one effects frame into an
// offscreen canvas and returns, and ebiten schedules the next one.
package game

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/iburimskiy/retro-effects/internal/config"
	"github.com/iburimskiy/retro-effects/internal/effects"
	"github.com/iburimskiy/retro-effects/internal/sfx"
)

// Chime pitch per mode, G4 C5 E5 G5.
var modeChimes = map[effects.Mode]float64{
	effects.ModeBouncing:  392.00,
	effects.ModeParticles: 523.25,
	effects.ModeStarfield: 659.25,
	effects.ModeWaves:     783.99,
}

type shortcut struct {
	key   ebiten.Key
	label string
}

// Keyboard shortcuts, in addition to the buttons. When several go down in the
// same frame they fire in this order, so the last one wins.
var shortcuts = []shortcut{
	{ebiten.KeyDigit1, effects.LabelEnterSite},
	{ebiten.KeyDigit2, effects.LabelGuestbook},
	{ebiten.KeyDigit3, effects.LabelCoolLinks},
	{ebiten.KeyH, effects.LabelHome},
}

type Game struct {
	cfg     *config.Config
	state   *effects.State
	player  *sfx.Player
	buttons []*button

	canvas  *ebiten.Image
	surface *canvasSurface

	// input edge detection
	prevKey map[ebiten.Key]bool

	started time.Time
	now     func() time.Time
}

// NewGame builds the state with the given seed. player may be nil for a
// silent game.
func NewGame(cfg *config.Config, seed int64, player *sfx.Player) *Game {
	state := effects.New(cfg, rand.New(rand.NewSource(seed)), nil)
	g := &Game{
		cfg:     cfg,
		state:   state,
		player:  player,
		buttons: layoutButtons(state.Registry().Labels(), cfg.Width, cfg.Height+config.ButtonMargin),
		prevKey: map[ebiten.Key]bool{},
		now:     time.Now,
	}
	g.started = g.now()
	return g
}

func (g *Game) State() *effects.State { return g.state }

// Trigger forwards label to the mode switch handler. Unknown labels are
// ignored silently.
func (g *Game) Trigger(label string) bool {
	if !g.state.Trigger(label) {
		return false
	}
	mode := g.state.Mode()
	log.Printf("[Game] %q -> %s (%d entities)", label, mode, g.state.Stats().Active())
	if g.player != nil {
		g.player.Chime(modeChimes[mode])
	}
	return true
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	mouseX, mouseY := ebiten.CursorPosition()
	down := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	up := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	for _, b := range g.buttons {
		if b.track(mouseX, mouseY, down, up) {
			g.Trigger(b.label)
		}
	}

	for _, label := range pressedLabels(justPressed) {
		g.Trigger(label)
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if g.canvas == nil {
		g.canvas = ebiten.NewImage(g.cfg.Width, g.cfg.Height)
		g.surface = &canvasSurface{img: g.canvas, bg: g.cfg.BgColor}
	}
	g.state.Tick(g.surface)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 20, G: 22, B: 30, A: 255})
	if g.canvas != nil {
		screen.DrawImage(g.canvas, nil)
	}

	mode := g.state.Mode()
	for _, b := range g.buttons {
		m, _ := g.state.Registry().Lookup(b.label)
		b.draw(screen, m == mode)
	}

	ebitenutil.DebugPrintAt(screen, g.hudText(), 4, 2)
	g.drawLevelMeter(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.WindowHeight()
}

func (g *Game) hudText() string {
	st := g.state.Stats()
	up := g.now().Sub(g.started)
	return fmt.Sprintf("%s  x%d  %02d:%02d", st.Mode, st.Active(), int(up.Minutes()), int(up.Seconds())%60)
}

// pressedLabels returns the labels of the shortcuts that went down this
// frame, in shortcut order. justPressed is called once for every shortcut so
// edge state stays current for all keys.
func pressedLabels(justPressed func(ebiten.Key) bool) []string {
	var labels []string
	for _, sc := range shortcuts {
		if justPressed(sc.key) {
			labels = append(labels, sc.label)
		}
	}
	return labels
}
