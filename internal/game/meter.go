package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	meterWidth  = 40
	meterHeight = 4
	meterGain   = 4
)

var meterFrame = color.RGBA{R: 100, G: 110, B: 130, A: 255}

// meterFill maps an RMS level to the filled fraction of the meter.
func meterFill(rms float64) float64 {
	return math.Max(0, math.Min(rms*meterGain, 1))
}

// meterColor runs from green at silence to red at full scale.
func meterColor(fill float64) color.RGBA {
	r, g, b := colorful.Hsv(120*(1-fill), 0.9, 0.9).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// drawLevelMeter shows the chime output level in the top right corner.
func (g *Game) drawLevelMeter(screen *ebiten.Image) {
	if g.player == nil || !g.player.Started() {
		return
	}
	fill := meterFill(g.player.Level())
	x := float32(g.cfg.Width - meterWidth - 4)

	vector.StrokeRect(screen, x, 6, meterWidth, meterHeight, 1, meterFrame, false)
	if fill > 0 {
		vector.DrawFilledRect(screen, x, 6, float32(fill*meterWidth), meterHeight, meterColor(fill), false)
	}
}
