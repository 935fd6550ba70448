package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/iburimskiy/retro-effects/internal/config"
)

// debug font glyph size
const (
	glyphWidth  = 6
	glyphHeight = 16
)

type button struct {
	label   string
	rect    image.Rectangle
	hovered bool
	pressed bool
}

// layoutButtons spreads one button per label evenly along a bar starting at y.
func layoutButtons(labels []string, width, y int) []*button {
	n := len(labels)
	if n == 0 {
		return nil
	}
	w := min(config.ButtonWidth, (width-(n+1)*config.ButtonSpacing)/n)
	total := n*w + (n-1)*config.ButtonSpacing
	x := (width - total) / 2

	buttons := make([]*button, 0, n)
	for _, l := range labels {
		buttons = append(buttons, &button{
			label: l,
			rect:  image.Rect(x, y, x+w, y+config.ButtonHeight),
		})
		x += w + config.ButtonSpacing
	}
	return buttons
}

func (b *button) contains(x, y int) bool {
	return image.Pt(x, y).In(b.rect)
}

// track updates hover state and reports a click on release over the button
// it was pressed on.
func (b *button) track(mx, my int, justPressed, justReleased bool) bool {
	b.hovered = b.contains(mx, my)
	if b.hovered && justPressed {
		b.pressed = true
	}
	clicked := false
	if justReleased {
		clicked = b.pressed && b.hovered
		b.pressed = false
	}
	return clicked
}

func (b *button) draw(screen *ebiten.Image, active bool) {
	var bgColor color.Color
	switch {
	case b.pressed:
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255}
	case b.hovered:
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	default:
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	}

	x, y := float32(b.rect.Min.X), float32(b.rect.Min.Y)
	w, h := float32(b.rect.Dx()), float32(b.rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bgColor, false)

	borderColor := color.RGBA{R: 150, G: 170, B: 200, A: 255}
	if active {
		borderColor = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	}
	vector.StrokeRect(screen, x, y, w, h, 2, borderColor, false)

	textX := b.rect.Min.X + (b.rect.Dx()-len(b.label)*glyphWidth)/2
	textY := b.rect.Min.Y + (b.rect.Dy()-glyphHeight)/2
	ebitenutil.DebugPrintAt(screen, b.label, textX, textY)
}
