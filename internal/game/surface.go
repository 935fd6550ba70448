package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/iburimskiy/retro-effects/internal/effects"
)

// canvasSurface adapts an offscreen ebiten image to effects.Surface.
type canvasSurface struct {
	img *ebiten.Image
	bg  color.Color
}

func (s *canvasSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *canvasSurface) ClearRect(x, y, w, h float64) {
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), s.bg, false)
}

func (s *canvasSurface) FillCircle(cx, cy, r float64, c color.Color) {
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(r), c, true)
}

func (s *canvasSurface) StrokePolyline(pts []effects.Point, c color.Color) {
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		vector.StrokeLine(s.img, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, c, true)
	}
}
