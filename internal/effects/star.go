package effects

import (
	"image/color"
	"math/rand"
)

type Star struct {
	X, Y  float64
	Size  float64
	Speed float64
	Color color.RGBA
}

func NewStar(rng *rand.Rand, w, h int, maxSize, minSpeed, maxSpeed float64, c color.RGBA) Star {
	return Star{
		X:     rng.Float64() * float64(w),
		Y:     rng.Float64() * float64(h),
		Size:  rng.Float64() * maxSize,
		Speed: minSpeed + rng.Float64()*(maxSpeed-minSpeed),
		Color: c,
	}
}

// Update falls by Speed. A star that reaches the bottom edge restarts at the
// top in a new column, so y is always in [0, h) afterwards.
func (s *Star) Update(rng *rand.Rand, w, h int) {
	s.Y += s.Speed
	if s.Y >= float64(h) {
		s.Y = 0
		s.X = rng.Float64() * float64(w)
	}
}

func (s *Star) Draw(surf Surface) {
	surf.FillCircle(s.X, s.Y, s.Size, s.Color)
}
