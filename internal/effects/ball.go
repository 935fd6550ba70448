package effects

import (
	"image/color"
	"math/rand"
)

type Ball struct {
	X, Y   float64
	DX, DY float64
	Radius float64
	Color  color.RGBA
}

// NewBall places a ball uniformly inside the canvas with a random velocity in
// [-maxSpeed, maxSpeed) on each axis.
func NewBall(rng *rand.Rand, w, h int, radius, maxSpeed float64, palette []color.RGBA) Ball {
	return Ball{
		X:      radius + rng.Float64()*(float64(w)-2*radius),
		Y:      radius + rng.Float64()*(float64(h)-2*radius),
		DX:     (rng.Float64() - 0.5) * 2 * maxSpeed,
		DY:     (rng.Float64() - 0.5) * 2 * maxSpeed,
		Radius: radius,
		Color:  palette[rng.Intn(len(palette))],
	}
}

// Update reflects each velocity component whose next step would push an edge
// out of the canvas, then moves. Axes are checked independently, x first.
func (b *Ball) Update(w, h int) {
	b.DX = bounce(b.X, b.DX, b.Radius, float64(w))
	b.DY = bounce(b.Y, b.DY, b.Radius, float64(h))
	b.X = clamp(b.X+b.DX, b.Radius, float64(w)-b.Radius)
	b.Y = clamp(b.Y+b.DY, b.Radius, float64(h)-b.Radius)
}

func (b *Ball) Draw(s Surface) {
	s.FillCircle(b.X, b.Y, b.Radius, b.Color)
}

func bounce(pos, vel, r, limit float64) float64 {
	next := pos + vel
	if next+r > limit || next-r < 0 {
		return -vel
	}
	return vel
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
