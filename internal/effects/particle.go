package effects

import (
	"image/color"
	"math/rand"
)

type Particle struct {
	X, Y   float64
	DX, DY float64
	Size   float64
	Life   float64
	Decay  float64
	Color  color.RGBA
}

func NewParticle(rng *rand.Rand, x, y, minSize, maxSize, maxSpeed, decay float64, c color.RGBA) Particle {
	return Particle{
		X:     x,
		Y:     y,
		DX:    (rng.Float64() - 0.5) * 2 * maxSpeed,
		DY:    (rng.Float64() - 0.5) * 2 * maxSpeed,
		Size:  minSize + rng.Float64()*(maxSize-minSize),
		Life:  1,
		Decay: decay,
		Color: c,
	}
}

// Update moves linearly and burns one decay step of life. Particles are not
// bounded by the canvas.
func (p *Particle) Update() {
	p.X += p.DX
	p.Y += p.DY
	p.Life -= p.Decay
}

func (p *Particle) Alive() bool { return p.Life > 0 }

// Draw fades the particle by its remaining life.
func (p *Particle) Draw(s Surface) {
	c := color.NRGBA{R: p.Color.R, G: p.Color.G, B: p.Color.B, A: uint8(clamp01(p.Life) * 255)}
	s.FillCircle(p.X, p.Y, p.Size, c)
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}
