package effects

import (
	"image/color"
	"math"
	"math/rand"
	"testing"
)

func TestBallStaysInsideCanvas(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	palette := []color.RGBA{{R: 255, A: 255}}

	tests := []struct {
		name     string
		w, h     int
		radius   float64
		maxSpeed float64
	}{
		{"reference", 400, 300, 15, 4},
		{"fast", 400, 300, 15, 40},
		{"tight", 40, 32, 15, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balls := make([]Ball, 20)
			for i := range balls {
				balls[i] = NewBall(rng, tt.w, tt.h, tt.radius, tt.maxSpeed, palette)
			}
			for step := 0; step < 2000; step++ {
				for i := range balls {
					b := &balls[i]
					b.Update(tt.w, tt.h)
					if b.X < b.Radius || b.X > float64(tt.w)-b.Radius {
						t.Fatalf("step %d: ball %d x=%v outside [%v, %v]", step, i, b.X, b.Radius, float64(tt.w)-b.Radius)
					}
					if b.Y < b.Radius || b.Y > float64(tt.h)-b.Radius {
						t.Fatalf("step %d: ball %d y=%v outside [%v, %v]", step, i, b.Y, b.Radius, float64(tt.h)-b.Radius)
					}
				}
			}
		})
	}
}

func TestBallReflectsBothAxesInOneStep(t *testing.T) {
	b := Ball{X: 383, Y: 283, DX: 4, DY: 3, Radius: 15}
	b.Update(400, 300)

	if b.DX != -4 || b.DY != -3 {
		t.Errorf("velocity = (%v, %v), want (-4, -3)", b.DX, b.DY)
	}
	if b.X != 379 || b.Y != 280 {
		t.Errorf("position = (%v, %v), want (379, 280)", b.X, b.Y)
	}
}

func TestBallUpdateDoesNotDraw(t *testing.T) {
	b := Ball{X: 100, Y: 100, DX: 1, DY: 1, Radius: 15}
	surf := newRecordingSurface(400, 300)
	b.Update(400, 300)
	if len(surf.circles) != 0 {
		t.Fatalf("Update drew %d circles", len(surf.circles))
	}
	b.Draw(surf)
	if len(surf.circles) != 1 {
		t.Fatalf("Draw drew %d circles, want 1", len(surf.circles))
	}
}

func TestParticleLifeDecay(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	p := NewParticle(rng, 200, 150, 2, 5, 3, 0.02, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	if p.Life != 1 {
		t.Fatalf("initial life = %v, want 1", p.Life)
	}
	if p.Size < 2 || p.Size >= 5 {
		t.Errorf("size = %v, want in [2, 5)", p.Size)
	}

	prev := p.Life
	steps := 0
	for p.Alive() {
		p.Update()
		steps++
		if d := prev - p.Life; math.Abs(d-0.02) > 1e-12 {
			t.Fatalf("step %d: life dropped by %v, want 0.02", steps, d)
		}
		prev = p.Life
	}
	// 1 / 0.02 lands on (or just past) zero after 50 or 51 steps in float64
	if steps < 50 || steps > 51 {
		t.Errorf("particle lived %d steps, want 50 or 51", steps)
	}
}

func TestParticleDrawFadesWithLife(t *testing.T) {
	p := Particle{X: 1, Y: 2, Size: 3, Life: 0.5, Color: color.RGBA{R: 255, G: 255, B: 255, A: 255}}
	surf := newRecordingSurface(400, 300)
	p.Draw(surf)

	c, ok := surf.circles[0].C.(color.NRGBA)
	if !ok {
		t.Fatalf("color type %T, want color.NRGBA", surf.circles[0].C)
	}
	if c.A != 127 {
		t.Errorf("alpha = %d, want 127", c.A)
	}

	p.Life = -0.01
	p.Draw(surf)
	if c := surf.circles[1].C.(color.NRGBA); c.A != 0 {
		t.Errorf("alpha for dead particle = %d, want 0", c.A)
	}
}

func TestParticleIgnoresBounds(t *testing.T) {
	p := Particle{X: 399, Y: 1, DX: 3, DY: -3, Life: 1, Decay: 0.02}
	p.Update()
	if p.X != 402 || p.Y != -2 {
		t.Errorf("position = (%v, %v), want (402, -2)", p.X, p.Y)
	}
}

func TestStarWrapsToTop(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	stars := make([]Star, 50)
	for i := range stars {
		stars[i] = NewStar(rng, 400, 300, 2, 1, 3, color.RGBA{A: 255})
	}

	wrapped := 0
	for step := 0; step < 1000; step++ {
		for i := range stars {
			before := stars[i].Y
			stars[i].Update(rng, 400, 300)
			y := stars[i].Y
			if y < 0 || y >= 300 {
				t.Fatalf("step %d: star %d y=%v outside [0, 300)", step, i, y)
			}
			if y < before {
				wrapped++
				if y != 0 {
					t.Fatalf("wrapped star y=%v, want 0", y)
				}
			}
		}
	}
	if wrapped == 0 {
		t.Error("no star wrapped in 1000 steps")
	}
}

func TestStarWrapsOnExactEdge(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	s := Star{X: 10, Y: 298, Speed: 2}
	s.Update(rng, 400, 300)
	if s.Y != 0 {
		t.Errorf("Y = %v, want 0", s.Y)
	}
	if s.X < 0 || s.X >= 400 {
		t.Errorf("X = %v, want in [0, 400)", s.X)
	}
}

func TestWavePoints(t *testing.T) {
	w := Wave{Baseline: 100, Amplitude: 20, Frequency: 0.02, PhaseSpeed: 0.05}
	pts := w.Points(400)

	if len(pts) != 401 {
		t.Fatalf("len(points) = %d, want 401", len(pts))
	}
	if pts[0] != (Point{X: 0, Y: 100}) {
		t.Errorf("start point = %+v, want (0, 100)", pts[0])
	}
	for x := 0; x < 400; x++ {
		want := 100 + 20*math.Sin(0.02*float64(x))
		if got := pts[x+1]; got.X != float64(x) || math.Abs(got.Y-want) > 1e-9 {
			t.Fatalf("point %d = %+v, want (%d, %v)", x, got, x, want)
		}
	}
}

func TestWaveDeterministic(t *testing.T) {
	a := Wave{Baseline: 150, Amplitude: 20, Frequency: 0.02, PhaseSpeed: 0.05}
	b := a
	for i := 0; i < 37; i++ {
		a.Update()
		b.Update()
	}

	sa, sb := newRecordingSurface(400, 300), newRecordingSurface(400, 300)
	a.Draw(sa)
	b.Draw(sb)

	pa, pb := sa.polylines[0], sb.polylines[0]
	if len(pa) != len(pb) {
		t.Fatalf("polyline lengths differ: %d vs %d", len(pa), len(pb))
	}
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("point %d differs: %+v vs %+v", i, pa[i], pb[i])
		}
	}
}

func TestWaveUpdateAdvancesOffset(t *testing.T) {
	w := Wave{PhaseSpeed: 0.05}
	for i := 0; i < 4; i++ {
		w.Update()
	}
	if math.Abs(w.Offset-0.2) > 1e-12 {
		t.Errorf("Offset = %v, want 0.2", w.Offset)
	}
}
