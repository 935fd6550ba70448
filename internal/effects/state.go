package effects

import (
	"math/rand"

	"github.com/iburimskiy/retro-effects/internal/config"
)

// State is everything the render loop and the trigger handler share. It is
// owned by a single goroutine; none of its methods are safe for concurrent use.
type State struct {
	cfg      *config.Config
	rng      *rand.Rand
	registry *Registry

	mode      Mode
	balls     []Ball
	particles []Particle
	stars     []Star
	waves     []Wave

	frames uint64
}

type Stats struct {
	Mode      Mode
	Balls     int
	Particles int
	Stars     int
	Waves     int
	Frames    uint64
}

// Active is the number of entities the current mode animates.
func (s Stats) Active() int {
	switch s.Mode {
	case ModeParticles:
		return s.Particles
	case ModeStarfield:
		return s.Stars
	case ModeWaves:
		return s.Waves
	default:
		return s.Balls
	}
}

// New creates the balls and starts in bouncing mode. With cfg.Prewarm the
// star and wave collections are filled as well; they are reset on the first
// trigger anyway.
func New(cfg *config.Config, rng *rand.Rand, registry *Registry) *State {
	if registry == nil {
		registry = DefaultRegistry()
	}
	s := &State{
		cfg:      cfg,
		rng:      rng,
		registry: registry,
		mode:     ModeBouncing,
		balls:    make([]Ball, 0, cfg.Balls.Count),
	}
	for i := 0; i < cfg.Balls.Count; i++ {
		s.balls = append(s.balls, NewBall(rng, cfg.Width, cfg.Height, cfg.Balls.Radius, cfg.Balls.MaxSpeed, cfg.Balls.Colors))
	}
	if cfg.Prewarm {
		s.populate(ModeStarfield)
		s.populate(ModeWaves)
	}
	return s
}

func (s *State) Mode() Mode { return s.mode }

func (s *State) Registry() *Registry { return s.registry }

// The collection accessors return the live slices. Tick updates them in
// place; Trigger replaces them, leaving earlier results untouched.

func (s *State) Balls() []Ball         { return s.balls }
func (s *State) Particles() []Particle { return s.particles }
func (s *State) Stars() []Star         { return s.stars }
func (s *State) Waves() []Wave         { return s.waves }

func (s *State) Stats() Stats {
	return Stats{
		Mode:      s.mode,
		Balls:     len(s.balls),
		Particles: len(s.particles),
		Stars:     len(s.stars),
		Waves:     len(s.waves),
		Frames:    s.frames,
	}
}

// Trigger switches to the mode bound to label. Unknown labels change nothing
// and report false. A known label always starts particles, stars and waves
// from fresh empty slices before filling the target mode, so repeating a
// trigger never accumulates.
func (s *State) Trigger(label string) bool {
	m, ok := s.registry.Lookup(label)
	if !ok {
		return false
	}
	s.particles = nil
	s.stars = nil
	s.waves = nil
	s.mode = m
	s.populate(m)
	return true
}

func (s *State) populate(m Mode) {
	cfg := s.cfg
	switch m {
	case ModeParticles:
		cx, cy := float64(cfg.Width)/2, float64(cfg.Height)/2
		for i := 0; i < cfg.Particles.Count; i++ {
			s.particles = append(s.particles, NewParticle(s.rng, cx, cy,
				cfg.Particles.MinSize, cfg.Particles.MaxSize, cfg.Particles.MaxSpeed,
				cfg.Particles.Decay, cfg.Particles.RGBA))
		}
	case ModeStarfield:
		for i := 0; i < cfg.Stars.Count; i++ {
			s.stars = append(s.stars, NewStar(s.rng, cfg.Width, cfg.Height,
				cfg.Stars.MaxSize, cfg.Stars.MinSpeed, cfg.Stars.MaxSpeed, cfg.Stars.RGBA))
		}
	case ModeWaves:
		for i := 0; i < cfg.Waves.Count; i++ {
			s.waves = append(s.waves, Wave{
				Baseline:   cfg.Waves.Baseline + float64(i)*cfg.Waves.Spacing,
				Amplitude:  cfg.Waves.Amplitude,
				Frequency:  cfg.Waves.Frequency,
				PhaseSpeed: cfg.Waves.PhaseSpeed,
				Color:      cfg.Waves.RGBA,
			})
		}
	}
}

// Tick renders one frame: clear the whole surface, then advance and draw the
// active mode only.
func (s *State) Tick(surf Surface) {
	w, h := s.cfg.Width, s.cfg.Height
	surf.ClearRect(0, 0, float64(w), float64(h))

	switch s.mode {
	case ModeBouncing:
		for i := range s.balls {
			s.balls[i].Update(w, h)
			s.balls[i].Draw(surf)
		}
	case ModeParticles:
		live := s.particles[:0]
		for _, p := range s.particles {
			if p.Alive() {
				live = append(live, p)
			}
		}
		s.particles = live
		for i := range s.particles {
			s.particles[i].Update()
			s.particles[i].Draw(surf)
		}
	case ModeStarfield:
		for i := range s.stars {
			s.stars[i].Update(s.rng, w, h)
			s.stars[i].Draw(surf)
		}
	case ModeWaves:
		for i := range s.waves {
			s.waves[i].Update()
			s.waves[i].Draw(surf)
		}
	}
	s.frames++
}
