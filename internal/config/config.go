package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

const (
	CanvasWidth  = 400
	CanvasHeight = 300

	// Button bar below the canvas
	ButtonWidth   = 120
	ButtonHeight  = 40
	ButtonSpacing = 10
	ButtonMargin  = 10

	// Entity parameters
	BallCount      = 10
	BallRadius     = 15
	BallMaxSpeed   = 4
	ParticleCount  = 100
	ParticleDecay  = 0.02
	StarCount      = 50
	WaveCount      = 3
	WaveBaseline   = 100
	WaveSpacing    = 50
	WaveAmplitude  = 20
	WaveFrequency  = 0.02
	WavePhaseSpeed = 0.05
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Width   int  `yaml:"width"`
	Height  int  `yaml:"height"`
	Scale   int  `yaml:"scale"`
	Prewarm bool `yaml:"prewarm"`

	Balls     BallConfig     `yaml:"balls"`
	Particles ParticleConfig `yaml:"particles"`
	Stars     StarConfig     `yaml:"stars"`
	Waves     WaveConfig     `yaml:"waves"`
	Audio     AudioConfig    `yaml:"audio"`

	Background string     `yaml:"background"`
	BgColor    color.RGBA `yaml:"-"`
}

type BallConfig struct {
	Count    int      `yaml:"count"`
	Radius   float64  `yaml:"radius"`
	MaxSpeed float64  `yaml:"maxSpeed"`
	Palette  []string `yaml:"palette"`

	Colors []color.RGBA `yaml:"-"`
}

type ParticleConfig struct {
	Count    int     `yaml:"count"`
	Decay    float64 `yaml:"decay"`
	MinSize  float64 `yaml:"minSize"`
	MaxSize  float64 `yaml:"maxSize"`
	MaxSpeed float64 `yaml:"maxSpeed"`
	Color    string  `yaml:"color"`

	RGBA color.RGBA `yaml:"-"`
}

type StarConfig struct {
	Count    int     `yaml:"count"`
	MaxSize  float64 `yaml:"maxSize"`
	MinSpeed float64 `yaml:"minSpeed"`
	MaxSpeed float64 `yaml:"maxSpeed"`
	Color    string  `yaml:"color"`

	RGBA color.RGBA `yaml:"-"`
}

type WaveConfig struct {
	Count      int     `yaml:"count"`
	Baseline   float64 `yaml:"baseline"`
	Spacing    float64 `yaml:"spacing"`
	Amplitude  float64 `yaml:"amplitude"`
	Frequency  float64 `yaml:"frequency"`
	PhaseSpeed float64 `yaml:"phaseSpeed"`
	Color      string  `yaml:"color"`

	RGBA color.RGBA `yaml:"-"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// Default returns the reference 400x300 setup.
func Default() *Config {
	c := &Config{
		Width:   CanvasWidth,
		Height:  CanvasHeight,
		Scale:   2,
		Prewarm: true,
		Balls: BallConfig{
			Count:    BallCount,
			Radius:   BallRadius,
			MaxSpeed: BallMaxSpeed,
			Palette:  []string{"#ff0000", "#00ff00", "#0000ff", "#ffff00", "#ff00ff", "#00ffff"},
		},
		Particles: ParticleConfig{
			Count:    ParticleCount,
			Decay:    ParticleDecay,
			MinSize:  2,
			MaxSize:  5,
			MaxSpeed: 3,
			Color:    "#ffffff",
		},
		Stars: StarConfig{
			Count:    StarCount,
			MaxSize:  2,
			MinSpeed: 1,
			MaxSpeed: 3,
			Color:    "#ffffff",
		},
		Waves: WaveConfig{
			Count:      WaveCount,
			Baseline:   WaveBaseline,
			Spacing:    WaveSpacing,
			Amplitude:  WaveAmplitude,
			Frequency:  WaveFrequency,
			PhaseSpeed: WavePhaseSpeed,
			Color:      "#00ffff",
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.3,
		},
		Background: "#000000",
	}
	if err := c.resolveColors(); err != nil {
		panic(err)
	}
	return c
}

// Load reads a YAML file on top of the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate rejects values that would make spawning or drawing degenerate and
// parses every hex color.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalid, c.Width, c.Height)
	case c.Scale <= 0:
		return fmt.Errorf("%w: scale %d", ErrInvalid, c.Scale)
	case c.Balls.Count < 0 || c.Particles.Count < 0 || c.Stars.Count < 0 || c.Waves.Count < 0:
		return fmt.Errorf("%w: negative entity count", ErrInvalid)
	case c.Balls.Radius <= 0 || 2*c.Balls.Radius > float64(min(c.Width, c.Height)):
		return fmt.Errorf("%w: ball radius %v does not fit the canvas", ErrInvalid, c.Balls.Radius)
	case c.Balls.MaxSpeed < 0 || c.Particles.MaxSpeed < 0:
		return fmt.Errorf("%w: negative speed", ErrInvalid)
	case len(c.Balls.Palette) == 0:
		return fmt.Errorf("%w: empty ball palette", ErrInvalid)
	case c.Particles.Decay <= 0:
		return fmt.Errorf("%w: particle decay %v", ErrInvalid, c.Particles.Decay)
	case c.Particles.MinSize < 0 || c.Particles.MaxSize < c.Particles.MinSize:
		return fmt.Errorf("%w: particle size range [%v, %v)", ErrInvalid, c.Particles.MinSize, c.Particles.MaxSize)
	case c.Stars.MaxSize < 0:
		return fmt.Errorf("%w: star size %v", ErrInvalid, c.Stars.MaxSize)
	case c.Stars.MinSpeed <= 0 || c.Stars.MaxSpeed < c.Stars.MinSpeed:
		return fmt.Errorf("%w: star speed range [%v, %v)", ErrInvalid, c.Stars.MinSpeed, c.Stars.MaxSpeed)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: volume %v", ErrInvalid, c.Audio.Volume)
	}
	return c.resolveColors()
}

// WindowHeight is the canvas plus the button bar.
func (c *Config) WindowHeight() int {
	return c.Height + ButtonHeight + 2*ButtonMargin
}

func (c *Config) resolveColors() error {
	var err error
	if c.BgColor, err = parseHex(c.Background); err != nil {
		return err
	}
	c.Balls.Colors = c.Balls.Colors[:0]
	for _, h := range c.Balls.Palette {
		rgba, err := parseHex(h)
		if err != nil {
			return err
		}
		c.Balls.Colors = append(c.Balls.Colors, rgba)
	}
	if c.Particles.RGBA, err = parseHex(c.Particles.Color); err != nil {
		return err
	}
	if c.Stars.RGBA, err = parseHex(c.Stars.Color); err != nil {
		return err
	}
	if c.Waves.RGBA, err = parseHex(c.Waves.Color); err != nil {
		return err
	}
	return nil
}

func parseHex(s string) (color.RGBA, error) {
	col, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: color %q: %v", ErrInvalid, s, err)
	}
	r, g, b := col.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
