package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "effects.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	c := Default()

	if c.Width != 400 || c.Height != 300 {
		t.Errorf("canvas = %dx%d, want 400x300", c.Width, c.Height)
	}
	if c.Balls.Count != 10 || c.Balls.Radius != 15 {
		t.Errorf("balls = %d r=%v, want 10 r=15", c.Balls.Count, c.Balls.Radius)
	}
	if c.Particles.Count != 100 || c.Particles.Decay != 0.02 {
		t.Errorf("particles = %d decay=%v, want 100 decay=0.02", c.Particles.Count, c.Particles.Decay)
	}
	if c.Stars.Count != 50 || c.Waves.Count != 3 {
		t.Errorf("stars=%d waves=%d, want 50 and 3", c.Stars.Count, c.Waves.Count)
	}
	if len(c.Balls.Colors) != 6 {
		t.Fatalf("palette colors = %d, want 6", len(c.Balls.Colors))
	}
	if c.Balls.Colors[0] != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("first palette color = %v, want red", c.Balls.Colors[0])
	}
	if c.Waves.RGBA != (color.RGBA{G: 255, B: 255, A: 255}) {
		t.Errorf("wave color = %v, want cyan", c.Waves.RGBA)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Default().Validate() error: %v", err)
	}
	if c.WindowHeight() != 360 {
		t.Errorf("WindowHeight() = %d, want 360", c.WindowHeight())
	}
}

func TestLoadEmptyPath(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if c.Balls.Count != BallCount {
		t.Errorf("balls = %d, want default", c.Balls.Count)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
width: 640
height: 480
balls:
  count: 3
  palette: ["#123456"]
waves:
  color: "#ff8800"
`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if c.Width != 640 || c.Height != 480 {
		t.Errorf("canvas = %dx%d, want 640x480", c.Width, c.Height)
	}
	if c.Balls.Count != 3 || c.Balls.Radius != BallRadius {
		t.Errorf("balls = %d r=%v, want 3 with default radius", c.Balls.Count, c.Balls.Radius)
	}
	if len(c.Balls.Colors) != 1 || c.Balls.Colors[0] != (color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 255}) {
		t.Errorf("palette = %v, want [#123456]", c.Balls.Colors)
	}
	if c.Waves.RGBA != (color.RGBA{R: 0xff, G: 0x88, A: 255}) {
		t.Errorf("wave color = %v, want #ff8800", c.Waves.RGBA)
	}
	if c.Stars.Count != StarCount {
		t.Errorf("stars = %d, want default %d", c.Stars.Count, StarCount)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		invalid bool
	}{
		{"bad yaml", "width: [", false},
		{"zero width", "width: 0", true},
		{"radius too big", "balls: {radius: 200}", true},
		{"empty palette", "balls: {palette: []}", true},
		{"bad color", "waves: {color: \"cyan\"}", true},
		{"zero decay", "particles: {decay: 0}", true},
		{"inverted star speed", "stars: {minSpeed: 3, maxSpeed: 1}", true},
		{"zero star speed", "stars: {minSpeed: 0}", true},
		{"loud", "audio: {volume: 2}", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("Load() error = nil")
			}
			if got := errors.Is(err, ErrInvalid); got != tt.invalid {
				t.Errorf("errors.Is(err, ErrInvalid) = %v, want %v (err: %v)", got, tt.invalid, err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want os.ErrNotExist", err)
	}
}

func TestShippedConfigMatchesDefaults(t *testing.T) {
	c, err := Load("../../configs/default.yaml")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	d := Default()
	if c.Width != d.Width || c.Height != d.Height || c.Balls.Count != d.Balls.Count ||
		c.Particles.Decay != d.Particles.Decay || c.Waves.Spacing != d.Waves.Spacing {
		t.Errorf("shipped config drifted from defaults: %+v", c)
	}
}
