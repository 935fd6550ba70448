package effects

import (
	"image/color"
	"math"
)

type Wave struct {
	Baseline   float64
	Amplitude  float64
	Frequency  float64
	PhaseSpeed float64
	Offset     float64
	Color      color.RGBA
}

// Update advances the phase. Sine is periodic so Offset is never wrapped.
func (w *Wave) Update() {
	w.Offset += w.PhaseSpeed
}

// Points samples one point per pixel column, starting from (0, Baseline).
func (w *Wave) Points(width int) []Point {
	pts := make([]Point, 0, width+1)
	pts = append(pts, Point{X: 0, Y: w.Baseline})
	for x := 0; x < width; x++ {
		fx := float64(x)
		pts = append(pts, Point{X: fx, Y: w.Baseline + w.Amplitude*math.Sin(w.Frequency*fx+w.Offset)})
	}
	return pts
}

func (w *Wave) Draw(s Surface) {
	width, _ := s.Size()
	s.StrokePolyline(w.Points(width), w.Color)
}
