// Package effects holds the four animated entity types, the mode state
// machine that switches between them, and the per-frame tick.
//
// Nothing in here knows how pixels reach a screen. Every backend (ebiten
// window, raster image, terminal) implements Surface and hands it to
// State.Tick once per frame.
package effects

import "image/color"

type Point struct {
	X, Y float64
}

// Surface is a fixed-size drawing target. Drawing never fails.
type Surface interface {
	Size() (width, height int)
	ClearRect(x, y, w, h float64)
	FillCircle(cx, cy, r float64, c color.Color)
	StrokePolyline(pts []Point, c color.Color)
}
