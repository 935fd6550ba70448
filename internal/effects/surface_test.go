package effects

import "image/color"

type circleCall struct {
	X, Y, R float64
	C       color.Color
}

// recordingSurface captures draw calls for one frame at a time.
type recordingSurface struct {
	w, h      int
	clears    int
	circles   []circleCall
	polylines [][]Point
}

func newRecordingSurface(w, h int) *recordingSurface {
	return &recordingSurface{w: w, h: h}
}

func (r *recordingSurface) Size() (int, int) { return r.w, r.h }

func (r *recordingSurface) ClearRect(x, y, w, h float64) {
	r.clears++
	r.circles = r.circles[:0]
	r.polylines = r.polylines[:0]
}

func (r *recordingSurface) FillCircle(cx, cy, rad float64, c color.Color) {
	r.circles = append(r.circles, circleCall{X: cx, Y: cy, R: rad, C: c})
}

func (r *recordingSurface) StrokePolyline(pts []Point, c color.Color) {
	cp := make([]Point, len(pts))
	copy(cp, pts)
	r.polylines = append(r.polylines, cp)
}
