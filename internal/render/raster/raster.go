// Package raster draws effects into an in-memory RGBA image with
// golang.org/x/image/vector. It backs the snapshot tool and pixel tests.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/iburimskiy/retro-effects/internal/effects"
	"golang.org/x/image/vector"
)

type Surface struct {
	img *image.RGBA
	bg  *image.Uniform
	z   *vector.Rasterizer
}

func New(width, height int, bg color.Color) *Surface {
	return &Surface{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		bg:  image.NewUniform(bg),
		z:   vector.NewRasterizer(1, 1),
	}
}

func (s *Surface) Image() *image.RGBA { return s.img }

func (s *Surface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Surface) ClearRect(x, y, w, h float64) {
	r := image.Rect(int(math.Floor(x)), int(math.Floor(y)), int(math.Ceil(x+w)), int(math.Ceil(y+h)))
	draw.Draw(s.img, r.Intersect(s.img.Bounds()), s.bg, image.Point{}, draw.Src)
}

func (s *Surface) FillCircle(cx, cy, r float64, c color.Color) {
	if r <= 0 {
		return
	}
	rect, ok := s.clip(cx-r, cy-r, cx+r, cy+r)
	if !ok {
		return
	}
	ox, oy := float64(rect.Min.X), float64(rect.Min.Y)

	segments := max(12, int(r*4))
	s.z.Reset(rect.Dx(), rect.Dy())
	s.z.DrawOp = draw.Over
	for i := 0; i <= segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		px := float32(cx + r*math.Cos(a) - ox)
		py := float32(cy + r*math.Sin(a) - oy)
		if i == 0 {
			s.z.MoveTo(px, py)
		} else {
			s.z.LineTo(px, py)
		}
	}
	s.z.ClosePath()
	s.z.Draw(s.img, rect, image.NewUniform(c), image.Point{})
}

// StrokePolyline draws a one pixel wide line through pts. Each segment is
// rasterized as a thin quad; overlapping joints saturate rather than blend
// twice because the whole line is a single path.
func (s *Surface) StrokePolyline(pts []effects.Point, c color.Color) {
	if len(pts) < 2 {
		return
	}
	const half = 0.5

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	rect, ok := s.clip(minX-1, minY-1, maxX+1, maxY+1)
	if !ok {
		return
	}
	ox, oy := float64(rect.Min.X), float64(rect.Min.Y)

	s.z.Reset(rect.Dx(), rect.Dy())
	s.z.DrawOp = draw.Over
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		dx, dy := b.X-a.X, b.Y-a.Y
		l := math.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		nx, ny := -dy/l*half, dx/l*half
		s.z.MoveTo(float32(a.X+nx-ox), float32(a.Y+ny-oy))
		s.z.LineTo(float32(b.X+nx-ox), float32(b.Y+ny-oy))
		s.z.LineTo(float32(b.X-nx-ox), float32(b.Y-ny-oy))
		s.z.LineTo(float32(a.X-nx-ox), float32(a.Y-ny-oy))
		s.z.ClosePath()
	}
	s.z.Draw(s.img, rect, image.NewUniform(c), image.Point{})
}

func (s *Surface) clip(x0, y0, x1, y1 float64) (image.Rectangle, bool) {
	r := image.Rect(int(math.Floor(x0)), int(math.Floor(y0)), int(math.Ceil(x1)), int(math.Ceil(y1)))
	r = r.Intersect(s.img.Bounds())
	return r, !r.Empty()
}

// WritePNG encodes the current frame.
func (s *Surface) WritePNG(w io.Writer) error {
	if err := png.Encode(w, s.img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// SavePNG writes the current frame to path.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := s.WritePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
