// Package term maps the effects canvas onto terminal cells with tcell.
// Each cell stands for a block of canvas pixels; translucent colors are
// blended against the background before they reach the terminal.
package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/iburimskiy/retro-effects/internal/effects"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	fillRune = '█'
	dotRune  = '•'
	lineRune = '~'
)

// Surface draws into the top rows of a tcell.Screen. The bottom statusRows
// rows are left to the caller.
type Surface struct {
	screen     tcell.Screen
	canvasW    int
	canvasH    int
	statusRows int
	bg         colorful.Color
	bgStyle    tcell.Style
}

func New(screen tcell.Screen, canvasW, canvasH, statusRows int, bg color.Color) *Surface {
	bgc, _ := colorful.MakeColor(bg)
	return &Surface{
		screen:     screen,
		canvasW:    canvasW,
		canvasH:    canvasH,
		statusRows: statusRows,
		bg:         bgc,
		bgStyle:    tcell.StyleDefault.Background(toTcell(bgc)),
	}
}

// Size reports the logical canvas size, not the terminal size.
func (s *Surface) Size() (int, int) { return s.canvasW, s.canvasH }

// cells returns the drawable grid and the canvas pixels covered by one cell.
func (s *Surface) cells() (cols, rows int, sx, sy float64) {
	cols, rows = s.screen.Size()
	rows -= s.statusRows
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return cols, rows, float64(s.canvasW) / float64(cols), float64(s.canvasH) / float64(rows)
}

func (s *Surface) ClearRect(x, y, w, h float64) {
	cols, rows, sx, sy := s.cells()
	c0, r0 := int(x/sx), int(y/sy)
	c1, r1 := int(math.Ceil((x+w)/sx)), int(math.Ceil((y+h)/sy))
	for r := max(r0, 0); r < min(r1, rows); r++ {
		for c := max(c0, 0); c < min(c1, cols); c++ {
			s.screen.SetContent(c, r, ' ', nil, s.bgStyle)
		}
	}
}

// FillCircle paints every cell whose center falls inside the circle. Circles
// narrower than a cell show up as a single dot in the cell holding the center.
func (s *Surface) FillCircle(cx, cy, r float64, c color.Color) {
	cols, rows, sx, sy := s.cells()
	fg, ok := s.blend(c)
	if !ok {
		return
	}
	style := s.bgStyle.Foreground(fg)

	if 2*r < math.Min(sx, sy) {
		col, row := int(math.Floor(cx/sx)), int(math.Floor(cy/sy))
		if col >= 0 && col < cols && row >= 0 && row < rows {
			s.screen.SetContent(col, row, dotRune, nil, style)
		}
		return
	}

	for row := max(int((cy-r)/sy), 0); row <= min(int((cy+r)/sy), rows-1); row++ {
		for col := max(int((cx-r)/sx), 0); col <= min(int((cx+r)/sx), cols-1); col++ {
			px := (float64(col) + 0.5) * sx
			py := (float64(row) + 0.5) * sy
			if math.Hypot(px-cx, py-cy) <= r {
				s.screen.SetContent(col, row, fillRune, nil, style)
			}
		}
	}
}

func (s *Surface) StrokePolyline(pts []effects.Point, c color.Color) {
	cols, rows, sx, sy := s.cells()
	fg, ok := s.blend(c)
	if !ok {
		return
	}
	style := s.bgStyle.Foreground(fg)
	for _, p := range pts {
		col, row := int(math.Floor(p.X/sx)), int(math.Floor(p.Y/sy))
		if col >= 0 && col < cols && row >= 0 && row < rows {
			s.screen.SetContent(col, row, lineRune, nil, style)
		}
	}
}

// blend composites c over the background. Fully transparent colors report false.
func (s *Surface) blend(c color.Color) (tcell.Color, bool) {
	_, _, _, a := c.RGBA()
	if a == 0 {
		return tcell.ColorDefault, false
	}
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	fg := colorful.Color{R: float64(nc.R) / 255, G: float64(nc.G) / 255, B: float64(nc.B) / 255}
	return toTcell(s.bg.BlendRgb(fg, float64(nc.A)/255)), true
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// DrawStatus writes text on the first status row, padding the rest of the row.
func (s *Surface) DrawStatus(text string) {
	if s.statusRows == 0 {
		return
	}
	cols, rows := s.screen.Size()
	row := rows - s.statusRows
	if row < 0 {
		return
	}
	style := tcell.StyleDefault.Reverse(true)
	runes := []rune(text)
	for col := 0; col < cols; col++ {
		r := ' '
		if col < len(runes) {
			r = runes[col]
		}
		s.screen.SetContent(col, row, r, nil, style)
	}
}
