// Package termsurface rasterizes a particle field onto a terminal cell grid.
//
// The field still simulates in pixel units: every cell stands for a
// CellW×CellH block of pixels, so the population and connection distances
// match what a window of the same pixel size would show.
package termsurface

import (
	"errors"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/olivierh59500/particle-field-go/internal/field"
)

const (
	CellW = 8
	CellH = 16
)

const (
	lineGlyph = '·'
)

type cellKind uint8

const (
	cellEmpty cellKind = iota
	cellLine
	cellParticle
)

type cell struct {
	kind  cellKind
	alpha float64
}

// Surface implements field.Surface on a tcell.Screen.
type Surface struct {
	screen     tcell.Screen
	cols, rows int
	cells      []cell

	bg      colorful.Color
	bgStyle tcell.Style
}

var ErrNoScreen = errors.New("termsurface: no screen")

func New(screen tcell.Screen, background color.NRGBA) (*Surface, error) {
	if screen == nil {
		return nil, ErrNoScreen
	}
	bg, _ := colorful.MakeColor(background)
	return &Surface{
		screen:  screen,
		bg:      bg,
		bgStyle: tcell.StyleDefault.Background(tcellColor(bg)),
	}, nil
}

// PixelSize returns the canvas size in pixels for a cols×rows terminal.
func PixelSize(cols, rows int) (w, h int) {
	return cols * CellW, rows * CellH
}

// CellCenter returns the pixel position at the middle of a cell.
func CellCenter(col, row int) (x, y float64) {
	return float64(col*CellW) + CellW/2, float64(row*CellH) + CellH/2
}

// Show presents the frame.
func (s *Surface) Show() {
	s.screen.Show()
}

func (s *Surface) SetSize(w, h int) {
	s.cols, s.rows = w/CellW, h/CellH
	s.cells = make([]cell, s.cols*s.rows)
	s.screen.Fill(' ', s.bgStyle)
}

func (s *Surface) ClearRect(x, y, w, h float64) {
	c0, r0 := s.cellOf(x, y)
	c1, r1 := s.cellOf(x+w, y+h)
	if c0 <= 0 && r0 <= 0 && c1 >= s.cols && r1 >= s.rows {
		clear(s.cells)
		s.screen.Fill(' ', s.bgStyle)
		return
	}
	for row := max(r0, 0); row < min(r1, s.rows); row++ {
		for col := max(c0, 0); col < min(c1, s.cols); col++ {
			s.cells[row*s.cols+col] = cell{}
			s.screen.SetContent(col, row, ' ', nil, s.bgStyle)
		}
	}
}

func (s *Surface) FillCircle(cx, cy, r float64, c color.NRGBA) {
	col, row := s.cellOf(cx, cy)
	if !s.inside(col, row) {
		return
	}
	s.cells[row*s.cols+col] = cell{kind: cellParticle, alpha: 1}
	fg := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	s.screen.SetContent(col, row, particleGlyph(r), nil, s.bgStyle.Foreground(fg))
}

// StrokeLine walks the cells between the endpoints. Particles are never
// overdrawn and a faint line never replaces a stronger one.
func (s *Surface) StrokeLine(x0, y0, x1, y1 float64, st field.Stroke) {
	lc, _ := colorful.MakeColor(color.NRGBA{R: st.Color.R, G: st.Color.G, B: st.Color.B, A: 255})
	style := s.bgStyle.Foreground(tcellColor(s.bg.BlendRgb(lc, st.Alpha)))

	c0, r0 := s.cellOf(x0, y0)
	c1, r1 := s.cellOf(x1, y1)
	walk(c0, r0, c1, r1, func(col, row int) {
		if !s.inside(col, row) {
			return
		}
		i := row*s.cols + col
		if s.cells[i].kind == cellParticle || s.cells[i].alpha >= st.Alpha {
			return
		}
		s.cells[i] = cell{kind: cellLine, alpha: st.Alpha}
		s.screen.SetContent(col, row, lineGlyph, nil, style)
	})
}

func (s *Surface) cellOf(x, y float64) (int, int) {
	return floorDiv(x, CellW), floorDiv(y, CellH)
}

func (s *Surface) inside(col, row int) bool {
	return col >= 0 && row >= 0 && col < s.cols && row < s.rows
}

func floorDiv(v float64, n int) int {
	return int(math.Floor(v / float64(n)))
}

func particleGlyph(r float64) rune {
	switch {
	case r < 2:
		return '∙'
	case r < 4:
		return '•'
	default:
		return '●'
	}
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// walk visits every cell on the Bresenham line from (c0, r0) to (c1, r1).
func walk(c0, r0, c1, r1 int, visit func(col, row int)) {
	dc := abs(c1 - c0)
	dr := -abs(r1 - r0)
	sc, sr := 1, 1
	if c0 > c1 {
		sc = -1
	}
	if r0 > r1 {
		sr = -1
	}
	e := dc + dr
	for {
		visit(c0, r0)
		if c0 == c1 && r0 == r1 {
			return
		}
		e2 := 2 * e
		if e2 >= dr {
			e += dr
			c0 += sc
		}
		if e2 <= dc {
			e += dc
			r0 += sr
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
