// Package canvassurface draws a particle field through an HTML5-style 2-D
// canvas API (github.com/tfriedel6/canvas).
package canvassurface

import (
	"fmt"
	"image/color"
	"math"

	"github.com/tfriedel6/canvas"

	"github.com/olivierh59500/particle-field-go/internal/field"
)

// Canvas is the subset of *canvas.Canvas the surface needs.
type Canvas interface {
	SetFillStyle(value ...interface{})
	SetStrokeStyle(value ...interface{})
	SetLineWidth(width float64)
	BeginPath()
	Arc(x, y, radius, startAngle, endAngle float64, anticlockwise bool)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Fill()
	Stroke()
	ClearRect(x, y, w, h float64)
	FillRect(x, y, w, h float64)
}

var _ Canvas = (*canvas.Canvas)(nil)

// Surface implements field.Surface on a Canvas.
type Surface struct {
	cv         Canvas
	background string
	hex        map[color.NRGBA]string
}

func New(cv Canvas, background color.NRGBA) *Surface {
	return &Surface{
		cv:         cv,
		background: hexColor(background),
		hex:        make(map[color.NRGBA]string),
	}
}

// SetSize clears the canvas. The canvas itself is sized by its window.
func (s *Surface) SetSize(w, h int) {
	s.ClearRect(0, 0, float64(w), float64(h))
}

func (s *Surface) ClearRect(x, y, w, h float64) {
	s.cv.ClearRect(x, y, w, h)
	s.cv.SetFillStyle(s.background)
	s.cv.FillRect(x, y, w, h)
}

func (s *Surface) FillCircle(cx, cy, r float64, c color.NRGBA) {
	style, ok := s.hex[c]
	if !ok {
		style = hexColor(c)
		s.hex[c] = style
	}
	s.cv.BeginPath()
	s.cv.Arc(cx, cy, r, 0, math.Pi*2, false)
	s.cv.SetFillStyle(style)
	s.cv.Fill()
}

func (s *Surface) StrokeLine(x0, y0, x1, y1 float64, st field.Stroke) {
	s.cv.SetStrokeStyle(rgbaColor(st))
	s.cv.SetLineWidth(st.Width)
	s.cv.BeginPath()
	s.cv.MoveTo(x0, y0)
	s.cv.LineTo(x1, y1)
	s.cv.Stroke()
}

func hexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func rgbaColor(st field.Stroke) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", st.Color.R, st.Color.G, st.Color.B, st.Alpha)
}
