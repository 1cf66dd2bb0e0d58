package field

import "image/color"

// Circle is a FillCircle call captured by Recorder.
type Circle struct {
	X, Y, R float64
	Color   color.NRGBA
}

// Line is a StrokeLine call captured by Recorder.
type Line struct {
	X0, Y0, X1, Y1 float64
	Stroke         Stroke
}

// Recorder is a Surface that keeps every draw call since the last clear.
// Tests use it to inspect frames.
type Recorder struct {
	Width, Height int
	Circles       []Circle
	Lines         []Line
	Clears        int
}

func (r *Recorder) SetSize(w, h int) {
	r.Width, r.Height = w, h
	r.reset()
}

// ClearRect drops recorded calls when it covers the whole surface.
func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.Clears++
	if x <= 0 && y <= 0 && w >= float64(r.Width) && h >= float64(r.Height) {
		r.reset()
	}
}

func (r *Recorder) FillCircle(cx, cy, rad float64, c color.NRGBA) {
	r.Circles = append(r.Circles, Circle{X: cx, Y: cy, R: rad, Color: c})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1 float64, st Stroke) {
	r.Lines = append(r.Lines, Line{X0: x0, Y0: y0, X1: x1, Y1: y1, Stroke: st})
}

func (r *Recorder) reset() {
	r.Circles = r.Circles[:0]
	r.Lines = r.Lines[:0]
}
