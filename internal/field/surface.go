package field

import (
	"image/color"
	"math"
)

// Surface is the 2-D drawing target the field renders onto.
type Surface interface {
	// SetSize redimensions the surface. Content is cleared.
	SetSize(w, h int)
	ClearRect(x, y, w, h float64)
	FillCircle(cx, cy, r float64, c color.NRGBA)
	StrokeLine(x0, y0, x1, y1 float64, st Stroke)
}

// Stroke is a line style: an opaque base color, a fractional alpha and a width.
type Stroke struct {
	Color color.NRGBA
	Alpha float64
	Width float64
}

// NRGBA folds Alpha into the color's alpha channel.
func (s Stroke) NRGBA() color.NRGBA {
	a := s.Alpha
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	c := s.Color
	c.A = uint8(math.Round(a * 255))
	return c
}
