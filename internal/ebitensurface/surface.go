// Package ebitensurface draws a particle field onto an ebiten screen image.
package ebitensurface

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/olivierh59500/particle-field-go/internal/field"
)

// Surface adapts an *ebiten.Image to field.Surface. The image is rebound
// every frame; calls made while no image is bound are dropped.
type Surface struct {
	img        *ebiten.Image
	w, h       int
	background color.Color
}

func New(background color.Color) *Surface {
	return &Surface{background: background}
}

// Bind points the surface at the image to draw on for this frame.
func (s *Surface) Bind(img *ebiten.Image) {
	s.img = img
}

func (s *Surface) SetSize(w, h int) {
	s.w, s.h = w, h
	if s.img != nil {
		s.img.Fill(s.background)
	}
}

func (s *Surface) ClearRect(x, y, w, h float64) {
	if s.img == nil {
		return
	}
	if x <= 0 && y <= 0 && w >= float64(s.w) && h >= float64(s.h) {
		s.img.Fill(s.background)
		return
	}
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), s.background, false)
}

func (s *Surface) FillCircle(cx, cy, r float64, c color.NRGBA) {
	if s.img == nil {
		return
	}
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(r), c, true)
}

func (s *Surface) StrokeLine(x0, y0, x1, y1 float64, st field.Stroke) {
	if s.img == nil {
		return
	}
	vector.StrokeLine(s.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(st.Width), st.NRGBA(), true)
}
