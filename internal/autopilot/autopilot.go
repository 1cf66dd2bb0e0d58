// Package autopilot moves a synthetic pointer across the field so the
// interaction can be seen without a mouse, e.g. on an unattended display.
package autopilot

import (
	"github.com/aquilax/go-perlin"

	"github.com/olivierh59500/particle-field-go/internal/field"
)

const (
	Alpha   = 2.0
	Beta    = 2.0
	Octaves = 3

	Step = 0.004 // noise units per frame

	// The pointer leaves the viewport for Gap frames at the end of every Cycle.
	Cycle = 900
	Gap   = 180
)

// Pilot is a noise-driven pointer path.
type Pilot struct {
	noise         *perlin.Perlin
	width, height float64
}

func New(w, h int, seed int64) *Pilot {
	p := &Pilot{noise: perlin.NewPerlin(Alpha, Beta, Octaves, seed)}
	p.Resize(w, h)
	return p
}

// Resize rescales the path to a new viewport.
func (p *Pilot) Resize(w, h int) {
	p.width, p.height = float64(w), float64(h)
}

// Pointer returns the pointer position for the given frame.
func (p *Pilot) Pointer(frame uint64) field.Pointer {
	if frame%Cycle >= Cycle-Gap {
		return field.Pointer{}
	}
	t := float64(frame)*Step + 0.5
	nx := p.noise.Noise2D(t, 1.7)
	ny := p.noise.Noise2D(3.1, t)
	return field.Pointer{
		X:       clamp(p.width*(0.5+nx), 0, p.width),
		Y:       clamp(p.height*(0.5+ny), 0, p.height),
		Present: true,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
