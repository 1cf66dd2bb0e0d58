package field

import (
	"image/color"
	"math"

	"github.com/olivierh59500/particle-field-go/internal/config"
)

// Pointer is the last known cursor position. Present is false once the
// cursor has left the viewport.
type Pointer struct {
	X, Y    float64
	Present bool
}

// Particle is one simulated point.
type Particle struct {
	X, Y           float64 // Position
	SpeedX, SpeedY float64 // Velocity, pixels per frame
	Size           float64 // Current radius

	baseSize float64
	color    color.NRGBA
}

// NewParticle creates a particle whose base radius is size.
func NewParticle(x, y, speedX, speedY, size float64, c color.NRGBA) *Particle {
	return &Particle{
		X:        x,
		Y:        y,
		SpeedX:   speedX,
		SpeedY:   speedY,
		Size:     size,
		baseSize: size,
		color:    c,
	}
}

func (p *Particle) BaseSize() float64  { return p.baseSize }
func (p *Particle) Color() color.NRGBA { return p.color }

// Update advances the particle one frame inside a w×h canvas.
func (p *Particle) Update(w, h float64, ptr Pointer) {
	p.X += p.SpeedX
	p.Y += p.SpeedY

	// Bounce, not clamp: an overshoot is corrected by the next step.
	if p.X > w || p.X < 0 {
		p.SpeedX = -p.SpeedX
	}
	if p.Y > h || p.Y < 0 {
		p.SpeedY = -p.SpeedY
	}

	// An absent pointer leaves Size as it was.
	if !ptr.Present {
		return
	}

	dx := ptr.X - p.X
	dy := ptr.Y - p.Y
	d := math.Sqrt(dx*dx + dy*dy)
	if d < config.InteractionRadius {
		p.Size = p.baseSize * config.GrowthFactor
		if d < config.InteractionRadius/2 {
			p.X -= dx / 20
			p.Y -= dy / 20
		}
		return
	}
	if p.Size > p.baseSize {
		p.Size -= config.DecayStep
		if p.Size < p.baseSize {
			p.Size = p.baseSize
		}
	}
}

// Draw paints the particle as a filled circle.
func (p *Particle) Draw(s Surface) {
	s.FillCircle(p.X, p.Y, p.Size, p.color)
}
