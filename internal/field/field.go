package field

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand"
	"reflect"
	"time"

	"github.com/olivierh59500/particle-field-go/internal/config"
)

// ErrNoSurface is returned by New when no drawing surface is available.
var ErrNoSurface = errors.New("field: no drawing surface")

// Field owns the particle population, the pointer state and the surface
// they are drawn on. It is not safe for concurrent use; hosts drive it from
// a single goroutine.
type Field struct {
	surface Surface
	rng     *rand.Rand
	palette []color.NRGBA
	dim     float64

	width, height float64
	particles     []*Particle
	pointer       Pointer
}

// Option configures a Field.
type Option func(*Field)

// WithRand sets the random source used to build populations.
func WithRand(rng *rand.Rand) Option {
	return func(f *Field) { f.rng = rng }
}

// WithSeed seeds a fresh random source.
func WithSeed(seed int64) Option {
	return func(f *Field) { f.rng = rand.New(rand.NewSource(seed)) }
}

// WithDim sets the connection line opacity multiplier.
func WithDim(k float64) Option {
	return func(f *Field) { f.dim = k }
}

// WithPalette overrides the particle colors.
func WithPalette(p []color.NRGBA) Option {
	return func(f *Field) { f.palette = p }
}

// New creates an empty field drawing onto s. Call Resize to populate it.
// A nil s, or a nil pointer wrapped in the interface, yields ErrNoSurface.
func New(s Surface, opts ...Option) (*Field, error) {
	if isNil(s) {
		return nil, ErrNoSurface
	}
	f := &Field{
		surface: s,
		dim:     config.DimFull,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.rng == nil {
		f.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if len(f.palette) == 0 {
		p, err := config.Palette()
		if err != nil {
			return nil, fmt.Errorf("field: %w", err)
		}
		f.palette = p
	}
	return f, nil
}

func isNil(s Surface) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Count returns the population size for a w×h canvas.
func Count(w, h int) int {
	if w <= 0 || h <= 0 {
		return 0
	}
	return min(w*h/config.DensityDivisor, config.MaxParticles)
}

// Initialize discards every particle and builds a new population for a
// w×h canvas.
func (f *Field) Initialize(w, h int) {
	f.width, f.height = float64(w), float64(h)
	n := Count(w, h)
	f.particles = make([]*Particle, 0, n)
	for range n {
		f.particles = append(f.particles, f.spawn())
	}
}

// Resize redimensions the surface, which clears it, and rebuilds the
// population. Particle state is not carried over.
func (f *Field) Resize(w, h int) {
	f.surface.SetSize(w, h)
	f.Initialize(w, h)
}

func (f *Field) spawn() *Particle {
	return NewParticle(
		f.rng.Float64()*f.width,
		f.rng.Float64()*f.height,
		config.MinSpeed+f.rng.Float64()*(config.MaxSpeed-config.MinSpeed),
		config.MinSpeed+f.rng.Float64()*(config.MaxSpeed-config.MinSpeed),
		config.MinSize+f.rng.Float64()*(config.MaxSize-config.MinSize),
		f.palette[f.rng.Intn(len(f.palette))],
	)
}

// MovePointer records the cursor at (x, y).
func (f *Field) MovePointer(x, y float64) {
	f.pointer = Pointer{X: x, Y: y, Present: true}
}

// LeavePointer marks the cursor as gone from the viewport.
func (f *Field) LeavePointer() {
	f.pointer = Pointer{}
}

func (f *Field) Pointer() Pointer       { return f.pointer }
func (f *Field) Particles() []*Particle { return f.particles }
func (f *Field) Size() (w, h float64)   { return f.width, f.height }
func (f *Field) Dim() float64           { return f.dim }

// FrameStats describes the work done by one Frame.
type FrameStats struct {
	Particles int
	Pairs     int
	Lines     int
}

// Frame renders one animation frame: clear, update and draw every
// particle in order, then connect neighbours.
func (f *Field) Frame() FrameStats {
	f.surface.ClearRect(0, 0, f.width, f.height)
	for _, p := range f.particles {
		p.Update(f.width, f.height, f.pointer)
		p.Draw(f.surface)
	}
	pairs, lines := connect(f.surface, f.particles, f.dim)
	return FrameStats{Particles: len(f.particles), Pairs: pairs, Lines: lines}
}
