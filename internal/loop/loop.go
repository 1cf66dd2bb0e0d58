package loop

import (
	"context"
	"log"
	"sync/atomic"

	"github.com/olivierh59500/particle-field-go/internal/field"
)

type EventKind int

const (
	PointerMove EventKind = iota
	PointerLeave
	Resize
)

// Event is a host input. Events are applied between frames, never during one.
type Event struct {
	Kind EventKind
	X, Y float64 // PointerMove
	W, H int     // Resize
}

// PointerSource overrides the pointer before every frame. A source that also
// has a Resize(w, h int) method is told about resize events.
type PointerSource interface {
	Pointer(frame uint64) field.Pointer
}

type resizer interface {
	Resize(w, h int)
}

// Loop renders frames of a field on every scheduler tick. Run owns the field:
// the field must not be touched by other goroutines while Run is active.
type Loop struct {
	field  *field.Field
	frames Scheduler
	events chan Event

	pilot      PointerSource
	afterFrame func(field.FrameStats)

	count   atomic.Uint64
	stopped chan struct{}
}

type Option func(*Loop)

// WithPilot drives the pointer from src instead of posted pointer events.
func WithPilot(src PointerSource) Option {
	return func(l *Loop) { l.pilot = src }
}

// WithAfterFrame runs fn after each rendered frame, e.g. to present it.
func WithAfterFrame(fn func(field.FrameStats)) Option {
	return func(l *Loop) { l.afterFrame = fn }
}

// WithQueue sets the event queue capacity.
func WithQueue(n int) Option {
	return func(l *Loop) { l.events = make(chan Event, n) }
}

func New(f *field.Field, s Scheduler, opts ...Option) *Loop {
	l := &Loop{
		field:   f,
		frames:  s,
		stopped: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.events == nil {
		l.events = make(chan Event, 64)
	}
	return l
}

// Post queues an event for the loop. It blocks while the queue is full and
// reports false once Run has returned.
func (l *Loop) Post(ev Event) bool {
	select {
	case l.events <- ev:
		return true
	case <-l.stopped:
		return false
	}
}

// Frames returns the number of frames rendered so far.
func (l *Loop) Frames() uint64 {
	return l.count.Load()
}

// Run renders until ctx is cancelled or the scheduler closes. It returns
// ctx.Err() on cancellation and nil when the scheduler runs dry. A Loop runs
// at most once.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.stopped)
	defer l.frames.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Printf("loop: stopped after %d frames: %v", l.Frames(), ctx.Err())
			return ctx.Err()
		case ev := <-l.events:
			l.apply(ev)
		case _, ok := <-l.frames.C():
			if !ok {
				log.Printf("loop: scheduler closed after %d frames", l.Frames())
				return nil
			}
			l.drain()
			l.render()
		}
	}
}

func (l *Loop) drain() {
	for {
		select {
		case ev := <-l.events:
			l.apply(ev)
		default:
			return
		}
	}
}

func (l *Loop) apply(ev Event) {
	switch ev.Kind {
	case PointerMove:
		if l.pilot == nil {
			l.field.MovePointer(ev.X, ev.Y)
		}
	case PointerLeave:
		if l.pilot == nil {
			l.field.LeavePointer()
		}
	case Resize:
		log.Printf("loop: resize to %dx%d, %d particles", ev.W, ev.H, field.Count(ev.W, ev.H))
		l.field.Resize(ev.W, ev.H)
		if r, ok := l.pilot.(resizer); ok {
			r.Resize(ev.W, ev.H)
		}
	}
}

func (l *Loop) render() {
	n := l.count.Load()
	if l.pilot != nil {
		p := l.pilot.Pointer(n)
		if p.Present {
			l.field.MovePointer(p.X, p.Y)
		} else {
			l.field.LeavePointer()
		}
	}
	stats := l.field.Frame()
	l.count.Store(n + 1)
	if l.afterFrame != nil {
		l.afterFrame(stats)
	}
}
