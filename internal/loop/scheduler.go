package loop

import "time"

// Scheduler delivers one tick per frame. A closed channel ends the loop.
type Scheduler interface {
	C() <-chan time.Time
	Stop()
}

// Ticker is a wall-clock Scheduler running at a fixed frame rate.
type Ticker struct {
	t *time.Ticker
}

// NewTicker ticks fps times per second.
func NewTicker(fps int) *Ticker {
	if fps <= 0 {
		fps = 60
	}
	return &Ticker{t: time.NewTicker(time.Second / time.Duration(fps))}
}

func (t *Ticker) C() <-chan time.Time { return t.t.C }
func (t *Ticker) Stop()               { t.t.Stop() }

// Manual is a Scheduler that only ticks when told to.
type Manual struct {
	ch chan time.Time
}

func NewManual() *Manual {
	return &Manual{ch: make(chan time.Time)}
}

// Tick blocks until the loop has taken the tick.
func (m *Manual) Tick() {
	m.ch <- time.Now()
}

// Close ends the loop once it has finished the current frame.
func (m *Manual) Close() {
	close(m.ch)
}

func (m *Manual) C() <-chan time.Time { return m.ch }
func (m *Manual) Stop()               {}
