package field

import (
	"image/color"
	"math"
	"math/rand"
	"testing"
)

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

func TestUpdateIntegratesPosition(t *testing.T) {
	p := NewParticle(10, 20, 0.25, -0.5, 1, white)
	p.Update(800, 600, Pointer{})
	if p.X != 10.25 || p.Y != 19.5 {
		t.Errorf("position = (%v, %v), want (10.25, 19.5)", p.X, p.Y)
	}
}

func TestUpdateReflectsAtBounds(t *testing.T) {
	tests := []struct {
		name           string
		x, y, sx, sy   float64
		wantSX, wantSY float64
	}{
		{"right edge", 800, 300, 0.3, 0, -0.3, 0},
		{"left edge", 0, 300, -0.2, 0, 0.2, 0},
		{"bottom edge", 400, 600, 0, 0.4, 0, -0.4},
		{"top edge", 400, 0, 0, -0.1, 0, 0.1},
		{"corner", 800, 600, 0.5, 0.5, -0.5, -0.5},
		{"inside", 400, 300, 0.5, -0.5, 0.5, -0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParticle(tt.x, tt.y, tt.sx, tt.sy, 1, white)
			p.Update(800, 600, Pointer{})
			if p.SpeedX != tt.wantSX || p.SpeedY != tt.wantSY {
				t.Errorf("speed = (%v, %v), want (%v, %v)", p.SpeedX, p.SpeedY, tt.wantSX, tt.wantSY)
			}
		})
	}
}

func TestUpdateOvershootIsBoundedByOneStep(t *testing.T) {
	p := NewParticle(800, 300, 0.25, 0, 1, white)

	p.Update(800, 600, Pointer{})
	if p.X <= 800 {
		t.Fatalf("X = %v, expected a one-step overshoot past 800", p.X)
	}
	if over := p.X - 800; over > 0.25 {
		t.Errorf("overshoot = %v, want <= 0.25", over)
	}

	p.Update(800, 600, Pointer{})
	if p.X > 800 {
		t.Errorf("X = %v after the reflected step, want <= 800", p.X)
	}
	if p.SpeedX != -0.25 {
		t.Errorf("SpeedX = %v, want -0.25 (no second flip)", p.SpeedX)
	}
}

func TestUpdateGrowsInsideInteractionRadius(t *testing.T) {
	p := NewParticle(100, 100, 0, 0, 1.5, white)
	p.Update(800, 600, Pointer{X: 100, Y: 200, Present: true}) // d = 100
	if p.Size != 3 {
		t.Errorf("Size = %v, want 3", p.Size)
	}
	if p.X != 100 || p.Y != 100 {
		t.Errorf("particle moved to (%v, %v) outside the nudge radius", p.X, p.Y)
	}
}

func TestUpdateNudgesAwayNearPointer(t *testing.T) {
	p := NewParticle(100, 100, 0, 0, 1, white)
	p.Update(800, 600, Pointer{X: 110, Y: 120, Present: true})
	if p.X != 99.5 || p.Y != 99 {
		t.Errorf("position = (%v, %v), want (99.5, 99)", p.X, p.Y)
	}
	if p.Size != 2 {
		t.Errorf("Size = %v, want 2", p.Size)
	}
}

func TestUpdateDecaysOutsideRadius(t *testing.T) {
	p := NewParticle(100, 100, 0, 0, 2, white)
	p.Size = 4
	far := Pointer{X: 700, Y: 500, Present: true}

	p.Update(800, 600, far)
	if math.Abs(p.Size-3.9) > 1e-9 {
		t.Fatalf("Size = %v after one decay step, want 3.9", p.Size)
	}
	for range 30 {
		p.Update(800, 600, far)
	}
	if p.Size != p.BaseSize() {
		t.Errorf("Size = %v, want floor at base %v", p.Size, p.BaseSize())
	}
}

func TestUpdateAbsentPointerKeepsSize(t *testing.T) {
	p := NewParticle(100, 100, 0.1, 0.1, 2, white)
	p.Update(800, 600, Pointer{X: 100, Y: 100, Present: true})
	grown := p.Size

	for i := range 50 {
		p.Update(800, 600, Pointer{})
		if p.Size != grown {
			t.Fatalf("update %d: Size = %v, want %v while pointer absent", i, p.Size, grown)
		}
	}
}

func TestUpdateSizeStaysWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	ps := make([]*Particle, 50)
	for i := range ps {
		ps[i] = NewParticle(rng.Float64()*800, rng.Float64()*600, rng.Float64()-0.5, rng.Float64()-0.5, 1+rng.Float64()*2, white)
	}
	for frame := range 500 {
		ptr := Pointer{}
		if rng.Intn(3) > 0 {
			ptr = Pointer{X: rng.Float64() * 800, Y: rng.Float64() * 600, Present: true}
		}
		for i, p := range ps {
			p.Update(800, 600, ptr)
			if p.Size < p.BaseSize() {
				t.Fatalf("frame %d particle %d: Size %v < base %v", frame, i, p.Size, p.BaseSize())
			}
			if p.Size > 2*p.BaseSize() {
				t.Fatalf("frame %d particle %d: Size %v > 2×base %v", frame, i, p.Size, p.BaseSize())
			}
		}
	}
}

func TestDraw(t *testing.T) {
	var rec Recorder
	p := NewParticle(12, 34, 0, 0, 2.5, white)
	p.Draw(&rec)
	if len(rec.Circles) != 1 {
		t.Fatalf("circles = %d, want 1", len(rec.Circles))
	}
	want := Circle{X: 12, Y: 34, R: 2.5, Color: white}
	if rec.Circles[0] != want {
		t.Errorf("circle = %+v, want %+v", rec.Circles[0], want)
	}
}
