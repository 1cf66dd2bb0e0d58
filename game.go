package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/olivierh59500/particle-field-go/internal/autopilot"
	"github.com/olivierh59500/particle-field-go/internal/config"
	"github.com/olivierh59500/particle-field-go/internal/ebitensurface"
	"github.com/olivierh59500/particle-field-go/internal/field"
)

// Game hosts a particle field in an Ebitengine window
type Game struct {
	field   *field.Field
	surface *ebitensurface.Surface
	pilot   *autopilot.Pilot // nil unless -autopilot

	Width, Height int
	Paused        bool
	ShowDebug     bool
	Frame         uint64
	last          field.FrameStats
}

// NewGame creates the field and sizes it for the initial window
func NewGame(cfg config.Config, seed int64) (*Game, error) {
	surface := ebitensurface.New(config.Background)
	f, err := field.New(surface, field.WithSeed(seed), field.WithDim(cfg.DimFactor()))
	if err != nil {
		return nil, err
	}
	g := &Game{
		field:     f,
		surface:   surface,
		ShowDebug: cfg.Debug,
	}
	if cfg.Autopilot {
		g.pilot = autopilot.New(cfg.Width, cfg.Height, seed)
	}
	g.resize(cfg.Width, cfg.Height)
	return g, nil
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	g.handleInput()
	return nil
}

// Draw is called once per display refresh by Ebitengine
func (g *Game) Draw(screen *ebiten.Image) {
	if g.Paused {
		return
	}
	g.surface.Bind(screen)
	defer g.surface.Bind(nil)

	if g.pilot != nil {
		g.applyPointer(g.pilot.Pointer(g.Frame))
	}
	g.last = g.field.Frame()
	g.Frame++

	if g.ShowDebug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS %.0f  particles %d  pairs %d  lines %d",
			ebiten.ActualFPS(), g.last.Particles, g.last.Pairs, g.last.Lines))
	}
}

// Layout follows the window size; a change rebuilds the population
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.Width || outsideHeight != g.Height {
		g.resize(outsideWidth, outsideHeight)
	}
	return g.Width, g.Height
}

func (g *Game) resize(w, h int) {
	g.Width, g.Height = w, h
	g.field.Resize(w, h)
	if g.pilot != nil {
		g.pilot.Resize(w, h)
	}
	log.Printf("field: %dx%d, %d particles", w, h, len(g.field.Particles()))
}

// handleInput processes keyboard and mouse input
func (g *Game) handleInput() {
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		g.handleKey(k)
	}
	if g.pilot != nil {
		return
	}
	mx, my := ebiten.CursorPosition()
	g.applyPointer(cursorPointer(mx, my, g.Width, g.Height, ebiten.IsFocused()))
}

// handleKey applies a key press: Space pauses, D toggles the overlay
func (g *Game) handleKey(k ebiten.Key) {
	switch k {
	case ebiten.KeySpace:
		g.Paused = !g.Paused
	case ebiten.KeyD:
		g.ShowDebug = !g.ShowDebug
	}
}

func (g *Game) applyPointer(p field.Pointer) {
	if p.Present {
		g.field.MovePointer(p.X, p.Y)
	} else {
		g.field.LeavePointer()
	}
}

// cursorPointer turns a raw cursor sample into pointer state. Ebitengine has
// no leave event, so a cursor outside the window or an unfocused window
// counts as absent.
func cursorPointer(x, y, w, h int, focused bool) field.Pointer {
	if !focused || x < 0 || y < 0 || x >= w || y >= h {
		return field.Pointer{}
	}
	return field.Pointer{X: float64(x), Y: float64(y), Present: true}
}
