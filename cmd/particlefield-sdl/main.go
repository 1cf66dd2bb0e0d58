package main

import (
	"flag"
	"log"
	"time"

	"github.com/tfriedel6/canvas/sdlcanvas"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/olivierh59500/particle-field-go/internal/autopilot"
	"github.com/olivierh59500/particle-field-go/internal/canvassurface"
	"github.com/olivierh59500/particle-field-go/internal/config"
	"github.com/olivierh59500/particle-field-go/internal/field"
)

type windowAction int

const (
	actionNone windowAction = iota
	actionLeave
	actionClose
)

func main() {
	cfg := config.Default()
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("seed %d", seed)

	wnd, cv, err := sdlcanvas.CreateWindow(cfg.Width, cfg.Height, "Particle Field")
	if err != nil {
		log.Fatal(err)
	}
	defer wnd.Destroy()

	f, err := field.New(canvassurface.New(cv, config.Background),
		field.WithSeed(seed), field.WithDim(cfg.DimFactor()))
	if err != nil {
		log.Fatal(err)
	}

	// The field works in framebuffer pixels, which differ from window
	// points on HiDPI displays.
	w, h := cv.Width(), cv.Height()
	f.Resize(w, h)
	log.Printf("field: %dx%d, %d particles", w, h, len(f.Particles()))

	var pilot *autopilot.Pilot
	if cfg.Autopilot {
		pilot = autopilot.New(w, h, seed)
	}

	wnd.MouseMove = func(x, y int) {
		if pilot != nil {
			return
		}
		ww, wh := wnd.Size()
		if p := cursorPointer(x, y, ww, wh, w, h); p.Present {
			f.MovePointer(p.X, p.Y)
		} else {
			f.LeavePointer()
		}
	}
	// Setting SizeChange disables sdlcanvas's own viewport update.
	wnd.SizeChange = func(int, int) {
		fbw, fbh := wnd.FramebufferSize()
		wnd.Backend.SetBounds(0, 0, fbw, fbh)
		w, h = cv.Width(), cv.Height()
		f.Resize(w, h)
		if pilot != nil {
			pilot.Resize(w, h)
		}
		log.Printf("field: %dx%d, %d particles", w, h, len(f.Particles()))
	}
	wnd.KeyDown = func(scancode int, rn rune, name string) {
		if name == "Escape" {
			wnd.Close()
		}
	}
	// Events routed here no longer reach MainLoop, so close requests are
	// handled here too.
	wnd.Event = func(ev sdl.Event) {
		switch windowEvent(ev, wnd.WindowID) {
		case actionLeave:
			if pilot == nil {
				f.LeavePointer()
			}
		case actionClose:
			wnd.Close()
		}
	}

	var frame uint64
	wnd.MainLoop(func() {
		if pilot != nil {
			if p := pilot.Pointer(frame); p.Present {
				f.MovePointer(p.X, p.Y)
			} else {
				f.LeavePointer()
			}
		}
		f.Frame()
		frame++
	})
}

// cursorPointer maps a cursor sample in window points onto the fbW×fbH
// canvas. SDL keeps reporting motion outside the window while a button is
// held; such samples count as absent.
func cursorPointer(x, y, winW, winH, fbW, fbH int) field.Pointer {
	if winW <= 0 || winH <= 0 || x < 0 || y < 0 || x >= winW || y >= winH {
		return field.Pointer{}
	}
	return field.Pointer{
		X:       float64(x) * float64(fbW) / float64(winW),
		Y:       float64(y) * float64(fbH) / float64(winH),
		Present: true,
	}
}

// windowEvent classifies an event sdlcanvas passed through unhandled.
func windowEvent(ev sdl.Event, windowID uint32) windowAction {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		return actionClose
	case *sdl.WindowEvent:
		if e.WindowID != windowID {
			return actionNone
		}
		switch e.Event {
		case sdl.WINDOWEVENT_LEAVE, sdl.WINDOWEVENT_FOCUS_LOST:
			return actionLeave
		case sdl.WINDOWEVENT_CLOSE:
			return actionClose
		}
	}
	return actionNone
}
