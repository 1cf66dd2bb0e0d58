package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/olivierh59500/particle-field-go/internal/autopilot"
	"github.com/olivierh59500/particle-field-go/internal/config"
	"github.com/olivierh59500/particle-field-go/internal/field"
	"github.com/olivierh59500/particle-field-go/internal/loop"
	"github.com/olivierh59500/particle-field-go/internal/termsurface"
)

const logFileName = "particlefield.log"

func main() {
	cfg := config.Default()
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "particlefield: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging sends log output to a file when debug is set and discards it
// otherwise; the terminal owns stdout and stderr while the field runs.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

func run(cfg config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("seed %d", seed)

	surface, err := termsurface.New(screen, config.Background)
	if err != nil {
		return err
	}
	f, err := field.New(surface, field.WithSeed(seed), field.WithDim(cfg.DimFactor()))
	if err != nil {
		return err
	}
	w, h := termsurface.PixelSize(screen.Size())
	f.Resize(w, h)
	log.Printf("field: %dx%d, %d particles", w, h, len(f.Particles()))

	opts := []loop.Option{
		loop.WithAfterFrame(func(field.FrameStats) { surface.Show() }),
	}
	if cfg.Autopilot {
		opts = append(opts, loop.WithPilot(autopilot.New(w, h, seed)))
	}
	l := loop.New(f, loop.NewTicker(cfg.TPS), opts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go pollEvents(screen, l, cancel)

	if err := l.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// pollEvents turns terminal events into loop events until the screen is
// finalized or the user quits.
func pollEvents(screen tcell.Screen, l *loop.Loop, quit context.CancelFunc) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		if e, ok := translate(ev); ok {
			if !l.Post(e) {
				return
			}
			if e.Kind == loop.Resize {
				screen.Sync()
			}
			continue
		}
		if k, ok := ev.(*tcell.EventKey); ok && isQuit(k) {
			quit()
			return
		}
	}
}

func translate(ev tcell.Event) (loop.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		x, y := termsurface.CellCenter(ev.Position())
		return loop.Event{Kind: loop.PointerMove, X: x, Y: y}, true
	case *tcell.EventFocus:
		if !ev.Focused {
			return loop.Event{Kind: loop.PointerLeave}, true
		}
	case *tcell.EventResize:
		w, h := termsurface.PixelSize(ev.Size())
		return loop.Event{Kind: loop.Resize, W: w, H: h}, true
	}
	return loop.Event{}, false
}

func isQuit(k *tcell.EventKey) bool {
	switch k.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return k.Rune() == 'q'
	}
	return false
}
