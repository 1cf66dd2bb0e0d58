package config

import (
	"errors"
	"flag"
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Field tuning. These are fixed for every host.
const (
	DensityDivisor    = 20000 // canvas area per particle
	MaxParticles      = 100
	ConnectDistSq     = 18000.0
	InteractionRadius = 150.0
	GrowthFactor      = 2.0
	DecayStep         = 0.1

	MinSpeed = -0.5
	MaxSpeed = 0.5
	MinSize  = 1.0
	MaxSize  = 3.0

	LineWidth = 1.0
)

// Dimming multipliers for the two deployment variants of the connection pass.
const (
	DimFull = 1.0
	DimHalf = 0.5
)

// Host defaults
const (
	WindowWidth  = 1280
	WindowHeight = 720
	TPS          = 60
)

// PaletteHex is the fixed particle palette.
var PaletteHex = [...]string{"#6C63FF", "#00E5FF", "#ffffff"}

// LineColor is the RGB base of connection lines; only alpha varies.
var LineColor = color.NRGBA{R: 108, G: 99, B: 255, A: 255}

// Background is the clear color hosts paint behind the field.
var Background = color.NRGBA{R: 10, G: 10, B: 18, A: 255}

var ErrInvalid = errors.New("invalid config")

// Palette parses PaletteHex into opaque colors.
func Palette() ([]color.NRGBA, error) {
	out := make([]color.NRGBA, 0, len(PaletteHex))
	for _, h := range PaletteHex {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("palette entry %q: %w", h, err)
		}
		r, g, b := c.RGB255()
		out = append(out, color.NRGBA{R: r, G: g, B: b, A: 255})
	}
	return out, nil
}

// Config holds host-level settings.
type Config struct {
	Width, Height int
	TPS           int
	Seed          int64 // 0 picks a time-based seed
	Dim           bool  // use DimHalf for connection lines
	Autopilot     bool
	Debug         bool
}

// Default returns the settings used when no flags are given.
func Default() Config {
	return Config{
		Width:  WindowWidth,
		Height: WindowHeight,
		TPS:    TPS,
	}
}

// RegisterFlags binds the config fields to fs.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "initial window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 = time based)")
	fs.BoolVar(&c.Dim, "dim", c.Dim, "draw connection lines at half opacity")
	fs.BoolVar(&c.Autopilot, "autopilot", c.Autopilot, "drive the pointer along a noise path")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "enable debug logging")
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: size %dx%d", ErrInvalid, c.Width, c.Height)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalid, c.TPS)
	}
	return nil
}

// DimFactor returns the connection opacity multiplier for this deployment.
func (c Config) DimFactor() float64 {
	if c.Dim {
		return DimHalf
	}
	return DimFull
}
