package termsurface

import (
	"errors"
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/olivierh59500/particle-field-go/internal/config"
	"github.com/olivierh59500/particle-field-go/internal/field"
)

func newTestSurface(t *testing.T, cols, rows int) (*Surface, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(cols, rows)

	s, err := New(screen, config.Background)
	if err != nil {
		t.Fatal(err)
	}
	s.SetSize(PixelSize(cols, rows))
	return s, screen
}

func TestNewRequiresScreen(t *testing.T) {
	if _, err := New(nil, config.Background); !errors.Is(err, ErrNoScreen) {
		t.Fatalf("New(nil) error = %v, want ErrNoScreen", err)
	}
}

func glyphAt(screen tcell.Screen, col, row int) (rune, tcell.Color) {
	mainc, _, style, _ := screen.GetContent(col, row)
	fg, _, _ := style.Decompose()
	return mainc, fg
}

func TestFillCircle(t *testing.T) {
	s, screen := newTestSurface(t, 20, 10)
	c := color.NRGBA{R: 0x6C, G: 0x63, B: 0xFF, A: 255}

	s.FillCircle(20, 40, 1.5, c) // cell (2, 2)
	s.FillCircle(100, 100, 3, c) // cell (12, 6)
	s.FillCircle(-5, 40, 3, c)   // off screen
	s.FillCircle(1000, 40, 3, c) // off screen

	tests := []struct {
		col, row int
		want     rune
	}{
		{2, 2, '∙'},
		{12, 6, '•'},
		{0, 2, ' '},
	}
	for _, tt := range tests {
		got, _ := glyphAt(screen, tt.col, tt.row)
		if got != tt.want {
			t.Errorf("cell (%d, %d) = %q, want %q", tt.col, tt.row, got, tt.want)
		}
	}
	if _, fg := glyphAt(screen, 2, 2); fg != tcell.NewRGBColor(0x6C, 0x63, 0xFF) {
		t.Errorf("particle color = %v", fg)
	}
}

func TestStrokeLineSkipsParticles(t *testing.T) {
	s, screen := newTestSurface(t, 20, 10)
	s.FillCircle(4, 8, 2, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	s.StrokeLine(4, 8, 60, 8, field.Stroke{Color: config.LineColor, Alpha: 1, Width: 1})

	if r, _ := glyphAt(screen, 0, 0); r != '•' {
		t.Errorf("endpoint cell = %q, want particle glyph", r)
	}
	for col := 1; col <= 7; col++ {
		r, fg := glyphAt(screen, col, 0)
		if r != lineGlyph {
			t.Errorf("cell (%d, 0) = %q, want line glyph", col, r)
		}
		if fg != tcell.NewRGBColor(108, 99, 255) {
			t.Errorf("cell (%d, 0) color = %v, want full line color", col, fg)
		}
	}
	if r, _ := glyphAt(screen, 8, 0); r != ' ' {
		t.Errorf("cell past the end = %q", r)
	}
}

func TestStrokeLineKeepsStrongest(t *testing.T) {
	s, screen := newTestSurface(t, 20, 10)
	strong := field.Stroke{Color: config.LineColor, Alpha: 0.9, Width: 1}
	faint := field.Stroke{Color: config.LineColor, Alpha: 0.1, Width: 1}

	s.StrokeLine(0, 24, 80, 24, strong)
	_, before := glyphAt(screen, 5, 1)
	s.StrokeLine(0, 24, 80, 24, faint)
	_, after := glyphAt(screen, 5, 1)

	if before != after {
		t.Errorf("faint line replaced a stronger one: %v -> %v", before, after)
	}
}

func TestClearRect(t *testing.T) {
	s, screen := newTestSurface(t, 20, 10)
	w, h := PixelSize(20, 10)
	s.FillCircle(20, 40, 2, color.NRGBA{R: 255, A: 255})
	s.FillCircle(100, 100, 2, color.NRGBA{R: 255, A: 255})

	s.ClearRect(0, 0, 64, 64) // cells 0..7 × 0..3
	if r, _ := glyphAt(screen, 2, 2); r != ' ' {
		t.Errorf("partial clear left %q", r)
	}
	if r, _ := glyphAt(screen, 12, 6); r == ' ' {
		t.Error("partial clear removed a cell outside the rect")
	}

	s.ClearRect(0, 0, float64(w), float64(h))
	if r, _ := glyphAt(screen, 12, 6); r != ' ' {
		t.Errorf("full clear left %q", r)
	}
}

func TestWalk(t *testing.T) {
	tests := []struct {
		name           string
		c0, r0, c1, r1 int
		want           int
	}{
		{"point", 3, 3, 3, 3, 1},
		{"horizontal", 0, 0, 9, 0, 10},
		{"vertical up", 2, 8, 2, 1, 8},
		{"diagonal", 0, 0, 5, 5, 6},
		{"steep", 0, 0, 2, 7, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cells [][2]int
			walk(tt.c0, tt.r0, tt.c1, tt.r1, func(c, r int) { cells = append(cells, [2]int{c, r}) })
			if len(cells) != tt.want {
				t.Fatalf("visited %d cells, want %d", len(cells), tt.want)
			}
			if cells[0] != [2]int{tt.c0, tt.r0} || cells[len(cells)-1] != [2]int{tt.c1, tt.r1} {
				t.Errorf("walk went %v -> %v", cells[0], cells[len(cells)-1])
			}
			for i := 1; i < len(cells); i++ {
				if abs(cells[i][0]-cells[i-1][0]) > 1 || abs(cells[i][1]-cells[i-1][1]) > 1 {
					t.Fatalf("gap between %v and %v", cells[i-1], cells[i])
				}
			}
		})
	}
}

func TestFieldFrame(t *testing.T) {
	s, screen := newTestSurface(t, 80, 24)
	f, err := field.New(s, field.WithSeed(4))
	if err != nil {
		t.Fatal(err)
	}
	f.Resize(PixelSize(80, 24))
	if n := len(f.Particles()); n != field.Count(640, 384) {
		t.Fatalf("%d particles", n)
	}

	f.Frame()
	s.Show()

	drawn := 0
	for row := 0; row < 24; row++ {
		for col := 0; col < 80; col++ {
			if r, _ := glyphAt(screen, col, row); r != ' ' {
				drawn++
			}
		}
	}
	if drawn == 0 {
		t.Error("frame drew nothing")
	}
}

func TestCellCenter(t *testing.T) {
	x, y := CellCenter(2, 3)
	if x != 20 || y != 56 {
		t.Errorf("CellCenter(2, 3) = (%v, %v), want (20, 56)", x, y)
	}
}
