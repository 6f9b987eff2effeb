package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/templer/components"
)

func newSimSurface(t *testing.T) (tcell.SimulationScreen, *TerminalSurface) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)
	return screen, NewTerminalSurface(screen, 8, 16)
}

func runeAt(screen tcell.SimulationScreen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func TestTerminalSurfaceSize(t *testing.T) {
	_, s := newSimSurface(t)
	w, h := s.Size()
	if w != 640 || h != 384 {
		t.Errorf("Size() = (%v, %v), want (640, 384)", w, h)
	}
}

func TestTerminalSurfaceFillCircle(t *testing.T) {
	screen, s := newSimSurface(t)
	s.Clear()

	s.FillCircle(44, 40, 20, components.ColorEnemy)
	if got := runeAt(screen, 5, 2); got != blockChar {
		t.Errorf("center cell = %q, want block", got)
	}
	if got := runeAt(screen, 12, 2); got == blockChar {
		t.Error("cell outside radius was filled")
	}

	_, _, style, _ := screen.GetContent(5, 2)
	if fg, _, _ := style.Decompose(); fg != RgbEnemy {
		t.Errorf("foreground = %v, want enemy color", fg)
	}

	// Smaller than a cell still leaves a mark
	s.FillCircle(300, 300, 1, components.ColorCoin)
	if got := runeAt(screen, 37, 18); got != pointChar {
		t.Errorf("tiny circle cell = %q, want point", got)
	}
}

func TestTerminalSurfaceFillRect(t *testing.T) {
	screen, s := newSimSurface(t)
	s.Clear()

	s.FillRect(0, 0, 32, 32, components.ColorObstacle)
	for row := 0; row < 2; row++ {
		for col := 0; col < 4; col++ {
			if got := runeAt(screen, col, row); got != blockChar {
				t.Errorf("cell (%d, %d) = %q, want block", col, row, got)
			}
		}
	}
	if got := runeAt(screen, 4, 0); got == blockChar {
		t.Error("rect overflowed to the right")
	}
}

func TestTerminalSurfaceTextAndClipping(t *testing.T) {
	screen, s := newSimSurface(t)
	s.Clear()

	s.Text(16, 16, "Hi", components.ColorText)
	if runeAt(screen, 2, 1) != 'H' || runeAt(screen, 3, 1) != 'i' {
		t.Error("text not written at the cell containing its origin")
	}
	if got := s.TextWidth("Lives: 3"); got != 64 {
		t.Errorf("TextWidth = %v, want 64", got)
	}

	// Off-screen draws are dropped without panicking
	s.FillCircle(-100, -100, 30, components.ColorEnemy)
	s.FillRect(1000, 1000, 50, 50, components.ColorObstacle)
	s.Text(630, 0, "overflow", components.ColorText)
	s.Show()
}
