package physics

import (
	"testing"

	"github.com/lixenwraith/templer/components"
)

func TestResolveWallClampsAndBounces(t *testing.T) {
	area := Area{Width: 500, Height: 500}

	tests := []struct {
		name    string
		x, y    float64
		vx, vy  float64
		clampY  bool
		wantHit bool
		wantX   float64
		wantY   float64
		wantVX  float64
		wantVY  float64
	}{
		{"inside", 250, 250, 3, 3, true, false, 250, 250, 3, 3},
		{"past right", 495, 250, 4, 0, true, true, 490, 250, -4, 0},
		{"past left", 2, 250, -4, 0, true, true, 10, 250, 4, 0},
		{"past bottom", 250, 498, 0, 5, true, true, 250, 490, 0, -5},
		{"past top", 250, 3, 0, -5, true, true, 250, 10, 0, 5},
		{"bottom ignored without clampY", 250, 498, 0, 5, false, false, 250, 498, 0, 5},
		{"corner", 498, 498, 2, 2, true, true, 490, 490, -2, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := components.NewPlayer(10)
			e.X, e.Y, e.VX, e.VY = tt.x, tt.y, tt.vx, tt.vy

			hit := ResolveWall(e, area, tt.clampY)

			if hit != tt.wantHit {
				t.Errorf("hit = %v, want %v", hit, tt.wantHit)
			}
			if e.X != tt.wantX || e.Y != tt.wantY {
				t.Errorf("position = (%v, %v), want (%v, %v)", e.X, e.Y, tt.wantX, tt.wantY)
			}
			if e.VX != tt.wantVX || e.VY != tt.wantVY {
				t.Errorf("velocity = (%v, %v), want (%v, %v)", e.VX, e.VY, tt.wantVX, tt.wantVY)
			}
		})
	}
}

func TestBottomExit(t *testing.T) {
	area := Area{Width: 500, Height: 500}
	wall := components.NewSpikedWall(200, 50)

	wall.Y = 510
	if !PastBottom(wall, area) {
		t.Error("center below bottom should be PastBottom")
	}
	if FullyPastBottom(wall, area) {
		t.Error("top edge still on screen, should not be FullyPastBottom")
	}

	wall.Y = 526
	if !FullyPastBottom(wall, area) {
		t.Error("top edge below bottom should be FullyPastBottom")
	}
}

func TestAreaContains(t *testing.T) {
	area := Area{Width: 100, Height: 50}
	if !area.Contains(0, 0) || !area.Contains(100, 50) {
		t.Error("edges should be contained")
	}
	if area.Contains(-0.1, 10) || area.Contains(10, 50.1) {
		t.Error("outside points should not be contained")
	}
}
