package components

import (
	"math/rand/v2"
	"testing"
)

func TestConstructorsFallBackOnNonPositiveSize(t *testing.T) {
	tests := []struct {
		name          string
		entity        *Entity
		width, height float64
	}{
		{"circle zero radius", NewBall(0), 2, 2},
		{"circle negative radius", NewCoin(-5), 2, 2},
		{"circle valid", NewPlayer(10), 20, 20},
		{"rect zero sides", NewObstacle(0, 0), 10, 10},
		{"rect negative height", NewSpikedWall(30, -1), 30, 10},
		{"rect valid", NewObstacle(10, 40), 10, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.entity.Width() != tt.width || tt.entity.Height() != tt.height {
				t.Errorf("size = %vx%v, want %vx%v",
					tt.entity.Width(), tt.entity.Height(), tt.width, tt.height)
			}
		})
	}
}

func TestSettersRejectNonPositive(t *testing.T) {
	e := NewObstacle(10, 40)

	if e.SetWidth(0) {
		t.Error("SetWidth(0) should fail")
	}
	if e.SetHeight(-3) {
		t.Error("SetHeight(-3) should fail")
	}
	if e.Width() != 10 || e.Height() != 40 {
		t.Errorf("rejected setters changed size to %vx%v", e.Width(), e.Height())
	}

	if !e.SetWidth(25) || e.Width() != 25 || e.Height() != 40 {
		t.Errorf("SetWidth(25) on rect: got %vx%v", e.Width(), e.Height())
	}
}

func TestCircleKeepsDimensionsEqual(t *testing.T) {
	c := NewBall(10)

	if !c.SetWidth(30) {
		t.Fatal("SetWidth(30) failed")
	}
	if c.Height() != 30 || c.Radius() != 15 {
		t.Errorf("after SetWidth: height %v radius %v", c.Height(), c.Radius())
	}

	if c.SetRadius(0) {
		t.Error("SetRadius(0) should fail")
	}
	if !c.SetRadius(4) || c.Width() != 8 || c.Height() != 8 {
		t.Errorf("after SetRadius(4): %vx%v", c.Width(), c.Height())
	}
}

func TestVelocityBoundRejectsInverted(t *testing.T) {
	e := NewBall(10)
	e.SetVelocityBoundX(-5, 5)

	if e.SetVelocityBoundX(3, -3) {
		t.Error("inverted bound should be rejected")
	}
	if got := e.VelocityBoundX(); got != (Bound{-5, 5}) {
		t.Errorf("bound changed to %+v", got)
	}

	if !e.SetVelocityBoundY(2, 2) {
		t.Error("degenerate bound lower == upper should be accepted")
	}
}

// Any velocity, after Move, lies inside the configured bounds
func TestMoveClampsVelocity(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	e := NewPlayer(10)
	e.SetVelocityBoundX(-7, 7)
	e.SetVelocityBoundY(-3, 5)

	for i := 0; i < 1000; i++ {
		e.VX = (rng.Float64() - 0.5) * 100
		e.VY = (rng.Float64() - 0.5) * 100
		x, y := e.X, e.Y

		e.Move()

		if e.VX < -7 || e.VX > 7 || e.VY < -3 || e.VY > 5 {
			t.Fatalf("velocity (%v, %v) escaped bounds", e.VX, e.VY)
		}
		if e.X != x+e.VX || e.Y != y+e.VY {
			t.Fatalf("position advanced by (%v, %v), want clamped velocity (%v, %v)",
				e.X-x, e.Y-y, e.VX, e.VY)
		}
	}
}

func TestHPNeverNegative(t *testing.T) {
	e := NewBall(10)
	e.SetHP(1)

	e.AddHP(-5)
	if e.HP() != 0 {
		t.Errorf("HP = %v after overkill, want 0", e.HP())
	}

	e.SetHP(-2)
	if e.HP() != 0 {
		t.Errorf("SetHP(-2) = %v, want 0", e.HP())
	}

	e.Damage()
	if e.HP() != 0 {
		t.Errorf("Damage at 0 HP = %v, want 0", e.HP())
	}
}

func TestEdges(t *testing.T) {
	e := NewObstacle(10, 40)
	e.X, e.Y = 100, 50

	if e.Left() != 95 || e.Right() != 105 || e.Top() != 30 || e.Bottom() != 70 {
		t.Errorf("edges l=%v r=%v t=%v b=%v", e.Left(), e.Right(), e.Top(), e.Bottom())
	}
}

func TestSetColorRejectsNone(t *testing.T) {
	e := NewPlayer(10)
	if e.Color() != ColorPlayer {
		t.Fatalf("default color = %v, want ColorPlayer", e.Color())
	}
	if e.SetColor(ColorNone) {
		t.Error("SetColor(ColorNone) should fail")
	}
	if !e.SetColor(ColorFlash) || e.Color() != ColorFlash {
		t.Error("SetColor(ColorFlash) did not apply")
	}
}
