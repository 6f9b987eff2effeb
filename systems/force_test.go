package systems

import (
	"testing"

	"github.com/lixenwraith/templer/components"
)

func TestApplyForces(t *testing.T) {
	tests := []struct {
		name           string
		held           []components.Direction
		vx, vy         float64
		wantVX, wantVY float64
	}{
		{"none", nil, 2, -1, 2, -1},
		{"left", []components.Direction{components.DirectionLeft}, 0, 0, -1, 0},
		{"right and down", []components.Direction{components.DirectionRight, components.DirectionDown}, 1, 1, 2, 2},
		{"opposites cancel", []components.Direction{components.DirectionLeft, components.DirectionRight}, 3, 0, 3, 0},
		{"stop decays toward zero", []components.Direction{components.DirectionStop}, 3, -2, 2, -1},
		{"stop at rest", []components.Direction{components.DirectionStop}, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var forces components.ForceSet
			for _, d := range tt.held {
				forces.Add(d)
			}
			e := components.NewPlayer(10)
			e.VX, e.VY = tt.vx, tt.vy

			ApplyForces(e, forces)

			if e.VX != tt.wantVX || e.VY != tt.wantVY {
				t.Errorf("velocity = (%v, %v), want (%v, %v)", e.VX, e.VY, tt.wantVX, tt.wantVY)
			}
		})
	}
}
