package components

import "testing"

func TestBehaviorTable(t *testing.T) {
	tests := []struct {
		name    string
		entity  *Entity
		delta   int
		hpAfter float64
		scored  int
	}{
		{"ball", NewBall(10), -1, 4, 200},
		{"coin", NewCoin(25), 0, 4, 0},
		{"lifesaver", NewLifesaver(10), 1, 4, 200},
		{"obstacle", NewObstacle(10, 40), -1, 4, 100},
		{"spiked wall", NewSpikedWall(100, 50), -1, 6, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.entity.SetHP(5)

			if got := tt.entity.Damage(); got != tt.delta {
				t.Errorf("Damage() = %d, want %d", got, tt.delta)
			}
			if tt.entity.HP() != tt.hpAfter {
				t.Errorf("HP after damage = %v, want %v", tt.entity.HP(), tt.hpAfter)
			}
			if got := tt.entity.Scored(); got != tt.scored {
				t.Errorf("Scored() = %d, want %d", got, tt.scored)
			}
		})
	}
}

func TestBounceOffSwapsVelocities(t *testing.T) {
	a := NewBall(10)
	b := NewObstacle(10, 40)
	a.VX, a.VY = 1, 2
	b.VX, b.VY = -3, 4

	a.BounceOff(b)

	if a.VX != -3 || a.VY != 4 || b.VX != 1 || b.VY != 2 {
		t.Errorf("after swap a=(%v,%v) b=(%v,%v)", a.VX, a.VY, b.VX, b.VY)
	}
}

func TestCoinGrantsBonusWithoutSwap(t *testing.T) {
	coin := NewCoin(25)
	player := NewPlayer(10)
	coin.VX, coin.VY = 2, 3
	player.VX, player.VY = -1, 0

	coin.BounceOff(player)

	if player.Score() != CoinBonus {
		t.Errorf("player score = %d, want %d", player.Score(), CoinBonus)
	}
	if player.VX != -1 || coin.VX != 2 {
		t.Error("coin should not swap velocities")
	}
}

func TestSpikedWallPassUnder(t *testing.T) {
	wall := NewSpikedWall(200, 50)
	wall.Y, wall.VY = 0, 3

	// Slower body well below the wall center is accelerated past it
	ball := NewBall(10)
	ball.Y, ball.VY = 40, 2

	wall.BounceOff(ball)

	if ball.Y != 40+PassUnderOffset {
		t.Errorf("ball Y = %v, want %v", ball.Y, 40+PassUnderOffset)
	}
	if ball.VY != 6 {
		t.Errorf("ball VY = %v, want double wall speed 6", ball.VY)
	}
}

func TestSpikedWallReflects(t *testing.T) {
	wall := NewSpikedWall(200, 50)
	wall.Y, wall.VY = 100, 3

	// Body above the wall is reflected on both axes
	ball := NewBall(10)
	ball.Y, ball.VX, ball.VY = 80, 2, 5

	wall.BounceOff(ball)

	if ball.VX != -2 || ball.VY != -5 {
		t.Errorf("ball velocity = (%v, %v), want (-2, -5)", ball.VX, ball.VY)
	}
	if ball.Y != 80 {
		t.Errorf("reflected ball moved to Y %v", ball.Y)
	}
	if wall.VY != 3 {
		t.Errorf("wall velocity changed to %v", wall.VY)
	}
}
