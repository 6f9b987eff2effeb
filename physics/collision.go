package physics

import "github.com/lixenwraith/templer/components"

// Intersects reports whether two entities overlap
// Two circles use exact distance with the touching case excluded, any pairing
// with a rectangle compares bounding boxes with touching edges included
func Intersects(a, b *components.Entity) bool {
	if a.Shape() == components.ShapeCircle && b.Shape() == components.ShapeCircle {
		return circlesOverlap(a, b)
	}
	return boxesOverlap(a, b)
}

// circlesOverlap compares squared distance against squared radius sum
func circlesOverlap(a, b *components.Entity) bool {
	dx := b.X - a.X
	dy := b.Y - a.Y
	rad := a.Radius() + b.Radius()
	return dx*dx+dy*dy < rad*rad
}

// boxesOverlap is a four-sided rejection test on bounding boxes
func boxesOverlap(a, b *components.Entity) bool {
	if a.Right() < b.Left() {
		return false
	}
	if a.Left() > b.Right() {
		return false
	}
	if a.Bottom() < b.Top() {
		return false
	}
	if a.Top() > b.Bottom() {
		return false
	}
	return true
}

// ResolvePair applies collision response between two non-player entities
// Both take damage, then the spiked wall's response wins when either side is a wall
func ResolvePair(a, b *components.Entity) bool {
	if !Intersects(a, b) {
		return false
	}

	a.Damage()
	b.Damage()

	switch {
	case a.Kind() == components.KindSpikedWall:
		a.BounceOff(b)
	case b.Kind() == components.KindSpikedWall:
		b.BounceOff(a)
	default:
		a.BounceOff(b)
	}
	return true
}

// ResolvePlayer applies an enemy's collision response to the player
// Returns whether they collided and the hit-point delta applied to the player
func ResolvePlayer(enemy, player *components.Entity) (bool, int) {
	if !Intersects(enemy, player) {
		return false, 0
	}

	delta := enemy.Damage()
	enemy.BounceOff(player)
	player.AddHP(float64(delta))
	return true, delta
}
