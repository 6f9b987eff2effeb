package physics

import "github.com/lixenwraith/templer/components"

// Area is the playable canvas, origin top-left, y grows downward
type Area struct {
	Width, Height float64
}

// Contains reports whether a point lies inside the area, edges included
func (a Area) Contains(x, y float64) bool {
	return x >= 0 && x <= a.Width && y >= 0 && y <= a.Height
}

// ResolveWall keeps the entity box inside the area and bounces it off each
// wall it crossed. The vertical walls are skipped when clampY is false, falling
// enemies leave through the bottom instead of bouncing
func ResolveWall(e *components.Entity, area Area, clampY bool) bool {
	collided := false

	if clampY {
		if e.Bottom() > area.Height {
			e.Y = area.Height - e.Height()/2
			e.BounceY()
			collided = true
		}
		if e.Top() < 0 {
			e.Y = e.Height() / 2
			e.BounceY()
			collided = true
		}
	}

	if e.Right() > area.Width {
		e.X = area.Width - e.Width()/2
		e.BounceX()
		collided = true
	}
	if e.Left() < 0 {
		e.X = e.Width() / 2
		e.BounceX()
		collided = true
	}

	return collided
}

// PastBottom reports whether the entity center has crossed the bottom edge
func PastBottom(e *components.Entity, area Area) bool {
	return e.Y > area.Height
}

// FullyPastBottom reports whether the whole entity box is below the bottom edge
func FullyPastBottom(e *components.Entity, area Area) bool {
	return e.Top() > area.Height
}
