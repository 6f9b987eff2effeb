package components

const (
	// fallbackRadius replaces non-positive radii at construction
	fallbackRadius = 1.0
	// fallbackSide replaces non-positive rectangle sides at construction
	fallbackSide = 10.0
)

// Bound is an inclusive [Lower, Upper] velocity range for one axis
type Bound struct {
	Lower, Upper float64
}

// Clamp restricts v to the bound
func (b Bound) Clamp(v float64) float64 {
	if v < b.Lower {
		return b.Lower
	}
	if v > b.Upper {
		return b.Upper
	}
	return v
}

// Entity is any simulated object: the player and every enemy variant
// Position is the center point; width and height span the bounding box
type Entity struct {
	X, Y   float64
	VX, VY float64

	kind          Kind
	width, height float64
	boundX        Bound
	boundY        Bound
	hp            float64
	score         int
	color         Color
}

// NewCircle creates a circle-shaped entity, non-positive radius falls back to 1
func NewCircle(kind Kind, radius float64) *Entity {
	if radius <= 0 {
		radius = fallbackRadius
	}
	return &Entity{
		kind:   kind,
		width:  radius * 2,
		height: radius * 2,
		color:  kind.DefaultColor(),
	}
}

// NewRect creates a rectangle-shaped entity, non-positive sides fall back to 10
func NewRect(kind Kind, width, height float64) *Entity {
	if width <= 0 {
		width = fallbackSide
	}
	if height <= 0 {
		height = fallbackSide
	}
	return &Entity{
		kind:   kind,
		width:  width,
		height: height,
		color:  kind.DefaultColor(),
	}
}

// NewPlayer creates the player circle
func NewPlayer(radius float64) *Entity { return NewCircle(KindPlayer, radius) }

// NewBall creates an ordinary enemy ball
func NewBall(radius float64) *Entity { return NewCircle(KindBall, radius) }

// NewCoin creates a coin that grants a bonus on contact
func NewCoin(radius float64) *Entity { return NewCircle(KindCoin, radius) }

// NewLifesaver creates a ball that restores a life on contact
func NewLifesaver(radius float64) *Entity { return NewCircle(KindLifesaver, radius) }

// NewObstacle creates a falling block
func NewObstacle(width, height float64) *Entity { return NewRect(KindObstacle, width, height) }

// NewSpikedWall creates the wide wall that reflects or passes bodies under it
func NewSpikedWall(width, height float64) *Entity { return NewRect(KindSpikedWall, width, height) }

// Kind returns the variant tag
func (e *Entity) Kind() Kind { return e.kind }

// Shape returns the collision geometry
func (e *Entity) Shape() Shape { return e.kind.Shape() }

// Width returns the positive bounding box width
func (e *Entity) Width() float64 { return e.width }

// Height returns the positive bounding box height
func (e *Entity) Height() float64 { return e.height }

// Radius returns half the width, meaningful for circle kinds
func (e *Entity) Radius() float64 { return e.width / 2 }

// SetWidth sets a positive width, circles keep width and height equal
func (e *Entity) SetWidth(w float64) bool {
	if w <= 0 {
		return false
	}
	e.width = w
	if e.Shape() == ShapeCircle {
		e.height = w
	}
	return true
}

// SetHeight sets a positive height, circles keep width and height equal
func (e *Entity) SetHeight(h float64) bool {
	if h <= 0 {
		return false
	}
	e.height = h
	if e.Shape() == ShapeCircle {
		e.width = h
	}
	return true
}

// SetRadius resizes a circle to a positive radius
func (e *Entity) SetRadius(r float64) bool {
	if r <= 0 {
		return false
	}
	e.width = r * 2
	e.height = r * 2
	return true
}

// SetVelocityBoundX changes the x velocity range, rejected when lower > upper
func (e *Entity) SetVelocityBoundX(lower, upper float64) bool {
	if lower > upper {
		return false
	}
	e.boundX = Bound{Lower: lower, Upper: upper}
	return true
}

// SetVelocityBoundY changes the y velocity range, rejected when lower > upper
func (e *Entity) SetVelocityBoundY(lower, upper float64) bool {
	if lower > upper {
		return false
	}
	e.boundY = Bound{Lower: lower, Upper: upper}
	return true
}

// VelocityBoundX returns a copy of the x velocity range
func (e *Entity) VelocityBoundX() Bound { return e.boundX }

// VelocityBoundY returns a copy of the y velocity range
func (e *Entity) VelocityBoundY() Bound { return e.boundY }

// Color returns the current palette tag
func (e *Entity) Color() Color { return e.color }

// SetColor changes the palette tag, ColorNone is rejected
func (e *Entity) SetColor(c Color) bool {
	if c == ColorNone {
		return false
	}
	e.color = c
	return true
}

// HP returns the current hit points
func (e *Entity) HP() float64 { return e.hp }

// SetHP overwrites hit points, negative values floor at zero
func (e *Entity) SetHP(hp float64) {
	e.hp = 0
	e.AddHP(hp)
}

// AddHP adds delta to hit points, never going below zero
func (e *Entity) AddHP(delta float64) {
	e.hp += delta
	if e.hp < 0 {
		e.hp = 0
	}
}

// Score returns the accumulated score
func (e *Entity) Score() int { return e.score }

// AddScore adds delta to the accumulated score
func (e *Entity) AddScore(delta int) { e.score += delta }

// ResetScore zeroes the accumulated score
func (e *Entity) ResetScore() { e.score = 0 }

// BounceX negates the x velocity
func (e *Entity) BounceX() { e.VX = -e.VX }

// BounceY negates the y velocity
func (e *Entity) BounceY() { e.VY = -e.VY }

// Move clamps velocity into its bounds and advances position by it
func (e *Entity) Move() {
	e.VX = e.boundX.Clamp(e.VX)
	e.VY = e.boundY.Clamp(e.VY)
	e.X += e.VX
	e.Y += e.VY
}

// Left returns the x of the bounding box left edge
func (e *Entity) Left() float64 { return e.X - e.width/2 }

// Right returns the x of the bounding box right edge
func (e *Entity) Right() float64 { return e.X + e.width/2 }

// Top returns the y of the bounding box top edge
func (e *Entity) Top() float64 { return e.Y - e.height/2 }

// Bottom returns the y of the bounding box bottom edge
func (e *Entity) Bottom() float64 { return e.Y + e.height/2 }
