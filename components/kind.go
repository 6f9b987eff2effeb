package components

// Kind tags the concrete variant of an entity
type Kind uint8

const (
	KindPlayer Kind = iota
	KindBall
	KindCoin
	KindLifesaver
	KindObstacle
	KindSpikedWall
)

// Shape is the collision geometry of a kind
type Shape uint8

const (
	ShapeCircle Shape = iota
	ShapeRect
)

// String returns the kind name used in logs
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindBall:
		return "ball"
	case KindCoin:
		return "coin"
	case KindLifesaver:
		return "lifesaver"
	case KindObstacle:
		return "obstacle"
	case KindSpikedWall:
		return "spiked_wall"
	default:
		return "unknown"
	}
}

// Shape returns the collision geometry for the kind
func (k Kind) Shape() Shape {
	switch k {
	case KindObstacle, KindSpikedWall:
		return ShapeRect
	default:
		return ShapeCircle
	}
}

// Color is a palette tag resolved to real colors by the renderer
type Color uint8

const (
	ColorNone Color = iota // Invalid, rejected by SetColor
	ColorPlayer
	ColorFlash
	ColorEnemy
	ColorLifesaver
	ColorCoin
	ColorObstacle
	ColorSpikedWall
	ColorText
)

// DefaultColor returns the color an entity of this kind is created with
func (k Kind) DefaultColor() Color {
	switch k {
	case KindPlayer:
		return ColorPlayer
	case KindBall:
		return ColorEnemy
	case KindCoin:
		return ColorCoin
	case KindLifesaver:
		return ColorLifesaver
	case KindObstacle:
		return ColorObstacle
	case KindSpikedWall:
		return ColorSpikedWall
	default:
		return ColorText
	}
}
