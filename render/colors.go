package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/templer/components"
)

// RGB color definitions for the palette tags
var (
	RgbPlayer     = tcell.NewRGBColor(240, 240, 240) // Near white, readable on dark terminals
	RgbFlash      = tcell.NewRGBColor(0, 200, 0)     // Green hit flash
	RgbEnemy      = tcell.NewRGBColor(220, 20, 20)   // Red
	RgbLifesaver  = tcell.NewRGBColor(0, 128, 0)     // Green
	RgbCoin       = tcell.NewRGBColor(184, 134, 11)  // Dark goldenrod
	RgbObstacle   = tcell.NewRGBColor(128, 0, 128)   // Purple
	RgbSpikedWall = tcell.NewRGBColor(30, 144, 255)  // Dodger blue
	RgbText       = tcell.NewRGBColor(255, 255, 255) // White
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
)

// PaletteColor resolves a palette tag to a terminal color
func PaletteColor(c components.Color) tcell.Color {
	switch c {
	case components.ColorPlayer:
		return RgbPlayer
	case components.ColorFlash:
		return RgbFlash
	case components.ColorEnemy:
		return RgbEnemy
	case components.ColorLifesaver:
		return RgbLifesaver
	case components.ColorCoin:
		return RgbCoin
	case components.ColorObstacle:
		return RgbObstacle
	case components.ColorSpikedWall:
		return RgbSpikedWall
	default:
		return RgbText
	}
}
