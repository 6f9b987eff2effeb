package render

import "github.com/lixenwraith/templer/components"

// Surface is an abstract 2D canvas measured in canvas pixels, origin top-left
type Surface interface {
	// Size returns the current canvas dimensions
	Size() (width, height float64)
	Clear()
	FillCircle(x, y, radius float64, c components.Color)
	// FillRect takes the top-left corner
	FillRect(x, y, width, height float64, c components.Color)
	// Text draws s with its top-left corner at x, y
	Text(x, y float64, s string, c components.Color)
	TextWidth(s string) float64
	// Show presents the finished frame
	Show()
}
