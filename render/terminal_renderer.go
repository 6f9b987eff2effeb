package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/templer/components"
)

const (
	blockChar  = '█'
	pointChar  = '●'
	pointBlock = '▪'
)

// TerminalSurface rasterizes canvas draw calls onto a tcell screen
// Each terminal cell spans cellWidth by cellHeight canvas pixels
type TerminalSurface struct {
	screen     tcell.Screen
	cellWidth  float64
	cellHeight float64
	background tcell.Style
}

// NewTerminalSurface creates a surface over screen, non-positive cell sizes fall back to 1
func NewTerminalSurface(screen tcell.Screen, cellWidth, cellHeight float64) *TerminalSurface {
	if cellWidth <= 0 {
		cellWidth = 1
	}
	if cellHeight <= 0 {
		cellHeight = 1
	}
	return &TerminalSurface{
		screen:     screen,
		cellWidth:  cellWidth,
		cellHeight: cellHeight,
		background: tcell.StyleDefault.Background(RgbBackground),
	}
}

// Size returns the canvas size covered by the terminal
func (s *TerminalSurface) Size() (float64, float64) {
	cols, rows := s.screen.Size()
	return float64(cols) * s.cellWidth, float64(rows) * s.cellHeight
}

// Clear paints every cell with the background
func (s *TerminalSurface) Clear() {
	s.screen.Fill(' ', s.background)
}

// FillCircle fills cells whose centers fall inside the circle
// Circles smaller than a cell still mark the cell holding their center
func (s *TerminalSurface) FillCircle(x, y, radius float64, c components.Color) {
	style := s.background.Foreground(PaletteColor(c))
	col0, row0 := s.cellAt(x-radius, y-radius)
	col1, row1 := s.cellAt(x+radius, y+radius)

	drawn := false
	r2 := radius * radius
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			cx, cy := s.cellCenter(col, row)
			dx, dy := cx-x, cy-y
			if dx*dx+dy*dy <= r2 {
				s.setCell(col, row, blockChar, style)
				drawn = true
			}
		}
	}

	if !drawn {
		col, row := s.cellAt(x, y)
		s.setCell(col, row, pointChar, style)
	}
}

// FillRect fills cells whose centers fall inside the rectangle
func (s *TerminalSurface) FillRect(x, y, width, height float64, c components.Color) {
	style := s.background.Foreground(PaletteColor(c))
	col0, row0 := s.cellAt(x, y)
	col1, row1 := s.cellAt(x+width, y+height)

	drawn := false
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			cx, cy := s.cellCenter(col, row)
			if cx >= x && cx <= x+width && cy >= y && cy <= y+height {
				s.setCell(col, row, blockChar, style)
				drawn = true
			}
		}
	}

	if !drawn {
		col, row := s.cellAt(x+width/2, y+height/2)
		s.setCell(col, row, pointBlock, style)
	}
}

// Text writes s starting at the cell containing x, y
func (s *TerminalSurface) Text(x, y float64, text string, c components.Color) {
	style := s.background.Foreground(PaletteColor(c))
	col, row := s.cellAt(x, y)
	for _, r := range text {
		s.setCell(col, row, r, style)
		col += runewidth.RuneWidth(r)
	}
}

// TextWidth returns the canvas width text occupies
func (s *TerminalSurface) TextWidth(text string) float64 {
	return float64(runewidth.StringWidth(text)) * s.cellWidth
}

// Show flushes the frame to the terminal
func (s *TerminalSurface) Show() {
	s.screen.Show()
}

func (s *TerminalSurface) cellAt(x, y float64) (int, int) {
	return int(math.Floor(x / s.cellWidth)), int(math.Floor(y / s.cellHeight))
}

func (s *TerminalSurface) cellCenter(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * s.cellWidth, (float64(row) + 0.5) * s.cellHeight
}

// setCell drops writes outside the screen
func (s *TerminalSurface) setCell(col, row int, r rune, style tcell.Style) {
	cols, rows := s.screen.Size()
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return
	}
	s.screen.SetContent(col, row, r, nil, style)
}

// Sync repaints the whole terminal after a resize
func (s *TerminalSurface) Sync() {
	s.screen.Sync()
}
