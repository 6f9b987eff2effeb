package render

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lixenwraith/templer/components"
	"github.com/lixenwraith/templer/constants"
	"github.com/lixenwraith/templer/engine"
)

// printer groups digits in HUD numbers
var printer = message.NewPrinter(language.English)

// Frame draws one complete frame: the play field while running, the end
// screen once the game is over
func Frame(s Surface, g *engine.Game) {
	s.Clear()
	if g.IsGameOver() {
		DrawGameOver(s, g.Summary())
	} else {
		DrawWorld(s, g.World)
	}
	s.Show()
}

// DrawWorld paints every enemy in spawn order, the player and then the HUD,
// so score and lives overlay the bodies
func DrawWorld(s Surface, w *engine.World) {
	w.Each(func(_ engine.EntityID, e *components.Entity) {
		DrawEntity(s, e)
	})
	DrawEntity(s, w.Player)
	DrawHUD(s, w.Player)
}

// DrawEntity issues the draw call matching the entity's shape
func DrawEntity(s Surface, e *components.Entity) {
	switch e.Shape() {
	case components.ShapeCircle:
		s.FillCircle(e.X, e.Y, e.Radius(), e.Color())
	case components.ShapeRect:
		s.FillRect(e.Left(), e.Top(), e.Width(), e.Height(), e.Color())
	}
}

// DrawHUD writes the score top-left and remaining lives top-right
func DrawHUD(s Surface, player *components.Entity) {
	width, _ := s.Size()

	score := printer.Sprintf("Score: %d", player.Score())
	s.Text(constants.HUDMargin, constants.HUDMargin, score, components.ColorText)

	lives := printer.Sprintf("Lives: %d", int(math.Round(player.HP())))
	s.Text(width-constants.HUDMargin-s.TextWidth(lives), constants.HUDMargin, lives, components.ColorText)
}

// GameOverLines returns the end screen text, top to bottom
func GameOverLines(summary engine.Summary) []string {
	return []string{
		"GAME OVER",
		summary.Message,
		printer.Sprintf("Final Score: %d points", summary.Score),
		printer.Sprintf("Time Elapsed: %d seconds", summary.ElapsedSeconds),
		"Press r to reset, q to quit",
	}
}

// DrawGameOver centers the end screen lines on the surface
func DrawGameOver(s Surface, summary engine.Summary) {
	width, height := s.Size()
	lines := GameOverLines(summary)

	y := height/2 - float64(len(lines))*constants.HUDLineHeight/2
	for _, line := range lines {
		x := (width - s.TextWidth(line)) / 2
		if x < 0 {
			x = 0
		}
		s.Text(x, y, line, components.ColorText)
		y += constants.HUDLineHeight
	}
}
