package racer

import (
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-racer/internal/core"
)

// Scenery colors.
var (
	GrassColor  = core.MustHex("#2d5016")
	MarkColor   = core.MustHex("#ffffff")
	PlayerColor = core.MustHex("#3498db")
	TrimColor   = core.MustHex("#2c3e50")
	GlassColor  = core.MustHex("#aed6f1")
)

// Road marking geometry, in playfield pixels.
const (
	markWidth  = 10
	dashLength = 20
	dashPeriod = 40
)

// Draw paints the playfield onto any surface: grass, lane markings,
// obstacles in spawn order, then the player on top. It does not mutate
// game state.
func (g *Game) Draw(dst core.Surface) {
	w := g.cfg.Playfield.Width
	h := g.cfg.Playfield.Height

	dst.Clear(GrassColor)
	g.drawRoad(dst, w, h)

	for _, o := range g.obstacles {
		drawCar(dst, o.X, o.Y, o.Width, o.Height, o.Color)
	}

	p := g.player
	drawCar(dst, p.X, p.Y, p.Width, p.Height, PlayerColor)
	dst.FillRect(p.X+10, p.Y+30, p.Width-20, 20, GlassColor)
}

// drawRoad renders the dashed center line and the two lane edges.
func (g *Game) drawRoad(dst core.Surface, w, h float64) {
	for y := 0.0; y < h; y += dashPeriod {
		dst.FillRect(w/2-markWidth/2, y, markWidth, dashLength, MarkColor)
	}

	quarter := w / 4
	dst.FillRect(quarter-markWidth/2, 0, markWidth, h, MarkColor)
	dst.FillRect(w-quarter-markWidth/2, 0, markWidth, h, MarkColor)
}

// drawCar draws a car body with front and rear trim.
func drawCar(dst core.Surface, x, y, w, h float64, body color.Color) {
	dst.FillRect(x, y, w, h, body)
	dst.FillRect(x+5, y+10, w-10, 15, TrimColor)
	dst.FillRect(x+5, y+h-25, w-10, 15, TrimColor)
}

// Render draws the current game state to the screen: a HUD line on top and
// the scaled playfield below it.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	field := core.NewRect(0, 1, dst.Width(), core.Max(dst.Height()-1, 0))
	canvas := core.NewCanvas(dst, field, g.cfg.Playfield.Width, g.cfg.Playfield.Height)
	g.Draw(canvas)

	g.drawHUD(dst)

	area := canvas.Area()
	switch {
	case g.phase == core.PhasePaused:
		drawCenteredMessage(dst, area, "PAUSED", "Press P to resume")
	case g.gameOver:
		drawCenteredMessage(dst, area, "GAME OVER", fmt.Sprintf("Final score: %d  |  Enter to restart", g.score))
	case g.phase == core.PhaseStopped:
		drawCenteredMessage(dst, area, strings.ToUpper(g.Title()), "Press Enter to start")
	}
}

// drawHUD writes score, lives and speed on the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	scoreText := fmt.Sprintf(" Score: %d ", g.score)
	dst.DrawTextColored(1, 0, scoreText, core.ColorBrightWhite)

	livesText := fmt.Sprintf(" Lives: %s ", strings.Repeat("♥", core.Max(g.lives, 0)))
	dst.DrawTextColored(len(scoreText)+2, 0, livesText, core.ColorBrightRed)

	speedText := fmt.Sprintf(" Spd: %.1f ", g.spawner.Speed())
	dst.DrawTextColored(dst.Width()-len(speedText)-1, 0, speedText, core.ColorBrightYellow)
}

// drawCenteredMessage draws a message box centered horizontally on the
// screen and vertically over the playfield area.
func drawCenteredMessage(dst *core.Screen, area core.Rect, title, subtitle string) {
	titleLen := utf8.RuneCountInString(title)
	subtitleLen := utf8.RuneCountInString(subtitle)

	boxW := core.Max(titleLen, subtitleLen) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := area.Y + (area.H-boxH)/2
	if area.H < boxH {
		boxY = (dst.Height() - boxH) / 2
	}

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextColored(boxX+(boxW-titleLen)/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(boxY+3, subtitle)
}
