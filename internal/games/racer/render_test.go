package racer

import (
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/core"
)

// recordingSurface captures draw calls.
type recordingSurface struct {
	clears int
	rects  []core.RectF
	colors []color.Color
}

func (s *recordingSurface) Clear(color.Color) {
	s.clears++
}

func (s *recordingSurface) FillRect(x, y, w, h float64, c color.Color) {
	s.rects = append(s.rects, core.RectF{X: x, Y: y, W: w, H: h})
	s.colors = append(s.colors, c)
}

func TestDrawOrder(t *testing.T) {
	g := newStartedGame(t)
	obstacle := g.obstacles[0]

	var s recordingSurface
	g.Draw(&s)

	if s.clears != 1 {
		t.Errorf("expected one clear, got %d", s.clears)
	}

	// 15 center dashes for a 600 tall field plus 2 lane edges.
	roadRects := 600/dashPeriod + 2
	if len(s.rects) < roadRects+3+4 {
		t.Fatalf("too few rects drawn: %d", len(s.rects))
	}

	if got := s.rects[roadRects]; got != obstacle.Rect() {
		t.Errorf("first car drawn = %+v, expected obstacle %+v", got, obstacle.Rect())
	}
	if s.colors[roadRects] != obstacle.Color {
		t.Error("obstacle should be drawn in its own color")
	}

	// Player body, trims, then windows come last.
	last := len(s.rects) - 1
	if s.colors[last] != GlassColor {
		t.Error("player windows should be drawn last")
	}
	if got := s.rects[last-3]; got != g.player.Rect() {
		t.Errorf("player body = %+v, expected %+v", got, g.player.Rect())
	}
}

func TestDrawDoesNotMutate(t *testing.T) {
	g := newStartedGame(t)
	before := g.State()
	obstacles := g.Obstacles()

	var s recordingSurface
	g.Draw(&s)
	g.Render(core.NewScreen(80, 31))

	if g.State() != before || len(g.Obstacles()) != len(obstacles) {
		t.Error("rendering changed game state")
	}
}

func TestRenderHUDAndField(t *testing.T) {
	g := newStartedGame(t)
	screen := core.NewScreen(80, 31)
	g.Render(screen)

	hud := screen.Row(0)
	if !strings.Contains(hud, "Score: 0") {
		t.Errorf("HUD should show the score, got %q", hud)
	}
	if !strings.Contains(hud, "♥♥♥") {
		t.Errorf("HUD should show three lives, got %q", hud)
	}
	if !strings.Contains(hud, "Spd: 3.0") {
		t.Errorf("HUD should show the speed, got %q", hud)
	}

	// Player car body is drawn in blue blocks near the bottom. The field is
	// 40x30 cells centered at column 20, so a unit is 0.1 columns and 0.05 rows.
	x := 20 + int(math.Round((g.player.X+1)*0.1))
	y := 1 + int(math.Round((g.player.Y+1)*0.05))
	if cell := screen.GetCell(x, y); cell.Rune != '█' {
		t.Errorf("expected the player at (%d, %d), got %q", x, y, cell.Rune)
	}
}

func TestRenderBanners(t *testing.T) {
	g := NewWithConfig(config.DefaultRacerConfig())
	g.Reset(testRuntime(1))
	screen := core.NewScreen(80, 31)

	g.Render(screen)
	if !strings.Contains(screen.String(), "Press Enter to start") {
		t.Error("stopped game should show the start banner")
	}

	g.Step(frame(core.ActionStart, core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused game should show the pause banner")
	}

	g.apply(core.ActionPause)
	g.score = 40
	g.endRun()
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "Final score: 40") {
		t.Error("game over should show the final score")
	}
}

func TestRenderTinyScreen(t *testing.T) {
	g := newStartedGame(t)
	for _, size := range [][2]int{{1, 1}, {5, 2}, {0, 0}} {
		g.Render(core.NewScreen(size[0], size[1]))
	}
}

func TestBannerCentersByRunes(t *testing.T) {
	screen := core.NewScreen(40, 12)
	area := core.NewRect(0, 1, 40, 11)

	drawCenteredMessage(screen, area, "ГОНКА", "go")

	// Box is 9 wide (5 runes + 4) at column 15, rows 4-8.
	if got := screen.Get(15, 4); got != '┌' {
		t.Errorf("box corner = %q, expected '┌'", got)
	}
	if got := screen.Get(23, 4); got != '┐' {
		t.Errorf("box right corner = %q, expected '┐'", got)
	}
	if got := screen.Get(17, 5); got != 'Г' {
		t.Errorf("title should start at column 17, got %q", got)
	}
	if row := screen.Row(7); !strings.Contains(row, "go") {
		t.Errorf("subtitle missing from %q", row)
	}
}
