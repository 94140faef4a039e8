package racer

import (
	"math"

	"github.com/vovakirdan/tui-racer/internal/core"
)

// lookahead is how far above the player the autopilot watches, in car
// heights.
const lookahead = 3

// Autopilot picks a steering action for the current tick. It looks for the
// nearest lane position that no approaching obstacle covers and steers
// toward it. It returns core.ActionNone when the player is already clear or
// no clear position exists.
func Autopilot(g *Game) core.Action {
	if g.phase != core.PhaseRunning {
		return core.ActionNone
	}

	p := g.player
	watchTop := p.Y - lookahead*p.Height
	var threats []core.RectF
	for _, o := range g.obstacles {
		r := o.Rect()
		if r.Bottom() > watchTop && r.Y < p.Rect().Bottom() {
			threats = append(threats, r)
		}
	}

	free := func(x float64) bool {
		// Keep one step of margin on each side.
		lane := core.RectF{X: x - p.Step, Y: 0, W: p.Width + 2*p.Step, H: 1}
		for _, t := range threats {
			if lane.X < t.Right() && lane.Right() > t.X {
				return false
			}
		}
		return true
	}

	if free(p.X) {
		return core.ActionNone
	}

	minX, maxX := g.cfg.LaneBounds()
	best, found := 0.0, false
	for x := minX; x <= maxX; x += p.Step {
		if !free(x) {
			continue
		}
		if !found || math.Abs(x-p.X) < math.Abs(best-p.X) {
			best, found = x, true
		}
	}

	switch {
	case !found:
		return core.ActionNone
	case best < p.X:
		return core.ActionLeft
	default:
		return core.ActionRight
	}
}
