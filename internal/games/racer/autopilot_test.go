package racer

import (
	"testing"

	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/core"
)

func TestAutopilotIdleWhenClear(t *testing.T) {
	g := newStartedGame(t)
	g.obstacles = nil

	if a := Autopilot(g); a != core.ActionNone {
		t.Errorf("Autopilot() = %v with an empty road, expected none", a)
	}
}

func TestAutopilotIdleWhenStopped(t *testing.T) {
	g := NewWithConfig(config.DefaultRacerConfig())
	g.Reset(testRuntime(1))

	if a := Autopilot(g); a != core.ActionNone {
		t.Errorf("Autopilot() = %v while stopped, expected none", a)
	}
}

func TestAutopilotDodges(t *testing.T) {
	tests := []struct {
		name     string
		playerX  float64
		obstacle float64
		want     core.Action
	}{
		{"threat on the right", 150, 170, core.ActionLeft},
		{"threat on the left", 200, 180, core.ActionRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newStartedGame(t)
			g.player.X = tt.playerX
			g.obstacles = []Obstacle{{
				X: tt.obstacle, Y: g.player.Y - 120,
				Width: g.cfg.Obstacles.Width, Height: g.cfg.Obstacles.Height,
				Speed: 3,
			}}

			if a := Autopilot(g); a != tt.want {
				t.Errorf("Autopilot() = %v, expected %v", a, tt.want)
			}
		})
	}
}

func TestAutopilotIgnoresPassedObstacles(t *testing.T) {
	g := newStartedGame(t)
	g.obstacles = []Obstacle{{
		X: g.player.X, Y: g.player.Y + g.player.Height + 1,
		Width: 50, Height: 80, Speed: 3,
	}}

	if a := Autopilot(g); a != core.ActionNone {
		t.Errorf("Autopilot() = %v for an obstacle behind the player, expected none", a)
	}
}

func TestAutopilotOutlastsIdleDriver(t *testing.T) {
	run := func(steer bool) int {
		g := NewWithConfig(config.DefaultRacerConfig())
		g.Reset(testRuntime(1))
		start := core.NewInputFrame()
		start.Set(core.ActionStart)
		g.Step(start)

		ticks := 0
		for ; ticks < 20000 && g.State().Running(); ticks++ {
			in := core.NewInputFrame()
			if steer {
				in.Set(Autopilot(g))
			}
			g.Step(in)
		}
		return ticks
	}

	idle := run(false)
	auto := run(true)
	if auto < idle {
		t.Errorf("autopilot survived %d ticks, idle driver %d", auto, idle)
	}
}
