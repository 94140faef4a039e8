// Package racer implements Lane Racer: a vertically scrolling game where the
// player steers a car left and right to dodge oncoming traffic.
package racer

import (
	"time"

	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/registry"
)

// Game implements the Lane Racer game logic.
//
// A run moves through core.PhaseStopped -> PhaseRunning <-> PhasePaused and
// back to PhaseStopped on game over. Step drains the frame's commands in
// order and then simulates one tick only while running.
type Game struct {
	cfg       config.RacerConfig
	runtime   core.RuntimeConfig
	player    Player
	obstacles []Obstacle
	spawner   *Spawner
	score     int
	lives     int
	phase     core.Phase
	gameOver  bool
	clock     time.Duration // Game time, advanced only by running ticks
	frame     time.Duration
	tickCount int
	runs      int  // Runs started since Reset, used to vary the seed
	fixedCfg  bool // Config was injected, skip loading on Reset
	events    []core.Event
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new Lane Racer game instance.
func New() *Game {
	return newGame(config.DefaultRacerConfig(), false)
}

// NewWithConfig creates a game that always uses cfg instead of loading one.
func NewWithConfig(cfg config.RacerConfig) *Game {
	return newGame(cfg, true)
}

// newGame builds a stopped game that is safe to use before Reset.
// Nothing is read from disk here; registration creates throwaway instances.
func newGame(cfg config.RacerConfig, fixed bool) *Game {
	runtime := core.DefaultConfig()
	g := &Game{
		cfg:      cfg,
		fixedCfg: fixed,
		runtime:  runtime,
		frame:    runtime.FrameDuration(),
		spawner:  NewSpawner(runtime.Seed, cfg),
	}
	g.resetRun()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "racer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Lane Racer"
}

// Reset loads configuration and puts the game in the stopped phase with a
// fresh field. A run begins with ActionStart.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.frame = runtime.FrameDuration()

	if !g.fixedCfg {
		cfg, err := config.LoadRacer(configPath)
		if err != nil {
			cfg = config.DefaultRacerConfig()
		}
		g.cfg = cfg
	}

	g.spawner.UpdateConfig(g.cfg)

	g.runs = 0
	g.phase = core.PhaseStopped
	g.gameOver = false
	g.resetRun()
}

// resetRun restores score, lives, difficulty, obstacles and player position.
func (g *Game) resetRun() {
	g.score = 0
	g.lives = config.StartingLives
	g.obstacles = g.obstacles[:0]
	g.clock = 0
	g.tickCount = 0
	g.spawner.Reset(g.runtime.Seed + int64(g.runs))

	minX, maxX := g.cfg.LaneBounds()
	g.player = Player{
		X:      core.ClampF(g.cfg.Playfield.Width/2-g.cfg.Player.Width/2, minX, maxX),
		Y:      g.cfg.Playfield.Height - g.cfg.Player.BottomOffset,
		Width:  g.cfg.Player.Width,
		Height: g.cfg.Player.Height,
		Step:   g.cfg.Player.Step,
	}
}

// Step applies the frame's commands in order, then advances the run by one
// tick if it is running.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	for _, a := range in.Actions {
		g.apply(a)
	}

	if g.phase == core.PhaseRunning {
		g.tick()
	}

	return core.StepResult{State: g.State(), Events: g.events}
}

// apply handles one command. Commands that make no sense in the current
// phase are ignored.
func (g *Game) apply(a core.Action) {
	switch a {
	case core.ActionStart, core.ActionRestart:
		if g.phase != core.PhaseRunning {
			g.start()
		}
	case core.ActionPause:
		switch g.phase {
		case core.PhaseRunning:
			g.phase = core.PhasePaused
		case core.PhasePaused:
			g.phase = core.PhaseRunning
		}
	case core.ActionLeft:
		if g.phase == core.PhaseRunning {
			g.steer(-g.player.Step)
		}
	case core.ActionRight:
		if g.phase == core.PhaseRunning {
			g.steer(g.player.Step)
		}
	}
}

// start begins a new run from any non-running phase.
func (g *Game) start() {
	g.runs++
	g.resetRun()
	g.phase = core.PhaseRunning
	g.gameOver = false
	g.emit(core.EventScoreChanged, g.score)
	g.emit(core.EventLivesChanged, g.lives)
}

// steer moves the player horizontally, clamped to the lane.
func (g *Game) steer(dx float64) {
	minX, maxX := g.cfg.LaneBounds()
	g.player.X = core.ClampF(g.player.X+dx, minX, maxX)
}

// tick runs one simulation step: move and resolve obstacles, then spawn.
func (g *Game) tick() {
	g.tickCount++
	g.clock += g.frame
	now := g.clock

	playerRect := g.player.Rect()
	kept := g.obstacles[:0]
	for _, o := range g.obstacles {
		// Once the run is over the rest of the field is left as it was.
		if g.phase != core.PhaseRunning {
			kept = append(kept, o)
			continue
		}

		o.Y += o.Speed

		if o.Y > g.cfg.Playfield.Height {
			g.score += config.DodgePoints
			g.emit(core.EventScoreChanged, g.score)
			continue
		}

		if o.Rect().Intersects(playerRect) {
			g.lives--
			g.emit(core.EventLivesChanged, g.lives)
			if g.lives <= 0 {
				g.endRun()
			}
			continue
		}

		kept = append(kept, o)
	}
	g.obstacles = kept

	if g.phase != core.PhaseRunning {
		return
	}

	if o, ok := g.spawner.Update(now, g.score); ok {
		g.obstacles = append(g.obstacles, o)
	}
}

// endRun stops the run after the last life is lost.
func (g *Game) endRun() {
	g.lives = 0
	g.phase = core.PhaseStopped
	g.gameOver = true
	g.emit(core.EventGameOver, g.score)
}

func (g *Game) emit(kind core.EventKind, value int) {
	g.events = append(g.events, core.Event{Kind: kind, Value: value})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		Phase:    g.phase,
		GameOver: g.gameOver,
	}
}

// Config returns the configuration in effect.
func (g *Game) Config() config.RacerConfig {
	return g.cfg
}

// Player returns the player car.
func (g *Game) Player() Player {
	return g.player
}

// Obstacles returns a copy of the obstacles in spawn order.
func (g *Game) Obstacles() []Obstacle {
	out := make([]Obstacle, len(g.obstacles))
	copy(out, g.obstacles)
	return out
}

// Speed returns the fall rate the next obstacle will get.
func (g *Game) Speed() float64 {
	return g.spawner.Speed()
}

// SpawnIntervalMs returns the current spawn interval in milliseconds.
func (g *Game) SpawnIntervalMs() int {
	return g.spawner.SpawnIntervalMs()
}

// Elapsed returns the game time of the current run.
func (g *Game) Elapsed() time.Duration {
	return g.clock
}

// Register the game with the registry
func init() {
	registry.Register(func() registry.Game {
		return New()
	})
}
