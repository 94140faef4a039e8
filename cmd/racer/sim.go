package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/games/racer"
	"github.com/vovakirdan/tui-racer/internal/loop"
)

var (
	flagSimTicks  int
	flagSimConfig string
	flagSimIdle   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game driven by the autopilot",
	Long: `Run Lane Racer without a screen. The autopilot steers away from
oncoming cars until the run ends or the tick limit is reached, then the
final state is printed.

Examples:
  racer sim
  racer sim --ticks 10000 --seed 7
  racer sim --idle        # never steer`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Maximum number of ticks to simulate")
	simCmd.Flags().StringVar(&flagSimConfig, "config", "", "Path to custom game config YAML")
	simCmd.Flags().BoolVar(&flagSimIdle, "idle", false, "Disable the autopilot")
}

// simResult summarizes a headless run.
type simResult struct {
	State   core.GameState
	Ticks   int
	Elapsed time.Duration
	Speed   float64
	Crashes int
	Traffic int     // Obstacles still on the road
	PlayerX float64 // Player's final left edge
}

// simulate starts a run and ticks it through the loop until it stops or
// maxTicks ticks have run.
func simulate(game *racer.Game, maxTicks int, steer bool) simResult {
	l := loop.New(game)

	var res simResult
	countCrashes := func(r core.StepResult) {
		for _, ev := range r.Events {
			if ev.Kind == core.EventLivesChanged && ev.Value < config.StartingLives {
				res.Crashes++
			}
		}
	}

	if kick, _ := l.Dispatch(core.ActionStart); kick != nil {
		res.State = kick.State
	}

	for l.Scheduled() && l.Steps() < maxTicks {
		if steer {
			l.Dispatch(racer.Autopilot(game))
		}
		result, _ := l.Tick()
		countCrashes(result)
		res.State = result.State
	}

	res.Ticks = l.Steps()

	res.Elapsed = game.Elapsed()
	res.Speed = game.Speed()
	res.Traffic = len(game.Obstacles())
	res.PlayerX = game.Player().X
	return res
}

func runSim(cmd *cobra.Command, _ []string) error {
	if flagSimTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagSimTicks)
	}

	rc, err := config.LoadRacer(flagSimConfig)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("racer-sim", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game := racer.NewWithConfig(rc)
	game.Reset(core.RuntimeConfig{TickRate: flagFPS, Seed: seed})

	logger.Debug("simulating", "seed", seed, "ticks", flagSimTicks, "autopilot", !flagSimIdle)
	res := simulate(game, flagSimTicks, !flagSimIdle)
	logger.Info("simulation finished",
		"score", res.State.Score,
		"lives", res.State.Lives,
		"game_over", res.State.GameOver,
		"ticks", res.Ticks,
	)

	field := game.Config().Playfield
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Seed:      %d\n", seed)
	fmt.Fprintf(out, "Playfield: %gx%g\n", field.Width, field.Height)
	fmt.Fprintf(out, "Ticks:     %d (%s game time)\n", res.Ticks, res.Elapsed)
	fmt.Fprintf(out, "Score:     %d\n", res.State.Score)
	fmt.Fprintf(out, "Lives:     %d\n", res.State.Lives)
	fmt.Fprintf(out, "Crashes:   %d\n", res.Crashes)
	fmt.Fprintf(out, "Speed:     %.1f\n", res.Speed)
	fmt.Fprintf(out, "Traffic:   %d cars, player at x=%g\n", res.Traffic, res.PlayerX)
	fmt.Fprintf(out, "Game over: %v\n", res.State.GameOver)
	return nil
}
