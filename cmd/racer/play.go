package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/games/racer"
	"github.com/vovakirdan/tui-racer/internal/platform/tui"
	"github.com/vovakirdan/tui-racer/internal/platform/window"
	"github.com/vovakirdan/tui-racer/internal/registry"
)

var (
	flagConfig string
	flagWindow bool
	flagScale  float64
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Left/A     - Steer left
  Right/D    - Steer right
  Enter      - Start (or restart after game over)
  P/Esc      - Pause / resume
  R          - Restart
  Ctrl+S     - Save a text screenshot (terminal only)
  Q/Ctrl+C   - Quit

Examples:
  racer play racer
  racer play racer --window
  racer play racer --config ./my-racer.yaml
  racer play racer --seed 42 --log-file racer.log`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Play in a desktop window instead of the terminal")
	playCmd.Flags().Float64Var(&flagScale, "scale", 1.5, "Window scale factor (with --window)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'racer list' to see available games", gameID)
	}

	// Load once up front so a bad --config fails before the screen is taken.
	rc, err := config.LoadRacer(flagConfig)
	if err != nil {
		return err
	}
	racer.SetConfigPath(flagConfig)

	// The TUI owns the terminal, so logs only go to --log-file.
	logger, closeLog, err := newLogger(gameID, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	logger.Info("starting", "window", flagWindow, "seed", cfg.Seed, "fps", cfg.TickRate)

	if flagWindow {
		return window.Run(game, cfg, window.Options{
			Width:  int(rc.Playfield.Width),
			Height: int(rc.Playfield.Height),
			Scale:  flagScale,
			Logger: logger,
		})
	}

	if err := tui.Run(game, cfg, tui.Options{Logger: logger}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
