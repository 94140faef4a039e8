// racer is Lane Racer: dodge oncoming cars in your terminal, over SSH, or
// in a desktop window.
//
// Usage:
//
//	racer list                - List available games
//	racer play <game>         - Play a game in the terminal
//	racer play racer --window - Play in a desktop window
//	racer serve               - Start SSH server for remote play
//	racer sim                 - Run a headless autopilot game
//	racer config <game>       - Print the default config YAML
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn, error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-racer/internal/core"

	// Import games to register them
	_ "github.com/vovakirdan/tui-racer/internal/games/racer"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "racer",
	Short: "Lane Racer - dodge the traffic in your terminal",
	Long: `Lane Racer is a vertically scrolling driving game. Steer left and
right to dodge oncoming cars; every car that passes scores points, every
crash costs a life.

Available commands:
  list     - Show all available games
  play     - Play a game in the terminal or a window
  serve    - Start SSH server for remote play
  sim      - Run a headless game driven by the autopilot
  config   - Print the default config YAML

Examples:
  racer list
  racer play racer
  racer play racer --window
  racer serve --ssh :2222
  racer sim --ticks 5000 --seed 42`,
	SilenceUsage:      true,
	PersistentPreRunE: validateGlobalFlags,
}

// validateGlobalFlags rejects tick rates the simulation clock cannot honor.
func validateGlobalFlags(_ *cobra.Command, _ []string) error {
	if flagFPS < 1 || flagFPS > core.MaxTickRate {
		return fmt.Errorf("--fps must be between 1 and %d, got %d", core.MaxTickRate, flagFPS)
	}
	return nil
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the command logger. Logs go to --log-file when set,
// otherwise to fallback. The returned close func is always safe to call.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	closeFn := func() error { return nil }
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		out = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}
