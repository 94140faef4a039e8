package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-racer/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print a game's default config YAML",
	Long: `Print the built-in default configuration for a game. Save it to
~/.arcade/configs/<game>.yaml or pass it with --config after editing.

Examples:
  racer config racer > ~/.arcade/configs/racer.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	data := config.GetDefaultYAML(args[0])
	if data == nil {
		return fmt.Errorf("no default config for %q", args[0])
	}
	_, err := cmd.OutOrStdout().Write(data)
	return err
}
