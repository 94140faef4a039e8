package config

import (
	_ "embed"
)

//go:embed defaults/racer.yaml
var defaultRacerYAML []byte

// DefaultRacerConfig returns the default Lane Racer configuration.
func DefaultRacerConfig() RacerConfig {
	return RacerConfig{
		Playfield: RacerPlayfield{
			Width:  400,
			Height: 600,
		},
		Player: RacerPlayer{
			Width:        50,
			Height:       80,
			Step:         5,
			BottomOffset: 100,
		},
		Obstacles: RacerObstacles{
			Width:  50,
			Height: 80,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "racer":
		return defaultRacerYAML
	default:
		return nil
	}
}
