// Package config provides YAML-based game configuration loading and
// the built-in difficulty ramp for the racer.
package config

import (
	"errors"
	"fmt"
)

// RacerConfig contains all configuration for the Lane Racer game.
// Geometry is in playfield pixels; the platform scales it for display.
type RacerConfig struct {
	Playfield RacerPlayfield `yaml:"playfield"`
	Player    RacerPlayer    `yaml:"player"`
	Obstacles RacerObstacles `yaml:"obstacles"`
}

// RacerPlayfield defines the drawable area.
type RacerPlayfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RacerPlayer defines the player car.
type RacerPlayer struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Step         float64 `yaml:"step"`          // Horizontal move per key press
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from playfield bottom to car top
}

// RacerObstacles defines the oncoming cars.
type RacerObstacles struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// LaneBounds returns the range the player's left edge may occupy: the
// middle half of the playfield.
func (c RacerConfig) LaneBounds() (minX, maxX float64) {
	quarter := c.Playfield.Width / 4
	return quarter, c.Playfield.Width - quarter - c.Player.Width
}

// Validate checks that the configuration describes a playable field.
func (c RacerConfig) Validate() error {
	var errs []error

	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		errs = append(errs, fmt.Errorf("playfield must be positive, got %gx%g", c.Playfield.Width, c.Playfield.Height))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive, got %gx%g", c.Player.Width, c.Player.Height))
	}
	if c.Obstacles.Width <= 0 || c.Obstacles.Height <= 0 {
		errs = append(errs, fmt.Errorf("obstacle size must be positive, got %gx%g", c.Obstacles.Width, c.Obstacles.Height))
	}
	if c.Obstacles.Width > c.Playfield.Width {
		errs = append(errs, fmt.Errorf("obstacle width %g exceeds playfield width %g", c.Obstacles.Width, c.Playfield.Width))
	}
	if c.Player.Step <= 0 {
		errs = append(errs, fmt.Errorf("player step must be positive, got %g", c.Player.Step))
	}
	if c.Player.BottomOffset < c.Player.Height || c.Player.BottomOffset > c.Playfield.Height {
		errs = append(errs, fmt.Errorf("player bottom offset %g must be within [%g, %g]", c.Player.BottomOffset, c.Player.Height, c.Playfield.Height))
	}
	if minX, maxX := c.LaneBounds(); maxX < minX {
		errs = append(errs, fmt.Errorf("lane is too narrow for a %g wide player", c.Player.Width))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid racer config: %w", err)
	}
	return nil
}
