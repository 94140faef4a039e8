package racer

import (
	"image/color"

	"github.com/vovakirdan/tui-racer/internal/core"
)

// Player is the car steered by the user. X, Y is the top-left corner.
type Player struct {
	X, Y   float64
	Width  float64
	Height float64
	Step   float64 // Horizontal move per key press
}

// Rect returns the collision box of the player.
func (p Player) Rect() core.RectF {
	return core.RectF{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// Obstacle is an oncoming car. Its speed is fixed when it spawns.
type Obstacle struct {
	ID     uint64 // Unique within a run
	X, Y   float64
	Width  float64
	Height float64
	Speed  float64 // Pixels per tick
	Hue    float64 // Degrees, used to derive Color
	Color  color.Color
}

// Rect returns the collision box of the obstacle.
func (o Obstacle) Rect() core.RectF {
	return core.RectF{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
}
