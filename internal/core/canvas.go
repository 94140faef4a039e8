package core

import (
	"image/color"
	"math"
)

// Surface is the drawing contract games render through. Coordinates are in
// world units (playfield pixels); each host decides how a unit maps to output.
type Surface interface {
	// Clear paints the whole surface with the given color.
	Clear(c color.Color)
	// FillRect paints an axis-aligned rectangle.
	FillRect(x, y, w, h float64, c color.Color)
}

// Terminal cells are roughly twice as tall as they are wide.
const cellAspect = 2.0

// Canvas adapts a Screen region to the Surface contract by scaling world
// units into character cells. Drawing is clipped to the region.
type Canvas struct {
	dst    *Screen
	area   Rect
	scaleX float64
	scaleY float64
	fill   rune
	shade  rune
}

// NewCanvas fits a worldW x worldH world into area, preserving the world's
// aspect ratio and centering it horizontally.
func NewCanvas(dst *Screen, area Rect, worldW, worldH float64) *Canvas {
	c := &Canvas{dst: dst, fill: '█', shade: '░'}
	if worldW <= 0 || worldH <= 0 || area.W <= 0 || area.H <= 0 {
		c.area = NewRect(area.X, area.Y, 0, 0)
		return c
	}

	scaleY := float64(area.H) / worldH
	scaleX := scaleY * cellAspect
	if worldW*scaleX > float64(area.W) {
		scaleX = float64(area.W) / worldW
		scaleY = scaleX / cellAspect
	}

	w := Min(area.W, int(math.Round(worldW*scaleX)))
	h := Min(area.H, int(math.Round(worldH*scaleY)))
	c.area = NewRect(area.X+(area.W-w)/2, area.Y, w, h)
	c.scaleX = scaleX
	c.scaleY = scaleY
	return c
}

// Area returns the cell region the world occupies.
func (c *Canvas) Area() Rect {
	return c.area
}

// Clear shades the canvas region. A nil color clears it to blank cells.
func (c *Canvas) Clear(col color.Color) {
	if col == nil {
		c.dst.DrawRectColored(c.area, ' ', ColorDefault)
		return
	}
	c.dst.DrawRectColored(c.area, c.shade, NearestColor(col))
}

// FillRect paints world rectangle (x, y, w, h) with solid blocks.
// Any rectangle with positive size covers at least one cell when it lies
// inside the region.
func (c *Canvas) FillRect(x, y, w, h float64, col color.Color) {
	if w <= 0 || h <= 0 || c.area.W == 0 {
		return
	}

	x0 := int(math.Round(x * c.scaleX))
	y0 := int(math.Round(y * c.scaleY))
	x1 := int(math.Round((x + w) * c.scaleX))
	y1 := int(math.Round((y + h) * c.scaleY))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	x0 = Clamp(x0, 0, c.area.W)
	x1 = Clamp(x1, 0, c.area.W)
	y0 = Clamp(y0, 0, c.area.H)
	y1 = Clamp(y1, 0, c.area.H)

	cellColor := NearestColor(col)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			c.dst.SetColored(c.area.X+cx, c.area.Y+cy, c.fill, cellColor)
		}
	}
}
