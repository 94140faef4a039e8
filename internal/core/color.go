package core

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGreen
	ColorNavy
)

// palette holds the reference RGB value (xterm defaults) for each color.
// ColorDefault has no entry and is never chosen by NearestColor.
var palette = map[Color]string{
	ColorRed:           "#800000",
	ColorGreen:         "#008000",
	ColorYellow:        "#808000",
	ColorBlue:          "#000080",
	ColorMagenta:       "#800080",
	ColorCyan:          "#008080",
	ColorWhite:         "#c0c0c0",
	ColorBrightRed:     "#ff0000",
	ColorBrightGreen:   "#00ff00",
	ColorBrightYellow:  "#ffff00",
	ColorBrightBlue:    "#0000ff",
	ColorBrightMagenta: "#ff00ff",
	ColorBrightCyan:    "#00ffff",
	ColorBrightWhite:   "#ffffff",
	ColorOrange:        "#ff8700",
	ColorGray:          "#8a8a8a",
	ColorDarkGreen:     "#005f00",
	ColorNavy:          "#303a44",
}

// paletteOrder fixes iteration order so ties resolve the same way every run.
var paletteOrder = []Color{
	ColorRed, ColorGreen, ColorYellow, ColorBlue, ColorMagenta, ColorCyan,
	ColorWhite, ColorBrightRed, ColorBrightGreen, ColorBrightYellow,
	ColorBrightBlue, ColorBrightMagenta, ColorBrightCyan, ColorBrightWhite,
	ColorOrange, ColorGray, ColorDarkGreen, ColorNavy,
}

// Hex returns the reference RGB value of the color, or "" for ColorDefault.
func (c Color) Hex() string {
	return palette[c]
}

// NearestColor maps an arbitrary color to the closest palette entry,
// measured in CIE Lab space. A nil color maps to ColorDefault.
func NearestColor(c color.Color) Color {
	if c == nil {
		return ColorDefault
	}
	target, ok := colorful.MakeColor(c)
	if !ok {
		return ColorDefault
	}

	best := ColorDefault
	bestDist := 0.0
	for _, candidate := range paletteOrder {
		ref, err := colorful.Hex(palette[candidate])
		if err != nil {
			continue
		}
		d := target.DistanceLab(ref)
		if best == ColorDefault || d < bestDist {
			best = candidate
			bestDist = d
		}
	}
	return best
}

// HSL builds a color from hue in degrees and saturation/lightness in [0, 1].
func HSL(hue, saturation, lightness float64) color.Color {
	return colorful.Hsl(hue, saturation, lightness).Clamped()
}

// MustHex parses a "#rrggbb" literal. Used for fixed scenery colors.
func MustHex(s string) color.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("core: invalid hex color " + s)
	}
	return c
}
