package core

import (
	"image/color"
	"testing"
)

func TestNearestColor(t *testing.T) {
	tests := []struct {
		name     string
		in       color.Color
		expected Color
	}{
		{"pure red", color.RGBA{R: 255, A: 255}, ColorBrightRed},
		{"pure blue", color.RGBA{B: 255, A: 255}, ColorBrightBlue},
		{"white", color.RGBA{R: 255, G: 255, B: 255, A: 255}, ColorBrightWhite},
		{"grass", MustHex("#2d5016"), ColorDarkGreen},
		{"nil", nil, ColorDefault},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NearestColor(tc.in); got != tc.expected {
				t.Errorf("NearestColor() = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestNearestColorNeverDefault(t *testing.T) {
	for hue := 0.0; hue < 360; hue += 7.5 {
		if NearestColor(HSL(hue, 0.7, 0.5)) == ColorDefault {
			t.Fatalf("hue %.1f mapped to ColorDefault", hue)
		}
	}
}
