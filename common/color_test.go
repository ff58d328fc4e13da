package common

import (
	"image/color"
	"testing"
)

func TestHSVToRGB(t *testing.T) {
	cases := []struct {
		name    string
		h, s, v float64
		want    color.RGBA
	}{
		{"black", 0, 0, 0, color.RGBA{0, 0, 0, 255}},
		{"white", 0, 0, 1, color.RGBA{255, 255, 255, 255}},
		{"red", 0, 1, 1, color.RGBA{255, 0, 0, 255}},
		{"green", 1.0 / 3, 1, 1, color.RGBA{0, 255, 0, 255}},
		{"blue", 2.0 / 3, 1, 1, color.RGBA{0, 0, 255, 255}},
		{"hue_wraps", 4.0 / 3, 1, 1, color.RGBA{0, 255, 0, 255}},
		{"gray", 0.5, 0, 0.5, color.RGBA{128, 128, 128, 255}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := HSVToRGB(c.h, c.s, c.v); got != c.want {
				t.Fatalf("HSVToRGB(%v, %v, %v) = %+v, want %+v", c.h, c.s, c.v, got, c.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if Clamp(2, 0, 1) != 1 || Clamp(-1, 0, 1) != 0 || Clamp(0.5, 0, 1) != 0.5 {
		t.Fatalf("Clamp out of contract")
	}
}
