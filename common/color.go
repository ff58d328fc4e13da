package common

import (
	"image/color"
	"math"
)

// HSVToRGB converts hue/saturation/value in [0, 1] to a display color.
// Blocks store their color as HSV fields; this is the conversion the editor
// uses to put them on screen.
func HSVToRGB(h, s, v float64) color.RGBA {
	h = h - math.Floor(h)
	s = Clamp(s, 0, 1)
	v = Clamp(v, 0, 1)

	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	u := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, u, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, u
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = u, p, v
	case 5:
		r, g, b = v, p, q
	}
	return color.RGBA{
		R: uint8(math.Round(r * 255)),
		G: uint8(math.Round(g * 255)),
		B: uint8(math.Round(b * 255)),
		A: 255,
	}
}
