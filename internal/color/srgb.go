package color

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Colorful returns the sRGB rendition of c, clamped into gamut.
func (c OKLCH) Colorful() colorful.Color {
	return colorful.OkLch(c.L, c.C, c.H).Clamped()
}

// Colorful returns the channels of c as a colorful.Color. Alpha is dropped.
func (c RGBA) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// FromColorful converts an sRGB colour to 8-bit channels with an alpha of 1.
func FromColorful(c colorful.Color) RGBA {
	r, g, b := c.Clamped().RGB255()
	return RGBA{R: r, G: g, B: b, A: 1}
}

// Approximate derives a rough OKLCH triple from an sRGB colour using HSL
// style channel statistics: lightness is the mean of the largest and smallest
// channel, chroma is their difference and hue follows the dominant channel.
// It is not an OKLab conversion and is only meant to seed a usable ramp.
func Approximate(c RGBA) OKLCH {
	cf := c.Colorful()
	h, _, l := cf.Hsl()
	hi := math.Max(cf.R, math.Max(cf.G, cf.B))
	lo := math.Min(cf.R, math.Min(cf.G, cf.B))
	return OKLCH{L: l, C: hi - lo, H: h}
}

// WithLightness returns the sRGB colour with the hue and HSL saturation of c
// at lightness l.
func WithLightness(c RGBA, l float64) RGBA {
	h, s, _ := c.Colorful().Hsl()
	return FromColorful(colorful.Hsl(h, s, l))
}
