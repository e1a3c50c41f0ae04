package gleam3d

import (
	"image/color"
	"math"
)

// Color is a linear-space RGB triple. Components are non-negative and
// unbounded above while light contributions accumulate; conversion to a
// display color clamps and gamma-corrects.
type Color struct {
	R, G, B float64
}

func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

func (c Color) Add(other Color) Color {
	return Color{R: c.R + other.R, G: c.G + other.G, B: c.B + other.B}
}

func (c Color) Scale(s float64) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s}
}

// Mul is the componentwise product, used to filter light through a surface
// color.
func (c Color) Mul(other Color) Color {
	return Color{R: c.R * other.R, G: c.G * other.G, B: c.B * other.B}
}

// ClampedNonNegative zeroes any negative component. Light colors must never
// subtract energy.
func (c Color) ClampedNonNegative() Color {
	return Color{R: math.Max(0, c.R), G: math.Max(0, c.G), B: math.Max(0, c.B)}
}

// ToRGBA converts an accumulated linear color to a display color, applying
// the gamma exponent once. gamma is the exponent itself (about 1/2.2 for
// standard displays).
func (c Color) ToRGBA(gamma float64) color.RGBA {
	encode := func(v float64) uint8 {
		if v <= 0 {
			return 0
		}
		v = math.Pow(v, gamma)
		if v >= 1 {
			return 255
		}
		return uint8(v*255 + 0.5)
	}
	return color.RGBA{R: encode(c.R), G: encode(c.G), B: encode(c.B), A: 255}
}

// ColorFromRGBA converts an 8-bit color to a normalized linear triple.
func ColorFromRGBA(c color.RGBA) Color {
	return Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}
