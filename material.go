package gleam3d

import "math"

// Material describes the reflectance of a surface: its base color, how rough
// or mirror-like it is, and how metallic it behaves. Roughness and Metallic
// are valid on [0,1]; Clamped bounds out-of-range values.
type Material struct {
	// Color is the base surface color in linear space.
	Color Color

	// Roughness controls the specular highlight: 0 is a tight mirror-like
	// highlight, 1 a fully diffuse surface.
	Roughness float64

	// Metallic blends between dielectric behavior (white specular, full
	// diffuse) at 0 and metallic behavior (tinted specular, no diffuse) at 1.
	Metallic float64
}

// DefaultMaterial is a matte mid-gray.
func DefaultMaterial() Material {
	return Material{
		Color:     NewColor(0.5, 0.5, 0.5),
		Roughness: 0.5,
		Metallic:  0,
	}
}

// Clamped bounds every coefficient to its physically valid range.
func (m Material) Clamped() Material {
	m.Color = m.Color.ClampedNonNegative()
	m.Roughness = clamp01(m.Roughness)
	m.Metallic = clamp01(m.Metallic)
	return m
}

// shininess maps roughness to a Blinn-Phong specular exponent. A rough
// surface gets a broad lobe (exponent near 1), a smooth one a focal
// highlight (up to 128).
func (m Material) shininess() float64 {
	s := 1 - clamp01(m.Roughness)
	return 1 + 127*s*s
}

// specularColor is white for dielectrics and tinted by the base color for
// metals, weighted by the metallic factor.
func (m Material) specularColor() Color {
	t := clamp01(m.Metallic)
	white := NewColor(1, 1, 1)
	return Color{
		R: white.R + (m.Color.R-white.R)*t,
		G: white.G + (m.Color.G-white.G)*t,
		B: white.B + (m.Color.B-white.B)*t,
	}
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
