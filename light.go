package gleam3d

import "errors"

// Light is one of the closed set of light sources a scene can carry:
// AmbientLight, DirectionalLight or PointLight. The shading accumulator
// dispatches over the variants with a type switch.
type Light interface {
	isLight()
}

// EnvLookup is a precomputed irradiance approximation for ambient light,
// indexed by the surface normal and view direction. It is typically backed
// by an environment map decoded from an image; see EnvMap.
type EnvLookup func(normal, view Vector3) Color

// AmbientLight illuminates every surface uniformly. If Lookup is non-nil the
// color is modulated by the environment lookup; a nil Lookup degrades to a
// flat ambient term.
type AmbientLight struct {
	Color  Color
	Lookup EnvLookup
}

// DirectionalLight shines parallel rays with no attenuation, like the sun.
// Direction points from the scene toward the light source.
type DirectionalLight struct {
	Direction Vector3
	Color     Color
}

// PointLight radiates from a position with inverse-square attenuation.
// Radius is the physical emitter size; it bounds the attenuation so the
// contribution stays finite as a surface approaches the light.
type PointLight struct {
	Position Point3d
	Color    Color
	Radius   float64
}

func (AmbientLight) isLight()     {}
func (DirectionalLight) isLight() {}
func (PointLight) isLight()       {}

func NewAmbientLight(c Color, lookup EnvLookup) AmbientLight {
	return AmbientLight{Color: c.ClampedNonNegative(), Lookup: lookup}
}

func NewDirectionalLight(towardLight Vector3, c Color) DirectionalLight {
	return DirectionalLight{
		Direction: towardLight.Normalized(),
		Color:     c.ClampedNonNegative(),
	}
}

var ErrLightRadius = errors.New("point light radius must be greater than zero")

func NewPointLight(pos Point3d, c Color, radius float64) (PointLight, error) {
	if radius <= 0 {
		return PointLight{}, ErrLightRadius
	}
	return PointLight{
		Position: pos,
		Color:    c.ClampedNonNegative(),
		Radius:   radius,
	}, nil
}
