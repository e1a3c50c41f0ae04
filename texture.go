package gleam3d

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"math"
	"os"
)

// EnvMap is an irradiance lookup table for ambient lighting, backed by a
// decoded image. The image is treated as a precomputed environment map: rows
// index the normal/view relationship, columns the normal's azimuth. Loading
// happens outside the render core; the core only ever sees the resolved
// table (or its absence).
type EnvMap struct {
	img    image.Image
	bounds image.Rectangle
}

// LoadEnvironmentMap decodes an environment map from an image file. Failure
// to load is an ordinary recoverable error: callers keep rendering with a
// flat ambient term (a nil EnvLookup) or show a fallback message.
func LoadEnvironmentMap(path string) (*EnvMap, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open environment map %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("error decoding environment map %s: %w", path, err)
	}

	em := NewEnvMapFromImage(img)
	log.Printf("Loaded environment map %s (%dx%d)", path, em.bounds.Dx(), em.bounds.Dy())
	return em, nil
}

func NewEnvMapFromImage(img image.Image) *EnvMap {
	return &EnvMap{img: img, bounds: img.Bounds()}
}

// Lookup samples the irradiance for a surface with the given normal as seen
// from the given view direction. Both are assumed normalized.
func (e *EnvMap) Lookup(normal, view Vector3) Color {
	// Azimuth of the normal selects the column, the normal/view angle the row.
	u := (math.Atan2(normal.Z, normal.X) + math.Pi) / (2 * math.Pi)
	v := 0.5 * (1 + clampDot(normal, view))

	x := e.bounds.Min.X + int(u*float64(e.bounds.Dx()-1))
	y := e.bounds.Min.Y + int(v*float64(e.bounds.Dy()-1))

	r, g, b, _ := e.img.At(x, y).RGBA()
	return Color{
		R: float64(r) / 0xffff,
		G: float64(g) / 0xffff,
		B: float64(b) / 0xffff,
	}
}

func clampDot(a, b Vector3) float64 {
	d := a.Dot(b)
	if d < -1 {
		return -1
	}
	if d > 1 {
		return 1
	}
	return d
}
