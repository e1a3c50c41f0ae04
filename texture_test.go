package gleam3d

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvironmentMapMissingFile(t *testing.T) {
	_, err := LoadEnvironmentMap(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
}

func TestLoadEnvironmentMapUndecodable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	_, err := LoadEnvironmentMap(path)
	assert.Error(t, err)
}

func TestEnvMapLookupUniformImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 16; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 51, G: 102, B: 255, A: 255})
		}
	}
	env := NewEnvMapFromImage(img)

	directions := []Vector3{
		NewVector3(0, 1, 0),
		NewVector3(1, 0, 0),
		NewVector3(0, 0, -1).Normalized(),
		NewVector3(1, 1, 1).Normalized(),
	}
	for _, n := range directions {
		got := env.Lookup(n, NewVector3(0, 1, 0))
		assert.InDelta(t, 0.2, got.R, 0.01)
		assert.InDelta(t, 0.4, got.G, 0.01)
		assert.InDelta(t, 1.0, got.B, 0.01)
	}
}

func TestEnvMapLookupStaysInBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	env := NewEnvMapFromImage(img)

	// Extremes of azimuth and normal/view alignment must not index outside
	// the image.
	assert.NotPanics(t, func() {
		env.Lookup(NewVector3(0, 1, 0), NewVector3(0, 1, 0))
		env.Lookup(NewVector3(0, 1, 0), NewVector3(0, -1, 0))
		env.Lookup(NewVector3(-1, 0, 0), NewVector3(-1, 0, 0))
	})
}
