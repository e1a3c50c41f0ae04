package gleam3d

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaterialClampedBoundsCoefficients(t *testing.T) {
	testCases := []struct {
		name string
		in   Material
		want Material
	}{
		{
			name: "in range untouched",
			in:   Material{Color: NewColor(0.5, 0.5, 0.5), Roughness: 0.3, Metallic: 0.7},
			want: Material{Color: NewColor(0.5, 0.5, 0.5), Roughness: 0.3, Metallic: 0.7},
		},
		{
			name: "above range clamped down",
			in:   Material{Color: NewColor(1, 1, 1), Roughness: 2, Metallic: 1.5},
			want: Material{Color: NewColor(1, 1, 1), Roughness: 1, Metallic: 1},
		},
		{
			name: "below range clamped up",
			in:   Material{Color: NewColor(-1, 0.5, 0.5), Roughness: -0.5, Metallic: -1},
			want: Material{Color: NewColor(0, 0.5, 0.5), Roughness: 0, Metallic: 0},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.Clamped())
		})
	}
}

func TestShininessGrowsAsRoughnessDrops(t *testing.T) {
	rough := Material{Roughness: 1}
	mid := Material{Roughness: 0.5}
	smooth := Material{Roughness: 0}

	assert.Less(t, rough.shininess(), mid.shininess())
	assert.Less(t, mid.shininess(), smooth.shininess())
	assert.Equal(t, 1.0, rough.shininess())
	assert.Equal(t, 128.0, smooth.shininess())
}

func TestSpecularColorMetallicTint(t *testing.T) {
	m := Material{Color: NewColor(1, 0, 0)}

	m.Metallic = 0
	assertColorsAlmostEqual(t, NewColor(1, 1, 1), m.specularColor())

	m.Metallic = 1
	assertColorsAlmostEqual(t, NewColor(1, 0, 0), m.specularColor())

	m.Metallic = 0.5
	assertColorsAlmostEqual(t, NewColor(1, 0.5, 0.5), m.specularColor())
}
