package gleam3d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorldRenderWithoutCamera(t *testing.T) {
	w := NewWorld()
	assert.Nil(t, w.Render(DefaultOptions()))
}

func TestWorldRenderProducesFrame(t *testing.T) {
	w := NewWorld()
	w.SetCamera(testCamera(t, 64, 48))
	w.AddLight(frontLight(NewColor(1, 1, 1)))
	w.SetScene(sphereScene(DefaultMaterial()))

	frame := w.Render(DefaultOptions())
	require.NotNil(t, frame)
	assert.Equal(t, 64, frame.Bounds().Dx())
	assert.NotEqual(t, BackgroundColor, frame.RGBAAt(32, 24))
}

func TestWorldLightManagement(t *testing.T) {
	w := NewWorld()
	w.AddLight(frontLight(NewColor(1, 1, 1)))
	w.AddLight(NewAmbientLight(NewColor(0.1, 0.1, 0.1), nil))
	assert.Len(t, w.Lights(), 2)

	w.SetLights([]Light{frontLight(NewColor(1, 1, 1))})
	assert.Len(t, w.Lights(), 1)
}
