package gleam3d

import "image"

// World collects everything a render pass needs: the scene root, the light
// list and the active camera. It is assembly-only state; the transform and
// shading core stays pure.
type World struct {
	scene     Node
	lights    []Light
	camera    Camera
	hasCamera bool
}

func NewWorld() *World {
	return &World{scene: Group()}
}

// SetScene replaces the scene root.
func (w *World) SetScene(n Node) {
	w.scene = n
}

func (w *World) Scene() Node {
	return w.scene
}

func (w *World) AddLight(l Light) {
	w.lights = append(w.lights, l)
}

// SetLights replaces the whole light list, for callers that recompute
// time-dependent lights every tick.
func (w *World) SetLights(lights []Light) {
	w.lights = lights
}

func (w *World) Lights() []Light {
	return w.lights
}

func (w *World) SetCamera(c Camera) {
	w.camera = c
	w.hasCamera = true
}

// Render produces a frame with the world's current scene, lights and camera.
// Without a camera there is nothing to project, so nil is returned.
func (w *World) Render(opts Options) *image.RGBA {
	if !w.hasCamera {
		return nil
	}
	return RenderWith(opts, w.lights, w.camera, w.scene)
}
