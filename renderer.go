package gleam3d

import (
	"image"
	"image/color"
)

// Options configures a render pass.
type Options struct {
	// DevicePixelRatio scales the output resolution relative to the camera's
	// nominal screen size. Must be positive; non-positive values fall back
	// to the default.
	DevicePixelRatio float64

	// GammaCorrection is the exponent applied to each accumulated color once,
	// after shading, before display. Must be positive; non-positive values
	// fall back to the default of 1/2.2.
	GammaCorrection float64
}

func DefaultOptions() Options {
	return Options{
		DevicePixelRatio: 1,
		GammaCorrection:  1 / 2.2,
	}
}

func (o Options) normalized() Options {
	def := DefaultOptions()
	if o.DevicePixelRatio <= 0 {
		o.DevicePixelRatio = def.DevicePixelRatio
	}
	if o.GammaCorrection <= 0 {
		o.GammaCorrection = def.GammaCorrection
	}
	return o
}

// BackgroundColor is the clear color for pixels no geometry covers.
var BackgroundColor = color.RGBA{R: 10, G: 10, B: 14, A: 255}

// RenderWith renders the scene graph under the given lights and camera into
// a new color buffer. The pipeline resolves every leaf's world frame
// top-down, projects its geometry through the camera, shades each covered
// fragment by accumulating all light contributions, and gamma-corrects on
// pixel write.
//
// An empty light list or a nil scene is fine: the buffer comes back as
// background (plus ambient-only shading if an ambient light is present).
func RenderWith(opts Options, lights []Light, cam Camera, scene Node) *image.RGBA {
	opts = opts.normalized()

	bufW := int(float64(cam.Width)*opts.DevicePixelRatio + 0.5)
	bufH := int(float64(cam.Height)*opts.DevicePixelRatio + 0.5)
	fb := newFrameBuffer(bufW, bufH, BackgroundColor)
	if scene == nil {
		return fb.img
	}

	eye := cam.View.Eye
	gamma := opts.GammaCorrection

	Walk(scene, IdentityFrame(), func(leaf LeafNode, world Frame) {
		d := leaf.Drawable
		if d == nil || d.Mesh == nil || len(d.Mesh.Faces) == 0 {
			return
		}
		mesh := d.Mesh

		verts := make([]screenVertex, len(mesh.Vertices))
		visible := make([]bool, len(mesh.Vertices))
		for i, p := range mesh.Vertices {
			wp := world.ToWorldPoint(p)
			ndc, ok := cam.ProjectNDC(wp)
			visible[i] = ok
			if !ok {
				continue
			}
			verts[i] = screenVertex{
				x:      float32((ndc.X + 1) / 2 * float64(bufW)),
				y:      float32((1 - ndc.Y) / 2 * float64(bufH)),
				z:      float32(ndc.Z),
				world:  wp,
				normal: world.ToWorldDirection(mesh.Normals[i]),
			}
		}

		shade := func(p Point3d, n Vector3) color.RGBA {
			viewDir := eye.Sub(p)
			return Shade(p, n, viewDir, d.Material, lights).ToRGBA(gamma)
		}

		for _, face := range mesh.Faces {
			// Triangles with any vertex behind the eye plane are rejected
			// outright rather than clipped.
			if !visible[face[0]] || !visible[face[1]] || !visible[face[2]] {
				continue
			}
			fb.rasterize(verts[face[0]], verts[face[1]], verts[face[2]], shade)
		}
	})

	return fb.img
}
