package gleam3d

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"
)

// frameBuffer is the render target: a color buffer plus a per-pixel depth
// buffer in NDC depth units.
type frameBuffer struct {
	w, h  int
	img   *image.RGBA
	depth []float32
}

func newFrameBuffer(w, h int, clear color.RGBA) *frameBuffer {
	fb := &frameBuffer{
		w:     w,
		h:     h,
		img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		depth: make([]float32, w*h),
	}
	for i := range fb.depth {
		fb.depth[i] = math32.MaxFloat32
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			fb.img.SetRGBA(x, y, clear)
		}
	}
	return fb
}

// screenVertex is a projected vertex: buffer-space position and depth, plus
// the world-space attributes interpolated across the triangle.
type screenVertex struct {
	x, y, z float32
	world   Point3d
	normal  Vector3
}

func edgeFn(ax, ay, bx, by, px, py float32) float32 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// rasterize fills one triangle with depth testing, invoking shade once per
// covered fragment with the barycentrically interpolated world position and
// normal. Both windings are filled, since mirrored geometry legitimately
// reverses winding.
func (fb *frameBuffer) rasterize(v0, v1, v2 screenVertex, shade func(p Point3d, n Vector3) color.RGBA) {
	area := edgeFn(v0.x, v0.y, v1.x, v1.y, v2.x, v2.y)
	if area == 0 {
		return
	}
	if area < 0 {
		v1, v2 = v2, v1
		area = -area
	}

	minX := int(math32.Floor(math32.Min(v0.x, math32.Min(v1.x, v2.x))))
	maxX := int(math32.Ceil(math32.Max(v0.x, math32.Max(v1.x, v2.x))))
	minY := int(math32.Floor(math32.Min(v0.y, math32.Min(v1.y, v2.y))))
	maxY := int(math32.Ceil(math32.Max(v0.y, math32.Max(v1.y, v2.y))))

	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > fb.w-1 {
		maxX = fb.w - 1
	}
	if maxY > fb.h-1 {
		maxY = fb.h - 1
	}

	for y := minY; y <= maxY; y++ {
		py := float32(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5

			w0 := edgeFn(v1.x, v1.y, v2.x, v2.y, px, py)
			w1 := edgeFn(v2.x, v2.y, v0.x, v0.y, px, py)
			w2 := edgeFn(v0.x, v0.y, v1.x, v1.y, px, py)
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			w0 /= area
			w1 /= area
			w2 /= area

			z := w0*v0.z + w1*v1.z + w2*v2.z
			idx := y*fb.w + x
			if z >= fb.depth[idx] {
				continue
			}
			fb.depth[idx] = z

			a, b, c := float64(w0), float64(w1), float64(w2)
			p := NewPoint3d(
				a*v0.world.X+b*v1.world.X+c*v2.world.X,
				a*v0.world.Y+b*v1.world.Y+c*v2.world.Y,
				a*v0.world.Z+b*v1.world.Z+c*v2.world.Z,
			)
			n := v0.normal.Scale(a).
				Add(v1.normal.Scale(b)).
				Add(v2.normal.Scale(c))

			fb.img.SetRGBA(x, y, shade(p, n))
		}
	}
}
