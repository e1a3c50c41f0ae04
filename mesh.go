package gleam3d

import "math"

// Mesh is triangle geometry in drawable-local coordinates, with one normal
// per vertex. Meshes are built once and never mutated afterwards, so any
// number of leaves can reference the same mesh.
type Mesh struct {
	Vertices []Point3d
	Normals  []Vector3
	Faces    [][3]int
}

// Drawable pairs shared geometry with a material. Leaf nodes reference
// drawables rather than owning them, which is what enables instancing.
type Drawable struct {
	Mesh     *Mesh
	Material Material
}

func NewDrawable(mesh *Mesh, mat Material) *Drawable {
	return &Drawable{Mesh: mesh, Material: mat.Clamped()}
}

// NewCubeMesh builds an axis-aligned cube of the given edge length centered
// on the origin, with flat per-face normals.
func NewCubeMesh(size float64) *Mesh {
	h := size / 2
	m := &Mesh{}

	addQuad := func(a, b, c, d Point3d, n Vector3) {
		base := len(m.Vertices)
		m.Vertices = append(m.Vertices, a, b, c, d)
		m.Normals = append(m.Normals, n, n, n, n)
		m.Faces = append(m.Faces,
			[3]int{base, base + 1, base + 2},
			[3]int{base, base + 2, base + 3})
	}

	addQuad(NewPoint3d(-h, -h, h), NewPoint3d(h, -h, h), NewPoint3d(h, h, h), NewPoint3d(-h, h, h), NewVector3(0, 0, 1))
	addQuad(NewPoint3d(h, -h, -h), NewPoint3d(-h, -h, -h), NewPoint3d(-h, h, -h), NewPoint3d(h, h, -h), NewVector3(0, 0, -1))
	addQuad(NewPoint3d(h, -h, h), NewPoint3d(h, -h, -h), NewPoint3d(h, h, -h), NewPoint3d(h, h, h), NewVector3(1, 0, 0))
	addQuad(NewPoint3d(-h, -h, -h), NewPoint3d(-h, -h, h), NewPoint3d(-h, h, h), NewPoint3d(-h, h, -h), NewVector3(-1, 0, 0))
	addQuad(NewPoint3d(-h, h, h), NewPoint3d(h, h, h), NewPoint3d(h, h, -h), NewPoint3d(-h, h, -h), NewVector3(0, 1, 0))
	addQuad(NewPoint3d(-h, -h, -h), NewPoint3d(h, -h, -h), NewPoint3d(h, -h, h), NewPoint3d(-h, -h, h), NewVector3(0, -1, 0))

	return m
}

// NewUVSphereMesh builds a latitude/longitude sphere with smooth radial
// normals. segments is the number of longitudinal slices, rings the number
// of latitudinal bands; both are clamped to sane minimums.
func NewUVSphereMesh(radius float64, segments, rings int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}

	m := &Mesh{}
	for ring := 0; ring <= rings; ring++ {
		phi := math.Pi * float64(ring) / float64(rings)
		y := math.Cos(phi)
		r := math.Sin(phi)
		for seg := 0; seg <= segments; seg++ {
			theta := 2 * math.Pi * float64(seg) / float64(segments)
			n := NewVector3(r*math.Cos(theta), y, r*math.Sin(theta))
			m.Vertices = append(m.Vertices, NewPoint3d(0, 0, 0).Add(n.Scale(radius)))
			m.Normals = append(m.Normals, n)
		}
	}

	stride := segments + 1
	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			a := ring*stride + seg
			b := a + stride
			m.Faces = append(m.Faces,
				[3]int{a, b, a + 1},
				[3]int{a + 1, b, b + 1})
		}
	}
	return m
}
