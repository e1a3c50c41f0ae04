package gleam3d

// Point3d is a position in 3D space, kept distinct from Vector3 so that
// positions and directions cannot be mixed up in transform code.
type Point3d struct {
	X float64
	Y float64
	Z float64
}

func NewPoint3d(x, y, z float64) Point3d {
	return Point3d{X: x, Y: y, Z: z}
}

// Add displaces the point by a vector.
func (p Point3d) Add(v Vector3) Point3d {
	return Point3d{X: p.X + v.X, Y: p.Y + v.Y, Z: p.Z + v.Z}
}

// Sub returns the displacement from other to p.
func (p Point3d) Sub(other Point3d) Vector3 {
	return Vector3{X: p.X - other.X, Y: p.Y - other.Y, Z: p.Z - other.Z}
}

func (p Point3d) Vector() Vector3 {
	return Vector3{X: p.X, Y: p.Y, Z: p.Z}
}

func (p Point3d) DistanceTo(other Point3d) float64 {
	return p.Sub(other).Length()
}
