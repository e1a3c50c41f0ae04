package gleam3d

// Plane is an infinite plane in the form Ax + By + Cz + D = 0. The (A, B, C)
// normal is kept unit length so that SignedDistance is a true distance.
type Plane struct {
	A, B, C, D float64
}

// NewPlaneFromPoint builds a plane through the given point with the given
// normal. The normal does not need to be unit length.
func NewPlaneFromPoint(point Point3d, normal Vector3) Plane {
	n := normal.Normalized()
	return Plane{
		A: n.X,
		B: n.Y,
		C: n.Z,
		D: -(n.X*point.X + n.Y*point.Y + n.Z*point.Z),
	}
}

func (p Plane) Normal() Vector3 {
	return Vector3{X: p.A, Y: p.B, Z: p.C}
}

// SignedDistance is positive on the normal side of the plane.
func (p Plane) SignedDistance(pt Point3d) float64 {
	return p.A*pt.X + p.B*pt.Y + p.C*pt.Z + p.D
}

// ReflectPoint mirrors a point to the opposite side of the plane.
func (p Plane) ReflectPoint(pt Point3d) Point3d {
	d := p.SignedDistance(pt)
	return pt.Add(p.Normal().Scale(-2 * d))
}

// ReflectDirection mirrors a direction vector, negating its component along
// the plane normal. Length is preserved.
func (p Plane) ReflectDirection(v Vector3) Vector3 {
	n := p.Normal()
	return v.Sub(n.Scale(2 * v.Dot(n)))
}
