package gleam3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector3 is a direction or displacement in 3D space. It is a plain value
// type: every operation returns a new vector and never mutates the receiver.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vector3) Neg() Vector3 {
	return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalized returns the unit vector in the same direction. The zero vector
// normalizes to itself rather than producing NaN components.
func (v Vector3) Normalized() Vector3 {
	length := v.Length()
	if length == 0 {
		return v
	}
	return v.Scale(1.0 / length)
}

func (v Vector3) DistanceTo(other Vector3) float64 {
	return v.Sub(other).Length()
}

// Mgl converts to an mgl64 vector for use with the mathgl matrix routines.
func (v Vector3) Mgl() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func VectorFromMgl(m mgl64.Vec3) Vector3 {
	return Vector3{X: m.X(), Y: m.Y(), Z: m.Z()}
}
