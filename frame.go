package gleam3d

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
)

// Frame is a rigid local coordinate system: an origin plus three orthonormal
// basis directions. Frames are immutable values; every operation returns a
// new Frame and leaves the receiver untouched. All operations except
// MirrorAcross preserve handedness.
type Frame struct {
	Origin Point3d
	X      Vector3
	Y      Vector3
	Z      Vector3
}

// IdentityFrame is the world frame: origin at zero, axes aligned with the
// world axes.
func IdentityFrame() Frame {
	return Frame{
		Origin: NewPoint3d(0, 0, 0),
		X:      NewVector3(1, 0, 0),
		Y:      NewVector3(0, 1, 0),
		Z:      NewVector3(0, 0, 1),
	}
}

// FrameOp is a transform applied to a single frame, as accepted by
// Node.TransformBy.
type FrameOp func(Frame) Frame

// Axis is a rotation axis: a point the axis passes through and a direction.
type Axis struct {
	Point Point3d
	Dir   Vector3
}

var ErrZeroAxis = errors.New("rotation axis direction has zero length")

// NewAxis validates the direction and returns a normalized axis. A
// zero-length direction is a precondition violation, reported as an error
// rather than letting a degenerate rotation produce NaN frames downstream.
func NewAxis(point Point3d, dir Vector3) (Axis, error) {
	if dir.Length() == 0 {
		return Axis{}, ErrZeroAxis
	}
	return Axis{Point: point, Dir: dir.Normalized()}, nil
}

// RotateAround rotates the frame by angle radians around the axis. Distances
// and basis orthonormality are preserved.
func (f Frame) RotateAround(axis Axis, angle float64) Frame {
	rot := mgl64.HomogRotate3D(angle, axis.Dir.Mgl())

	rotateDir := func(v Vector3) Vector3 {
		r := rot.Mul4x1(mgl64.Vec4{v.X, v.Y, v.Z, 0})
		return NewVector3(r.X(), r.Y(), r.Z())
	}

	// The origin orbits the axis point; basis directions only rotate.
	arm := f.Origin.Sub(axis.Point)
	return Frame{
		Origin: axis.Point.Add(rotateDir(arm)),
		X:      rotateDir(f.X),
		Y:      rotateDir(f.Y),
		Z:      rotateDir(f.Z),
	}
}

// TranslateBy shifts the frame origin; the basis is unchanged.
func (f Frame) TranslateBy(v Vector3) Frame {
	return Frame{
		Origin: f.Origin.Add(v),
		X:      f.X,
		Y:      f.Y,
		Z:      f.Z,
	}
}

// MirrorAcross reflects the frame in the plane. This is the one operation
// that flips handedness.
func (f Frame) MirrorAcross(p Plane) Frame {
	return Frame{
		Origin: p.ReflectPoint(f.Origin),
		X:      p.ReflectDirection(f.X),
		Y:      p.ReflectDirection(f.Y),
		Z:      p.ReflectDirection(f.Z),
	}
}

// RelativeTo re-expresses the frame in other's coordinate system: the result
// is the same physical frame, described from other's point of view. It is
// the exact inverse of PlaceIn.
func (f Frame) RelativeTo(other Frame) Frame {
	toLocalDir := func(v Vector3) Vector3 {
		return NewVector3(v.Dot(other.X), v.Dot(other.Y), v.Dot(other.Z))
	}
	d := f.Origin.Sub(other.Origin)
	return Frame{
		Origin: NewPoint3d(d.Dot(other.X), d.Dot(other.Y), d.Dot(other.Z)),
		X:      toLocalDir(f.X),
		Y:      toLocalDir(f.Y),
		Z:      toLocalDir(f.Z),
	}
}

// PlaceIn embeds a frame defined in other's local coordinates into the space
// other itself lives in. It is the exact inverse of RelativeTo, and also the
// composition step used to resolve scene-graph world frames: a child's world
// frame is child.PlaceIn(parentWorld).
func (f Frame) PlaceIn(other Frame) Frame {
	return Frame{
		Origin: other.ToWorldPoint(f.Origin),
		X:      other.ToWorldDirection(f.X),
		Y:      other.ToWorldDirection(f.Y),
		Z:      other.ToWorldDirection(f.Z),
	}
}

// ToWorldPoint maps a point given in frame-local coordinates into the space
// the frame lives in.
func (f Frame) ToWorldPoint(p Point3d) Point3d {
	return f.Origin.
		Add(f.X.Scale(p.X)).
		Add(f.Y.Scale(p.Y)).
		Add(f.Z.Scale(p.Z))
}

// ToWorldDirection maps a direction given in frame-local coordinates into
// the space the frame lives in. Translation does not apply to directions.
func (f Frame) ToWorldDirection(v Vector3) Vector3 {
	return f.X.Scale(v.X).
		Add(f.Y.Scale(v.Y)).
		Add(f.Z.Scale(v.Z))
}

// Handedness is +1 for a right-handed basis and -1 after an odd number of
// mirrorings.
func (f Frame) Handedness() float64 {
	if f.X.Cross(f.Y).Dot(f.Z) < 0 {
		return -1
	}
	return 1
}
