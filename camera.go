package gleam3d

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Viewpoint is the observer's position and orthonormal view basis, built
// from eye/focal/up vectors.
type Viewpoint struct {
	Eye     Point3d
	Forward Vector3
	Right   Vector3
	Up      Vector3
}

var (
	// ErrDegenerateViewpoint reports an eye/focal/up combination with no
	// well-defined view basis: eye coinciding with the focal point, or up
	// parallel to the viewing axis.
	ErrDegenerateViewpoint = errors.New("degenerate viewpoint")

	// ErrCameraParams reports out-of-range projection parameters.
	ErrCameraParams = errors.New("invalid camera parameters")
)

const parallelEpsilon = 1e-9

// LookAt constructs the view basis for an eye looking at a focal point with
// the given up hint. It fails rather than returning a NaN-containing basis:
// callers must not render with an invalid viewpoint.
func LookAt(eye, focal Point3d, up Vector3) (Viewpoint, error) {
	gaze := focal.Sub(eye)
	if gaze.Length() == 0 {
		return Viewpoint{}, fmt.Errorf("%w: eye equals focal point", ErrDegenerateViewpoint)
	}
	forward := gaze.Normalized()

	right := forward.Cross(up.Normalized())
	if right.Length() < parallelEpsilon {
		return Viewpoint{}, fmt.Errorf("%w: up direction parallel to view axis", ErrDegenerateViewpoint)
	}
	right = right.Normalized()

	return Viewpoint{
		Eye:     eye,
		Forward: forward,
		Right:   right,
		Up:      right.Cross(forward),
	}, nil
}

// Camera couples a viewpoint with perspective projection parameters and the
// nominal screen size the projection targets.
type Camera struct {
	View   Viewpoint
	Width  int
	Height int
	FOV    float64
	Near   float64
	Far    float64

	viewProj mgl64.Mat4
}

// Perspective derives a perspective camera from a viewpoint. fov is the
// vertical field of view in radians and must lie in (0, pi); near must be
// positive and strictly less than far.
func Perspective(vp Viewpoint, width, height int, fov, near, far float64) (Camera, error) {
	if width <= 0 || height <= 0 {
		return Camera{}, fmt.Errorf("%w: screen size %dx%d", ErrCameraParams, width, height)
	}
	if fov <= 0 || fov >= math.Pi {
		return Camera{}, fmt.Errorf("%w: fov %v not in (0, pi)", ErrCameraParams, fov)
	}
	if near <= 0 || near >= far {
		return Camera{}, fmt.Errorf("%w: near %v, far %v", ErrCameraParams, near, far)
	}

	center := vp.Eye.Add(vp.Forward)
	view := mgl64.LookAtV(vp.Eye.Vector().Mgl(), center.Vector().Mgl(), vp.Up.Mgl())
	proj := mgl64.Perspective(fov, float64(width)/float64(height), near, far)

	return Camera{
		View:     vp,
		Width:    width,
		Height:   height,
		FOV:      fov,
		Near:     near,
		Far:      far,
		viewProj: proj.Mul4(view),
	}, nil
}

// ProjectNDC maps a world-space point to normalized device coordinates.
// ok is false when the point is behind the eye plane.
func (c Camera) ProjectNDC(p Point3d) (ndc Vector3, ok bool) {
	clip := c.viewProj.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	w := clip.W()
	if w <= 0 {
		return Vector3{}, false
	}
	return NewVector3(clip.X()/w, clip.Y()/w, clip.Z()/w), true
}

// Project maps a world-space point to screen coordinates at the camera's
// nominal size, with the origin at the top-left corner. The returned depth
// is the NDC depth, usable for ordering.
func (c Camera) Project(p Point3d) (x, y, depth float64, ok bool) {
	ndc, ok := c.ProjectNDC(p)
	if !ok {
		return 0, 0, 0, false
	}
	x = (ndc.X + 1) / 2 * float64(c.Width)
	y = (1 - ndc.Y) / 2 * float64(c.Height)
	return x, y, ndc.Z, true
}
