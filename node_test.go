package gleam3d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupTranslationShiftsAllLeaves(t *testing.T) {
	sphere := NewDrawable(NewUVSphereMesh(1, 8, 4), DefaultMaterial())
	cube := NewDrawable(NewCubeMesh(1), DefaultMaterial())

	leafA := TranslateBy(NewLeafNode(sphere), NewVector3(0, 0, 5))
	leafB := TranslateBy(NewLeafNode(cube), NewVector3(0, 3, 0))
	scene := Group(leafA, leafB)

	beforeA, ok := WorldFrame(scene, func(l LeafNode) bool { return l.Drawable == sphere })
	require.True(t, ok)
	beforeB, ok := WorldFrame(scene, func(l LeafNode) bool { return l.Drawable == cube })
	require.True(t, ok)

	moved := TranslateBy(scene, NewVector3(1, 0, 0))

	afterA, ok := WorldFrame(moved, func(l LeafNode) bool { return l.Drawable == sphere })
	require.True(t, ok)
	afterB, ok := WorldFrame(moved, func(l LeafNode) bool { return l.Drawable == cube })
	require.True(t, ok)

	assertVectorsAlmostEqual(t, NewVector3(1, 0, 0), afterA.Origin.Sub(beforeA.Origin))
	assertVectorsAlmostEqual(t, NewVector3(1, 0, 0), afterB.Origin.Sub(beforeB.Origin))
}

func TestTransformSharesChildrenStructurally(t *testing.T) {
	sphere := NewDrawable(NewUVSphereMesh(1, 8, 4), DefaultMaterial())
	children := make([]Node, 0, 100)
	for i := 0; i < 100; i++ {
		children = append(children, TranslateBy(NewLeafNode(sphere), NewVector3(float64(i), 0, 0)))
	}
	g := Group(children...)

	moved := TranslateBy(g, NewVector3(0, 1, 0)).(GroupNode)

	// Transforming the group touches only its own frame: the children slice
	// is the same backing array, not a rewritten copy.
	assert.Same(t, &g.Children[0], &moved.Children[0])
	assert.Equal(t, len(g.Children), len(moved.Children))

	// The original group value is untouched.
	assertFramesAlmostEqual(t, IdentityFrame(), g.Frame)
}

func TestNestedGroupComposition(t *testing.T) {
	sphere := NewDrawable(NewUVSphereMesh(1, 8, 4), DefaultMaterial())

	leaf := TranslateBy(NewLeafNode(sphere), NewVector3(1, 0, 0))
	inner := TranslateBy(Group(leaf), NewVector3(0, 2, 0))
	outer := TranslateBy(Group(inner), NewVector3(0, 0, 3))

	world, ok := WorldFrame(outer, func(LeafNode) bool { return true })
	require.True(t, ok)
	assertVectorsAlmostEqual(t, NewVector3(1, 2, 3), world.Origin.Vector())
}

func TestNestedRotationComposesParentFirst(t *testing.T) {
	sphere := NewDrawable(NewUVSphereMesh(1, 8, 4), DefaultMaterial())
	axisZ := mustAxis(t, NewPoint3d(0, 0, 0), NewVector3(0, 0, 1))

	// The leaf sits at (1,0,0) in group space; rotating the group a quarter
	// turn about Z must carry the leaf to (0,1,0) in world space.
	leaf := TranslateBy(NewLeafNode(sphere), NewVector3(1, 0, 0))
	g := RotateAround(Group(leaf), axisZ, math.Pi/2)

	world, ok := WorldFrame(g, func(LeafNode) bool { return true })
	require.True(t, ok)
	assert.InDelta(t, 0, world.Origin.X, 1e-9)
	assert.InDelta(t, 1, world.Origin.Y, 1e-9)
	assert.InDelta(t, 0, world.Origin.Z, 1e-9)
}

func TestMirrorNodeFlipsLeafHandedness(t *testing.T) {
	sphere := NewDrawable(NewUVSphereMesh(1, 8, 4), DefaultMaterial())
	plane := NewPlaneFromPoint(NewPoint3d(0, 0, 0), NewVector3(1, 0, 0))

	leaf := TranslateBy(NewLeafNode(sphere), NewVector3(2, 0, 0))
	mirrored := MirrorAcross(Group(leaf), plane)

	world, ok := WorldFrame(mirrored, func(LeafNode) bool { return true })
	require.True(t, ok)
	assert.Equal(t, -1.0, world.Handedness())
	assert.InDelta(t, -2, world.Origin.X, 1e-9)
}

func TestWalkEmptyGroup(t *testing.T) {
	visits := 0
	Walk(Group(), IdentityFrame(), func(LeafNode, Frame) { visits++ })
	assert.Zero(t, visits)

	_, ok := WorldFrame(Group(), func(LeafNode) bool { return true })
	assert.False(t, ok)
}

func TestRelativeToAndPlaceInNodeWrappers(t *testing.T) {
	sphere := NewDrawable(NewUVSphereMesh(1, 8, 4), DefaultMaterial())
	ref := IdentityFrame().TranslateBy(NewVector3(5, 0, 0))

	leaf := TranslateBy(NewLeafNode(sphere), NewVector3(7, 1, 0))
	roundTrip := PlaceIn(RelativeTo(leaf, ref), ref)

	assertFramesAlmostEqual(t, leaf.(LeafNode).Frame, roundTrip.LocalFrame())
}
