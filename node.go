package gleam3d

// Node is one element of the scene graph: either a LeafNode carrying a
// drawable, or a GroupNode collecting an ordered set of children. The two
// variants form a closed set; the marker method keeps the set closed to this
// package and the renderer dispatches with a type switch.
//
// Nodes are immutable. Transforms return a new Node value that shares its
// children with the original, so transforming a group is O(1) regardless of
// subtree size. A node's stored frame is local: the effective world frame is
// the composition of all ancestor frames, resolved top-down at render time
// by Walk, never baked into descendants.
type Node interface {
	isNode()

	// LocalFrame returns the node's own frame, relative to its parent.
	LocalFrame() Frame

	// TransformBy returns a copy of the node with op applied to its local
	// frame. Children are shared, not rewritten.
	TransformBy(op FrameOp) Node
}

// LeafNode is a drawable placed in the scene. The drawable is referenced,
// not owned: several leaves may share one drawable for instancing.
type LeafNode struct {
	Frame    Frame
	Drawable *Drawable
}

// GroupNode is a subtree whose frame applies to all descendants.
type GroupNode struct {
	Frame    Frame
	Children []Node
}

func (LeafNode) isNode()  {}
func (GroupNode) isNode() {}

func (n LeafNode) LocalFrame() Frame  { return n.Frame }
func (n GroupNode) LocalFrame() Frame { return n.Frame }

func (n LeafNode) TransformBy(op FrameOp) Node {
	n.Frame = op(n.Frame)
	return n
}

func (n GroupNode) TransformBy(op FrameOp) Node {
	n.Frame = op(n.Frame)
	return n
}

// NewLeafNode places a drawable at the identity frame.
func NewLeafNode(d *Drawable) LeafNode {
	return LeafNode{Frame: IdentityFrame(), Drawable: d}
}

// Group collects nodes under a new GroupNode with the identity frame.
func Group(nodes ...Node) GroupNode {
	return GroupNode{Frame: IdentityFrame(), Children: nodes}
}

// The Node-level transform helpers are thin wrappers over TransformBy: they
// touch only the node's own frame, once, at its local level.

func RotateAround(n Node, axis Axis, angle float64) Node {
	return n.TransformBy(func(f Frame) Frame { return f.RotateAround(axis, angle) })
}

func TranslateBy(n Node, v Vector3) Node {
	return n.TransformBy(func(f Frame) Frame { return f.TranslateBy(v) })
}

func MirrorAcross(n Node, p Plane) Node {
	return n.TransformBy(func(f Frame) Frame { return f.MirrorAcross(p) })
}

func RelativeTo(n Node, other Frame) Node {
	return n.TransformBy(func(f Frame) Frame { return f.RelativeTo(other) })
}

func PlaceIn(n Node, other Frame) Node {
	return n.TransformBy(func(f Frame) Frame { return f.PlaceIn(other) })
}

// Walk resolves world frames top-down and visits every leaf with its fully
// composed world frame. parent is the frame the node is embedded in; pass
// IdentityFrame for the scene root.
func Walk(n Node, parent Frame, visit func(leaf LeafNode, world Frame)) {
	switch t := n.(type) {
	case LeafNode:
		visit(t, t.Frame.PlaceIn(parent))
	case GroupNode:
		world := t.Frame.PlaceIn(parent)
		for _, child := range t.Children {
			Walk(child, world, visit)
		}
	}
}

// WorldFrame resolves the world frame of the first leaf for which match
// returns true, using the same top-down composition as Walk. The bool result
// reports whether a matching leaf was found.
func WorldFrame(n Node, match func(leaf LeafNode) bool) (Frame, bool) {
	var found Frame
	ok := false
	Walk(n, IdentityFrame(), func(leaf LeafNode, world Frame) {
		if !ok && match(leaf) {
			found = world
			ok = true
		}
	})
	return found, ok
}
