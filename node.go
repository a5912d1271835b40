package scrollpane

// HitShape is used for custom hit testing regions in local coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// PointerContext carries pointer event data.
type PointerContext struct {
	Node      *Node
	EntityID  uint32
	GlobalX   float64
	GlobalY   float64
	LocalX    float64
	LocalY    float64
	Button    MouseButton
	PointerID int
	Modifiers KeyModifiers
}

// DragContext carries drag event data.
type DragContext struct {
	Node      *Node
	EntityID  uint32
	GlobalX   float64
	GlobalY   float64
	LocalX    float64
	LocalY    float64
	StartX    float64
	StartY    float64
	DeltaX    float64
	DeltaY    float64
	Button    MouseButton
	PointerID int
	Modifiers KeyModifiers
}

// nodeIDCounter is not atomic; the scene is single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is a rectangle in the scene graph. X and Y are the anchored position
// relative to the parent; Width and Height are the local extent with the
// origin at the top-left.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	X, Y          float64
	Width, Height float64
	ScaleX        float64
	ScaleY        float64
	Rotation      float64
	PivotX        float64
	PivotY        float64

	worldTransform affine
	transformDirty bool

	// Visibility & interaction
	Visible      bool
	Interactable bool
	HitShape     HitShape

	// Color fills the node's rectangle in the debug draw. Zero alpha skips it.
	Color Color

	// Metadata
	UserData any
	EntityID uint32

	// Per-node callbacks (nil by default)
	OnPointerDown func(PointerContext)
	OnPointerUp   func(PointerContext)
	OnClick       func(PointerContext)
	OnDragStart   func(DragContext)
	OnDrag        func(DragContext)
	OnDragEnd     func(DragContext)

	// pane is set on a viewport node registered with a ScrollPane.
	pane *ScrollPane

	disposed bool
}

// NewNode creates a rectangle node of the given size.
func NewNode(name string, w, h float64) *Node {
	return &Node{
		ID:             nextNodeID(),
		Name:           name,
		Width:          w,
		Height:         h,
		ScaleX:         1,
		ScaleY:         1,
		Visible:        true,
		transformDirty: true,
		worldTransform: identityAffine,
	}
}

// NewContainer creates a zero-size grouping node.
func NewContainer(name string) *Node {
	return NewNode(name, 0, 0)
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("scrollpane: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("scrollpane: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	markSubtreeDirty(child)
	if globalDebug {
		debugCheckTreeDepth(child)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("scrollpane: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// Dispose removes this node from its parent and recursively disposes all
// descendants. A disposed viewport detaches its scroll pane.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.HitShape = nil
	n.UserData = nil
	n.OnPointerDown = nil
	n.OnPointerUp = nil
	n.OnClick = nil
	n.OnDragStart = nil
	n.OnDrag = nil
	n.OnDragEnd = nil
	if n.pane != nil {
		n.pane.SetEnabled(false)
		n.pane = nil
	}
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// visibleInHierarchy reports whether n and all its ancestors are visible.
func (n *Node) visibleInHierarchy() bool {
	for p := n; p != nil; p = p.Parent {
		if !p.Visible || p.disposed {
			return false
		}
	}
	return true
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node (or node itself).
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}

// paneOf returns the scroll pane owning the nearest ancestor viewport of n.
func paneOf(n *Node) *ScrollPane {
	for p := n; p != nil; p = p.Parent {
		if p.pane != nil {
			return p.pane
		}
	}
	return nil
}
