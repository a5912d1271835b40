package scrollpane

import "math"

// affine is a 2D affine matrix laid out as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type affine [6]float64

var identityAffine = affine{1, 0, 0, 1, 0, 0}

// singularEpsilon is the determinant magnitude below which a matrix is
// treated as non-invertible.
const singularEpsilon = 1e-12

// localAffine builds the node's local matrix.
//
//	Translate(-Pivot) -> Scale -> Rotate -> Translate(X, Y)
func localAffine(n *Node) affine {
	sin, cos := math.Sincos(n.Rotation)
	sx, sy := n.ScaleX, n.ScaleY
	preTx := -n.PivotX * sx
	preTy := -n.PivotY * sy
	return affine{
		cos * sx, sin * sx,
		-sin * sy, cos * sy,
		cos*preTx - sin*preTy + n.X,
		sin*preTx + cos*preTy + n.Y,
	}
}

// mul returns p * c (c applied first).
func (p affine) mul(c affine) affine {
	return affine{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

func (m affine) det() float64 {
	return m[0]*m[3] - m[2]*m[1]
}

// invert returns the inverse and false when m is singular.
func (m affine) invert() (affine, bool) {
	det := m.det()
	if math.Abs(det) < singularEpsilon || math.IsNaN(det) {
		return identityAffine, false
	}
	inv := 1.0 / det
	a := m[3] * inv
	b := -m[1] * inv
	c := -m[2] * inv
	d := m[0] * inv
	return affine{a, b, c, d, -(a*m[4] + c*m[5]), -(b*m[4] + d*m[5])}, true
}

func (m affine) apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// updateWorldTransform recomputes world matrices for n and its subtree.
// parentRecomputed forces recomputation of clean children whose parent moved.
func updateWorldTransform(n *Node, parent affine, parentRecomputed bool) {
	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldTransform = parent.mul(localAffine(n))
		n.transformDirty = false
	}
	for _, child := range n.children {
		updateWorldTransform(child, n.worldTransform, recompute)
	}
}

// refreshWorldTransform brings n's world matrix up to date by walking its
// ancestor chain. Scroll panes move content between scene updates and need
// current geometry immediately.
func refreshWorldTransform(n *Node) affine {
	if n.Parent == nil {
		n.worldTransform = localAffine(n)
	} else {
		n.worldTransform = refreshWorldTransform(n.Parent).mul(localAffine(n))
	}
	return n.worldTransform
}

// --- Transform property setters ---

// SetPosition sets the node's local X and Y and marks it dirty.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
	n.transformDirty = true
}

// SetSize sets the node's local rectangle extent.
func (n *Node) SetSize(w, h float64) {
	n.Width = w
	n.Height = h
}

// SetScale sets the node's ScaleX and ScaleY and marks it dirty.
func (n *Node) SetScale(sx, sy float64) {
	n.ScaleX = sx
	n.ScaleY = sy
	n.transformDirty = true
}

// SetRotation sets the node's rotation (in radians) and marks it dirty.
func (n *Node) SetRotation(r float64) {
	n.Rotation = r
	n.transformDirty = true
}

// SetPivot sets the node's PivotX and PivotY and marks it dirty.
func (n *Node) SetPivot(px, py float64) {
	n.PivotX = px
	n.PivotY = py
	n.transformDirty = true
}

// MarkDirty forces recomputation of the world transform on the next frame.
// Useful after bulk-setting fields directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// --- Coordinate conversion ---

// WorldToLocal converts a world-space point to this node's local space.
// A singular transform (zero scale) maps everything through the identity.
func (n *Node) WorldToLocal(wx, wy float64) (lx, ly float64) {
	inv, _ := refreshWorldTransform(n).invert()
	return inv.apply(wx, wy)
}

// LocalToWorld converts a local-space point to world space.
func (n *Node) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return refreshWorldTransform(n).apply(lx, ly)
}

// WorldCorners returns the four corners of the node's local rectangle
// (0,0)-(Width,Height) in world space, clockwise from the top-left.
func (n *Node) WorldCorners() [4]Vec2 {
	m := refreshWorldTransform(n)
	var out [4]Vec2
	pts := [4][2]float64{{0, 0}, {n.Width, 0}, {n.Width, n.Height}, {0, n.Height}}
	for i, p := range pts {
		out[i].X, out[i].Y = m.apply(p[0], p[1])
	}
	return out
}
