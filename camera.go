package scrollpane

import "math"

// Camera projects between screen space and world space.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Rotation is the camera rotation in radians (clockwise).
	Rotation float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	viewMatrix    affine
	invViewMatrix affine
	invertible    bool
	prev          [4]float64
	computed      bool
}

// newCamera creates a Camera centered on its viewport so that world and
// screen coordinates coincide at zoom 1.
func newCamera(viewport Rect) *Camera {
	return &Camera{
		X:        viewport.X + viewport.Width/2,
		Y:        viewport.Y + viewport.Height/2,
		Zoom:     1.0,
		Viewport: viewport,
	}
}

// Degenerate reports whether the camera cannot project points, e.g. zero or
// non-finite zoom.
func (c *Camera) Degenerate() bool {
	c.computeViewMatrix()
	return !c.invertible
}

// computeViewMatrix recomputes the cached view matrix when the camera moved.
//
// viewMatrix = Translate(cx, cy) * Scale(zoom) * Rotate(-rotation) * Translate(-X, -Y)
// where cx, cy = viewport center.
func (c *Camera) computeViewMatrix() affine {
	key := [4]float64{c.X, c.Y, c.Zoom, c.Rotation}
	if c.computed && key == c.prev {
		return c.viewMatrix
	}
	c.prev = key
	c.computed = true

	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2

	sin, cos := math.Sincos(-c.Rotation)
	z := c.Zoom

	c.viewMatrix = affine{
		z * cos, z * sin,
		-z * sin, z * cos,
		cx + z*(-cos*c.X+sin*c.Y),
		cy + z*(-sin*c.X-cos*c.Y),
	}
	c.invViewMatrix, c.invertible = c.viewMatrix.invert()
	if math.IsNaN(z) || math.IsInf(z, 0) {
		c.invertible = false
	}
	return c.viewMatrix
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	return c.computeViewMatrix().apply(wx, wy)
}

// ScreenToWorld converts screen coordinates to world coordinates.
// A degenerate camera returns the input unchanged.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	c.computeViewMatrix()
	return c.invViewMatrix.apply(sx, sy)
}

// screenToWorld converts through cam, or returns the point as-is without one.
func screenToWorld(cam *Camera, sx, sy float64) (float64, float64) {
	if cam != nil {
		return cam.ScreenToWorld(sx, sy)
	}
	return sx, sy
}

// ScreenToLocal projects a screen point into rect's local space through cam.
// A nil cam is the identity projection. The second result is false when the
// point cannot be projected unambiguously: a degenerate camera, a singular
// rect transform, or a non-finite result.
func ScreenToLocal(rect *Node, sx, sy float64, cam *Camera) (Vec2, bool) {
	if rect == nil {
		return Vec2{}, false
	}
	if cam != nil && cam.Degenerate() {
		return Vec2{}, false
	}
	wx, wy := screenToWorld(cam, sx, sy)
	inv, ok := refreshWorldTransform(rect).invert()
	if !ok {
		return Vec2{}, false
	}
	lx, ly := inv.apply(wx, wy)
	p := Vec2{lx, ly}
	if !finite(p) {
		return Vec2{}, false
	}
	return p, true
}

// worldAABB computes the axis-aligned bounding box of a (w, h) rectangle
// transformed by m.
func worldAABB(m affine, w, h float64) Rect {
	x0, y0 := m.apply(0, 0)
	x1, y1 := m.apply(w, 0)
	x2, y2 := m.apply(w, h)
	x3, y3 := m.apply(0, h)

	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
