package scrollpane

import (
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint.
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to a premultiplied color.RGBA for ebiten.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// Vec2 is a 2D vector used for positions, offsets, sizes, and velocities
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Axis returns the component for the given axis.
func (v Vec2) Axis(a Axis) float64 {
	if a == AxisVertical {
		return v.Y
	}
	return v.X
}

// setAxis writes the component for the given axis.
func (v *Vec2) setAxis(a Axis, val float64) {
	if a == AxisVertical {
		v.Y = val
	} else {
		v.X = val
	}
}

// lerpVec2 interpolates from a to b by t clamped to [0, 1].
func lerpVec2(a, b Vec2, t float64) Vec2 {
	t = clamp01(t)
	return Vec2{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

func finite(v Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Axis selects the horizontal or vertical component.
type Axis uint8

const (
	AxisHorizontal Axis = iota // X
	AxisVertical               // Y
)

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// MovementType selects what happens when content is moved past the viewport
// edges.
type MovementType uint8

const (
	// MovementElastic lets content overshoot with rubber-band resistance
	// while dragging and springs it back after release.
	MovementElastic MovementType = iota
	// MovementClamped never lets content leave the viewport bounds.
	MovementClamped
)

// String returns the lower-case name used in config files.
func (m MovementType) String() string {
	switch m {
	case MovementElastic:
		return "elastic"
	case MovementClamped:
		return "clamped"
	default:
		return "unknown"
	}
}

// EventType identifies a kind of interaction event.
type EventType uint8

const (
	EventPointerDown EventType = iota // fires when a pointer button is pressed
	EventPointerUp                    // fires when a pointer button is released
	EventClick                        // fires on press then release over the same node
	EventDragStart                    // fires when movement exceeds the drag dead zone
	EventDrag                         // fires each frame while dragging
	EventDragEnd                      // fires when the pointer is released after dragging
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)
