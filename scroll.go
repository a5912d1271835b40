package scrollpane

import (
	"math"

	"github.com/tanema/gween/ease"
)

// PointerEvent is the input sample handed to the drag entry points.
type PointerEvent struct {
	// X and Y are the pointer position in screen space.
	X, Y float64
	// Button is the button that started the gesture.
	Button MouseButton
	// Camera projects the screen position into the scene. Nil means
	// screen space equals world space.
	Camera *Camera
}

// WheelEvent is a mouse-wheel sample. Positive DY scrolls up, which moves
// content down.
type WheelEvent struct {
	DX, DY float64
}

// ScrollPane drags a content node inside a fixed viewport node.
//
// The content node's X and Y are its anchored position and the only fields
// the pane writes. The viewport is never modified.
type ScrollPane struct {
	// Name identifies the pane in debug output and emitted events.
	Name string
	// EntityID is forwarded with every ScrollEvent for ECS lookups.
	EntityID uint32

	// Horizontal and Vertical enable movement on each axis.
	Horizontal bool
	Vertical   bool
	// MovementType selects Elastic or Clamped edge behavior.
	MovementType MovementType
	// Elasticity is the spring time constant in seconds (Elastic only).
	Elasticity float64
	// Inertia keeps content moving after release.
	Inertia bool
	// DecelerationRate is the fraction of velocity kept after one second.
	DecelerationRate float64
	// ScrollSensitivity scales mouse-wheel deltas.
	ScrollSensitivity float64

	// OnValueChanged fires after a tick in which the content moved, with the
	// new normalized position.
	OnValueChanged func(Vec2)

	enabled  bool
	content  *Node
	viewport *Node
	scene    *Scene

	viewBounds    Bounds
	contentBounds Bounds

	velocity          Vec2
	dragging          bool
	pointerStartLocal Vec2
	contentStartPos   Vec2
	prevPosition      Vec2
	moving            bool

	tween *scrollTween
}

// NewScrollPane creates a pane that scrolls content inside viewport using
// DefaultScrollConfig. Content may be nil and set later with SetContent.
// Panics if viewport is nil.
func NewScrollPane(viewport, content *Node) *ScrollPane {
	if viewport == nil {
		panic("scrollpane: nil viewport")
	}
	p := &ScrollPane{
		Name:     viewport.Name,
		enabled:  true,
		viewport: viewport,
	}
	p.ApplyConfig(DefaultScrollConfig())

	viewport.pane = p
	viewport.Interactable = true
	p.SetContent(content)
	return p
}

// SetContent replaces the scrolled node and resets motion.
func (p *ScrollPane) SetContent(content *Node) {
	p.content = content
	p.velocity = Vec2{}
	p.dragging = false
	p.tween = nil
	if content != nil {
		content.Interactable = true
	}
	p.prevPosition = p.anchoredPosition()
	p.UpdateBounds()
}

// Content returns the scrolled node.
func (p *ScrollPane) Content() *Node { return p.content }

// Viewport returns the viewport node.
func (p *ScrollPane) Viewport() *Node { return p.viewport }

// ViewBounds returns the viewport box from the last bounds refresh.
func (p *ScrollPane) ViewBounds() Bounds { return p.viewBounds }

// ContentBounds returns the content box in viewport space from the last
// bounds refresh.
func (p *ScrollPane) ContentBounds() Bounds { return p.contentBounds }

// Velocity returns the current content velocity in units per second.
func (p *ScrollPane) Velocity() Vec2 { return p.velocity }

// SetVelocity overrides the current velocity.
func (p *ScrollPane) SetVelocity(v Vec2) { p.velocity = v }

// Dragging reports whether a drag gesture is in progress.
func (p *ScrollPane) Dragging() bool { return p.dragging }

// Enabled reports the enablement flag set by SetEnabled.
func (p *ScrollPane) Enabled() bool { return p.enabled }

// SetEnabled toggles the pane. Disabling ends any drag and stops motion.
func (p *ScrollPane) SetEnabled(enabled bool) {
	if p.enabled == enabled {
		return
	}
	p.enabled = enabled
	if !enabled {
		p.dragging = false
		p.velocity = Vec2{}
		p.tween = nil
	}
}

// IsActive reports whether the pane accepts drag input: it must be enabled
// and its viewport visible in the hierarchy.
func (p *ScrollPane) IsActive() bool {
	return p.enabled && p.viewport != nil && p.viewport.visibleInHierarchy()
}

// StopMovement zeroes velocity and cancels any ScrollTo animation.
func (p *ScrollPane) StopMovement() {
	p.velocity = Vec2{}
	p.tween = nil
}

func (p *ScrollPane) anchoredPosition() Vec2 {
	if p.content == nil {
		return Vec2{}
	}
	return Vec2{p.content.X, p.content.Y}
}

// --- Drag entry points ---

// OnInitializePotentialDrag primes a fresh gesture by zeroing velocity.
// Ignored for non-left buttons.
func (p *ScrollPane) OnInitializePotentialDrag(ev PointerEvent) {
	if ev.Button != MouseButtonLeft {
		return
	}
	p.velocity = Vec2{}
}

// OnBeginDrag records the pointer and content start positions and enters
// the dragging state. Ignored for non-left buttons or an inactive pane.
func (p *ScrollPane) OnBeginDrag(ev PointerEvent) {
	if ev.Button != MouseButtonLeft || !p.IsActive() {
		return
	}
	p.UpdateBounds()

	// Projection failure is not expected for a valid viewport; the zero
	// start cursor is used as-is.
	p.pointerStartLocal, _ = ScreenToLocal(p.viewport, ev.X, ev.Y, ev.Camera)
	p.contentStartPos = p.anchoredPosition()
	p.dragging = true
	p.moving = true
	p.tween = nil

	p.logf("begin drag at (%.1f, %.1f), content (%.1f, %.1f)",
		ev.X, ev.Y, p.contentStartPos.X, p.contentStartPos.Y)
	p.emit(ScrollBeginDrag)
}

// OnDrag moves content to follow the pointer, applying rubber-band
// resistance past the edges under Elastic movement. Samples that cannot be
// projected into the viewport are dropped.
func (p *ScrollPane) OnDrag(ev PointerEvent) {
	if ev.Button != MouseButtonLeft || !p.IsActive() || !p.dragging {
		return
	}
	local, ok := ScreenToLocal(p.viewport, ev.X, ev.Y, ev.Camera)
	if !ok {
		return
	}
	p.UpdateBounds()

	position := p.contentStartPos.Add(local.Sub(p.pointerStartLocal))
	offset := p.CalculateOffset(position.Sub(p.anchoredPosition()))
	position = position.Add(offset)

	if p.MovementType == MovementElastic {
		viewSize := p.viewBounds.Size()
		if offset.X != 0 {
			position.X -= RubberDelta(offset.X, viewSize.X)
		}
		if offset.Y != 0 {
			position.Y -= RubberDelta(offset.Y, viewSize.Y)
		}
	}

	p.SetContentAnchoredPosition(position)
}

// OnEndDrag leaves the dragging state. Ignored for non-left buttons.
func (p *ScrollPane) OnEndDrag(ev PointerEvent) {
	if ev.Button != MouseButtonLeft {
		return
	}
	if p.dragging {
		p.logf("end drag, velocity (%.1f, %.1f)", p.velocity.X, p.velocity.Y)
		p.dragging = false
		p.emit(ScrollEndDrag)
	}
}

// OnScroll moves content by a wheel delta scaled by ScrollSensitivity.
// Panes scrolling on a single axis take the dominant wheel axis.
func (p *ScrollPane) OnScroll(ev WheelEvent) {
	if !p.IsActive() {
		return
	}
	p.UpdateBounds()

	delta := Vec2{ev.DX, ev.DY}
	if p.Vertical && !p.Horizontal {
		if math.Abs(delta.X) > math.Abs(delta.Y) {
			delta.Y = delta.X
		}
		delta.X = 0
	}
	if p.Horizontal && !p.Vertical {
		if math.Abs(delta.Y) > math.Abs(delta.X) {
			delta.X = delta.Y
		}
		delta.Y = 0
	}

	current := p.anchoredPosition()
	position := current.Add(delta.Scale(p.ScrollSensitivity))
	if p.MovementType == MovementClamped {
		position = position.Add(p.CalculateOffset(position.Sub(current)))
	}
	p.SetContentAnchoredPosition(position)
}

// SetContentAnchoredPosition writes pos to the content node. Disabled axes
// keep their current value. Bounds refresh only when the position changed.
func (p *ScrollPane) SetContentAnchoredPosition(pos Vec2) {
	if p.content == nil {
		return
	}
	current := p.anchoredPosition()
	if !p.Horizontal {
		pos.X = current.X
	}
	if !p.Vertical {
		pos.Y = current.Y
	}
	if pos != current {
		p.content.SetPosition(pos.X, pos.Y)
		p.UpdateBounds()
	}
}

// --- Normalized position ---

// NormalizedPosition returns the scroll position per axis in [0, 1]:
// 0 has the content's min edge on the view's min edge, 1 has the max edges
// aligned.
func (p *ScrollPane) NormalizedPosition() Vec2 {
	p.UpdateBounds()
	return Vec2{p.normalizedAxis(AxisHorizontal), p.normalizedAxis(AxisVertical)}
}

func (p *ScrollPane) normalizedAxis(a Axis) float64 {
	contentSize := p.contentBounds.Size().Axis(a)
	viewSize := p.viewBounds.Size().Axis(a)
	viewMin := p.viewBounds.Min.Axis(a)
	contentMin := p.contentBounds.Min.Axis(a)
	if contentSize <= viewSize {
		if viewMin > contentMin {
			return 1
		}
		return 0
	}
	return (viewMin - contentMin) / (contentSize - viewSize)
}

// SetNormalizedPosition scrolls both axes to a normalized position.
func (p *ScrollPane) SetNormalizedPosition(v Vec2) {
	p.SetNormalizedAxis(AxisHorizontal, v.X)
	p.SetNormalizedAxis(AxisVertical, v.Y)
}

// SetNormalizedAxis scrolls one axis to value and zeroes its velocity.
// Changes smaller than 0.01 units are ignored.
func (p *ScrollPane) SetNormalizedAxis(a Axis, value float64) {
	if p.content == nil {
		return
	}
	p.UpdateBounds()
	hidden := p.contentBounds.Size().Axis(a) - p.viewBounds.Size().Axis(a)
	targetMin := p.viewBounds.Min.Axis(a) - value*hidden
	current := p.anchoredPosition()
	next := current.Axis(a) + targetMin - p.contentBounds.Min.Axis(a)
	if math.Abs(current.Axis(a)-next) <= 0.01 {
		return
	}
	pos := current
	pos.setAxis(a, next)
	p.SetContentAnchoredPosition(pos)
	p.velocity.setAxis(a, 0)
}

// ScrollTo animates to a normalized position over duration seconds. A new
// drag or StopMovement cancels it. A nil easeFn uses ease.OutQuad.
func (p *ScrollPane) ScrollTo(target Vec2, duration float32, easeFn ease.TweenFunc) {
	if p.content == nil {
		return
	}
	if easeFn == nil {
		easeFn = ease.OutQuad
	}
	start := p.NormalizedPosition()
	target = Vec2{clamp01(target.X), clamp01(target.Y)}
	p.tween = newScrollTween(start, target, duration, easeFn)
	p.velocity = Vec2{}
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (p *ScrollPane) Scrolling() bool {
	return p.tween != nil
}
