package scrollpane

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	maxPointers         = 2   // pointer 0 = mouse, 1 = first touch
	defaultDragDeadZone = 4.0 // pixels
)

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// --- Per-pointer state ---

type pointerState struct {
	down     bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	screenX  float64
	screenY  float64
	hitNode  *Node
	pane     *ScrollPane // pane owning hitNode, captured at press
	dragging bool
	button   MouseButton // button captured at press time
}

// --- Handler registry ---

type handler[T any] struct {
	id uint32
	fn func(T)
}

type handlerList[T any] []handler[T]

func (l *handlerList[T]) add(id uint32, fn func(T)) {
	*l = append(*l, handler[T]{id: id, fn: fn})
}

func (l *handlerList[T]) remove(id uint32) {
	s := *l
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = handler[T]{}
			*l = s[:len(s)-1]
			return
		}
	}
}

func (l handlerList[T]) fire(ctx T) {
	for _, h := range l {
		h.fn(ctx)
	}
}

type handlerRegistry struct {
	pointerDown handlerList[PointerContext]
	pointerUp   handlerList[PointerContext]
	click       handlerList[PointerContext]
	dragStart   handlerList[DragContext]
	drag        handlerList[DragContext]
	dragEnd     handlerList[DragContext]
	nextID      uint32
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventPointerDown:
		h.reg.pointerDown.remove(h.id)
	case EventPointerUp:
		h.reg.pointerUp.remove(h.id)
	case EventClick:
		h.reg.click.remove(h.id)
	case EventDragStart:
		h.reg.dragStart.remove(h.id)
	case EventDrag:
		h.reg.drag.remove(h.id)
	case EventDragEnd:
		h.reg.dragEnd.remove(h.id)
	}
}

func (s *Scene) nextHandle(event EventType) CallbackHandle {
	s.handlers.nextID++
	return CallbackHandle{id: s.handlers.nextID, reg: &s.handlers, event: event}
}

// OnPointerDown registers a scene-level callback for pointer down events.
func (s *Scene) OnPointerDown(fn func(PointerContext)) CallbackHandle {
	h := s.nextHandle(EventPointerDown)
	s.handlers.pointerDown.add(h.id, fn)
	return h
}

// OnPointerUp registers a scene-level callback for pointer up events.
func (s *Scene) OnPointerUp(fn func(PointerContext)) CallbackHandle {
	h := s.nextHandle(EventPointerUp)
	s.handlers.pointerUp.add(h.id, fn)
	return h
}

// OnClick registers a scene-level callback for click events.
func (s *Scene) OnClick(fn func(PointerContext)) CallbackHandle {
	h := s.nextHandle(EventClick)
	s.handlers.click.add(h.id, fn)
	return h
}

// OnDragStart registers a scene-level callback for drag start events.
func (s *Scene) OnDragStart(fn func(DragContext)) CallbackHandle {
	h := s.nextHandle(EventDragStart)
	s.handlers.dragStart.add(h.id, fn)
	return h
}

// OnDrag registers a scene-level callback for drag events.
func (s *Scene) OnDrag(fn func(DragContext)) CallbackHandle {
	h := s.nextHandle(EventDrag)
	s.handlers.drag.add(h.id, fn)
	return h
}

// OnDragEnd registers a scene-level callback for drag end events.
func (s *Scene) OnDragEnd(fn func(DragContext)) CallbackHandle {
	h := s.nextHandle(EventDragEnd)
	s.handlers.dragEnd.add(h.id, fn)
	return h
}

// CapturePointer routes all events for pointerID to the given node.
func (s *Scene) CapturePointer(pointerID int, node *Node) {
	if pointerID >= 0 && pointerID < maxPointers {
		s.captured[pointerID] = node
	}
}

// ReleasePointer stops routing events for pointerID to a captured node.
func (s *Scene) ReleasePointer(pointerID int) {
	if pointerID >= 0 && pointerID < maxPointers {
		s.captured[pointerID] = nil
	}
}

// SetDragDeadZone sets the minimum movement in pixels before a drag starts.
func (s *Scene) SetDragDeadZone(pixels float64) {
	s.dragDeadZone = pixels
}

// --- Hit testing ---

// nodeContainsLocal tests whether (lx, ly) falls inside a node's hit region:
// its HitShape if set, otherwise its Width x Height rectangle.
func nodeContainsLocal(n *Node, lx, ly float64) bool {
	if n.HitShape != nil {
		return n.HitShape.Contains(lx, ly)
	}
	if n.Width == 0 && n.Height == 0 {
		return false
	}
	return lx >= 0 && lx <= n.Width && ly >= 0 && ly <= n.Height
}

// collectInteractable walks the tree in painter order, appending interactable
// nodes to buf. Skips Visible=false or Interactable=false subtrees.
func collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible || !n.Interactable {
		return buf
	}
	buf = append(buf, n)
	for _, child := range n.children {
		buf = collectInteractable(child, buf)
	}
	return buf
}

// hitTest finds the topmost interactable node at (worldX, worldY).
// Nodes under a pane are only hit inside that pane's viewport.
func (s *Scene) hitTest(worldX, worldY float64) *Node {
	s.hitBuf = collectInteractable(s.root, s.hitBuf[:0])

	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		n := s.hitBuf[i]
		lx, ly := n.WorldToLocal(worldX, worldY)
		if !nodeContainsLocal(n, lx, ly) {
			continue
		}
		if p := paneOf(n.Parent); p != nil {
			vx, vy := p.viewport.WorldToLocal(worldX, worldY)
			if !nodeContainsLocal(p.viewport, vx, vy) {
				continue
			}
		}
		return n
	}
	return nil
}

// --- Input processing ---

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

// processInput handles injected, mouse, touch, and wheel input for one frame.
// Injected events replace real mouse input on frames where one is queued.
func (s *Scene) processInput() {
	cam := s.primaryCamera()
	mods := readModifiers()

	if !s.processInjectedInput(cam, mods) {
		s.processMousePointer(cam, mods)
		s.processTouchPointer(cam, mods)
	}
	s.processWheel(cam)
}

// processMousePointer handles mouse input (pointer 0).
func (s *Scene) processMousePointer(cam *Camera, mods KeyModifiers) {
	mx, my := ebiten.CursorPosition()
	sx, sy := float64(mx), float64(my)

	var pressed bool
	var button MouseButton
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		pressed, button = true, MouseButtonLeft
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		pressed, button = true, MouseButtonRight
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		pressed, button = true, MouseButtonMiddle
	}

	s.processPointer(0, cam, sx, sy, pressed, button, mods)
}

// processTouchPointer tracks the first active touch as pointer 1 with the
// left button. Additional touches are ignored.
func (s *Scene) processTouchPointer(cam *Camera, mods KeyModifiers) {
	s.touchBuf = ebiten.AppendTouchIDs(s.touchBuf[:0])

	if s.touchActive {
		for _, id := range s.touchBuf {
			if id == s.touchID {
				tx, ty := ebiten.TouchPosition(id)
				s.processPointer(1, cam, float64(tx), float64(ty), true, MouseButtonLeft, mods)
				return
			}
		}
		ps := &s.pointers[1]
		s.processPointer(1, cam, ps.screenX, ps.screenY, false, MouseButtonLeft, mods)
		s.touchActive = false
		return
	}

	if len(s.touchBuf) > 0 {
		s.touchID = s.touchBuf[0]
		s.touchActive = true
		tx, ty := ebiten.TouchPosition(s.touchID)
		s.processPointer(1, cam, float64(tx), float64(ty), true, MouseButtonLeft, mods)
	}
}

// processWheel routes queued and real wheel deltas to the pane under the
// mouse cursor.
func (s *Scene) processWheel(cam *Camera) {
	var ev WheelEvent
	var sx, sy float64
	if len(s.wheelQueue) > 0 {
		w := s.wheelQueue[0]
		s.wheelQueue = s.wheelQueue[1:]
		ev, sx, sy = w.delta, w.screenX, w.screenY
	} else {
		ev.DX, ev.DY = ebiten.Wheel()
		mx, my := ebiten.CursorPosition()
		sx, sy = float64(mx), float64(my)
	}
	if ev.DX == 0 && ev.DY == 0 {
		return
	}
	wx, wy := screenToWorld(cam, sx, sy)
	if p := paneOf(s.hitTest(wx, wy)); p != nil {
		p.OnScroll(ev)
	}
}

// processPointer runs the pointer state machine for a single pointer.
func (s *Scene) processPointer(pointerID int, cam *Camera, sx, sy float64, pressed bool, button MouseButton, mods KeyModifiers) {
	ps := &s.pointers[pointerID]
	wx, wy := screenToWorld(cam, sx, sy)
	ps.screenX, ps.screenY = sx, sy

	var target *Node
	if s.captured[pointerID] != nil {
		target = s.captured[pointerID]
	} else {
		target = s.hitTest(wx, wy)
	}

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.startX, ps.startY = wx, wy
		ps.lastX, ps.lastY = wx, wy
		ps.hitNode = target
		ps.pane = paneOf(target)
		ps.dragging = false

		s.firePointerDown(target, pointerID, wx, wy, button, mods)
		if ps.pane != nil {
			ps.pane.OnInitializePotentialDrag(PointerEvent{X: sx, Y: sy, Button: button, Camera: cam})
		}

	case !pressed && ps.down:
		if ps.dragging {
			s.fireDragEnd(ps.hitNode, pointerID, wx, wy, ps.startX, ps.startY,
				wx-ps.lastX, wy-ps.lastY, ps.button, mods)
			if ps.pane != nil {
				ps.pane.OnEndDrag(PointerEvent{X: sx, Y: sy, Button: ps.button, Camera: cam})
			}
		} else if ps.hitNode != nil && ps.hitNode == target {
			s.fireClick(target, pointerID, wx, wy, ps.button, mods)
		}
		s.firePointerUp(target, pointerID, wx, wy, ps.button, mods)

		s.captured[pointerID] = nil
		ps.down = false
		ps.hitNode = nil
		ps.pane = nil
		ps.dragging = false

	case pressed && ps.down:
		if wx == ps.lastX && wy == ps.lastY {
			return
		}
		ev := PointerEvent{X: sx, Y: sy, Button: ps.button, Camera: cam}
		if !ps.dragging && math.Hypot(wx-ps.startX, wy-ps.startY) > s.dragDeadZone {
			ps.dragging = true
			s.fireDragStart(ps.hitNode, pointerID, wx, wy, ps.startX, ps.startY,
				wx-ps.startX, wy-ps.startY, ps.button, mods)
			if ps.pane != nil {
				ps.pane.OnBeginDrag(ev)
			}
		}
		if ps.dragging {
			s.fireDrag(ps.hitNode, pointerID, wx, wy, ps.startX, ps.startY,
				wx-ps.lastX, wy-ps.lastY, ps.button, mods)
			if ps.pane != nil {
				ps.pane.OnDrag(ev)
			}
		}
		ps.lastX, ps.lastY = wx, wy

	default:
		ps.lastX, ps.lastY = wx, wy
	}
}

// --- Event dispatch ---

func pointerContext(node *Node, pointerID int, wx, wy float64, button MouseButton, mods KeyModifiers) PointerContext {
	ctx := PointerContext{
		Node: node, GlobalX: wx, GlobalY: wy,
		Button: button, PointerID: pointerID, Modifiers: mods,
	}
	if node != nil {
		ctx.LocalX, ctx.LocalY = node.WorldToLocal(wx, wy)
		ctx.EntityID = node.EntityID
	}
	return ctx
}

func dragContext(node *Node, pointerID int, wx, wy, startX, startY, deltaX, deltaY float64, button MouseButton, mods KeyModifiers) DragContext {
	ctx := DragContext{
		Node: node, GlobalX: wx, GlobalY: wy,
		StartX: startX, StartY: startY, DeltaX: deltaX, DeltaY: deltaY,
		Button: button, PointerID: pointerID, Modifiers: mods,
	}
	if node != nil {
		ctx.LocalX, ctx.LocalY = node.WorldToLocal(wx, wy)
		ctx.EntityID = node.EntityID
	}
	return ctx
}

func (s *Scene) firePointerDown(node *Node, pointerID int, wx, wy float64, button MouseButton, mods KeyModifiers) {
	ctx := pointerContext(node, pointerID, wx, wy, button, mods)
	s.handlers.pointerDown.fire(ctx)
	if node != nil && node.OnPointerDown != nil {
		node.OnPointerDown(ctx)
	}
}

func (s *Scene) firePointerUp(node *Node, pointerID int, wx, wy float64, button MouseButton, mods KeyModifiers) {
	ctx := pointerContext(node, pointerID, wx, wy, button, mods)
	s.handlers.pointerUp.fire(ctx)
	if node != nil && node.OnPointerUp != nil {
		node.OnPointerUp(ctx)
	}
}

func (s *Scene) fireClick(node *Node, pointerID int, wx, wy float64, button MouseButton, mods KeyModifiers) {
	ctx := pointerContext(node, pointerID, wx, wy, button, mods)
	s.handlers.click.fire(ctx)
	if node != nil && node.OnClick != nil {
		node.OnClick(ctx)
	}
}

func (s *Scene) fireDragStart(node *Node, pointerID int, wx, wy, startX, startY, deltaX, deltaY float64, button MouseButton, mods KeyModifiers) {
	ctx := dragContext(node, pointerID, wx, wy, startX, startY, deltaX, deltaY, button, mods)
	s.handlers.dragStart.fire(ctx)
	if node != nil && node.OnDragStart != nil {
		node.OnDragStart(ctx)
	}
}

func (s *Scene) fireDrag(node *Node, pointerID int, wx, wy, startX, startY, deltaX, deltaY float64, button MouseButton, mods KeyModifiers) {
	ctx := dragContext(node, pointerID, wx, wy, startX, startY, deltaX, deltaY, button, mods)
	s.handlers.drag.fire(ctx)
	if node != nil && node.OnDrag != nil {
		node.OnDrag(ctx)
	}
}

func (s *Scene) fireDragEnd(node *Node, pointerID int, wx, wy, startX, startY, deltaX, deltaY float64, button MouseButton, mods KeyModifiers) {
	ctx := dragContext(node, pointerID, wx, wy, startX, startY, deltaX, deltaY, button, mods)
	s.handlers.dragEnd.fire(ctx)
	if node != nil && node.OnDragEnd != nil {
		node.OnDragEnd(ctx)
	}
}
