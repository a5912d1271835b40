package scrollpane

import "testing"

// newTestScene places a 100x100 viewport at (20, 20) holding a 100x400
// vertical list.
func newTestScene() (*Scene, *ScrollPane, *Node) {
	s := NewScene()
	viewport := NewNode("viewport", 100, 100)
	viewport.SetPosition(20, 20)
	s.Root().AddChild(viewport)

	content := NewNode("content", 100, 400)
	viewport.AddChild(content)

	p := NewScrollPane(viewport, content)
	p.Horizontal = false
	p.Inertia = false
	s.AddScrollPane(p)
	return s, p, content
}

func runFrames(s *Scene, n int) {
	for i := 0; i < n; i++ {
		s.UpdateDelta(1.0 / 60)
	}
}

func TestHitRectContains(t *testing.T) {
	r := HitRect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 5, 40, false},
		{"outside right", 115, 40, false},
		{"outside top", 50, 15, false},
		{"outside bottom", 50, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitRect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitTestClipsToViewport(t *testing.T) {
	s, p, content := newTestScene()
	updateWorldTransform(s.root, identityAffine, false)

	tests := []struct {
		name string
		x, y float64
		want *Node
	}{
		{"visible content", 70, 60, content},
		{"content below viewport", 70, 300, nil},
		{"outside everything", 500, 500, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.hitTest(tt.x, tt.y); got != tt.want {
				t.Errorf("hitTest(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}

	content.Interactable = false
	if got := s.hitTest(70, 60); got != p.Viewport() {
		t.Errorf("hitTest with inert content = %v, want viewport", got)
	}
}

func TestHitTestCustomShape(t *testing.T) {
	s := NewScene()
	n := NewNode("n", 100, 100)
	n.Interactable = true
	n.HitShape = HitRect{X: 0, Y: 0, Width: 10, Height: 10}
	s.Root().AddChild(n)
	updateWorldTransform(s.root, identityAffine, false)

	if s.hitTest(5, 5) != n {
		t.Error("point inside hit shape should hit")
	}
	if s.hitTest(50, 50) != nil {
		t.Error("point outside hit shape should miss")
	}
}

func TestSceneDragScrollsPane(t *testing.T) {
	s, p, content := newTestScene()

	// Press at y=100, moves at 85, 70, 55, release at 40. The drag begins on
	// the first move past the dead zone, so the pane follows 85 -> 55.
	s.InjectDrag(70, 100, 70, 40, 5)
	runFrames(s, 5)

	if p.Dragging() {
		t.Error("drag should have ended")
	}
	if !approxEqual(content.Y, -30, epsilon) {
		t.Errorf("content.Y = %v, want -30", content.Y)
	}
	if content.X != 0 {
		t.Errorf("content.X = %v, want 0 (horizontal disabled)", content.X)
	}
}

func TestSceneDragRightButtonIgnored(t *testing.T) {
	s, _, content := newTestScene()

	s.InjectButtonPress(70, 100, MouseButtonRight)
	s.injectQueue = append(s.injectQueue,
		syntheticPointerEvent{screenX: 70, screenY: 60, pressed: true, button: MouseButtonRight},
		syntheticPointerEvent{screenX: 70, screenY: 40, pressed: false, button: MouseButtonRight},
	)
	runFrames(s, 3)

	if content.Y != 0 {
		t.Errorf("content.Y = %v, want 0", content.Y)
	}
}

func TestSceneDragOutsideViewportIgnored(t *testing.T) {
	s, p, content := newTestScene()
	s.InjectDrag(70, 300, 70, 200, 4)
	runFrames(s, 4)
	if content.Y != 0 || p.Dragging() {
		t.Errorf("content.Y = %v, dragging = %v; want untouched", content.Y, p.Dragging())
	}
}

func TestSceneDragDeadZone(t *testing.T) {
	s, p, content := newTestScene()
	s.SetDragDeadZone(50)

	s.InjectPress(70, 100)
	s.InjectMove(70, 80)
	runFrames(s, 2)
	if p.Dragging() {
		t.Error("movement inside the dead zone should not start a drag")
	}

	s.InjectMove(70, 40)
	s.InjectMove(70, 30)
	runFrames(s, 2)
	if !p.Dragging() {
		t.Fatal("movement past the dead zone should start a drag")
	}
	if !approxEqual(content.Y, -10, epsilon) {
		t.Errorf("content.Y = %v, want -10", content.Y)
	}
	s.InjectRelease(70, 30)
	runFrames(s, 1)
}

func TestScenePressResetsVelocity(t *testing.T) {
	s, p, content := newTestScene()
	p.Inertia = true
	content.SetPosition(0, -100)
	p.SetVelocity(Vec2{0, -500})

	s.InjectPress(70, 60)
	s.processInput()
	if !p.Velocity().IsZero() {
		t.Errorf("velocity = %v, want zero after press", p.Velocity())
	}
}

func TestSceneWheel(t *testing.T) {
	s, p, content := newTestScene()
	p.ScrollSensitivity = 10

	s.InjectWheel(70, 60, 0, -2)
	runFrames(s, 1)
	if !approxEqual(content.Y, -20, epsilon) {
		t.Errorf("content.Y = %v, want -20", content.Y)
	}

	// Wheel outside the viewport goes nowhere.
	s.InjectWheel(500, 500, 0, -2)
	runFrames(s, 1)
	if !approxEqual(content.Y, -20, epsilon) {
		t.Errorf("content.Y = %v, want -20", content.Y)
	}
}

func TestSceneDragCallbacks(t *testing.T) {
	s, _, content := newTestScene()

	var events []string
	s.OnPointerDown(func(PointerContext) { events = append(events, "down") })
	s.OnDragStart(func(ctx DragContext) {
		events = append(events, "dragstart")
		if ctx.Node != content {
			t.Errorf("drag node = %v, want content", ctx.Node)
		}
	})
	s.OnDragEnd(func(DragContext) { events = append(events, "dragend") })
	h := s.OnPointerUp(func(PointerContext) { events = append(events, "up") })
	s.OnClick(func(PointerContext) { events = append(events, "click") })

	s.InjectDrag(70, 100, 70, 40, 4)
	runFrames(s, 4)

	want := []string{"down", "dragstart", "dragend", "up"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("events[%d] = %q, want %q", i, events[i], want[i])
		}
	}

	h.Remove()
	events = nil
	s.InjectClick(70, 60)
	runFrames(s, 2)
	if len(events) != 2 || events[0] != "down" || events[1] != "click" {
		t.Errorf("events after removing up handler = %v, want [down click]", events)
	}
}

func TestSceneCapturePointer(t *testing.T) {
	s, p, content := newTestScene()
	s.CapturePointer(0, content)

	// Press outside the viewport, but the capture routes it to content. The
	// drag begins at the first move (y=280) and follows it to y=260.
	s.InjectDrag(300, 300, 300, 240, 4)
	runFrames(s, 4)
	if !approxEqual(content.Y, -20, epsilon) {
		t.Errorf("content.Y = %v, want -20", content.Y)
	}
	if p.Dragging() {
		t.Error("drag should have ended")
	}
	if s.captured[0] != nil {
		t.Error("capture should clear on release")
	}
}

func TestSceneCameraProjection(t *testing.T) {
	s, _, content := newTestScene()
	cam := s.NewCamera(Rect{Width: 200, Height: 200})
	cam.Zoom = 2

	// World (70, 60) is screen (40, 20) at zoom 2 about (100, 100).
	s.InjectDrag(40, 20, 40, -100, 4)
	runFrames(s, 4)

	// Moves at screen y=-20 and y=-60 are world 40 and 20.
	if !approxEqual(content.Y, -20, epsilon) {
		t.Errorf("content.Y = %v, want -20", content.Y)
	}
}
