package scrollpane

// syntheticPointerEvent represents a single injected pointer event in screen
// coordinates. It is converted to world coordinates via the primary camera,
// identical to real mouse input.
type syntheticPointerEvent struct {
	screenX, screenY float64
	pressed          bool
	button           MouseButton
}

// syntheticWheelEvent is an injected wheel delta at a screen position.
type syntheticWheelEvent struct {
	screenX, screenY float64
	delta            WheelEvent
}

// InjectPress queues a left-button press at the given screen coordinates.
// Each queued pointer event is consumed by one Update.
func (s *Scene) InjectPress(x, y float64) {
	s.InjectButtonPress(x, y, MouseButtonLeft)
}

// InjectButtonPress queues a press of an arbitrary button.
func (s *Scene) InjectButtonPress(x, y float64, button MouseButton) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y, pressed: true, button: button,
	})
}

// InjectMove queues a pointer move with the button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (s *Scene) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y, pressed: true, button: MouseButtonLeft,
	})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (s *Scene) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y, pressed: false, button: MouseButtonLeft,
	})
}

// InjectClick queues a press followed by a release at the same screen
// coordinates. Consumes two frames.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), frames-2
// linearly interpolated moves, and release at (toX, toY). Minimum frames is 2.
func (s *Scene) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}

// InjectWheel queues a wheel delta over the given screen position.
func (s *Scene) InjectWheel(x, y, dx, dy float64) {
	s.wheelQueue = append(s.wheelQueue, syntheticWheelEvent{
		screenX: x, screenY: y, delta: WheelEvent{DX: dx, DY: dy},
	})
}

// pendingInjections reports whether injected events are still queued.
func (s *Scene) pendingInjections() bool {
	return len(s.injectQueue) > 0 || len(s.wheelQueue) > 0
}

// processInjectedInput pops one pointer event from the queue and feeds it
// through processPointer. Returns true if an event was consumed.
func (s *Scene) processInjectedInput(cam *Camera, mods KeyModifiers) bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	s.processPointer(0, cam, evt.screenX, evt.screenY, evt.pressed, evt.button, mods)
	return true
}
