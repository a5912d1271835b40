package scrollpane

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, scroll events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event ScrollEvent)
}

// ScrollEventType identifies a scroll pane state change.
type ScrollEventType uint8

const (
	ScrollBeginDrag    ScrollEventType = iota // a drag gesture started
	ScrollEndDrag                             // a drag gesture ended
	ScrollValueChanged                        // content moved during a tick
	ScrollSettled                             // released motion came to rest
)

// ScrollEvent carries pane state for the ECS bridge.
type ScrollEvent struct {
	Type       ScrollEventType
	EntityID   uint32
	Name       string
	Position   Vec2 // content anchored position
	Normalized Vec2
	Velocity   Vec2
}

// Scene owns the node tree, cameras, input state, and scroll panes.
type Scene struct {
	root  *Node
	store EntityStore
	debug bool

	// ClearColor fills the screen before the debug draw.
	ClearColor Color

	cameras []*Camera
	panes   []*ScrollPane

	// Input state
	handlers     handlerRegistry
	captured     [maxPointers]*Node
	pointers     [maxPointers]pointerState
	hitBuf       []*Node
	dragDeadZone float64
	touchID      ebiten.TouchID
	touchActive  bool
	touchBuf     []ebiten.TouchID
	injectQueue  []syntheticPointerEvent
	wheelQueue   []syntheticWheelEvent
	testRunner   *TestRunner
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	root := NewContainer("root")
	root.Interactable = true
	return &Scene{
		root:         root,
		dragDeadZone: defaultDragDeadZone,
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Update advances one frame using the engine's fixed tick length.
func (s *Scene) Update() {
	s.UpdateDelta(1.0 / float64(ebiten.TPS()))
}

// UpdateDelta refreshes world transforms, routes pointer input, and ticks
// every registered scroll pane by dt seconds.
func (s *Scene) UpdateDelta(dt float64) {
	updateWorldTransform(s.root, identityAffine, false)

	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()

	for _, p := range s.panes {
		p.Tick(dt)
	}
}

// AddScrollPane registers p so its Tick runs every Update and it receives
// pointer gestures that start inside its viewport.
func (s *Scene) AddScrollPane(p *ScrollPane) {
	for _, existing := range s.panes {
		if existing == p {
			return
		}
	}
	p.scene = s
	s.panes = append(s.panes, p)
}

// RemoveScrollPane unregisters p.
func (s *Scene) RemoveScrollPane(p *ScrollPane) {
	for i, existing := range s.panes {
		if existing == p {
			s.panes = append(s.panes[:i], s.panes[i+1:]...)
			p.scene = nil
			return
		}
	}
}

// ScrollPanes returns the registered panes. The returned slice MUST NOT be mutated.
func (s *Scene) ScrollPanes() []*ScrollPane {
	return s.panes
}

// NewCamera creates a camera with the given viewport and adds it to the scene.
// The first camera projects pointer input.
func (s *Scene) NewCamera(viewport Rect) *Camera {
	cam := newCamera(viewport)
	s.cameras = append(s.cameras, cam)
	return cam
}

// RemoveCamera removes a camera from the scene.
func (s *Scene) RemoveCamera(cam *Camera) {
	for i, c := range s.cameras {
		if c == cam {
			s.cameras = append(s.cameras[:i], s.cameras[i+1:]...)
			return
		}
	}
}

// Cameras returns the scene's camera list. The returned slice MUST NOT be mutated.
func (s *Scene) Cameras() []*Camera {
	return s.cameras
}

// primaryCamera returns the input camera, or nil for identity projection.
func (s *Scene) primaryCamera() *Camera {
	if len(s.cameras) == 0 {
		return nil
	}
	return s.cameras[0]
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, deep trees warn, and scroll panes log drag and settle
// transitions to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// SetTestRunner attaches a TestRunner. Its step runs before input each frame.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// emit forwards a pane event to the scene's EntityStore, if any.
func (p *ScrollPane) emit(t ScrollEventType) {
	if p.scene == nil || p.scene.store == nil {
		return
	}
	ev := ScrollEvent{
		Type:     t,
		EntityID: p.EntityID,
		Name:     p.Name,
		Position: p.anchoredPosition(),
		Velocity: p.velocity,
	}
	if p.content != nil {
		ev.Normalized = p.NormalizedPosition()
	}
	p.scene.store.EmitEvent(ev)
}
