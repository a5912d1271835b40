// Package scrollpane provides a drag-scrollable content panel for
// [Ebitengine] scenes.
//
// A [ScrollPane] moves a content [Node] inside a fixed viewport Node in
// response to pointer drags. Past the viewport edges the content either
// resists with rubber-band elasticity ([MovementElastic]) or stops hard
// ([MovementClamped]). After release it springs back into bounds or glides
// with exponentially decaying inertia.
//
// # Quick start
//
//	scene := scrollpane.NewScene()
//
//	viewport := scrollpane.NewNode("list", 200, 300)
//	viewport.X, viewport.Y = 40, 40
//	scene.Root().AddChild(viewport)
//
//	content := scrollpane.NewNode("items", 200, 1200)
//	viewport.AddChild(content)
//
//	pane := scrollpane.NewScrollPane(viewport, content)
//	pane.Horizontal = false
//	scene.AddScrollPane(pane)
//
//	scrollpane.Run(scene, scrollpane.RunConfig{Title: "List", Width: 640, Height: 480})
//
// [Scene.Update] routes mouse, touch, and wheel input to the pane whose
// viewport was pressed and then calls [ScrollPane.Tick] with the unscaled
// tick length. Hosts with their own loop can skip the Scene and call the
// entry points directly:
//
//	pane.OnInitializePotentialDrag(ev)
//	pane.OnBeginDrag(ev)
//	pane.OnDrag(ev)
//	pane.OnEndDrag(ev)
//	pane.Tick(dt)
//
// Only left-button gestures scroll. Disabled axes are never written.
//
// # Configuration
//
// Pane settings can be loaded from TOML with [LoadScrollConfig] and applied
// with [ScrollPane.ApplyConfig].
//
// # ECS
//
// Set an [EntityStore] on the scene to receive [ScrollEvent]s; the
// scrollpane/ecs module provides a [Donburi] adapter.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package scrollpane
