// Package ecs provides ECS adapters for scrollpane's scroll events.
//
// The primary adapter is [NewDonburiStore], which bridges scroll pane events
// (drag begin/end, value changed, settled) into a [Donburi] world as typed
// events. Subscribe to [ScrollEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
