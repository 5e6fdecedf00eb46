// Package ecs provides ECS adapters for vjoy's joystick events.
//
// The primary adapter is [NewDonburiStore], which bridges joystick events
// (press, drag, release) into a [Donburi] world as typed events. Subscribe
// to [JoystickEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	ctrl.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
