// Package vjoy implements on-screen virtual joysticks for [Ebitengine].
//
// A joystick turns a mouse or touch drag inside a rectangle into a
// normalized direction in [-1, 1]² (Y up), and tells the renderer where to
// draw its base and knob graphics.
//
// # Quick start
//
//	ctrl := vjoy.NewController()
//	move := ctrl.Add("move", vjoy.Options{
//		Geometry: vjoy.Geometry{Bounds: vjoy.Rect{X: 20, Y: 300, Width: 160, Height: 160}},
//		Behavior: vjoy.Behavior{Placement: vjoy.PlacementFloating},
//		DeadZone: 0.1,
//	})
//
//	func (g *Game) Update() error {
//		g.ctrl.Update()      // phase 1: captures, deltas, events
//		g.ctrl.Extract(1.0 / 60) // phase 2: base/knob positions
//		g.player.Move(move.Delta())
//		return nil
//	}
//
// # Behaviors
//
// A [Behavior] pairs a [Placement] with an ordered chain of [Axis]
// restrictions:
//
//   - [PlacementFixed]: the base never leaves the resting center.
//   - [PlacementFloating]: the base jumps to the press point and stays there
//     until release.
//   - [PlacementDynamic]: like floating, but the base is dragged along when
//     the pointer goes past the radius, and stays where it settled after
//     release.
//
// # Events
//
// Each tick fires [EventPress] when a pointer is captured, [EventDrag] on
// every tick the capture is held (including the press tick), and
// [EventRelease] once when it ends. Subscribe with [Controller.OnPress] and
// friends, set the per-joystick callbacks, or bridge them into an ECS with
// [Controller.SetEntityStore] (see the vjoy/ecs module for a [Donburi]
// adapter).
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package vjoy
