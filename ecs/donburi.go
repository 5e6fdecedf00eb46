package ecs

import (
	"github.com/phanxgames/vjoy"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// JoystickEventType is the Donburi event type for vjoy joystick events.
var JoystickEventType = events.NewEventType[vjoy.Event]()

// Input is a component holding the latest output of one joystick. Attach it
// to the entity whose ID was passed as vjoy.Options.EntityID and keep it in
// sync with SyncInput.
var Input = donburi.NewComponentType[InputData]()

// InputData mirrors a joystick's per-tick output.
type InputData struct {
	Delta    vjoy.Vec2
	Dragging bool
}

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Joystick events are published to JoystickEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) vjoy.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event vjoy.Event) {
	JoystickEventType.Publish(s.world, event)
}

// SyncInput copies the joystick's delta into the Input component of entry.
// The component is added if missing.
func SyncInput(entry *donburi.Entry, j *vjoy.Joystick) {
	if !entry.HasComponent(Input) {
		entry.AddComponent(Input)
	}
	Input.SetValue(entry, InputData{Delta: j.Delta(), Dragging: j.Dragging()})
}
