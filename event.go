package vjoy

// Event is emitted by the Controller for joystick transitions.
type Event struct {
	Type       EventType
	JoystickID uint32
	Name       string
	EntityID   uint32
	Position   Vec2 // pointer position in screen space; zero for EventRelease
	Delta      Vec2
	Behavior   Behavior
}

// SnapAxis returns the behavior-projected delta with each axis forced to -1,
// 0, or +1 using DefaultSnapThreshold.
func (e Event) SnapAxis() Vec2 {
	return e.SnapAxisWith(DefaultSnapThreshold)
}

// SnapAxisWith is SnapAxis with an explicit threshold.
func (e Event) SnapAxisWith(threshold float64) Vec2 {
	return snap(e.Behavior.Project(e.Delta), threshold)
}

// EntityStore is the interface for optional ECS integration.
// When set on a Controller, events of joysticks with a non-zero EntityID are
// forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event Event)
}

// --- Handler registry ---

type eventHandler struct {
	id uint32
	fn func(Event)
}

type handlerRegistry struct {
	press   []eventHandler
	drag    []eventHandler
	release []eventHandler
	nextID  uint32
}

// CallbackHandle allows removing a registered controller-level callback.
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
	case EventPress:
		h.reg.press = removeHandler(h.reg.press, h.id)
	case EventDrag:
		h.reg.drag = removeHandler(h.reg.drag, h.id)
	case EventRelease:
		h.reg.release = removeHandler(h.reg.release, h.id)
	}
}

func removeHandler(s []eventHandler, id uint32) []eventHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = eventHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func (r *handlerRegistry) add(t EventType, fn func(Event)) CallbackHandle {
	r.nextID++
	h := eventHandler{id: r.nextID, fn: fn}
	switch t {
	case EventPress:
		r.press = append(r.press, h)
	case EventDrag:
		r.drag = append(r.drag, h)
	case EventRelease:
		r.release = append(r.release, h)
	}
	return CallbackHandle{id: h.id, reg: r, event: t}
}

// OnPress registers a controller-level callback for press events.
func (c *Controller) OnPress(fn func(Event)) CallbackHandle {
	return c.handlers.add(EventPress, fn)
}

// OnDrag registers a controller-level callback for drag events.
func (c *Controller) OnDrag(fn func(Event)) CallbackHandle {
	return c.handlers.add(EventDrag, fn)
}

// OnRelease registers a controller-level callback for release events.
func (c *Controller) OnRelease(fn func(Event)) CallbackHandle {
	return c.handlers.add(EventRelease, fn)
}

// --- Event dispatch ---

// fire records the event, then runs controller handlers, the joystick's own
// callback, and the ECS bridge, in that order.
func (c *Controller) fire(j *Joystick, e Event) {
	c.events = append(c.events, e)

	var handlers []eventHandler
	var own func(Event)
	switch e.Type {
	case EventPress:
		handlers, own = c.handlers.press, j.OnPress
	case EventDrag:
		handlers, own = c.handlers.drag, j.OnDrag
	case EventRelease:
		handlers, own = c.handlers.release, j.OnRelease
	}
	for _, h := range handlers {
		h.fn(e)
	}
	if own != nil {
		own(e)
	}
	if c.store != nil && e.EntityID != 0 {
		c.store.EmitEvent(e)
	}
}

// emitEvents derives this tick's events for j from its transition flags.
func (c *Controller) emitEvents(j *Joystick, released bool) {
	if released {
		c.fire(j, newEvent(j, EventRelease, Vec2{}))
		return
	}
	if j.capture == nil {
		return
	}
	pos := j.capture.Current
	if j.capture.JustPressed {
		c.fire(j, newEvent(j, EventPress, pos))
	}
	c.fire(j, newEvent(j, EventDrag, pos))
}

// newEvent builds an event for j. Each event owns its Behavior copy, so
// consumers cannot change the joystick's projection through it.
func newEvent(j *Joystick, typ EventType, pos Vec2) Event {
	return Event{
		Type:       typ,
		JoystickID: j.ID,
		Name:       j.Name,
		EntityID:   j.EntityID,
		Position:   pos,
		Delta:      j.delta,
		Behavior:   j.behavior.clone(),
	}
}
