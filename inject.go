package vjoy

// injector queues synthetic pointer frames. Each queued frame is consumed by
// one Update. Once the queue drains it keeps reporting the last state with
// the one-tick flags cleared, so a held press stays held.
type injector struct {
	queue   []PointerSnapshot
	held    PointerSnapshot
	mouse   Mouse
	touches []Touch
}

func (in *injector) pending() bool {
	return len(in.queue) > 0
}

// Poll implements PointerSource.
func (in *injector) Poll() PointerSnapshot {
	if len(in.queue) == 0 {
		return in.held
	}
	snap := in.queue[0]
	copy(in.queue, in.queue[1:])
	in.queue = in.queue[:len(in.queue)-1]

	// Carry the frame forward without its transitions.
	in.held = PointerSnapshot{Mouse: snap.Mouse}
	in.held.Mouse.JustPressed = false
	in.held.Mouse.JustReleased = false
	for _, t := range snap.Touches {
		if t.JustReleased {
			continue
		}
		t.JustPressed = false
		in.held.Touches = append(in.held.Touches, t)
	}
	return snap
}

// push records a frame built from the current synthetic mouse and touches.
func (in *injector) push() {
	snap := PointerSnapshot{Mouse: in.mouse}
	if len(in.touches) > 0 {
		snap.Touches = append([]Touch(nil), in.touches...)
	}
	in.queue = append(in.queue, snap)

	// Transitions belong to this frame only.
	in.mouse.JustPressed = false
	in.mouse.JustReleased = false
	kept := in.touches[:0]
	for _, t := range in.touches {
		if t.JustReleased {
			continue
		}
		t.JustPressed = false
		kept = append(kept, t)
	}
	in.touches = kept
}

func (in *injector) setTouch(id int, pos Vec2, pressed, released bool) {
	for i := range in.touches {
		if in.touches[i].ID == id {
			in.touches[i].Position = pos
			in.touches[i].JustPressed = pressed
			in.touches[i].JustReleased = released
			return
		}
	}
	if released {
		return
	}
	in.touches = append(in.touches, Touch{ID: id, Position: pos, JustPressed: pressed})
}

// InjectFrame queues a raw snapshot for the next Update.
func (c *Controller) InjectFrame(snap PointerSnapshot) {
	c.injector.queue = append(c.injector.queue, snap)
}

// InjectPress queues a left mouse press at the given screen coordinates.
func (c *Controller) InjectPress(x, y float64) {
	in := &c.injector
	in.mouse = Mouse{Position: Vec2{x, y}, Present: true, Pressed: true, JustPressed: !in.mouse.Pressed}
	in.push()
}

// InjectMove queues a mouse move at the given screen coordinates, keeping
// the button state as it is.
func (c *Controller) InjectMove(x, y float64) {
	in := &c.injector
	in.mouse.Position = Vec2{x, y}
	in.mouse.Present = true
	in.push()
}

// InjectRelease queues a left mouse release at the given screen coordinates.
func (c *Controller) InjectRelease(x, y float64) {
	in := &c.injector
	in.mouse = Mouse{Position: Vec2{x, y}, Present: true, JustReleased: in.mouse.Pressed}
	in.push()
}

// InjectDrag queues a full mouse drag: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). Minimum frames is 2 (press + release).
func (c *Controller) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	c.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		c.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	c.InjectRelease(toX, toY)
}

// InjectTouchPress queues a new touch contact.
func (c *Controller) InjectTouchPress(id int, x, y float64) {
	c.injector.setTouch(id, Vec2{x, y}, true, false)
	c.injector.push()
}

// InjectTouchMove queues a move of an existing (or new) touch contact.
func (c *Controller) InjectTouchMove(id int, x, y float64) {
	c.injector.setTouch(id, Vec2{x, y}, false, false)
	c.injector.push()
}

// InjectTouchRelease queues the lift of a touch contact.
func (c *Controller) InjectTouchRelease(id int, x, y float64) {
	c.injector.setTouch(id, Vec2{x, y}, false, true)
	c.injector.push()
}

// PendingInjections reports how many injected frames are still queued.
func (c *Controller) PendingInjections() int {
	return len(c.injector.queue)
}
