package vjoy

// --- Pointer snapshot ---

// Touch is one touch contact as seen during a single tick.
type Touch struct {
	ID           int
	Position     Vec2
	JustPressed  bool
	JustReleased bool // the contact lifted this tick; it is absent from the next snapshot
}

// Mouse is the mouse state as seen during a single tick. Present is false when
// the cursor is unavailable (e.g. the window lost focus).
type Mouse struct {
	Position     Vec2
	Present      bool
	Pressed      bool // left button held
	JustPressed  bool
	JustReleased bool
}

// PointerSnapshot is the read-only pointer state for one tick. Touches are
// kept in the order the input source reported them.
type PointerSnapshot struct {
	Touches []Touch
	Mouse   Mouse
}

// touch returns the contact with the given ID.
func (s *PointerSnapshot) touch(id int) (Touch, bool) {
	for _, t := range s.Touches {
		if t.ID == id {
			return t, true
		}
	}
	return Touch{}, false
}

// PointerSource supplies one snapshot per tick.
type PointerSource interface {
	Poll() PointerSnapshot
}

// --- Capture ---

// Capture is one active press/drag session on a joystick.
type Capture struct {
	PointerID   int // touch ID, or MousePointerID
	IsMouse     bool
	Start       Vec2 // screen space
	Current     Vec2 // screen space
	JustPressed bool
}

// --- Resolver ---

// resolveCapture advances the joystick's capture for this tick. Idle
// joysticks scan touches in reported order, then the left mouse button, and
// claim the first press inside geo. Dragging joysticks follow their own
// pointer only. It reports whether the capture ended this tick.
func (j *Joystick) resolveCapture(snap *PointerSnapshot, geo Geometry) (released bool) {
	if j.capture == nil {
		for _, t := range snap.Touches {
			if t.JustReleased {
				continue
			}
			if geo.Contains(t.Position) {
				j.capture = &Capture{
					PointerID:   t.ID,
					Start:       t.Position,
					Current:     t.Position,
					JustPressed: true,
				}
				return false
			}
		}
		m := snap.Mouse
		if m.Present && m.JustPressed && geo.Contains(m.Position) {
			j.capture = &Capture{
				PointerID:   MousePointerID,
				IsMouse:     true,
				Start:       m.Position,
				Current:     m.Position,
				JustPressed: true,
			}
		}
		return false
	}

	c := j.capture
	if c.IsMouse {
		m := snap.Mouse
		if !m.Present || !m.Pressed || m.JustReleased {
			j.endCapture()
			return true
		}
		c.Current = m.Position
		return false
	}

	t, ok := snap.touch(c.PointerID)
	if !ok || t.JustReleased {
		j.endCapture()
		return true
	}
	c.Current = t.Position
	return false
}

// endCapture drops the capture and flags the release for this tick.
func (j *Joystick) endCapture() {
	j.capture = nil
	j.justReleased = true
}
