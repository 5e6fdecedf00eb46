package vjoy

import (
	"math"

	"github.com/tanema/gween/ease"
)

// DefaultSnapThreshold is the threshold used by SnapAxis when none is given.
const DefaultSnapThreshold = 0.5

// maxDeadZone is the largest dead zone accepted; the range is [0, 1).
var maxDeadZone = math.Nextafter(1, 0)

// Options configures a joystick at creation time.
type Options struct {
	Geometry Geometry
	Behavior Behavior
	DeadZone float64 // per-axis threshold in [0, 1)
	EntityID uint32  // forwarded to the EntityStore when non-zero

	// KnobReturn animates the knob back to the base over this many seconds
	// after release. Zero snaps it back immediately.
	KnobReturn float32
	KnobEase   ease.TweenFunc // defaults to ease.OutQuad
}

// Joystick is one on-screen virtual joystick. Its state is advanced by the
// owning Controller; only the geometry and callbacks are meant to be changed
// from outside.
type Joystick struct {
	// Identity
	ID       uint32
	Name     string
	EntityID uint32

	// Callbacks, fired after the scene-level handlers.
	OnPress   func(Event)
	OnDrag    func(Event)
	OnRelease func(Event)

	geometry   Geometry
	behavior   Behavior
	deadZone   float64
	knobReturn float32
	knobEase   ease.TweenFunc

	capture      *Capture
	baseOffset   Vec2
	delta        Vec2
	justReleased bool
}

// State is a read-only view of a joystick's per-tick output.
type State struct {
	BaseOffset   Vec2
	Delta        Vec2
	Dragging     bool
	JustPressed  bool
	JustReleased bool
	Capture      Capture // valid when Dragging
}

// Geometry returns the joystick's current interactive area.
func (j *Joystick) Geometry() Geometry { return j.geometry }

// SetGeometry replaces the interactive area. Call it before the next tick
// whenever the layout changes.
func (j *Joystick) SetGeometry(g Geometry) { j.geometry = g }

// SetBounds is a shorthand for SetGeometry with an identity transform.
func (j *Joystick) SetBounds(r Rect) { j.geometry = Geometry{Bounds: r} }

// Behavior returns the behavior chosen at creation.
func (j *Joystick) Behavior() Behavior { return j.behavior.clone() }

// DeadZone returns the effective (clamped) dead zone.
func (j *Joystick) DeadZone() float64 { return j.deadZone }

// Delta returns the latest output direction, post dead zone and axis
// restriction. Y is positive upward.
func (j *Joystick) Delta() Vec2 { return j.delta }

// BaseOffset returns the base graphic's offset from the resting center.
func (j *Joystick) BaseOffset() Vec2 { return j.baseOffset }

// Dragging reports whether a pointer is captured.
func (j *Joystick) Dragging() bool { return j.capture != nil }

// JustPressed reports whether the capture started this tick.
func (j *Joystick) JustPressed() bool { return j.capture != nil && j.capture.JustPressed }

// JustReleased reports whether the capture ended this tick.
func (j *Joystick) JustReleased() bool { return j.justReleased }

// State returns a snapshot of the joystick's output.
func (j *Joystick) State() State {
	st := State{
		BaseOffset:   j.baseOffset,
		Delta:        j.delta,
		Dragging:     j.capture != nil,
		JustReleased: j.justReleased,
	}
	if j.capture != nil {
		st.JustPressed = j.capture.JustPressed
		st.Capture = *j.capture
	}
	return st
}

// SnapDelta returns the delta with each axis forced to -1, 0, or +1 using
// threshold. A negative threshold selects DefaultSnapThreshold.
func (j *Joystick) SnapDelta(threshold float64) Vec2 {
	if threshold < 0 {
		threshold = DefaultSnapThreshold
	}
	return snap(j.behavior.Project(j.delta), threshold)
}

func snap(v Vec2, threshold float64) Vec2 {
	return Vec2{snapComponent(v.X, threshold), snapComponent(v.Y, threshold)}
}

func snapComponent(x, threshold float64) float64 {
	switch {
	case x > threshold:
		return 1
	case x < -threshold:
		return -1
	default:
		return 0
	}
}

// step advances the joystick by one tick. It reports false when the geometry
// has no area and the tick was skipped.
func (j *Joystick) step(ps *PointerSnapshot) (released, ok bool) {
	// One-tick flags expire before anything else so they never outlive their tick.
	j.justReleased = false
	if j.capture != nil {
		j.capture.JustPressed = false
	}

	rect := j.geometry.LogicalRect()
	if rect.Empty() {
		return false, false
	}

	released = j.resolveCapture(ps, j.geometry)

	center := rect.Center()
	half := rect.HalfSize()

	in := baseInput{
		halfSize: half,
		dragging: j.capture != nil,
		base:     j.baseOffset,
	}
	if c := j.capture; c != nil {
		in.justPressed = c.JustPressed
		in.start = c.Start.Sub(center)
		in.current = c.Current.Sub(center)
	}
	base, shift := j.behavior.placeBase(in)
	j.baseOffset = base
	if j.capture != nil {
		j.capture.Start = j.capture.Start.Add(shift)
	}

	if j.capture == nil {
		j.delta = Vec2{}
		return released, true
	}

	d := j.capture.Current.Sub(center.Add(j.baseOffset)).Div(half).Clamp(-1, 1)
	d.Y = -d.Y
	d = applyDeadZone(d, j.deadZone)
	j.delta = j.behavior.Project(d)
	return false, true
}

// applyDeadZone zeroes each component whose magnitude is below dz.
func applyDeadZone(v Vec2, dz float64) Vec2 {
	if math.Abs(v.X) < dz {
		v.X = 0
	}
	if math.Abs(v.Y) < dz {
		v.Y = 0
	}
	return v
}

// sanitizeDeadZone clamps dz into [0, 1). ok is false when clamping changed it.
func sanitizeDeadZone(dz float64) (float64, bool) {
	switch {
	case math.IsNaN(dz) || dz < 0:
		return 0, false
	case dz > maxDeadZone:
		return maxDeadZone, false
	}
	return dz, true
}
