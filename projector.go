package vjoy

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Layout is where the base and knob graphics go this frame, in screen space.
type Layout struct {
	Base   Vec2 // center of the base graphic
	Knob   Vec2 // center of the knob graphic
	Radius float64

	// Hold is set when the behavior keeps the base where it last settled
	// while idle; renderers that own their own base position may skip it.
	Hold bool
}

// knobTween animates the knob offset back to zero after a release.
type knobTween struct {
	x, y *gween.Tween
	cur  Vec2
	done bool
}

func newKnobTween(from Vec2, duration float32, fn ease.TweenFunc) *knobTween {
	if fn == nil {
		fn = ease.OutQuad
	}
	return &knobTween{
		x:   gween.New(float32(from.X), 0, duration, fn),
		y:   gween.New(float32(from.Y), 0, duration, fn),
		cur: from,
	}
}

func (t *knobTween) update(dt float32) Vec2 {
	if t.done {
		return Vec2{}
	}
	x, xDone := t.x.Update(dt)
	y, yDone := t.y.Update(dt)
	t.cur = Vec2{float64(x), float64(y)}
	t.done = xDone && yDone
	if t.done {
		t.cur = Vec2{}
	}
	return t.cur
}

// projector keeps the render-phase state: last layouts and running knob
// tweens. It never touches joystick state.
type projector struct {
	layouts map[uint32]Layout
	tweens  map[uint32]*knobTween
}

func newProjector() projector {
	return projector{
		layouts: make(map[uint32]Layout),
		tweens:  make(map[uint32]*knobTween),
	}
}

// released starts the knob return animation from the last extracted knob
// offset, if the joystick asks for one.
func (p *projector) released(j *Joystick) {
	if j.knobReturn <= 0 {
		return
	}
	last, ok := p.layouts[j.ID]
	if !ok {
		return
	}
	from := last.Knob.Sub(last.Base)
	if from == (Vec2{}) {
		return
	}
	p.tweens[j.ID] = newKnobTween(from, j.knobReturn, j.knobEase)
}

func (p *projector) forget(id uint32) {
	delete(p.layouts, id)
	delete(p.tweens, id)
}

// project computes one joystick's layout. The knob sits at the base plus the
// axis-projected delta scaled by the radius, converted back to y-down.
func (p *projector) project(j *Joystick, dt float32) (Layout, bool) {
	rect := j.geometry.LogicalRect()
	if rect.Empty() {
		delete(p.layouts, j.ID)
		return Layout{}, false
	}
	radius := rect.Width / 2
	base := rect.Center().Add(j.baseOffset)
	knobOffset := j.behavior.Project(Vec2{j.delta.X * radius, -j.delta.Y * radius})

	if t, ok := p.tweens[j.ID]; ok {
		if j.capture != nil {
			delete(p.tweens, j.ID)
		} else {
			knobOffset = t.update(dt)
			if t.done {
				delete(p.tweens, j.ID)
			}
		}
	}

	l := Layout{
		Base:   base,
		Knob:   base.Add(knobOffset),
		Radius: radius,
		Hold:   j.capture == nil && j.behavior.SkipResetBaseOnNoDrag(),
	}
	p.layouts[j.ID] = l
	return l, true
}

// Extract runs the render phase: it computes the layout of every joystick
// from the state settled by the last tick. dt advances knob animations.
func (c *Controller) Extract(dt float32) {
	for _, j := range c.joysticks {
		c.proj.project(j, dt)
	}
}

// Layout returns the joystick's layout from the last Extract. ok is false if
// the joystick is unknown or its geometry had zero area at the last Extract.
func (c *Controller) Layout(id uint32) (Layout, bool) {
	l, ok := c.proj.layouts[id]
	return l, ok
}
