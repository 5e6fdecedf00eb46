package vjoy

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Controller owns a set of joysticks and advances them once per tick. It is
// not safe for concurrent use; call it from the game's Update.
//
// Each frame runs two phases: Update (or Tick) resolves pointer captures,
// advances every joystick and fires events; Extract then computes the base
// and knob positions from the settled state.
type Controller struct {
	joysticks []*Joystick
	byID      map[uint32]*Joystick
	nextID    uint32

	handlers handlerRegistry
	events   []Event
	store    EntityStore

	source   PointerSource
	injector injector
	runner   *ScriptRunner
	proj     projector

	logger *log.Logger
	debug  bool
}

// NewController creates an empty controller that reads pointers from
// Ebitengine. Use SetSource to feed input from elsewhere.
func NewController() *Controller {
	return &Controller{
		byID:   make(map[uint32]*Joystick),
		source: &EbitenSource{},
		proj:   newProjector(),
		logger: log.NewWithOptions(os.Stderr, log.Options{Prefix: "vjoy"}),
	}
}

// Add creates a joystick with the given options. An out-of-range dead zone is
// clamped into [0, 1) and reported as a warning.
func (c *Controller) Add(name string, opts Options) *Joystick {
	dz, ok := sanitizeDeadZone(opts.DeadZone)
	if !ok {
		c.logger.Warn("dead zone out of range, clamped", "joystick", name, "requested", opts.DeadZone, "used", dz)
	}
	c.nextID++
	j := &Joystick{
		ID:         c.nextID,
		Name:       name,
		EntityID:   opts.EntityID,
		geometry:   opts.Geometry,
		behavior:   opts.Behavior.clone(),
		deadZone:   dz,
		knobReturn: opts.KnobReturn,
		knobEase:   opts.KnobEase,
	}
	c.joysticks = append(c.joysticks, j)
	c.byID[j.ID] = j
	if c.debug {
		c.logger.Debug("joystick added", "id", j.ID, "name", name, "behavior", j.behavior.String(), "deadZone", dz)
	}
	return j
}

// Remove tears down the joystick with the given ID. Its state is discarded.
func (c *Controller) Remove(id uint32) {
	if _, ok := c.byID[id]; !ok {
		return
	}
	delete(c.byID, id)
	c.proj.forget(id)
	for i, j := range c.joysticks {
		if j.ID == id {
			c.joysticks = append(c.joysticks[:i], c.joysticks[i+1:]...)
			return
		}
	}
}

// Get returns the joystick with the given ID, or nil.
func (c *Controller) Get(id uint32) *Joystick {
	return c.byID[id]
}

// Find returns the first joystick with the given name, or nil.
func (c *Controller) Find(name string) *Joystick {
	for _, j := range c.joysticks {
		if j.Name == name {
			return j
		}
	}
	return nil
}

// Joysticks returns the joysticks in creation order. The returned slice MUST
// NOT be mutated.
func (c *Controller) Joysticks() []*Joystick {
	return c.joysticks
}

// Events returns the events fired by the most recent tick. The slice is
// reused by the next tick.
func (c *Controller) Events() []Event {
	return c.events
}

// SetSource replaces the pointer source used by Update. A nil source leaves
// only injected input.
func (c *Controller) SetSource(src PointerSource) {
	c.source = src
}

// SetEntityStore sets the optional ECS bridge.
func (c *Controller) SetEntityStore(store EntityStore) {
	c.store = store
}

// SetLogger replaces the logger used for warnings and debug output. With
// debug mode on, the new logger is lowered to the debug level.
func (c *Controller) SetLogger(l *log.Logger) {
	if l == nil {
		return
	}
	c.logger = l
	if c.debug {
		l.SetLevel(log.DebugLevel)
	}
}

// SetDebugMode enables or disables per-tick debug logging.
func (c *Controller) SetDebugMode(enabled bool) {
	c.debug = enabled
	if enabled {
		c.logger.SetLevel(log.DebugLevel)
	} else {
		c.logger.SetLevel(log.InfoLevel)
	}
}

// Update polls one snapshot and advances every joystick. Scripted steps run
// first; queued injected frames take priority over the pointer source.
func (c *Controller) Update() {
	if c.runner != nil {
		c.runner.step(c)
	}
	if c.injector.pending() || c.source == nil {
		snap := c.injector.Poll()
		c.Tick(snap)
		return
	}
	c.Tick(c.source.Poll())
}

// Tick advances every joystick with the given snapshot and fires events.
// Joysticks are independent; they are processed in creation order.
func (c *Controller) Tick(snap PointerSnapshot) {
	var t0 time.Time
	if c.debug {
		t0 = time.Now()
	}

	c.events = c.events[:0]
	skipped := 0
	// Handlers may add or remove joysticks; walk a copy and skip removed ones.
	list := append([]*Joystick(nil), c.joysticks...)
	for _, j := range list {
		if c.byID[j.ID] != j {
			continue
		}
		released, ok := j.step(&snap)
		if !ok {
			skipped++
			continue
		}
		if released {
			c.proj.released(j)
		}
		c.emitEvents(j, released)
	}

	if c.debug {
		c.debugLog(tickStats{
			duration: time.Since(t0),
			active:   c.activeCount(),
			skipped:  skipped,
			events:   len(c.events),
			touches:  len(snap.Touches),
		})
	}
}

func (c *Controller) activeCount() int {
	n := 0
	for _, j := range c.joysticks {
		if j.capture != nil {
			n++
		}
	}
	return n
}
