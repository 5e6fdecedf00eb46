package vjoy

import "time"

// tickStats holds per-tick timing and capture metrics.
// Only populated when the controller is in debug mode.
type tickStats struct {
	duration time.Duration
	active   int // joysticks holding a capture after the tick
	skipped  int // joysticks skipped for zero-area geometry
	events   int
	touches  int
}

// debugLog reports tick stats at debug level.
func (c *Controller) debugLog(stats tickStats) {
	if !c.debug {
		return
	}
	c.logger.Debug("tick",
		"took", stats.duration,
		"joysticks", len(c.joysticks),
		"active", stats.active,
		"skipped", stats.skipped,
		"events", stats.events,
		"touches", stats.touches)
	for _, j := range c.joysticks {
		if j.capture == nil && !j.justReleased {
			continue
		}
		c.logger.Debug("joystick",
			"name", j.Name,
			"delta", j.delta,
			"base", j.baseOffset,
			"released", j.justReleased)
	}
}
