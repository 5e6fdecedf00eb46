package vjoy

import (
	"io"
	"math"

	"github.com/charmbracelet/log"
)

// testGeometry is a 100x100 widget centered on the origin (half extent 50).
var testGeometry = Geometry{Bounds: Rect{X: -50, Y: -50, Width: 100, Height: 100}}

func newTestController() *Controller {
	c := NewController()
	c.SetSource(nil)
	c.SetLogger(log.New(io.Discard))
	return c
}

func addTest(c *Controller, b Behavior, dz float64) *Joystick {
	return c.Add("test", Options{Geometry: testGeometry, Behavior: b, DeadZone: dz})
}

func mouseDown(x, y float64) PointerSnapshot {
	return PointerSnapshot{Mouse: Mouse{Position: Vec2{x, y}, Present: true, Pressed: true, JustPressed: true}}
}

func mouseHeld(x, y float64) PointerSnapshot {
	return PointerSnapshot{Mouse: Mouse{Position: Vec2{x, y}, Present: true, Pressed: true}}
}

func mouseUp(x, y float64) PointerSnapshot {
	return PointerSnapshot{Mouse: Mouse{Position: Vec2{x, y}, Present: true, JustReleased: true}}
}

func touches(ts ...Touch) PointerSnapshot {
	return PointerSnapshot{Touches: ts}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func approxVec(a, b Vec2) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y)
}

func eventTypes(events []Event) []EventType {
	out := make([]EventType, len(events))
	for i, e := range events {
		out[i] = e.Type
	}
	return out
}

func sameTypes(got, want []EventType) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
