package vjoy

import "testing"

func TestTouchPriorityFirstReported(t *testing.T) {
	c := newTestController()
	j := addTest(c, Behavior{Placement: PlacementFixed}, 0)

	c.Tick(touches(
		Touch{ID: 7, Position: Vec2{10, 0}, JustPressed: true},
		Touch{ID: 3, Position: Vec2{-10, 0}, JustPressed: true},
	))
	if st := j.State(); st.Capture.PointerID != 7 {
		t.Fatalf("captured pointer %d, want 7", st.Capture.PointerID)
	}

	// The second touch is ignored while the first is held.
	c.Tick(touches(
		Touch{ID: 7, Position: Vec2{20, 0}},
		Touch{ID: 3, Position: Vec2{-40, 0}},
	))
	if st := j.State(); st.Capture.PointerID != 7 || st.Capture.Current != (Vec2{20, 0}) {
		t.Fatalf("capture = %+v", st.Capture)
	}

	// First lifts: release tick.
	c.Tick(touches(
		Touch{ID: 7, Position: Vec2{20, 0}, JustReleased: true},
		Touch{ID: 3, Position: Vec2{-40, 0}},
	))
	if j.Dragging() || !j.JustReleased() {
		t.Fatal("expected release of touch 7")
	}

	// Next tick the remaining contact is picked up.
	c.Tick(touches(Touch{ID: 3, Position: Vec2{-40, 0}}))
	if st := j.State(); !st.Dragging || st.Capture.PointerID != 3 {
		t.Fatalf("expected capture of touch 3, got %+v", st)
	}
}

func TestTouchBeatsMouse(t *testing.T) {
	c := newTestController()
	j := addTest(c, Behavior{Placement: PlacementFixed}, 0)

	snap := mouseDown(0, 0)
	snap.Touches = []Touch{{ID: 1, Position: Vec2{5, 5}, JustPressed: true}}
	c.Tick(snap)

	if st := j.State(); st.Capture.IsMouse || st.Capture.PointerID != 1 {
		t.Errorf("capture = %+v, want touch 1", st.Capture)
	}
}

func TestTouchOutsideBoundsIgnored(t *testing.T) {
	c := newTestController()
	j := addTest(c, Behavior{Placement: PlacementFixed}, 0)

	c.Tick(touches(
		Touch{ID: 1, Position: Vec2{200, 0}, JustPressed: true},
		Touch{ID: 2, Position: Vec2{0, 20}, JustPressed: true},
	))
	if st := j.State(); st.Capture.PointerID != 2 {
		t.Errorf("captured %d, want 2", st.Capture.PointerID)
	}
}

func TestMouseNeedsFreshPress(t *testing.T) {
	c := newTestController()
	j := addTest(c, Behavior{Placement: PlacementFixed}, 0)

	// Button already held when the cursor enters.
	c.Tick(mouseHeld(0, 0))
	if j.Dragging() {
		t.Error("held button should not capture")
	}
	c.Tick(mouseDown(0, 0))
	if !j.Dragging() {
		t.Error("fresh press should capture")
	}
}

func TestMouseReleaseRules(t *testing.T) {
	tests := []struct {
		name string
		snap PointerSnapshot
	}{
		{"just released", mouseUp(10, 0)},
		{"button up", PointerSnapshot{Mouse: Mouse{Position: Vec2{10, 0}, Present: true}}},
		{"cursor lost", PointerSnapshot{Mouse: Mouse{Pressed: true}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController()
			j := addTest(c, Behavior{Placement: PlacementFixed}, 0)
			c.Tick(mouseDown(0, 0))
			c.Tick(tt.snap)
			if j.Dragging() || !j.JustReleased() {
				t.Error("expected release")
			}
		})
	}
}

func TestMouseCaptureFollowsOutsideBounds(t *testing.T) {
	c := newTestController()
	j := addTest(c, Behavior{Placement: PlacementFixed}, 0)
	c.Tick(mouseDown(0, 0))
	c.Tick(mouseHeld(500, 500))
	if !j.Dragging() {
		t.Fatal("capture lost outside bounds")
	}
	if j.Delta() != (Vec2{1, -1}) {
		t.Errorf("Delta = %v, want (1, -1)", j.Delta())
	}
}

func TestMissingTouchReleases(t *testing.T) {
	c := newTestController()
	j := addTest(c, Behavior{Placement: PlacementFixed}, 0)
	c.Tick(touches(Touch{ID: 9, Position: Vec2{0, 0}, JustPressed: true}))
	c.Tick(touches(Touch{ID: 4, Position: Vec2{0, 0}}))
	if !j.JustReleased() {
		t.Error("touch absent from the snapshot should release")
	}
}

func TestJoysticksCaptureIndependently(t *testing.T) {
	c := newTestController()
	left := c.Add("left", Options{Geometry: Geometry{Bounds: Rect{X: 0, Y: 0, Width: 100, Height: 100}}})
	right := c.Add("right", Options{Geometry: Geometry{Bounds: Rect{X: 200, Y: 0, Width: 100, Height: 100}}})

	c.Tick(touches(
		Touch{ID: 1, Position: Vec2{250, 50}, JustPressed: true},
		Touch{ID: 2, Position: Vec2{50, 50}, JustPressed: true},
	))
	if left.State().Capture.PointerID != 2 {
		t.Errorf("left captured %d, want 2", left.State().Capture.PointerID)
	}
	if right.State().Capture.PointerID != 1 {
		t.Errorf("right captured %d, want 1", right.State().Capture.PointerID)
	}
}
