package vjoy

import "testing"

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "press", "x": 100, "y": 200},
			{"action": "wait", "frames": 3},
			{"action": "touch", "id": 4, "x": 1, "y": 2},
			{"action": "drag", "fromX": 0, "fromY": 0, "toX": 10, "toY": 0, "frames": 5}
		]
	}`)

	runner, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "press" || runner.steps[0].X != 100 || runner.steps[0].Y != 200 {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Action != "wait" || runner.steps[1].Frames != 3 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].ID != 4 {
		t.Error("step 2 mismatch")
	}
	if runner.steps[3].ToX != 10 || runner.steps[3].Frames != 5 {
		t.Error("step 3 mismatch")
	}
}

func TestLoadScript_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `not json`},
		{"empty", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "screenshot"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestScriptRunner_PressWaitRelease(t *testing.T) {
	c := newTestController()
	addTest(c, Behavior{Placement: PlacementFixed}, 0)

	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "press", "x": 25, "y": -25},
		{"action": "wait", "frames": 2},
		{"action": "release", "x": 25, "y": -25}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	c.SetScriptRunner(runner)

	var all []EventType
	frames := 0
	for ; frames < 20 && !runner.Done(); frames++ {
		c.Update()
		all = append(all, eventTypes(c.Events())...)
	}
	if !runner.Done() {
		t.Fatal("runner did not finish")
	}
	want := []EventType{EventPress, EventDrag, EventDrag, EventDrag, EventRelease}
	if !sameTypes(all, want) {
		t.Errorf("events = %v, want %v", all, want)
	}
	if frames != 5 {
		t.Errorf("took %d frames, want 5", frames)
	}
}

func TestScriptRunner_WaitsForInjections(t *testing.T) {
	c := newTestController()
	runner, err := LoadScript([]byte(`{"steps": [{"action": "drag", "fromX": 0, "fromY": 0, "toX": 10, "toY": 0, "frames": 3}]}`))
	if err != nil {
		t.Fatal(err)
	}
	c.SetScriptRunner(runner)

	runner.step(c)
	if c.PendingInjections() != 3 {
		t.Fatalf("expected 3 queued frames, got %d", c.PendingInjections())
	}
	if runner.Done() {
		t.Error("runner should not be done while frames are queued")
	}
	for i := 0; i < 3; i++ {
		c.Update()
	}
	runner.step(c)
	if !runner.Done() {
		t.Error("runner should be done after the queue drained")
	}
}
