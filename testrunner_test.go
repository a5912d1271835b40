package scrollpane

import (
	"strings"
	"testing"
)

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "drag", "fromX": 70, "fromY": 100, "toX": 70, "toY": 40, "frames": 5},
			{"action": "wait", "frames": 3},
			{"action": "wheel", "x": 70, "y": 60, "dy": -2}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(runner.steps))
	}
	if st := runner.steps[0]; st.Action != "drag" || st.FromY != 100 || st.ToY != 40 || st.Frames != 5 {
		t.Errorf("step 0 mismatch: %+v", st)
	}
	if st := runner.steps[1]; st.Action != "wait" || st.Frames != 3 {
		t.Errorf("step 1 mismatch: %+v", st)
	}
	if st := runner.steps[2]; st.Action != "wheel" || st.X != 70 || st.DY != -2 {
		t.Errorf("step 2 mismatch: %+v", st)
	}
}

func TestLoadTestScript_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"invalid json", `not json`, "parse test script"},
		{"empty", `{"steps": []}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "screenshot"}]}`, "unknown action"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTestScript([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestRunnerStep_Click(t *testing.T) {
	s, _, _ := newTestScene()

	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "click", "x": 70, "y": 60}]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)

	// First step call: click queues press+release (2 events).
	runner.step(s)
	if len(s.injectQueue) != 2 {
		t.Fatalf("expected 2 queued events, got %d", len(s.injectQueue))
	}
	if runner.Done() {
		t.Error("runner should not be done while inject queue has events")
	}

	s.processInput()
	s.processInput()

	runner.step(s)
	if !runner.Done() {
		t.Error("runner should be done after all steps executed and queue drained")
	}
}

func TestRunnerStep_Wait(t *testing.T) {
	s := NewScene()
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "wait", "frames": 3}]}`))
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		runner.step(s)
		if runner.Done() {
			t.Fatalf("runner done after %d frames, want 3 wait frames", i+1)
		}
	}
	runner.step(s)
	if !runner.Done() {
		t.Error("runner should be done after the wait")
	}
}

func TestRunnerScriptScrollsPane(t *testing.T) {
	s, p, content := newTestScene()
	p.ScrollSensitivity = 10

	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "drag", "fromX": 70, "fromY": 100, "toX": 70, "toY": 40, "frames": 5},
		{"action": "wait", "frames": 2},
		{"action": "wheel", "x": 70, "y": 60, "dy": -2}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)

	for i := 0; i < 60 && !runner.Done(); i++ {
		s.UpdateDelta(1.0 / 60)
	}
	if !runner.Done() {
		t.Fatal("script did not finish")
	}
	// Drag follows 85 -> 55, then the wheel adds -20.
	if !approxEqual(content.Y, -50, epsilon) {
		t.Errorf("content.Y = %v, want -50", content.Y)
	}
}
