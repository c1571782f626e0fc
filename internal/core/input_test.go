package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("new frame should be empty")
	}

	f.Set(ActionJump)
	f.Set(ActionNone)
	f.Set(Action(99))
	if !f.Has(ActionJump) || f.Has(ActionPause) {
		t.Errorf("frame = %v, expected only Jump", f.Actions())
	}
	if f.Has(ActionNone) || f.Has(Action(99)) {
		t.Error("None and unknown actions should never be pressed")
	}

	kept := f
	f.Clear()
	if f.Has(ActionJump) || !f.Empty() {
		t.Error("Clear should release every action")
	}
	if !kept.Has(ActionJump) {
		t.Error("frames are values, the copy should keep Jump")
	}
}

func TestFrameOf(t *testing.T) {
	f := FrameOf(ActionRestart, ActionJump, ActionJump)
	got := f.Actions()
	if len(got) != 2 || got[0] != ActionJump || got[1] != ActionRestart {
		t.Errorf("Actions() = %v, expected [Jump Restart]", got)
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionJump, "Jump"},
		{ActionPause, "Pause"},
		{Action(-1), "Unknown"},
		{actionCount, "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", int(tt.action), got, tt.expected)
		}
	}
}

func TestStepResultHas(t *testing.T) {
	r := StepResult{Events: []Event{EventFlap, EventCollision}}
	if !r.Has(EventCollision) {
		t.Error("result should contain Collision")
	}
	if r.Has(EventNewHighScore) {
		t.Error("result should not contain NewHighScore")
	}
}

func TestRuntimeConfigFrameTime(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.FrameTime(); got != 1.0/60.0 {
		t.Errorf("FrameTime() = %f, expected 1/60", got)
	}
	cfg.TickRate = 0
	if got := cfg.FrameTime(); got != 1.0/60.0 {
		t.Errorf("FrameTime() with zero rate = %f, expected 1/60 fallback", got)
	}
}
