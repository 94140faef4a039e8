package core

import (
	"testing"
	"time"
)

func TestInputFrameKeepsOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)
	f.Set(ActionLeft)
	f.Set(ActionNone)
	f.Set(ActionLeft)
	f.Set(ActionPause)

	expected := []Action{ActionPause, ActionLeft, ActionLeft, ActionPause}
	if len(f.Actions) != len(expected) {
		t.Fatalf("queued %d actions, expected %d", len(f.Actions), len(expected))
	}
	for i, a := range expected {
		if f.Actions[i] != a {
			t.Errorf("Actions[%d] = %v, expected %v", i, f.Actions[i], a)
		}
	}
}

func TestInputFrameCloneIsIndependent(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionStart)

	clone := f.Clone()
	f.Clear()
	f.Set(ActionQuit)

	if len(clone.Actions) != 1 || clone.Actions[0] != ActionStart {
		t.Errorf("clone should keep [Start], got %v", clone.Actions)
	}
	if len(f.Actions) != 1 || f.Actions[0] != ActionQuit {
		t.Errorf("original should be [Quit], got %v", f.Actions)
	}
}

func TestActionString(t *testing.T) {
	if ActionLeft.String() != "Left" {
		t.Errorf("ActionLeft.String() = %q", ActionLeft.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}

func TestFrameDuration(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.FrameDuration().Milliseconds(); got != 16 {
		t.Errorf("60 fps frame = %dms, expected 16", got)
	}

	cfg.TickRate = 0
	if cfg.FrameDuration() != DefaultConfig().FrameDuration() {
		t.Error("zero tick rate should fall back to 60 fps")
	}

	for _, rate := range []int{MaxTickRate, MaxTickRate + 1, 2_000_000_000} {
		cfg.TickRate = rate
		if got := cfg.FrameDuration(); got != time.Millisecond {
			t.Errorf("tick rate %d: frame = %v, expected 1ms", rate, got)
		}
	}
}

func TestStepResultHas(t *testing.T) {
	r := StepResult{Events: []Event{{Kind: EventScoreChanged, Value: 10}}}
	if !r.Has(EventScoreChanged) {
		t.Error("expected score event")
	}
	if r.Has(EventGameOver) {
		t.Error("did not expect game over event")
	}
}
