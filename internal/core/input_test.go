package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionUp) {
		t.Error("new frame should have no actions")
	}

	f.Set(ActionUp)
	f.Set(ActionLeft)
	if !f.Has(ActionUp) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}

	f.Clear()
	if f.Has(ActionUp) || f.Has(ActionLeft) {
		t.Error("Clear should reset all actions")
	}

	if !f.Empty() {
		t.Error("cleared frame should be empty")
	}

	var zero InputFrame
	if zero.Has(ActionRight) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionRight)
	if !zero.Has(ActionRight) {
		t.Error("Set on zero frame should record the action")
	}
}

func TestInputFrameIgnoresUnknownActions(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionNone)
	f.Set(Action(40))
	if !f.Empty() {
		t.Error("ActionNone and out-of-range actions should not be recorded")
	}
	if f.Has(ActionNone) {
		t.Error("Has(ActionNone) should be false")
	}
}

func TestInputFrameCopiesAreIndependent(t *testing.T) {
	a := NewInputFrame()
	a.Set(ActionUp)
	b := a
	b.Set(ActionDown)
	a.Clear()

	if a.Has(ActionUp) {
		t.Error("Clear should only affect its own frame")
	}
	if !b.Has(ActionUp) || !b.Has(ActionDown) {
		t.Error("copy should keep its actions")
	}
}

func TestInputFrameFirst(t *testing.T) {
	f := NewInputFrame()
	if got := f.First(ActionUp, ActionDown); got != ActionNone {
		t.Errorf("First() on empty frame = %v, want None", got)
	}

	f.Set(ActionRight)
	f.Set(ActionDown)
	if got := f.First(ActionUp, ActionDown, ActionLeft, ActionRight); got != ActionDown {
		t.Errorf("First() = %v, want Down", got)
	}
	if got := f.First(ActionRight, ActionDown); got != ActionRight {
		t.Errorf("First() = %v, want Right", got)
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:  "None",
		ActionRight: "Right",
		ActionPause: "Pause",
		Action(99):  "Unknown",
	}
	for a, expected := range tests {
		if a.String() != expected {
			t.Errorf("Action(%d).String() = %q, expected %q", a, a.String(), expected)
		}
	}
}
