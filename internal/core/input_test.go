package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionJump) {
		t.Error("new frame should hold no actions")
	}

	f.Set(ActionJump)
	f.Set(ActionRight)

	if !f.Has(ActionJump) || !f.Has(ActionRight) {
		t.Error("set actions should be reported as held")
	}
	if f.Has(ActionSlide) {
		t.Error("unset action reported as held")
	}

	f.Clear()
	if f.Has(ActionJump) || f.Has(ActionRight) {
		t.Error("Clear() should drop all actions")
	}
}

func TestInputFrameSetOnZeroValue(t *testing.T) {
	var f InputFrame
	f.Set(ActionRight)
	if !f.Has(ActionRight) {
		t.Error("Set on zero-value frame should work")
	}
}

func TestKeyStateHoldWindow(t *testing.T) {
	k := NewKeyState(3)
	k.Press(ActionRight)

	// Held for exactly three ticks after the press
	for i := 0; i < 3; i++ {
		if !k.Pressed(ActionRight) {
			t.Fatalf("action should still be held on tick %d", i)
		}
		k.Tick()
	}

	if k.Pressed(ActionRight) {
		t.Error("action should be released after the hold window")
	}
}

func TestKeyStateRepressResetsWindow(t *testing.T) {
	k := NewKeyState(3)
	k.Press(ActionJump)
	k.Tick()
	k.Tick()

	// Autorepeat event arrives before the window closes
	k.Press(ActionJump)
	k.Tick()
	k.Tick()

	if !k.Pressed(ActionJump) {
		t.Error("re-press should restart the hold window")
	}
}

func TestKeyStateSnapshot(t *testing.T) {
	k := NewKeyState(2)
	k.Press(ActionRight)
	k.Press(ActionSlide)

	f := NewInputFrame()
	f.Set(ActionJump) // Stale from a previous tick
	k.Snapshot(&f)

	if !f.Has(ActionRight) || !f.Has(ActionSlide) {
		t.Error("snapshot should carry all held actions")
	}
	if f.Has(ActionJump) {
		t.Error("snapshot should clear stale actions")
	}
}

func TestKeyStateMinimumWindow(t *testing.T) {
	k := NewKeyState(0)
	k.Press(ActionRight)
	if !k.Pressed(ActionRight) {
		t.Error("window should be clamped to at least one tick")
	}
	k.Tick()
	if k.Pressed(ActionRight) {
		t.Error("single-tick window should expire after one tick")
	}
}
