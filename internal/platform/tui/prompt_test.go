package tui

import "testing"

func TestPromptLifecycle(t *testing.T) {
	p := NewNewGamePrompt()

	if p.Visible() {
		t.Error("fresh prompt should not be visible")
	}

	ch := p.ShowNewGamePrompt()
	if !p.Visible() {
		t.Error("prompt should be visible after show")
	}

	select {
	case <-ch:
		t.Error("channel should not fire before confirmation")
	default:
	}

	p.Fire()
	select {
	case <-ch:
	default:
		t.Error("channel should fire after confirmation")
	}

	p.HideNewGamePrompt()
	if p.Visible() {
		t.Error("prompt should be hidden after hide")
	}
}

func TestPromptFireWhenInactiveIsNoOp(t *testing.T) {
	p := NewNewGamePrompt()
	p.Fire() // Nothing shown yet

	ch := p.ShowNewGamePrompt()
	select {
	case <-ch:
		t.Error("stray Fire() before show should not signal the new channel")
	default:
	}
}

func TestPromptDoubleFireDoesNotBlock(t *testing.T) {
	p := NewNewGamePrompt()
	ch := p.ShowNewGamePrompt()

	p.Fire()
	p.Fire() // Second confirmation before the poll must not block

	<-ch
	select {
	case <-ch:
		t.Error("one-shot channel delivered twice")
	default:
	}
}

func TestPromptShowStartsFreshOneShot(t *testing.T) {
	p := NewNewGamePrompt()

	first := p.ShowNewGamePrompt()
	p.Fire()
	<-first

	second := p.ShowNewGamePrompt()
	select {
	case <-second:
		t.Error("new show should hand out an unfired channel")
	default:
	}
}
