package tui

import (
	"sync"
)

// NewGamePrompt is the platform side of the game-over prompt. The game asks
// for it to be shown and receives a one-shot channel; the platform fires it
// when the player confirms. Safe for use from the Bubble Tea loop and the
// game step running on the same goroutine, and guarded for anything else.
type NewGamePrompt struct {
	mu      sync.Mutex
	ch      chan struct{}
	visible bool
}

// NewNewGamePrompt creates an idle prompt.
func NewNewGamePrompt() *NewGamePrompt {
	return &NewGamePrompt{}
}

// ShowNewGamePrompt makes the prompt active and returns the channel that
// fires when the player confirms. Each call starts a fresh one-shot.
func (p *NewGamePrompt) ShowNewGamePrompt() <-chan struct{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ch = make(chan struct{}, 1)
	p.visible = true
	return p.ch
}

// HideNewGamePrompt deactivates the prompt.
func (p *NewGamePrompt) HideNewGamePrompt() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ch = nil
	p.visible = false
}

// Fire signals the player's confirmation. Firing an inactive prompt or
// firing twice is a no-op.
func (p *NewGamePrompt) Fire() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch == nil {
		return
	}
	select {
	case p.ch <- struct{}{}:
	default:
	}
}

// Visible reports whether the prompt is currently shown.
func (p *NewGamePrompt) Visible() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.visible
}
