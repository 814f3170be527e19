package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
)

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune{r}})
}

func specialKeyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: t})
}

func TestKeyMapActions(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"right arrow", specialKeyMsg(tea.KeyRight), core.ActionRight},
		{"d", keyMsg('d'), core.ActionRight},
		{"down arrow", specialKeyMsg(tea.KeyDown), core.ActionSlide},
		{"s", keyMsg('s'), core.ActionSlide},
		{"space", specialKeyMsg(tea.KeySpace), core.ActionJump},
		{"up arrow", specialKeyMsg(tea.KeyUp), core.ActionJump},
		{"w", keyMsg('w'), core.ActionJump},
		{"enter", specialKeyMsg(tea.KeyEnter), core.ActionConfirm},
		{"q", keyMsg('q'), core.ActionQuit},
		{"ctrl+c", specialKeyMsg(tea.KeyCtrlC), core.ActionQuit},
		{"unbound", keyMsg('z'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.ActionFor(tc.msg); got != tc.want {
				t.Errorf("ActionFor(%s) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}
