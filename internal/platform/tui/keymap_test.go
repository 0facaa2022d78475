package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dala-run/internal/core"
)

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{"w", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, core.ActionJump},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"x", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %s, expected %s", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	keys := DefaultKeyMap()
	frame := core.NewInputFrame()

	if quit := keys.MapKeyToFrame(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, &frame); quit {
		t.Error("space should not quit")
	}
	if !frame.Has(core.ActionJump) {
		t.Error("space should set jump")
	}

	if quit := keys.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, &frame); !quit {
		t.Error("q should quit")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("quit is handled by the frontend, not put in the frame")
	}
}
