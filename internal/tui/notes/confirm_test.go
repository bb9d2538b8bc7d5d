package notes

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/notes/internal/store"
)

func TestConfirmDialog(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
		want store.Msg
	}{
		{"yes", runeKey('y'), store.ConfirmDelete{}},
		{"no", runeKey('n'), store.DismissDelete{}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, store.DismissDelete{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConfirmDialog()
			c.Activate(deletePrompt)
			if !strings.Contains(c.View(), deletePrompt) {
				t.Fatalf("expected prompt in view")
			}

			c, cmd := c.Update(tt.key)
			if got := firstStoreMsg(t, cmd); got != tt.want {
				t.Fatalf("expected %#v, got %#v", tt.want, got)
			}
			if c.Active {
				t.Fatalf("expected dialog to close")
			}
		})
	}
}

func TestConfirmDialogIgnoresOtherKeys(t *testing.T) {
	c := NewConfirmDialog()
	c.Activate(deletePrompt)

	c, cmd := c.Update(runeKey('x'))
	if cmd != nil || !c.Active {
		t.Fatalf("expected dialog to stay open")
	}
}
