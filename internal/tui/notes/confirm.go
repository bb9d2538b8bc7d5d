package notes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/notes/internal/store"
)

const deletePrompt = "Delete this note?"

// ConfirmDialog asks before a note is deleted. While active it takes all key
// input and answers with ConfirmDelete or DismissDelete.
type ConfirmDialog struct {
	Active bool
	Prompt string
	keys   confirmKeyMap
}

func NewConfirmDialog() ConfirmDialog {
	return ConfirmDialog{keys: newConfirmKeyMap()}
}

func (c *ConfirmDialog) Activate(prompt string) {
	c.Active = true
	c.Prompt = prompt
}

func (c *ConfirmDialog) Deactivate() {
	c.Active = false
	c.Prompt = ""
}

func (c ConfirmDialog) Update(msg tea.Msg) (ConfirmDialog, tea.Cmd) {
	if !c.Active {
		return c, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch {
	case key.Matches(keyMsg, c.keys.yes):
		c.Deactivate()
		return c, emit(store.ConfirmDelete{})
	case key.Matches(keyMsg, c.keys.no):
		c.Deactivate()
		return c, emit(store.DismissDelete{})
	}
	return c, nil
}

func (c ConfirmDialog) View() string {
	if !c.Active {
		return ""
	}
	hint := mutedStyle.Render("y: delete • n/esc: keep")
	return dialogStyle.Render(lipgloss.JoinVertical(
		lipgloss.Center,
		errorStyle.Render(c.Prompt),
		"",
		hint,
	))
}

func (c ConfirmDialog) ShortHelp() []key.Binding {
	return []key.Binding{c.keys.yes, c.keys.no}
}
