package notes

import (
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/notes/internal/store"
)

// noteDelegate renders the note open in the editor with its own style, so it
// stays visible while the cursor moves elsewhere.
type noteDelegate struct {
	list.DefaultDelegate
	active list.DefaultItemStyles
}

func newItemDelegate(keys *listKeyMap) noteDelegate {
	d := list.NewDefaultDelegate()

	d.Styles.SelectedTitle = selectedItemStyle
	d.Styles.SelectedDesc = selectedItemStyle.Copy().Faint(true)

	d.UpdateFunc = func(msg tea.Msg, m *list.Model) tea.Cmd {
		i, ok := m.SelectedItem().(ListItem)
		if !ok {
			return nil
		}

		if msg, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.Matches(msg, keys.open):
				return emit(store.Select{ID: i.id})
			case key.Matches(msg, keys.delete):
				return emit(store.RequestDelete{ID: i.id})
			}
		}
		return nil
	}

	shortHelp := []key.Binding{keys.open, keys.delete}
	d.ShortHelpFunc = func() []key.Binding {
		return shortHelp
	}
	d.FullHelpFunc = func() [][]key.Binding {
		return [][]key.Binding{shortHelp}
	}

	active := d.Styles
	active.NormalTitle = activeItemStyle
	active.NormalDesc = activeItemStyle.Copy().Faint(true)

	return noteDelegate{DefaultDelegate: d, active: active}
}

func (d noteDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	if i, ok := item.(ListItem); ok && i.active && index != m.Index() {
		dd := d.DefaultDelegate
		dd.Styles = d.active
		dd.Render(w, m, index, item)
		return
	}
	d.DefaultDelegate.Render(w, m, index, item)
}

func emit(msg store.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}
