package notes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/notes/internal/note"
)

const emptyListText = "No notes found."

// ListView shows the current notes. It is a function of the notes and the
// selected id and reports intents through the delegate.
type ListView struct {
	list       list.Model
	keys       *listKeyMap
	notes      []note.ListItem
	selectedID string
	dateFormat string
	focused    bool
	width      int
	height     int
}

func NewListView(dateFormat string) ListView {
	keys := newListKeyMap()

	l := list.New([]list.Item{}, newItemDelegate(keys), 0, 0)
	l.Title = "Notes"
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	// "d" deletes instead of paging.
	l.KeyMap.NextPage.SetKeys("right", "l", "pgdown", "f")

	return ListView{list: l, keys: keys, dateFormat: dateFormat}
}

// SetData replaces the rows when the notes or selection changed. The cursor
// stays on the same note when it is still listed.
func (v *ListView) SetData(notes []note.ListItem, selectedID string) tea.Cmd {
	if sameNotes(v.notes, notes) && v.selectedID == selectedID {
		return nil
	}

	cursorID := ""
	if i, ok := v.list.SelectedItem().(ListItem); ok {
		cursorID = i.id
	}

	v.notes = notes
	v.selectedID = selectedID
	cmd := v.list.SetItems(toListItems(notes, selectedID, v.dateFormat))

	if idx, ok := indexOf(notes, cursorID); ok {
		v.list.Select(idx)
	} else if idx, ok := indexOf(notes, selectedID); ok {
		v.list.Select(idx)
	} else if len(notes) > 0 {
		// The row under the cursor is gone.
		v.list.Select(min(v.list.Index(), len(notes)-1))
	}
	return cmd
}

func indexOf(notes []note.ListItem, id string) (int, bool) {
	if id == "" {
		return 0, false
	}
	for i, n := range notes {
		if n.ID == id {
			return i, true
		}
	}
	return 0, false
}

func (v *ListView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.list.SetSize(width, height)
}

func (v *ListView) Focus() {
	v.focused = true
}

func (v *ListView) Blur() {
	v.focused = false
}

func (v ListView) Focused() bool {
	return v.focused
}

func (v ListView) Update(msg tea.Msg) (ListView, tea.Cmd) {
	if !v.focused {
		return v, nil
	}
	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

func (v ListView) View() string {
	if len(v.notes) == 0 {
		title := v.list.Styles.TitleBar.Render(v.list.Styles.Title.Render(v.list.Title))
		return lipgloss.JoinVertical(
			lipgloss.Left,
			title,
			mutedStyle.Copy().Padding(1, 2).Render(emptyListText),
		)
	}
	return v.list.View()
}

func (v ListView) ShortHelp() []key.Binding {
	return []key.Binding{v.keys.open, v.keys.delete}
}

func sameNotes(a, b []note.ListItem) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
