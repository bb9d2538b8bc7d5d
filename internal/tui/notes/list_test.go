package notes

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/notes/internal/note"
	"github.com/Paintersrp/notes/internal/store"
)

func newTestList(t *testing.T, items []note.ListItem, selectedID string) ListView {
	t.Helper()
	v := NewListView("2006-01-02")
	v.SetSize(40, 20)
	v.SetData(items, selectedID)
	v.Focus()
	return v
}

func listItems() []note.ListItem {
	return []note.ListItem{
		{ID: "a", Title: "Alpha", UpdatedAt: "2024-01-01T00:00:00Z"},
		{ID: "b", Title: "  ", UpdatedAt: "2024-01-02T00:00:00Z"},
		{ID: "c", Title: "Gamma", UpdatedAt: "not a date"},
	}
}

func TestListViewEmptyPlaceholder(t *testing.T) {
	v := newTestList(t, []note.ListItem{}, "")
	if !strings.Contains(v.View(), emptyListText) {
		t.Fatalf("expected placeholder, got %q", v.View())
	}
}

func TestListViewRendersTitlesWithFallback(t *testing.T) {
	view := newTestList(t, listItems(), "").View()
	for _, want := range []string{"Alpha", "(Untitled)", "Gamma", "not a date"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in %q", want, view)
		}
	}
}

func TestListViewMarksSelectedNote(t *testing.T) {
	v := newTestList(t, listItems(), "b")

	var active []string
	for _, it := range v.list.Items() {
		if li := it.(ListItem); li.active {
			active = append(active, li.ID())
		}
	}
	if len(active) != 1 || active[0] != "b" {
		t.Fatalf("expected only b to be active, got %v", active)
	}
}

func TestListViewEnterEmitsSelect(t *testing.T) {
	v := newTestList(t, listItems(), "")
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	msg := firstStoreMsg(t, cmd)
	if sel, ok := msg.(store.Select); !ok || sel.ID != "b" {
		t.Fatalf("expected Select{b}, got %#v", msg)
	}
}

func TestListViewDeleteEmitsRequestDeleteOnly(t *testing.T) {
	for _, k := range []tea.KeyMsg{runeKey('d'), {Type: tea.KeyDelete}} {
		v := newTestList(t, listItems(), "")

		v, cmd := v.Update(k)
		msg := firstStoreMsg(t, cmd)
		if del, ok := msg.(store.RequestDelete); !ok || del.ID != "a" {
			t.Fatalf("%s: expected RequestDelete{a}, got %#v", k, msg)
		}
		if v.list.Index() != 0 {
			t.Fatalf("%s: expected cursor to stay put", k)
		}
	}
}

func TestListViewIgnoresKeysWhenBlurred(t *testing.T) {
	v := newTestList(t, listItems(), "")
	v.Blur()

	if _, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Fatalf("expected no command while blurred")
	}
}

func TestListViewSetDataKeepsCursorOnSameNote(t *testing.T) {
	v := newTestList(t, listItems(), "")
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})

	reordered := []note.ListItem{listItems()[2], listItems()[0]}
	v.SetData(reordered, "")

	if i, ok := v.list.SelectedItem().(ListItem); !ok || i.ID() != "c" {
		t.Fatalf("expected cursor on c, got %#v", v.list.SelectedItem())
	}
}

func TestListViewSetDataClampsCursorWhenRowIsRemoved(t *testing.T) {
	v := newTestList(t, listItems(), "")
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})

	v.SetData(listItems()[:2], "")

	if v.list.Index() != 1 {
		t.Fatalf("expected cursor on the last row, got index %d", v.list.Index())
	}
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if sel, ok := firstStoreMsg(t, cmd).(store.Select); !ok || sel.ID != "b" {
		t.Fatalf("expected Select{b} after the cursor row was removed")
	}
}

func TestListViewSetDataFallsBackToSelectedNote(t *testing.T) {
	v := newTestList(t, listItems(), "")
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})

	v.SetData([]note.ListItem{listItems()[0], listItems()[2]}, "c")

	if i, ok := v.list.SelectedItem().(ListItem); !ok || i.ID() != "c" {
		t.Fatalf("expected cursor on selected note c, got %#v", v.list.SelectedItem())
	}
}

// firstStoreMsg runs cmd and returns the first store message it yields.
func firstStoreMsg(t *testing.T, cmd tea.Cmd) store.Msg {
	t.Helper()

	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := runCmd(c).(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case store.Msg:
			return msg
		}
	}
	t.Fatalf("expected a store message")
	return nil
}
