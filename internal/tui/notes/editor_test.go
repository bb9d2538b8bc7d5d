package notes

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/notes/internal/store"
)

func newTestEditor(t *testing.T, d store.Draft) EditorView {
	t.Helper()
	renderer, err := newPreviewRenderer("notty")
	if err != nil {
		t.Fatalf("failed to create renderer: %v", err)
	}
	e := NewEditorView(renderer)
	e.SetSize(60, 20)
	e.SetDraft(d, true, 1)
	e.Focus()
	return e
}

func TestEditorViewInactiveWithoutDraft(t *testing.T) {
	e := NewEditorView(nil)
	e.SetDraft(store.Draft{}, false, 0)

	if e.Active() || e.View() != "" {
		t.Fatalf("expected inactive editor")
	}
	if _, cmd := e.Update(tea.KeyMsg{Type: tea.KeyCtrlS}); cmd != nil {
		t.Fatalf("expected no save without a draft")
	}
}

func TestEditorViewSaveEmitsBufferedDraft(t *testing.T) {
	e := newTestEditor(t, store.Draft{ID: "7", Title: "T", Content: "C"})

	e, _ = e.Update(runeKey('x'))
	_, cmd := e.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	msg := firstStoreMsg(t, cmd)
	save, ok := msg.(store.Save)
	if !ok {
		t.Fatalf("expected Save, got %#v", msg)
	}
	if save.Draft != (store.Draft{ID: "7", Title: "Tx", Content: "C"}) {
		t.Fatalf("unexpected draft %#v", save.Draft)
	}
}

func TestEditorViewKeepsBufferForSameDraft(t *testing.T) {
	d := store.Draft{ID: "7", Title: "T", Content: "C"}
	e := newTestEditor(t, d)
	e, _ = e.Update(runeKey('x'))

	e.SetDraft(d, true, 1)
	if got := e.Buffer().Title; got != "Tx" {
		t.Fatalf("expected typed title to survive, got %q", got)
	}

	e.SetDraft(store.Draft{ID: "8", Title: "Other"}, true, 1)
	if got := e.Buffer(); got != (store.Draft{ID: "8", Title: "Other"}) {
		t.Fatalf("expected buffer to reload for a new draft, got %#v", got)
	}
}

func TestEditorViewReloadsEqualDraftForNewSession(t *testing.T) {
	e := newTestEditor(t, store.Draft{})
	e, _ = e.Update(runeKey('x'))

	e.SetDraft(store.Draft{}, true, 2)
	if got := e.Buffer(); got != (store.Draft{}) {
		t.Fatalf("expected blank buffer for a new session, got %#v", got)
	}
}

func TestEditorViewCancel(t *testing.T) {
	e := newTestEditor(t, store.Draft{ID: "1"})
	_, cmd := e.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if _, ok := firstStoreMsg(t, cmd).(store.Cancel); !ok {
		t.Fatalf("expected Cancel")
	}
}

func TestEditorViewDeleteOnlyForSavedNotes(t *testing.T) {
	e := newTestEditor(t, store.Draft{})
	if _, cmd := e.Update(tea.KeyMsg{Type: tea.KeyCtrlD}); cmd != nil {
		t.Fatalf("expected no delete for an unsaved draft")
	}
	for _, b := range e.ShortHelp() {
		if b.Help().Key == "ctrl+d" {
			t.Fatalf("expected delete to be hidden for an unsaved draft")
		}
	}

	e = newTestEditor(t, store.Draft{ID: "3"})
	_, cmd := e.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	if del, ok := firstStoreMsg(t, cmd).(store.RequestDelete); !ok || del.ID != "3" {
		t.Fatalf("expected RequestDelete{3}")
	}
}

func TestEditorViewHeader(t *testing.T) {
	if got := newTestEditor(t, store.Draft{}).View(); !strings.Contains(got, "New note") {
		t.Fatalf("expected new note header, got %q", got)
	}
	if got := newTestEditor(t, store.Draft{ID: "1"}).View(); !strings.Contains(got, "Editing (Untitled)") {
		t.Fatalf("expected untitled header, got %q", got)
	}
}

func TestEditorViewPreviewToggle(t *testing.T) {
	e := newTestEditor(t, store.Draft{ID: "1", Title: "T", Content: "# Heading\n\nbody text"})

	e, _ = e.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	if !e.previewing || !strings.Contains(e.View(), "body text") {
		t.Fatalf("expected rendered preview, got %q", e.View())
	}

	// Typing is ignored while previewing.
	e, _ = e.Update(runeKey('z'))
	if e.Buffer().Title != "T" {
		t.Fatalf("expected buffer untouched in preview, got %q", e.Buffer().Title)
	}

	e, _ = e.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	if e.previewing {
		t.Fatalf("expected preview to close")
	}
}

func TestEditorViewExternalEditResult(t *testing.T) {
	e := newTestEditor(t, store.Draft{ID: "1", Content: "old"})

	e, _ = e.Update(externalEditMsg{content: "new body"})
	if got := e.Buffer().Content; got != "new body" {
		t.Fatalf("expected content from editor, got %q", got)
	}
	if e.Draft().Content != "old" {
		t.Fatalf("expected draft to change only on save")
	}
}

func TestEditorViewFocusCycle(t *testing.T) {
	e := newTestEditor(t, store.Draft{ID: "1"})
	if e.focus != fieldTitle {
		t.Fatalf("expected title focus")
	}
	if ok, _ := e.FocusNext(); !ok || e.focus != fieldContent {
		t.Fatalf("expected content focus")
	}
	if ok, _ := e.FocusNext(); ok || e.Focused() {
		t.Fatalf("expected focus to leave the editor")
	}
}
