package notes

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/notes/internal/note"
	"github.com/Paintersrp/notes/internal/store"
)

type editorField int

const (
	fieldNone editorField = iota
	fieldTitle
	fieldContent
)

type externalEditMsg struct {
	content string
	err     error
}

type clipboardMsg struct {
	err error
}

// EditorView edits a draft. Title and content are buffered locally and only
// reloaded when a different draft is passed in.
type EditorView struct {
	title      textinput.Model
	content    textarea.Model
	draft      store.Draft
	epoch      uint64
	loaded     bool
	focus      editorField
	keys       editorKeyMap
	renderer   *previewRenderer
	previewing bool
	preview    string
	status     string
	width      int
	height     int
}

func NewEditorView(renderer *previewRenderer) EditorView {
	ti := textinput.New()
	ti.Placeholder = "Title"
	ti.Prompt = ""
	ti.Cursor.Style = cursorStyle
	ti.TextStyle = textStyle

	ta := textarea.New()
	ta.Placeholder = "Type your note here..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0

	return EditorView{
		title:    ti,
		content:  ta,
		keys:     newEditorKeyMap(),
		renderer: renderer,
	}
}

// SetDraft loads d into the buffers unless it is the draft already loaded
// for the same session epoch. ok is false when there is nothing to edit.
func (e *EditorView) SetDraft(d store.Draft, ok bool, epoch uint64) {
	if !ok {
		e.loaded = false
		e.draft = store.Draft{}
		e.previewing = false
		e.status = ""
		return
	}
	if e.loaded && d == e.draft && epoch == e.epoch {
		return
	}

	e.draft = d
	e.epoch = epoch
	e.loaded = true
	e.title.SetValue(d.Title)
	e.content.SetValue(d.Content)
	e.previewing = false
	e.preview = ""
	e.status = ""
}

func (e EditorView) Active() bool {
	return e.loaded
}

func (e EditorView) Draft() store.Draft {
	return e.draft
}

// Buffer returns the draft as currently typed.
func (e EditorView) Buffer() store.Draft {
	return store.Draft{
		ID:      e.draft.ID,
		Title:   e.title.Value(),
		Content: e.content.Value(),
	}
}

func (e *EditorView) SetSize(width, height int) {
	e.width = width
	e.height = height

	e.title.Width = max(width-4, 10)
	e.content.SetWidth(max(width, 10))
	e.content.SetHeight(max(height-8, 3))
}

func (e *EditorView) Focus() tea.Cmd {
	if !e.loaded {
		return nil
	}
	return e.focusField(fieldTitle)
}

func (e *EditorView) Blur() {
	e.focusField(fieldNone)
}

func (e EditorView) Focused() bool {
	return e.focus != fieldNone
}

// FocusNext moves from title to content. It reports false when focus should
// leave the editor.
func (e *EditorView) FocusNext() (bool, tea.Cmd) {
	if e.focus == fieldTitle {
		return true, e.focusField(fieldContent)
	}
	e.focusField(fieldNone)
	return false, nil
}

func (e *EditorView) focusField(f editorField) tea.Cmd {
	e.focus = f
	e.title.Blur()
	e.content.Blur()

	switch f {
	case fieldTitle:
		return e.title.Focus()
	case fieldContent:
		return e.content.Focus()
	}
	return nil
}

func (e EditorView) Update(msg tea.Msg) (EditorView, tea.Cmd) {
	if !e.loaded {
		return e, nil
	}

	switch msg := msg.(type) {
	case externalEditMsg:
		if msg.err != nil {
			e.status = fmt.Sprintf("Editor failed: %v", msg.err)
			return e, nil
		}
		e.content.SetValue(msg.content)
		e.status = "Loaded changes from editor"
		return e, nil

	case clipboardMsg:
		if msg.err != nil {
			e.status = fmt.Sprintf("Copy failed: %v", msg.err)
		} else {
			e.status = "Copied to clipboard"
		}
		return e, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, e.keys.save):
			return e, emit(store.Save{Draft: e.Buffer()})
		case key.Matches(msg, e.keys.cancel):
			return e, emit(store.Cancel{})
		case key.Matches(msg, e.keys.delete):
			if e.draft.ID == "" {
				return e, nil
			}
			return e, emit(store.RequestDelete{ID: e.draft.ID})
		case key.Matches(msg, e.keys.preview):
			e.togglePreview()
			return e, nil
		case key.Matches(msg, e.keys.external):
			return e, openExternalEditor(e.content.Value())
		case key.Matches(msg, e.keys.copy):
			return e, copyToClipboard(e.content.Value())
		}
	}

	if e.previewing {
		return e, nil
	}

	var cmd tea.Cmd
	switch e.focus {
	case fieldTitle:
		e.title, cmd = e.title.Update(msg)
	case fieldContent:
		e.content, cmd = e.content.Update(msg)
	}
	return e, cmd
}

func (e *EditorView) togglePreview() {
	e.previewing = !e.previewing
	if !e.previewing {
		e.preview = ""
		return
	}
	if e.renderer == nil {
		e.preview = e.content.Value()
		return
	}
	out, err := e.renderer.Render(e.content.Value(), e.width)
	if err != nil {
		e.status = fmt.Sprintf("Preview failed: %v", err)
		e.previewing = false
		return
	}
	e.preview = out
}

func (e EditorView) viewHeader() string {
	if e.draft.ID == "" {
		return "New note"
	}
	return "Editing " + note.DisplayTitle(e.draft.Title)
}

func (e EditorView) View() string {
	if !e.loaded {
		return ""
	}

	titleBox := inputStyle
	if e.focus == fieldTitle {
		titleBox = focusedInputStyle
	}

	var body string
	if e.previewing {
		body = previewStyle.Render(e.preview)
	} else {
		body = e.content.View()
	}

	sections := []string{
		titleStyle.Render(e.viewHeader()),
		titleBox.Width(max(e.width-2, 10)).Render(e.title.View()),
		body,
	}
	if e.status != "" {
		sections = append(sections, statusStyle(e.status))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (e EditorView) ShortHelp() []key.Binding {
	bindings := []key.Binding{e.keys.save, e.keys.cancel}
	if e.draft.ID != "" {
		bindings = append(bindings, e.keys.delete)
	}
	return append(bindings, e.keys.preview, e.keys.external, e.keys.copy)
}

func copyToClipboard(content string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{err: clipboard.WriteAll(content)}
	}
}

func editorCommand() string {
	if ed := strings.TrimSpace(os.Getenv("EDITOR")); ed != "" {
		return ed
	}
	return "vi"
}

// openExternalEditor suspends the program, edits content in $EDITOR and
// reports the result as an externalEditMsg.
func openExternalEditor(content string) tea.Cmd {
	f, err := os.CreateTemp("", "note-*.md")
	if err != nil {
		return func() tea.Msg { return externalEditMsg{err: err} }
	}
	path := f.Name()
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		os.Remove(path)
		return func() tea.Msg { return externalEditMsg{err: err} }
	}
	f.Close()

	parts := strings.Fields(editorCommand())
	c := exec.Command(parts[0], append(parts[1:], path)...)
	return tea.ExecProcess(c, func(err error) tea.Msg {
		defer os.Remove(path)
		if err != nil {
			return externalEditMsg{err: err}
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return externalEditMsg{err: err}
		}
		return externalEditMsg{content: string(data)}
	})
}
