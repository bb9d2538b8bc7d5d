package notes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/notes/internal/store"
)

const appTitle = "Simple Notes"

// HeaderView holds the search box and the create action.
type HeaderView struct {
	search textinput.Model
	create key.Binding
	width  int
}

func NewHeaderView(create key.Binding) HeaderView {
	ti := textinput.New()
	ti.Placeholder = "Search notes..."
	ti.Prompt = "/ "
	ti.Cursor.Style = cursorStyle
	ti.TextStyle = textStyle

	return HeaderView{search: ti, create: create}
}

// SetValue shows value in the search box without emitting a change.
func (h *HeaderView) SetValue(value string) {
	if h.search.Value() != value {
		h.search.SetValue(value)
	}
}

func (h HeaderView) Value() string {
	return h.search.Value()
}

func (h *HeaderView) SetWidth(width int) {
	h.width = width
	h.search.Width = max(width/2, 20)
}

func (h *HeaderView) Focus() tea.Cmd {
	return h.search.Focus()
}

func (h *HeaderView) Blur() {
	h.search.Blur()
}

func (h HeaderView) Focused() bool {
	return h.search.Focused()
}

// Update emits Create for the create binding and SearchChanged whenever a
// keystroke changes the search text.
func (h HeaderView) Update(msg tea.Msg) (HeaderView, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, h.create) {
		return h, emit(store.Create{})
	}
	if !h.search.Focused() {
		return h, nil
	}

	before := h.search.Value()
	var cmd tea.Cmd
	h.search, cmd = h.search.Update(msg)

	if after := h.search.Value(); after != before {
		return h, tea.Batch(cmd, emit(store.SearchChanged{Text: after}))
	}
	return h, cmd
}

func (h HeaderView) View() string {
	box := inputStyle
	if h.search.Focused() {
		box = focusedInputStyle
	}

	createHint := helpStyle.Render("+ New Note (" + h.create.Help().Key + ")")
	row := lipgloss.JoinHorizontal(
		lipgloss.Center,
		titleStyle.Render(appTitle),
		" ",
		box.Render(h.search.View()),
		" ",
		createHint,
	)
	if h.width > 0 {
		return headerStyle.Width(h.width).Render(row)
	}
	return headerStyle.Render(row)
}
