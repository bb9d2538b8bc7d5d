// Package notes is the terminal UI of the notes client.
package notes

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/Paintersrp/notes/internal/config"
	"github.com/Paintersrp/notes/internal/store"
)

type focusArea int

const (
	focusList focusArea = iota
	focusSearch
	focusEditor
)

const (
	emptyStateText  = "No notes found"
	selectStateText = "Select a note from the sidebar or create a new one."
)

type Options struct {
	DateFormat   string
	PreviewStyle string
	Logger       *zap.Logger
}

// RootModel owns the store state and passes it down to the views. Intents
// from the views and results from the API are reduced by store.Reduce and the
// returned effects run as commands.
type RootModel struct {
	state   store.State
	effects effectRunner
	log     *zap.Logger

	header  HeaderView
	list    ListView
	editor  EditorView
	confirm ConfirmDialog
	sidebar Sidebar
	spinner spinner.Model
	help    help.Model

	keys   rootKeyMap
	focus  focusArea
	width  int
	height int
}

func NewRootModel(ctx context.Context, api NotesAPI, opts Options) (*RootModel, error) {
	if opts.DateFormat == "" {
		opts.DateFormat = config.DefaultDateFormat
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	renderer, err := newPreviewRenderer(opts.PreviewStyle)
	if err != nil {
		return nil, err
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = statusBannerStyle

	keys := newRootKeyMap()
	m := &RootModel{
		state:   store.New(),
		effects: effectRunner{ctx: ctx, api: api, log: opts.Logger},
		log:     opts.Logger,
		header:  NewHeaderView(keys.create),
		list:    NewListView(opts.DateFormat),
		editor:  NewEditorView(renderer),
		confirm: NewConfirmDialog(),
		sidebar: NewSidebar(),
		spinner: sp,
		help:    help.New(),
		keys:    keys,
	}
	m.setFocus(focusList)
	return m, nil
}

func (m *RootModel) Init() tea.Cmd {
	return tea.Batch(m.dispatch(store.Refresh{}), m.spinner.Tick)
}

// State returns the current store state.
func (m *RootModel) State() store.State {
	return m.state
}

func (m *RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case store.Msg:
		return m, m.dispatch(msg)
	}

	// Blink, clipboard and external editor results.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	cmds = append(cmds, cmd)
	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *RootModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.quit) {
		return tea.Quit
	}

	if m.confirm.Active {
		var cmd tea.Cmd
		m.confirm, cmd = m.confirm.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.focusNext):
		return m.cycleFocus()
	case key.Matches(msg, m.keys.refresh):
		return m.dispatch(store.Refresh{})
	case key.Matches(msg, m.keys.create):
		var cmd tea.Cmd
		m.header, cmd = m.header.Update(msg)
		return cmd
	case key.Matches(msg, m.keys.search) && m.focus == focusList:
		return m.setFocus(focusSearch)
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusSearch:
		if msg.Type == tea.KeyEsc || msg.Type == tea.KeyEnter {
			return m.setFocus(focusList)
		}
		m.header, cmd = m.header.Update(msg)
	case focusList:
		m.list, cmd = m.list.Update(msg)
	case focusEditor:
		m.editor, cmd = m.editor.Update(msg)
	}
	return cmd
}

// dispatch reduces msg, syncs the views with the new state and runs the
// effects.
func (m *RootModel) dispatch(msg store.Msg) tea.Cmd {
	prev := m.state
	var effects []store.Effect
	m.state, effects = store.Reduce(m.state, msg)

	return tea.Batch(m.sync(prev), m.effects.run(effects))
}

func (m *RootModel) sync(prev store.State) tea.Cmd {
	m.header.SetValue(m.state.SearchText)
	listCmd := m.list.SetData(m.state.Notes, m.state.Session.SelectedID())
	d, ok := m.state.Session.Draft()
	m.editor.SetDraft(d, ok, m.state.SessionEpoch())

	if m.state.PendingDelete != "" {
		m.confirm.Activate(deletePrompt)
	} else {
		m.confirm.Deactivate()
	}

	var focusCmd tea.Cmd
	mode, prevMode := m.state.Session.Mode(), prev.Session.Mode()
	switch {
	case mode == store.EditingNew && prevMode != store.EditingNew:
		focusCmd = m.setFocus(focusEditor)
	case mode == store.Browsing && m.focus == focusEditor:
		focusCmd = m.setFocus(focusList)
	}
	return tea.Batch(listCmd, focusCmd)
}

func (m *RootModel) cycleFocus() tea.Cmd {
	switch m.focus {
	case focusSearch:
		return m.setFocus(focusList)
	case focusList:
		if m.editor.Active() {
			return m.setFocus(focusEditor)
		}
		return m.setFocus(focusSearch)
	default:
		if ok, cmd := m.editor.FocusNext(); ok {
			return cmd
		}
		return m.setFocus(focusSearch)
	}
}

func (m *RootModel) setFocus(f focusArea) tea.Cmd {
	m.focus = f
	m.header.Blur()
	m.list.Blur()
	m.editor.Blur()

	switch f {
	case focusSearch:
		return m.header.Focus()
	case focusEditor:
		if m.editor.Active() {
			return m.editor.Focus()
		}
		m.focus = focusList
		m.list.Focus()
	default:
		m.list.Focus()
	}
	return nil
}

func (m *RootModel) layout() {
	h, v := appStyle.GetFrameSize()
	width, height := m.width-h, m.height-v

	m.header.SetWidth(width)
	m.help.Width = width

	bodyHeight := max(height-lipgloss.Height(m.header.View())-1, 5)
	m.sidebar.SetHeight(bodyHeight)
	m.list.SetSize(m.sidebar.InnerSize())
	m.editor.SetSize(max(width-m.sidebar.Width()-2, 20), bodyHeight-2)
}

func (m *RootModel) View() string {
	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.sidebar.Render(m.list.View(), m.focus == focusList),
		m.mainView(),
	)

	return appStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		body,
		renderHelpWithinWidth(m.help.Width, m.help.ShortHelpView(m.shortHelp())),
	))
}

func (m *RootModel) mainView() string {
	var sections []string

	if m.state.Loading() {
		status := "Loading..."
		if m.state.Busy() {
			status = "Saving..."
		}
		sections = append(sections, m.spinner.View()+" "+statusStyle(status))
	}
	if m.state.Err != "" {
		sections = append(sections, errorStyle.Render(m.state.Err))
	}

	switch {
	case m.confirm.Active:
		sections = append(sections, m.confirm.View())
	case m.editor.Active():
		sections = append(sections, m.editor.View())
	case len(m.state.Notes) == 0 && !m.state.Loading():
		sections = append(sections,
			mutedStyle.Render(emptyStateText),
			helpStyle.Render("+ Create Your First Note ("+m.keys.create.Help().Key+")"),
		)
	default:
		sections = append(sections, mutedStyle.Render(selectStateText))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *RootModel) shortHelp() []key.Binding {
	bindings := []key.Binding{m.keys.focusNext, m.keys.create, m.keys.refresh}
	switch {
	case m.confirm.Active:
		return m.confirm.ShortHelp()
	case m.focus == focusList:
		bindings = append(bindings, m.keys.search)
		bindings = append(bindings, m.list.ShortHelp()...)
	case m.focus == focusEditor:
		bindings = append(bindings, m.editor.ShortHelp()...)
	}
	return append(bindings, m.keys.quit)
}
