package store

import "github.com/Paintersrp/notes/internal/note"

type Mode int

const (
	Browsing Mode = iota
	EditingNew
	EditingExisting
)

func (m Mode) String() string {
	switch m {
	case EditingNew:
		return "editing-new"
	case EditingExisting:
		return "editing-existing"
	default:
		return "browsing"
	}
}

// Draft is the client-side editable copy of a note. An empty ID means the
// note has not been created yet.
type Draft struct {
	ID      string
	Title   string
	Content string
}

func (d Draft) Input() note.Input {
	return note.Input{Title: d.Title, Content: d.Content}
}

// Session is the editing state. It can only be built through Browse,
// EditNew and EditExisting, so a draft with an id always matches the
// selected note.
type Session struct {
	mode     Mode
	selected string
	draft    Draft
}

// Browse returns a session without a draft. selectedID may be empty.
func Browse(selectedID string) Session {
	return Session{mode: Browsing, selected: selectedID}
}

// EditNew returns a session editing a blank, not yet created note.
func EditNew() Session {
	return Session{mode: EditingNew}
}

// EditExisting returns a session editing n, with n selected.
func EditExisting(n note.Note) Session {
	return Session{
		mode:     EditingExisting,
		selected: n.ID,
		draft:    Draft{ID: n.ID, Title: n.Title, Content: n.Content},
	}
}

func (s Session) Mode() Mode {
	return s.mode
}

func (s Session) SelectedID() string {
	return s.selected
}

// Draft returns the draft being edited and false while browsing.
func (s Session) Draft() (Draft, bool) {
	if s.mode == Browsing {
		return Draft{}, false
	}
	return s.draft, true
}

// references reports whether the session selects or edits the note id.
func (s Session) references(id string) bool {
	return id != "" && s.selected == id
}

// withDraft replaces the draft contents while keeping the mode and id.
func (s Session) withDraft(d Draft) Session {
	if s.mode == Browsing {
		return s
	}
	d.ID = s.draft.ID
	s.draft = d
	return s
}
