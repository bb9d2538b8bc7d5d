// Package store is the state container of the notes client. Reduce is a pure
// function of (state, message) to the next state and the I/O to perform, so
// every transition can be tested without a terminal.
package store

import (
	"github.com/Paintersrp/notes/internal/note"
)

type State struct {
	// Notes is the result of the latest list fetch for SearchText.
	Notes      []note.ListItem
	Session    Session
	SearchText string
	// Err holds the message of the last failed operation.
	Err string
	// PendingDelete is the id awaiting confirmation.
	PendingDelete string

	listSeq    uint64
	sessionSeq uint64
	epoch      uint64
	inFlight   int
	mutating   int
}

func New() State {
	return State{
		Notes:   []note.ListItem{},
		Session: Browse(""),
	}
}

// Loading reports whether any request is in flight.
func (s State) Loading() bool {
	return s.inFlight > 0
}

// Busy reports whether a save or delete is in flight. Intents that change
// the session are ignored while busy.
func (s State) Busy() bool {
	return s.mutating > 0
}

// SessionEpoch changes whenever a new session starts, even one equal to the
// previous session. Views holding an edit buffer reload when it changes.
func (s State) SessionEpoch() uint64 {
	return s.epoch
}

func Reduce(s State, msg Msg) (State, []Effect) {
	switch msg := msg.(type) {
	case Refresh:
		return s.fetchList()

	case SearchChanged:
		if msg.Text == s.SearchText {
			return s, nil
		}
		s.SearchText = msg.Text
		return s.fetchList()

	case Select:
		if s.Busy() || msg.ID == "" {
			return s, nil
		}
		s.sessionSeq++
		s.inFlight++
		return s, []Effect{FetchNote{Seq: s.sessionSeq, ID: msg.ID}}

	case Create:
		if s.Busy() {
			return s, nil
		}
		s.sessionSeq++
		s.setSession(EditNew())
		return s, nil

	case Save:
		if s.Busy() {
			return s, nil
		}
		if _, ok := s.Session.Draft(); !ok {
			return s, nil
		}
		s.Session = s.Session.withDraft(msg.Draft)
		draft, _ := s.Session.Draft()
		s.sessionSeq++
		s.inFlight++
		s.mutating++
		return s, []Effect{SaveNote{Draft: draft}}

	case Cancel:
		if s.Busy() || s.Session.Mode() == Browsing {
			return s, nil
		}
		s.sessionSeq++
		s.setSession(Browse(s.Session.SelectedID()))
		return s, nil

	case RequestDelete:
		if s.Busy() {
			return s, nil
		}
		id := msg.ID
		if id == "" {
			if d, ok := s.Session.Draft(); ok {
				id = d.ID
			}
		}
		if id == "" {
			return s, nil
		}
		s.PendingDelete = id
		return s, nil

	case ConfirmDelete:
		id := s.PendingDelete
		s.PendingDelete = ""
		if id == "" || s.Busy() {
			return s, nil
		}
		s.sessionSeq++
		s.inFlight++
		s.mutating++
		return s, []Effect{DeleteNote{ID: id}}

	case DismissDelete:
		s.PendingDelete = ""
		return s, nil

	case ListLoaded:
		s.finish()
		if msg.Seq != s.listSeq {
			return s, nil
		}
		if msg.Err != nil {
			s.Err = errMessage(msg.Err, "Error loading notes")
			return s, nil
		}
		s.Notes = normalize(msg.Notes)
		return s, nil

	case NoteLoaded:
		s.finish()
		if msg.Seq != s.sessionSeq {
			return s, nil
		}
		if msg.Err != nil {
			s.Err = errMessage(msg.Err, "Error loading note")
			return s, nil
		}
		s.setSession(EditExisting(msg.Note))
		return s, nil

	case Saved:
		s.finishMutation()
		if msg.Err != nil {
			s.Err = errMessage(msg.Err, "Failed to save note")
		}
		if msg.Note == nil {
			return s, nil
		}
		// A created note starts a new session. An update keeps the
		// current one and only refreshes its contents.
		if msg.Created {
			s.setSession(EditExisting(*msg.Note))
		} else {
			s.Session = EditExisting(*msg.Note)
		}
		return s.refetchList()

	case Deleted:
		s.finishMutation()
		if msg.Err != nil {
			s.Err = errMessage(msg.Err, "Failed to delete note")
			return s, nil
		}
		if s.Session.references(msg.ID) {
			s.setSession(Browse(""))
		}
		return s.refetchList()
	}

	return s, nil
}

func (s State) fetchList() (State, []Effect) {
	s.Err = ""
	return s.refetchList()
}

// refetchList fetches the list for the current search text without
// touching Err. The sequence is taken now, so the result wins over every
// fetch issued before it.
func (s State) refetchList() (State, []Effect) {
	s.listSeq++
	s.inFlight++
	return s, []Effect{FetchList{Seq: s.listSeq, Search: s.SearchText}}
}

func (s *State) setSession(next Session) {
	s.Session = next
	s.epoch++
}

func (s *State) finish() {
	if s.inFlight > 0 {
		s.inFlight--
	}
}

func (s *State) finishMutation() {
	s.finish()
	if s.mutating > 0 {
		s.mutating--
	}
}

func normalize(items []note.ListItem) []note.ListItem {
	if items == nil {
		return []note.ListItem{}
	}
	return items
}

func errMessage(err error, fallback string) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
