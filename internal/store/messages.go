package store

import "github.com/Paintersrp/notes/internal/note"

// Msg is anything Reduce accepts: user intents and effect results.
type Msg interface {
	storeMsg()
}

// Intents emitted by the views.
type (
	// Refresh refetches the list for the current search text.
	Refresh struct{}

	// SearchChanged carries the raw search box text.
	SearchChanged struct{ Text string }

	Select struct{ ID string }

	Create struct{}

	Save struct{ Draft Draft }

	Cancel struct{}

	// RequestDelete asks for confirmation before deleting. An empty ID
	// targets the draft being edited.
	RequestDelete struct{ ID string }

	ConfirmDelete struct{}

	DismissDelete struct{}
)

// Results reported by effects.
type (
	ListLoaded struct {
		Seq   uint64
		Notes []note.ListItem
		Err   error
	}

	NoteLoaded struct {
		Seq  uint64
		Note note.Note
		Err  error
	}

	// Saved reports a save. Note is set once the create or update went
	// through; Err may still be set when reloading an updated note failed.
	Saved struct {
		Created bool
		Note    *note.Note
		Err     error
	}

	Deleted struct {
		ID  string
		Err error
	}
)

func (Refresh) storeMsg()       {}
func (SearchChanged) storeMsg() {}
func (Select) storeMsg()        {}
func (Create) storeMsg()        {}
func (Save) storeMsg()          {}
func (Cancel) storeMsg()        {}
func (RequestDelete) storeMsg() {}
func (ConfirmDelete) storeMsg() {}
func (DismissDelete) storeMsg() {}
func (ListLoaded) storeMsg()    {}
func (NoteLoaded) storeMsg()    {}
func (Saved) storeMsg()         {}
func (Deleted) storeMsg()       {}

// Effect is a request for I/O produced by Reduce. The caller performs it and
// feeds the matching result back into Reduce.
type Effect interface {
	effect()
}

type (
	FetchList struct {
		Seq    uint64
		Search string
	}

	FetchNote struct {
		Seq uint64
		ID  string
	}

	// SaveNote creates or updates Draft. An update reloads the note so the
	// editor shows what the server stored. The list is refetched by a
	// FetchList issued once the result arrives.
	SaveNote struct {
		Draft Draft
	}

	DeleteNote struct {
		ID string
	}
)

func (FetchList) effect()  {}
func (FetchNote) effect()  {}
func (SaveNote) effect()   {}
func (DeleteNote) effect() {}
