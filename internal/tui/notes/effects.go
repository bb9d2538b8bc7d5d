package notes

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Paintersrp/notes/internal/note"
	"github.com/Paintersrp/notes/internal/store"
)

// NotesAPI is the part of the HTTP client the UI depends on.
type NotesAPI interface {
	ListNotes(ctx context.Context, search string) ([]note.Note, error)
	GetNote(ctx context.Context, id string) (note.Note, error)
	CreateNote(ctx context.Context, in note.Input) (note.Note, error)
	UpdateNote(ctx context.Context, id string, in note.Input) (note.Note, error)
	DeleteNote(ctx context.Context, id string) error
}

type effectRunner struct {
	ctx context.Context
	api NotesAPI
	log *zap.Logger
}

func (r effectRunner) run(effects []store.Effect) tea.Cmd {
	if len(effects) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(effects))
	for _, e := range effects {
		cmds = append(cmds, r.cmd(e))
	}
	return tea.Batch(cmds...)
}

func (r effectRunner) cmd(e store.Effect) tea.Cmd {
	switch e := e.(type) {
	case store.FetchList:
		return func() tea.Msg {
			notes, err := r.api.ListNotes(r.ctx, e.Search)
			if err != nil {
				r.log.Warn("list notes failed", zap.String("search", e.Search), zap.Error(err))
				return store.ListLoaded{Seq: e.Seq, Err: err}
			}
			return store.ListLoaded{Seq: e.Seq, Notes: note.ListItems(notes)}
		}

	case store.FetchNote:
		return func() tea.Msg {
			n, err := r.api.GetNote(r.ctx, e.ID)
			if err != nil {
				r.log.Warn("get note failed", zap.String("id", e.ID), zap.Error(err))
			}
			return store.NoteLoaded{Seq: e.Seq, Note: n, Err: err}
		}

	case store.SaveNote:
		return func() tea.Msg {
			return r.save(e)
		}

	case store.DeleteNote:
		return func() tea.Msg {
			return r.delete(e)
		}
	}

	r.log.Error("unknown effect", zap.Any("effect", e))
	return nil
}

// save updates or creates the draft. An update reloads the note so the editor
// shows what the server stored.
func (r effectRunner) save(e store.SaveNote) store.Saved {
	res := store.Saved{Created: e.Draft.ID == ""}

	var saved note.Note
	var err error
	if res.Created {
		saved, err = r.api.CreateNote(r.ctx, e.Draft.Input())
	} else {
		saved, err = r.api.UpdateNote(r.ctx, e.Draft.ID, e.Draft.Input())
	}
	if err != nil {
		r.log.Warn("save note failed", zap.String("id", e.Draft.ID), zap.Error(err))
		res.Err = err
		return res
	}
	res.Note = &saved
	r.log.Info("note saved", zap.String("id", saved.ID), zap.Bool("created", res.Created))

	if !res.Created {
		fresh, err := r.api.GetNote(r.ctx, saved.ID)
		if err != nil {
			r.log.Warn("reload saved note failed", zap.String("id", saved.ID), zap.Error(err))
			res.Err = err
			return res
		}
		res.Note = &fresh
	}
	return res
}

func (r effectRunner) delete(e store.DeleteNote) store.Deleted {
	if err := r.api.DeleteNote(r.ctx, e.ID); err != nil {
		r.log.Warn("delete note failed", zap.String("id", e.ID), zap.Error(err))
		return store.Deleted{ID: e.ID, Err: err}
	}
	r.log.Info("note deleted", zap.String("id", e.ID))
	return store.Deleted{ID: e.ID}
}
