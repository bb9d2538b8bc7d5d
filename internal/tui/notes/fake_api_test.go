package notes

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/notes/internal/note"
	"github.com/Paintersrp/notes/internal/store"
)

type fakeAPI struct {
	mu       sync.Mutex
	notes    []note.Note
	nextID   int
	searches []string

	listErr   error
	getErr    error
	createErr error
	updateErr error
	deleteErr error
}

func newFakeAPI(notes ...note.Note) *fakeAPI {
	return &fakeAPI{notes: notes, nextID: len(notes) + 1}
}

func (f *fakeAPI) ListNotes(_ context.Context, search string) ([]note.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searches = append(f.searches, search)
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []note.Note{}
	q := strings.ToLower(search)
	for _, n := range f.notes {
		if q == "" || strings.Contains(strings.ToLower(n.Title+" "+n.Content), q) {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeAPI) GetNote(_ context.Context, id string) (note.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return note.Note{}, f.getErr
	}
	for _, n := range f.notes {
		if n.ID == id {
			return n, nil
		}
	}
	return note.Note{}, errors.New("Failed to fetch note (HTTP 404)")
}

func (f *fakeAPI) CreateNote(_ context.Context, in note.Input) (note.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return note.Note{}, f.createErr
	}
	n := note.Note{
		ID:        strconv.Itoa(f.nextID),
		Title:     in.Title,
		Content:   in.Content,
		UpdatedAt: "2024-03-01T10:00:00Z",
	}
	f.nextID++
	f.notes = append(f.notes, n)
	return n, nil
}

func (f *fakeAPI) UpdateNote(_ context.Context, id string, in note.Input) (note.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return note.Note{}, f.updateErr
	}
	for i, n := range f.notes {
		if n.ID == id {
			f.notes[i].Title = in.Title
			f.notes[i].Content = in.Content
			return f.notes[i], nil
		}
	}
	return note.Note{}, errors.New("Failed to update note (HTTP 404)")
}

func (f *fakeAPI) DeleteNote(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, n := range f.notes {
		if n.ID == id {
			f.notes = append(f.notes[:i], f.notes[i+1:]...)
			return nil
		}
	}
	return errors.New("Failed to delete note (HTTP 404)")
}

func (f *fakeAPI) lastSearch() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.searches) == 0 {
		return ""
	}
	return f.searches[len(f.searches)-1]
}

// runCmd executes cmd, giving up on commands that wait on timers such as
// cursor blinks.
func runCmd(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(50 * time.Millisecond):
		return nil
	}
}

// drain runs cmd and every command it leads to, feeding store messages back
// into the model until nothing is left.
func drain(t *testing.T, m *RootModel, cmd tea.Cmd) {
	t.Helper()

	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 500 {
			t.Fatalf("command queue did not settle")
		}
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}

		switch msg := runCmd(c).(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case store.Msg:
			_, next := m.Update(msg)
			queue = append(queue, next)
		}
	}
}

func press(t *testing.T, m *RootModel, msg tea.KeyMsg) {
	t.Helper()
	_, cmd := m.Update(msg)
	drain(t, m, cmd)
}

func typeText(t *testing.T, m *RootModel, text string) {
	t.Helper()
	for _, r := range text {
		press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}
