package show

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Paintersrp/notes/internal/api"
	"github.com/Paintersrp/notes/internal/markdown"
	"github.com/Paintersrp/notes/internal/note"
	"github.com/Paintersrp/notes/internal/state"
)

type ShowOptions struct {
	State *state.State
	Out   io.Writer
	Raw   bool

	// Pick chooses a note when no id is given. It defaults to a fuzzy finder.
	Pick func(notes []note.Note) (int, error)
	// Width is the terminal width used for wrapping.
	Width func() int
}

func NewCmdShow(s *state.State) *cobra.Command {
	return newCmdShow(&ShowOptions{
		State: s,
		Pick:  fuzzyPick,
		Width: terminalWidth,
	})
}

func newCmdShow(opts *ShowOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Print a note rendered as markdown.",
		Long: heredoc.Doc(`
			Prints a note rendered as markdown. Without an id, pick the note from
			a fuzzy finder over the note titles.

			Example:
			  notes show 42
			  notes show --raw 42
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Out = cmd.OutOrStdout()
			id := ""
			if len(args) == 1 {
				id = args[0]
			}
			return runShow(cmd.Context(), opts, id)
		},
	}

	cmd.Flags().BoolVar(&opts.Raw, "raw", false, "print the content without rendering")
	return cmd
}

func runShow(ctx context.Context, opts *ShowOptions, id string) error {
	client := opts.State.Client

	if id == "" {
		notes, err := client.ListNotes(ctx, "")
		if err != nil {
			return err
		}
		if len(notes) == 0 {
			return errors.New("no notes found")
		}
		idx, err := opts.Pick(notes)
		if err != nil {
			if errors.Is(err, fuzzyfinder.ErrAbort) {
				return nil
			}
			return fmt.Errorf("failed to pick a note: %w", err)
		}
		id = notes[idx].ID
	}

	n, err := client.GetNote(ctx, id)
	if api.IsNotFound(err) {
		return fmt.Errorf("note %s not found: %w", id, err)
	}
	if err != nil {
		return err
	}

	if opts.Raw {
		_, err := fmt.Fprintln(opts.Out, n.Content)
		return err
	}

	out, err := markdown.Render(
		markdown.Document(note.DisplayTitle(n.Title), n.Content),
		opts.State.Config.PreviewStyle,
		opts.Width(),
	)
	if err != nil {
		return err
	}
	_, err = io.WriteString(opts.Out, out)
	return err
}

func fuzzyPick(notes []note.Note) (int, error) {
	return fuzzyfinder.Find(
		notes,
		func(i int) string {
			return note.DisplayTitle(notes[i].Title)
		},
		fuzzyfinder.WithHeader("Select a note"),
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return notes[i].Content
		}),
	)
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return markdown.DefaultWidth
}
