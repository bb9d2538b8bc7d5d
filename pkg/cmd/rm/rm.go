package rm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/erikgeiser/promptkit/confirmation"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Paintersrp/notes/internal/api"
	"github.com/Paintersrp/notes/internal/note"
	"github.com/Paintersrp/notes/internal/state"
)

var ErrNotInteractive = errors.New("refusing to delete without --yes: stdin is not a terminal")

type RmOptions struct {
	State *state.State
	Out   io.Writer
	Yes   bool

	IsTerminal func() bool
	Confirm    func(prompt string) (bool, error)
}

func NewCmdRm(s *state.State) *cobra.Command {
	return newCmdRm(&RmOptions{
		State:      s,
		IsTerminal: stdinIsTerminal,
		Confirm:    promptConfirm,
	})
}

func newCmdRm(opts *RmOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm [id]",
		Aliases: []string{"delete", "del"},
		Short:   "Delete a note.",
		Long: heredoc.Doc(`
			Deletes a note from the server after asking for confirmation.
			Pass --yes to skip the prompt, which is required when stdin is
			not a terminal.

			Example:
			  notes rm 42
			  notes rm --yes 42
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Out = cmd.OutOrStdout()
			return runRm(cmd.Context(), opts, args[0])
		},
	}

	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "delete without asking")
	return cmd
}

func runRm(ctx context.Context, opts *RmOptions, id string) error {
	client := opts.State.Client

	n, err := client.GetNote(ctx, id)
	if api.IsNotFound(err) {
		return fmt.Errorf("note %s not found: %w", id, err)
	}
	if err != nil {
		return err
	}

	if !opts.Yes {
		if !opts.IsTerminal() {
			return ErrNotInteractive
		}
		ok, err := opts.Confirm(fmt.Sprintf("Delete %q?", note.DisplayTitle(n.Title)))
		if err != nil {
			return fmt.Errorf("failed to confirm: %w", err)
		}
		if !ok {
			_, err := fmt.Fprintln(opts.Out, "Kept note", id)
			return err
		}
	}

	if err := client.DeleteNote(ctx, id); err != nil {
		return err
	}
	opts.State.Logger.Info("note deleted from cli")

	_, err = fmt.Fprintln(opts.Out, "Deleted note", id)
	return err
}

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func promptConfirm(prompt string) (bool, error) {
	return confirmation.New(prompt, confirmation.No).RunPrompt()
}
