package notes

import (
	"context"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/notes/internal/state"
	notestui "github.com/Paintersrp/notes/internal/tui/notes"
)

func NewCmdNotes(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ui",
		Aliases: []string{"tui", "n"},
		Short:   "Open the interactive notes UI.",
		Long: heredoc.Doc(`
			Opens the notes UI: a searchable list of notes in the sidebar and an
			editor for the selected note.

			Keys:
			  tab      move focus between search, list and editor
			  /        search
			  ctrl+n   new note
			  ctrl+s   save
			  ctrl+c   quit
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(cmd.Context(), s)
		},
	}

	return cmd
}

func Run(ctx context.Context, s *state.State) error {
	if ctx == nil {
		ctx = context.Background()
	}

	m, err := notestui.NewRootModel(ctx, s.Client, notestui.Options{
		DateFormat:   s.Config.DateFormat,
		PreviewStyle: s.Config.PreviewStyle,
		Logger:       s.Logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create notes UI: %w", err)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running notes UI: %w", err)
	}
	return nil
}
