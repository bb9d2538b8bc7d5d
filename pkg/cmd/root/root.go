package root

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Paintersrp/notes/internal/state"
	"github.com/Paintersrp/notes/pkg/cmd/list"
	"github.com/Paintersrp/notes/pkg/cmd/notes"
	"github.com/Paintersrp/notes/pkg/cmd/rm"
	"github.com/Paintersrp/notes/pkg/cmd/show"
)

// NewCmdRoot builds the command tree. s is filled in before any command
// runs, once the --config and --server flags are known.
func NewCmdRoot(s *state.State) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "notes",
		Short: "A terminal client for a notes server.",
		Long: heredoc.Doc(`
			List, search, create, edit and delete short text notes stored on a
			notes server. Without a subcommand the interactive UI is launched.

			Configuration is read from $HOME/.notes/config.yaml, a .env file in
			the working directory and NOTES_* environment variables.
		`),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := state.NewState(configPath)
			if err != nil {
				return err
			}
			*s = *loaded
			s.Logger.Debug("state loaded",
				zap.String("config", s.Config.GetConfigPath()),
				zap.String("server", s.Config.ServerURL),
			)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return notes.Run(cmd.Context(), s)
		},
	}

	cmd.PersistentFlags().
		StringVar(&configPath, "config", "", "config file (default is $HOME/.notes/config.yaml)")
	cmd.PersistentFlags().
		String("server", "", "notes server URL, e.g. http://localhost:8080")
	viper.BindPFlag("server_url", cmd.PersistentFlags().Lookup("server"))

	cmd.AddCommand(
		notes.NewCmdNotes(s),
		list.NewCmdList(s),
		show.NewCmdShow(s),
		rm.NewCmdRm(s),
	)

	return cmd
}
