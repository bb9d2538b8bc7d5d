package list

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/notes/internal/note"
	"github.com/Paintersrp/notes/internal/state"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

func NewCmdList(s *state.State) *cobra.Command {
	var search, output string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List notes, optionally filtered by a search term.",
		Long: heredoc.Doc(`
			Lists the notes on the server, most relevant first as returned by the
			server. The search term is matched by the server.

			Example:
			  notes list --search groceries
			  notes list -o json
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch output {
			case outputTable, outputJSON, outputYAML:
			default:
				return fmt.Errorf("invalid output %q: must be one of table, json, yaml", output)
			}

			notes, err := s.Client.ListNotes(cmd.Context(), search)
			if err != nil {
				return err
			}
			items := note.ListItems(notes)

			return write(cmd.OutOrStdout(), items, output, s.Config.DateFormat)
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "only list notes matching this term")
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format: table, json or yaml")
	return cmd
}

func write(w io.Writer, items []note.ListItem, output, dateFormat string) error {
	switch output {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(items)

	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(items); err != nil {
			return err
		}
		return enc.Close()
	}

	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "No notes found.")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Title", "Updated"})
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	for _, it := range items {
		table.Append([]string{
			it.ID,
			note.DisplayTitle(it.Title),
			note.FormatTimestamp(it.UpdatedAt, dateFormat),
		})
	}
	table.Render()
	return nil
}
