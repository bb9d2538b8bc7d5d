package notes

import (
	"github.com/charmbracelet/bubbles/list"

	"github.com/Paintersrp/notes/internal/note"
)

// ListItem is a row of the sidebar list.
type ListItem struct {
	id        string
	title     string
	updatedAt string
	// active marks the note open in the editor, which may differ from the
	// row under the cursor.
	active bool
}

func (i ListItem) ID() string {
	return i.id
}

func (i ListItem) Title() string {
	return note.DisplayTitle(i.title)
}

func (i ListItem) Description() string {
	return i.updatedAt
}

func (i ListItem) FilterValue() string {
	return i.title
}

func toListItems(notes []note.ListItem, selectedID, dateFormat string) []list.Item {
	items := make([]list.Item, 0, len(notes))
	for _, n := range notes {
		items = append(items, ListItem{
			id:        n.ID,
			title:     n.Title,
			updatedAt: note.FormatTimestamp(n.UpdatedAt, dateFormat),
			active:    selectedID != "" && n.ID == selectedID,
		})
	}
	return items
}
