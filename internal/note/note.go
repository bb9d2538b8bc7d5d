// Package note holds the note records exchanged with the notes API.
package note

import "strings"

const untitled = "(Untitled)"

// Note is a server-owned record. ID and UpdatedAt are assigned by the server.
type Note struct {
	ID        string `json:"id"         yaml:"id"`
	Title     string `json:"title"      yaml:"title"`
	Content   string `json:"content"    yaml:"content"`
	UpdatedAt string `json:"updated_at" yaml:"updated_at"`
}

// ListItem is the projection of a Note shown in note lists. Content is
// fetched per note on demand.
type ListItem struct {
	ID        string `json:"id"         yaml:"id"`
	Title     string `json:"title"      yaml:"title"`
	UpdatedAt string `json:"updated_at" yaml:"updated_at"`
}

// Input is the request body for create and update calls.
type Input struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (n Note) ListItem() ListItem {
	return ListItem{ID: n.ID, Title: n.Title, UpdatedAt: n.UpdatedAt}
}

// ListItems projects notes in order.
func ListItems(notes []Note) []ListItem {
	items := make([]ListItem, 0, len(notes))
	for _, n := range notes {
		items = append(items, n.ListItem())
	}
	return items
}

// DisplayTitle returns the title, or "(Untitled)" when it is blank.
func DisplayTitle(title string) string {
	if strings.TrimSpace(title) == "" {
		return untitled
	}
	return title
}
