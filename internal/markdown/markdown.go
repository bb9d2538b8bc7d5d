// Package markdown renders note content for the terminal.
package markdown

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

const DefaultWidth = 80

// Render renders content with a glamour standard style, wrapped at width.
func Render(content, style string, width int) (string, error) {
	if width <= 0 {
		width = DefaultWidth
	}
	if style == "" {
		style = "dracula"
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
		glamour.WithColorProfile(termenv.ANSI256),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}

	out, err := r.Render(content)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

// Document renders a titled note as a single markdown document.
func Document(title, content string) string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(content)
	return b.String()
}
