package notes

import (
	"fmt"
	"strings"

	"github.com/Paintersrp/notes/internal/cache"
	"github.com/Paintersrp/notes/internal/markdown"
)

var maxCacheSizeMB int64 = 8

// previewRenderer renders note content as markdown and caches the output by
// style, width and content.
type previewRenderer struct {
	style string
	cache *cache.Cache
}

func newPreviewRenderer(style string) (*previewRenderer, error) {
	c, err := cache.New(maxCacheSizeMB)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}
	if style == "" {
		style = "dracula"
	}
	return &previewRenderer{style: style, cache: c}, nil
}

func (p *previewRenderer) Render(content string, width int) (string, error) {
	if width <= 0 {
		width = markdown.DefaultWidth
	}
	if strings.TrimSpace(content) == "" {
		return mutedStyle.Render("Nothing to preview."), nil
	}

	k := cache.Key(p.style, width, content)
	if out, ok := p.cache.Get(k); ok {
		return out, nil
	}

	out, err := markdown.Render(content, p.style, width)
	if err != nil {
		return "", err
	}

	// An oversized render is still shown, just not kept.
	_ = p.cache.Put(k, out)
	return out, nil
}
