package notes

import (
	"strings"
	"testing"
)

func TestPreviewRendererCachesOutput(t *testing.T) {
	p, err := newPreviewRenderer("notty")
	if err != nil {
		t.Fatalf("failed to create renderer: %v", err)
	}

	out, err := p.Render("# Title\n\nsome *markdown*", 60)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(out, "markdown") {
		t.Fatalf("expected rendered text, got %q", out)
	}
	if p.cache.Len() != 1 {
		t.Fatalf("expected one cached render, got %d", p.cache.Len())
	}

	again, err := p.Render("# Title\n\nsome *markdown*", 60)
	if err != nil || again != out {
		t.Fatalf("expected cached render to match")
	}
	if p.cache.Len() != 1 {
		t.Fatalf("expected cache hit, got %d entries", p.cache.Len())
	}

	if _, err := p.Render("# Title\n\nsome *markdown*", 40); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if p.cache.Len() != 2 {
		t.Fatalf("expected width to be part of the key")
	}
}

func TestPreviewRendererEmptyContent(t *testing.T) {
	p, err := newPreviewRenderer("")
	if err != nil {
		t.Fatalf("failed to create renderer: %v", err)
	}
	out, err := p.Render("   ", 40)
	if err != nil || !strings.Contains(out, "Nothing to preview.") {
		t.Fatalf("expected placeholder, got %q (%v)", out, err)
	}
	if p.style != "dracula" {
		t.Fatalf("expected default style, got %q", p.style)
	}
}
