package logging

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Paintersrp/notes/internal/config"
)

func TestNewWritesJSONToFileAtLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "notes.log")
	log, err := New(&config.Config{LogFile: path, LogLevel: "warn"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	log.Info("dropped")
	log.Warn("kept")
	if err := log.Sync(); err != nil {
		t.Fatalf("sync failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("expected log file: %v", err)
	}
	defer f.Close()

	var lines []map[string]any
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var entry map[string]any
		if err := json.Unmarshal(sc.Bytes(), &entry); err != nil {
			t.Fatalf("log line is not JSON: %q", sc.Text())
		}
		lines = append(lines, entry)
	}

	if len(lines) != 1 {
		t.Fatalf("expected one entry above warn, got %d", len(lines))
	}
	if lines[0]["message"] != "kept" || lines[0]["level"] != "WARN" {
		t.Fatalf("unexpected entry %v", lines[0])
	}
	if _, ok := lines[0]["timestamp"]; !ok {
		t.Fatalf("expected timestamp key in %v", lines[0])
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(&config.Config{LogFile: filepath.Join(t.TempDir(), "x.log"), LogLevel: "loud"})
	if err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
