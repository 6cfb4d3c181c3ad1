package parser

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/osgames/curator/internal/catalog"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func TestCollect(t *testing.T) {
	gamesDir := t.TempDir()

	writeFile(t, filepath.Join(gamesDir, "action", catalog.TOCFilename), "# Action\n")
	writeFile(t, filepath.Join(gamesDir, "action", "zelda.md"),
		"# Zelda Classic\n\n- Home: https://example.org/zelda\n- State: mature\n")
	writeFile(t, filepath.Join(gamesDir, "strategy", catalog.TOCFilename), "# Strategy games\n")
	writeFile(t, filepath.Join(gamesDir, "strategy", "widelands.md"),
		"# Widelands\n\n- Home: https://www.widelands.org/\n- State: mature\n")

	var warn bytes.Buffer
	entries, err := Collect(gamesDir, &warn)
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].Title != "Zelda Classic" || entries[1].Title != "Widelands" {
		t.Errorf("Expected entries in walk order, got %q, %q", entries[0].Title, entries[1].Title)
	}
	if entries[0].Category != "Action" {
		t.Errorf("Expected category Action, got %q", entries[0].Category)
	}
	if entries[1].Category != "Strategy games" {
		t.Errorf("Expected category Strategy games, got %q", entries[1].Category)
	}
	if entries[1].File != "widelands" {
		t.Errorf("Expected file widelands, got %q", entries[1].File)
	}
	if warn.Len() != 0 {
		t.Errorf("Expected no warnings, got %q", warn.String())
	}
}

func TestCollectReportsWarnings(t *testing.T) {
	gamesDir := t.TempDir()

	writeFile(t, filepath.Join(gamesDir, "action", catalog.TOCFilename), "# Action\n")
	writeFile(t, filepath.Join(gamesDir, "action", "incomplete.md"), "# Incomplete\n\n- State: beta\n")

	var warn bytes.Buffer
	entries, err := Collect(gamesDir, &warn)
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	// Warnings never exclude the entry.
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if !strings.Contains(warn.String(), `Essential field "home" missing in entry Incomplete`) {
		t.Errorf("Expected missing field warning, got %q", warn.String())
	}
}

func TestCollectSkipsMalformedEntry(t *testing.T) {
	gamesDir := t.TempDir()

	writeFile(t, filepath.Join(gamesDir, "action", catalog.TOCFilename), "# Action\n")
	writeFile(t, filepath.Join(gamesDir, "action", "broken.md"), "- Home: https://example.org\n")
	writeFile(t, filepath.Join(gamesDir, "action", "fine.md"),
		"# Fine\n\n- Home: https://example.org\n- State: beta\n")

	var warn bytes.Buffer
	entries, err := Collect(gamesDir, &warn)
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("Expected malformed entry to be skipped, got %d entries", len(entries))
	}
	if entries[0].Title != "Fine" {
		t.Errorf("Expected remaining entry Fine, got %q", entries[0].Title)
	}
	if !strings.Contains(warn.String(), "broken.md:") {
		t.Errorf("Expected parse failure to be reported, got %q", warn.String())
	}
}

func TestCollectMissingGamesDir(t *testing.T) {
	tmpDir := t.TempDir()

	var warn bytes.Buffer
	_, err := Collect(filepath.Join(tmpDir, "missing"), &warn)
	if err == nil {
		t.Fatal("Expected error for missing games directory")
	}
}
