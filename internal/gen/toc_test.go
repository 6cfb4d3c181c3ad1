package gen

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/osgames/curator/internal/config"
)

func TestUpdateTOCs(t *testing.T) {
	root := t.TempDir()
	cfg := config.DefaultConfig()
	categoryDir := filepath.Join(root, "games", "action")

	writeFile(t, filepath.Join(categoryDir, "_toc.md"),
		"# Action\n\n_add new entries alphabetically_\n\n"+
			StartMarker+"\n"+
			"- **[Stale](stale.md)** (C)\n"+
			"\n"+
			EndMarker+"\n"+
			"\nSee the [template](../template.md).\n")
	writeFile(t, filepath.Join(categoryDir, "zelda.md"),
		"# Zelda Classic\n\n- Home: https://example.org/zelda\n- State: mature\n- Language: C++\n- License: GPL-3.0\n")
	writeFile(t, filepath.Join(categoryDir, "alpha.md"),
		"# Alpha Strike\n\n- Home: https://example.org/alpha\n- State: beta\n- Language: C, Lua\n- License: MIT\n")

	var out bytes.Buffer
	if err := UpdateTOCs(root, cfg, &out); err != nil {
		t.Fatalf("UpdateTOCs failed: %v", err)
	}

	want := "# Action\n\n_add new entries alphabetically_\n\n" +
		StartMarker + "\n" +
		"- **[Alpha Strike](alpha.md)** (C, Lua, MIT, beta)\n" +
		"- **[Zelda Classic](zelda.md)** (C++, GPL-3.0, mature)\n" +
		"\n" +
		EndMarker + "\n" +
		"\nSee the [template](../template.md).\n"
	if got := readFile(t, filepath.Join(categoryDir, "_toc.md")); got != want {
		t.Errorf("Expected table of contents %q, got %q", want, got)
	}

	if !strings.Contains(out.String(), "generate toc for action") {
		t.Errorf("Expected progress line, got %q", out.String())
	}
}

func TestUpdateTOCsBadMarkersDoNotAbort(t *testing.T) {
	root := t.TempDir()
	cfg := config.DefaultConfig()

	badDir := filepath.Join(root, "games", "bad")
	writeFile(t, filepath.Join(badDir, "_toc.md"), "# Bad\n\nno markers here\n")
	writeFile(t, filepath.Join(badDir, "game.md"),
		"# Game\n\n- Home: https://example.org\n- State: beta\n")

	goodDir := filepath.Join(root, "games", "good")
	writeFile(t, filepath.Join(goodDir, "_toc.md"),
		"# Good\n\n"+StartMarker+"\n\n"+EndMarker+"\n")
	writeFile(t, filepath.Join(goodDir, "other.md"),
		"# Other\n\n- Home: https://example.org\n- State: mature\n")

	var out bytes.Buffer
	if err := UpdateTOCs(root, cfg, &out); err != nil {
		t.Fatalf("UpdateTOCs failed: %v", err)
	}

	if !strings.Contains(out.String(), "bad: no autogenerated region markers found") {
		t.Errorf("Expected bad category to be reported, got %q", out.String())
	}

	// The bad category is left untouched, the good one is still updated.
	if got := readFile(t, filepath.Join(badDir, "_toc.md")); got != "# Bad\n\nno markers here\n" {
		t.Errorf("Expected bad table of contents unchanged, got %q", got)
	}
	if got := readFile(t, filepath.Join(goodDir, "_toc.md")); !strings.Contains(got, "- **[Other](other.md)** (mature)\n") {
		t.Errorf("Expected good table of contents updated, got %q", got)
	}
}

func TestUpdateTOCsSkipsUnchangedFile(t *testing.T) {
	root := t.TempDir()
	cfg := config.DefaultConfig()
	categoryDir := filepath.Join(root, "games", "action")

	writeFile(t, filepath.Join(categoryDir, "_toc.md"),
		"# Action\n\n"+StartMarker+"\n\n"+EndMarker+"\n")
	writeFile(t, filepath.Join(categoryDir, "game.md"),
		"# Game\n\n- Home: https://example.org\n- State: beta\n")

	var out bytes.Buffer
	if err := UpdateTOCs(root, cfg, &out); err != nil {
		t.Fatalf("UpdateTOCs failed: %v", err)
	}

	tocPath := filepath.Join(categoryDir, "_toc.md")
	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(tocPath, past, past); err != nil {
		t.Fatalf("Failed to set mtime: %v", err)
	}

	if err := UpdateTOCs(root, cfg, &out); err != nil {
		t.Fatalf("UpdateTOCs failed: %v", err)
	}

	info, err := os.Stat(tocPath)
	if err != nil {
		t.Fatalf("Failed to stat file: %v", err)
	}
	if !info.ModTime().Equal(past) {
		t.Error("Expected unchanged table of contents not to be rewritten")
	}
}

func TestUpdateTOCsReportsEntryProblems(t *testing.T) {
	root := t.TempDir()
	cfg := config.DefaultConfig()
	categoryDir := filepath.Join(root, "games", "action")

	writeFile(t, filepath.Join(categoryDir, "_toc.md"),
		"# Action\n\n"+StartMarker+"\n\n"+EndMarker+"\n")
	writeFile(t, filepath.Join(categoryDir, "broken.md"), "- Home: https://example.org\n")
	writeFile(t, filepath.Join(categoryDir, "incomplete.md"), "# Incomplete\n\n- State: beta\n")

	var out bytes.Buffer
	if err := UpdateTOCs(root, cfg, &out); err != nil {
		t.Fatalf("UpdateTOCs failed: %v", err)
	}

	if !strings.Contains(out.String(), "broken.md: expected exactly one title heading") {
		t.Errorf("Expected parse failure report, got %q", out.String())
	}
	if !strings.Contains(out.String(), `Essential field "home" missing in entry Incomplete`) {
		t.Errorf("Expected warning, got %q", out.String())
	}

	// The unparsable entry is excluded, the incomplete one is still listed.
	got := readFile(t, filepath.Join(categoryDir, "_toc.md"))
	if strings.Contains(got, "broken.md") {
		t.Errorf("Expected broken entry to be excluded, got %q", got)
	}
	if !strings.Contains(got, "- **[Incomplete](incomplete.md)** (beta)\n") {
		t.Errorf("Expected incomplete entry to be listed, got %q", got)
	}
}
