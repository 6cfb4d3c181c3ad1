package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/osgames/curator/internal/gen"
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

// catalogFixture builds a small catalog under a fresh temp root: a readme,
// two categories with three entries between them, and the entry template.
func catalogFixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "README.md"),
		"# Open Source Games\n\n"+
			gen.StartMarker+"\n0 entries\n\n"+gen.EndMarker+
			"\nA collection of open source games.\n")

	writeFile(t, filepath.Join(root, "games", "template.md"),
		"# Add the name of the game here\n\n- Home: add-the-homepage-here\n- State: add-beta-or-mature-here\n")

	writeFile(t, filepath.Join(root, "games", "action", "_toc.md"),
		"# Action\n\n"+gen.StartMarker+"\n\n"+gen.EndMarker+"\n")
	writeFile(t, filepath.Join(root, "games", "action", "alpha.md"),
		"# Alpha Strike\n\n- Home: https://example.org/alpha\n- State: beta\n- Download: https://example.org/alpha.zip\n- Language: C\n- License: MIT\n")
	writeFile(t, filepath.Join(root, "games", "action", "zelda.md"),
		"# Zelda Classic\n\n- Home: https://example.org/zelda\n- State: mature\n- Language: C++\n- License: GPL-3.0\n")

	writeFile(t, filepath.Join(root, "games", "strategy", "_toc.md"),
		"# Strategy games\n\n"+gen.StartMarker+"\n\n"+gen.EndMarker+"\n")
	writeFile(t, filepath.Join(root, "games", "strategy", "widelands.md"),
		"# Widelands\n\n- Home: https://www.widelands.org/\n- State: mature\n- Download: https://www.widelands.org/wiki/Download/\n- Language: C++\n- License: GPL-2.0\n")

	return root
}

// runCurator executes the root command with the given arguments and returns
// the combined output.
func runCurator(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}
