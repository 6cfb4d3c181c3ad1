package parser

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/osgames/curator/internal/catalog"
)

// Collect parses every entry document under gamesDir and returns the
// entries in walk order, each tagged with its category title and base
// filename. Validation warnings and per-entry parse failures are written to
// warn as plain lines; a malformed entry is reported and skipped, never
// aborting the batch.
func Collect(gamesDir string, warn io.Writer) ([]catalog.Entry, error) {
	categories, err := catalog.Categories(gamesDir)
	if err != nil {
		return nil, err
	}

	var entries []catalog.Entry
	for _, category := range categories {
		files, err := category.EntryFiles()
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			entry, warnings, err := ParseFile(file)
			for _, warning := range warnings {
				fmt.Fprintln(warn, warning)
			}
			if err != nil {
				fmt.Fprintf(warn, "%s: %v\n", filepath.Base(file), err)
				continue
			}
			entry.Category = category.Title
			entries = append(entries, *entry)
		}
	}
	return entries, nil
}
