package gen

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/osgames/curator/internal/catalog"
	"github.com/osgames/curator/internal/config"
	"github.com/osgames/curator/internal/fileutil"
	"github.com/osgames/curator/internal/parser"
)

// UpdateTOCs rebuilds the autogenerated listing in every category's table
// of contents. The header line and any hand-written text outside the marker
// region are preserved. Problems in a single category (bad markers,
// unparsable entries) are reported to out and the remaining categories are
// still processed.
func UpdateTOCs(root string, cfg *config.Config, out io.Writer) error {
	categories, err := catalog.Categories(cfg.GamesPath(root))
	if err != nil {
		return err
	}

	for _, category := range categories {
		fmt.Fprintf(out, "generate toc for %s\n", category.Name)
		if err := updateTOC(category, out); err != nil {
			fmt.Fprintf(out, "%s: %v\n", category.Name, err)
		}
	}
	return nil
}

func updateTOC(category catalog.Category, out io.Writer) error {
	files, err := category.EntryFiles()
	if err != nil {
		return err
	}

	type item struct {
		title string
		line  string
	}
	items := make([]item, 0, len(files))
	for _, file := range files {
		entry, warnings, err := parser.ParseFile(file)
		for _, warning := range warnings {
			fmt.Fprintln(out, warning)
		}
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", filepath.Base(file), err)
			continue
		}
		items = append(items, item{
			title: entry.Title,
			line:  fmt.Sprintf("- **[%s](%s)** (%s)\n", entry.Title, filepath.Base(file), entrySummary(entry)),
		})
	}

	// Sorted by entry title; titles are assumed unique, ties keep their
	// walk order.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].title < items[j].title
	})

	var block strings.Builder
	for _, it := range items {
		block.WriteString(it.line)
	}

	doc, err := fileutil.ReadText(category.TOCPath())
	if err != nil {
		return err
	}
	updated, err := Splice(doc, block.String())
	if err != nil {
		return err
	}
	if updated == doc {
		return nil
	}
	return fileutil.WriteText(category.TOCPath(), updated)
}

// entrySummary builds the parenthetical shown after an entry's title in the
// table of contents: language, license and state values in that order.
func entrySummary(entry *catalog.Entry) string {
	var parts []string
	parts = append(parts, entry.Values(catalog.FieldLanguage)...)
	parts = append(parts, entry.Values(catalog.FieldLicense)...)
	parts = append(parts, entry.Values(catalog.FieldState)...)
	return strings.Join(parts, ", ")
}
