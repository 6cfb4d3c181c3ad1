package catalog

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/osgames/curator/internal/fileutil"
)

// TOCFilename is the reserved table-of-contents filename inside every
// category directory. Files with this name are never entries.
const TOCFilename = "_toc.md"

// Category is one subdirectory of the games directory together with the
// heading of its table of contents.
type Category struct {
	Path  string // category directory
	Name  string // directory base name, used in links
	Title string // heading text from the TOC's first line
}

// TOCPath returns the category's table-of-contents file.
func (c Category) TOCPath() string {
	return filepath.Join(c.Path, TOCFilename)
}

// EntryFiles lists the entry documents of the category, sorted by filename.
// The table of contents itself is excluded. The walk is one level deep:
// subdirectories are ignored, entries never nest.
func (c Category) EntryFiles() ([]string, error) {
	return fileutil.ListFiles(c.Path, TOCFilename)
}

// Categories lists the direct subdirectories of gamesDir as catalog
// categories, sorted by directory name. Every category must have a readable
// table of contents; a category without one is a structural error.
func Categories(gamesDir string) ([]Category, error) {
	dirs, err := fileutil.ListDirs(gamesDir)
	if err != nil {
		return nil, err
	}

	categories := make([]Category, 0, len(dirs))
	for _, dir := range dirs {
		header, err := fileutil.ReadFirstLine(filepath.Join(dir, TOCFilename))
		if err != nil {
			return nil, fmt.Errorf("failed to read table of contents of %s: %w", filepath.Base(dir), err)
		}
		categories = append(categories, Category{
			Path:  dir,
			Name:  filepath.Base(dir),
			Title: strings.TrimSpace(strings.TrimLeft(header, "# ")),
		})
	}
	return categories, nil
}
