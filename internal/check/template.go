package check

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/osgames/curator/internal/catalog"
	"github.com/osgames/curator/internal/fileutil"
)

// Templates reports template boilerplate left in entries. The check strings
// are the non-empty, non-heading lines of the template document; any entry
// whose text still contains one verbatim is reported to out as
// "<file>: found <line>". Nothing is written.
func Templates(templatePath, gamesDir string, out io.Writer) error {
	templateText, err := fileutil.ReadText(templatePath)
	if err != nil {
		return err
	}

	var checks []string
	for _, line := range strings.Split(templateText, "\n") {
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		checks = append(checks, line)
	}

	categories, err := catalog.Categories(gamesDir)
	if err != nil {
		return err
	}
	for _, category := range categories {
		files, err := category.EntryFiles()
		if err != nil {
			return err
		}
		for _, file := range files {
			content, err := fileutil.ReadText(file)
			if err != nil {
				return err
			}
			for _, check := range checks {
				if strings.Contains(content, check) {
					fmt.Fprintf(out, "%s: found %s\n", filepath.Base(file), check)
				}
			}
		}
	}
	return nil
}
