package gen

import (
	"fmt"
	"io"
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/osgames/curator/internal/catalog"
	"github.com/osgames/curator/internal/config"
	"github.com/osgames/curator/internal/fileutil"
)

// ReadmeTrailer is the literal text the readme's hand-written tail must
// start with. Together with the title heading it brackets the generated
// middle block.
const ReadmeTrailer = "A collection"

// UpdateReadme recounts the entries per category and rewrites the readme's
// autogenerated middle block: a total line followed by one bullet per
// category linking to its table of contents, sorted by category title.
//
// The readme must match the fixed three-part shape (title heading, middle,
// trailer) exactly once. Any other shape is a structural error that aborts
// the run, so a reorganized readme is never half-rewritten.
func UpdateReadme(root string, cfg *config.Config, out io.Writer) error {
	fmt.Fprintln(out, "update readme file")

	readmePath := cfg.ReadmePath(root)
	text, err := fileutil.ReadText(readmePath)
	if err != nil {
		return err
	}

	header := "# " + cfg.Title + "\n\n"
	pattern := regexp.MustCompile(`(?s)(` + regexp.QuoteMeta(header) + `)(.*)(\n` + regexp.QuoteMeta(ReadmeTrailer) + `.*)`)
	matches := pattern.FindAllStringSubmatch(text, -1)
	if len(matches) != 1 {
		return fmt.Errorf("readme %s does not have the expected structure: %q heading followed by a %q trailer, found %d matches",
			readmePath, strings.TrimSpace(header), ReadmeTrailer, len(matches))
	}
	start, end := matches[0][1], matches[0][3]

	categories, err := catalog.Categories(cfg.GamesPath(root))
	if err != nil {
		return err
	}

	type item struct {
		title string
		line  string
	}
	total := 0
	items := make([]item, 0, len(categories))
	for _, category := range categories {
		files, err := category.EntryFiles()
		if err != nil {
			return err
		}
		total += len(files)
		link := path.Join(cfg.GamesDir, category.Name, catalog.TOCFilename)
		items = append(items, item{
			title: category.Title,
			line:  fmt.Sprintf("- **[%s](%s)** (%d)\n", category.Title, link, len(files)),
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].title < items[j].title
	})

	var block strings.Builder
	fmt.Fprintf(&block, "%d entries\n", total)
	for _, it := range items {
		block.WriteString(it.line)
	}

	updated := start + Wrap(block.String()) + end
	if updated == text {
		return nil
	}
	return fileutil.WriteText(readmePath, updated)
}
