package gen

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/osgames/curator/internal/catalog"
	"github.com/osgames/curator/internal/config"
	"github.com/osgames/curator/internal/fileutil"
	"github.com/osgames/curator/internal/parser"
)

// exportPayload is the shape consumed by the browser-side table: a fixed
// headings row and one [title, download] pair per entry.
type exportPayload struct {
	Headings []string   `json:"headings"`
	Data     [][]string `json:"data"`
}

// ExportJSON projects every entry to a [title, download] pair and writes
// the payload to the export file wholesale. Entries without a download
// field contribute an empty string, never null.
func ExportJSON(root string, cfg *config.Config, out io.Writer) error {
	entries, err := parser.Collect(cfg.GamesPath(root), out)
	if err != nil {
		return err
	}

	payload := exportPayload{
		Headings: []string{"Name", "Download"},
		Data:     make([][]string, 0, len(entries)),
	}
	for i := range entries {
		payload.Data = append(payload.Data, []string{
			entries[i].Title,
			entries[i].First(catalog.FieldDownload),
		})
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}
	return fileutil.WriteText(cfg.ExportPath(root), string(data))
}
