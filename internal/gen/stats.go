package gen

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/osgames/curator/internal/catalog"
	"github.com/osgames/curator/internal/config"
	"github.com/osgames/curator/internal/fileutil"
	"github.com/osgames/curator/internal/parser"
)

// now is swapped out in tests so the report header is stable.
var now = time.Now

// WriteStatistics aggregates every entry in the catalog and writes the
// statistics report into the games directory: state counts with
// percentages, the inactive entries, entries missing a tag, and language
// and license frequency tables computed over tag occurrences rather than
// entries.
func WriteStatistics(root string, cfg *config.Config, out io.Writer) error {
	entries, err := parser.Collect(cfg.GamesPath(root), out)
	if err != nil {
		return err
	}

	total := len(entries)
	rel := func(n int) float64 {
		if total == 0 {
			return 0
		}
		return float64(n) * 100 / float64(total)
	}

	var report strings.Builder
	report.WriteString("[comment]: # (autogenerated content, do not edit)\n# Statistics\n\n")
	fmt.Fprintf(&report, "analyzed %d entries on %s\n\n", total, now().Format("2006-01-02 15:04:05"))

	report.WriteString("## State\n\n")

	var mature, beta int
	var inactive []catalog.Entry
	var noState []string
	for i := range entries {
		entry := &entries[i]
		if entry.HasValue(catalog.FieldState, "mature") {
			mature++
		}
		if entry.HasValue(catalog.FieldState, "beta") {
			beta++
		}
		if entry.IsInactive() {
			inactive = append(inactive, *entry)
		}
		if !entry.Has(catalog.FieldState) {
			noState = append(noState, entry.File)
		}
	}
	fmt.Fprintf(&report, "- mature: %d (%.1f%%)\n- beta: %d (%.1f%%)\n- inactive: %d (%.1f%%)\n\n",
		mature, rel(mature), beta, rel(beta), len(inactive), rel(len(inactive)))

	if len(inactive) > 0 {
		// Most recently retired first; markers that both parse as numbers
		// compare numerically, everything else as strings.
		sort.Slice(inactive, func(i, j int) bool {
			left, right := inactive[i], inactive[j]
			if left.Inactive != right.Inactive {
				yearLeft, errLeft := strconv.Atoi(left.Inactive)
				yearRight, errRight := strconv.Atoi(right.Inactive)
				if errLeft == nil && errRight == nil {
					return yearLeft > yearRight
				}
				return left.Inactive > right.Inactive
			}
			return left.File < right.File
		})
		items := make([]string, len(inactive))
		for i, entry := range inactive {
			items[i] = fmt.Sprintf("%s (%s)", entry.File, entry.Inactive)
		}
		report.WriteString("##### Inactive State\n\n" + strings.Join(items, ", ") + "\n\n")
	}

	if len(noState) > 0 {
		sort.Strings(noState)
		fmt.Fprintf(&report, "##### Without state tag (%d)\n\n%s\n\n", len(noState), strings.Join(noState, ", "))
	}

	report.WriteString("## Languages\n\n")
	writeTagStats(&report, entries, catalog.FieldLanguage, "language", "Language frequency", rel)

	report.WriteString("## Code licenses\n\n")
	writeTagStats(&report, entries, catalog.FieldLicense, "license", "Licenses frequency", rel)

	return fileutil.WriteText(cfg.StatisticsPath(root), report.String())
}

// writeTagStats writes the shared shape of the language and license
// sections: the entries missing the tag, then the frequency table of all
// tag values as percentages of tag occurrences, sorted by frequency
// descending with name ascending on ties.
func writeTagStats(report *strings.Builder, entries []catalog.Entry, field, tagName, frequencyHeading string, rel func(int) float64) {
	var missing []string
	for i := range entries {
		if !entries[i].Has(field) {
			missing = append(missing, entries[i].File)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		fmt.Fprintf(report, "Without %s tag: %d (%.1f%%)\n\n%s\n\n", tagName, len(missing), rel(len(missing)), strings.Join(missing, ", "))
	}

	counts := make(map[string]int)
	occurrences := 0
	for i := range entries {
		for _, value := range entries[i].Values(field) {
			counts[value]++
			occurrences++
		}
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})

	fmt.Fprintf(report, "##### %s\n\n", frequencyHeading)
	for _, name := range names {
		fmt.Fprintf(report, "- %s (%.1f%%)\n", name, float64(counts[name])*100/float64(occurrences))
	}
	report.WriteString("\n")
}
