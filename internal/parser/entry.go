// Package parser turns entry documents into catalog entries.
//
// Parsing is line-oriented: the title is the document's single level-1
// heading and fields are top-level bullet lines of the form
// "- Name: value, value (note)". Field values are normalized (notes in
// parentheses stripped, comma-separated, trimmed) while the verbatim value
// text is retained alongside. Validation problems are returned as warnings,
// never as errors: downstream consumers must tolerate entries missing any
// field.
package parser

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/osgames/curator/internal/catalog"
	"github.com/osgames/curator/internal/fileutil"
)

// InactivePrefix marks a state value that retires an entry. The text after
// the prefix is the inactivity marker, usually a year, kept as a string.
const InactivePrefix = "inactive since "

// RequiredFields are the fields every entry document must carry. A missing
// one is reported but the partial entry is still returned.
var RequiredFields = []string{catalog.FieldHome, catalog.FieldState}

var (
	titleRegex = regexp.MustCompile(`(?m)^# (.*)$`)
	fieldRegex = regexp.MustCompile(`^- (.+?): (.*)$`)
	noteRegex  = regexp.MustCompile(`\([^)]*\)`)
)

// Parse parses one entry document. It returns the entry and a list of
// validation warnings. An error is returned only when the document lacks a
// usable title, in which case the entry is unusable and should be skipped.
//
// Parsing is pure: the same content always yields the same entry.
func Parse(content string) (*catalog.Entry, []string, error) {
	titles := titleRegex.FindAllStringSubmatch(content, -1)
	if len(titles) != 1 {
		return nil, nil, fmt.Errorf("expected exactly one title heading, found %d", len(titles))
	}

	entry := &catalog.Entry{
		Title:  titles[0][1],
		Fields: make(map[string][]string),
		Raw:    make(map[string]string),
	}

	var warnings []string

	// Single pass over the lines. A field name appearing twice is invalid
	// and the field is dropped entirely so that neither value wins.
	duplicates := make(map[string]bool)
	for _, line := range strings.Split(content, "\n") {
		match := fieldRegex.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		name := strings.ToLower(match[1])
		if duplicates[name] {
			continue
		}
		if _, seen := entry.Fields[name]; seen {
			warnings = append(warnings, fmt.Sprintf("Duplicate field %q in entry %s", name, entry.Title))
			duplicates[name] = true
			delete(entry.Fields, name)
			delete(entry.Raw, name)
			continue
		}
		entry.Raw[name] = match[2]
		entry.Fields[name] = splitValues(match[2])
	}

	for _, field := range RequiredFields {
		if !entry.Has(field) {
			warnings = append(warnings, fmt.Sprintf("Essential field %q missing in entry %s", field, entry.Title))
		}
	}

	if states := entry.Values(catalog.FieldState); states != nil {
		hasBeta := entry.HasValue(catalog.FieldState, "beta")
		hasMature := entry.HasValue(catalog.FieldState, "mature")
		if hasBeta == hasMature {
			warnings = append(warnings, fmt.Sprintf("State must be one of <beta, mature> in entry %s", entry.Title))
		}
		for _, state := range states {
			if strings.HasPrefix(state, InactivePrefix) {
				entry.Inactive = strings.TrimPrefix(state, InactivePrefix)
				break
			}
		}
	}

	return entry, warnings, nil
}

// ParseFile parses the entry document at path and records its base filename
// on the entry.
func ParseFile(path string) (*catalog.Entry, []string, error) {
	content, err := fileutil.ReadText(path)
	if err != nil {
		return nil, nil, err
	}
	entry, warnings, err := Parse(content)
	if err != nil {
		return nil, warnings, err
	}
	entry.File = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return entry, warnings, nil
}

// splitValues normalizes a raw field value: parenthesized notes are
// stripped, the remainder is split on commas and every piece is trimmed.
func splitValues(raw string) []string {
	stripped := noteRegex.ReplaceAllString(raw, "")
	parts := strings.Split(stripped, ",")
	values := make([]string, len(parts))
	for i, part := range parts {
		values[i] = strings.TrimSpace(part)
	}
	return values
}
