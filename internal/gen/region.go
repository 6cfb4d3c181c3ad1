// Package gen contains the catalog generators: category tables of contents,
// the readme summary, the statistics report, and the JSON export. Each
// generator re-reads the catalog from disk and writes its target
// independently, so they can run in any order and re-running on unchanged
// input reproduces identical output.
package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel comment markers delimiting generated regions inside otherwise
// hand-written documents.
const (
	StartMarker = "[comment]: # (start of autogenerated content, do not edit)"
	EndMarker   = "[comment]: # (end of autogenerated content)"
)

// ErrNoRegion is returned by Splice when a document has no sentinel
// markers at all.
var ErrNoRegion = errors.New("no autogenerated region markers found")

// ErrBadRegion is returned by Splice when the sentinel markers are
// duplicated, unpaired or out of order.
var ErrBadRegion = errors.New("malformed autogenerated region")

// Splice replaces the text between the sentinel markers of doc with block
// and returns the new document. Everything outside the markers is preserved
// byte for byte. block must consist of complete lines, each ending in a
// newline, or be empty.
//
// The document must contain exactly one start and one end marker with the
// start before the end; anything else is an error rather than a guess.
func Splice(doc, block string) (string, error) {
	starts := strings.Count(doc, StartMarker)
	ends := strings.Count(doc, EndMarker)
	if starts == 0 && ends == 0 {
		return "", ErrNoRegion
	}
	if starts != 1 || ends != 1 {
		return "", fmt.Errorf("%w: found %d start and %d end markers", ErrBadRegion, starts, ends)
	}

	head := strings.Index(doc, StartMarker) + len(StartMarker)
	tail := strings.Index(doc, EndMarker)
	if tail < head {
		return "", fmt.Errorf("%w: end marker precedes start marker", ErrBadRegion)
	}

	return doc[:head] + "\n" + block + "\n" + doc[tail:], nil
}

// Wrap returns a fresh marker-delimited region around block, for documents
// whose generated middle is rebuilt wholesale rather than spliced.
func Wrap(block string) string {
	return StartMarker + "\n" + block + "\n" + EndMarker
}
