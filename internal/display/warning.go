package display

import (
	"fmt"
	"io"
	"strings"
)

// Warning is a block of advisory output: a title, an optional explanation,
// the files involved and a way out. Displayed as one yellow unit so it
// stands apart from regular progress lines.
type Warning struct {
	Title      string
	Message    string
	Files      []string
	Suggestion string
}

// Display writes the warning to out as a single yellow block.
func (w Warning) Display(out io.Writer) {
	var b strings.Builder
	b.WriteString("\x1b[33m⚠️  Warning: " + w.Title + "\n")

	if w.Message != "" {
		b.WriteString("    " + w.Message + "\n")
	}

	if len(w.Files) > 0 {
		label := "Affected files:"
		if len(w.Files) == 1 {
			label = "Affected file:"
		}
		b.WriteString("    " + label + "\n")
		for i, file := range w.Files {
			fmt.Fprintf(&b, "      %d. %s\n", i+1, file)
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n    " + w.Suggestion + "\n")
	}

	b.WriteString("\x1b[0m")
	fmt.Fprint(out, b.String())
}

// WarnLockHeld creates the warning shown when another process holds the
// catalog lock.
func WarnLockHeld(lockPath string) Warning {
	return Warning{
		Title:      "catalog is locked",
		Message:    "another curator process is regenerating this catalog",
		Files:      []string{lockPath},
		Suggestion: "wait for the other run to finish, or remove the lock file if no other run is active",
	}
}
