// Package display provides terminal UI utilities for displaying progress and warnings.
//
// This package centralizes the terminal output formatting and ANSI color codes
// for the curator CLI.
//
// # Progress Indicators
//
// Use ProgressIndicator for multi-pass maintenance runs:
//
//	progress := display.NewProgressIndicator(os.Stdout, len(passes))
//	progress.Start()
//	for _, pass := range passes {
//	    progress.Step(pass.Name)
//	    // ... run pass ...
//	}
//	progress.Complete()
//
// # Warning Messages
//
// Display warnings with optional components:
//
//	warning := display.Warning{
//	    Title:      "Malformed Entry",
//	    Message:    "Entry has two title headings",
//	    Files:      []string{"games/action/alpha.md"},
//	    Suggestion: "Keep exactly one level-1 heading per entry",
//	}
//	warning.Display(os.Stderr)
//
// Or use the convenience factory when the catalog lock is held:
//
//	display.WarnLockHeld(lockPath).Display(os.Stdout)
//
// # ANSI Colors
//
// The package uses ANSI escape codes for terminal colors:
//   - Cyan (\x1b[36m) for progress steps
//   - Green (\x1b[32m) for success messages
//   - Yellow (\x1b[33m) for warnings
//   - Reset (\x1b[0m) after each colored section
//
// All functions accept io.Writer interfaces for testability.
package display
