package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Warning represents a user-facing warning message.
type Warning struct {
	Title       string   // Main warning title
	Message     string   // Detailed explanation (optional)
	Directories []string // Affected directories (optional)
	Suggestion  string   // Action to take (optional)
}

// Display shows a formatted warning, in yellow when out is a terminal.
func (w Warning) Display(out io.Writer) {
	var b strings.Builder

	b.WriteString("Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Directories) > 0 {
		if len(w.Directories) == 1 {
			b.WriteString("    Affected directory:\n")
		} else {
			b.WriteString("    Affected directories:\n")
		}
		for _, dir := range w.Directories {
			b.WriteString("      - ")
			b.WriteString(dir)
			b.WriteString("\n")
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion: ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	if isTerminal(out) {
		fmt.Fprint(out, "\x1b[33m"+b.String()+"\x1b[0m")
		return
	}
	fmt.Fprint(out, b.String())
}

// isTerminal reports whether the writer is a terminal that supports
// colors. NO_COLOR is honored through the color library.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if color.NoColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// WarnResidualDirs creates the warning shown when cleanup is about to
// remove top-level directories that still contain files, e.g. files
// beyond the configured depth bound or files whose move failed.
func WarnResidualDirs(dirs []string) Warning {
	return Warning{
		Title:       "removing directories that still contain files",
		Message:     "Files left behind by the flatten (depth-bounded or failed moves) are deleted with their directory.",
		Directories: dirs,
		Suggestion:  "Re-run without --depth, or move the remaining files out first.",
	}
}
