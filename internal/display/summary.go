package display

import (
	"fmt"
	"io"

	"github.com/harrison/flatten/internal/flatten"
)

// PreflightSummary shows what a flatten run is about to do: the eligible
// file count and the top-level directories that will be flattened and
// removed. Shown before the confirmation prompt so the user sees an
// accurate picture before anything is mutated.
func PreflightSummary(out io.Writer, root string, summary *flatten.Summary) {
	fmt.Fprintf(out, "Found %d file(s) to move to '%s'\n", summary.FileCount, root)

	dirs := summary.SortedDirs()
	if len(dirs) == 0 {
		return
	}
	fmt.Fprintf(out, "Top-level directories to be flattened:\n")
	for _, dir := range dirs {
		fmt.Fprintf(out, "  - %s\n", dir)
	}
}

// Completion shows the final moved-file count.
func Completion(out io.Writer, moved int) {
	fmt.Fprintf(out, "\nSuccessfully moved %d file(s)\n", moved)
}
