package flatten

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// Logger receives progress and error reports from a flatten run.
// Informational messages may be suppressed by the implementation (quiet
// mode); error messages must always be emitted.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// Summary captures the result of the pre-flight pass: how many files are
// eligible and which top-level directories they descend from. Cleanup
// consumes exactly this set rather than re-scanning, since the tree has
// already changed shape by the time it runs.
type Summary struct {
	FileCount    int
	TopLevelDirs map[string]struct{}
}

// SortedDirs returns the recorded top-level directory names in sorted
// order for stable display and processing.
func (s *Summary) SortedDirs() []string {
	dirs := make([]string, 0, len(s.TopLevelDirs))
	for name := range s.TopLevelDirs {
		dirs = append(dirs, name)
	}
	sort.Strings(dirs)
	return dirs
}

// Flattener performs the two-pass flatten over a canonicalized root
// directory. It is single-threaded; both passes traverse the tree with
// the same options so they agree on which files are eligible.
type Flattener struct {
	root string
	opts Options
	log  Logger

	// rename and removeAll are the filesystem mutation primitives,
	// swappable in tests to exercise failure paths.
	rename    func(oldpath, newpath string) error
	removeAll func(path string) error
}

// New creates a Flattener for the given root. The root must already be
// validated and canonicalized (see CanonicalRoot).
func New(root string, opts Options, log Logger) *Flattener {
	return &Flattener{
		root:      root,
		opts:      opts,
		log:       log,
		rename:    os.Rename,
		removeAll: os.RemoveAll,
	}
}

// Summarize runs the counting pass. No per-file paths are retained.
func (f *Flattener) Summarize() (*Summary, error) {
	summary := &Summary{
		TopLevelDirs: make(map[string]struct{}),
	}
	err := Walk(f.root, f.opts, func(path, topLevelDir string) {
		summary.FileCount++
		summary.TopLevelDirs[topLevelDir] = struct{}{}
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// Flatten runs the moving pass and returns the number of files moved.
// Each eligible file is renamed to a collision-free destination in the
// root. A failed rename is reported and skipped; it never aborts the run.
func (f *Flattener) Flatten() (int, error) {
	moved := 0
	err := Walk(f.root, f.opts, func(path, topLevelDir string) {
		dest := ResolveDestination(f.root, filepath.Base(path))
		if err := f.rename(path, dest); err != nil {
			f.log.Errorf("Error moving %s: %v", path, err)
			return
		}
		moved++
		f.log.Infof("Moved: %s -> %s", path, dest)
	})
	return moved, err
}

// ResidualDirs reports which recorded top-level directories still contain
// regular files after the flatten pass, e.g. files beyond the depth bound
// or files whose rename failed. Cleanup destroys those files along with
// the directory, so callers surface the list to the operator first.
func (f *Flattener) ResidualDirs(summary *Summary) []string {
	var residual []string
	for _, name := range summary.SortedDirs() {
		if containsFiles(filepath.Join(f.root, name)) {
			residual = append(residual, name)
		}
	}
	return residual
}

// Cleanup removes every top-level directory recorded in the summary,
// recursively and regardless of residual contents. Removal failures are
// reported and the remaining directories still processed.
func (f *Flattener) Cleanup(summary *Summary) {
	for _, name := range summary.SortedDirs() {
		dirPath := filepath.Join(f.root, name)
		info, err := os.Stat(dirPath)
		if err != nil || !info.IsDir() {
			continue
		}
		if err := f.removeAll(dirPath); err != nil {
			f.log.Errorf("Error removing directory %s: %v", name, err)
		}
	}
}

// containsFiles reports whether any regular file exists anywhere below
// dir. The scan stops at the first hit.
func containsFiles(dir string) bool {
	found := false
	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() && d.Type().IsRegular() {
			found = true
			return fs.SkipAll
		}
		return nil
	})
	return found
}
