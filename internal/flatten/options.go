package flatten

import (
	"fmt"
	"os"
	"path/filepath"
)

// UnboundedDepth disables the traversal depth limit.
const UnboundedDepth = -1

// Options configures a flatten run.
type Options struct {
	// MaxDepth limits how deep the traversal descends. The root is at
	// depth 0 and its immediate children at depth 1. UnboundedDepth
	// means no limit. Note that MaxDepth 0 yields zero eligible files,
	// since files directly in the root are never moved.
	MaxDepth int
	// IncludePatterns restricts flattening to top-level directories
	// whose names start with one of these patterns (case-insensitive).
	IncludePatterns []string
	// ExcludePatterns skips top-level directories whose names start
	// with one of these patterns (case-insensitive). Mutually exclusive
	// with IncludePatterns.
	ExcludePatterns []string
}

// Validate checks option consistency before any filesystem access.
func (o Options) Validate() error {
	if len(o.IncludePatterns) > 0 && len(o.ExcludePatterns) > 0 {
		return fmt.Errorf("cannot use both include and exclude patterns at the same time")
	}
	if o.MaxDepth < UnboundedDepth {
		return fmt.Errorf("depth must be -1 (unbounded) or >= 0, got %d", o.MaxDepth)
	}
	return nil
}

// Bounded reports whether a depth limit is configured.
func (o Options) Bounded() bool {
	return o.MaxDepth != UnboundedDepth
}

// CanonicalRoot validates that dir exists and is a directory, and returns
// its absolute, symlink-resolved form. The result is used as the flatten
// root for the entire run and is not re-validated afterwards.
func CanonicalRoot(dir string) (string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("directory %q does not exist", dir)
		}
		return "", fmt.Errorf("failed to access %q: %w", dir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%q is not a directory", dir)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path for %q: %w", dir, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize %q: %w", dir, err)
	}
	return resolved, nil
}
