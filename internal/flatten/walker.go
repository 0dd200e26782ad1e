package flatten

import (
	"fmt"
	"os"
	"path/filepath"
)

// VisitFunc receives each eligible file together with the name of the
// top-level directory it descends from.
type VisitFunc func(path string, topLevelDir string)

// workItem is one directory pending enumeration.
type workItem struct {
	path        string
	depth       int
	topLevelDir string
}

// Walk enumerates every regular file strictly below root that passes the
// depth bound and top-level filtering in opts, invoking visit once per
// file. Both the summary pass and the flatten pass run through here; the
// visit function is the only difference between them.
//
// Traversal uses an explicit work queue instead of recursion, so
// pathologically deep trees cannot exhaust the call stack. The top-level
// directory name is established when a subtree is entered at depth 1 and
// carried on every queue entry below it, never recomputed from the path.
//
// A directory whose depth exceeds the bound is dropped without being
// enumerated. An ineligible top-level directory is never queued at all.
func Walk(root string, opts Options, visit VisitFunc) error {
	queue := []workItem{{path: root, depth: 0}}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		if opts.Bounded() && item.depth > opts.MaxDepth {
			continue
		}

		entries, err := os.ReadDir(item.path)
		if err != nil {
			return fmt.Errorf("failed to read directory %s: %w", item.path, err)
		}

		for _, entry := range entries {
			path := filepath.Join(item.path, entry.Name())

			if entry.IsDir() {
				topLevel := item.topLevelDir
				if item.depth == 0 {
					topLevel = entry.Name()
					if !TopLevelEligible(topLevel, opts.IncludePatterns, opts.ExcludePatterns) {
						continue
					}
				}
				queue = append(queue, workItem{
					path:        path,
					depth:       item.depth + 1,
					topLevelDir: topLevel,
				})
				continue
			}

			if !entry.Type().IsRegular() {
				continue
			}

			// Files sitting directly in the root stay put.
			if item.depth > 0 {
				visit(path, item.topLevelDir)
			}
		}
	}

	return nil
}
