// Package flatten implements the core directory flattening algorithm.
//
// A flatten run relocates every regular file found strictly below a root
// directory into the root itself, then removes the emptied top-level
// directories. The work is split into two passes over the tree:
//
//  1. Summarize walks the tree once and produces a Summary: the number of
//     eligible files and the set of top-level directory names they descend
//     from. No per-file state is retained, so memory is proportional to
//     the number of distinct top-level directories, not to the file count.
//  2. Flatten walks the tree a second time, resolves a collision-free
//     destination name for each file, and renames it into the root.
//
// Cleanup then removes exactly the top-level directories recorded by the
// first pass. It must not re-scan the tree: by the time it runs, the tree
// has already changed shape.
//
// Eligibility rules:
//
//   - Files sitting directly in the root are never moved, regardless of
//     any depth bound.
//   - With a depth bound D, a file is eligible only if the directory level
//     at which it was discovered is at most D (the root is level 0).
//   - Include/exclude patterns match as case-insensitive prefixes of
//     top-level directory names. An ineligible top-level directory is
//     pruned whole; nothing beneath it is ever visited.
//
// Naming collisions in the root are resolved by inserting a numeric
// suffix before the file extension (test.txt, test_1.txt, test_2.txt, ...).
//
// The package performs no terminal output of its own; progress and error
// reporting go through the Logger interface supplied by the caller.
package flatten
