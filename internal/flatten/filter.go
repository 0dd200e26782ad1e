package flatten

import "strings"

// TopLevelEligible reports whether a top-level directory participates in
// the flatten. Patterns match as case-insensitive prefixes of the
// directory name: include={"doc"} matches "docs" and "Documentation" but
// not "mydocs". With an include set, at least one pattern must match;
// with an exclude set, none may match; with neither, every directory is
// eligible. The caller guarantees include and exclude are never both
// present.
func TopLevelEligible(name string, include, exclude []string) bool {
	if len(include) > 0 {
		return hasAnyPrefix(name, include)
	}
	if len(exclude) > 0 {
		return !hasAnyPrefix(name, exclude)
	}
	return true
}

func hasAnyPrefix(name string, patterns []string) bool {
	lower := strings.ToLower(name)
	for _, pattern := range patterns {
		if strings.HasPrefix(lower, strings.ToLower(pattern)) {
			return true
		}
	}
	return false
}
