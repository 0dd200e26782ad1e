package flatten

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ResolveDestination returns the first non-existing path in root for the
// given base name. Collisions are resolved by inserting a numeric suffix
// before the extension, probing upward from 1 (test.txt, test_1.txt,
// test_2.txt, ...). Existence is re-checked on every probe so that files
// relocated earlier in the same pass are accounted for.
func ResolveDestination(root, baseName string) string {
	candidate := filepath.Join(root, baseName)
	if !pathExists(candidate) {
		return candidate
	}

	stem, ext := splitBaseName(baseName)
	for counter := 1; ; counter++ {
		name := fmt.Sprintf("%s_%d", stem, counter)
		if ext != "" {
			name = fmt.Sprintf("%s_%d.%s", stem, counter, ext)
		}
		candidate = filepath.Join(root, name)
		if !pathExists(candidate) {
			return candidate
		}
	}
}

// splitBaseName separates a file name into stem and extension. The
// extension is the text after the final dot. A dot in the leading
// position does not start an extension, so dotfiles like .gitignore are
// all stem and suffix as .gitignore_1.
func splitBaseName(baseName string) (stem, ext string) {
	idx := strings.LastIndex(baseName, ".")
	if idx <= 0 {
		return baseName, ""
	}
	return baseName[:idx], baseName[idx+1:]
}

func pathExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
