package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the flatten command with the given args and an
// injected confirmation reader, capturing stdout and stderr separately.
func executeCommand(t *testing.T, reader ConfirmReader, args ...string) (string, string, error) {
	t.Helper()

	rootCmd := newRootCommandWithReader(reader)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestRootCommandIncludeExcludeConflict(t *testing.T) {
	root := t.TempDir()

	_, _, err := executeCommand(t, &fakeReader{}, root, "-i", "a", "-e", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot use both include and exclude")
}

func TestRootCommandMissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	_, _, err := executeCommand(t, &fakeReader{}, missing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestRootCommandNotADirectory(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "plain.txt")
	writeFile(t, file, "x")

	_, _, err := executeCommand(t, &fakeReader{}, file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a directory")
}

func TestRootCommandEndToEnd(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "file0.txt"), "root level")
	writeFile(t, filepath.Join(root, "level1", "file1.txt"), "depth 1")
	writeFile(t, filepath.Join(root, "level1", "level2", "file2.txt"), "depth 2")

	out, errOut, err := executeCommand(t, &fakeReader{}, root, "-y")
	require.NoError(t, err)
	assert.Empty(t, errOut)

	assert.Contains(t, out, "Found 2 file(s) to move")
	assert.Contains(t, out, "- level1")
	assert.Contains(t, out, "Moved: ")
	assert.Contains(t, out, "Successfully moved 2 file(s)")

	assert.FileExists(t, filepath.Join(root, "file0.txt"))
	assert.FileExists(t, filepath.Join(root, "file1.txt"))
	assert.FileExists(t, filepath.Join(root, "file2.txt"))
	assert.NoDirExists(t, filepath.Join(root, "level1"))

	// The run lock is cleaned up with the run.
	assert.NoFileExists(t, filepath.Join(root, ".flatten.lock"))
}

func TestRootCommandQuiet(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "sub", "a.txt"), "a")

	out, _, err := executeCommand(t, &fakeReader{}, root, "-q")
	require.NoError(t, err)

	// Quiet suppresses all informational output and skips the prompt.
	assert.Empty(t, out)
	assert.FileExists(t, filepath.Join(root, "a.txt"))
	assert.NoDirExists(t, filepath.Join(root, "sub"))
}

func TestRootCommandNoEligibleFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "only-at-root.txt"), "x")

	out, _, err := executeCommand(t, &fakeReader{}, root)
	require.NoError(t, err)
	assert.Contains(t, out, "No files found in subdirectories to flatten.")
}

func TestRootCommandPromptCancel(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "sub", "a.txt"), "a")

	out, _, err := executeCommand(t, &fakeReader{input: "n\n"}, root)
	require.NoError(t, err)

	assert.Contains(t, out, "Proceed with flatten? (Y/n): ")
	assert.Contains(t, out, "Flatten cancelled.")

	// Nothing was mutated.
	assert.FileExists(t, filepath.Join(root, "sub", "a.txt"))
	assert.NoFileExists(t, filepath.Join(root, "a.txt"))
}

func TestRootCommandPromptAccept(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "sub", "a.txt"), "a")

	_, _, err := executeCommand(t, &fakeReader{input: "yes\n"}, root)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(root, "a.txt"))
	assert.NoDirExists(t, filepath.Join(root, "sub"))
}

func TestRootCommandDepthBound(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "level1", "file1.txt"), "shallow")
	writeFile(t, filepath.Join(root, "level1", "level2", "file2.txt"), "deep")

	out, errOut, err := executeCommand(t, &fakeReader{}, root, "-y", "-n", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "Found 1 file(s) to move")
	assert.FileExists(t, filepath.Join(root, "file1.txt"))

	// file2.txt was beyond the bound; the residual warning fires before
	// cleanup deletes it with its directory.
	assert.Contains(t, errOut, "still contain files")
	assert.Contains(t, errOut, "level1")
	assert.NoDirExists(t, filepath.Join(root, "level1"))
	assert.NoFileExists(t, filepath.Join(root, "file2.txt"))
}

func TestRootCommandDepthZero(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "level1", "file1.txt"), "x")

	out, _, err := executeCommand(t, &fakeReader{}, root, "-y", "-n", "0")
	require.NoError(t, err)

	assert.Contains(t, out, "No files found in subdirectories to flatten.")
	assert.FileExists(t, filepath.Join(root, "level1", "file1.txt"))
}

func TestRootCommandIncludeFilter(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "docs", "readme.txt"), "docs")
	writeFile(t, filepath.Join(root, "documentation", "guide.txt"), "documentation")
	writeFile(t, filepath.Join(root, "src", "main.go"), "src")

	_, _, err := executeCommand(t, &fakeReader{}, root, "-y", "-i", "doc")
	require.NoError(t, err)

	// "doc" prefix-matches docs and documentation, but not src.
	assert.FileExists(t, filepath.Join(root, "readme.txt"))
	assert.FileExists(t, filepath.Join(root, "guide.txt"))
	assert.NoDirExists(t, filepath.Join(root, "docs"))
	assert.NoDirExists(t, filepath.Join(root, "documentation"))
	assert.FileExists(t, filepath.Join(root, "src", "main.go"))
}

func TestRootCommandExcludeFilter(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "docs", "readme.txt"), "docs")
	writeFile(t, filepath.Join(root, "src", "main.go"), "src")

	_, _, err := executeCommand(t, &fakeReader{}, root, "-y", "-e", "doc")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(root, "main.go"))
	assert.NoDirExists(t, filepath.Join(root, "src"))
	assert.FileExists(t, filepath.Join(root, "docs", "readme.txt"))
}

func TestRootCommandConflictSuffixes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "test.txt"), "root")
	writeFile(t, filepath.Join(root, "subdir1", "test.txt"), "a")
	writeFile(t, filepath.Join(root, "subdir2", "test.txt"), "b")

	_, _, err := executeCommand(t, &fakeReader{}, root, "-y")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, "test.txt"))
	require.NoError(t, err)
	assert.Equal(t, "root", string(data))

	data, err = os.ReadFile(filepath.Join(root, "test_1.txt"))
	require.NoError(t, err)
	assert.Equal(t, "a", string(data))

	data, err = os.ReadFile(filepath.Join(root, "test_2.txt"))
	require.NoError(t, err)
	assert.Equal(t, "b", string(data))
}

func TestRootCommandRequiresDirectoryArg(t *testing.T) {
	rootCmd := newRootCommandWithReader(&fakeReader{})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{})

	err := rootCmd.Execute()
	assert.Error(t, err)
}
