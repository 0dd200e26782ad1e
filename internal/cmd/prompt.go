package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ConfirmReader defines the interface for reading user input (for testing)
type ConfirmReader interface {
	ReadString(delim byte) (string, error)
}

// stdinReader wraps bufio.Reader over os.Stdin
type stdinReader struct {
	reader *bufio.Reader
}

func (s *stdinReader) ReadString(delim byte) (string, error) {
	return s.reader.ReadString(delim)
}

func newStdinReader() ConfirmReader {
	return &stdinReader{reader: bufio.NewReader(os.Stdin)}
}

// confirmFlatten asks the user to confirm the flatten. Only "y" or "yes"
// (case-insensitive) proceeds; anything else, including empty input or a
// closed stdin, cancels.
func confirmFlatten(reader ConfirmReader, out io.Writer) (bool, error) {
	fmt.Fprint(out, "Proceed with flatten? (Y/n): ")

	input, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}

	answer := strings.ToUpper(strings.TrimSpace(input))
	return answer == "Y" || answer == "YES", nil
}
