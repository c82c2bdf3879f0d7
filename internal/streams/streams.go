// Package streams selects line-oriented inputs and outputs, treating "-"
// (or an empty name) as the standard streams.
package streams

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Std is the conventional name selecting a standard stream.
const Std = "-"

// Input opens the named input: "" or "-" selects standard input (whose
// Close is a no-op), anything else is opened as a file. The second return
// is a human-readable description for log messages.
func Input(name string) (io.ReadCloser, string, error) {
	if name == "" || name == Std {
		return io.NopCloser(os.Stdin), "standard input", nil
	}
	f, err := os.Open(name) // #nosec G304 -- name from flags; operator-controlled
	if err != nil {
		return nil, "", err
	}
	return f, fmt.Sprintf("%q", name), nil
}

// Output opens the named output: "" or "-" selects standard output (whose
// Close is a no-op), anything else is created, truncating an existing
// file. The second return is a human-readable description for log
// messages.
func Output(name string) (io.WriteCloser, string, error) {
	if name == "" || name == Std {
		return nopWriteCloser{os.Stdout}, "standard output", nil
	}
	f, err := os.Create(name) // #nosec G304 -- name from flags; operator-controlled
	if err != nil {
		return nil, "", err
	}
	return f, fmt.Sprintf("%q", name), nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// TrimEOL returns line without one trailing line ending ("\n" or "\r\n").
// A "\r" not followed by "\n" is not a line ending and stays in place.
func TrimEOL(line string) string {
	trimmed, ok := strings.CutSuffix(line, "\n")
	if !ok {
		return line
	}
	return strings.TrimSuffix(trimmed, "\r")
}

// WriteLines writes each line followed by a newline.
func WriteLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
