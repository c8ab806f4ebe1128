// Package source loads the lines a session searches over.
package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrNoInput is returned when no path is given and stdin is an interactive
// terminal, so there is nothing to read lines from.
var ErrNoInput = errors.New("no input: pass a file path or pipe lines on stdin")

// Line is one line of input. Number is its 1-based position in the source.
type Line struct {
	Number int
	Text   string
}

// Read splits r into lines. Line endings ("\n" or "\r\n") are dropped and
// invalid UTF-8 is replaced with U+FFFD.
func Read(r io.Reader) ([]Line, error) {
	br := bufio.NewReader(r)
	var lines []Line
	for {
		raw, err := br.ReadString('\n')
		if raw != "" {
			text := strings.TrimSuffix(raw, "\n")
			text = strings.TrimSuffix(text, "\r")
			lines = append(lines, Line{
				Number: len(lines) + 1,
				Text:   strings.ToValidUTF8(text, "�"),
			})
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read: %w", err)
		}
	}
}

// ReadFile reads the lines of the file at path.
func ReadFile(path string) ([]Line, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lines, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lines, nil
}

// Load reads lines from path, or from stdin when path is empty. Reading from
// stdin requires it to be piped; an interactive stdin yields ErrNoInput.
func Load(path string, stdin *os.File) ([]Line, error) {
	if path != "" {
		return ReadFile(path)
	}
	if stdin == nil || term.IsTerminal(int(stdin.Fd())) {
		return nil, ErrNoInput
	}
	lines, err := Read(stdin)
	if err != nil {
		return nil, fmt.Errorf("stdin: %w", err)
	}
	return lines, nil
}
