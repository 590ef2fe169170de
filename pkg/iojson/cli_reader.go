package iojson

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// ErrNoInput is returned when no file is given and stdin is a terminal.
var ErrNoInput = errors.New("no input provided (stdin is a terminal); use --file or pipe input")

// isTerminal is swapped out by tests.
var isTerminal = term.IsTerminal

// TextReader reads a command's text input from --file or from piped stdin.
type TextReader struct {
	file  string
	stdin io.Reader
}

// Flag returns the --file flag bound to the reader.
func (r *TextReader) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "file",
		Aliases:     []string{"f"},
		Usage:       "path to input file (reads from stdin if not provided)",
		Destination: &r.file,
	}
}

// Read returns the whole input.
func (r *TextReader) Read() (string, error) {
	if r.file != "" {
		data, err := os.ReadFile(r.file)
		if err != nil {
			return "", fmt.Errorf("read file: %w", err)
		}
		return string(data), nil
	}

	stdin := r.stdin
	if stdin == nil {
		if isTerminal(int(os.Stdin.Fd())) {
			return "", ErrNoInput
		}
		stdin = os.Stdin
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
