package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// stdinConfirmer prints the prompt and reads a single yes/no line. EOF
// counts as a decline.
type stdinConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

func newStdinConfirmer(in io.Reader, out io.Writer) *stdinConfirmer {
	return &stdinConfirmer{in: bufio.NewReader(in), out: out}
}

func (c *stdinConfirmer) Confirm(message string) (bool, error) {
	fmt.Fprintf(c.out, "%s [y/N]: ", message)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		if err == io.EOF {
			return false, nil
		}
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
