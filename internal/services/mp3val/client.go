package mp3val

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

var commandContext = exec.CommandContext

// ErrCannotSync indicates mp3val found no MPEG frame to synchronize to; the
// file is corrupted beyond a container rewrite.
var ErrCannotSync = errors.New("cannot sync to MPEG frame")

// ScanResult captures one mp3val analysis run.
type ScanResult struct {
	Stdout string
	Stderr string
}

// Client wraps the mp3val validator binary.
type Client struct {
	binary string
}

// Option configures the client.
type Option func(*Client)

// WithBinary overrides the default binary name.
func WithBinary(binary string) Option {
	return func(c *Client) {
		if strings.TrimSpace(binary) != "" {
			c.binary = binary
		}
	}
}

// New constructs an mp3val client using defaults.
func New(opts ...Option) *Client {
	client := &Client{binary: "mp3val"}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Scan analyzes path in suppress-info mode (-si). Captured output is
// returned in all cases; err is non-nil when the binary is missing or the
// validator exits non-zero. Per-line diagnostics land on stdout even on a
// zero exit.
func (c *Client) Scan(ctx context.Context, path string) (ScanResult, error) {
	if strings.TrimSpace(path) == "" {
		return ScanResult{}, errors.New("path required")
	}

	cmd := commandContext(ctx, c.binary, "-si", path)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	result := ScanResult{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		return result, fmt.Errorf("mp3val scan: %w", err)
	}
	return result, nil
}

// Rebuild re-serializes path's container in place (-f -nb: fix, no .bak
// copy). A stream mp3val cannot synchronize to is reported as ErrCannotSync
// so callers can phrase the failure precisely.
func (c *Client) Rebuild(ctx context.Context, path string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("path required")
	}

	cmd := commandContext(ctx, c.binary, "-f", "-nb", path)
	output := &bytes.Buffer{}
	cmd.Stdout = output
	cmd.Stderr = output

	err := cmd.Run()
	text := output.String()
	if noSync(text) {
		return fmt.Errorf("mp3val rebuild: %w", ErrCannotSync)
	}
	if err != nil {
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			return fmt.Errorf("mp3val rebuild: %w: %s", err, trimmed)
		}
		return fmt.Errorf("mp3val rebuild: %w", err)
	}
	return nil
}

func noSync(output string) bool {
	return strings.Contains(output, "No supported MPEG frames") ||
		strings.Contains(output, "Unable to sync")
}
