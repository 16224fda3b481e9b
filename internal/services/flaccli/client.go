package flaccli

import (
	"bytes"
	"context"
	"crypto/md5"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

var commandContext = exec.CommandContext

// decodeChunkSize bounds how much decoded PCM is held in memory while
// hashing; the constant is not correctness-relevant.
const decodeChunkSize = 512 * 1024

// Client wraps the flac command-line codec.
type Client struct {
	binary           string
	compressionLevel int
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

// WithCompressionLevel sets the level passed to Encode (0-8).
func WithCompressionLevel(level int) Option {
	return func(c *Client) {
		if level >= 0 && level <= 8 {
			c.compressionLevel = level
		}
	}
}

// New constructs a flac client using defaults.
func New(opts ...Option) *Client {
	client := &Client{binary: "flac", compressionLevel: 8}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Test runs the decode-only bitstream test (flac -wt) on path. The captured
// stderr text is returned in all cases; err is non-nil when the binary is
// missing or exits non-zero. Warnings land on stderr even on a zero exit,
// so callers must inspect the text regardless of err.
func (c *Client) Test(ctx context.Context, path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errors.New("path required")
	}

	cmd := commandContext(ctx, c.binary, "-wt", path)
	stderr := &bytes.Buffer{}
	cmd.Stdout = io.Discard
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		return stderr.String(), fmt.Errorf("flac test: %w", err)
	}
	return stderr.String(), nil
}

// DecodeMD5 decodes path to raw signed little-endian PCM and returns the
// MD5 of the sample stream, hashed incrementally in bounded chunks so large
// files never buffer whole in memory.
func (c *Client) DecodeMD5(ctx context.Context, path string) ([16]byte, error) {
	var sum [16]byte
	if strings.TrimSpace(path) == "" {
		return sum, errors.New("path required")
	}

	args := []string{"-d", "-s", "--stdout", "--force-raw-format", "--endian=little", "--sign=signed", path}
	cmd := commandContext(ctx, c.binary, args...)
	cmd.Stderr = io.Discard

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return sum, fmt.Errorf("stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return sum, fmt.Errorf("start flac decode: %w", err)
	}

	hasher := md5.New()
	if _, err := io.CopyBuffer(hasher, stdout, make([]byte, decodeChunkSize)); err != nil {
		_ = cmd.Wait()
		return sum, fmt.Errorf("read decoded stream: %w", err)
	}
	if err := cmd.Wait(); err != nil {
		return sum, fmt.Errorf("flac decode: %w", err)
	}

	copy(sum[:], hasher.Sum(nil))
	return sum, nil
}

// Encode re-encodes inputPath into outputPath at the configured compression
// level. The combined tool output is returned for diagnostics; err is
// non-nil on a missing binary or non-zero exit.
func (c *Client) Encode(ctx context.Context, inputPath, outputPath string) (string, error) {
	if strings.TrimSpace(inputPath) == "" {
		return "", errors.New("input path required")
	}
	if strings.TrimSpace(outputPath) == "" {
		return "", errors.New("output path required")
	}

	args := []string{fmt.Sprintf("-%d", c.compressionLevel), inputPath, "-o", outputPath}
	cmd := commandContext(ctx, c.binary, args...)
	output := &bytes.Buffer{}
	cmd.Stdout = output
	cmd.Stderr = output

	if err := cmd.Run(); err != nil {
		return output.String(), fmt.Errorf("flac encode: %w", err)
	}
	return output.String(), nil
}
