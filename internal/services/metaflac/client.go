package metaflac

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

var commandContext = exec.CommandContext

// Client wraps the metaflac metadata editor binary.
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

// New constructs a metaflac client using defaults.
func New(opts ...Option) *Client {
	client := &Client{binary: "metaflac"}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// StripBlocks removes all PADDING and PICTURE metadata blocks from path
// without leaving padding in their place.
func (c *Client) StripBlocks(ctx context.Context, path string) error {
	return c.run(ctx, "strip metadata blocks", "--dont-use-padding", "--remove", "--block-type=PADDING,PICTURE", path)
}

// AddPadding appends a fresh padding block of the given size to path.
func (c *Client) AddPadding(ctx context.Context, path string, size int) error {
	if size <= 0 {
		return errors.New("padding size must be positive")
	}
	return c.run(ctx, "add padding", fmt.Sprintf("--add-padding=%d", size), path)
}

func (c *Client) run(ctx context.Context, action string, args ...string) error {
	if len(args) == 0 || strings.TrimSpace(args[len(args)-1]) == "" {
		return errors.New("path required")
	}

	cmd := commandContext(ctx, c.binary, args...)
	output := &bytes.Buffer{}
	cmd.Stdout = output
	cmd.Stderr = output

	if err := cmd.Run(); err != nil {
		if text := strings.TrimSpace(output.String()); text != "" {
			return fmt.Errorf("metaflac %s: %w: %s", action, err, text)
		}
		return fmt.Errorf("metaflac %s: %w", action, err)
	}
	return nil
}
