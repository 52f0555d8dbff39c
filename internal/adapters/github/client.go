package github

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"ghnotifs/internal/domain"
	"ghnotifs/internal/logging"
)

// Client talks to GitHub through the gh CLI, which owns authentication and
// pagination. It holds no mutable state and is safe to share across
// concurrent fetches.
type Client struct{}

// NewClient creates a new gh-backed client.
func NewClient() *Client {
	return &Client{}
}

// api runs `gh api <args>` and returns its stdout.
func (c *Client) api(ctx context.Context, args ...string) ([]byte, error) {
	if _, err := exec.LookPath("gh"); err != nil {
		return nil, &domain.TransportError{Op: "gh api", Err: fmt.Errorf("gh CLI not found: %w", err)}
	}

	cmd := exec.CommandContext(ctx, "gh", append([]string{"api"}, args...)...)

	output, err := cmd.Output()
	if err != nil {
		exitCode := 1
		stderr := ""
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
			stderr = strings.TrimSpace(string(exitErr.Stderr))
		}
		logging.Logger.Debug("gh api failed", "args", args, "exit_code", exitCode, "stderr", stderr)
		return nil, &domain.TransportError{
			Op:       "gh api " + strings.Join(args, " "),
			ExitCode: exitCode,
			Stderr:   stderr,
			Err:      err,
		}
	}

	logging.Logger.Debug("gh api succeeded", "args", args, "bytes", len(output))
	return output, nil
}

// apiPaginate runs `gh api --paginate <args>`. Consecutive pages arrive as
// concatenated JSON arrays and are joined into a single array here.
func (c *Client) apiPaginate(ctx context.Context, args ...string) ([]byte, error) {
	output, err := c.api(ctx, append([]string{"--paginate"}, args...)...)
	if err != nil {
		return nil, err
	}
	return joinPages(output), nil
}

func joinPages(data []byte) []byte {
	return bytes.ReplaceAll(data, []byte("]["), []byte(","))
}
