// Package git drives the system git binary for the initial repository setup
// of a generated project.
package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/launchts/launchts/internal/shell"
)

// Sentinel errors for git operations.
var (
	// ErrSystemGitNotFound indicates git is not installed or not on PATH.
	ErrSystemGitNotFound = errors.New("system git not found")

	// ErrCommitFailed indicates git refused to create a commit.
	ErrCommitFailed = errors.New("git commit failed")
)

// baseEnv keeps git from prompting and pins message locale.
var baseEnv = []string{"GIT_TERMINAL_PROMPT=0", "LC_ALL=C"}

// Client runs git commands through a shell.Runner.
type Client struct {
	runner shell.Runner
	env    []string
	logger *zap.Logger
}

// NewClient creates a Client. A nil logger discards output.
func NewClient(runner shell.Runner, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{runner: runner, env: baseEnv, logger: logger}
}

// WithEnv returns a copy of c that adds env to every command.
func (c *Client) WithEnv(env ...string) *Client {
	cp := *c
	cp.env = append(append([]string(nil), c.env...), env...)
	return &cp
}

func (c *Client) run(ctx context.Context, dir string, args ...string) (string, error) {
	res, err := c.runner.Run(ctx, shell.Command{Dir: dir, Name: "git", Args: args, Env: c.env})
	if err != nil {
		if errors.Is(err, shell.ErrNotFound) {
			return "", fmt.Errorf("git %s: %w", args[0], ErrSystemGitNotFound)
		}
		return "", err
	}
	return strings.TrimRight(res.Stdout, "\n\r"), nil
}

// Available reports whether a working git binary is on PATH. It never
// reports an error.
func (c *Client) Available(ctx context.Context) bool {
	out, err := c.run(ctx, "", "--version")
	if err != nil {
		c.logger.Debug("git unavailable", zap.Error(err))
		return false
	}
	c.logger.Debug("git available", zap.String("version", out))
	return true
}

// InsideWorkTree reports whether dir is inside an existing work tree.
// Any failure is treated as "not inside".
func (c *Client) InsideWorkTree(ctx context.Context, dir string) bool {
	out, err := c.run(ctx, dir, "rev-parse", "--is-inside-work-tree")
	return err == nil && out == "true"
}

// Init creates a repository in dir.
func (c *Client) Init(ctx context.Context, dir string) error {
	if _, err := c.run(ctx, dir, "init"); err != nil {
		return fmt.Errorf("git init: %w", err)
	}
	c.logger.Debug("repository initialized", zap.String("dir", dir))
	return nil
}

// AddAll stages every file in dir.
func (c *Client) AddAll(ctx context.Context, dir string) error {
	if _, err := c.run(ctx, dir, "add", "-A"); err != nil {
		return fmt.Errorf("git add: %w", err)
	}
	return nil
}

// Commit records the staged files with message.
func (c *Client) Commit(ctx context.Context, dir, message string) error {
	if _, err := c.run(ctx, dir, "commit", "-m", message); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitFailed, err)
	}
	c.logger.Debug("initial commit created", zap.String("message", message))
	return nil
}

// head returns the commit hash of HEAD.
func (c *Client) head(ctx context.Context, dir string) (string, error) {
	return c.run(ctx, dir, "rev-parse", "HEAD")
}
