// Package shell runs external commands (git, package managers) and reports
// success or failure. It never interprets a shell string: every command is a
// binary name plus an argument vector.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// ErrNotFound indicates the command's binary is not on PATH.
var ErrNotFound = errors.New("command not found")

// Command is one external invocation.
type Command struct {
	Dir  string
	Name string
	Args []string
	Env  []string // added to the inherited environment
}

// String renders the command line for logs and messages.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Result captures a finished command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner executes commands. Implementations must be safe to call
// sequentially from one goroutine; no concurrent use is required.
type Runner interface {
	Run(ctx context.Context, cmd Command) (Result, error)
}

// Compile-time interface compliance check.
var _ Runner = (*ExecRunner)(nil)

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	stdout io.Writer
	stderr io.Writer
	logger *zap.Logger
}

// Option configures an ExecRunner.
type Option func(*ExecRunner)

// WithOutput streams command output to the given writers in addition to
// capturing it. Used for verbose runs.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(r *ExecRunner) {
		r.stdout = stdout
		r.stderr = stderr
	}
}

// WithLogger sets the runner's logger. A nil logger discards output.
func WithLogger(l *zap.Logger) Option {
	return func(r *ExecRunner) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewExecRunner creates an ExecRunner.
func NewExecRunner(opts ...Option) *ExecRunner {
	r := &ExecRunner{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes cmd and waits for it. A non-zero exit is an error; the
// returned Result still carries the captured output and exit code.
func (r *ExecRunner) Run(ctx context.Context, c Command) (Result, error) {
	path, err := exec.LookPath(c.Name)
	if err != nil {
		return Result{ExitCode: -1}, fmt.Errorf("%w: %s", ErrNotFound, c.Name)
	}

	cmd := exec.CommandContext(ctx, path, c.Args...)
	cmd.Dir = c.Dir
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = tee(&stdout, r.stdout)
	cmd.Stderr = tee(&stderr, r.stderr)

	r.logger.Debug("running command", zap.Stringer("cmd", c), zap.String("dir", c.Dir))
	runErr := cmd.Run()

	res := Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: cmd.ProcessState.ExitCode(),
	}
	if runErr != nil {
		r.logger.Debug("command failed",
			zap.Stringer("cmd", c),
			zap.Int("exit", res.ExitCode),
			zap.Error(runErr))
		if msg := strings.TrimSpace(res.Stderr); msg != "" {
			return res, fmt.Errorf("%s: %s: %w", c, lastLine(msg), runErr)
		}
		return res, fmt.Errorf("%s: %w", c, runErr)
	}
	return res, nil
}

func tee(buf *bytes.Buffer, w io.Writer) io.Writer {
	if w == nil {
		return buf
	}
	return io.MultiWriter(buf, w)
}

// lastLine keeps error messages to one line; tools print the cause last.
func lastLine(s string) string {
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[i+1:])
	}
	return s
}
