package git

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchts/launchts/internal/shell"
)

// fakeRunner records commands and answers from a table keyed by first arg.
type fakeRunner struct {
	calls   []shell.Command
	outputs map[string]string
	errs    map[string]error
}

func (f *fakeRunner) Run(_ context.Context, c shell.Command) (shell.Result, error) {
	f.calls = append(f.calls, c)
	key := c.Args[0]
	if err, ok := f.errs[key]; ok {
		return shell.Result{ExitCode: 1}, err
	}
	return shell.Result{Stdout: f.outputs[key]}, nil
}

func TestClient_AvailableMissingBinary(t *testing.T) {
	r := &fakeRunner{errs: map[string]error{"--version": shell.ErrNotFound}}
	c := NewClient(r, nil)

	assert.False(t, c.Available(context.Background()))
	require.Len(t, r.calls, 1)
	assert.Equal(t, "git", r.calls[0].Name)
	assert.Contains(t, r.calls[0].Env, "GIT_TERMINAL_PROMPT=0")
}

func TestClient_InsideWorkTree(t *testing.T) {
	tests := []struct {
		name string
		out  string
		err  error
		want bool
	}{
		{"inside", "true\n", nil, true},
		{"bare", "false\n", nil, false},
		{"not a repo", "", errors.New("fatal: not a git repository"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &fakeRunner{outputs: map[string]string{"rev-parse": tt.out}}
			if tt.err != nil {
				r.errs = map[string]error{"rev-parse": tt.err}
			}
			assert.Equal(t, tt.want, NewClient(r, nil).InsideWorkTree(context.Background(), "/tmp/x"))
			assert.Equal(t, "/tmp/x", r.calls[0].Dir)
		})
	}
}

func TestClient_CommitWrapsFailure(t *testing.T) {
	r := &fakeRunner{errs: map[string]error{"commit": errors.New("Author identity unknown")}}
	err := NewClient(r, nil).Commit(context.Background(), "/tmp/x", DefaultCommitMessage)

	assert.ErrorIs(t, err, ErrCommitFailed)
	assert.Contains(t, err.Error(), "Author identity unknown")
	assert.Equal(t, []string{"commit", "-m", DefaultCommitMessage}, r.calls[0].Args)
}

func TestClient_NotFoundMapsToSentinel(t *testing.T) {
	r := &fakeRunner{errs: map[string]error{"init": shell.ErrNotFound}}
	err := NewClient(r, nil).Init(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, ErrSystemGitNotFound)
}

func TestClient_WithEnvDoesNotMutateOriginal(t *testing.T) {
	c := NewClient(&fakeRunner{}, nil)
	c2 := c.WithEnv("GIT_AUTHOR_NAME=test")

	assert.NotContains(t, c.env, "GIT_AUTHOR_NAME=test")
	assert.Contains(t, c2.env, "GIT_AUTHOR_NAME=test")
}

func TestClient_RealRepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	dir := t.TempDir()
	ctx := context.Background()
	c := NewClient(shell.NewExecRunner(), nil).WithEnv(
		"GIT_AUTHOR_NAME=launchts", "GIT_AUTHOR_EMAIL=launchts@example.com",
		"GIT_COMMITTER_NAME=launchts", "GIT_COMMITTER_EMAIL=launchts@example.com",
		"GIT_CONFIG_NOSYSTEM=1", "GIT_CONFIG_GLOBAL="+os.DevNull,
	)

	require.True(t, c.Available(ctx))
	require.False(t, c.InsideWorkTree(ctx, dir), "temp dir should not be in a repository")
	require.NoError(t, c.Init(ctx, dir))
	assert.True(t, c.InsideWorkTree(ctx, dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a\n"), 0o644))
	require.NoError(t, c.AddAll(ctx, dir))
	require.NoError(t, c.Commit(ctx, dir, DefaultCommitMessage))

	head, err := c.head(ctx, dir)
	require.NoError(t, err)
	assert.Len(t, head, 40)
}
