package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireSh(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestExecRunner_Success(t *testing.T) {
	requireSh(t)

	res, err := NewExecRunner().Run(context.Background(), Command{
		Name: "sh",
		Args: []string{"-c", "printf hello"},
	})
	require.NoError(t, err)
	assert.Equal(t, "hello", res.Stdout)
	assert.Equal(t, 0, res.ExitCode)
}

func TestExecRunner_WorkingDirAndEnv(t *testing.T) {
	requireSh(t)

	dir := t.TempDir()
	res, err := NewExecRunner().Run(context.Background(), Command{
		Dir:  dir,
		Name: "sh",
		Args: []string{"-c", `printf "%s" "$LAUNCHTS_TEST_VALUE" > marker && ls`},
		Env:  []string{"LAUNCHTS_TEST_VALUE=42"},
	})
	require.NoError(t, err)
	assert.Contains(t, res.Stdout, "marker")
}

func TestExecRunner_NonZeroExit(t *testing.T) {
	requireSh(t)

	res, err := NewExecRunner().Run(context.Background(), Command{
		Name: "sh",
		Args: []string{"-c", `printf '%s\n' "$EARLY" "$LAST" >&2; exit 3`},
		Env:  []string{"EARLY=first", "LAST=boom"},
	})
	require.Error(t, err)
	assert.Equal(t, 3, res.ExitCode)
	assert.Contains(t, res.Stderr, "first")
	assert.Contains(t, err.Error(), "boom")
	assert.NotContains(t, err.Error(), "first")

	var exitErr *exec.ExitError
	assert.True(t, errors.As(err, &exitErr))
}

func TestExecRunner_MissingBinary(t *testing.T) {
	_, err := NewExecRunner().Run(context.Background(), Command{Name: "launchts-no-such-binary"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExecRunner_StreamsOutput(t *testing.T) {
	requireSh(t)

	var out, errOut bytes.Buffer
	r := NewExecRunner(WithOutput(&out, &errOut), WithLogger(nil))
	res, err := r.Run(context.Background(), Command{
		Name: "sh",
		Args: []string{"-c", "echo out; echo err >&2"},
	})
	require.NoError(t, err)
	assert.Equal(t, "out\n", out.String())
	assert.Equal(t, "err\n", errOut.String())
	assert.Equal(t, "out\n", res.Stdout, "output is captured as well as streamed")
}

func TestExecRunner_ContextCancelled(t *testing.T) {
	requireSh(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewExecRunner().Run(ctx, Command{Name: "sh", Args: []string{"-c", "sleep 5"}})
	assert.Error(t, err)
}

func TestCommand_String(t *testing.T) {
	assert.Equal(t, "git", Command{Name: "git"}.String())
	assert.Equal(t, "npm install", Command{Name: "npm", Args: []string{"install"}}.String())
}
