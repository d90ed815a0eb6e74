package project

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/text/unicode/norm"

	"github.com/launchts/launchts/internal/tools"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func composeFor(t *testing.T, name string, opts Options) *Artifacts {
	t.Helper()
	a, err := newTestComposer(t).Compose(name, opts)
	require.NoError(t, err)
	return a
}

// listTree returns every regular file under root as a slash path.
func listTree(t *testing.T, root string) []string {
	t.Helper()
	matches, err := doublestar.Glob(os.DirFS(root), "**", doublestar.WithFilesOnly())
	require.NoError(t, err)
	sort.Strings(matches)
	return matches
}

func TestMaterialize_NoTools(t *testing.T) {
	target := filepath.Join(t.TempDir(), "demo")
	a := composeFor(t, "demo", Options{PackageManager: NPM})

	require.NoError(t, NewMaterializer(nil).Materialize(context.Background(), target, a))

	assert.Equal(t, []string{"README.md", "package.json", "src/index.ts", "tsconfig.json"}, listTree(t, target))

	pkg, err := os.ReadFile(filepath.Join(target, "package.json"))
	require.NoError(t, err)
	want, err := a.Manifest.Encode()
	require.NoError(t, err)
	assert.Equal(t, string(want), string(pkg))

	readme, err := os.ReadFile(filepath.Join(target, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, a.Readme, string(readme))
}

func TestMaterialize_AllTools(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "full")
	a := composeFor(t, "full", Resolve(AllEnabled, Overrides{}))

	require.NoError(t, NewMaterializer(nil).Materialize(context.Background(), target, a))

	assert.Equal(t, []string{
		".husky/pre-commit",
		".prettierrc",
		"README.md",
		"eslint.config.js",
		"package.json",
		"src/index.ts",
		"tsconfig.json",
	}, listTree(t, target))

	hooks, err := doublestar.Glob(os.DirFS(target), ".husky/*")
	require.NoError(t, err)
	assert.Len(t, hooks, 1)

	if runtime.GOOS != "windows" {
		info, err := os.Stat(filepath.Join(target, ".husky", "pre-commit"))
		require.NoError(t, err)
		assert.Equal(t, fs.FileMode(0o755), info.Mode().Perm())

		info, err = os.Stat(filepath.Join(target, ".prettierrc"))
		require.NoError(t, err)
		assert.Zero(t, info.Mode().Perm()&0o111, "config files are not executable")
	}
}

func TestMaterialize_ExistingTargetWritesNothing(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, target string)
	}{
		{"empty directory", func(t *testing.T, target string) {
			require.NoError(t, os.Mkdir(target, 0o755))
		}},
		{"populated directory", func(t *testing.T, target string) {
			require.NoError(t, os.Mkdir(target, 0o755))
			require.NoError(t, os.WriteFile(filepath.Join(target, "keep.txt"), []byte("mine"), 0o644))
		}},
		{"regular file", func(t *testing.T, target string) {
			require.NoError(t, os.WriteFile(target, []byte("x"), 0o644))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := filepath.Join(t.TempDir(), "demo")
			tt.setup(t, target)
			before := snapshot(t, target)

			err := NewMaterializer(nil).Materialize(context.Background(), target,
				composeFor(t, "demo", Resolve(AllEnabled, Overrides{})))

			require.ErrorIs(t, err, ErrTargetExists)
			assert.Equal(t, before, snapshot(t, target), "no writes may happen")
		})
	}
}

// snapshot records the paths and sizes under root, or root itself if it is a file.
func snapshot(t *testing.T, root string) map[string]int64 {
	t.Helper()
	out := map[string]int64{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		out[path] = info.Size()
		return nil
	})
	require.NoError(t, err)
	return out
}

func TestMaterialize_RejectsEscapingPaths(t *testing.T) {
	for _, bad := range []string{"../evil.txt", "a/../../evil.txt", "/etc/evil", ".", ""} {
		t.Run(bad, func(t *testing.T) {
			parent := t.TempDir()
			target := filepath.Join(parent, "demo")
			a := composeFor(t, "demo", Options{PackageManager: NPM})
			a.Files = append(a.Files, tools.File{Path: bad, Content: []byte("x")})

			err := NewMaterializer(nil).Materialize(context.Background(), target, a)

			require.ErrorIs(t, err, ErrPathTraversal)
			_, statErr := os.Stat(target)
			assert.True(t, errors.Is(statErr, fs.ErrNotExist), "target must not be created")
		})
	}
}

func TestMaterialize_CancelledContext(t *testing.T) {
	target := filepath.Join(t.TempDir(), "demo")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewMaterializer(nil).Materialize(ctx, target, composeFor(t, "demo", Options{PackageManager: NPM}))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMaterialize_NilArtifacts(t *testing.T) {
	target := filepath.Join(t.TempDir(), "demo")
	assert.Error(t, NewMaterializer(nil).Materialize(context.Background(), target, nil))
	_, err := os.Stat(target)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestValidateRelPath(t *testing.T) {
	root := t.TempDir()
	for _, ok := range []string{"a.txt", ".husky/pre-commit", "src/index.ts", "a/../b.txt"} {
		assert.NoErrorf(t, validateRelPath(root, ok), "path %q", ok)
	}
	for _, bad := range []string{"..", "../x", "x/../../y", "/abs"} {
		assert.ErrorIsf(t, validateRelPath(root, bad), ErrPathTraversal, "path %q", bad)
	}
}

func TestValidateRelPath_DecomposedRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "cafe\u0301")
	require.NotEqual(t, root, norm.NFC.String(root), "root should be decomposed")

	assert.NoError(t, validateRelPath(root, "src/index.ts"))
	assert.NoError(t, validateRelPath(root, "résumé.md"))
	assert.NoError(t, validateRelPath(root, "cafe\u0301/index.ts"))
	assert.ErrorIs(t, validateRelPath(root, "../café-other/x"), ErrPathTraversal)
}
