package project

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"

	"github.com/launchts/launchts/internal/defs"
	"github.com/launchts/launchts/internal/template"
)

// Materializer writes composed artifacts under a new target directory.
type Materializer struct {
	logger *zap.Logger
}

// NewMaterializer creates a Materializer. A nil logger discards output.
func NewMaterializer(logger *zap.Logger) *Materializer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Materializer{logger: logger}
}

// pendingFile is one write scheduled by Materialize.
type pendingFile struct {
	rel  string
	data []byte
	mode fs.FileMode
}

// Materialize creates targetDir and writes every artifact into it. It fails
// with ErrTargetExists, before writing anything, if targetDir is present.
// File writes run concurrently; the first failure cancels the rest.
func (m *Materializer) Materialize(ctx context.Context, targetDir string, a *Artifacts) error {
	if _, err := os.Lstat(targetDir); err == nil {
		return fmt.Errorf("%w: %s", ErrTargetExists, targetDir)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("check target directory: %w", err)
	}

	files, err := m.plan(a)
	if err != nil {
		return err
	}
	for _, f := range files {
		if err := validateRelPath(targetDir, f.rel); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(targetDir), defs.DirPerm); err != nil {
		return fmt.Errorf("create parent directory: %w", err)
	}
	if err := os.Mkdir(targetDir, defs.DirPerm); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrTargetExists, targetDir)
		}
		return fmt.Errorf("create target directory: %w", err)
	}

	// Directories are created up front so the writes below never race on them.
	dirs := []string{defs.SrcDir}
	for _, f := range files {
		if d := filepath.Dir(filepath.FromSlash(f.rel)); d != "." && !slices.Contains(dirs, d) {
			dirs = append(dirs, d)
		}
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(targetDir, d), defs.DirPerm); err != nil {
			return fmt.Errorf("create directory %s: %w", d, err)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, f := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return writeFile(filepath.Join(targetDir, filepath.FromSlash(f.rel)), f.data, f.mode)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	m.logger.Debug("project materialized",
		zap.String("dir", targetDir),
		zap.Int("files", len(files)))
	return nil
}

// plan lists every file of the project in a stable order.
func (m *Materializer) plan(a *Artifacts) ([]pendingFile, error) {
	if a == nil || a.Manifest == nil {
		return nil, errors.New("materialize: no artifacts")
	}
	pkg, err := a.Manifest.Encode()
	if err != nil {
		return nil, err
	}
	files := []pendingFile{
		{rel: template.SourceStub, data: a.SourceStub},
		{rel: defs.TSConfigJSON, data: a.BuildConfig},
		{rel: defs.PackageJSON, data: pkg},
		{rel: defs.ReadmeMD, data: []byte(a.Readme)},
	}
	for _, f := range a.Files {
		files = append(files, pendingFile{rel: f.Path, data: f.Content, mode: f.Mode})
	}
	return files, nil
}

func writeFile(path string, data []byte, mode fs.FileMode) error {
	if mode == 0 {
		mode = defs.FilePerm
	}
	if err := os.WriteFile(path, data, mode); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	// WriteFile is subject to the umask; hook files must stay executable.
	if mode != defs.FilePerm {
		if err := os.Chmod(path, mode); err != nil {
			return fmt.Errorf("chmod %s: %w", filepath.Base(path), err)
		}
	}
	return nil
}

// validateRelPath rejects file paths that would land outside root.
func validateRelPath(root, rel string) error {
	cleaned := filepath.Clean(filepath.FromSlash(rel))

	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, rel)
	}
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: %q", ErrPathTraversal, rel)
	}

	// Compare in NFC: macOS may hand back the base directory in NFD.
	nfcRoot := norm.NFC.String(filepath.Clean(root))
	abs := norm.NFC.String(filepath.Join(root, cleaned))
	if !strings.HasPrefix(abs, nfcRoot+string(filepath.Separator)) {
		return fmt.Errorf("%w: %q escapes %s", ErrPathTraversal, rel, root)
	}
	return nil
}
