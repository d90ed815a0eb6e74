package project

import (
	"fmt"
	"path/filepath"
)

// TargetDir resolves the directory a project named name is created in,
// relative to baseDir. The name must already be validated.
func TargetDir(baseDir, name string) (string, error) {
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return "", fmt.Errorf("resolve base directory: %w", err)
	}
	return filepath.Join(abs, name), nil
}
