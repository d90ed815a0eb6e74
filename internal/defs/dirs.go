// Package defs holds file names, directory names and permission bits shared
// by the scaffolding packages.
package defs

import "io/fs"

// Directory names inside a generated project.
const (
	SrcDir   = "src"
	DistDir  = "dist"
	HuskyDir = ".husky"
	GitDir   = ".git"

	// NodeModulesDir is the dependency cache directory.
	NodeModulesDir = "node_modules"
)

// Permission bits for generated content.
const (
	DirPerm  fs.FileMode = 0o755
	FilePerm fs.FileMode = 0o644
	ExecPerm fs.FileMode = 0o755
)
