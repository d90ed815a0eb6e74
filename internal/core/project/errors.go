// Package project implements the project-materialization engine behind
// "launchts": name validation, option resolution, artifact composition,
// filesystem materialization and best-effort post-provisioning.
package project

import "errors"

// Sentinel errors for the project package.
var (
	// ErrInvalidName indicates a project name outside the naming policy.
	ErrInvalidName = errors.New("invalid project name")

	// ErrNameRequired indicates no project name was supplied in a non-interactive run.
	ErrNameRequired = errors.New("project name is required")

	// ErrInvalidPackageManager indicates an unsupported package manager value.
	ErrInvalidPackageManager = errors.New("invalid package manager")

	// ErrTargetExists indicates the target directory is already present.
	ErrTargetExists = errors.New("target folder already exists")

	// ErrPathTraversal indicates a generated file path escapes the target directory.
	ErrPathTraversal = errors.New("path escapes target directory")
)
