package config

import (
	"github.com/launchts/launchts/internal/core/project"
	"github.com/launchts/launchts/internal/git"
)

// Default values.
const (
	DefaultInstallRetries = 1
	MaxInstallRetries     = 5
)

// NewDefaultConfig returns a Config with every field at its default.
func NewDefaultConfig() *Config {
	return &Config{
		FallbackVersion: project.DefaultFallbackVersion,
		InstallRetries:  DefaultInstallRetries,
		CommitMessage:   git.DefaultCommitMessage,
		Versions:        map[string]string{},
		Defaults:        project.SensibleDefaults,
	}
}
