package config

import (
	"github.com/launchts/launchts/internal/core/project"
)

// Config is the effective launchts configuration.
type Config struct {
	// PackageManager overrides detection when set. Unknown values are
	// coerced to npm by the caller, with a warning.
	PackageManager string `mapstructure:"package_manager" yaml:"package_manager"`

	// FallbackVersion is written for dependencies no version source knows.
	FallbackVersion string `mapstructure:"fallback_version" yaml:"fallback_version"`

	// ReferenceManifest is a package.json whose dependency tables take
	// precedence over the built-in versions.
	ReferenceManifest string `mapstructure:"reference_manifest" yaml:"reference_manifest"`

	InstallRetries int    `mapstructure:"install_retries" yaml:"install_retries"`
	CommitMessage  string `mapstructure:"commit_message" yaml:"commit_message"`

	// Versions pins individual dependencies above every other source.
	Versions map[string]string `mapstructure:"versions" yaml:"versions,omitempty"`

	// Defaults is the preset used by --default and non-interactive runs.
	Defaults project.Preset `mapstructure:"defaults" yaml:"defaults"`

	// Source is the config file that was read, empty for defaults only.
	Source string `mapstructure:"-" yaml:"-"`
}
