package config

import (
	"fmt"
	"maps"
	"regexp"
	"slices"

	"github.com/launchts/launchts/internal/git"
)

// Dynamic token patterns that must not appear in configuration values.
// They indicate a template variable that was never expanded.
var dynamicTokenPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\{[^}]+\}`),        // ${VAR}
	regexp.MustCompile(`\{\{[^}]+\}\}`),      // {{VAR}}
	regexp.MustCompile(`\$[A-Z_][A-Z0-9_]*`), // $VAR
}

// Validate checks the configuration for correctness. The package manager is
// deliberately not validated here; callers coerce it with a warning.
func Validate(cfg *Config) error {
	var errs ValidationErrors

	if cfg.InstallRetries < 0 || cfg.InstallRetries > MaxInstallRetries {
		errs = append(errs, FieldError{
			Key:     "install_retries",
			Problem: fmt.Sprintf("must be between 0 and %d", MaxInstallRetries),
			Value:   cfg.InstallRetries,
			Err:     ErrInvalidConfig,
		})
	}

	if cfg.FallbackVersion == "" {
		errs = append(errs, FieldError{
			Key:     "fallback_version",
			Problem: "must not be empty",
			Err:     ErrInvalidConfig,
		})
	}

	if err := git.ValidateCommitMessage(cfg.CommitMessage); err != nil {
		errs = append(errs, FieldError{
			Key:     "commit_message",
			Problem: err.Error(),
			Err:     ErrInvalidConfig,
		})
	}

	for _, dep := range slices.Sorted(maps.Keys(cfg.Versions)) {
		if cfg.Versions[dep] == "" {
			errs = append(errs, FieldError{
				Key:     "versions." + dep,
				Problem: "version must not be empty",
				Err:     ErrInvalidConfig,
			})
		}
	}

	errs = append(errs, checkStringField("fallback_version", cfg.FallbackVersion)...)
	errs = append(errs, checkStringField("reference_manifest", cfg.ReferenceManifest)...)
	errs = append(errs, checkStringField("package_manager", cfg.PackageManager)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func checkStringField(key, value string) []FieldError {
	for _, pattern := range dynamicTokenPatterns {
		if match := pattern.FindString(value); match != "" {
			return []FieldError{{
				Key:     key,
				Problem: fmt.Sprintf("contains unexpanded token %s", match),
				Value:   value,
				Err:     ErrDynamicToken,
			}}
		}
	}
	return nil
}
