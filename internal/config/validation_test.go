package config

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantKey string
		wantErr error
	}{
		{"defaults", func(*Config) {}, "", nil},
		{"retries negative", func(c *Config) { c.InstallRetries = -1 }, "install_retries", ErrInvalidConfig},
		{"retries too high", func(c *Config) { c.InstallRetries = MaxInstallRetries + 1 }, "install_retries", ErrInvalidConfig},
		{"retries at max", func(c *Config) { c.InstallRetries = MaxInstallRetries }, "", nil},
		{"empty fallback", func(c *Config) { c.FallbackVersion = "" }, "fallback_version", ErrInvalidConfig},
		{"bad commit message", func(c *Config) { c.CommitMessage = "initial" }, "commit_message", ErrInvalidConfig},
		{"empty pinned version", func(c *Config) { c.Versions["eslint"] = "" }, "versions.eslint", ErrInvalidConfig},
		{"unexpanded token", func(c *Config) { c.ReferenceManifest = "${HOME}/package.json" }, "reference_manifest", ErrDynamicToken},
		{"template token", func(c *Config) { c.FallbackVersion = "{{version}}" }, "fallback_version", ErrDynamicToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("every validation error should match ErrInvalidConfig, got %v", err)
			}

			var ve ValidationErrors
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationErrors, got %T", err)
			}
			if _, ok := ve.Field(tt.wantKey); !ok {
				t.Errorf("no error for key %q in %v", tt.wantKey, ve)
			}
		})
	}
}

func TestValidationErrorMessages(t *testing.T) {
	e := FieldError{Key: "install_retries", Problem: "out of range", Value: 9}
	if got := e.Error(); got != "install_retries: out of range (got 9)" {
		t.Errorf("Error() = %q", got)
	}
	e = FieldError{Key: "fallback_version", Problem: "must not be empty"}
	if got := e.Error(); got != "fallback_version: must not be empty" {
		t.Errorf("Error() = %q", got)
	}

	errs := ValidationErrors{e, {Key: "reference_manifest", Problem: "bad", Err: ErrDynamicToken}}
	want := "config: invalid configuration: fallback_version: must not be empty; reference_manifest: bad"
	if got := errs.Error(); got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
	if !errors.Is(errs, ErrDynamicToken) || !errors.Is(errs, ErrInvalidConfig) {
		t.Error("ValidationErrors should match its fields' sentinels and ErrInvalidConfig")
	}
	if _, ok := errs.Field("install_retries"); ok {
		t.Error("Field() found a key that was not recorded")
	}
}
