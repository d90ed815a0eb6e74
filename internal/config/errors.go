// Package config loads the user configuration for launchts from an optional
// YAML file and LAUNCHTS_* environment variables, applies defaults and
// validates the result.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for configuration operations.
var (
	// ErrConfigNotFound indicates an explicitly requested config file does not exist.
	ErrConfigNotFound = errors.New("config: configuration file not found")

	// ErrInvalidConfig indicates the configuration is invalid.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrInvalidYAML indicates the configuration file could not be parsed.
	ErrInvalidYAML = errors.New("config: invalid YAML syntax")

	// ErrDynamicToken indicates a value still holds an unexpanded ${VAR} or {{VAR}}.
	ErrDynamicToken = errors.New("config: unexpanded dynamic token detected")
)

// FieldError is one invalid configuration key.
type FieldError struct {
	Key     string
	Problem string
	Value   any   // offending value, nil when not worth echoing
	Err     error // sentinel matched by errors.Is
}

func (e FieldError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("%s: %s (got %v)", e.Key, e.Problem, e.Value)
	}
	return e.Key + ": " + e.Problem
}

func (e FieldError) Unwrap() error { return e.Err }

// ValidationErrors lists every invalid key, in the order they were checked.
// It always matches ErrInvalidConfig.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return "config: invalid configuration: " + strings.Join(msgs, "; ")
}

// Unwrap exposes ErrInvalidConfig and each field's sentinel to errors.Is.
func (v ValidationErrors) Unwrap() []error {
	errs := []error{ErrInvalidConfig}
	for _, e := range v {
		errs = append(errs, e)
	}
	return errs
}

// Field returns the error recorded for key.
func (v ValidationErrors) Field(key string) (FieldError, bool) {
	for _, e := range v {
		if e.Key == key {
			return e, true
		}
	}
	return FieldError{}, false
}
