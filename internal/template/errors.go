// Package template holds the embedded project templates and renders them.
package template

import "errors"

// Sentinel errors for the template package.
var (
	// ErrTemplateNotFound indicates the named template is not embedded.
	ErrTemplateNotFound = errors.New("template: not found")

	// ErrMissingTemplateKey indicates the render data lacks a referenced key.
	ErrMissingTemplateKey = errors.New("template: missing key")

	// ErrUnexpandedToken indicates a placeholder survived rendering.
	ErrUnexpandedToken = errors.New("template: unexpanded token")
)
