package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrInvalidReference indicates a reference manifest that is not a JSON object.
var ErrInvalidReference = errors.New("manifest: invalid reference manifest")

// VersionSource resolves a dependency name to a version range.
type VersionSource interface {
	Version(dep string) (string, bool)
}

// VersionFunc adapts a function to VersionSource.
type VersionFunc func(dep string) (string, bool)

// Version implements VersionSource.
func (f VersionFunc) Version(dep string) (string, bool) {
	return f(dep)
}

// Reference is a package.json-shaped document whose dependency tables are
// the source of versions for generated manifests.
type Reference struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// ParseReference decodes a reference manifest.
func ParseReference(data []byte) (*Reference, error) {
	var ref Reference
	if err := json.Unmarshal(data, &ref); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidReference, err)
	}
	return &ref, nil
}

// LoadReference reads and decodes the reference manifest at path.
func LoadReference(path string) (*Reference, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reference manifest: %w", err)
	}
	return ParseReference(data)
}

// Version looks the dependency up in devDependencies, then dependencies.
func (r *Reference) Version(dep string) (string, bool) {
	if r == nil {
		return "", false
	}
	if v, ok := r.DevDependencies[dep]; ok {
		return v, true
	}
	v, ok := r.Dependencies[dep]
	return v, ok
}

// Pins is a fixed dependency-to-version table, typically from user config.
type Pins map[string]string

// Version implements VersionSource.
func (p Pins) Version(dep string) (string, bool) {
	v, ok := p[dep]
	return v, ok
}

// Chain returns a VersionSource that consults sources in order.
func Chain(sources ...VersionSource) VersionSource {
	return VersionFunc(func(dep string) (string, bool) {
		for _, s := range sources {
			if s == nil {
				continue
			}
			if v, ok := s.Version(dep); ok {
				return v, true
			}
		}
		return "", false
	})
}
