// Package manifest models the package.json written into a generated project
// and the reference manifest its dependency versions are copied from.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

// Fixed identity values of a freshly generated project.
const (
	InitialVersion = "0.1.0"
	ModuleType     = "module"
)

// reservedKeys are top-level manifest fields that extra sections may not replace.
var reservedKeys = []string{"name", "version", "private", "type", "scripts", "devDependencies"}

// ErrReservedSection is returned when an extra section collides with a fixed field.
var ErrReservedSection = errors.New("manifest: section name is reserved")

// Manifest is the in-memory package.json of a generated project.
// It is built once per invocation, encoded once, then discarded.
type Manifest struct {
	Name            string
	Version         string
	Private         bool
	Type            string
	Scripts         *OrderedMap[string]
	DevDependencies *OrderedMap[string]
	Extra           *OrderedMap[any]
}

// New returns a minimal private ES-module manifest for name.
func New(name string) *Manifest {
	return &Manifest{
		Name:            name,
		Version:         InitialVersion,
		Private:         true,
		Type:            ModuleType,
		Scripts:         NewOrderedMap[string](),
		DevDependencies: NewOrderedMap[string](),
		Extra:           NewOrderedMap[any](),
	}
}

// AddScript sets a script. Later writes to the same name win.
func (m *Manifest) AddScript(name, command string) {
	m.Scripts.Set(name, command)
}

// AddDevDependency sets a dev dependency version.
func (m *Manifest) AddDevDependency(name, version string) {
	m.DevDependencies.Set(name, version)
}

// SetSection attaches an extra top-level section such as "lint-staged".
// An existing section of the same name is kept.
func (m *Manifest) SetSection(key string, value any) error {
	if slices.Contains(reservedKeys, key) {
		return fmt.Errorf("%w: %q", ErrReservedSection, key)
	}
	if m.Extra.Has(key) {
		return nil
	}
	m.Extra.Set(key, value)
	return nil
}

// MarshalJSON emits the fixed fields first, then extra sections in insertion order.
func (m *Manifest) MarshalJSON() ([]byte, error) {
	doc := NewOrderedMap[any]()
	doc.Set("name", m.Name)
	doc.Set("version", m.Version)
	doc.Set("private", m.Private)
	if m.Type != "" {
		doc.Set("type", m.Type)
	}
	doc.Set("scripts", m.Scripts)
	doc.Set("devDependencies", m.DevDependencies)
	if m.Extra != nil {
		for _, k := range m.Extra.Keys() {
			v, _ := m.Extra.Get(k)
			doc.Set(k, v)
		}
	}
	return doc.MarshalJSON()
}

// Encode serializes the manifest as 2-space indented JSON with a trailing newline.
func (m *Manifest) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}
	return append(data, '\n'), nil
}
