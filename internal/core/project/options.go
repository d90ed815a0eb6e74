package project

import (
	"fmt"
	"slices"
	"strings"

	"github.com/launchts/launchts/internal/tools"
)

// PackageManager is one of the supported Node.js package managers.
type PackageManager string

// Supported package managers. NPM is the fallback member.
const (
	NPM  PackageManager = "npm"
	Yarn PackageManager = "yarn"
	PNPM PackageManager = "pnpm"
)

// PackageManagers lists the supported values; the first is the default.
var PackageManagers = []PackageManager{NPM, Yarn, PNPM}

// PackageManagerNames returns the supported values as strings.
func PackageManagerNames() []string {
	names := make([]string, len(PackageManagers))
	for i, pm := range PackageManagers {
		names[i] = string(pm)
	}
	return names
}

// ParsePackageManager validates s strictly.
func ParsePackageManager(s string) (PackageManager, error) {
	pm := PackageManager(s)
	if !slices.Contains(PackageManagers, pm) {
		return "", fmt.Errorf("%w %q: must be one of: %s",
			ErrInvalidPackageManager, s, strings.Join(PackageManagerNames(), ", "))
	}
	return pm, nil
}

// CoercePackageManager maps s to a supported value, falling back to the
// first member. ok is false when the fallback was applied.
func CoercePackageManager(s string) (pm PackageManager, ok bool) {
	if p, err := ParsePackageManager(s); err == nil {
		return p, true
	}
	return PackageManagers[0], false
}

// RunPrefix is the command prefix that runs a package.json script.
func (pm PackageManager) RunPrefix() string {
	return string(pm) + " run"
}

// Exec returns the binary and arguments that run a locally installed tool.
func (pm PackageManager) Exec(args ...string) (string, []string) {
	switch pm {
	case Yarn:
		return "yarn", args
	case PNPM:
		return "pnpm", append([]string{"exec"}, args...)
	default:
		return "npx", args
	}
}

// Options is the resolved tool option set consumed by the engine.
type Options struct {
	Lint           bool
	Format         bool
	Hooks          bool
	Reload         bool
	PackageManager PackageManager
	Git            bool
	Install        bool
	Verbose        bool
	SkipCommit     bool
}

// Enabled reports whether the tool with the given id is switched on.
func (o Options) Enabled(id tools.ID) bool {
	switch id {
	case tools.Reload:
		return o.Reload
	case tools.Lint:
		return o.Lint
	case tools.Format:
		return o.Format
	case tools.Hooks:
		return o.Hooks
	}
	return false
}

// Set switches the tool with the given id on or off.
func (o *Options) Set(id tools.ID, on bool) {
	switch id {
	case tools.Reload:
		o.Reload = on
	case tools.Lint:
		o.Lint = on
	case tools.Format:
		o.Format = on
	case tools.Hooks:
		o.Hooks = on
	}
}

// Preset is a named starting point for option resolution.
type Preset struct {
	Lint    bool `mapstructure:"lint" yaml:"lint"`
	Format  bool `mapstructure:"format" yaml:"format"`
	Hooks   bool `mapstructure:"hooks" yaml:"hooks"`
	Reload  bool `mapstructure:"reload" yaml:"reload"`
	Git     bool `mapstructure:"git" yaml:"git"`
	Install bool `mapstructure:"install" yaml:"install"`
}

// Built-in presets.
var (
	// AllEnabled turns every tool and provisioning step on.
	AllEnabled = Preset{Lint: true, Format: true, Hooks: true, Reload: true, Git: true, Install: true}

	// SensibleDefaults enables formatting, git and install only.
	SensibleDefaults = Preset{Format: true, Git: true, Install: true}

	// CustomBase is the base for field-by-field input: no tools, git and install on.
	CustomBase = Preset{Git: true, Install: true}
)

// Overrides are caller-supplied values layered over a preset. Nil pointers
// leave the preset value untouched.
type Overrides struct {
	Lint           *bool
	Format         *bool
	Hooks          *bool
	Reload         *bool
	Git            *bool
	Install        *bool
	PackageManager PackageManager
	Verbose        bool
	SkipCommit     bool
}

// Tool returns the override for a tool id.
func (ov Overrides) Tool(id tools.ID) *bool {
	switch id {
	case tools.Reload:
		return ov.Reload
	case tools.Lint:
		return ov.Lint
	case tools.Format:
		return ov.Format
	case tools.Hooks:
		return ov.Hooks
	}
	return nil
}

// SetTool sets the override for a tool id. Unknown ids are ignored.
func (ov *Overrides) SetTool(id tools.ID, on bool) {
	switch id {
	case tools.Reload:
		ov.Reload = Bool(on)
	case tools.Lint:
		ov.Lint = Bool(on)
	case tools.Format:
		ov.Format = Bool(on)
	case tools.Hooks:
		ov.Hooks = Bool(on)
	}
}

// Resolve merges overrides over a preset. It is pure; interactivity lives in
// the caller, which turns prompt answers into Overrides. An empty or unknown
// package manager resolves to the default member.
func Resolve(p Preset, ov Overrides) Options {
	opts := Options{
		Lint:       pick(ov.Lint, p.Lint),
		Format:     pick(ov.Format, p.Format),
		Hooks:      pick(ov.Hooks, p.Hooks),
		Reload:     pick(ov.Reload, p.Reload),
		Git:        pick(ov.Git, p.Git),
		Install:    pick(ov.Install, p.Install),
		Verbose:    ov.Verbose,
		SkipCommit: ov.SkipCommit,
	}
	opts.PackageManager, _ = CoercePackageManager(string(ov.PackageManager))
	return opts
}

func pick(v *bool, def bool) bool {
	if v != nil {
		return *v
	}
	return def
}

// Bool returns a pointer to v, for building Overrides.
func Bool(v bool) *bool {
	return &v
}
