package project

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"

	"github.com/launchts/launchts/internal/defs"
	"github.com/launchts/launchts/internal/manifest"
	"github.com/launchts/launchts/internal/template"
	"github.com/launchts/launchts/internal/tools"
)

// DefaultFallbackVersion is used for dependencies no version source knows.
const DefaultFallbackVersion = "latest"

// Artifacts is the in-memory result of composition: everything the
// materializer writes, and nothing it has to compute.
type Artifacts struct {
	Name        string
	Manifest    *manifest.Manifest
	Readme      string
	Files       []tools.File // tool configuration payloads
	SourceStub  []byte
	BuildConfig []byte

	// Fallbacks lists dependencies that received the fallback version.
	Fallbacks []string
}

// Paths lists the project-relative paths of every file the artifacts
// produce, in the order they are planned.
func (a *Artifacts) Paths() []string {
	paths := []string{template.SourceStub, defs.TSConfigJSON, defs.PackageJSON, defs.ReadmeMD}
	for _, f := range a.Files {
		paths = append(paths, f.Path)
	}
	return paths
}

// Composer folds a resolved option set over the tool registry. It performs
// no disk access beyond reading its template filesystem.
type Composer struct {
	registry *tools.Registry
	versions manifest.VersionSource
	fallback string
	docs     *template.Project
	logger   *zap.Logger
}

// ComposerOption configures a Composer.
type ComposerOption func(*Composer)

// WithRegistry replaces the built-in tool registry.
func WithRegistry(r *tools.Registry) ComposerOption {
	return func(c *Composer) { c.registry = r }
}

// WithVersions replaces the version source.
func WithVersions(v manifest.VersionSource) ComposerOption {
	return func(c *Composer) { c.versions = v }
}

// WithFallbackVersion sets the version used when no source knows a dependency.
func WithFallbackVersion(v string) ComposerOption {
	return func(c *Composer) {
		if v != "" {
			c.fallback = v
		}
	}
}

// WithTemplates replaces the embedded project templates.
func WithTemplates(p *template.Project) ComposerOption {
	return func(c *Composer) { c.docs = p }
}

// WithLogger sets the composer's logger. A nil logger discards output.
func WithLogger(l *zap.Logger) ComposerOption {
	return func(c *Composer) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewComposer returns a Composer over the built-in registry, the embedded
// reference versions and the embedded templates, adjusted by opts.
func NewComposer(opts ...ComposerOption) (*Composer, error) {
	c := &Composer{
		registry: tools.Default(),
		versions: tools.DefaultReference(),
		fallback: DefaultFallbackVersion,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.docs == nil {
		docs, err := template.DefaultProject()
		if err != nil {
			return nil, err
		}
		c.docs = docs
	}
	return c, nil
}

// Compose builds the manifest, README and static file list for a project.
// Identical inputs always produce identical artifacts.
func (c *Composer) Compose(name string, opts Options) (*Artifacts, error) {
	a := &Artifacts{Name: name, Manifest: manifest.New(name)}
	m := a.Manifest

	m.AddScript(tools.BuildScript.Name, tools.BuildScript.Command)
	m.AddDevDependency(tools.Compiler, c.version(a, tools.Compiler))

	docs := template.ReadmeContext{
		Name:  name,
		Run:   opts.PackageManager.RunPrefix(),
		Usage: []template.ScriptDoc{scriptDoc(tools.BuildScript)},
	}

	for _, d := range c.registry.Ordered() {
		if !opts.Enabled(d.ID) {
			continue
		}
		c.logger.Debug("adding tool", zap.String("tool", string(d.ID)))

		for _, dep := range d.Deps {
			m.AddDevDependency(dep, c.version(a, dep))
		}
		for _, s := range d.Scripts {
			m.AddScript(s.Name, s.Command)
			if !s.Lifecycle {
				docs.Usage = append(docs.Usage, scriptDoc(s))
			}
		}
		a.Files = append(a.Files, d.Files...)
		for _, sec := range d.Sections {
			if sec.Patterns {
				if err := validatePatterns(sec); err != nil {
					return nil, err
				}
			}
			if err := m.SetSection(sec.Key, sec.Value); err != nil {
				return nil, fmt.Errorf("tool %s: %w", d.ID, err)
			}
		}

		if d.Structure != nil {
			docs.Structure = append(docs.Structure, template.StructureLine(*d.Structure))
		}
		if d.Closing != nil {
			line := template.StructureLine(*d.Closing)
			docs.Closing = &line
		}
		if d.Readme != nil {
			docs.Sections = append(docs.Sections, template.Section(*d.Readme))
		}
	}

	for _, id := range tools.StackOrder {
		if d, ok := c.registry.Lookup(id); ok && opts.Enabled(id) && d.Stack != "" {
			docs.Stack = append(docs.Stack, template.StackItem{Name: d.Name, Note: d.Stack})
		}
	}

	readme, err := c.docs.Readme(docs)
	if err != nil {
		return nil, err
	}
	a.Readme = readme

	if a.SourceStub, err = c.docs.Static(template.SourceStub); err != nil {
		return nil, err
	}
	if a.BuildConfig, err = c.docs.Static(template.BuildConfig); err != nil {
		return nil, err
	}

	if len(a.Fallbacks) > 0 {
		c.logger.Warn("dependencies use a floating fallback version",
			zap.Strings("deps", a.Fallbacks),
			zap.String("version", c.fallback))
	}
	return a, nil
}

func (c *Composer) version(a *Artifacts, dep string) string {
	if c.versions != nil {
		if v, ok := c.versions.Version(dep); ok {
			return v
		}
	}
	a.Fallbacks = append(a.Fallbacks, dep)
	return c.fallback
}

func scriptDoc(s tools.Script) template.ScriptDoc {
	return template.ScriptDoc{Name: s.Name, Summary: s.Summary, Detail: s.Detail}
}

// keyed is satisfied by manifest.OrderedMap values.
type keyed interface {
	Keys() []string
}

func validatePatterns(sec tools.Section) error {
	km, ok := sec.Value.(keyed)
	if !ok {
		return fmt.Errorf("section %q: pattern keys require an ordered map, got %T", sec.Key, sec.Value)
	}
	for _, p := range km.Keys() {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("section %q: malformed glob %q: %w", sec.Key, p, doublestar.ErrBadPattern)
		}
	}
	return nil
}
