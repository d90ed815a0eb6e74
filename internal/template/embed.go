package template

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/launchts/launchts/internal/defs"
)

//go:embed templates
var embedded embed.FS

// Template names under the embedded root.
const (
	ReadmeTemplate = "README.md.tmpl"
	BuildConfig    = "tsconfig.json"
	SourceStub     = defs.SrcDir + "/" + defs.EntryTS
)

// EmbeddedTemplates returns the project templates rooted at the templates directory.
func EmbeddedTemplates() (fs.FS, error) {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		return nil, fmt.Errorf("open embedded templates: %w", err)
	}
	return sub, nil
}

// Project renders the documentation and reads the static project files from
// a template filesystem.
type Project struct {
	fsys fs.FS
}

// NewProject returns a Project over fsys.
func NewProject(fsys fs.FS) *Project {
	return &Project{fsys: fsys}
}

// DefaultProject returns a Project over the embedded templates.
func DefaultProject() (*Project, error) {
	fsys, err := EmbeddedTemplates()
	if err != nil {
		return nil, err
	}
	return NewProject(fsys), nil
}

// Readme renders the README for ctx.
func (p *Project) Readme(ctx ReadmeContext) (string, error) {
	out, err := renderStrict(p.fsys, ReadmeTemplate, ctx)
	if err != nil {
		return "", fmt.Errorf("render readme: %w", err)
	}
	return string(out), nil
}

// Static returns the raw content of a non-template file.
func (p *Project) Static(name string) ([]byte, error) {
	data, err := fs.ReadFile(p.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	return data, nil
}
