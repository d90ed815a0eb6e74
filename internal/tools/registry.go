// Package tools is the closed catalog of optional tooling a generated project
// can carry. Each tool is one immutable Descriptor; adding a tool means adding
// one descriptor here and nothing else.
package tools

import (
	_ "embed"
	"io/fs"

	"github.com/launchts/launchts/internal/manifest"
)

// ID identifies a tool in the registry.
type ID string

// Tool identifiers.
const (
	Reload ID = "reload"
	Lint   ID = "lint"
	Format ID = "format"
	Hooks  ID = "hooks"
)

// Order is the fixed order in which enabled tools are folded into a project.
// It only affects script insertion order; script names never collide.
var Order = []ID{Reload, Lint, Format, Hooks}

// StackOrder is the order of the README technology-stack bullets.
var StackOrder = []ID{Lint, Format, Reload, Hooks}

// Compiler is the dependency every generated project carries.
const Compiler = "typescript"

// BuildScript is the script every generated project carries.
var BuildScript = Script{
	Name:    "build",
	Command: "tsc -p tsconfig.json",
	Summary: "Compile TypeScript to JavaScript",
	Detail:  "Compiles TypeScript files to JavaScript in the `dist/` directory",
}

// Script is one package.json script contributed by a tool.
type Script struct {
	Name    string
	Command string
	Summary string // short comment for the README usage block
	Detail  string // sentence for the README scripts section

	// Lifecycle scripts are run by the package manager itself and are not
	// listed in the README.
	Lifecycle bool
}

// File is a static configuration payload written into the project.
type File struct {
	Path    string // slash-separated, relative to the project root
	Content []byte
	Mode    fs.FileMode // zero means the default file mode
}

// Section is an extra top-level package.json section.
type Section struct {
	Key   string
	Value any

	// Patterns marks sections whose keys are file globs.
	Patterns bool
}

// StructureEntry is one line of the README project-structure diagram.
type StructureEntry struct {
	Path    string
	Comment string
}

// ReadmeSection is a titled README section contributed by a tool.
type ReadmeSection struct {
	Title string
	Body  string
}

// Activation describes the post-install command that switches a tool on.
type Activation struct {
	Args     []string // arguments after the package manager's exec prefix
	HookFile string   // file the activation is expected to find
	Fallback []string // run when HookFile is missing after activation
}

// Descriptor is the registry's record of a tool. Never mutated at runtime.
type Descriptor struct {
	ID         ID
	Name       string // display name
	Flag       string // CLI flag that enables the tool
	Prompt     string // interactive confirm question
	Stack      string // technology-stack bullet text
	Deps       []string
	Scripts    []Script
	Files      []File
	Sections   []Section
	Structure  *StructureEntry // diagram line, if the tool adds a top-level file
	Closing    *StructureEntry // replaces the diagram's closing "..." line
	Readme     *ReadmeSection  // optional README section
	Activation *Activation
}

// Registry maps tool identifiers to descriptors.
type Registry struct {
	byID map[ID]Descriptor
}

// NewRegistry builds a registry from descriptors. Later duplicates win.
func NewRegistry(descs ...Descriptor) *Registry {
	r := &Registry{byID: make(map[ID]Descriptor, len(descs))}
	for _, d := range descs {
		r.byID[d.ID] = d
	}
	return r
}

// Lookup returns the descriptor for id.
func (r *Registry) Lookup(id ID) (Descriptor, bool) {
	d, ok := r.byID[id]
	return d, ok
}

// Ordered returns every registered descriptor in Order.
func (r *Registry) Ordered() []Descriptor {
	out := make([]Descriptor, 0, len(r.byID))
	for _, id := range Order {
		if d, ok := r.byID[id]; ok {
			out = append(out, d)
		}
	}
	return out
}

//go:embed reference.json
var referenceJSON []byte

// DefaultReference returns the versions this release of launchts pins for
// every dependency the registry can add.
func DefaultReference() *manifest.Reference {
	ref, err := manifest.ParseReference(referenceJSON)
	if err != nil {
		panic("tools: embedded reference.json: " + err.Error())
	}
	return ref
}
