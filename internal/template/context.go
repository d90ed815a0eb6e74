package template

// ReadmeContext is the data behind README.md.tmpl. Every field is derived from
// the same resolved option set as the manifest, so any script the README
// mentions is also a manifest script.
type ReadmeContext struct {
	Name      string
	Run       string // package-manager run prefix, e.g. "npm run"
	Usage     []ScriptDoc
	Structure []StructureLine
	Closing   *StructureLine // nil renders the "..." closing line
	Stack     []StackItem
	Sections  []Section
}

// ScriptDoc documents one runnable script.
type ScriptDoc struct {
	Name    string
	Summary string
	Detail  string
}

// StructureLine is one entry of the project-structure diagram.
type StructureLine struct {
	Path    string
	Comment string
}

// StackItem is one technology-stack bullet.
type StackItem struct {
	Name string
	Note string
}

// Section is a free-form titled README section.
type Section struct {
	Title string
	Body  string
}
