package template

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestEmbeddedStaticFiles(t *testing.T) {
	p, err := DefaultProject()
	if err != nil {
		t.Fatalf("DefaultProject() error = %v", err)
	}

	cfg, err := p.Static(BuildConfig)
	if err != nil {
		t.Fatalf("Static(%q) error = %v", BuildConfig, err)
	}
	var ts struct {
		CompilerOptions map[string]any `json:"compilerOptions"`
	}
	if err := json.Unmarshal(cfg, &ts); err != nil {
		t.Fatalf("tsconfig.json is not valid JSON: %v", err)
	}
	want := map[string]any{
		"target":           "ESNext",
		"module":           "NodeNext",
		"moduleResolution": "NodeNext",
		"outDir":           "dist",
		"rootDir":          "src",
		"strict":           true,
	}
	for k, v := range want {
		if ts.CompilerOptions[k] != v {
			t.Errorf("compilerOptions.%s = %v, want %v", k, ts.CompilerOptions[k], v)
		}
	}

	stub, err := p.Static(SourceStub)
	if err != nil {
		t.Fatalf("Static(%q) error = %v", SourceStub, err)
	}
	if !strings.Contains(string(stub), "Hello TypeScript") {
		t.Errorf("unexpected source stub %q", stub)
	}

	if _, err := p.Static("missing.txt"); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("expected ErrTemplateNotFound, got %v", err)
	}
}

func TestReadme_Minimal(t *testing.T) {
	p, err := DefaultProject()
	if err != nil {
		t.Fatal(err)
	}

	out, err := p.Readme(ReadmeContext{
		Name: "demo",
		Run:  "npm run",
		Usage: []ScriptDoc{
			{Name: "build", Summary: "Compile TypeScript to JavaScript", Detail: "Compiles"},
		},
	})
	if err != nil {
		t.Fatalf("Readme() error = %v", err)
	}

	for _, want := range []string{
		"# demo\n",
		"npm run build    # Compile TypeScript to JavaScript\n",
		"demo/\n",
		"└── ...\n",
		"- `npm run build` - Compiles\n",
		"## License\n\nMIT\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("README missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "## Git Hooks") {
		t.Error("README should not contain a hooks section")
	}
}

func TestReadme_WithStructureAndSections(t *testing.T) {
	p, err := DefaultProject()
	if err != nil {
		t.Fatal(err)
	}

	out, err := p.Readme(ReadmeContext{
		Name:      "demo",
		Run:       "pnpm run",
		Usage:     []ScriptDoc{{Name: "lint", Summary: "Run ESLint", Detail: "Checks"}},
		Structure: []StructureLine{{Path: "eslint.config.js", Comment: "ESLint configuration (flat config)"}},
		Closing:   &StructureLine{Path: ".husky/", Comment: "Git hooks"},
		Stack:     []StackItem{{Name: "ESLint", Note: "Lint"}},
		Sections:  []Section{{Title: "Git Hooks", Body: "Hooks run.\n"}},
	})
	if err != nil {
		t.Fatalf("Readme() error = %v", err)
	}

	for _, want := range []string{
		"pnpm run lint    # Run ESLint\n",
		"├── eslint.config.js   # ESLint configuration (flat config)\n",
		"└── .husky/            # Git hooks\n",
		"- **ESLint** - Lint\n",
		"\n## Git Hooks\n\nHooks run.\n\n## License",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("README missing %q\n%s", want, out)
		}
	}
}
