package template

import (
	"errors"
	"testing"
	"testing/fstest"
)

func TestRenderStrict(t *testing.T) {
	fsys := fstest.MapFS{
		"title.tmpl": &fstest.MapFile{Data: []byte("# {{.Name}}\n")},
		"list.tmpl":  &fstest.MapFile{Data: []byte("{{range .Items}}- {{.}}\n{{end}}")},
		"cond.tmpl":  &fstest.MapFile{Data: []byte("{{if .On}}on{{else}}off{{end}}")},
		"empty.tmpl": &fstest.MapFile{},
		"hook.tmpl":  &fstest.MapFile{Data: []byte(". \"$(dirname \"$0\")/_/husky.sh\"\n$HOME {{.Cmd}}\n")},
	}

	tests := []struct {
		name    string
		file    string
		data    any
		want    string
		wantErr error
	}{
		{"field", "title.tmpl", map[string]string{"Name": "demo"}, "# demo\n", nil},
		{"range", "list.tmpl", map[string][]string{"Items": {"a", "b"}}, "- a\n- b\n", nil},
		{"conditional", "cond.tmpl", map[string]bool{"On": false}, "off", nil},
		{"empty", "empty.tmpl", nil, "", nil},
		{"shell syntax survives", "hook.tmpl", map[string]string{"Cmd": "npx lint-staged"},
			". \"$(dirname \"$0\")/_/husky.sh\"\n$HOME npx lint-staged\n", nil},
		{"missing key", "title.tmpl", map[string]string{}, "", ErrMissingTemplateKey},
		{"missing file", "nope.tmpl", nil, "", ErrTemplateNotFound},
		{"leftover dollar brace", "title.tmpl", map[string]string{"Name": "${NAME}"}, "", ErrUnexpandedToken},
		{"leftover braces", "title.tmpl", map[string]string{"Name": "{{.Name}}"}, "", ErrUnexpandedToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := renderStrict(fsys, tt.file, tt.data)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("renderStrict() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("renderStrict() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("renderStrict() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderStrict_ParseError(t *testing.T) {
	fsys := fstest.MapFS{"broken.tmpl": &fstest.MapFile{Data: []byte("{{if .On}}unterminated")}}

	_, err := renderStrict(fsys, "broken.tmpl", nil)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	for _, sentinel := range []error{ErrTemplateNotFound, ErrMissingTemplateKey, ErrUnexpandedToken} {
		if errors.Is(err, sentinel) {
			t.Errorf("parse error should not match %v", sentinel)
		}
	}
}
