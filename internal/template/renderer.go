package template

import (
	"bytes"
	"fmt"
	"io/fs"
	"regexp"
	"text/template"
)

// placeholderPattern matches ${VAR} and {{VAR}} left in rendered output.
// Shell forms such as $(cmd) and $VAR are legitimate in generated files.
var placeholderPattern = regexp.MustCompile(`\$\{[A-Za-z_][A-Za-z0-9_]*\}|\{\{\.?[A-Za-z_][A-Za-z0-9_.]*\}\}`)

// renderStrict executes the template file name from fsys with data.
// Missing map keys fail, and so does any placeholder surviving in the output.
func renderStrict(fsys fs.FS, name string, data any) ([]byte, error) {
	src, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMissingTemplateKey, name, err)
	}
	if m := placeholderPattern.Find(buf.Bytes()); m != nil {
		return nil, fmt.Errorf("%w: %q in %s", ErrUnexpandedToken, m, name)
	}
	return buf.Bytes(), nil
}
