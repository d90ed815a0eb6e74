package ui

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestTheme_NoColorIsPlain(t *testing.T) {
	th := NewTheme(true)
	for _, tt := range []struct {
		name string
		fn   func(string) string
	}{
		{"Success", th.Success},
		{"Warning", th.Warning},
		{"Error", th.Error},
		{"Muted", th.Muted},
		{"Bold", th.Bold},
		{"Card", th.Card},
	} {
		in := "line one\nline two"
		if got := tt.fn(in); got != in {
			t.Errorf("%s(%q) = %q, want unchanged", tt.name, in, got)
		}
	}
}

func TestTheme_ColorKeepsText(t *testing.T) {
	th := NewTheme(false)
	got := th.Warning("⚠️  Warning\n   Tip: retry")
	if !strings.Contains(got, "Warning") || !strings.Contains(got, "Tip: retry") {
		t.Errorf("styled output lost text: %q", got)
	}
	if strings.Count(got, "\n") != 1 {
		t.Errorf("line count changed: %q", got)
	}
}

func TestDetectTheme_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if !DetectTheme().NoColor {
		t.Error("NO_COLOR should disable colour")
	}
}

func TestHeadlessManager_Force(t *testing.T) {
	hm := NewHeadlessManager()
	hm.ForceHeadless(true)
	if !hm.IsHeadless() {
		t.Error("forced headless should report headless")
	}
	hm.ForceHeadless(false)
	if hm.IsHeadless() {
		t.Error("forced interactive should not report headless")
	}
}

func TestIsTerminal_NonFiles(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Error("a buffer is never a terminal")
	}
	var f *os.File
	if IsTerminal(f) {
		t.Error("a nil file is never a terminal")
	}

	tmp, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer tmp.Close()
	if IsTerminal(tmp) {
		t.Error("a regular file is not a terminal")
	}
}

func TestRenderMarkdown_Plain(t *testing.T) {
	out, err := RenderMarkdown(NewTheme(true), "# demo\n\nTypeScript project.\n\n- `npm run build`\n", 0)
	if err != nil {
		t.Fatalf("RenderMarkdown() error = %v", err)
	}
	for _, want := range []string{"demo", "TypeScript project.", "npm run build"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q:\n%s", want, out)
		}
	}
}
