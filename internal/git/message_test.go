package git

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateCommitMessage(t *testing.T) {
	tests := []struct {
		name    string
		message string
		wantErr bool
		wantMsg string
	}{
		{"default", DefaultCommitMessage, false, ""},
		{"with scope", "build(deps): scaffold project", false, ""},
		{"breaking", "feat!: first release", false, ""},
		{"with body", "chore: initial commit\n\nGenerated by launchts", false, ""},
		{"empty", "", true, "empty header"},
		{"no type", "Initial commit", true, `try "chore: initial commit"`},
		{"unknown type", "wip: initial commit", true, "unknown type"},
		{"missing subject", "chore: ", true, "does not match"},
		{"too long", "chore: " + strings.Repeat("x", MaxHeaderLength), true, "max 100"},
		{"fix suggestion", "Fix typo", true, `try "fix: fix typo"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCommitMessage(tt.message)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateCommitMessage(%q) error = %v, wantErr %v", tt.message, err, tt.wantErr)
			}
			if err == nil {
				return
			}
			if !errors.Is(err, ErrInvalidCommitMessage) {
				t.Errorf("error %v is not ErrInvalidCommitMessage", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not contain %q", err, tt.wantMsg)
			}
		})
	}
}
