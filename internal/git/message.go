package git

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// DefaultCommitMessage is the message of a generated project's first commit.
const DefaultCommitMessage = "chore: initial commit"

// ErrInvalidCommitMessage indicates a message that is not a conventional commit header.
var ErrInvalidCommitMessage = errors.New("invalid commit message")

// MaxHeaderLength bounds the first line of a commit message.
const MaxHeaderLength = 100

// CommitTypes are the accepted conventional commit types.
var CommitTypes = []string{
	"build", "chore", "ci", "docs", "feat", "fix",
	"perf", "refactor", "revert", "style", "test",
}

var headerPattern = regexp.MustCompile(`^([a-z]+)(\([a-z0-9._/-]+\))?!?: \S.*$`)

// ValidateCommitMessage checks that message has a conventional commit header
// such as "chore: initial commit". The error carries a suggested fix.
func ValidateCommitMessage(message string) error {
	header := strings.TrimSpace(strings.SplitN(message, "\n", 2)[0])
	if header == "" {
		return fmt.Errorf("%w: empty header", ErrInvalidCommitMessage)
	}
	if len(header) > MaxHeaderLength {
		return fmt.Errorf("%w: header is %d characters, max %d",
			ErrInvalidCommitMessage, len(header), MaxHeaderLength)
	}

	m := headerPattern.FindStringSubmatch(header)
	if m == nil {
		return fmt.Errorf("%w: %q does not match \"type(scope): subject\" (try %q)",
			ErrInvalidCommitMessage, header, suggestFix(header))
	}
	if !slices.Contains(CommitTypes, m[1]) {
		return fmt.Errorf("%w: unknown type %q, want one of: %s",
			ErrInvalidCommitMessage, m[1], strings.Join(CommitTypes, ", "))
	}
	return nil
}

// suggestFix guesses a type from the wording of a free-form header.
func suggestFix(header string) string {
	lower := strings.ToLower(header)

	typ := "chore"
	switch {
	case strings.Contains(lower, "fix") || strings.Contains(lower, "bug"):
		typ = "fix"
	case strings.Contains(lower, "add") || strings.Contains(lower, "feat") || strings.Contains(lower, "new"):
		typ = "feat"
	case strings.Contains(lower, "doc") || strings.Contains(lower, "readme"):
		typ = "docs"
	}

	desc := strings.TrimSpace(header)
	if desc != "" {
		desc = strings.ToLower(desc[:1]) + desc[1:]
	}
	return typ + ": " + desc
}
