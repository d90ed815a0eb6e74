//go:build property
// +build property

package project

import (
	"strings"
	"testing"
	"unicode"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

const allowedNameChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789._-"

// TestNameValidatorProperties checks the validator against its definition.
func TestNameValidatorProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	// Property: names built from the allowed alphabet with a safe first
	// character are accepted up to the length limit.
	properties.Property("well-formed names are valid", prop.ForAll(
		func(first rune, rest string, n int) bool {
			name := string(first) + rest
			if len(name) > n {
				name = name[:n]
			}
			return IsValidName(name)
		},
		gen.AlphaNumChar(),
		gen.RegexMatch(`^[A-Za-z0-9._-]{0,300}$`),
		gen.IntRange(1, MaxNameLength),
	))

	// Property: a leading dot or dash always fails.
	properties.Property("leading dot or dash is invalid", prop.ForAll(
		func(lead bool, rest string) bool {
			prefix := "."
			if lead {
				prefix = "-"
			}
			return !IsValidName(prefix + rest)
		},
		gen.Bool(),
		gen.RegexMatch(`^[A-Za-z0-9._-]{0,50}$`),
	))

	// Property: any character outside the alphabet fails the whole name.
	properties.Property("foreign characters are invalid", prop.ForAll(
		func(prefix string, bad rune) bool {
			if strings.ContainsRune(allowedNameChars, bad) {
				return true
			}
			return !IsValidName("a" + prefix + string(bad))
		},
		gen.RegexMatch(`^[A-Za-z0-9]{0,20}$`),
		gen.UnicodeChar(unicode.Latin),
	))

	// Property: length over the limit fails regardless of content.
	properties.Property("overlong names are invalid", prop.ForAll(
		func(extra int) bool {
			return !IsValidName(strings.Repeat("x", MaxNameLength+extra))
		},
		gen.IntRange(1, 500),
	))

	// Property: validation is deterministic.
	properties.Property("validation is pure", prop.ForAll(
		func(s string) bool {
			return IsValidName(s) == IsValidName(s)
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
