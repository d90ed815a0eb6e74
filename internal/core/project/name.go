package project

import "fmt"

// MaxNameLength is the longest accepted project name.
const MaxNameLength = 214

// IsValidName reports whether s is an acceptable project name: 1 to 214
// characters from [A-Za-z0-9._-], not starting with '.' or '-'. The check is
// exact; the string validated is the directory name that gets created.
func IsValidName(s string) bool {
	if s == "" || len(s) > MaxNameLength {
		return false
	}
	if s[0] == '.' || s[0] == '-' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isNameByte(s[i]) {
			return false
		}
	}
	return true
}

func isNameByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '.', c == '_', c == '-':
		return true
	}
	return false
}

// ValidateName returns ErrInvalidName when s fails IsValidName.
func ValidateName(s string) error {
	if !IsValidName(s) {
		return fmt.Errorf("%w: %q", ErrInvalidName, s)
	}
	return nil
}
