package sigil

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeName returns the NFKC form of name, which is the form the
// letterform pipeline draws.
func NormalizeName(name string) string {
	return norm.NFKC.String(name)
}

// IsIdentifier reports whether name, after NFKC normalization, is non-empty,
// starts with a letter or underscore and continues with letters, digits or
// underscores.
func IsIdentifier(name string) bool {
	return ValidateIdentifier(name) == nil
}

// ValidateIdentifier returns a *ValidationError describing why name is not
// an identifier, or nil.
func ValidateIdentifier(name string) error {
	n := NormalizeName(name)
	if n == "" {
		return invalid(StageIdentifier, "identifier must not be empty", name)
	}
	for i, r := range n {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		case i == 0 && unicode.IsDigit(r):
			return invalid(StageIdentifier, "identifier must not start with a digit", name)
		case r == unicode.ReplacementChar:
			return invalid(StageIdentifier, "identifier must be valid UTF-8", name)
		default:
			return invalid(StageIdentifier, "identifier may only contain letters, digits and underscores", name)
		}
	}
	return nil
}
