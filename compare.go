package sharedstring

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Compare lexicographically compares two values.
// Returns -1, 0, or +1 like strings.Compare.
func (s String) Compare(other String) int {
	if s.b == other.b {
		return 0
	}
	return strings.Compare(s.Str(), other.Str())
}

// CompareString compares against a native string.
func (s String) CompareString(v string) int {
	return strings.Compare(s.Str(), v)
}

// Equal reports content equality. Two values sharing a buffer are equal
// trivially; independently built values compare by content.
func (s String) Equal(other String) bool {
	if s.b == other.b {
		return true
	}
	return s.Str() == other.Str()
}

// EqualString reports content equality against a native string.
func (s String) EqualString(v string) bool {
	return s.Str() == v
}

// Less reports whether s sorts before other.
func (s String) Less(other String) bool {
	return s.Compare(other) < 0
}

// HasPrefix reports whether the content starts with prefix.
func (s String) HasPrefix(prefix string) bool {
	return strings.HasPrefix(s.Str(), prefix)
}

// HasSuffix reports whether the content ends with suffix.
func (s String) HasSuffix(suffix string) bool {
	return strings.HasSuffix(s.Str(), suffix)
}

// EqualFold reports content equality under Unicode case folding.
func (s String) EqualFold(other String) bool {
	if s.b == other.b {
		return true
	}
	return strings.EqualFold(s.Str(), other.Str())
}

// EqualNormalized reports content equality after NFC normalization, so
// precomposed and decomposed spellings of the same text compare equal.
func (s String) EqualNormalized(other String) bool {
	if s.b == other.b {
		return true
	}
	return norm.NFC.String(s.Str()) == norm.NFC.String(other.Str())
}
