package sharedstring

import "strings"

// The search family forwards to the strings package over the current
// content view. No method here allocates a buffer or mutates anything;
// all return -1 when there is no match.

// Index returns the byte index of the first occurrence of sub.
func (s String) Index(sub string) int {
	return strings.Index(s.Str(), sub)
}

// IndexFrom returns the byte index of the first occurrence of sub at or
// after pos.
func (s String) IndexFrom(sub string, pos int) int {
	str := s.Str()
	if pos < 0 {
		pos = 0
	}
	if pos > len(str) {
		return -1
	}
	i := strings.Index(str[pos:], sub)
	if i < 0 {
		return -1
	}
	return pos + i
}

// IndexByte returns the byte index of the first occurrence of c.
func (s String) IndexByte(c byte) int {
	return strings.IndexByte(s.Str(), c)
}

// IndexRune returns the byte index of the first occurrence of r.
func (s String) IndexRune(r rune) int {
	return strings.IndexRune(s.Str(), r)
}

// IndexAny returns the byte index of the first occurrence of any rune
// from chars.
func (s String) IndexAny(chars string) int {
	return strings.IndexAny(s.Str(), chars)
}

// IndexNotAny returns the byte index of the first rune not present in
// chars.
func (s String) IndexNotAny(chars string) int {
	return strings.IndexFunc(s.Str(), func(r rune) bool {
		return !strings.ContainsRune(chars, r)
	})
}

// LastIndex returns the byte index of the last occurrence of sub.
func (s String) LastIndex(sub string) int {
	return strings.LastIndex(s.Str(), sub)
}

// LastIndexBefore returns the byte index of the last occurrence of sub
// beginning at or before pos.
func (s String) LastIndexBefore(sub string, pos int) int {
	str := s.Str()
	if pos < 0 {
		return -1
	}
	end := pos + len(sub)
	if end > len(str) {
		end = len(str)
	}
	return strings.LastIndex(str[:end], sub)
}

// LastIndexByte returns the byte index of the last occurrence of c.
func (s String) LastIndexByte(c byte) int {
	return strings.LastIndexByte(s.Str(), c)
}

// LastIndexAny returns the byte index of the last occurrence of any rune
// from chars.
func (s String) LastIndexAny(chars string) int {
	return strings.LastIndexAny(s.Str(), chars)
}

// LastIndexNotAny returns the byte index of the last rune not present in
// chars.
func (s String) LastIndexNotAny(chars string) int {
	return strings.LastIndexFunc(s.Str(), func(r rune) bool {
		return !strings.ContainsRune(chars, r)
	})
}

// Contains reports whether sub is within the content.
func (s String) Contains(sub string) bool {
	return strings.Contains(s.Str(), sub)
}

// ContainsAny reports whether any rune from chars is within the content.
func (s String) ContainsAny(chars string) bool {
	return strings.ContainsAny(s.Str(), chars)
}

// ContainsRune reports whether r is within the content.
func (s String) ContainsRune(r rune) bool {
	return strings.ContainsRune(s.Str(), r)
}

// Count returns the number of non-overlapping occurrences of sub. As with
// strings.Count, an empty sub counts rune boundaries.
func (s String) Count(sub string) int {
	return strings.Count(s.Str(), sub)
}
