package sharedstring

import "strings"

// Concat builds a new String holding the concatenation of parts. The
// inputs are untouched. When at most one part is non-empty the result
// aliases that part's buffer instead of allocating.
func Concat(parts ...String) String {
	total := 0
	last := -1
	for i, p := range parts {
		if n := p.Len(); n > 0 {
			total += n
			last = i
		}
	}
	if total == 0 {
		return String{}
	}
	if parts[last].Len() == total {
		return parts[last].Clone()
	}

	var sb strings.Builder
	sb.Grow(total)
	for _, p := range parts {
		sb.WriteString(p.Str())
	}
	return New(sb.String())
}

// Append returns a new String holding this value's content followed by the
// others. The receiver is untouched.
func (s String) Append(others ...String) String {
	parts := make([]String, 0, len(others)+1)
	parts = append(parts, s)
	parts = append(parts, others...)
	return Concat(parts...)
}

// AppendString returns a new String holding this value's content followed
// by v.
func (s String) AppendString(v string) String {
	if len(v) == 0 {
		if s.b == nil {
			return String{}
		}
		return s.Clone()
	}
	if s.IsEmpty() {
		return New(v)
	}
	return New(s.Str() + v)
}
