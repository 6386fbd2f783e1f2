package sharedstring

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned by bounds-checked operations.
var (
	ErrOutOfRange      = errors.New("sharedstring: index out of range")
	ErrInvalidArgument = errors.New("sharedstring: invalid argument")
)

// All selects the full remaining length when passed as the count argument
// to Substr.
const All = -1

// String is an immutable string value backed by a shared, reference-counted
// buffer. The zero value is the empty string and is ready to use.
//
// A String is either unbound (no buffer, observably empty) or bound to
// exactly one buffer, possibly shared with other values. Operations never
// mutate a buffer; content changes rebind the value to a new one.
//
// The reference count tracks explicit handles: every constructor, Clone,
// and aliasing Substr accounts for one, and each handle is released by
// exactly one of Drop, Reset, or a rebinding Assign. Plain value copies
// (b := a) share the buffer safely — it is immutable and the garbage
// collector keeps it alive — but they are borrows: do not Drop or rebind
// a borrowed copy, use Clone when the copy has its own lifetime.
type String struct {
	b *buf
}

// Ref is a legacy alias for String, kept for callers that used the
// string-reference name.
type Ref = String

// New builds a String bound to a fresh buffer holding content.
func New(content string) String {
	return String{b: newBuf(content)}
}

// NewBytes builds a String from a byte slice. The bytes are copied, so the
// caller may reuse the slice afterwards.
func NewBytes(content []byte) String {
	return String{b: newBuf(string(content))}
}

// Clone returns a new handle sharing this value's buffer. No content is
// copied; the buffer's reference count is incremented.
func (s String) Clone() String {
	s.b.retain()
	return String{b: s.b}
}

// Drop releases this value's handle and leaves it unbound. The shared
// buffer is untouched; when the last handle is released the buffer's
// release hook fires. Drop on an unbound value is a no-op.
func (s *String) Drop() {
	s.b.release()
	s.b = nil
}

// Str returns the content as a native string. Unbound values return the
// canonical empty string. The returned string shares no mutable state and
// is safe to hold indefinitely.
func (s String) Str() string {
	if s.b == nil {
		return ""
	}
	return s.b.data
}

// Assign rebinds this value to a fresh buffer holding content, releasing
// the previous buffer's reference. Values that shared the old buffer are
// unaffected. The new buffer is fully constructed before the old reference
// is released, so a String is never observed partially rebound.
func (s *String) Assign(content string) {
	nb := newBuf(content)
	old := s.b
	s.b = nb
	old.release()
}

// AssignBytes rebinds to a copy of content.
func (s *String) AssignBytes(content []byte) {
	s.Assign(string(content))
}

// AssignFrom rebinds this value to share other's buffer. No content is
// copied. Self-assignment is safe.
func (s *String) AssignFrom(other String) {
	other.b.retain()
	old := s.b
	s.b = other.b
	old.release()
}

// Reset releases this value's handle and returns it to the unbound state.
// Only this value's binding changes; the shared buffer and every other
// value referencing it are untouched.
func (s *String) Reset() {
	s.b.release()
	s.b = nil
}

// Swap exchanges the handles of two values in O(1). No content is touched
// and no reference counts change.
func (s *String) Swap(other *String) {
	s.b, other.b = other.b, s.b
}

// Len returns the content length in bytes.
func (s String) Len() int {
	return len(s.Str())
}

// RuneLen returns the content length in runes.
func (s String) RuneLen() int {
	if s.b == nil {
		return 0
	}
	return s.b.summary.runes
}

// IsEmpty reports whether the content has length zero. Unbound values
// are empty.
func (s String) IsEmpty() bool {
	return s.Len() == 0
}

// ASCII reports whether the content is entirely ASCII. Unbound and empty
// values are ASCII.
func (s String) ASCII() bool {
	if s.b == nil {
		return true
	}
	return s.b.summary.ascii
}

// At returns the byte at index i, or ErrOutOfRange if i is out of bounds.
func (s String) At(i int) (byte, error) {
	str := s.Str()
	if i < 0 || i >= len(str) {
		return 0, fmt.Errorf("%w: at %d (len %d)", ErrOutOfRange, i, len(str))
	}
	return str[i], nil
}

// Byte returns the byte at index i.
// Returns 0 and false if i is out of range.
func (s String) Byte(i int) (byte, bool) {
	str := s.Str()
	if i < 0 || i >= len(str) {
		return 0, false
	}
	return str[i], true
}

// Front returns the first byte.
// Returns 0 and false if the value is empty.
func (s String) Front() (byte, bool) {
	return s.Byte(0)
}

// Back returns the last byte.
// Returns 0 and false if the value is empty.
func (s String) Back() (byte, bool) {
	return s.Byte(s.Len() - 1)
}

// Bytes returns a copy of the content as a byte slice. The copy keeps the
// backing buffer immutable no matter what the caller does with the slice.
func (s String) Bytes() []byte {
	str := s.Str()
	out := make([]byte, len(str))
	copy(out, str)
	return out
}

// Substr returns the subrange [pos, pos+count). A negative count (see All)
// selects everything from pos to the end.
//
// The full range from position zero is a semantic no-op, so it aliases this
// value's buffer with no allocation. Any other range builds an independent
// buffer holding exactly the requested bytes; the bytes are deep-copied so
// the result never pins the source buffer's allocation. Returns
// ErrOutOfRange if pos is past the end of the content.
func (s String) Substr(pos, count int) (String, error) {
	str := s.Str()
	if pos < 0 || pos > len(str) {
		return String{}, fmt.Errorf("%w: substr pos %d (len %d)", ErrOutOfRange, pos, len(str))
	}
	if count < 0 || count > len(str)-pos {
		count = len(str) - pos
	}
	if pos == 0 && count == len(str) {
		return s.Clone(), nil
	}
	return New(strings.Clone(str[pos : pos+count])), nil
}

// Aliases reports whether two values share the same backing buffer. This is
// an identity check, not a content check; independently built values with
// equal content do not alias.
func (s String) Aliases(other String) bool {
	return s.b != nil && s.b == other.b
}
