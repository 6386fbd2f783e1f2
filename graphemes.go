package sharedstring

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// RuneAt returns the rune starting at the given byte offset and its size
// in bytes. Returns utf8.RuneError and size 0 if offset is out of range.
func (s String) RuneAt(offset int) (rune, int) {
	str := s.Str()
	if offset < 0 || offset >= len(str) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(str[offset:])
}

// Graphemes returns the number of grapheme clusters (user-perceived
// characters) in the content.
func (s String) Graphemes() int {
	return uniseg.GraphemeClusterCount(s.Str())
}

// Width returns the content's display width in monospace cells.
func (s String) Width() int {
	return uniseg.StringWidth(s.Str())
}

// UTF16 returns the content encoded as UTF-16 code units.
func (s String) UTF16() []uint16 {
	return utf16.Encode([]rune(s.Str()))
}

// FromUTF16 builds a String from UTF-16 code units.
func FromUTF16(units []uint16) String {
	return New(string(utf16.Decode(units)))
}

// RuneIterator iterates over the content's runes in byte order.
type RuneIterator struct {
	s    string
	off  int
	r    rune
	size int
}

// Runes returns an iterator positioned before the first rune.
func (s String) Runes() *RuneIterator {
	return &RuneIterator{s: s.Str()}
}

// Next advances to the next rune.
// Returns true if there is a rune, false if iteration is complete.
func (it *RuneIterator) Next() bool {
	it.off += it.size
	if it.off >= len(it.s) {
		return false
	}
	it.r, it.size = utf8.DecodeRuneInString(it.s[it.off:])
	return true
}

// Rune returns the current rune.
func (it *RuneIterator) Rune() rune {
	return it.r
}

// Offset returns the byte offset of the current rune.
func (it *RuneIterator) Offset() int {
	return it.off
}

// ReverseRuneIterator iterates over the content's runes from last to first.
type ReverseRuneIterator struct {
	s    string
	end  int
	r    rune
	size int
}

// ReverseRunes returns an iterator positioned after the last rune.
func (s String) ReverseRunes() *ReverseRuneIterator {
	str := s.Str()
	return &ReverseRuneIterator{s: str, end: len(str)}
}

// Next advances to the previous rune in the content.
// Returns true if there is a rune, false if iteration is complete.
func (it *ReverseRuneIterator) Next() bool {
	if it.end <= 0 {
		return false
	}
	it.r, it.size = utf8.DecodeLastRuneInString(it.s[:it.end])
	it.end -= it.size
	return true
}

// Rune returns the current rune.
func (it *ReverseRuneIterator) Rune() rune {
	return it.r
}

// Offset returns the byte offset of the current rune.
func (it *ReverseRuneIterator) Offset() int {
	return it.end
}
