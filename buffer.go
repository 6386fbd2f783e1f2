package sharedstring

import (
	"sync/atomic"
	"unicode/utf8"
)

// summary holds metrics precomputed when a buffer is built, so that
// rune-level queries don't rescan the content.
type summary struct {
	runes int
	ascii bool
}

// computeSummary scans content once and records its metrics.
func computeSummary(s string) summary {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return summary{runes: utf8.RuneCountInString(s), ascii: false}
		}
	}
	return summary{runes: len(s), ascii: true}
}

// buf is the ownership block for one immutable backing buffer. The payload
// is never modified after newBuf returns; only the reference count changes.
//
// The count tracks explicit handles: each constructor, Clone, and aliasing
// Substr adds one, each Drop, Reset, and rebind removes one. When the count
// reaches zero the optional onRelease hook fires exactly once. Actual memory
// reclamation is the garbage collector's job; the hook exists so callers
// (and tests) can observe the moment the last handle lets go.
type buf struct {
	data    string
	summary summary
	refs    atomic.Int64

	// onRelease, if set, is called when the reference count drops to zero.
	onRelease func()
}

// newBuf builds a buffer holding content with a reference count of one.
func newBuf(content string) *buf {
	b := &buf{data: content, summary: computeSummary(content)}
	b.refs.Store(1)
	return b
}

// newBufWithHook builds a buffer whose hook fires when the last reference
// is released, for observing buffer lifetime.
func newBufWithHook(content string, hook func()) *buf {
	b := newBuf(content)
	b.onRelease = hook
	return b
}

// retain adds one reference. Safe on a nil buffer.
func (b *buf) retain() {
	if b == nil {
		return
	}
	b.refs.Add(1)
}

// release removes one reference and fires the release hook if this was the
// last one. Safe on a nil buffer.
func (b *buf) release() {
	if b == nil {
		return
	}
	if b.refs.Add(-1) == 0 && b.onRelease != nil {
		b.onRelease()
	}
}
