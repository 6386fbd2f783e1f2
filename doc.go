// Package sharedstring provides an immutable, reference-counted string value
// that shares its backing storage across copies.
//
// A String behaves like an ordinary read-only string, but duplicating it is
// O(1): copies share a single immutable backing buffer instead of copying
// content. Anything that would change a String's content (Assign, Reset,
// stream extraction) rebinds the value to a fresh buffer and never touches
// the one it previously referenced, so aliased values held elsewhere are
// unaffected.
//
// Key properties:
//   - Clone is O(1); content is never copied when sharing
//   - Buffers are immutable once built; concurrent reads need no locking
//   - Full-range Substr aliases the existing buffer; partial Substr copies
//   - Equality and hashing are content-based, independent of sharing
//   - The backing buffer's reference count uses atomic operations, so
//     aliased values may be cloned, read, and dropped from many goroutines
//
// Basic usage:
//
//	a := sharedstring.New("hello world")
//	b := a.Clone()                // shares a's buffer, no allocation
//	b.Assign("goodbye")           // rebinds b; a still reads "hello world"
//	sub, _ := a.Substr(0, -1)     // full range: aliases a's buffer
//	part, _ := a.Substr(6, 5)     // "world", independent copy
//
// Rebinding a single String variable from multiple goroutines concurrently
// is not safe without external synchronization; the thread-safety guarantee
// covers the shared buffer, not the variable holding the handle.
package sharedstring
