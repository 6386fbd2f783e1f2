package sharedstring

import "github.com/cespare/xxhash/v2"

// Hash returns a 64-bit content hash. Values with equal content hash
// identically whether or not they share a buffer, so Hash pairs with Equal
// for use in hash-based containers. Unbound and empty values hash the same.
func (s String) Hash() uint64 {
	return xxhash.Sum64String(s.Str())
}
