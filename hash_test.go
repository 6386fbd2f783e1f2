package sharedstring

import (
	"testing"

	"github.com/cespare/xxhash/v2"
)

func TestHashIsContentBased(t *testing.T) {
	a := New("x")
	b := New("x")
	c := a.Clone()

	if a.Hash() != b.Hash() {
		t.Error("independent buffers with equal content should hash identically")
	}
	if a.Hash() != c.Hash() {
		t.Error("aliased values should hash identically")
	}
	if a.Hash() != xxhash.Sum64String("x") {
		t.Error("hash should equal the hash of the content view")
	}
}

func TestHashDistinguishesContent(t *testing.T) {
	if New("alpha").Hash() == New("beta").Hash() {
		t.Error("distinct content hashed equal")
	}
}

func TestHashOfEmpty(t *testing.T) {
	var unbound String
	if unbound.Hash() != New("").Hash() {
		t.Error("unbound and empty-buffer values should hash identically")
	}
}

func TestHashAsContainerKey(t *testing.T) {
	buckets := map[uint64][]String{}
	for _, v := range []string{"a", "b", "a", "c", "b", "a"} {
		s := New(v)
		h := s.Hash()
		found := false
		for _, existing := range buckets[h] {
			if existing.Equal(s) {
				found = true
				break
			}
		}
		if !found {
			buckets[h] = append(buckets[h], s)
		}
	}

	distinct := 0
	for _, b := range buckets {
		distinct += len(b)
	}
	if distinct != 3 {
		t.Errorf("hash container held %d distinct values, want 3", distinct)
	}
}
