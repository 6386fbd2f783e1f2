// Package intern provides a deduplicating pool of sharedstring values.
//
// A Pool hands out one canonical shared String per distinct content, so
// callers that see the same text repeatedly (protocol field names, file
// paths, log keys) hold aliases of a single backing buffer instead of many
// identical allocations.
package intern

import (
	"sync"

	"github.com/dshills/sharedstring"
)

// Pool deduplicates string content into canonical shared values.
// It is safe for concurrent use.
type Pool struct {
	minLength  int
	minOccurs  int
	maxEntries int

	mu      sync.RWMutex
	counts  map[string]int
	entries map[string]sharedstring.String
	hits    uint64
	misses  uint64
}

// Option is a functional option for configuring a Pool.
type Option func(*Pool)

// WithMinLength sets the minimum content length considered for interning.
// Shorter strings are returned as fresh values without pool bookkeeping.
func WithMinLength(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.minLength = n
		}
	}
}

// WithMinOccurs sets how many times content must be seen before it is
// interned. The default of 1 interns on first sight.
func WithMinOccurs(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.minOccurs = n
		}
	}
}

// WithMaxEntries caps the number of canonical entries. Once full, new
// content is returned uninterned. Zero means unlimited.
func WithMaxEntries(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.maxEntries = n
		}
	}
}

// NewPool creates an empty pool.
func NewPool(opts ...Option) *Pool {
	p := &Pool{
		minOccurs: 1,
		counts:    make(map[string]int),
		entries:   make(map[string]sharedstring.String),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Intern returns a shared String for content. Repeated calls with equal
// content return aliases of one canonical buffer once the occurrence
// threshold is met; otherwise a fresh value is returned.
func (p *Pool) Intern(content string) sharedstring.String {
	if len(content) < p.minLength {
		return sharedstring.New(content)
	}

	// Fast path: already canonical.
	p.mu.RLock()
	if canon, ok := p.entries[content]; ok {
		p.mu.RUnlock()
		p.recordHit()
		return canon.Clone()
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()

	// Re-check after taking the write lock.
	if canon, ok := p.entries[content]; ok {
		p.hits++
		return canon.Clone()
	}
	p.misses++

	if p.minOccurs > 1 {
		p.counts[content]++
		if p.counts[content] < p.minOccurs {
			return sharedstring.New(content)
		}
		delete(p.counts, content)
	}
	if p.maxEntries > 0 && len(p.entries) >= p.maxEntries {
		return sharedstring.New(content)
	}

	canon := sharedstring.New(content)
	p.entries[content] = canon
	return canon.Clone()
}

// InternBytes interns a byte slice. The bytes are copied.
func (p *Pool) InternBytes(content []byte) sharedstring.String {
	return p.Intern(string(content))
}

func (p *Pool) recordHit() {
	p.mu.Lock()
	p.hits++
	p.mu.Unlock()
}

// Len returns the number of canonical entries.
func (p *Pool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.entries)
}

// Stats reports pool effectiveness counters.
type Stats struct {
	Entries int
	Hits    uint64
	Misses  uint64
}

// Stats returns a snapshot of the pool's counters.
func (p *Pool) Stats() Stats {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return Stats{Entries: len(p.entries), Hits: p.hits, Misses: p.misses}
}

// Reset drops every canonical entry and clears the counters. Values handed
// out earlier keep their buffers; only the pool's own references are
// released.
func (p *Pool) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for k, canon := range p.entries {
		canon.Drop()
		delete(p.entries, k)
	}
	p.counts = make(map[string]int)
	p.hits = 0
	p.misses = 0
}
