// Package strpool implements a dense string-interning pool.
//
// Two independent pools live in the cross-reference graph: one for symbol
// qualified names, one for file paths. Their value distributions and
// iteration needs differ enough that co-interning buys nothing.
package strpool

// Pool interns strings and returns dense, monotonically assigned indices.
// A Pool is not safe for concurrent use; callers serialize access (the
// graph's single-writer build phase, then read-only).
type Pool struct {
	index  map[string]uint32
	values []string
}

// New returns an empty pool.
func New() *Pool {
	return &Pool{index: make(map[string]uint32)}
}

// Intern returns the dense index for s, inserting it if not already present.
func (p *Pool) Intern(s string) uint32 {
	if idx, ok := p.index[s]; ok {
		return idx
	}
	idx := uint32(len(p.values))
	p.values = append(p.values, s)
	p.index[s] = idx
	return idx
}

// Get returns the string at idx. Behavior is undefined for an
// out-of-range idx; callers never produce one.
func (p *Pool) Get(idx uint32) string {
	return p.values[idx]
}

// Find looks up s without inserting it. ok is false if s was never interned.
func (p *Pool) Find(s string) (idx uint32, ok bool) {
	idx, ok = p.index[s]
	return idx, ok
}

// Len returns the number of interned strings.
func (p *Pool) Len() int {
	return len(p.values)
}

// All returns the interned strings in insertion order. The returned slice
// is owned by the pool; callers must not mutate it.
func (p *Pool) All() []string {
	return p.values
}
