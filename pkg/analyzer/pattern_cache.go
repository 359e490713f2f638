package analyzer

// DefaultPatternCacheSize bounds the number of remembered sequence signatures.
const DefaultPatternCacheSize = 512

// PatternCache remembers interaction-sequence signatures that have already
// been seen. Once full, the oldest signature is forgotten first.
type PatternCache struct {
	seen  map[string]struct{}
	order []string
	next  int
	full  bool
}

// NewPatternCache returns a cache holding up to capacity signatures. A
// capacity of zero or less means unbounded.
func NewPatternCache(capacity int) *PatternCache {
	c := &PatternCache{seen: make(map[string]struct{})}
	if capacity > 0 {
		c.order = make([]string, capacity)
	}
	return c
}

// Observe records sig and reports whether it was not seen before.
func (c *PatternCache) Observe(sig string) bool {
	if _, ok := c.seen[sig]; ok {
		return false
	}
	c.seen[sig] = struct{}{}
	if c.order == nil {
		return true
	}
	if c.full {
		delete(c.seen, c.order[c.next])
	}
	c.order[c.next] = sig
	c.next++
	if c.next == len(c.order) {
		c.next = 0
		c.full = true
	}
	return true
}

func (c *PatternCache) Len() int { return len(c.seen) }
