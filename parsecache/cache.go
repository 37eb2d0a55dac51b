// Package parsecache memoizes parser.Parser.ParseChain by the blake3 hash
// of the raw input bytes, for callers batch-parsing a molecule library that
// repeats identical SMILES strings. It is a pure performance supplement:
// spec.md §5's reentrancy guarantee still holds, since every cached
// *ast.Chain is read-only after construction and every cache access is
// mutex-guarded.
package parsecache

import (
	"sync"

	"lukechampine.com/blake3"

	"github.com/arvochem/smiles/ast"
	"github.com/arvochem/smiles/parser"
)

type entry struct {
	chain     *ast.Chain
	remaining []byte
}

// Cache is safe for concurrent use by multiple goroutines.
type Cache struct {
	mu      sync.RWMutex
	entries map[[32]byte]entry
}

// New returns an empty Cache.
func New() *Cache {
	return &Cache{entries: make(map[[32]byte]entry)}
}

// ParseChain hashes input and returns a cached result on hit; otherwise it
// delegates to p.ParseChain and stores the result (only on success — parse
// errors are never cached, since a caller retrying with a different parser
// configuration shouldn't see a stale failure).
func (c *Cache) ParseChain(p *parser.Parser, input []byte) (*ast.Chain, []byte, error) {
	key := blake3.Sum256(input)

	c.mu.RLock()
	if e, ok := c.entries[key]; ok {
		c.mu.RUnlock()
		return e.chain, e.remaining, nil
	}
	c.mu.RUnlock()

	chain, remaining, err := p.ParseChain(input)
	if err != nil {
		return nil, remaining, err
	}

	c.mu.Lock()
	c.entries[key] = entry{chain: chain, remaining: remaining}
	c.mu.Unlock()
	return chain, remaining, nil
}

// Len reports the number of distinct inputs currently cached.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
