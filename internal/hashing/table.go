package hashing

import (
	"sync"
)

type entryKey struct {
	hash  uint64
	depth int
}

// Table maps a position key and search depth to a stored count. It is safe
// for concurrent use, so parallel perft workers can share one table.
type Table struct {
	mu          sync.RWMutex
	entries     map[entryKey]uint64
	maxCapacity int
	hits        int
	misses      int
}

// NewTable creates a table. maxCapacity of 0 means unlimited capacity;
// once full, new entries are dropped and existing ones are kept.
func NewTable(maxCapacity int) *Table {
	if maxCapacity < 0 {
		maxCapacity = 0
	}
	return &Table{
		entries:     make(map[entryKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Get returns the count stored for hash at depth.
func (t *Table) Get(hash uint64, depth int) (uint64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	n, ok := t.entries[entryKey{hash, depth}]
	if ok {
		t.hits++
	} else {
		t.misses++
	}
	return n, ok
}

// Put stores count for hash at depth unless the table is full.
func (t *Table) Put(hash uint64, depth int, count uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	key := entryKey{hash, depth}
	if _, ok := t.entries[key]; !ok && t.isFull() {
		return
	}
	t.entries[key] = count
}

// Len returns the number of stored entries.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Stats returns the lookup hit and miss counts.
func (t *Table) Stats() (hits, misses int) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.hits, t.misses
}

// IsFull reports whether the table has reached its capacity limit.
// Always false for unlimited capacity.
func (t *Table) IsFull() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.isFull()
}

func (t *Table) isFull() bool {
	return t.maxCapacity > 0 && len(t.entries) >= t.maxCapacity
}
