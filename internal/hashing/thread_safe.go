package hashing

import (
	"sync"
)

// Cache is what subtree counting needs from a table.
type Cache interface {
	Probe(key uint64, depth int) (uint64, bool)
	Store(key uint64, depth int, nodes uint64)
}

// SyncTable wraps Table with mutex protection for concurrent workers.
type SyncTable struct {
	table *Table
	mu    sync.Mutex
}

// NewSyncTable creates a new thread-safe table.
// maxCapacity of 0 means unlimited capacity.
func NewSyncTable(maxCapacity int) *SyncTable {
	return &SyncTable{
		table: NewTable(maxCapacity),
	}
}

// Probe returns the cached count for key at depth.
func (s *SyncTable) Probe(key uint64, depth int) (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.Probe(key, depth)
}

// Store records the count for key at depth.
func (s *SyncTable) Store(key uint64, depth int, nodes uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table.Store(key, depth, nodes)
}

// Len returns the number of stored entries.
func (s *SyncTable) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.Len()
}

// Hits returns the number of successful probes.
func (s *SyncTable) Hits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.Hits()
}
