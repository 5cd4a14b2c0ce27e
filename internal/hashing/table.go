package hashing

// entry is one cached subtree count.
type entry struct {
	Key   uint64
	Depth int
	Nodes uint64
}

// Table caches subtree node counts by position key and depth.
// It is not safe for concurrent use; see SyncTable.
type Table struct {
	entries     map[uint64][]entry
	maxCapacity int // 0 = unlimited
	size        int
	hits        int
}

// NewTable creates a table. maxCapacity of 0 means unlimited; once full,
// Store drops new entries.
func NewTable(maxCapacity int) *Table {
	return &Table{
		entries:     make(map[uint64][]entry),
		maxCapacity: maxCapacity,
	}
}

// Probe returns the cached count for key at depth.
func (t *Table) Probe(key uint64, depth int) (uint64, bool) {
	for _, e := range t.entries[key] {
		if e.Depth == depth {
			t.hits++
			return e.Nodes, true
		}
	}
	return 0, false
}

// Store records the count for key at depth. An existing entry is kept.
func (t *Table) Store(key uint64, depth int, nodes uint64) {
	for _, e := range t.entries[key] {
		if e.Depth == depth {
			return
		}
	}
	if t.IsFull() {
		return
	}
	t.entries[key] = append(t.entries[key], entry{Key: key, Depth: depth, Nodes: nodes})
	t.size++
}

// Len returns the number of stored entries.
func (t *Table) Len() int {
	return t.size
}

// Hits returns the number of successful probes.
func (t *Table) Hits() int {
	return t.hits
}

// IsFull returns true if the table has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (t *Table) IsFull() bool {
	return t.maxCapacity > 0 && t.size >= t.maxCapacity
}

// Reset clears the table.
func (t *Table) Reset() {
	t.entries = make(map[uint64][]entry)
	t.size = 0
	t.hits = 0
}
