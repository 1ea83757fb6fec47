// Package intern provides reference-counted string interning, so a sheet
// holding many cells with repeated text (the same label copied down a
// column, the same literal repeated across a report) stores each distinct
// string once.
package intern

// Table interns strings against small integer IDs and reference-counts
// each one, releasing the backing string once its last reference is
// dropped.
type Table struct {
	strings    map[string]uint32
	reverseMap map[uint32]string
	refCounts  map[uint32]int
	nextID     uint32
}

// New creates an empty Table.
func New() *Table {
	return &Table{
		strings:    make(map[string]uint32),
		reverseMap: make(map[uint32]string),
		refCounts:  make(map[uint32]int),
		nextID:     1, // reserve 0 for "no string"
	}
}

// Intern adds s to the table, or increments its reference count if it is
// already present, and returns its ID.
func (t *Table) Intern(s string) uint32 {
	if id, exists := t.strings[s]; exists {
		t.refCounts[id]++
		return id
	}
	id := t.nextID
	t.strings[s] = id
	t.reverseMap[id] = s
	t.refCounts[id] = 1
	t.nextID++
	return id
}

// Get retrieves the string stored under id.
func (t *Table) Get(id uint32) (string, bool) {
	s, ok := t.reverseMap[id]
	return s, ok
}

// Release decrements id's reference count, removing the string once the
// count reaches zero. Reports whether the string was removed.
func (t *Table) Release(id uint32) bool {
	s, exists := t.reverseMap[id]
	if !exists {
		return false
	}
	t.refCounts[id]--
	if t.refCounts[id] <= 0 {
		delete(t.strings, s)
		delete(t.reverseMap, id)
		delete(t.refCounts, id)
		return true
	}
	return false
}

// Count returns the number of distinct strings currently interned.
func (t *Table) Count() int {
	return len(t.strings)
}
