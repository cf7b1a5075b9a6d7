package dptx

import (
	"maps"
	"slices"
	"sync"
)

var (
	mu       sync.RWMutex
	registry = map[string]*Subtype{}
)

// Register adds a subtype to the process wide catalog.
// An existing entry with the same id is replaced.
func Register(st *Subtype) {
	if st == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	registry[st.id] = st
}

// Lookup returns the registered subtype with the given id.
func Lookup(id string) (*Subtype, bool) {
	mu.RLock()
	defer mu.RUnlock()
	st, ok := registry[id]
	return st, ok
}

// SubTypes returns a copy of the catalog keyed by subtype id.
func SubTypes() map[string]*Subtype {
	mu.RLock()
	defer mu.RUnlock()
	return maps.Clone(registry)
}

// IDs returns the registered subtype ids in sorted order.
func IDs() []string {
	mu.RLock()
	defer mu.RUnlock()
	return slices.Sorted(maps.Keys(registry))
}
