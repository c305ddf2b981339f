// Package clientstore is the browser-local persistence layer of the site:
// a string key-value store that survives page loads, plus typed accessors
// for each key the site uses. All form and navigation state shared between
// independently loaded pages goes through here.
package clientstore

// Store is a persistent string key-value store with localStorage semantics:
// absent keys read as absent, writes overwrite, deletes are idempotent.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// MemoryStore is an in-process Store, used in tests and as a fallback when
// no persistent backing is available
type MemoryStore struct {
	values map[string]string
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, bool) {
	value, ok := m.values[key]
	return value, ok
}

func (m *MemoryStore) Set(key, value string) error {
	m.values[key] = value
	return nil
}

func (m *MemoryStore) Delete(key string) error {
	delete(m.values, key)
	return nil
}
