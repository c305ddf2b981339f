package clientstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// FileStore is a Store backed by a single JSON file, written through on
// every mutation so state survives process restarts the way localStorage
// survives page loads.
type FileStore struct {
	path   string
	values map[string]string
}

// OpenFileStore loads the store file at path, creating state for a missing
// file lazily on first write
func OpenFileStore(path string) (*FileStore, error) {
	store := &FileStore{
		path:   path,
		values: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return store, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading store file: %w", err)
	}

	if err := json.Unmarshal(data, &store.values); err != nil {
		return nil, fmt.Errorf("parsing store file %s: %w", path, err)
	}
	return store, nil
}

func (f *FileStore) Get(key string) (string, bool) {
	value, ok := f.values[key]
	return value, ok
}

func (f *FileStore) Set(key, value string) error {
	f.values[key] = value
	return f.save()
}

func (f *FileStore) Delete(key string) error {
	delete(f.values, key)
	return f.save()
}

func (f *FileStore) save() error {
	data, err := json.Marshal(f.values)
	if err != nil {
		return fmt.Errorf("encoding store: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("writing store file: %w", err)
	}
	return nil
}
