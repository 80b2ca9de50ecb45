// Package storage owns the on-disk representation of the file backend: one
// JSON array file per record collection, read and written whole. There is no
// locking; two concurrent writers perform read-modify-write independently and
// the later write wins.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Collection is a whole-file JSON array of records of type T.
type Collection[T any] struct {
	path string
}

func NewCollection[T any](path string) *Collection[T] {
	return &Collection[T]{path: path}
}

// Load reads the whole collection. On first use, a missing file is
// initialized to an empty collection. Corrupt content is a hard error:
// callers must not silently discard persisted state.
func (c *Collection[T]) Load() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if err := os.WriteFile(c.path, []byte("[]"), 0o660); err != nil {
				return nil, fmt.Errorf("init %s: %w", c.path, err)
			}
			return []T{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", c.path, err)
	}

	if len(data) == 0 {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.path, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Save replaces the whole collection on disk. The write is all-or-nothing for
// the collection; records are pretty-printed to keep the files inspectable.
func (c *Collection[T]) Save(items []T) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.path, err)
	}
	if err := os.WriteFile(c.path, data, 0o660); err != nil {
		return fmt.Errorf("write %s: %w", c.path, err)
	}
	return nil
}
