package storage

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

var (
	// ErrNotFound reports a lookup that matched no record.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists reports an insert whose natural key is taken.
	ErrAlreadyExists = errors.New("record already exists")
)

// collection is a file-backed slice of records of one entity type. Records
// are stored and returned by value; a caller never holds a reference into
// the collection.
type collection[T any] struct {
	path  string
	log   zerolog.Logger
	mu    sync.RWMutex
	items []T
}

func openCollection[T any](path string, log zerolog.Logger) (*collection[T], error) {
	c := &collection[T]{path: path, log: log}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		c.items = []T{}
		log.Info().Str("file", path).Msg("store file absent, starting empty")
		return c, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &c.items); err != nil {
		return nil, err
	}
	log.Info().Str("file", path).Int("records", len(c.items)).Msg("store loaded")
	return c, nil
}

// save rewrites the backing file; callers hold the write lock.
func (c *collection[T]) save() error {
	data, err := json.MarshalIndent(c.items, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0o644)
}

func (c *collection[T]) all() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *collection[T]) filter(pred func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := []T{}
	for _, it := range c.items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out
}

func (c *collection[T]) find(match func(T) bool) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, it := range c.items {
		if match(it) {
			return it, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

func (c *collection[T]) add(item T, taken func(T) bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, it := range c.items {
		if taken(it) {
			return ErrAlreadyExists
		}
	}
	c.items = append(c.items, item)
	return c.save()
}

func (c *collection[T]) replace(match func(T) bool, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, it := range c.items {
		if match(it) {
			c.items[i] = item
			return c.save()
		}
	}
	return ErrNotFound
}

func (c *collection[T]) remove(match func(T) bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, it := range c.items {
		if match(it) {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return c.save()
		}
	}
	return ErrNotFound
}
