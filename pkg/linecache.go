// Package pkg is a package that provides utilities for cobble.
package pkg

import (
	"log/slog"
	"sync"
)

// LineCache is a generic cache of per-line values indexed by line
// number. Entries are dense: the cache grows to cover the highest index
// written, and lines that were never computed report a miss.
type LineCache[T any] interface {
	Len() int
	Get(index int) (T, bool)
	Put(index int, value T)
	Drop(index int)
	Insert(index int, value T)
	Remove(index int)
	Truncate(length int)
	Range(f func(index int, value T) error) error
}

type lineCacheImpl[T any] struct {
	mu      sync.Mutex
	entries []lineEntry[T]
}

type lineEntry[T any] struct {
	value T
	set   bool
}

// NewLineCache constructs an empty LineCache.
func NewLineCache[T any]() LineCache[T] {
	return &lineCacheImpl[T]{}
}

// Len implements LineCache. It reports the number of lines the cache
// covers, including uncomputed gaps.
func (c *lineCacheImpl[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Get implements LineCache.
func (c *lineCacheImpl[T]) Get(index int) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 0 || index >= len(c.entries) || !c.entries[index].set {
		var zero T
		return zero, false
	}

	return c.entries[index].value, true
}

// Put implements LineCache.
func (c *lineCacheImpl[T]) Put(index int, value T) {
	if index < 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for len(c.entries) <= index {
		c.entries = append(c.entries, lineEntry[T]{})
	}

	c.entries[index] = lineEntry[T]{value: value, set: true}
	slog.Debug("cached line entry", "index", index)
}

// Drop implements LineCache. It marks a single line uncomputed without
// shifting later entries.
func (c *lineCacheImpl[T]) Drop(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 0 || index >= len(c.entries) {
		return
	}

	c.entries[index] = lineEntry[T]{}
	slog.Debug("dropped line entry", "index", index)
}

// Insert implements LineCache. It makes room for a new line at index,
// shifting later entries down so their cached values stay aligned with
// their lines.
func (c *lineCacheImpl[T]) Insert(index int, value T) {
	if index < 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for len(c.entries) < index {
		c.entries = append(c.entries, lineEntry[T]{})
	}

	c.entries = append(c.entries, lineEntry[T]{})
	copy(c.entries[index+1:], c.entries[index:])
	c.entries[index] = lineEntry[T]{value: value, set: true}
}

// Remove implements LineCache. It deletes the entry for a removed line,
// shifting later entries up.
func (c *lineCacheImpl[T]) Remove(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 0 || index >= len(c.entries) {
		return
	}

	c.entries = append(c.entries[:index], c.entries[index+1:]...)
}

// Truncate implements LineCache. It discards entries for lines at or
// beyond length, for when the document shrinks.
func (c *lineCacheImpl[T]) Truncate(length int) {
	if length < 0 {
		length = 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if length < len(c.entries) {
		c.entries = c.entries[:length]
	}
}

// Range implements LineCache. It visits computed entries in line order
// and stops at the first error.
func (c *lineCacheImpl[T]) Range(f func(index int, value T) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, entry := range c.entries {
		if !entry.set {
			continue
		}

		if err := f(i, entry.value); err != nil {
			return err
		}
	}

	return nil
}
