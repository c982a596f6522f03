// Package store provides the persistence layer for Daybook: an ordered
// in-memory list per entity kind, mirrored to a single JSON document and
// published to observers on every mutation.
//
// Persistence is best-effort by contract. A store that cannot read its
// backing file starts empty, and a failed write is swallowed; both are
// recorded at debug level only. Data volumes are personal-scale, so every
// mutation rewrites the whole document.
//
// A Store is not safe for concurrent use. Callers own serialization: CLI
// commands run on a single goroutine, and the TUI marshals results onto
// its message loop before touching a store.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"

	"github.com/daybook-cli/daybook/internal/logging"
	"github.com/daybook-cli/daybook/internal/model"
)

// Store maintains the ordered sequence of one entity kind, newest first.
type Store[T model.Entity] struct {
	path    string
	items   []T
	subs    map[int]func([]T)
	nextSub int
}

// Open creates a store backed by the given file and loads it best-effort.
// A missing, unreadable, or malformed file yields an empty store.
func Open[T model.Entity](path string) *Store[T] {
	s := &Store[T]{
		path: path,
		subs: make(map[int]func([]T)),
	}
	s.load()
	return s
}

// Path returns the backing file path.
func (s *Store[T]) Path() string {
	return s.path
}

// Items returns a snapshot copy of the current sequence, newest first.
func (s *Store[T]) Items() []T {
	return slices.Clone(s.items)
}

// Len returns the number of items in the store.
func (s *Store[T]) Len() int {
	return len(s.items)
}

// Get returns the item with the given id.
func (s *Store[T]) Get(id string) (T, bool) {
	for _, item := range s.items {
		if item.EntityID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Add inserts item at the front of the sequence, persists, and notifies.
func (s *Store[T]) Add(item T) {
	s.items = append([]T{item}, s.items...)
	s.save()
	s.notify()
}

// Update replaces the item with a matching id in place, preserving its
// position, then persists and notifies. Unknown ids are a silent no-op.
func (s *Store[T]) Update(item T) {
	for i := range s.items {
		if s.items[i].EntityID() == item.EntityID() {
			s.items[i] = item
			s.save()
			s.notify()
			return
		}
	}
}

// Remove deletes the item with the given id, persists, and notifies.
// Removing an absent id is a no-op, so Remove is idempotent.
func (s *Store[T]) Remove(id string) {
	for i := range s.items {
		if s.items[i].EntityID() == id {
			s.items = slices.Delete(s.items, i, i+1)
			s.save()
			s.notify()
			return
		}
	}
}

// RemoveAt deletes the items at the given positions, persists, and
// notifies. Out-of-range positions are ignored.
func (s *Store[T]) RemoveAt(indexes ...int) {
	keep := s.items[:0:0]
	removed := false
	for i, item := range s.items {
		if slices.Contains(indexes, i) {
			removed = true
			continue
		}
		keep = append(keep, item)
	}
	if !removed {
		return
	}
	s.items = keep
	s.save()
	s.notify()
}

// Subscribe registers an observer invoked with a snapshot after every
// mutation. The returned func cancels the subscription.
func (s *Store[T]) Subscribe(fn func([]T)) func() {
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		delete(s.subs, id)
	}
}

func (s *Store[T]) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Debug("store load failed, starting empty", "path", s.path, "error", err)
		}
		return
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		logging.Debug("store decode failed, starting empty", "path", s.path, "error", err)
		return
	}
	s.items = items
}

// save rewrites the whole backing document. Failures are swallowed by
// contract; callers must treat persistence as best-effort.
func (s *Store[T]) save() {
	items := s.items
	if items == nil {
		items = []T{}
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		logging.Debug("store encode failed", "path", s.path, "error", err)
		return
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		logging.Debug("store mkdir failed", "path", s.path, "error", err)
		return
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		logging.Debug("store write failed", "path", s.path, "error", err)
	}
}

func (s *Store[T]) notify() {
	if len(s.subs) == 0 {
		return
	}
	snapshot := s.Items()
	for _, fn := range s.subs {
		fn(snapshot)
	}
}
