// Package memory implements the repositories on process-local storage.
// Data lives as long as the process; every store hands out copies only.
package memory

import (
	"slices"
	"sync"
)

// table is a concurrency-safe, id-ordered row set with its own id counter.
// Ids start at 1 and are never reused, even after deletion.
type table[T any] struct {
	mu     sync.RWMutex
	rows   []T
	lastID int64

	idOf  func(T) int64
	clone func(T) T
}

func newTable[T any](idOf func(T) int64, clone func(T) T) *table[T] {
	return &table[T]{idOf: idOf, clone: clone}
}

func (t *table[T]) all() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, len(t.rows))
	for i, r := range t.rows {
		out[i] = t.clone(r)
	}
	return out
}

func (t *table[T]) filter(keep func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0)
	for _, r := range t.rows {
		if keep(r) {
			out = append(out, t.clone(r))
		}
	}
	return out
}

func (t *table[T]) find(id int64) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if i := t.index(id); i >= 0 {
		return t.clone(t.rows[i]), true
	}
	var zero T
	return zero, false
}

// findFirst returns the first row matching pred.
func (t *table[T]) findFirst(pred func(T) bool) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, r := range t.rows {
		if pred(r) {
			return t.clone(r), true
		}
	}
	var zero T
	return zero, false
}

// insert assigns the next id and appends the row built for it.
// check runs under the write lock and may veto the insert.
func (t *table[T]) insert(check func(rows []T) error, build func(id int64) T) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if check != nil {
		if err := check(t.rows); err != nil {
			var zero T
			return zero, err
		}
	}

	t.lastID++
	row := build(t.lastID)
	t.rows = append(t.rows, t.clone(row))
	return t.clone(row), nil
}

func (t *table[T]) update(id int64, apply func(*T)) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.index(id)
	if i < 0 {
		var zero T
		return zero, false
	}
	apply(&t.rows[i])
	return t.clone(t.rows[i]), true
}

func (t *table[T]) remove(id int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.index(id)
	if i < 0 {
		return false
	}
	t.rows = slices.Delete(t.rows, i, i+1)
	return true
}

func (t *table[T]) count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

// index must be called with the lock held.
func (t *table[T]) index(id int64) int {
	return slices.IndexFunc(t.rows, func(r T) bool { return t.idOf(r) == id })
}
