// SPDX-License-Identifier: MIT
// Package: lvmesh/mesh
//
// journal.go — undo-journalled tables behind every transaction.
//
// Contract:
//   • Pre-images are saved on first write; removals are deferred to commit.
//   • No arena slot is recycled while a transaction can still roll back.

package mesh

import "github.com/katalvlaran/lvmesh/arena"

// table wraps an arena with an undo journal.
//
// Outside a transaction every call goes straight to the arena. Inside one,
// the first write to an existing record saves its pre-image, inserts are
// remembered, and removals are deferred until commit so that no slot is
// recycled while the transaction may still roll back.
type table[T any] struct {
	store *arena.Arena[T]

	open    bool
	before  map[arena.Key]T
	added   []arena.Key
	isNew   map[arena.Key]bool
	removed []arena.Key
	gone    map[arena.Key]bool
}

func newTable[T any]() *table[T] {
	return &table[T]{store: arena.New[T]()}
}

func (t *table[T]) begin() {
	t.open = true
	t.before = make(map[arena.Key]T)
	t.isNew = make(map[arena.Key]bool)
	t.gone = make(map[arena.Key]bool)
	t.added = t.added[:0]
	t.removed = t.removed[:0]
}

func (t *table[T]) get(k arena.Key) (T, error) {
	if t.open && t.gone[k] {
		var zero T
		return zero, arena.ErrStaleKey
	}
	return t.store.Get(k)
}

func (t *table[T]) contains(k arena.Key) bool {
	_, err := t.get(k)
	return err == nil
}

func (t *table[T]) insert(v T) arena.Key {
	k := t.store.Insert(v)
	if t.open {
		t.added = append(t.added, k)
		t.isNew[k] = true
	}
	return k
}

func (t *table[T]) set(k arena.Key, v T) error {
	if t.open {
		if t.gone[k] {
			return arena.ErrStaleKey
		}
		if !t.isNew[k] {
			if _, saved := t.before[k]; !saved {
				old, err := t.store.Get(k)
				if err != nil {
					return err
				}
				t.before[k] = old
			}
		}
	}
	return t.store.Set(k, v)
}

func (t *table[T]) remove(k arena.Key) error {
	if !t.open {
		_, err := t.store.Remove(k)
		return err
	}
	if t.gone[k] {
		return arena.ErrStaleKey
	}
	if !t.store.Contains(k) {
		_, err := t.store.Get(k)
		return err
	}
	t.gone[k] = true
	t.removed = append(t.removed, k)
	return nil
}

// len counts live records, excluding pending removals.
func (t *table[T]) len() int {
	return t.store.Len() - len(t.removed)
}

// keys lists live records in slot order, excluding pending removals.
func (t *table[T]) keys() []arena.Key {
	all := t.store.Keys()
	if !t.open || len(t.gone) == 0 {
		return all
	}
	out := all[:0]
	for _, k := range all {
		if !t.gone[k] {
			out = append(out, k)
		}
	}
	return out
}

// dirty reports whether the open transaction wrote anything.
func (t *table[T]) dirty() bool {
	return len(t.added) > 0 || len(t.before) > 0 || len(t.removed) > 0
}

// touched lists live keys that were inserted or modified in the open
// transaction.
func (t *table[T]) touched() []arena.Key {
	out := make([]arena.Key, 0, len(t.added)+len(t.before))
	for _, k := range t.added {
		if !t.gone[k] {
			out = append(out, k)
		}
	}
	for k := range t.before {
		if !t.gone[k] {
			out = append(out, k)
		}
	}
	return out
}

// commit applies deferred removals and returns the (added, removed) delta.
func (t *table[T]) commit() (added, removed []arena.Key) {
	for _, k := range t.removed {
		if !t.isNew[k] {
			removed = append(removed, k)
		}
		_, _ = t.store.Remove(k)
	}
	for _, k := range t.added {
		if !t.gone[k] {
			added = append(added, k)
		}
	}
	t.close()
	return added, removed
}

// rollback restores every pre-image and drops inserted records.
func (t *table[T]) rollback() {
	for k, v := range t.before {
		_ = t.store.Set(k, v)
	}
	for _, k := range t.added {
		_, _ = t.store.Remove(k)
	}
	t.close()
}

func (t *table[T]) close() {
	t.open = false
	t.before = nil
	t.isNew = nil
	t.gone = nil
	t.added = t.added[:0]
	t.removed = t.removed[:0]
}

func (t *table[T]) clone() *table[T] {
	return &table[T]{store: t.store.Clone()}
}
