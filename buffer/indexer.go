// SPDX-License-Identifier: MIT
// Package: lvmesh/buffer
//
// indexer.go — vertex deduplication for polygon soups.
//
// An Indexer assigns buffer indices to vertex keys. A key seen before gets
// its old index back; a new key gets the next free index and the caller
// appends the vertex to the vertex buffer.
//
//   • HashIndexer remembers every key: exact deduplication, O(V) memory.
//   • LRUIndexer remembers the most recent Capacity keys only. A key that
//     fell out of the window is indexed again, so its vertex is emitted
//     twice. Good for streams with strong locality (strips, grids).

package buffer

import (
	"container/list"
	"fmt"
	"iter"
)

// DefaultLRUCapacity is the window used by NewLRUIndexer for non-positive
// capacities.
const DefaultLRUCapacity = 16

// Indexer maps vertex keys to buffer indices.
type Indexer[K comparable] interface {
	// Index returns the index for key and whether it was newly assigned.
	Index(key K) (index int, fresh bool)
}

// HashIndexer deduplicates every key it has ever seen.
type HashIndexer[K comparable] struct {
	seen map[K]int
	n    int
}

// NewHashIndexer returns an empty HashIndexer.
func NewHashIndexer[K comparable]() *HashIndexer[K] {
	return &HashIndexer[K]{seen: make(map[K]int)}
}

// Index implements Indexer.
func (h *HashIndexer[K]) Index(key K) (int, bool) {
	if i, ok := h.seen[key]; ok {
		return i, false
	}
	i := h.n
	h.seen[key] = i
	h.n++
	return i, true
}

// LRUIndexer deduplicates within a window of recently used keys.
type LRUIndexer[K comparable] struct {
	capacity int
	items    map[K]*list.Element
	order    *list.List // front = most recent
	n        int
}

type lruEntry[K comparable] struct {
	key   K
	index int
}

// NewLRUIndexer returns an LRUIndexer holding at most capacity keys.
func NewLRUIndexer[K comparable](capacity int) *LRUIndexer[K] {
	if capacity <= 0 {
		capacity = DefaultLRUCapacity
	}
	return &LRUIndexer[K]{
		capacity: capacity,
		items:    make(map[K]*list.Element, capacity),
		order:    list.New(),
	}
}

// Index implements Indexer.
func (l *LRUIndexer[K]) Index(key K) (int, bool) {
	if elem, ok := l.items[key]; ok {
		l.order.MoveToFront(elem)
		return elem.Value.(*lruEntry[K]).index, false
	}
	if l.order.Len() >= l.capacity {
		oldest := l.order.Back()
		l.order.Remove(oldest)
		delete(l.items, oldest.Value.(*lruEntry[K]).key)
	}
	i := l.n
	l.n++
	l.items[key] = l.order.PushFront(&lruEntry[K]{key: key, index: i})
	return i, true
}

// Len returns the number of keys currently remembered.
func (l *LRUIndexer[K]) Len() int { return l.order.Len() }

const methodIndexPolygons = "IndexPolygons"

// IndexPolygons flattens a stream of polygons given by vertex value into an
// indexed buffer. key extracts the deduplication key of a vertex; the first
// vertex seen for a fresh index is the one stored. Every polygon must have
// exactly arity corners. ix must not have been used before: its indices
// are taken as positions in the new vertex buffer.
func IndexPolygons[I Index, K comparable, V any](polys iter.Seq[[]V], arity int, key func(V) K, ix Indexer[K]) (Buffer[I, V], error) {
	if arity < 3 {
		return Buffer[I, V]{}, fmt.Errorf("%s: arity=%d: %w", methodIndexPolygons, arity, ErrBadArity)
	}
	buf := Buffer[I, V]{Arity: arity}
	n := 0
	for poly := range polys {
		if len(poly) != arity {
			return Buffer[I, V]{}, fmt.Errorf("%s: polygon %d has %d corners, want %d: %w",
				methodIndexPolygons, n, len(poly), arity, ErrArityMismatch)
		}
		for _, v := range poly {
			i, fresh := ix.Index(key(v))
			idx, ok := toIndex[I](i)
			if !ok {
				return Buffer[I, V]{}, fmt.Errorf("%s: index %d: %w", methodIndexPolygons, i, ErrIndexOverflow)
			}
			if fresh {
				buf.Vertices = append(buf.Vertices, v)
			}
			buf.Indices = append(buf.Indices, idx)
		}
		n++
	}
	return buf, nil
}
