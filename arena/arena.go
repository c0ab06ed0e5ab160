package arena

import (
	"iter"
	"sync/atomic"
)

// owners hands out a distinct tag per arena so keys cannot cross arenas.
var owners atomic.Uint32

// slot holds one value plus its generation counter.
type slot[T any] struct {
	value T
	gen   uint32 // bumped on Remove; never 0 once the slot exists
	live  bool
}

// Arena stores values of type T in reusable, generation-tagged slots.
type Arena[T any] struct {
	owner uint32
	slots []slot[T]
	free  []uint32 // LIFO stack of vacant slot indices
	live  int

	origin *lineage // set on clones only
}

// lineage remembers the arena a clone was copied from.
type lineage struct {
	owner uint32
	gens  []uint32 // generation of every slot live at clone time, 0 otherwise
}

// New returns an empty Arena with a fresh owner tag.
func New[T any]() *Arena[T] {
	return &Arena[T]{owner: owners.Add(1)}
}

// WithCapacity returns an empty Arena with room for n values.
func WithCapacity[T any](n int) *Arena[T] {
	a := New[T]()
	if n > 0 {
		a.slots = make([]slot[T], 0, n)
	}
	return a
}

// Len returns the number of live values.
func (a *Arena[T]) Len() int { return a.live }

// Insert stores v and returns its key.
func (a *Arena[T]) Insert(v T) Key {
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[idx]
		s.value = v
		s.live = true
		a.live++
		return Key{index: idx, gen: s.gen, owner: a.owner}
	}
	idx := uint32(len(a.slots))
	a.slots = append(a.slots, slot[T]{value: v, gen: 1, live: true})
	a.live++
	return Key{index: idx, gen: 1, owner: a.owner}
}

// resolve maps k to its slot or reports why it cannot.
func (a *Arena[T]) resolve(k Key) (*slot[T], error) {
	if k.IsZero() {
		return nil, ErrNullKey
	}
	if k.owner != a.owner {
		return nil, ErrForeignKey
	}
	if int(k.index) >= len(a.slots) {
		return nil, ErrStaleKey
	}
	s := &a.slots[k.index]
	if !s.live || s.gen != k.gen {
		return nil, ErrStaleKey
	}
	return s, nil
}

// Get returns a copy of the value stored under k.
func (a *Arena[T]) Get(k Key) (T, error) {
	s, err := a.resolve(k)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.value, nil
}

// Set replaces the value stored under k.
func (a *Arena[T]) Set(k Key, v T) error {
	s, err := a.resolve(k)
	if err != nil {
		return err
	}
	s.value = v
	return nil
}

// Contains reports whether k resolves to a live value.
func (a *Arena[T]) Contains(k Key) bool {
	_, err := a.resolve(k)
	return err == nil
}

// Remove deletes the value under k and returns it. The slot's generation is
// bumped so k and every copy of it become stale.
func (a *Arena[T]) Remove(k Key) (T, error) {
	var zero T
	s, err := a.resolve(k)
	if err != nil {
		return zero, err
	}
	v := s.value
	s.value = zero
	s.live = false
	s.gen++
	if s.gen == 0 {
		// wrapped; skip the reserved zero generation
		s.gen = 1
	}
	a.free = append(a.free, k.index)
	a.live--
	return v, nil
}

// Keys returns all live keys in ascending slot order.
func (a *Arena[T]) Keys() []Key {
	out := make([]Key, 0, a.live)
	for i := range a.slots {
		if a.slots[i].live {
			out = append(out, Key{index: uint32(i), gen: a.slots[i].gen, owner: a.owner})
		}
	}
	return out
}

// All yields live (key, value) pairs in ascending slot order.
// The arena must not be mutated while the sequence is being consumed.
func (a *Arena[T]) All() iter.Seq2[Key, T] {
	return func(yield func(Key, T) bool) {
		for i := range a.slots {
			s := &a.slots[i]
			if !s.live {
				continue
			}
			if !yield(Key{index: uint32(i), gen: s.gen, owner: a.owner}, s.value) {
				return
			}
		}
	}
}

// Clone returns a shallow copy of a under a fresh owner tag. Keys of a fail
// in the clone with ErrForeignKey until translated with Adopt. Values are
// copied by assignment; reference-typed fields inside T are shared.
func (a *Arena[T]) Clone() *Arena[T] {
	c := &Arena[T]{
		owner: owners.Add(1),
		slots: make([]slot[T], len(a.slots)),
		free:  make([]uint32, len(a.free)),
		live:  a.live,
	}
	copy(c.slots, a.slots)
	copy(c.free, a.free)

	gens := make([]uint32, len(a.slots))
	for i := range a.slots {
		if a.slots[i].live {
			gens[i] = a.slots[i].gen
		}
	}
	c.origin = &lineage{owner: a.owner, gens: gens}
	return c
}

// Adopt translates k, minted by the arena a was cloned from, into a's key
// space. Only keys that were live when the clone was taken translate;
// anything the source created later fails with ErrStaleKey, keys of
// unrelated arenas with ErrForeignKey. Keys of a itself are returned as is.
//
// A translated key may still be stale in a if the clone removed it since.
func (a *Arena[T]) Adopt(k Key) (Key, error) {
	if k.IsZero() {
		return Key{}, ErrNullKey
	}
	if k.owner == a.owner {
		return k, nil
	}
	if a.origin == nil || k.owner != a.origin.owner {
		return Key{}, ErrForeignKey
	}
	if int(k.index) >= len(a.origin.gens) || a.origin.gens[k.index] != k.gen {
		return Key{}, ErrStaleKey
	}
	return Key{index: k.index, gen: k.gen, owner: a.owner}, nil
}
