package arena

import (
	"errors"
	"strconv"
)

// Sentinel errors for key resolution.
var (
	// ErrNullKey indicates the zero Key was used for a lookup.
	ErrNullKey = errors.New("arena: null key")

	// ErrStaleKey indicates the key's slot was removed (and possibly reused).
	ErrStaleKey = errors.New("arena: stale key")

	// ErrForeignKey indicates the key was minted by another arena.
	ErrForeignKey = errors.New("arena: foreign key")
)

// Key is an opaque handle to a slot of one Arena.
//
// Keys are comparable and may be used as map keys. The zero Key never
// resolves. Generations start at 1, so no live key has gen == 0.
type Key struct {
	index uint32
	gen   uint32
	owner uint32
}

// IsZero reports whether k is the zero Key.
func (k Key) IsZero() bool { return k.gen == 0 }

// Index returns the slot position of k. Slot positions are reused after
// Remove; only the full Key identifies an entity.
func (k Key) Index() int { return int(k.index) }

// Generation returns the slot generation recorded in k.
func (k Key) Generation() uint32 { return k.gen }

// String renders k as "index:gen", or "nil" for the zero Key.
func (k Key) String() string {
	if k.IsZero() {
		return "nil"
	}
	return strconv.FormatUint(uint64(k.index), 10) + ":" + strconv.FormatUint(uint64(k.gen), 10)
}

// Less orders keys by slot index, then generation. Owner tags are ignored.
func (k Key) Less(o Key) bool {
	if k.index != o.index {
		return k.index < o.index
	}
	return k.gen < o.gen
}
