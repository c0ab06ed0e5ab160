// Package arena provides slot storage addressed by generation-tagged keys.
//
// An Arena owns a dense slice of slots. Insert hands out a Key naming the
// slot index, the slot's current generation and the arena's owner tag.
// Remove bumps the generation, so every key issued for the old occupant
// fails lookup with ErrStaleKey instead of silently resolving to whatever
// reuses the slot later. Keys minted by a different arena fail with
// ErrForeignKey; the zero Key fails with ErrNullKey.
//
// Clone copies an arena under a fresh owner tag. Keys of the source are
// foreign to the clone until Adopt translates them.
//
// Complexity:
//
//	Insert, Remove, Get, Set, Contains: O(1) amortised
//	Keys, All:                          O(slots)
//
// An Arena is not safe for concurrent mutation. Concurrent readers are fine
// as long as nobody writes.
package arena
