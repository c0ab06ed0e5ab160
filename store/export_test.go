package store

import (
	"time"

	"github.com/dgraph-io/badger/v4"
)

// SetClock replaces the creation-time source of s.
func SetClock(s *Store, now func() time.Time) { s.now = now }

// PutRaw writes val under key, bypassing encoding.
func PutRaw(s *Store, key string, val []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), val)
	})
}
