// Package store persists meshes in an embedded BadgerDB database.
//
// Every mesh is one key, "mesh/<uuid>", whose value is a YAML entry holding
// the mesh name, its creation time and the meshdoc document. Values stay
// human-readable when the database is inspected with badger's own tools.
//
//	s, err := store.Open(store.DefaultConfig().WithPath(dir))
//	if err != nil { ... }
//	defer s.Close()
//	id, err := store.PutGraph(ctx, s, "cube", g)
package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/ungerik/go3d/float64/vec3"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmesh/encoding"
	"github.com/katalvlaran/lvmesh/encoding/meshdoc"
	"github.com/katalvlaran/lvmesh/mesh"
)

const keyPrefix = "mesh/"

var (
	// ErrNotFound is returned when no mesh has the requested ID.
	ErrNotFound = errors.New("store: mesh not found")

	// ErrNoPath is returned when a persistent store has no directory.
	ErrNoPath = errors.New("store: path is required for a persistent store")

	// ErrCorrupt is returned when a stored value cannot be decoded.
	ErrCorrupt = errors.New("store: corrupt entry")
)

// Config holds configuration for a Store.
type Config struct {
	// Path is the database directory. Ignored when InMemory is true.
	Path string

	// InMemory keeps everything in RAM; nothing survives Close.
	InMemory bool

	// SyncWrites fsyncs every write.
	SyncWrites bool

	// Logger receives badger's internal messages. Nil silences them.
	Logger *log.Logger
}

// DefaultConfig returns a durable on-disk configuration without a path.
func DefaultConfig() Config {
	return Config{SyncWrites: true}
}

// InMemoryConfig returns a configuration for tests and scratch work.
func InMemoryConfig() Config {
	return Config{InMemory: true}
}

// WithPath returns a copy of c using dir as the database directory.
func (c Config) WithPath(dir string) Config {
	c.Path = dir
	return c
}

// badgerLogger adapts a charmbracelet logger to badger.Logger.
type badgerLogger struct{ l *log.Logger }

func (b badgerLogger) Errorf(f string, args ...any)   { b.l.Errorf(strings.TrimSpace(f), args...) }
func (b badgerLogger) Warningf(f string, args ...any) { b.l.Warnf(strings.TrimSpace(f), args...) }
func (b badgerLogger) Infof(f string, args ...any)    { b.l.Infof(strings.TrimSpace(f), args...) }
func (b badgerLogger) Debugf(f string, args ...any)   { b.l.Debugf(strings.TrimSpace(f), args...) }

// Store is a mesh database. It is safe for concurrent use.
type Store struct {
	db  *badger.DB
	now func() time.Time
}

// Open opens (creating if needed) the database described by cfg.
func Open(cfg Config) (*Store, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, ErrNoPath
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("store: create directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)
	if cfg.Logger != nil {
		opts = opts.WithLogger(badgerLogger{cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("store: open: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Info describes a stored mesh without its geometry.
type Info struct {
	ID        uuid.UUID
	Name      string
	Created   time.Time
	Positions int
	Faces     int
}

// Entry is a stored mesh.
type Entry struct {
	Info
	Model *encoding.Model
}

// record is the YAML value stored under a mesh key.
type record struct {
	Name     string           `yaml:"name"`
	Created  time.Time        `yaml:"created"`
	Document meshdoc.Document `yaml:"document"`
}

func key(id uuid.UUID) []byte {
	return []byte(keyPrefix + id.String())
}

// Put stores m under a fresh ID and returns it.
func (s *Store) Put(ctx context.Context, name string, m *encoding.Model) (uuid.UUID, error) {
	if err := ctx.Err(); err != nil {
		return uuid.Nil, err
	}
	if m == nil {
		return uuid.Nil, encoding.ErrNilModel
	}
	if err := m.Validate(); err != nil {
		return uuid.Nil, fmt.Errorf("store: put %q: %w", name, err)
	}
	rec := record{Name: name, Created: s.now().UTC(), Document: *meshdoc.FromModel(m)}
	rec.Document.Name = ""
	val, err := yaml.Marshal(&rec)
	if err != nil {
		return uuid.Nil, fmt.Errorf("store: encode %q: %w", name, err)
	}

	id := uuid.New()
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(id), val)
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("store: put %q: %w", name, err)
	}
	return id, nil
}

// Get loads the mesh stored under id.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (*Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var rec record
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return decode(val, &rec)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("store: get %s: %w", id, err)
	}
	m, err := rec.Document.Model()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, id, err)
	}
	m.Name = rec.Name
	return &Entry{Info: rec.info(id), Model: m}, nil
}

// List returns every stored mesh, oldest first.
func (s *Store) List(ctx context.Context) ([]Info, error) {
	var out []Info
	prefix := []byte(keyPrefix)
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			item := it.Item()
			id, err := uuid.ParseBytes(bytes.TrimPrefix(item.Key(), prefix))
			if err != nil {
				return fmt.Errorf("%w: key %q", ErrCorrupt, item.Key())
			}
			var rec record
			if err := item.Value(func(val []byte) error { return decode(val, &rec) }); err != nil {
				return err
			}
			out = append(out, rec.info(id))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	slices.SortFunc(out, func(a, b Info) int {
		if c := a.Created.Compare(b.Created); c != 0 {
			return c
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})
	return out, nil
}

// Delete removes the mesh stored under id.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key(id)); err != nil {
			return err
		}
		return txn.Delete(key(id))
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("store: delete %s: %w", id, err)
	}
	return nil
}

func decode(val []byte, rec *record) error {
	if err := yaml.Unmarshal(val, rec); err != nil {
		return fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return nil
}

func (r *record) info(id uuid.UUID) Info {
	return Info{
		ID:        id,
		Name:      r.Name,
		Created:   r.Created,
		Positions: len(r.Document.Vertices),
		Faces:     len(r.Document.Faces),
	}
}

// PutGraph flattens g and stores it under name.
func PutGraph[E, F any](ctx context.Context, s *Store, name string, g *mesh.Graph[vec3.T, E, F]) (uuid.UUID, error) {
	m, err := encoding.FromGraph(g)
	if err != nil {
		return uuid.Nil, err
	}
	return s.Put(ctx, name, m)
}

// LoadGraph loads the mesh stored under id into a new graph.
func LoadGraph[E, F any](ctx context.Context, s *Store, id uuid.UUID, opts ...mesh.Option[vec3.T]) (*mesh.Graph[vec3.T, E, F], error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return encoding.Build[E, F](e.Model, opts...)
}
