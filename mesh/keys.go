// SPDX-License-Identifier: MIT
// Package: lvmesh/mesh
//
// keys.go — typed keys for vertices, arcs, edges and faces.
//
// Contract:
//   • A key resolves only in the Graph that issued it; the zero key is null.

package mesh

import "github.com/katalvlaran/lvmesh/arena"

// VertexKey names a vertex of one Graph.
type VertexKey arena.Key

// ArcKey names a directed half-edge of one Graph.
type ArcKey arena.Key

// EdgeKey names an undirected edge (a pair of opposite arcs).
type EdgeKey arena.Key

// FaceKey names a face of one Graph.
type FaceKey arena.Key

// IsZero reports whether k is the zero key.
func (k VertexKey) IsZero() bool { return arena.Key(k).IsZero() }

// IsZero reports whether k is the zero key.
func (k ArcKey) IsZero() bool { return arena.Key(k).IsZero() }

// IsZero reports whether k is the zero key.
func (k EdgeKey) IsZero() bool { return arena.Key(k).IsZero() }

// IsZero reports whether k is the zero key.
func (k FaceKey) IsZero() bool { return arena.Key(k).IsZero() }

func (k VertexKey) String() string { return "v" + arena.Key(k).String() }
func (k ArcKey) String() string    { return "a" + arena.Key(k).String() }
func (k EdgeKey) String() string   { return "e" + arena.Key(k).String() }
func (k FaceKey) String() string   { return "f" + arena.Key(k).String() }

// Delta lists keys created and destroyed by one operation.
type Delta[K any] struct {
	Added   []K
	Removed []K
}

// Changes reports every key an operation created or invalidated. Keys not
// listed under Removed stay valid.
type Changes struct {
	Vertices Delta[VertexKey]
	Arcs     Delta[ArcKey]
	Edges    Delta[EdgeKey]
	Faces    Delta[FaceKey]
}

// anyKey is the set of typed graph keys.
type anyKey interface {
	VertexKey | ArcKey | EdgeKey | FaceKey
}

// typed maps raw arena keys to a typed key slice.
func typed[K anyKey](keys []arena.Key) []K {
	if len(keys) == 0 {
		return nil
	}
	out := make([]K, len(keys))
	for i, k := range keys {
		out[i] = K(k)
	}
	return out
}
