// Package traverse provides breadth-first traversal over the faces of a
// mesh.Graph, where two faces are neighbours when they share an edge.
//
// What
//
//   - Faces explores faces in non-decreasing step count from a start face
//     and returns a Result with visit Order, Depth and Parent links.
//   - Components partitions all faces into edge-connected groups.
//   - WithFilterNeighbor refuses individual crossings, so components can be
//     split along creases or seams stored in edge payloads.
//   - WithMaxDepth limits exploration to a ring of faces around the start.
//
// Determinism
//
//	Neighbours are enqueued in face-loop order starting at the face's
//	representative arc, and Components seeds in face key order, so results
//	are reproducible for a given graph.
//
// Complexity (F = faces, A = arcs)
//
//   - Time:   O(F + A)
//   - Memory: O(F)
//
// Usage
//
//	res, err := traverse.Faces(g, start,
//		traverse.WithMaxDepth(2),
//		traverse.WithFilterNeighbor(func(_, _ mesh.FaceKey, e mesh.EdgeKey) bool {
//			crease, _ := g.Edge(e)
//			return !crease
//		}),
//	)
//
// Errors
//
//   - ErrGraphNil           if the graph pointer is nil.
//   - ErrStartFaceNotFound  if the start face does not exist.
//   - ErrOptionViolation    for an invalid option (negative MaxDepth).
//   - ErrNeighbors          if circulating a face fails.
//   - the context error on cancellation, and wrapped OnVisit errors.
package traverse
