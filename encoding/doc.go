// Package encoding holds the Model shared by the on-disk mesh formats
// (encoding/obj, encoding/meshdoc) and its conversion to and from
// mesh.Graph.
//
// Decoders only check syntax and index ranges; manifoldness is checked by
// Build through mesh.FromPolygons.
package encoding
