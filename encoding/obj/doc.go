// Package obj reads and writes the polygon subset of the Wavefront OBJ
// format into encoding.Model values.
//
//	m, err := obj.Decode(f)
//	if err != nil { ... }
//	g, err := encoding.Build[struct{}, struct{}](m)
package obj
