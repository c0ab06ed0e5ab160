// SPDX-License-Identifier: MIT
// Package: lvmesh/encoding/meshdoc
//
// meshdoc.go — a human-editable YAML mesh document.
//
//	version: 1
//	name: square
//	vertices:
//	  - [0, 0, 0]
//	  - [1, 0, 0]
//	  - [1, 1, 0]
//	  - [0, 1, 0]
//	faces:
//	  - [0, 1, 2, 3]
//
// Indices are 0-based. Unknown keys are rejected.

package meshdoc

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/ungerik/go3d/float64/vec3"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmesh/encoding"
)

// Version is the document version written by Encode and accepted by Decode.
const Version = 1

var (
	// ErrVersion is returned for documents of an unsupported version.
	ErrVersion = errors.New("meshdoc: unsupported version")

	// ErrVertex is returned for a vertex row without exactly 3 coordinates.
	ErrVertex = errors.New("meshdoc: vertex needs exactly 3 coordinates")
)

// Document is the YAML shape of a mesh.
type Document struct {
	Version  int      `yaml:"version"`
	Name     string   `yaml:"name,omitempty"`
	Vertices []Vertex `yaml:"vertices"`
	Faces    []Face   `yaml:"faces"`
}

// Vertex is one position row, written in flow style.
type Vertex [3]float64

// Face is one index ring, written in flow style.
type Face []int

// MarshalYAML writes the vertex as a flow sequence.
func (v Vertex) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, x := range v {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: strconv.FormatFloat(x, 'g', -1, 64)})
	}
	return n, nil
}

// UnmarshalYAML reads a sequence of exactly three numbers.
func (v *Vertex) UnmarshalYAML(value *yaml.Node) error {
	var xs []float64
	if err := value.Decode(&xs); err != nil {
		return err
	}
	if len(xs) != 3 {
		return fmt.Errorf("%w: line %d has %d", ErrVertex, value.Line, len(xs))
	}
	copy(v[:], xs)
	return nil
}

// MarshalYAML writes the face as a flow sequence.
func (f Face) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, i := range f {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: strconv.Itoa(i)})
	}
	return n, nil
}

// FromModel converts a model into a document of the current version.
func FromModel(m *encoding.Model) *Document {
	doc := &Document{
		Version:  Version,
		Name:     m.Name,
		Vertices: make([]Vertex, len(m.Positions)),
		Faces:    make([]Face, len(m.Faces)),
	}
	for i, p := range m.Positions {
		doc.Vertices[i] = Vertex(p)
	}
	for i, f := range m.Faces {
		doc.Faces[i] = Face(f)
	}
	return doc
}

// Model converts the document into a validated model.
func (d *Document) Model() (*encoding.Model, error) {
	if d.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, d.Version)
	}
	m := &encoding.Model{
		Name:      d.Name,
		Positions: make([]vec3.T, len(d.Vertices)),
		Faces:     make([][]int, len(d.Faces)),
	}
	for i, v := range d.Vertices {
		m.Positions[i] = vec3.T(v)
	}
	for i, f := range d.Faces {
		m.Faces[i] = []int(f)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Decode reads one YAML document into a model.
func Decode(r io.Reader) (*encoding.Model, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("meshdoc: decode: %w", err)
	}
	return doc.Model()
}

// Encode writes m as a YAML document. The model is validated first.
func Encode(w io.Writer, m *encoding.Model) error {
	if m == nil {
		return encoding.ErrNilModel
	}
	if err := m.Validate(); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FromModel(m)); err != nil {
		return fmt.Errorf("meshdoc: encode: %w", err)
	}
	return enc.Close()
}
