// SPDX-License-Identifier: MIT
// Package: lvmesh/encoding/obj
//
// obj.go — Wavefront OBJ reader and writer for polygon meshes.
//
// Supported records:
//   • v x y z [w]      position; w is ignored.
//   • f i[/t][/n] ...  face with ≥ 3 corners; indices are 1-based, negative
//                      indices count back from the last position read.
//   • o name           object name, first one wins.
// Every other record (vt, vn, g, s, usemtl, mtllib, l, ...) is skipped.
// Comments start at '#'. A trailing '\' joins a line with the next one.
//
// Faces are stored as read, so arity and winding survive a round trip.

package obj

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ungerik/go3d/float64/vec3"

	"github.com/katalvlaran/lvmesh/encoding"
)

// ErrSyntax is wrapped by every decode error tied to a line of input.
var ErrSyntax = errors.New("obj: syntax error")

// maxLine bounds a single logical line, continuations included.
const maxLine = 1 << 20

// Decode reads an OBJ stream into a Model.
func Decode(r io.Reader) (*encoding.Model, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	m := &encoding.Model{}
	lineNo := 0
	var pending strings.Builder
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		if trimmed := strings.TrimRight(line, " \t\r"); strings.HasSuffix(trimmed, "\\") {
			pending.WriteString(strings.TrimSuffix(trimmed, "\\"))
			pending.WriteByte(' ')
			if pending.Len() > maxLine {
				return nil, fmt.Errorf("%w: line %d: logical line exceeds %d bytes", ErrSyntax, lineNo, maxLine)
			}
			continue
		}
		if pending.Len() > 0 {
			if pending.Len()+len(line) > maxLine {
				return nil, fmt.Errorf("%w: line %d: logical line exceeds %d bytes", ErrSyntax, lineNo, maxLine)
			}
			pending.WriteString(line)
			line = pending.String()
			pending.Reset()
		}
		if err := decodeLine(m, strings.Fields(line)); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("obj: read: %w", err)
	}
	if pending.Len() > 0 {
		if err := decodeLine(m, strings.Fields(pending.String())); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, lineNo, err)
		}
	}
	return m, nil
}

func decodeLine(m *encoding.Model, fields []string) error {
	if len(fields) == 0 {
		return nil
	}
	switch fields[0] {
	case "v":
		if len(fields) < 4 || len(fields) > 5 {
			return fmt.Errorf("v: want 3 or 4 coordinates, got %d", len(fields)-1)
		}
		var p vec3.T
		for i := range 3 {
			x, err := strconv.ParseFloat(fields[i+1], 64)
			if err != nil {
				return fmt.Errorf("v: %w", err)
			}
			p[i] = x
		}
		m.Positions = append(m.Positions, p)
	case "f":
		if len(fields) < 4 {
			return fmt.Errorf("f: want at least 3 corners, got %d", len(fields)-1)
		}
		face := make([]int, 0, len(fields)-1)
		for _, ref := range fields[1:] {
			idx, err := resolve(ref, len(m.Positions))
			if err != nil {
				return fmt.Errorf("f: %w", err)
			}
			face = append(face, idx)
		}
		m.Faces = append(m.Faces, face)
	case "o":
		if m.Name == "" && len(fields) > 1 {
			m.Name = strings.Join(fields[1:], " ")
		}
	}
	return nil
}

// resolve turns a face reference into a 0-based position index.
func resolve(ref string, n int) (int, error) {
	head, _, _ := strings.Cut(ref, "/")
	i, err := strconv.Atoi(head)
	if err != nil {
		return 0, fmt.Errorf("corner %q: %w", ref, err)
	}
	switch {
	case i > 0 && i <= n:
		return i - 1, nil
	case i < 0 && -i <= n:
		return n + i, nil
	default:
		return 0, fmt.Errorf("corner %q: index out of range with %d positions", ref, n)
	}
}

// Encode writes m as OBJ. The model is validated first; nothing is written
// for an invalid model.
func Encode(w io.Writer, m *encoding.Model) error {
	if m == nil {
		return encoding.ErrNilModel
	}
	if err := m.Validate(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# lvmesh: %d positions, %d faces\n", len(m.Positions), len(m.Faces))
	if m.Name != "" {
		fmt.Fprintf(bw, "o %s\n", m.Name)
	}
	buf := make([]byte, 0, 64)
	for _, p := range m.Positions {
		buf = append(buf[:0], 'v')
		for _, x := range p {
			buf = append(buf, ' ')
			buf = strconv.AppendFloat(buf, x, 'g', -1, 64)
		}
		buf = append(buf, '\n')
		bw.Write(buf)
	}
	for _, face := range m.Faces {
		buf = append(buf[:0], 'f')
		for _, idx := range face {
			buf = append(buf, ' ')
			buf = strconv.AppendInt(buf, int64(idx+1), 10)
		}
		buf = append(buf, '\n')
		bw.Write(buf)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("obj: write: %w", err)
	}
	return nil
}
