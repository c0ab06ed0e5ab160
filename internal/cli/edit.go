package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/katalvlaran/lvmesh/encoding"
	"github.com/katalvlaran/lvmesh/geometry"
	"github.com/katalvlaran/lvmesh/mesh"
)

// graph is the mesh type the commands edit: vec3 positions, no edge or
// face payloads.
type graph = mesh.Graph[vec3.T, struct{}, struct{}]

type editOptions struct {
	output string
	format string
	face   int
}

func (o *editOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.output, "output", "o", stdio, "output file")
	cmd.Flags().StringVar(&o.format, "format", "", "output format: obj or yaml (default from extension)")
}

// edit loads path, applies fn and writes the result.
func (c *CLI) edit(cmd *cobra.Command, path string, o editOptions, policy mesh.TriangulationPolicy[vec3.T], fn func(g *graph) error) error {
	m, err := readModel(cmd, path, "")
	if err != nil {
		return err
	}
	g, err := encoding.Build[struct{}, struct{}](m, mesh.WithTriangulation(policy))
	if err != nil {
		return err
	}
	if err := fn(g); err != nil {
		return err
	}
	out, err := encoding.FromGraph(g)
	if err != nil {
		return err
	}
	out.Name = m.Name
	return writeModel(cmd, o.output, o.format, out)
}

// faceAt returns the i-th face in key order.
func faceAt(g *graph, i int) (mesh.FaceKey, error) {
	faces := g.Faces()
	if i < 0 || i >= len(faces) {
		return mesh.FaceKey{}, fmt.Errorf("--face %d out of range: mesh has %d faces", i, len(faces))
	}
	return faces[i], nil
}

// extrudeCommand creates the "extrude" command.
func (c *CLI) extrudeCommand() *cobra.Command {
	var (
		opts   editOptions
		offset float64
	)
	cmd := &cobra.Command{
		Use:   "extrude <file>",
		Short: "Extrude one face along its normal",
		Example: `  lvmesh generate cube -o cube.obj
  lvmesh extrude cube.obj --face 0 --offset 0.5 -o tower.obj`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)
			return c.edit(cmd, args[0], opts, mesh.Fan[vec3.T]{}, func(g *graph) error {
				f, err := faceAt(g, opts.face)
				if err != nil {
					return err
				}
				res, err := g.Extrude(f, offset)
				if err != nil {
					return err
				}
				prog.done("extruded", "face", opts.face, "sides", len(res.Sides),
					"new faces", len(res.Faces.Added), "new vertices", len(res.Vertices))
				return nil
			})
		},
	}
	opts.bind(cmd)
	cmd.Flags().IntVar(&opts.face, "face", 0, "index of the face to extrude")
	cmd.Flags().Float64Var(&offset, "offset", 1, "distance along the face normal")
	return cmd
}

// triangulateCommand creates the "triangulate" command.
func (c *CLI) triangulateCommand() *cobra.Command {
	var (
		opts   editOptions
		policy string
	)
	cmd := &cobra.Command{
		Use:   "triangulate <file>",
		Short: "Split faces into triangles",
		Long: `Triangulate splits every face with more than three corners, or only the
face selected with --face. The fan policy cuts from the first corner and is
exact for convex faces; the ear policy clips ears and handles simple
non-convex faces.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if policy == "" {
				policy = c.Config.Triangulate.Policy
			}
			p, err := triangulationPolicy(policy)
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)
			return c.edit(cmd, args[0], opts, p, func(g *graph) error {
				var (
					res mesh.TriangulateResult
					err error
				)
				if opts.face < 0 {
					res, err = g.TriangulateAll()
				} else {
					var f mesh.FaceKey
					if f, err = faceAt(g, opts.face); err != nil {
						return err
					}
					res, err = g.Triangulate(f)
				}
				if err != nil {
					return err
				}
				prog.done("triangulated", "policy", policy, "new edges", len(res.Edges.Added), "faces", g.FaceCount())
				return nil
			})
		},
	}
	opts.bind(cmd)
	cmd.Flags().IntVar(&opts.face, "face", -1, "index of a single face to triangulate (default all)")
	cmd.Flags().StringVar(&policy, "policy", "", "fan or ear (default from config)")
	return cmd
}

func triangulationPolicy(name string) (mesh.TriangulationPolicy[vec3.T], error) {
	switch name {
	case policyFan:
		return mesh.Fan[vec3.T]{}, nil
	case policyEar:
		return mesh.EarClipping[vec3.T, vec3.T]{Geometry: geometry.Points()}, nil
	}
	return nil, fmt.Errorf("unknown triangulation policy %q (want fan or ear)", name)
}
