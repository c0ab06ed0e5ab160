package cli

import (
	"fmt"
	"iter"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmesh/encoding"
	"github.com/katalvlaran/lvmesh/geometry"
	"github.com/katalvlaran/lvmesh/mesh"
	"github.com/katalvlaran/lvmesh/primitive"
)

type generateOptions struct {
	output   string
	format   string
	segments int
	rings    int
	cols     int
	rows     int
	scale    float64
}

// generateCommand creates the "generate" command.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate <tetrahedron|cube|octahedron|dodecahedron|icosahedron|sphere|grid>",
		Short: "Write a primitive mesh",
		Example: `  lvmesh generate cube -o cube.obj
  lvmesh generate sphere --segments 32 --rings 16 -o sphere.yaml
  lvmesh generate grid --cols 8 --rows 2 --format yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			seq, err := c.shape(args[0], opts)
			if err != nil {
				return err
			}
			g, err := mesh.FromPolygons[struct{}, struct{}](seq, mesh.WithGeometry(geometry.Points()))
			if err != nil {
				return err
			}
			m, err := encoding.FromGraph(g)
			if err != nil {
				return err
			}
			m.Name = args[0]
			if err := writeModel(cmd, opts.output, opts.format, m); err != nil {
				return err
			}
			prog.done("generated", "shape", args[0], "vertices", g.VertexCount(), "faces", g.FaceCount())

			if opts.output != stdio {
				printSuccess(cmd.OutOrStdout(), "Generated %s (%d faces)", args[0], g.FaceCount())
				printFile(cmd.OutOrStdout(), opts.output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", stdio, "output file")
	cmd.Flags().StringVar(&opts.format, "format", "", "output format: obj or yaml (default from extension)")
	cmd.Flags().IntVar(&opts.segments, "segments", 0, "sphere segments around the axis (default from config)")
	cmd.Flags().IntVar(&opts.rings, "rings", 0, "sphere rings from pole to pole (default from config)")
	cmd.Flags().IntVar(&opts.cols, "cols", 4, "grid columns")
	cmd.Flags().IntVar(&opts.rows, "rows", 4, "grid rows")
	cmd.Flags().Float64Var(&opts.scale, "scale", 1, "uniform scale")
	return cmd
}

// shape resolves a shape name to its polygon stream.
func (c *CLI) shape(name string, opts generateOptions) (iter.Seq[primitive.Polygon], error) {
	if !(opts.scale > 0) || math.IsInf(opts.scale, 0) {
		return nil, fmt.Errorf("--scale must be positive and finite, got %v", opts.scale)
	}
	scale := primitive.WithScale(opts.scale)

	switch name {
	case "sphere":
		segments, rings := opts.segments, opts.rings
		if segments == 0 {
			segments = c.Config.Sphere.Segments
		}
		if rings == 0 {
			rings = c.Config.Sphere.Rings
		}
		return primitive.UVSphere(segments, rings, scale)
	case "grid":
		return primitive.Grid(opts.cols, opts.rows, scale)
	}
	s, ok := primitive.ParseSolid(name)
	if !ok {
		return nil, fmt.Errorf("unknown shape %q", name)
	}
	return primitive.Platonic(s, scale)
}
