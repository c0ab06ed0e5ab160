package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmesh/encoding"
	"github.com/katalvlaran/lvmesh/geometry"
	"github.com/katalvlaran/lvmesh/mesh"
	"github.com/katalvlaran/lvmesh/shortest"
)

type pathOptions struct {
	format string
	from   int
	to     int
	length bool
}

// pathCommand creates the "path" command.
func (c *CLI) pathCommand() *cobra.Command {
	var opts pathOptions

	cmd := &cobra.Command{
		Use:   "path <file>",
		Short: "Find the shortest edge path between two vertices",
		Long: `Path walks the edges of a mesh from one vertex to another and prints the
cheapest route. Vertices are addressed by their position index in the file,
counting from 0. Each edge costs one hop, or its length with --length.`,
		Example: `  lvmesh generate cube -o cube.obj
  lvmesh path cube.obj --from 0 --to 6 --length`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			m, err := readModel(cmd, args[0], opts.format)
			if err != nil {
				return err
			}
			g, ids, err := encoding.BuildIndex[struct{}, struct{}](m)
			if err != nil {
				return err
			}
			src, err := vertexAt(ids, len(m.Positions), "from", opts.from)
			if err != nil {
				return err
			}
			dst, err := vertexAt(ids, len(m.Positions), "to", opts.to)
			if err != nil {
				return err
			}

			var sopts []shortest.Option
			if opts.length {
				sopts = append(sopts, shortest.WithWeight(shortest.EdgeLength(g, geometry.Points())))
			}
			res, err := shortest.From(g, src, sopts...)
			if err != nil {
				return err
			}
			verts, edges, err := res.PathTo(dst)
			if err != nil {
				return fmt.Errorf("vertex %d to %d: %w", opts.from, opts.to, err)
			}
			prog.done("path", "reached", len(res.Dist), "hops", len(edges))

			index := make(map[mesh.VertexKey]int, len(ids))
			for i, k := range ids {
				index[k] = i
			}
			printPath(cmd.OutOrStdout(), m.Name, verts, index, res.Dist[dst])
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.format, "format", "", "input format: obj or yaml (default from extension)")
	cmd.Flags().IntVar(&opts.from, "from", 0, "start vertex index")
	cmd.Flags().IntVar(&opts.to, "to", 0, "target vertex index")
	cmd.Flags().BoolVar(&opts.length, "length", false, "weight edges by length instead of hop count")
	return cmd
}

// vertexAt resolves a position index given on the command line.
func vertexAt(ids map[int]mesh.VertexKey, n int, flag string, i int) (mesh.VertexKey, error) {
	if i < 0 || i >= n {
		return mesh.VertexKey{}, fmt.Errorf("--%s %d out of range: mesh has %d positions", flag, i, n)
	}
	k, ok := ids[i]
	if !ok {
		return mesh.VertexKey{}, fmt.Errorf("--%s %d: position is not used by any face", flag, i)
	}
	return k, nil
}

func printPath(w io.Writer, name string, verts []mesh.VertexKey, index map[mesh.VertexKey]int, cost float64) {
	parts := make([]string, len(verts))
	for i, v := range verts {
		parts[i] = strconv.Itoa(index[v])
	}
	printTitle(w, name)
	printKeyValue(w, "hops", len(verts)-1)
	printKeyValue(w, "cost", strconv.FormatFloat(cost, 'g', 6, 64))
	printKeyValue(w, "path", strings.Join(parts, " "+iconArrow+" "))
}
