package cli

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvmesh/encoding"
	"github.com/katalvlaran/lvmesh/traverse"
)

// meshStats summarises one mesh file.
type meshStats struct {
	Path       string
	Name       string
	Vertices   int
	Edges      int
	Faces      int
	Boundary   int
	Components int
	Arity      map[int]int
}

// statsOf ingests m and counts its elements.
func statsOf(m *encoding.Model) (meshStats, error) {
	g, err := encoding.Build[struct{}, struct{}](m)
	if err != nil {
		return meshStats{}, err
	}
	comps, err := traverse.Components(g)
	if err != nil {
		return meshStats{}, err
	}
	return meshStats{
		Name:       m.Name,
		Vertices:   g.VertexCount(),
		Edges:      g.EdgeCount(),
		Faces:      g.FaceCount(),
		Boundary:   len(g.BoundaryArcs()),
		Components: len(comps),
		Arity:      m.Stats().Arity,
	}, nil
}

// statsCommand creates the "stats" command.
func (c *CLI) statsCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "stats <file>...",
		Short: "Summarise mesh files",
		Long: `Stats reads every file concurrently (config key "workers" bounds the
parallelism), builds its mesh and prints vertex, edge, face and boundary
counts, the number of edge-connected components and the face arity
histogram.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 && slices.Contains(args, stdio) {
				return fmt.Errorf("stdin can only be read on its own")
			}
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			results := make([]meshStats, len(args))
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(c.Config.Workers)
			for i, path := range args {
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					m, err := readModel(cmd, path, format)
					if err != nil {
						return err
					}
					s, err := statsOf(m)
					if err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}
					s.Path = path
					results[i] = s
					logger.Debug("read mesh", "path", path, "faces", s.Faces)
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			prog.done("stats", "files", len(args))

			out := cmd.OutOrStdout()
			for _, s := range results {
				printStats(out, s)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "input format: obj or yaml (default from extension)")
	return cmd
}

func printStats(w io.Writer, s meshStats) {
	printTitle(w, fmt.Sprintf("%s (%s)", s.Path, s.Name))
	printKeyValue(w, "vertices", s.Vertices)
	printKeyValue(w, "edges", s.Edges)
	printKeyValue(w, "faces", s.Faces)
	printKeyValue(w, "boundary arcs", s.Boundary)
	printKeyValue(w, "components", s.Components)
	printKeyValue(w, "arity", formatArity(s.Arity))
}

// formatArity renders a histogram as "3×20 4×6", smallest arity first.
func formatArity(h map[int]int) string {
	parts := make([]string, 0, len(h))
	for _, k := range slices.Sorted(maps.Keys(h)) {
		parts = append(parts, fmt.Sprintf("%d×%d", k, h[k]))
	}
	return strings.Join(parts, " ")
}
