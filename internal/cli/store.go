package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmesh/store"
)

// storeCommand creates the "store" command group.
func (c *CLI) storeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Keep meshes in a local database",
		Long: `Store manages a BadgerDB directory of meshes. The directory comes from
--store, then the config key store.path, then $XDG_DATA_HOME/lvmesh/store.`,
	}
	cmd.PersistentFlags().StringVar(&c.storePath, "store", "", "database directory")

	cmd.AddCommand(c.storePutCommand())
	cmd.AddCommand(c.storeGetCommand())
	cmd.AddCommand(c.storeListCommand())
	cmd.AddCommand(c.storeDeleteCommand())
	return cmd
}

// openStore opens the database chosen by flag, config or default path.
func (c *CLI) openStore(logger *log.Logger) (*store.Store, error) {
	path := c.storePath
	if path == "" {
		path = c.Config.Store.Path
	}
	if path == "" {
		var err error
		if path, err = defaultStorePath(); err != nil {
			return nil, fmt.Errorf("store path: %w", err)
		}
	}

	bl := logger.WithPrefix("badger")
	if logger.GetLevel() > log.DebugLevel {
		bl.SetLevel(log.WarnLevel)
	}
	cfg := store.DefaultConfig().WithPath(path)
	cfg.SyncWrites = c.Config.Store.SyncWrites
	cfg.Logger = bl

	logger.Debug("opening store", "path", path)
	return store.Open(cfg)
}

// withStore runs fn against an open store and closes it afterwards.
func (c *CLI) withStore(cmd *cobra.Command, fn func(s *store.Store) error) (err error) {
	s, err := c.openStore(loggerFromContext(cmd.Context()))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(s)
}

func (c *CLI) storePutCommand() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "put <file>",
		Short: "Store a mesh file and print its ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readModel(cmd, args[0], "")
			if err != nil {
				return err
			}
			if name == "" {
				name = m.Name
			}
			return c.withStore(cmd, func(s *store.Store) error {
				id, err := s.Put(cmd.Context(), name, m)
				if err != nil {
					return err
				}
				printSuccess(cmd.OutOrStdout(), "Stored %s", name)
				fmt.Fprintln(cmd.OutOrStdout(), id)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "mesh name (default from file)")
	return cmd
}

func (c *CLI) storeGetCommand() *cobra.Command {
	var output, format string
	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Write a stored mesh to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", args[0], err)
			}
			return c.withStore(cmd, func(s *store.Store) error {
				e, err := s.Get(cmd.Context(), id)
				if err != nil {
					return err
				}
				return writeModel(cmd, output, format, e.Model)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", stdio, "output file")
	cmd.Flags().StringVar(&format, "format", "", "output format: obj or yaml (default from extension)")
	return cmd
}

func (c *CLI) storeListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored meshes, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStore(cmd, func(s *store.Store) error {
				infos, err := s.List(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(infos) == 0 {
					printInfo(out, "Store is empty")
					return nil
				}
				for _, in := range infos {
					fmt.Fprintf(out, "%s  %-20s  %s  %s\n", in.ID, in.Name,
						in.Created.Local().Format("2006-01-02 15:04:05"),
						styleDim.Render(fmt.Sprintf("%d faces, %d vertices", in.Faces, in.Positions)))
				}
				return nil
			})
		},
	}
}

func (c *CLI) storeDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete stored meshes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]uuid.UUID, len(args))
			for i, a := range args {
				id, err := uuid.Parse(a)
				if err != nil {
					return fmt.Errorf("invalid id %q: %w", a, err)
				}
				ids[i] = id
			}
			return c.withStore(cmd, func(s *store.Store) error {
				for _, id := range ids {
					if err := s.Delete(cmd.Context(), id); err != nil {
						return err
					}
					printSuccess(cmd.OutOrStdout(), "Deleted %s", id)
				}
				return nil
			})
		},
	}
}
