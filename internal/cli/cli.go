package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "lvmesh"

const (
	policyFan = "fan"
	policyEar = "ear"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion sets the version information shown by --version.
func SetVersion(v, c, d string) {
	version, commit, date = v, c, d
}

// CLI holds state shared by all commands.
type CLI struct {
	Logger *log.Logger
	Config Config

	configPath string
	storePath  string
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root command with every subcommand registered.
// The config file is loaded before any subcommand runs.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "lvmesh builds, edits and stores polygon meshes",
		Long:         `lvmesh is a command-line front end to a half-edge mesh library: generate primitives, inspect mesh files, extrude and triangulate faces, and keep meshes in a local database.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date))
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/lvmesh/config.toml)")

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.extrudeCommand())
	root.AddCommand(c.triangulateCommand())
	root.AddCommand(c.pathCommand())
	root.AddCommand(c.storeCommand())
	return root
}

func (c *CLI) loadConfig() error {
	var (
		cfg Config
		err error
	)
	if c.configPath != "" {
		cfg, err = LoadConfig(c.configPath)
	} else {
		cfg, err = loadDefaultConfig()
	}
	if err != nil {
		return err
	}
	c.Config = cfg
	c.Logger.Debug("config loaded", "workers", cfg.Workers, "policy", cfg.Triangulate.Policy)
	return nil
}
