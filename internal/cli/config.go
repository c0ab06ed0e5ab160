package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// Config is the optional config file, ~/.config/lvmesh/config.toml by
// default:
//
//	workers = 4
//
//	[store]
//	path = "/var/lib/lvmesh"
//	sync_writes = true
//
//	[triangulate]
//	policy = "ear"
//
//	[sphere]
//	segments = 32
//	rings = 16
type Config struct {
	Workers     int               `toml:"workers" validate:"gte=1,lte=256"`
	Store       StoreConfig       `toml:"store"`
	Triangulate TriangulateConfig `toml:"triangulate"`
	Sphere      SphereConfig      `toml:"sphere"`
}

// StoreConfig locates the mesh database.
type StoreConfig struct {
	Path       string `toml:"path"`
	SyncWrites bool   `toml:"sync_writes"`
}

// TriangulateConfig selects the default triangulation policy.
type TriangulateConfig struct {
	Policy string `toml:"policy" validate:"oneof=fan ear"`
}

// SphereConfig holds the default UV sphere resolution.
type SphereConfig struct {
	Segments int `toml:"segments" validate:"gte=3"`
	Rings    int `toml:"rings" validate:"gte=2"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Workers:     4,
		Store:       StoreConfig{SyncWrites: true},
		Triangulate: TriangulateConfig{Policy: policyFan},
		Sphere:      SphereConfig{Segments: 16, Rings: 8},
	}
}

var validate = validator.New()

// LoadConfig reads path over the defaults. Unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the value ranges of every field.
func (c Config) Validate() error {
	return validate.Struct(c)
}

// loadDefaultConfig reads the file at defaultConfigPath if there is one.
func loadDefaultConfig() (Config, error) {
	path, err := defaultConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}

// defaultConfigPath follows XDG: $XDG_CONFIG_HOME/lvmesh/config.toml.
func defaultConfigPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// defaultStorePath follows XDG: $XDG_DATA_HOME/lvmesh/store.
func defaultStorePath() (string, error) {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, appName, "store"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", appName, "store"), nil
}
