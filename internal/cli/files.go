package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmesh/encoding"
	"github.com/katalvlaran/lvmesh/encoding/meshdoc"
	"github.com/katalvlaran/lvmesh/encoding/obj"
)

const (
	formatOBJ  = "obj"
	formatYAML = "yaml"
	stdio      = "-"
)

// formatOf resolves the file format from an explicit flag or the path's
// extension. Stdio defaults to OBJ.
func formatOf(path, flag string) (string, error) {
	if flag != "" {
		switch flag {
		case formatOBJ, formatYAML:
			return flag, nil
		}
		return "", fmt.Errorf("unknown format %q (want obj or yaml)", flag)
	}
	if path == stdio {
		return formatOBJ, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		return formatOBJ, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	}
	return "", fmt.Errorf("%s: cannot tell format from extension, use --format", path)
}

func decodeModel(r io.Reader, format string) (*encoding.Model, error) {
	if format == formatYAML {
		return meshdoc.Decode(r)
	}
	return obj.Decode(r)
}

func encodeModel(w io.Writer, m *encoding.Model, format string) error {
	if format == formatYAML {
		return meshdoc.Encode(w, m)
	}
	return obj.Encode(w, m)
}

// readModel loads a model from path, or from the command's stdin for "-".
func readModel(cmd *cobra.Command, path, format string) (*encoding.Model, error) {
	format, err := formatOf(path, format)
	if err != nil {
		return nil, err
	}
	if path == stdio {
		return decodeModel(cmd.InOrStdin(), format)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := decodeModel(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if m.Name == "" {
		m.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return m, nil
}

// writeModel stores m at path, or on the command's stdout for "-".
func writeModel(cmd *cobra.Command, path, format string, m *encoding.Model) error {
	format, err := formatOf(path, format)
	if err != nil {
		return err
	}
	if path == stdio {
		return encodeModel(cmd.OutOrStdout(), m, format)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encodeModel(f, m, format); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
