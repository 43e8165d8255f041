package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/opencode-ai/glasstheme/internal/config"
	"github.com/opencode-ai/glasstheme/internal/palette"
)

// stdinReader is swapped in tests.
var stdinReader io.Reader = os.Stdin

// loadInput reads the palette named by --preset or the first positional
// argument. "-" reads JSON from stdin.
func loadInput(args []string, cfg *config.Config) (*palette.Input, error) {
	v, err := palette.ParseVariant(cfg.Convert.Variant)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(preset); name != "" {
		if len(args) > 0 {
			return nil, fmt.Errorf("--preset cannot be combined with a palette file")
		}
		p, err := palette.FindPreset(projectDir(), name)
		if err != nil {
			return nil, err
		}
		return p.Input(v)
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("palette file is required")
	}

	path := args[0]
	if path == "-" {
		data, err := io.ReadAll(stdinReader)
		if err != nil {
			return nil, fmt.Errorf("read palette from stdin: %w", err)
		}
		input, err := palette.Parse(data, v)
		if err != nil {
			return nil, err
		}
		input.Source = "stdin"
		return input, nil
	}
	return palette.Load(path, v)
}
