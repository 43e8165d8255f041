// Package cli implements the glasstheme command line.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/opencode-ai/glasstheme/internal/config"
	"github.com/opencode-ai/glasstheme/internal/convert"
	"github.com/opencode-ai/glasstheme/internal/logging"
	"github.com/opencode-ai/glasstheme/internal/render"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile  string
	logLevel string
	variant  string
	preset   string

	// Root flags
	tailwind bool
	resolve  bool
	save     bool

	// Loaded configuration
	appConfig *config.Config
)

const usageText = `Convert an OKLCH palette into glass design tokens.

Usage:
  glasstheme <palette.json> [--tailwind]
  glasstheme --preset <name> [--tailwind]

Palette format (OKLCH anchor):
{
  "name": "brand",
  "anchor": { "oklch": { "l": 0.60, "c": 0.15, "h": 280 } }
}

Full format (discrete palette):
{
  "name": "brand",
  "anchor": { "hex": "#6b5bd6", "oklch": { "l": 0.60, "c": 0.15, "h": 280 } },
  "colors": [
    { "index": 0, "hex": "#1a1033", "oklch": { "l": 0.20, "c": 0.08, "h": 280 } }
  ]
}

Simple format (single color):
{
  "name": "brand",
  "primary": "#6b5bd6",
  "secondary": "#f3a712"
}

Run "glasstheme --help" for every command and flag.
`

var rootCmd = &cobra.Command{
	Use:   "glasstheme [palette.json]",
	Short: "Convert an OKLCH palette into glass design tokens",
	Long: `glasstheme converts a perceptual colour palette into CSS custom properties
for glass style interfaces.

A palette with a single OKLCH anchor produces a seven tone ramp with semantic,
status, glass, glow and text tokens. A discrete palette, or a single hex
colour, produces separate dark and light token sets.`,
	Args:          cobra.ArbitraryArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runConvert,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Assigned here because initConfig reads rootCmd's flags.
	rootCmd.PersistentPreRunE = initConfig

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/glasstheme/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&variant, "variant", "", "converter to use: auto, ramp or discrete")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "convert a named preset instead of a file")

	rootCmd.Flags().BoolVar(&tailwind, "tailwind", false, "append a Tailwind v4 @theme fragment")
	rootCmd.Flags().BoolVar(&resolve, "resolve", false, "write literal colours instead of var() references")
	rootCmd.Flags().BoolVar(&save, "save", false, "store the generated stylesheet in history")
}

func initConfig(cmd *cobra.Command, args []string) error {
	v := config.New(cfgFile)

	bindings := map[string]string{
		"logging.level":   "log-level",
		"convert.variant": "variant",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			return fmt.Errorf("bind %s: %w", flag, err)
		}
	}
	for key, flag := range map[string]string{
		"output.tailwind": "tailwind",
		"output.resolve":  "resolve",
		"history.enabled": "save",
	} {
		if err := v.BindPFlag(key, rootCmd.Flags().Lookup(flag)); err != nil {
			return fmt.Errorf("bind %s: %w", flag, err)
		}
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	appConfig = cfg

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cmd.ErrOrStderr(),
	})
	return nil
}

// GetConfig returns the loaded configuration, or defaults before loading.
func GetConfig() *config.Config {
	if appConfig == nil {
		return config.DefaultConfig()
	}
	return appConfig
}

func runConvert(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && strings.TrimSpace(preset) == "" {
		_, err := io.WriteString(cmd.OutOrStdout(), usageText)
		return err
	}

	cfg := GetConfig()
	input, err := loadInput(args, cfg)
	if err != nil {
		return err
	}

	converter := convert.New(logging.Component("convert"), convert.WithResolve(cfg.Output.Resolve))
	theme, err := converter.Convert(input)
	if err != nil {
		return err
	}

	var doc strings.Builder
	out := io.MultiWriter(cmd.OutOrStdout(), &doc)
	if err := render.Write(out, theme, render.Options{Tailwind: cfg.Output.Tailwind}); err != nil {
		return err
	}

	if cfg.History.Enabled {
		return saveHistory(cmd.Context(), cfg, input, theme, doc.String())
	}
	return nil
}

func projectDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	return dir
}
