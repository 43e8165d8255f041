package cli

import (
	"github.com/opencode-ai/glasstheme/internal/palette"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(presetsCmd)
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List available palette presets",
	Long: `List builtin palettes and palettes found in .glasstheme/palettes,
~/.config/glasstheme/palettes and /usr/share/glasstheme/palettes.
The first directory that defines a name wins.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		presets, err := palette.LoadPresetsFromSearchPaths(projectDir())
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(presets))
		for _, p := range presets {
			rows = append(rows, []string{p.Name, string(p.Kind()), p.Source, p.Description})
		}
		return writeTable(cmd.OutOrStdout(), []string{"NAME", "KIND", "SOURCE", "DESCRIPTION"}, rows)
	},
}
