package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/opencode-ai/glasstheme/internal/convert"
	"github.com/opencode-ai/glasstheme/internal/logging"
	"github.com/opencode-ai/glasstheme/internal/tui/styles"
	"github.com/opencode-ai/glasstheme/internal/tokens"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var previewBackdrop string

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVar(&previewBackdrop, "backdrop", styles.DarkBackdrop.Name, "backdrop for single-set themes: dark or light")
}

var previewCmd = &cobra.Command{
	Use:   "preview [palette.json]",
	Short: "Show converted tokens as terminal swatches",
	Long: `Convert a palette and show each colour token as a swatch. Translucent
tokens are composited over a dark or light backdrop; --backdrop picks it
for ramp themes, discrete themes show both. Without a terminal
the swatches are listed as a table of composited hex values.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backdrop, ok := styles.Backdrops[strings.ToLower(strings.TrimSpace(previewBackdrop))]
		if !ok {
			return fmt.Errorf("unknown backdrop %q (want dark or light)", previewBackdrop)
		}
		input, err := loadInput(args, GetConfig())
		if err != nil {
			return err
		}
		theme, err := convert.New(logging.Component("convert")).Convert(input)
		if err != nil {
			return err
		}
		return renderPreview(cmd.OutOrStdout(), theme, backdrop, hasTTY())
	},
}

type previewSection struct {
	title    string
	set      *tokens.Set
	backdrop styles.Backdrop
}

func previewSections(theme *convert.Theme, backdrop styles.Backdrop) []previewSection {
	if theme.Ramp() {
		return []previewSection{{title: theme.Name + " (" + backdrop.Name + ")", set: theme.Tokens, backdrop: backdrop}}
	}
	return []previewSection{
		{title: theme.Name + " (dark)", set: theme.Dark, backdrop: styles.DarkBackdrop},
		{title: theme.Name + " (light)", set: theme.Light, backdrop: styles.LightBackdrop},
	}
}

func renderPreview(out io.Writer, theme *convert.Theme, backdrop styles.Backdrop, color bool) error {
	s := styles.DefaultStyles()
	for i, section := range previewSections(theme, backdrop) {
		swatches, err := styles.Swatches(section.set, section.backdrop)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(out)
		}

		if color {
			fmt.Fprint(out, s.RenderSection(section.title, swatches))
			continue
		}

		fmt.Fprintf(out, "%s\n", section.title)
		rows := make([][]string, 0, len(swatches))
		for _, swatch := range swatches {
			fill := swatch.Fill
			if fill == "" {
				fill = "-"
			}
			rows = append(rows, []string{swatch.Key, fill, truncate(swatch.Value, 48)})
		}
		if err := writeTable(out, []string{"TOKEN", "FILL", "VALUE"}, rows); err != nil {
			return err
		}
	}
	return nil
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
