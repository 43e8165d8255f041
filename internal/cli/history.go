package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/opencode-ai/glasstheme/internal/config"
	"github.com/opencode-ai/glasstheme/internal/convert"
	"github.com/opencode-ai/glasstheme/internal/db"
	"github.com/opencode-ai/glasstheme/internal/logging"
	"github.com/opencode-ai/glasstheme/internal/models"
	"github.com/opencode-ai/glasstheme/internal/palette"
	"github.com/spf13/cobra"
)

var historyLimit int

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyRemoveCmd)

	historyListCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of themes to list")
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect saved stylesheets",
	Long:  "Inspect stylesheets stored with --save or history.enabled.",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved themes, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := openDatabase(cmd.Context(), GetConfig())
		if err != nil {
			return err
		}
		defer database.Close()

		themes, err := db.NewThemeRepository(database).List(cmd.Context(), historyLimit)
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(themes))
		for _, theme := range themes {
			rows = append(rows, []string{
				theme.ID,
				theme.Name,
				string(theme.Kind),
				strconv.Itoa(theme.TokenCount),
				truncate(theme.Source, 40),
				theme.CreatedAt.Local().Format(time.DateTime),
			})
		}
		return writeTable(cmd.OutOrStdout(), []string{"ID", "NAME", "KIND", "TOKENS", "SOURCE", "CREATED"}, rows)
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a saved stylesheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := openDatabase(cmd.Context(), GetConfig())
		if err != nil {
			return err
		}
		defer database.Close()

		theme, err := db.NewThemeRepository(database).Get(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("%w: %s", err, args[0])
		}
		_, err = io.WriteString(cmd.OutOrStdout(), theme.Stylesheet)
		return err
	},
}

var historyRemoveCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a saved stylesheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := openDatabase(cmd.Context(), GetConfig())
		if err != nil {
			return err
		}
		defer database.Close()

		if err := db.NewThemeRepository(database).Delete(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("%w: %s", err, args[0])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
		return nil
	},
}

func openDatabase(ctx context.Context, cfg *config.Config) (*db.DB, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	database, err := db.Open(cfg.History.Path)
	if err != nil {
		return nil, err
	}
	if _, err := database.MigrateUp(ctx); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

func saveHistory(ctx context.Context, cfg *config.Config, input *palette.Input, theme *convert.Theme, stylesheet string) error {
	database, err := openDatabase(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer database.Close()

	count := 0
	if theme.Ramp() {
		count = theme.Tokens.Len()
	} else {
		count = theme.Dark.Len()
	}

	record := &models.ThemeRecord{
		Name:       theme.Name,
		Kind:       models.ThemeKind(theme.Kind),
		Source:     input.Source,
		Stylesheet: stylesheet,
		TokenCount: count,
	}
	if err := db.NewThemeRepository(database).Create(ctx, record); err != nil {
		return fmt.Errorf("save history: %w", err)
	}

	logger := logging.Component("history")
	logger.Info().Str("theme_id", record.ID).Str("path", cfg.History.Path).Msg("theme saved")
	return nil
}
