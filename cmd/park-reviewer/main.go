package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaqzi/park-reviewer/internal/app"
	"github.com/gaqzi/park-reviewer/internal/platform/config"
	"github.com/gaqzi/park-reviewer/internal/platform/logging"
	"github.com/gaqzi/park-reviewer/internal/reviewing"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "park-reviewer",
		Short: "Browse and maintain a CSV file of Disneyland park reviews",
		Long: `park-reviewer opens an interactive menu to view, add, delete and edit the
reviews kept in a CSV file.

Settings are read from the environment, and from a .env file when present:
REVIEWS_FILE, REVIEWS_MAX_RECORDS, REVIEWS_TEXT_WIDTH, LOG_LEVEL and LOG_FORMAT.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reviewer, err := start(cmd)
			if err != nil {
				return err
			}

			return reviewer.Run(cmd.Context())
		},
	}
	root.PersistentFlags().StringP("file", "f", "", "path to the reviews CSV file (overrides REVIEWS_FILE)")

	var sort string
	list := &cobra.Command{
		Use:   "list",
		Short: "Print the reviews as a table and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := reviewing.ParseSortKey(sort)
			if err != nil {
				return err
			}

			reviewer, err := start(cmd)
			if err != nil {
				return err
			}

			return reviewer.List(cmd.Context(), key)
		},
	}
	list.Flags().StringVarP(&sort, "sort", "s", string(reviewing.SortNone), "order to print in: none, rating or branch")
	root.AddCommand(list)

	return root
}

// start loads the configuration, sets up logging and wires the reviewer to the terminal.
// The command's flags take precedence over the environment.
func start(cmd *cobra.Command) (*app.Reviewer, error) {
	cfg, err := config.Load(cmd.Flags(), ".env")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logging.Setup(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)

	return app.Start(app.ConfigFrom(cfg.Reviews), cmd.InOrStdin(), cmd.OutOrStdout())
}
