package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amby-app/feedsync/pkg/logging"
)

// NewExportCommand creates the export command.
func (a *App) NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <partner>",
		Short: "Reconcile and export one partner feed",
		Long: `Export fetches the named partner's feed, resolves every product
against the authoritative site catalog, deduplicates the batch, and
writes the import file. With Slack configured, the file is delivered to
the operations channel afterwards.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := logging.WithLogger(cmd.Context(), a.logger)

			if output := mustGetString(cmd, "output"); output != "" {
				a.config.ExportPath = output
			}

			fs, err := a.Feedsync(ctx)
			if err != nil {
				return err
			}
			return fs.ExportPartner(ctx, args[0])
		},
	}
	cmd.Flags().StringP("output", "o", "", "export file path (default "+a.config.ExportPath+")")
	return cmd
}

// NewCollectCommand creates the collect command.
func (a *App) NewCollectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collect",
		Short: "Collect the site feed for the recommendation bot",
		Long: `Collect pulls the site's own product feed, cleans descriptions into
plain text, instantiates gender/size filter tags, and saves the result
as the bot's product database.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := logging.WithLogger(cmd.Context(), a.logger)

			if output := mustGetString(cmd, "output"); output != "" {
				a.config.CollectPath = output
			}

			fs, err := a.Feedsync(ctx)
			if err != nil {
				return err
			}
			return fs.Collect(ctx)
		},
	}
	cmd.Flags().StringP("output", "o", "", "feed file path (default "+a.config.CollectPath+")")
	return cmd
}

// NewCohortsCommand creates the cohorts command.
func (a *App) NewCohortsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cohorts",
		Short: "Sync the subscriber cohort roster spreadsheet",
		Long: `Cohorts reconciles the roster spreadsheet with the bot's user store
and unsubscribe log, then writes the updated roster back in place.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := logging.WithLogger(cmd.Context(), a.logger)

			fs, err := a.Feedsync(ctx)
			if err != nil {
				return err
			}
			return fs.SyncCohorts(ctx)
		},
	}
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "feedsync %s\n", a.version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit:   %s\n", a.commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:    %s\n", a.date)
			fmt.Fprintf(cmd.OutOrStdout(), "  built by: %s\n", a.builtBy)
		},
	}
}
