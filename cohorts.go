package feedsync

import (
	"context"
	"fmt"

	"github.com/amby-app/feedsync/internal/cohorts"
	"github.com/amby-app/feedsync/internal/export"
	"github.com/amby-app/feedsync/pkg/constants"
	"github.com/amby-app/feedsync/pkg/errors"
	"github.com/amby-app/feedsync/pkg/logging"
)

// Sheet geometry of the cohort roster tab.
const (
	cohortTab      = "Users"
	cohortStartCol = "A"
	cohortEndCol   = "G"
)

// SyncCohorts rewrites the subscriber roster: unsubscribed users are
// moved to the unsubscribed cohort, empty cohorts get the undefined
// marker, new bot users are appended with the default cohort, and the
// whole roster is written back sorted.
func (f *feedsync) SyncCohorts(ctx context.Context) error {
	logger := logging.FromContext(ctx)

	if f.sheets == nil {
		return errors.NewConfigError("sheets", "spreadsheet client is required for cohort sync", nil)
	}

	readRange := fmt.Sprintf("%s!%s:%s", cohortTab, cohortStartCol, cohortEndCol)
	sheetRows, err := f.sheets.Get(ctx, readRange)
	if err != nil {
		return err
	}

	unsubscribed, err := cohorts.ReadUnsubscribed(f.config.unsubscribedFile)
	if err != nil {
		return err
	}

	users, err := cohorts.LoadUsers(f.config.usersFile)
	if err != nil {
		return err
	}

	defaultCohort := f.config.defaultCohort
	if defaultCohort == "" {
		defaultCohort = constants.UndefinedMarker
	}

	rows := cohorts.Reconcile(sheetRows, unsubscribed, users, defaultCohort)

	exporter := export.NewRange(f.sheets, cohortTab, cohortStartCol, cohortEndCol)
	if err := exporter.Export(ctx, rows); err != nil {
		return err
	}

	logger.Info().
		Int("rows", len(rows)).
		Int("unsubscribed", len(unsubscribed)).
		Int("store_users", len(users)).
		Msg("Cohort roster synced")
	return nil
}
