// Package feedsync reconciles partner product feeds against the
// authoritative site catalog and exports the result for import, collects
// the site's own feed for the recommendation bot, and keeps the
// subscriber cohort roster in sync.
package feedsync

import (
	"context"
	"fmt"

	"github.com/amby-app/feedsync/internal/export"
	"github.com/amby-app/feedsync/internal/images"
	"github.com/amby-app/feedsync/internal/notify"
	"github.com/amby-app/feedsync/internal/sheets"
	"github.com/amby-app/feedsync/internal/sources"
	"github.com/amby-app/feedsync/internal/storefront"

	// Partner normalizers register themselves on import.
	_ "github.com/amby-app/feedsync/internal/sources/bewearcy"
	_ "github.com/amby-app/feedsync/internal/sources/wantherdress"
)

// Feedsync runs the feed reconciliation pipelines.
type Feedsync interface {
	// ExportPartner fetches one partner's feed, reconciles it against the
	// site catalog, and exports the resulting rows.
	ExportPartner(ctx context.Context, partner string) error

	// Collect fetches the site's own feed and saves it as the bot's
	// product database.
	Collect(ctx context.Context) error

	// SyncCohorts reconciles the subscriber roster spreadsheet with the
	// bot's user store and unsubscribe log.
	SyncCohorts(ctx context.Context) error
}

// feedsync is the internal implementation of the Feedsync interface
type feedsync struct {
	config *config

	site     *storefront.Client
	registry *sources.Registry
	rehoster *images.Rehoster
	exporter export.Exporter
	notifier notify.Notifier
	sheets   *sheets.Client
}

// New creates a new Feedsync instance with the given options.
func New(opts ...Option) (Feedsync, error) {
	fs := &feedsync{
		config: defaultConfig(),
	}

	if err := fs.options(opts...); err != nil {
		return nil, fmt.Errorf("applying options: %w", err)
	}

	if fs.config.siteToken != "" {
		fs.site = storefront.NewClient(fs.config.siteToken, "site", fs.config.endpoints)
	}

	if fs.registry == nil {
		registry, err := sources.LoadRegistry(fs.config.partnersConfig)
		if err != nil {
			return nil, err
		}
		fs.registry = registry
	}

	if fs.exporter == nil {
		fs.exporter = export.NewFile(fs.config.exportPath)
	}

	return fs, nil
}

// options applies the given options to the instance config.
func (f *feedsync) options(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(f); err != nil {
			return err
		}
	}
	return nil
}
