// Package app provides the application context and dependency management
// for the feedsync CLI. It centralizes configuration, logging, and the
// feedsync instance behind one injection point.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"google.golang.org/api/option"

	gcs "cloud.google.com/go/storage"

	"github.com/amby-app/feedsync"
	"github.com/amby-app/feedsync/internal/images"
	"github.com/amby-app/feedsync/internal/notify"
	"github.com/amby-app/feedsync/internal/sheets"
	"github.com/amby-app/feedsync/internal/storefront"
	"github.com/amby-app/feedsync/pkg/errors"
)

// App represents the feedsync application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Feedsync instance (lazy-initialized, singleton)
	mu       sync.RWMutex
	feedsync feedsync.Feedsync
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Feedsync returns the feedsync instance, creating it lazily if needed.
// This is thread-safe and ensures only one instance is created.
func (a *App) Feedsync(ctx context.Context) (feedsync.Feedsync, error) {
	a.mu.RLock()
	if a.feedsync != nil {
		fs := a.feedsync
		a.mu.RUnlock()
		return fs, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.feedsync != nil {
		return a.feedsync, nil
	}

	opts, err := a.buildFeedsyncOptions(ctx)
	if err != nil {
		return nil, err
	}

	fs, err := feedsync.New(opts...)
	if err != nil {
		return nil, errors.WrapResource("create", "feedsync", "", err)
	}

	a.feedsync = fs
	return fs, nil
}

// buildFeedsyncOptions constructs feedsync options from the app configuration.
// Optional integrations (image bucket, Slack, spreadsheet) are wired only
// when configured.
func (a *App) buildFeedsyncOptions(ctx context.Context) ([]feedsync.Option, error) {
	opts := []feedsync.Option{
		feedsync.WithSiteToken(a.config.SiteToken),
		feedsync.WithEndpoints(storefront.Endpoints{
			ProductsURL:    a.config.ProductsURL,
			CollectionsURL: a.config.CollectionsURL,
			ProductURL:     a.config.ProductURL,
		}),
		feedsync.WithPartnersConfig(a.config.PartnersConfig),
		feedsync.WithExportPath(a.config.ExportPath),
		feedsync.WithCollectPath(a.config.CollectPath),
		feedsync.WithCohortFiles(a.config.UsersFile, a.config.UnsubscribedFile),
	}

	if a.config.ImageBucket != "" {
		client, err := gcs.NewClient(ctx)
		if err != nil {
			return nil, errors.NewConfigError("storage", "failed to create storage client", err)
		}
		store := images.NewGCSStore(client, a.config.ImageBucket)
		opts = append(opts, feedsync.WithRehoster(images.NewRehoster(store, a.config.ImageBucket)))
	}

	if a.config.SlackToken != "" && a.config.SlackChannel != "" {
		opts = append(opts, feedsync.WithNotifier(notify.NewSlack(a.config.SlackToken, a.config.SlackChannel)))
	}

	if a.config.SheetID != "" {
		client, err := sheets.NewClient(ctx, a.config.SheetID, option.WithScopes(sheetsScope))
		if err != nil {
			return nil, err
		}
		opts = append(opts, feedsync.WithSheets(client))
	}

	if a.config.DefaultCohort != "" {
		opts = append(opts, feedsync.WithDefaultCohort(a.config.DefaultCohort))
	}

	return opts, nil
}

const sheetsScope = "https://www.googleapis.com/auth/spreadsheets"

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithFeedsync sets a custom feedsync instance (useful for testing).
func WithFeedsync(fs feedsync.Feedsync) Option {
	return func(a *App) error {
		a.feedsync = fs
		return nil
	}
}
