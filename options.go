package feedsync

import (
	"github.com/amby-app/feedsync/internal/export"
	"github.com/amby-app/feedsync/internal/images"
	"github.com/amby-app/feedsync/internal/notify"
	"github.com/amby-app/feedsync/internal/sheets"
	"github.com/amby-app/feedsync/internal/sources"
	"github.com/amby-app/feedsync/internal/storefront"
	"github.com/amby-app/feedsync/pkg/constants"
)

// config holds the tunable settings of a Feedsync instance.
type config struct {
	siteToken      string
	endpoints      storefront.Endpoints
	partnersConfig string

	exportPath  string
	collectPath string

	usersFile        string
	unsubscribedFile string
	defaultCohort    string
}

func defaultConfig() *config {
	return &config{
		partnersConfig:   constants.DefaultPartnersConfig,
		exportPath:       constants.DefaultExportPath,
		collectPath:      constants.DefaultCollectPath,
		unsubscribedFile: constants.DefaultUnsubscribedFile,
	}
}

// Option is a function that configures a Feedsync instance.
type Option func(*feedsync) error

// WithSiteToken sets the API token for the authoritative site storefront.
func WithSiteToken(token string) Option {
	return func(f *feedsync) error {
		f.config.siteToken = token
		return nil
	}
}

// WithEndpoints sets the storefront platform API endpoints, shared by the
// site client and platform-hosted partner sources.
func WithEndpoints(endpoints storefront.Endpoints) Option {
	return func(f *feedsync) error {
		f.config.endpoints = endpoints
		return nil
	}
}

// WithPartnersConfig sets the path of the partner registry file.
func WithPartnersConfig(path string) Option {
	return func(f *feedsync) error {
		f.config.partnersConfig = path
		return nil
	}
}

// WithRegistry sets the partner registry directly, bypassing the file.
func WithRegistry(registry *sources.Registry) Option {
	return func(f *feedsync) error {
		f.registry = registry
		return nil
	}
}

// WithRehoster enables image rehosting for partner feeds. Without it,
// exported rows keep the partner's original image URLs.
func WithRehoster(rehoster *images.Rehoster) Option {
	return func(f *feedsync) error {
		f.rehoster = rehoster
		return nil
	}
}

// WithExporter sets the export destination. The default writes a CSV
// file under the data directory.
func WithExporter(exporter export.Exporter) Option {
	return func(f *feedsync) error {
		f.exporter = exporter
		return nil
	}
}

// WithExportPath sets the path of the default CSV export file.
func WithExportPath(path string) Option {
	return func(f *feedsync) error {
		f.config.exportPath = path
		return nil
	}
}

// WithCollectPath sets the path the collected site feed is saved to.
func WithCollectPath(path string) Option {
	return func(f *feedsync) error {
		f.config.collectPath = path
		return nil
	}
}

// WithNotifier enables export notifications.
func WithNotifier(notifier notify.Notifier) Option {
	return func(f *feedsync) error {
		f.notifier = notifier
		return nil
	}
}

// WithSheets sets the spreadsheet client used by cohort sync.
func WithSheets(client *sheets.Client) Option {
	return func(f *feedsync) error {
		f.sheets = client
		return nil
	}
}

// WithCohortFiles sets the bot user store and unsubscribe log paths.
func WithCohortFiles(usersFile, unsubscribedFile string) Option {
	return func(f *feedsync) error {
		f.config.usersFile = usersFile
		f.config.unsubscribedFile = unsubscribedFile
		return nil
	}
}

// WithDefaultCohort sets the cohort assigned to users newly appended to
// the roster.
func WithDefaultCohort(cohort string) Option {
	return func(f *feedsync) error {
		f.config.defaultCohort = cohort
		return nil
	}
}
