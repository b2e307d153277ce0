// Package constants provides shared constants used throughout the feedsync codebase.
// This includes page sizes, concurrency caps, separators, cohort markers, and
// other configuration values that should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to feed APIs
	DefaultHTTPTimeout = 30 * time.Second

	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 10 * time.Minute

	// ExportTimeout is the timeout for a full export batch run
	ExportTimeout = 30 * time.Minute
)

// Pagination and concurrency constants
const (
	// PageSize is the number of items per page imposed by the storefront API
	PageSize = 100

	// MaxConcurrentTransforms is the fan-out cap for per-item pipeline stages
	// (normalization, override resolution, image rehosting)
	MaxConcurrentTransforms = 4
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Export format constants
const (
	// OptionSeparator joins multi-valued export fields (sizes, collections, image URLs)
	OptionSeparator = ";"

	// HandleIDPrefix prefixes every generated product handle
	HandleIDPrefix = "Product_"

	// FieldTypeProduct is the fieldType column value for product rows
	FieldTypeProduct = "Product"

	// SizeOptionName is the storefront's size option group name
	SizeOptionName = "Размер"

	// SizeOptionType is the storefront's option input type for sizes
	SizeOptionType = "DROP_DOWN"
)

// Size template placeholders, substituted per concrete size value
const (
	// NumericSizePlaceholder marks templates instantiated with numeric sizes
	NumericSizePlaceholder = "100"

	// StringSizePlaceholder marks templates instantiated with letter sizes
	StringSizePlaceholder = "SIZE"
)

// Cohort sheet constants
const (
	// UnsubscribedCohort is the cohort label written for unsubscribed users
	UnsubscribedCohort = "отписан"

	// UndefinedMarker replaces id/cohort cells that carry a prior sentinel value
	UndefinedMarker = "UNDEFINED"

	// CohortSentinel flags id/cohort cells that must not be rewritten
	CohortSentinel = "#"

	// CohortSortColumn is the zero-based column holding the numeric sort key
	CohortSortColumn = 4
)

// Default paths
const (
	// DefaultPartnersConfig is the default path of the partner registry file
	DefaultPartnersConfig = "partners.yaml"

	// DefaultUnsubscribedFile is the default path of the unsubscribe list,
	// consumed and truncated on every cohort run
	DefaultUnsubscribedFile = "data/unsubscribed_users"

	// DefaultExportPath is the default catalog export destination
	DefaultExportPath = "data/export.csv"

	// DefaultCollectPath is the default storefront item feed destination
	DefaultCollectPath = "data/amby.app/feed.json"
)

// Image hosting constants
const (
	// ImageHostBaseURL is the canonical public base URL for rehosted images
	ImageHostBaseURL = "https://storage.googleapis.com"

	// DefaultImageBucket is the default image store bucket name
	DefaultImageBucket = "amby"
)
