package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/amby-app/feedsync/pkg/constants"
)

// Default storefront platform API endpoints.
const (
	defaultProductsURL    = "https://www.wixapis.com/stores/v1/products/query"
	defaultCollectionsURL = "https://www.wixapis.com/stores/v1/collections"
	defaultProductURL     = "https://www.wixapis.com/stores/v1/products"
)

// Config holds the application configuration loaded from config files,
// environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool

	// Site storefront
	SiteToken      string
	ProductsURL    string
	CollectionsURL string
	ProductURL     string

	// Partner feeds
	PartnersConfig string
	ExportPath     string
	ImageBucket    string

	// Bot feed collection
	CollectPath string

	// Cohort sync
	SheetID          string
	UsersFile        string
	UnsubscribedFile string
	DefaultCohort    string

	// Notifications
	SlackToken   string
	SlackChannel string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// command-line flags (handled by cobra), environment variables, .env
// files, then defaults.
func LoadConfig() (*Config, error) {
	loadEnvFiles()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	config := &Config{
		SiteToken:      viper.GetString("SITE_TOKEN"),
		ProductsURL:    viper.GetString("PRODUCTS_URL"),
		CollectionsURL: viper.GetString("COLLECTIONS_URL"),
		ProductURL:     viper.GetString("PRODUCT_URL"),

		PartnersConfig: viper.GetString("PARTNERS_CONFIG"),
		ExportPath:     viper.GetString("EXPORT_PATH"),
		ImageBucket:    viper.GetString("IMAGE_BUCKET"),

		CollectPath: viper.GetString("COLLECT_PATH"),

		SheetID:          viper.GetString("COHORT_SHEET_ID"),
		UsersFile:        viper.GetString("USERS_FILE"),
		UnsubscribedFile: viper.GetString("UNSUBSCRIBED_FILE"),
		DefaultCohort:    viper.GetString("DEFAULT_COHORT"),

		SlackToken:   viper.GetString("SLACK_TOKEN"),
		SlackChannel: viper.GetString("SLACK_CHANNEL"),

		LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	// Defaults
	if config.ProductsURL == "" {
		config.ProductsURL = defaultProductsURL
	}
	if config.CollectionsURL == "" {
		config.CollectionsURL = defaultCollectionsURL
	}
	if config.ProductURL == "" {
		config.ProductURL = defaultProductURL
	}
	if config.PartnersConfig == "" {
		config.PartnersConfig = constants.DefaultPartnersConfig
	}
	if config.ExportPath == "" {
		config.ExportPath = constants.DefaultExportPath
	}
	if config.ImageBucket == "" {
		config.ImageBucket = constants.DefaultImageBucket
	}
	if config.CollectPath == "" {
		config.CollectPath = constants.DefaultCollectPath
	}
	if config.UnsubscribedFile == "" {
		config.UnsubscribedFile = constants.DefaultUnsubscribedFile
	}

	return config, nil
}

// UpdateFromFlags updates config values from parsed command flags so flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env.
func loadEnvFiles() {
	envFiles := []string{
		".env",
		".env.local",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
