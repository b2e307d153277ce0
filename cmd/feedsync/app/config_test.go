package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, defaultProductsURL, config.ProductsURL)
	assert.Equal(t, defaultCollectionsURL, config.CollectionsURL)
	assert.Equal(t, defaultProductURL, config.ProductURL)
	assert.Equal(t, "partners.yaml", config.PartnersConfig)
	assert.Equal(t, "data/export.csv", config.ExportPath)
	assert.Equal(t, "amby", config.ImageBucket)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("SITE_TOKEN", "env-token")
	t.Setenv("EXPORT_PATH", "out/export.csv")
	t.Setenv("SLACK_CHANNEL", "#feeds")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "env-token", config.SiteToken)
	assert.Equal(t, "out/export.csv", config.ExportPath)
	assert.Equal(t, "#feeds", config.SlackChannel)
}

func TestUpdateFromFlags(t *testing.T) {
	config := &Config{LogLevel: "info"}

	config.UpdateFromFlags(true, false, true, "")
	assert.True(t, config.Verbose)
	assert.True(t, config.NoColor)
	assert.Equal(t, "info", config.LogLevel)

	config.UpdateFromFlags(false, true, false, "error")
	assert.Equal(t, "error", config.LogLevel)
}
