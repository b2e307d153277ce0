package sources

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amby-app/feedsync/pkg/errors"
)

func TestLoadRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partners.yaml")
	content := `partners:
  wantherdress:
    kind: wantherdress
    token_env: STOREFRONT_TOKEN_WANTHERDRESS
  bewearcy:
    kind: bewearcy
    feed_url: http://crm.example.com/api/gettovar
    markup: 750
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	registry, err := LoadRegistry(path)
	require.NoError(t, err)
	require.Len(t, registry.Partners, 2)

	partner, err := registry.Partner("bewearcy")
	require.NoError(t, err)
	assert.Equal(t, "bewearcy", partner.Name)
	assert.Equal(t, KindBewearcy, partner.Kind)
	assert.Equal(t, "http://crm.example.com/api/gettovar", partner.FeedURL)
	assert.Equal(t, 750.0, partner.Markup)
}

func TestLoadRegistryMissingFileFallsBack(t *testing.T) {
	registry, err := LoadRegistry(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	_, err = registry.Partner("wantherdress")
	assert.NoError(t, err)
	_, err = registry.Partner("bewearcy")
	assert.NoError(t, err)
}

func TestLoadRegistryRejectsMissingKind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partners.yaml")
	content := `partners:
  mystery:
    feed_url: http://crm.example.com/api/gettovar
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := LoadRegistry(path)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestLoadRegistryInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partners.yaml")
	require.NoError(t, os.WriteFile(path, []byte("partners: ["), 0o644))

	_, err := LoadRegistry(path)
	require.Error(t, err)
}

func TestRegistryUnknownPartner(t *testing.T) {
	registry := DefaultRegistry()

	_, err := registry.Partner("unknown")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestNewUnknownKind(t *testing.T) {
	_, err := New(Partner{Name: "weird", Kind: Kind("weird")}, Deps{})
	require.Error(t, err)
}
