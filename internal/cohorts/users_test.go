package cohorts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadUsers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	content := `[
  {"userId": "1001", "name": "Anna", "locale": "ru", "platform": "telegram"},
  {"userId": "1002", "name": "Boris", "locale": "en", "platform": "viber"}
]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	users, err := LoadUsers(path)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Anna", users[0].Name)
	assert.Equal(t, "viber", users[1].Platform)
}

func TestLoadUsersMissingFile(t *testing.T) {
	users, err := LoadUsers(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestReadUnsubscribedTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unsubscribed_users")
	require.NoError(t, os.WriteFile(path, []byte("1001\n1002\n\n"), 0o644))

	ids, err := ReadUnsubscribed(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"1001", "1002"}, ids)

	// Each id is processed exactly once.
	ids, err = ReadUnsubscribed(path)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestReadUnsubscribedMissingFileCreatesEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unsubscribed_users")

	ids, err := ReadUnsubscribed(path)
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
