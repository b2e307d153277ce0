package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExportRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "export.csv")
	rows := [][]string{
		{"handleId", "name", "price"},
		{"Product_wool-coat", "Wool coat", "4500"},
		{"Product_leather-bag", "Leather bag, large", "3100"},
	}

	exporter := NewFile(path)
	require.NoError(t, exporter.Export(context.Background(), rows))

	read, err := ReadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, rows, read)
}

func TestFileExportNoTrailingNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.csv")

	exporter := NewFile(path)
	require.NoError(t, exporter.Export(context.Background(), [][]string{{"a", "b"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a,b", string(data))
}

func TestFileExportReplacesPrevious(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.csv")
	exporter := NewFile(path)

	require.NoError(t, exporter.Export(context.Background(), [][]string{{"old"}, {"rows"}}))
	require.NoError(t, exporter.Export(context.Background(), [][]string{{"new"}}))

	read, err := ReadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"new"}}, read)
}

func TestReadCSVMissingFileCreatesEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "export.csv")

	rows, err := ReadCSV(path)
	require.NoError(t, err)
	assert.Nil(t, rows)

	// First read creates the file so the next run finds it.
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}
