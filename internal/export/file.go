package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/amby-app/feedsync/pkg/constants"
	"github.com/amby-app/feedsync/pkg/errors"
	"github.com/amby-app/feedsync/pkg/logging"
)

// File exports rows as a CSV file, replacing any previous file at Path.
type File struct {
	Path string
}

// NewFile creates a file exporter writing to path.
func NewFile(path string) *File {
	return &File{Path: path}
}

// Export writes the batch as CSV. The parent directory is created when
// missing. The importer rejects files with a trailing newline, so the
// final line break is trimmed.
func (f *File) Export(ctx context.Context, rows [][]string) error {
	logger := logging.FromContext(ctx)

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.WriteAll(rows); err != nil {
		return errors.WrapIO("write", f.Path, err)
	}

	data := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))

	if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
		return errors.WrapIO("create", filepath.Dir(f.Path), err)
	}
	if err := os.WriteFile(f.Path, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", f.Path, err)
	}

	logger.Info().Str("path", f.Path).Int("rows", len(rows)).Msg("Export file written")
	return nil
}

// ReadCSV reads back a previously exported CSV file. A missing file is
// created empty and yields no rows, so first runs need no setup. Rows may
// be ragged.
func ReadCSV(path string) ([][]string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, errors.WrapIO("create", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, nil, constants.FilePermissions); err != nil {
			return nil, errors.WrapIO("create", path, err)
		}
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.WrapParse("csv", path, err)
	}
	return rows, nil
}
