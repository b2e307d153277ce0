// Package export writes tabular feed data to its destinations: local CSV
// files and spreadsheet cell ranges.
package export

import "context"

// Exporter writes one rectangular batch of rows to a destination. The
// first row is the header; implementations replace any previous content.
type Exporter interface {
	Export(ctx context.Context, rows [][]string) error
}
