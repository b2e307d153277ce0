package export

import (
	"context"
	"fmt"

	"github.com/amby-app/feedsync/internal/sheets"
	"github.com/amby-app/feedsync/pkg/logging"
)

// Range exports rows into a spreadsheet tab by replacing a column-bounded
// cell range sized exactly to the batch. Rows below the written range are
// left untouched.
type Range struct {
	Sheets   *sheets.Client
	Tab      string
	StartCol string
	EndCol   string
}

// NewRange creates a range exporter for one tab and column span.
func NewRange(client *sheets.Client, tab, startCol, endCol string) *Range {
	return &Range{
		Sheets:   client,
		Tab:      tab,
		StartCol: startCol,
		EndCol:   endCol,
	}
}

// Export replaces the range from the first row down to the last batch row.
func (r *Range) Export(ctx context.Context, rows [][]string) error {
	cellRange := fmt.Sprintf("%s!%s1:%s%d", r.Tab, r.StartCol, r.EndCol, len(rows))

	if err := r.Sheets.Update(ctx, cellRange, rows); err != nil {
		return err
	}

	logging.FromContext(ctx).Info().
		Str("range", cellRange).
		Int("rows", len(rows)).
		Msg("Sheet range updated")
	return nil
}
