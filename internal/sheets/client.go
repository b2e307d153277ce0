// Package sheets wraps the Google Sheets API for reading and writing
// rectangular cell ranges as string matrices.
package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/amby-app/feedsync/pkg/errors"
)

// Client reads and writes one spreadsheet.
type Client struct {
	service       *sheetsapi.Service
	spreadsheetID string
}

// NewClient creates a client for the given spreadsheet. Credentials come
// from the provided client options (typically a service account key file
// or application default credentials).
func NewClient(ctx context.Context, spreadsheetID string, opts ...option.ClientOption) (*Client, error) {
	service, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.NewConfigError("sheets", "failed to create service", err)
	}

	return &Client{
		service:       service,
		spreadsheetID: spreadsheetID,
	}, nil
}

// Get reads a cell range as a string matrix. Rows keep their sheet order;
// trailing empty cells are absent, as the API returns ragged rows.
func (c *Client) Get(ctx context.Context, cellRange string) ([][]string, error) {
	resp, err := c.service.Spreadsheets.Values.Get(c.spreadsheetID, cellRange).Context(ctx).Do()
	if err != nil {
		return nil, errors.WrapResource("fetch", "sheet range", cellRange, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, fmt.Sprint(cell))
		}
		rows = append(rows, cells)
	}

	return rows, nil
}

// Update writes a string matrix into a cell range verbatim, without any
// value interpretation by the spreadsheet.
func (c *Client) Update(ctx context.Context, cellRange string, rows [][]string) error {
	values := make([][]any, 0, len(rows))
	for _, row := range rows {
		cells := make([]any, 0, len(row))
		for _, cell := range row {
			cells = append(cells, cell)
		}
		values = append(values, cells)
	}

	body := &sheetsapi.ValueRange{Values: values}

	_, err := c.service.Spreadsheets.Values.Update(c.spreadsheetID, cellRange, body).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return errors.WrapResource("update", "sheet range", cellRange, err)
	}

	return nil
}
