// Package sheets wraps the Google Sheets API behind the small surface the
// spreadsheet repositories need.
package sheets

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"gather/config"
)

// ValuesAPI is the value-range surface used by the repositories. The real
// client talks to the Sheets API; tests substitute an in-memory fake.
type ValuesAPI interface {
	// Get reads the value range in A1 notation.
	Get(ctx context.Context, readRange string) ([][]any, error)

	// Append adds rows after the last non-empty row of the range.
	Append(ctx context.Context, writeRange string, rows [][]any) error

	// Update overwrites the value range in place.
	Update(ctx context.Context, writeRange string, rows [][]any) error

	// Clear empties the value range without removing the row itself.
	Clear(ctx context.Context, clearRange string) error
}

// Client is the Sheets-backed implementation of ValuesAPI, authenticated
// with a service account.
type Client struct {
	svc           *sheets.Service
	spreadsheetID string
}

// NewClient builds a Sheets client from the service account credentials in
// the configuration.
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	if cfg.Sheets == nil || cfg.Sheets.SpreadsheetID == "" {
		return nil, errors.New("sheets spreadsheet id must be provided")
	}
	if cfg.Sheets.ClientEmail == "" || cfg.Sheets.PrivateKey == "" {
		return nil, errors.New("sheets service account credentials must be provided")
	}

	jwtConfig := &jwt.Config{
		Email:      cfg.Sheets.ClientEmail,
		PrivateKey: []byte(cfg.Sheets.PrivateKey),
		Scopes:     []string{sheets.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}

	svc, err := sheets.NewService(ctx, option.WithHTTPClient(jwtConfig.Client(ctx)))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create sheets service")
	}

	return &Client{
		svc:           svc,
		spreadsheetID: cfg.Sheets.SpreadsheetID,
	}, nil
}

// Get reads the value range in A1 notation.
func (c *Client) Get(ctx context.Context, readRange string) ([][]any, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read range %s", readRange)
	}

	return resp.Values, nil
}

// Append adds rows after the last non-empty row of the range.
func (c *Client) Append(ctx context.Context, writeRange string, rows [][]any) error {
	valueRange := &sheets.ValueRange{Values: rows}

	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, writeRange, valueRange).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return errors.Wrapf(err, "failed to append to range %s", writeRange)
	}

	return nil
}

// Update overwrites the value range in place.
func (c *Client) Update(ctx context.Context, writeRange string, rows [][]any) error {
	valueRange := &sheets.ValueRange{Values: rows}

	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, writeRange, valueRange).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return errors.Wrapf(err, "failed to update range %s", writeRange)
	}

	return nil
}

// Clear empties the value range without removing the row itself.
func (c *Client) Clear(ctx context.Context, clearRange string) error {
	_, err := c.svc.Spreadsheets.Values.Clear(c.spreadsheetID, clearRange, &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		return errors.Wrapf(err, "failed to clear range %s", clearRange)
	}

	return nil
}
