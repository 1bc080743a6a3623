// Package spreadsheet contains the concrete implementation of the
// persistence layer on top of Google Sheets. Each entity maps to one sheet:
// row 1 holds the header, every data row starts with the entity ID in
// column A, and deleting a record clears its row in place.
package spreadsheet

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"gather/internal/infra/sheets"
)

// firstDataRow is the 1-based sheet row of the first record (row 1 is the
// header).
const firstDataRow = 2

// rowNotFound marks an ID that has no row in the sheet.
const rowNotFound = -1

// cellString reads a cell as a string, tolerating short rows.
func cellString(row []any, idx int) string {
	if idx >= len(row) {
		return ""
	}
	if s, ok := row[idx].(string); ok {
		return s
	}

	return fmt.Sprint(row[idx])
}

// cellTime parses a cell as an RFC 3339 timestamp. Empty cells map to the
// zero time.
func cellTime(row []any, idx int) (time.Time, error) {
	raw := cellString(row, idx)
	if raw == "" {
		return time.Time{}, nil
	}

	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "failed to parse timestamp %q", raw)
	}

	return ts, nil
}

// formatTime writes a timestamp as RFC 3339, with the zero time mapping to
// an empty cell.
func formatTime(ts time.Time) string {
	if ts.IsZero() {
		return ""
	}

	return ts.Format(time.RFC3339)
}

// dataRange builds the A1 range covering all data rows of a sheet.
func dataRange(sheet, lastColumn string) string {
	return fmt.Sprintf("%s!A%d:%s", sheet, firstDataRow, lastColumn)
}

// rowRange builds the A1 range covering one data row.
func rowRange(sheet, lastColumn string, rowNumber int) string {
	return fmt.Sprintf("%s!A%d:%s%d", sheet, rowNumber, lastColumn, rowNumber)
}

// findRowByID scans the sheet's data rows for the record whose column A
// matches the ID, returning the 1-based sheet row number.
func findRowByID(ctx context.Context, values sheets.ValuesAPI, sheet, lastColumn, id string) (int, []any, error) {
	rows, err := values.Get(ctx, dataRange(sheet, lastColumn))
	if err != nil {
		return rowNotFound, nil, errors.Wrap(err, "failed to read sheet rows")
	}

	for i, row := range rows {
		if cellString(row, 0) == id {
			return firstDataRow + i, row, nil
		}
	}

	return rowNotFound, nil, nil
}
