package spreadsheet

import (
	"context"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// fakeValues is an in-memory ValuesAPI for one sheet. Index 0 of rows holds
// sheet row 2, matching the header-row convention of the real backend.
type fakeValues struct {
	rows [][]any

	getErr error
}

func (f *fakeValues) Get(_ context.Context, _ string) ([][]any, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}

	return f.rows, nil
}

func (f *fakeValues) Append(_ context.Context, _ string, rows [][]any) error {
	f.rows = append(f.rows, rows...)

	return nil
}

func (f *fakeValues) Update(_ context.Context, writeRange string, rows [][]any) error {
	idx, err := dataIndex(writeRange)
	if err != nil {
		return err
	}
	if idx >= len(f.rows) || len(rows) != 1 {
		return errors.Errorf("update out of range: %s", writeRange)
	}

	f.rows[idx] = rows[0]

	return nil
}

func (f *fakeValues) Clear(_ context.Context, clearRange string) error {
	idx, err := dataIndex(clearRange)
	if err != nil {
		return err
	}
	if idx >= len(f.rows) {
		return errors.Errorf("clear out of range: %s", clearRange)
	}

	f.rows[idx] = []any{}

	return nil
}

// dataIndex converts a single-row A1 range like "Users!A5:K5" into the
// zero-based index within the data rows.
func dataIndex(a1 string) (int, error) {
	_, ref, ok := strings.Cut(a1, "!A")
	if !ok {
		return 0, errors.Errorf("unexpected range %q", a1)
	}

	digits, _, ok := strings.Cut(ref, ":")
	if !ok {
		return 0, errors.Errorf("unexpected range %q", a1)
	}

	rowNumber, err := strconv.Atoi(digits)
	if err != nil {
		return 0, errors.Wrapf(err, "unexpected range %q", a1)
	}

	return rowNumber - firstDataRow, nil
}
