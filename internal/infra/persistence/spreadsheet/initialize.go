package spreadsheet

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"gather/internal/infra/sheets"
)

// sheetSchema describes the header row of one entity sheet.
type sheetSchema struct {
	sheet      string
	lastColumn string
	headers    []any
}

var schemas = []sheetSchema{
	{
		sheet:      userSheet,
		lastColumn: userLastColumn,
		headers: []any{
			"id", "name", "email", "passwordHash", "profile", "oauthProvider",
			"oauthSubject", "refreshTokenHash", "lastLoginAt", "createdAt", "updatedAt",
		},
	},
	{
		sheet:      eventSheet,
		lastColumn: eventLastColumn,
		headers: []any{
			"id", "title", "description", "dateInit", "dateFinal", "inscriptionInit",
			"inscriptionFinal", "location", "appHeaderImageUrl",
			"certificateHeaderImageUrl", "createdAt", "updatedAt",
		},
	},
	{
		sheet:      speakerSheet,
		lastColumn: speakerLastColumn,
		headers: []any{
			"id", "name", "email", "bio", "socialLinks", "createdAt", "updatedAt",
		},
	},
	{
		sheet:      inscriptionSheet,
		lastColumn: inscriptionLastColumn,
		headers: []any{
			"id", "eventId", "userId", "activityId", "status", "createdAt", "updatedAt",
		},
	},
	{
		sheet:      presenceSheet,
		lastColumn: presenceLastColumn,
		headers: []any{
			"id", "eventId", "userId", "checkedInAt", "createdAt", "updatedAt",
		},
	},
}

// EnsureHeaders writes the header row of every entity sheet that does not
// have one yet. Sheets that already carry a header are left untouched.
func EnsureHeaders(ctx context.Context, values sheets.ValuesAPI) error {
	for _, schema := range schemas {
		headerRange := fmt.Sprintf("%s!A1:%s1", schema.sheet, schema.lastColumn)

		rows, err := values.Get(ctx, headerRange)
		if err != nil {
			return errors.Wrapf(err, "failed to read header of sheet %s", schema.sheet)
		}
		if len(rows) > 0 && cellString(rows[0], 0) != "" {
			continue
		}

		if err := values.Update(ctx, headerRange, [][]any{schema.headers}); err != nil {
			return errors.Wrapf(err, "failed to write header of sheet %s", schema.sheet)
		}
	}

	return nil
}
