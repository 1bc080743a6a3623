package spreadsheet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// headerValues tracks header reads and writes per A1 range.
type headerValues struct {
	existing map[string][][]any
	written  map[string][][]any
}

func newHeaderValues() *headerValues {
	return &headerValues{
		existing: make(map[string][][]any),
		written:  make(map[string][][]any),
	}
}

func (h *headerValues) Get(_ context.Context, readRange string) ([][]any, error) {
	return h.existing[readRange], nil
}

func (h *headerValues) Append(context.Context, string, [][]any) error {
	return nil
}

func (h *headerValues) Update(_ context.Context, writeRange string, rows [][]any) error {
	h.written[writeRange] = rows

	return nil
}

func (h *headerValues) Clear(context.Context, string) error {
	return nil
}

func TestEnsureHeaders_WritesMissingHeaders(t *testing.T) {
	values := newHeaderValues()

	require.NoError(t, EnsureHeaders(context.Background(), values))

	require.Len(t, values.written, 5)
	users := values.written["Users!A1:K1"]
	require.Len(t, users, 1)
	assert.Equal(t, "id", users[0][0])
	assert.Equal(t, "updatedAt", users[0][len(users[0])-1])
	assert.Contains(t, values.written, "Events!A1:L1")
	assert.Contains(t, values.written, "Speakers!A1:G1")
	assert.Contains(t, values.written, "Inscriptions!A1:G1")
	assert.Contains(t, values.written, "Presences!A1:F1")
}

func TestEnsureHeaders_KeepsExistingHeaders(t *testing.T) {
	values := newHeaderValues()
	values.existing["Users!A1:K1"] = [][]any{{"id", "name"}}

	require.NoError(t, EnsureHeaders(context.Background(), values))

	assert.NotContains(t, values.written, "Users!A1:K1")
	assert.Len(t, values.written, 4)
}
