package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmarinho/interacoes/internal/models"
)

func TestMemoryStorageAppendAndList(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()

	rows, err := store.ListRows(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)

	when := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	err = store.AppendInteraction(ctx, models.InteractionInput{
		Client:       "Acme",
		Channel:      "E-mail",
		Content:      "Reunião marcada",
		EventType:    "Abertura",
		Integration:  "RCV",
		Timestamp:    when,
		HasTimestamp: true,
	})
	require.NoError(t, err)

	rows, err = store.ListRows(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, models.StringCell("Acme"), row.Cell(models.ColClient))
	assert.Equal(t, models.TimeCell(when), row.Cell(models.ColDateTime))
}

func TestMemoryStorageUndatedAppend(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()

	err := store.AppendInteraction(ctx, models.InteractionInput{Client: "Beta"})
	require.NoError(t, err)

	rows, err := store.ListRows(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, models.CellAbsent, rows[0].Cell(models.ColDateTime).Kind)
}

func TestMemoryStorageSeedAndIsolation(t *testing.T) {
	ctx := context.Background()
	seed := models.RawRow{models.ColClient: models.StringCell("Acme")}
	store := NewMemoryStorage(seed)

	rows, err := store.ListRows(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// Appending after a listing must not mutate the returned slice.
	require.NoError(t, store.AppendInteraction(ctx, models.InteractionInput{Client: "Beta"}))
	assert.Len(t, rows, 1)

	rows, err = store.ListRows(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	assert.NoError(t, store.Close())
}
