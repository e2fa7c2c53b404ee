package storage

import (
	"context"

	"github.com/dmarinho/interacoes/internal/models"
)

// Source is any tabular origin of interaction rows: a Postgres table, a CSV
// export, an in-memory fixture. Rows come back in insertion order.
type Source interface {
	ListRows(ctx context.Context) ([]models.RawRow, error)
}

// Storage is a source that also accepts new rows, as appended by the e-mail
// importer.
type Storage interface {
	Source
	AppendInteraction(ctx context.Context, input models.InteractionInput) error
	Close() error
}
