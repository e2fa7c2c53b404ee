package storage

import (
	"context"
	"sync"

	"github.com/dmarinho/interacoes/internal/models"
)

// MemoryStorage keeps the interaction log in process memory. Used for tests
// and for runs without a database.
type MemoryStorage struct {
	mu   sync.RWMutex
	rows []models.RawRow
}

func NewMemoryStorage(seed ...models.RawRow) *MemoryStorage {
	rows := make([]models.RawRow, len(seed))
	copy(rows, seed)
	return &MemoryStorage{rows: rows}
}

func (s *MemoryStorage) ListRows(ctx context.Context) ([]models.RawRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.RawRow, len(s.rows))
	copy(out, s.rows)
	return out, nil
}

func (s *MemoryStorage) AppendInteraction(ctx context.Context, input models.InteractionInput) error {
	row := models.RawRow{
		models.ColClient:      models.StringCell(input.Client),
		models.ColChannel:     models.StringCell(input.Channel),
		models.ColContent:     models.StringCell(input.Content),
		models.ColEventType:   models.StringCell(input.EventType),
		models.ColIntegration: models.StringCell(input.Integration),
	}
	if input.HasTimestamp {
		row[models.ColDateTime] = models.TimeCell(input.Timestamp)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, row)
	return nil
}

func (s *MemoryStorage) Close() error {
	// Nothing to close for in-memory storage
	return nil
}
