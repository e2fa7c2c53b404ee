package storage

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/dmarinho/interacoes/internal/models"
)

//go:embed migrations.sql
var migrations embed.FS

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type PostgresStorage struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewPostgresStorage(config DatabaseConfig, logger *zap.Logger) (*PostgresStorage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.Password, config.DBName, config.SSLMode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}

	storage := &PostgresStorage{db: db, logger: logger}

	// Initialize database schema
	if err := storage.initializeSchema(); err != nil {
		return nil, fmt.Errorf("error initializing database schema: %w", err)
	}

	return storage, nil
}

func (s *PostgresStorage) initializeSchema() error {
	migrationSQL, err := migrations.ReadFile("migrations.sql")
	if err != nil {
		return fmt.Errorf("error reading migrations file: %w", err)
	}

	_, err = s.db.Exec(string(migrationSQL))
	if err != nil {
		return fmt.Errorf("error executing migrations: %w", err)
	}

	return nil
}

// ListRows reads the whole interaction log in insertion order. data_hora
// comes back as a time-typed cell when set, so the normalizer can keep it
// as-is instead of re-parsing a rendered string.
func (s *PostgresStorage) ListRows(ctx context.Context) ([]models.RawRow, error) {
	query := `
		SELECT segurado, canal, data_hora, conteudo, tipo_evento, integracao
		FROM interacoes
		ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying interactions: %w", err)
	}
	defer rows.Close()

	var result []models.RawRow
	for rows.Next() {
		var (
			client, channel, content, eventType, integration sql.NullString
			dataHora                                         sql.NullTime
		)
		if err := rows.Scan(&client, &channel, &dataHora, &content, &eventType, &integration); err != nil {
			return nil, fmt.Errorf("error scanning interaction: %w", err)
		}

		row := models.RawRow{}
		putString(row, models.ColClient, client)
		putString(row, models.ColChannel, channel)
		putString(row, models.ColContent, content)
		putString(row, models.ColEventType, eventType)
		putString(row, models.ColIntegration, integration)
		if dataHora.Valid {
			row[models.ColDateTime] = models.TimeCell(dataHora.Time)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating interactions: %w", err)
	}

	return result, nil
}

func putString(row models.RawRow, column string, v sql.NullString) {
	if v.Valid {
		row[column] = models.StringCell(v.String)
	}
}

func (s *PostgresStorage) AppendInteraction(ctx context.Context, input models.InteractionInput) error {
	query := `
		INSERT INTO interacoes (id, segurado, canal, data_hora, conteudo, tipo_evento, integracao, cnpj, apolice)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	var dataHora sql.NullTime
	if input.HasTimestamp {
		dataHora = sql.NullTime{Time: input.Timestamp, Valid: true}
	}

	_, err := s.db.ExecContext(
		ctx,
		query,
		uuid.New().String(),
		input.Client,
		input.Channel,
		dataHora,
		input.Content,
		input.EventType,
		input.Integration,
		input.CNPJ,
		input.Policy,
	)
	if err != nil {
		return fmt.Errorf("error inserting interaction: %w", err)
	}

	s.logger.Debug("Appended interaction",
		zap.String("segurado", input.Client),
		zap.String("tipo_evento", input.EventType))
	return nil
}

func (s *PostgresStorage) Close() error {
	return s.db.Close()
}
