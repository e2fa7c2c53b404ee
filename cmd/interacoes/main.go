package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dmarinho/interacoes/internal/models"
	"github.com/dmarinho/interacoes/internal/normalizer"
	"github.com/dmarinho/interacoes/internal/storage"
	"github.com/dmarinho/interacoes/pkg/config"
)

var (
	cfgPath string
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "interacoes",
	Short: "Consulta e alimentação do log de interações com segurados",
	Long: `interacoes lê o log de interações com segurados de uma fonte tabular
(CSV ou PostgreSQL), normaliza datas e campos de texto, e oferece consultas
com filtros, métricas agregadas, interpretação automática de status e
exportação em CSV. Também importa arquivos .eml como novas linhas do log.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if verbose {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		cfg, err = config.LoadConfig(cfgPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.AddCommand(reportCmd, exportCmd, importEMLCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openSource builds the configured row source. The returned closer is a
// no-op for sources with nothing to release.
func openSource() (storage.Source, func(), error) {
	switch cfg.Source.Type {
	case "csv":
		return storage.NewCSVSource(cfg.Source.CSVPath), func() {}, nil
	case "memory":
		return storage.NewMemoryStorage(), func() {}, nil
	case "postgres":
		store, err := openStorage()
		if err != nil {
			return nil, nil, err
		}
		return store, func() { store.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown source type %q", cfg.Source.Type)
	}
}

// openStorage builds the appendable store used by import-eml.
func openStorage() (storage.Storage, error) {
	dbConfig := storage.DatabaseConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	}
	return storage.NewPostgresStorage(dbConfig, logger)
}

// loadRecords reads and normalizes the whole interaction log, reporting
// unrecognized dates once for the batch.
func loadRecords(ctx context.Context) ([]models.Interaction, error) {
	source, closeSource, err := openSource()
	if err != nil {
		return nil, err
	}
	defer closeSource()

	rows, err := source.ListRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read interaction log: %w", err)
	}

	records, report := normalizer.Normalize(rows)
	if report.UnparsedDates > 0 {
		logger.Warn("Some dates were not recognized and were left empty",
			zap.Int("unparsed", report.UnparsedDates),
			zap.Int("rows", report.Rows))
	}
	return records, nil
}
