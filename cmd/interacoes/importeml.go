package main

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dmarinho/interacoes/internal/ingest"
	"github.com/dmarinho/interacoes/internal/models"
	"github.com/dmarinho/interacoes/internal/summarizer"
)

var importSave bool

var importEMLCmd = &cobra.Command{
	Use:   "import-eml <arquivo.eml>",
	Short: "Gera uma linha do log a partir de um e-mail e opcionalmente a grava",
	Args:  cobra.ExactArgs(1),
	RunE:  runImportEML,
}

func init() {
	importEMLCmd.Flags().BoolVar(&importSave, "save", false, "gravar a linha no banco em vez de apenas exibi-la")
}

func runImportEML(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer f.Close()

	email, err := ingest.ReadEML(f)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", args[0], err)
	}

	info := ingest.ExtractSubject(email.Subject)

	var sum summarizer.Summarizer
	if cfg.OpenAI.Enabled && cfg.OpenAI.APIKey != "" {
		sum = summarizer.NewGPT(
			cfg.OpenAI.APIKey,
			cfg.OpenAI.Model,
			cfg.OpenAI.MaxTokens,
			cfg.OpenAI.Temperature,
			cfg.Summarizer.MaxLength,
			logger,
		)
	} else {
		sum = summarizer.NewSimple(cfg.Summarizer.MaxLength)
	}

	input := models.InteractionInput{
		Client:       info.Insured,
		Channel:      info.Channel,
		Content:      sum.Summarize(cmd.Context(), email.Body),
		EventType:    info.EventType,
		Integration:  info.Integration,
		CNPJ:         info.CNPJ,
		Policy:       info.Policy,
		Timestamp:    email.Date,
		HasTimestamp: email.HasDate,
	}

	logger.Info("Parsed e-mail",
		zap.String("subject", email.Subject),
		zap.String("segurado", input.Client),
		zap.String("tipo_evento", input.EventType))

	if importSave {
		store, err := openStorage()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.AppendInteraction(cmd.Context(), input); err != nil {
			return err
		}
		fmt.Println("Linha salva com sucesso.")
		return nil
	}

	timestamp := ""
	if input.HasTimestamp {
		timestamp = input.Timestamp.Format(models.DisplayTimeLayout)
	}

	w := csv.NewWriter(os.Stdout)
	w.Write(append(models.Columns(), "cnpj", "apolice"))
	w.Write([]string{
		timestamp,
		input.Client,
		input.Channel,
		input.Content,
		input.EventType,
		input.Integration,
		input.CNPJ,
		input.Policy,
	})
	w.Flush()
	return w.Error()
}
