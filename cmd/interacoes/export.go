package main

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmarinho/interacoes/internal/query"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exporta o log completo de interações em CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := loadRecords(cmd.Context())
		if err != nil {
			return err
		}

		out := os.Stdout
		if exportOut != "" && exportOut != "-" {
			f, err := os.Create(exportOut)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", exportOut, err)
			}
			defer f.Close()
			out = f
		}

		w := csv.NewWriter(out)
		if err := w.Write(query.ExportHeader()); err != nil {
			return fmt.Errorf("failed to write CSV header: %w", err)
		}
		if err := w.WriteAll(query.ExportRows(records)); err != nil {
			return fmt.Errorf("failed to write CSV rows: %w", err)
		}
		w.Flush()
		return w.Error()
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "-", "arquivo de saída (- para stdout)")
}
