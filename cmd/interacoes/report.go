package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmarinho/interacoes/internal/classifier"
	"github.com/dmarinho/interacoes/internal/models"
	"github.com/dmarinho/interacoes/internal/query"
)

var (
	reportClient      string
	reportIntegration string
	reportEventType   string
	reportFrom        string
	reportTo          string
	reportLimit       int
	reportCSVPath     string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Métricas, status e últimas interações da seleção filtrada",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportClient, "cliente", "", "filtrar por cliente (nome exato)")
	reportCmd.Flags().StringVar(&reportIntegration, "integracao", "", "filtrar por integração (ex: RCV)")
	reportCmd.Flags().StringVar(&reportEventType, "tipo", "", "filtrar por tipo de evento")
	reportCmd.Flags().StringVar(&reportFrom, "de", "", "data inicial (DD/MM/YYYY)")
	reportCmd.Flags().StringVar(&reportTo, "ate", "", "data final, inclusive (DD/MM/YYYY)")
	reportCmd.Flags().IntVar(&reportLimit, "limite", 10, "quantidade de últimas interações a mostrar")
	reportCmd.Flags().StringVar(&reportCSVPath, "csv", "", "exportar a seleção filtrada para um arquivo CSV")
}

func buildFilterSpec() (models.FilterSpec, error) {
	spec := models.FilterSpec{
		Client:      reportClient,
		Integration: reportIntegration,
		EventType:   reportEventType,
	}
	if reportFrom != "" {
		t, err := time.Parse("02/01/2006", reportFrom)
		if err != nil {
			return spec, fmt.Errorf("invalid --de date %q: %w", reportFrom, err)
		}
		spec.From = t
	}
	if reportTo != "" {
		t, err := time.Parse("02/01/2006", reportTo)
		if err != nil {
			return spec, fmt.Errorf("invalid --ate date %q: %w", reportTo, err)
		}
		spec.To = t
	}
	return spec, nil
}

func runReport(cmd *cobra.Command, args []string) error {
	records, err := loadRecords(cmd.Context())
	if err != nil {
		return err
	}

	spec, err := buildFilterSpec()
	if err != nil {
		return err
	}

	filtered := query.ApplyFilter(records, spec)
	if len(filtered) == 0 {
		fmt.Println("Nenhuma interação encontrada com esses filtros.")
		return nil
	}

	summary := query.Summarize(filtered)
	fmt.Printf("Total de interações: %d\n", summary.Total)
	if summary.HasDates {
		fmt.Printf("Primeira interação:  %s\n", summary.First.Format(models.DisplayTimeLayout))
		fmt.Printf("Última interação:    %s\n", summary.Last.Format(models.DisplayTimeLayout))
	}
	fmt.Printf("Canal mais utilizado: %s\n", summary.TopChannel)

	printCounts("Interações por canal", summary.ByChannel)
	printCounts("Interações por integração", summary.ByIntegration)

	if len(summary.ByMonth) > 0 {
		fmt.Println("\nInterações por mês:")
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, mc := range summary.ByMonth {
			fmt.Fprintf(w, "  %s\t%d\n", mc.Month, mc.Count)
		}
		w.Flush()
	}

	fmt.Println("\nStatus (interpretação automática):")
	if reportClient != "" {
		status := classifier.CurrentStatus(filtered)
		fmt.Printf("  Status atual para %s: %s\n", reportClient, status.Label())
	} else {
		for _, sc := range classifier.Tally(filtered) {
			fmt.Printf("  %s\t%d\n", sc.Status.Label(), sc.Count)
		}
	}

	fmt.Println("\nÚltimas interações:")
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "  data_hora\tsegurado\tcanal\ttipo_evento\tintegracao\tconteudo")
	for _, rec := range query.MostRecent(filtered, reportLimit) {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\t%s\n",
			rec.DisplayTime(), rec.Client, rec.Channel, rec.EventType, rec.Integration, rec.Content)
	}
	w.Flush()

	if reportCSVPath != "" {
		if err := writeCSV(reportCSVPath, filtered); err != nil {
			return err
		}
		fmt.Printf("\nSeleção exportada para %s\n", reportCSVPath)
	}
	return nil
}

func printCounts(title string, counts []models.FieldCount) {
	if len(counts) == 0 {
		return
	}
	fmt.Printf("\n%s:\n", title)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, fc := range counts {
		value := fc.Value
		if value == "" {
			value = "—"
		}
		fmt.Fprintf(w, "  %s\t%d\n", value, fc.Count)
	}
	w.Flush()
}

func writeCSV(path string, records []models.Interaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(query.ExportHeader()); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	if err := w.WriteAll(query.ExportRows(records)); err != nil {
		return fmt.Errorf("failed to write CSV rows: %w", err)
	}
	w.Flush()
	return w.Error()
}
