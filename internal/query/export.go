package query

import "github.com/dmarinho/interacoes/internal/models"

// ExportHeader returns the six logical column names in export order.
func ExportHeader() []string {
	return models.Columns()
}

// ExportRows projects records back onto the six logical columns for any
// delimited-text writer. Timestamps render as DD/MM/YYYY HH:MM; an unparsed
// timestamp renders as an empty string.
func ExportRows(records []models.Interaction) [][]string {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			rec.DisplayTime(),
			rec.Client,
			rec.Channel,
			rec.Content,
			rec.EventType,
			rec.Integration,
		})
	}
	return rows
}
