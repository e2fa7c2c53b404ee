// Package normalizer turns raw tabular rows from the interaction log into
// canonical Interaction records: trimmed strings, a parsed timestamp or an
// explicit unparsed marker, and derived grouping keys.
package normalizer

import (
	"strconv"
	"strings"

	"github.com/dmarinho/interacoes/internal/models"
)

// Report tells the caller, once per batch, how normalization went. Unparsed
// dates are counted here instead of being reported row by row.
type Report struct {
	Rows          int
	UnparsedDates int
}

// Normalize converts raw rows into canonical interaction records. It is
// total: malformed values degrade to empty strings or the unparsed timestamp
// marker, never to an error. Each output record derives from exactly one
// input row, in order.
func Normalize(rows []models.RawRow) ([]models.Interaction, Report) {
	records := make([]models.Interaction, 0, len(rows))
	report := Report{Rows: len(rows)}

	for _, row := range rows {
		rec := models.Interaction{
			Client:      cellString(row.Cell(models.ColClient)),
			Channel:     cellString(row.Cell(models.ColChannel)),
			Content:     cellString(row.Cell(models.ColContent)),
			EventType:   cellString(row.Cell(models.ColEventType)),
			Integration: cellString(row.Cell(models.ColIntegration)),
		}

		if ts, ok := parseTimestamp(row.Cell(models.ColDateTime)); ok {
			rec.Timestamp = ts
			rec.HasTimestamp = true
			rec.Month = models.MonthOf(ts)
		} else {
			report.UnparsedDates++
		}

		rec.ContentLower = strings.ToLower(rec.Content)
		records = append(records, rec)
	}

	return records, report
}

// cellString renders any cell as a trimmed string. Absent cells become "".
func cellString(c models.Cell) string {
	switch c.Kind {
	case models.CellString:
		return strings.TrimSpace(c.Str)
	case models.CellNumber:
		return strings.TrimSpace(strconv.FormatFloat(c.Num, 'f', -1, 64))
	case models.CellTime:
		return c.Time.Format(models.DisplayTimeLayout)
	default:
		return ""
	}
}
