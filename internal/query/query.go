// Package query filters, ranks and aggregates normalized interaction
// records. Every function here is a pure function of its inputs; callers own
// the record collection and may share it between concurrent queries as long
// as they treat it as read-only.
package query

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/dmarinho/interacoes/internal/models"
)

// ErrUnknownField is returned when a grouping field is not part of the
// canonical schema.
var ErrUnknownField = errors.New("query: unknown canonical field")

// ApplyFilter returns the records matching every populated field of spec.
// String comparisons are case-insensitive exact equality. Records without a
// parsed timestamp fail any populated date bound but pass when no bound is
// set. An empty result is a normal outcome, not an error.
func ApplyFilter(records []models.Interaction, spec models.FilterSpec) []models.Interaction {
	out := make([]models.Interaction, 0, len(records))
	for _, rec := range records {
		if matches(rec, spec) {
			out = append(out, rec)
		}
	}
	return out
}

func matches(rec models.Interaction, spec models.FilterSpec) bool {
	if spec.Client != "" && !strings.EqualFold(rec.Client, spec.Client) {
		return false
	}
	if spec.Integration != "" && !strings.EqualFold(rec.Integration, spec.Integration) {
		return false
	}
	if spec.EventType != "" && !strings.EqualFold(rec.EventType, spec.EventType) {
		return false
	}
	if !spec.From.IsZero() {
		if !rec.HasTimestamp || rec.Timestamp.Before(dayStart(spec.From)) {
			return false
		}
	}
	if !spec.To.IsZero() {
		// Inclusive through the end of the boundary day.
		end := dayStart(spec.To).Add(24*time.Hour - time.Second)
		if !rec.HasTimestamp || rec.Timestamp.After(end) {
			return false
		}
	}
	return true
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MostRecent returns up to n records ordered by timestamp descending.
// Records without a parsed timestamp rank below every dated record; equal
// keys keep their original relative order.
func MostRecent(records []models.Interaction, n int) []models.Interaction {
	sorted := make([]models.Interaction, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.HasTimestamp != b.HasTimestamp {
			return a.HasTimestamp
		}
		if !a.HasTimestamp {
			return false
		}
		return a.Timestamp.After(b.Timestamp)
	})
	if n >= 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// Summarize aggregates records into display metrics: total, date span, the
// most used channel and per-channel, per-integration and per-month counts.
func Summarize(records []models.Interaction) models.Summary {
	s := models.Summary{Total: len(records)}

	for _, rec := range records {
		if !rec.HasTimestamp {
			continue
		}
		if !s.HasDates {
			s.First, s.Last = rec.Timestamp, rec.Timestamp
			s.HasDates = true
			continue
		}
		if rec.Timestamp.Before(s.First) {
			s.First = rec.Timestamp
		}
		if rec.Timestamp.After(s.Last) {
			s.Last = rec.Timestamp
		}
	}

	s.ByChannel = countValues(records, func(r models.Interaction) string { return r.Channel })
	s.ByIntegration = countValues(records, func(r models.Interaction) string { return r.Integration })
	s.ByMonth = countMonths(records)

	if len(s.ByChannel) > 0 {
		s.TopChannel = s.ByChannel[0].Value
	}
	return s
}

// CountBy groups records by one of the canonical columns. Grouping by
// data_hora means grouping by month bucket rendered as YYYY-MM; records
// without a timestamp are skipped for that field.
func CountBy(records []models.Interaction, field string) ([]models.FieldCount, error) {
	var selector func(models.Interaction) string
	switch field {
	case models.ColClient:
		selector = func(r models.Interaction) string { return r.Client }
	case models.ColChannel:
		selector = func(r models.Interaction) string { return r.Channel }
	case models.ColContent:
		selector = func(r models.Interaction) string { return r.Content }
	case models.ColEventType:
		selector = func(r models.Interaction) string { return r.EventType }
	case models.ColIntegration:
		selector = func(r models.Interaction) string { return r.Integration }
	case models.ColDateTime:
		selector = func(r models.Interaction) string {
			if !r.HasTimestamp {
				return ""
			}
			return r.Month.String()
		}
	default:
		return nil, ErrUnknownField
	}
	return countValues(records, selector), nil
}

// countValues builds a frequency table sorted by count descending; equal
// counts keep first-encountered order (stable mode semantics).
func countValues(records []models.Interaction, selector func(models.Interaction) string) []models.FieldCount {
	counts := make(map[string]int)
	var order []string
	for _, rec := range records {
		v := selector(rec)
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}

	result := make([]models.FieldCount, 0, len(order))
	for _, v := range order {
		result = append(result, models.FieldCount{Value: v, Count: counts[v]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	return result
}

// countMonths buckets dated records by calendar month, ascending.
func countMonths(records []models.Interaction) []models.MonthCount {
	counts := make(map[models.MonthKey]int)
	for _, rec := range records {
		if rec.HasTimestamp {
			counts[rec.Month]++
		}
	}

	keys := make([]models.MonthKey, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })

	result := make([]models.MonthCount, 0, len(keys))
	for _, k := range keys {
		result = append(result, models.MonthCount{Month: k, Count: counts[k]})
	}
	return result
}
