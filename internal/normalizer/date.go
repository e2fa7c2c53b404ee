package normalizer

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dmarinho/interacoes/internal/models"
)

// serialEpoch is the day-zero of spreadsheet serial dates. Day 1 is
// 1899-12-31, which makes 44927 fall on 2023-01-01.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// dateLayouts are tried in order for string dates. Day-before-month formats
// come first; the canonical display format is the very first entry.
var dateLayouts = []string{
	"02/01/2006 15:04",
	"02/01/2006 15:04:05",
	"02/01/2006",
	"02-01-2006 15:04",
	"02-01-2006",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	time.RFC3339,
}

// parseTimestamp resolves the data_hora cell with a fixed precedence:
// an actual time value, a spreadsheet serial number, a numeric-looking
// string treated as a serial, then day-first calendar strings. Anything
// else is unparseable.
func parseTimestamp(c models.Cell) (time.Time, bool) {
	switch c.Kind {
	case models.CellTime:
		return c.Time, true
	case models.CellNumber:
		return fromSerial(c.Num)
	case models.CellString:
		s := strings.TrimSpace(c.Str)
		if s == "" {
			return time.Time{}, false
		}
		if isNumericString(s) {
			n, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
			if err != nil {
				return time.Time{}, false
			}
			return fromSerial(n)
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// fromSerial converts a spreadsheet serial day count into a timestamp. The
// fractional part is the time of day, rounded to whole seconds.
func fromSerial(days float64) (time.Time, bool) {
	if math.IsNaN(days) || math.IsInf(days, 0) {
		return time.Time{}, false
	}
	seconds := math.Round(days * 86400)
	return serialEpoch.Add(time.Duration(seconds) * time.Second), true
}

// isNumericString reports whether s consists only of digits, dots and
// commas, with at least one digit.
func isNumericString(s string) bool {
	hasDigit := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case r == '.' || r == ',':
		default:
			return false
		}
	}
	return hasDigit
}
