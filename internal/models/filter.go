package models

import "time"

// FilterSpec selects a subset of interactions. Zero-valued fields impose no
// constraint; populated fields are combined with AND. Client, Integration and
// EventType match by case-insensitive exact equality. From and To are
// calendar dates: From bounds at midnight, To is inclusive through the end of
// its day.
type FilterSpec struct {
	Client      string
	Integration string
	EventType   string
	From        time.Time
	To          time.Time
}

// IsZero reports whether the spec imposes no constraint at all.
func (f FilterSpec) IsZero() bool {
	return f.Client == "" && f.Integration == "" && f.EventType == "" &&
		f.From.IsZero() && f.To.IsZero()
}
