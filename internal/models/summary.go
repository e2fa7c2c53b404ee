package models

import "time"

// FieldCount is one bar of a frequency chart: a field value and how many
// interactions carry it.
type FieldCount struct {
	Value string
	Count int
}

// MonthCount is the number of interactions in one calendar month.
type MonthCount struct {
	Month MonthKey
	Count int
}

// StatusCount is the number of interactions classified into one status.
type StatusCount struct {
	Status Status
	Count  int
}

// Summary aggregates a set of interactions for display.
type Summary struct {
	Total int

	// First and Last are the earliest and latest valid timestamps; both are
	// meaningless when HasDates is false (no record had a parsed date).
	First    time.Time
	Last     time.Time
	HasDates bool

	// TopChannel is the most frequent channel value, ties broken by first
	// encounter; empty when there are no records.
	TopChannel string

	ByChannel     []FieldCount
	ByIntegration []FieldCount
	ByMonth       []MonthCount
}
