package models

import (
	"fmt"
	"time"
)

// DisplayTimeLayout is the canonical rendering of an interaction timestamp.
const DisplayTimeLayout = "02/01/2006 15:04"

// Interaction is one normalized row of the interaction log. Immutable once
// built; string fields are never empty-by-accident — absence maps to "".
type Interaction struct {
	Client      string `json:"segurado"`
	Channel     string `json:"canal"`
	Content     string `json:"conteudo"`
	EventType   string `json:"tipo_evento"`
	Integration string `json:"integracao"`

	// Timestamp is only meaningful when HasTimestamp is true. A row whose
	// data_hora could not be parsed keeps HasTimestamp=false and is never
	// silently defaulted to now.
	Timestamp    time.Time `json:"data_hora"`
	HasTimestamp bool      `json:"-"`

	// Month is the (year, month) bucket of Timestamp; zero when the
	// timestamp is unparsed.
	Month MonthKey `json:"-"`

	// ContentLower is Content lowercased, used only for status matching.
	ContentLower string `json:"-"`
}

// DisplayTime renders the timestamp in the canonical display format, or an
// empty string for an unparsed timestamp.
func (i Interaction) DisplayTime() string {
	if !i.HasTimestamp {
		return ""
	}
	return i.Timestamp.Format(DisplayTimeLayout)
}

// MonthKey identifies a calendar month.
type MonthKey struct {
	Year  int
	Month time.Month
}

func MonthOf(t time.Time) MonthKey {
	return MonthKey{Year: t.Year(), Month: t.Month()}
}

func (k MonthKey) Before(other MonthKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Month < other.Month
}

func (k MonthKey) String() string {
	return fmt.Sprintf("%04d-%02d", k.Year, int(k.Month))
}

// InteractionInput is a new row to append to the interaction log, as produced
// by the e-mail importer before it reaches a tabular store.
type InteractionInput struct {
	Client       string
	Channel      string
	Content      string
	EventType    string
	Integration  string
	CNPJ         string
	Policy       string
	Timestamp    time.Time
	HasTimestamp bool
}
