package models

import "time"

// CellKind discriminates the scalar types a tabular source can hand us.
type CellKind int

const (
	CellAbsent CellKind = iota
	CellString
	CellNumber
	CellTime
)

// Cell is one loosely-typed spreadsheet value. Exactly one of Str, Num or
// Time is meaningful, selected by Kind; the zero Cell is absent.
type Cell struct {
	Kind CellKind
	Str  string
	Num  float64
	Time time.Time
}

func StringCell(s string) Cell {
	return Cell{Kind: CellString, Str: s}
}

func NumberCell(n float64) Cell {
	return Cell{Kind: CellNumber, Num: n}
}

func TimeCell(t time.Time) Cell {
	return Cell{Kind: CellTime, Time: t}
}

// RawRow is one row of the interaction log as delivered by the data source:
// column name to scalar value. The core never mutates it.
type RawRow map[string]Cell

// Cell returns the value for a column, or an absent Cell when the column is
// missing from the row.
func (r RawRow) Cell(column string) Cell {
	return r[column]
}

// Column names of the interaction log.
const (
	ColDateTime    = "data_hora"
	ColClient      = "segurado"
	ColChannel     = "canal"
	ColContent     = "conteudo"
	ColEventType   = "tipo_evento"
	ColIntegration = "integracao"
)

// Columns returns the six logical columns in canonical export order.
func Columns() []string {
	return []string{ColDateTime, ColClient, ColChannel, ColContent, ColEventType, ColIntegration}
}
