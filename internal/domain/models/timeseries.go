package models

import "time"

// Series is an ordered single-column time series for one source. Dates are
// calendar days, timezone-naive, strictly increasing with no duplicates.
// Note: no transport (json/http) concerns here.
type Series struct {
	Name   string
	Dates  []time.Time
	Values []float64
}

// Len returns the number of points.
func (s Series) Len() int { return len(s.Dates) }

// AlignedTable is the result of merging series onto one shared date axis.
// Rows is row-major: len(Rows) == len(Dates), len(Rows[i]) == len(Columns).
// After alignment every cell is resolved; there are no missing values.
type AlignedTable struct {
	Dates   []time.Time
	Columns []string
	Rows    [][]float64
}

// Len returns the number of rows.
func (t *AlignedTable) Len() int { return len(t.Dates) }

// Column returns the values of the named column, or nil if absent.
func (t *AlignedTable) Column(name string) []float64 {
	for j, c := range t.Columns {
		if c != name {
			continue
		}
		out := make([]float64, len(t.Rows))
		for i, row := range t.Rows {
			out[i] = row[j]
		}
		return out
	}
	return nil
}

// PricePoint is one daily OHLCV row from the market data source.
type PricePoint struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// SentimentRecord is the aggregate sentiment for one calendar day. Score is
// bounded; days with no news coverage resolve to the neutral value 0.
type SentimentRecord struct {
	Date  time.Time
	Score float64
}
