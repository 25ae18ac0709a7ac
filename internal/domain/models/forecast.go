package models

import "time"

// ForecastRecord pairs the actual price with the predicted price for one
// date. A full set is written wholesale on each pipeline run.
type ForecastRecord struct {
	Date      time.Time
	Actual    float64
	Predicted float64
}

// RawTable is a persisted table as read back from storage: a header plus
// untyped string cells. The serving layer owns all type coercion.
type RawTable struct {
	Header  []string
	Records [][]string
}

// ColumnIndex returns the index of the named header column, or -1.
func (t *RawTable) ColumnIndex(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}
