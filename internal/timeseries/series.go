// Package timeseries holds the windowing, normalization, and alignment
// primitives the forecasting pipeline is built on.
package timeseries

import (
	"sort"
	"time"

	"OilPulse/internal/domain/models"
)

// NewSeries builds a Series from parallel date/value slices, sorted
// ascending by date with duplicate dates collapsed to the first occurrence.
func NewSeries(name string, dates []time.Time, values []float64) models.Series {
	n := len(dates)
	if len(values) < n {
		n = len(values)
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return dates[idx[a]].Before(dates[idx[b]])
	})

	s := models.Series{Name: name}
	for _, i := range idx {
		if len(s.Dates) > 0 && s.Dates[len(s.Dates)-1].Equal(dates[i]) {
			continue
		}
		s.Dates = append(s.Dates, dates[i])
		s.Values = append(s.Values, values[i])
	}
	return s
}

// Clip returns the sub-series whose dates fall in [start, end] inclusive.
func Clip(s models.Series, start, end time.Time) models.Series {
	out := models.Series{Name: s.Name}
	for i, d := range s.Dates {
		if d.Before(start) || d.After(end) {
			continue
		}
		out.Dates = append(out.Dates, d)
		out.Values = append(out.Values, s.Values[i])
	}
	return out
}
