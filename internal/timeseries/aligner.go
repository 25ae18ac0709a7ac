package timeseries

import (
	"fmt"
	"math"

	"OilPulse/internal/domain/models"
)

// FillPolicy decides how an auxiliary column resolves dates the auxiliary
// series does not cover.
type FillPolicy int

const (
	// FillNeutral resolves missing values to 0.
	FillNeutral FillPolicy = iota
	// FillForwardBackward forward-fills from the last known value, then
	// back-fills any leading gap from the first known value. An auxiliary
	// with no coverage at all is an error under this policy.
	FillForwardBackward
)

// Auxiliary pairs a series with the fill policy for its column.
type Auxiliary struct {
	Series models.Series
	Fill   FillPolicy
}

// Align merges auxiliary series onto the primary series' date axis. The
// merge is left-anchored: every primary date survives, auxiliary values are
// looked up per date and gaps resolve through each column's fill policy.
// The primary column comes first in the result.
func Align(primary models.Series, aux ...Auxiliary) (*models.AlignedTable, error) {
	t := &models.AlignedTable{
		Dates:   primary.Dates,
		Columns: make([]string, 0, 1+len(aux)),
		Rows:    make([][]float64, len(primary.Dates)),
	}
	t.Columns = append(t.Columns, primary.Name)
	for i := range t.Rows {
		t.Rows[i] = make([]float64, 1+len(aux))
		t.Rows[i][0] = primary.Values[i]
	}

	for k, a := range aux {
		t.Columns = append(t.Columns, a.Series.Name)

		col, err := resolveColumn(primary, a)
		if err != nil {
			return nil, err
		}
		for i := range t.Rows {
			t.Rows[i][k+1] = col[i]
		}
	}

	return t, nil
}

func resolveColumn(primary models.Series, a Auxiliary) ([]float64, error) {
	byDate := make(map[int64]float64, a.Series.Len())
	for i, d := range a.Series.Dates {
		byDate[d.Unix()] = a.Series.Values[i]
	}

	col := make([]float64, len(primary.Dates))
	missing := 0
	for i, d := range primary.Dates {
		if v, ok := byDate[d.Unix()]; ok {
			col[i] = v
		} else {
			col[i] = math.NaN()
			missing++
		}
	}

	switch a.Fill {
	case FillNeutral:
		for i, v := range col {
			if math.IsNaN(v) {
				col[i] = 0
			}
		}
	case FillForwardBackward:
		if missing == len(col) {
			return nil, fmt.Errorf("auxiliary series %q has no coverage on the primary axis", a.Series.Name)
		}
		last := math.NaN()
		for i, v := range col {
			if math.IsNaN(v) {
				col[i] = last
			} else {
				last = v
			}
		}
		next := math.NaN()
		for i := len(col) - 1; i >= 0; i-- {
			if math.IsNaN(col[i]) {
				col[i] = next
			} else {
				next = col[i]
			}
		}
	default:
		return nil, fmt.Errorf("unknown fill policy %d for column %q", a.Fill, a.Series.Name)
	}

	return col, nil
}
