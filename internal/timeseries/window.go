package timeseries

import "time"

// Windows slices a feature matrix into fixed-length overlapping windows
// paired with the target value immediately following each window. The
// target vector is passed separately because features and target are scaled
// through independent states. Produces len(rows)-length windows, or none
// when rows has no room for a full slice plus its target.
func Windows(rows [][]float64, target []float64, length int) (x [][][]float64, y []float64) {
	if length <= 0 || len(rows) <= length {
		return nil, nil
	}

	n := len(rows) - length
	x = make([][][]float64, n)
	y = make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = rows[i : i+length]
		y[i] = target[i+length]
	}
	return x, y
}

// UnwindowIndex returns the date labels aligned 1:1 with the target vector
// Windows produces: the dates strictly after the first length rows.
func UnwindowIndex(dates []time.Time, length int) []time.Time {
	if length <= 0 || len(dates) <= length {
		return nil
	}
	return dates[length:]
}
