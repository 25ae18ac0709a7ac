package timeseries

// ScaleState holds fitted per-column min/max bounds plus the target output
// range. It is fit once and must be the same instance that decodes what it
// encoded; refitting mid-pipeline makes inverse values meaningless.
type ScaleState struct {
	Min []float64
	Max []float64
	lo  float64
	hi  float64
}

// Fit fits min/max bounds per column over all rows, mapping into [0, 1].
func Fit(rows [][]float64) *ScaleState {
	return FitRange(rows, 0, 1)
}

// FitRange fits min/max bounds per column, mapping into [lo, hi].
func FitRange(rows [][]float64, lo, hi float64) *ScaleState {
	s := &ScaleState{lo: lo, hi: hi}
	if len(rows) == 0 {
		return s
	}

	cols := len(rows[0])
	s.Min = make([]float64, cols)
	s.Max = make([]float64, cols)
	copy(s.Min, rows[0])
	copy(s.Max, rows[0])
	for _, row := range rows[1:] {
		for j, v := range row {
			if v < s.Min[j] {
				s.Min[j] = v
			}
			if v > s.Max[j] {
				s.Max[j] = v
			}
		}
	}
	return s
}

// FitColumn fits a single-column state over a value slice, mapping into [0, 1].
func FitColumn(values []float64) *ScaleState {
	rows := make([][]float64, len(values))
	for i, v := range values {
		rows[i] = []float64{v}
	}
	return Fit(rows)
}

// Transform normalizes rows through the fitted bounds. Inputs outside the
// fitted range map outside [lo, hi]; they are never clamped, so the inverse
// transform stays faithful for genuinely new extremes.
func (s *ScaleState) Transform(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			out[i][j] = s.lo + (v-s.Min[j])/s.span(j)*(s.hi-s.lo)
		}
	}
	return out
}

// Inverse maps normalized rows back to original units.
func (s *ScaleState) Inverse(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			out[i][j] = s.Min[j] + (v-s.lo)/(s.hi-s.lo)*s.span(j)
		}
	}
	return out
}

// TransformColumn normalizes a value slice through a single-column state.
func (s *ScaleState) TransformColumn(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = s.lo + (v-s.Min[0])/s.span(0)*(s.hi-s.lo)
	}
	return out
}

// InverseColumn maps normalized values back to original units.
func (s *ScaleState) InverseColumn(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = s.Min[0] + (v-s.lo)/(s.hi-s.lo)*s.span(0)
	}
	return out
}

// span returns the fitted range of column j. Constant columns get span 1 so
// they normalize to lo instead of dividing by zero.
func (s *ScaleState) span(j int) float64 {
	d := s.Max[j] - s.Min[j]
	if d == 0 {
		return 1
	}
	return d
}
