package timeseries

import (
	"reflect"
	"testing"
	"time"
)

func dayRange(n int) []time.Time {
	out := make([]time.Time, n)
	base := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range out {
		out[i] = base.AddDate(0, 0, i)
	}
	return out
}

func seqRows(n int) ([][]float64, []float64) {
	rows := make([][]float64, n)
	target := make([]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = []float64{float64(i)}
		target[i] = float64(i)
	}
	return rows, target
}

func TestWindowsCount(t *testing.T) {
	rows, target := seqRows(20)
	x, y := Windows(rows, target, 14)
	if len(x) != 6 || len(y) != 6 {
		t.Fatalf("expected 6 windows, got %d/%d", len(x), len(y))
	}
}

func TestWindowsDegenerate(t *testing.T) {
	rows, target := seqRows(10)
	x, y := Windows(rows, target, 14)
	if len(x) != 0 || len(y) != 0 {
		t.Fatalf("expected zero windows, got %d/%d", len(x), len(y))
	}

	rows, target = seqRows(14)
	if x, _ := Windows(rows, target, 14); len(x) != 0 {
		t.Fatalf("rows == length must yield zero windows, got %d", len(x))
	}
}

func TestWindowsTargetIsNextRow(t *testing.T) {
	rows, target := seqRows(20)
	x, y := Windows(rows, target, 14)
	for i := range x {
		if x[i][0][0] != float64(i) {
			t.Fatalf("window %d starts at %v", i, x[i][0][0])
		}
		if x[i][len(x[i])-1][0] != float64(i+13) {
			t.Fatalf("window %d ends at %v", i, x[i][len(x[i])-1][0])
		}
		if y[i] != float64(i+14) {
			t.Fatalf("target %d is %v, want %v", i, y[i], float64(i+14))
		}
	}
}

func TestWindowsDeterministic(t *testing.T) {
	rows, target := seqRows(30)
	x1, y1 := Windows(rows, target, 14)
	x2, y2 := Windows(rows, target, 14)
	if !reflect.DeepEqual(x1, x2) || !reflect.DeepEqual(y1, y2) {
		t.Fatalf("windowing must be deterministic")
	}
}

func TestUnwindowIndex(t *testing.T) {
	dates := dayRange(20)
	idx := UnwindowIndex(dates, 14)
	if len(idx) != 6 {
		t.Fatalf("expected 6 labels, got %d", len(idx))
	}
	if !idx[0].Equal(dates[14]) {
		t.Fatalf("first label should be date 14, got %v", idx[0])
	}

	if idx := UnwindowIndex(dayRange(10), 14); idx != nil {
		t.Fatalf("expected nil labels for short series")
	}
}
