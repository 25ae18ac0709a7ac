package util

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, ok := ParseDate("2022-01-15")
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.Format(DateFormat) != "2022-01-15" {
		t.Fatalf("unexpected date %v", got)
	}
}

func TestParseDateRejectsTimestamp(t *testing.T) {
	if _, ok := ParseDate("2022-01-15T10:00:00Z"); ok {
		t.Fatalf("expected not ok")
	}
}

func TestParseTimestampCanonical(t *testing.T) {
	got, ok := ParseTimestamp("2024-10-10T10:10:10Z")
	if !ok {
		t.Fatalf("expected ok")
	}
	want := time.Date(2024, 10, 10, 10, 10, 10, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("unexpected time %v", got)
	}
}

func TestParseTimestampDropsZone(t *testing.T) {
	got, ok := ParseTimestamp("2024-10-10T10:10:10+05:00")
	if !ok {
		t.Fatalf("expected ok")
	}
	want := time.Date(2024, 10, 10, 10, 10, 10, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("zone should be dropped, got %v", got)
	}
}

func TestDay(t *testing.T) {
	got := Day(time.Date(2024, 10, 10, 23, 59, 59, 0, time.UTC))
	want := time.Date(2024, 10, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("unexpected day %v", got)
	}
}
