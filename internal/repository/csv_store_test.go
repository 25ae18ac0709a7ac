package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"OilPulse/internal/domain/models"
	domrepo "OilPulse/internal/domain/repository"
	"OilPulse/internal/service/cache"
	applogger "OilPulse/pkg/logger"
)

func newTestStore(t *testing.T) *CSVStore {
	t.Helper()
	s, err := NewCSVStore(t.TempDir(), applogger.Nop())
	if err != nil {
		t.Fatalf("NewCSVStore: %v", err)
	}
	return s
}

func TestForecastRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	recs := []models.ForecastRecord{
		{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Actual: 70.25, Predicted: 69.5},
		{Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Actual: 71, Predicted: 70.75},
	}
	if err := s.SaveForecasts(ctx, domrepo.TableEnsemble, recs); err != nil {
		t.Fatalf("SaveForecasts: %v", err)
	}

	table, err := s.ReadTable(ctx, domrepo.TableEnsemble)
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}
	if len(table.Header) != 3 || table.Header[0] != "date" {
		t.Fatalf("unexpected header: %v", table.Header)
	}
	if len(table.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(table.Records))
	}
	if table.Records[0][0] != "2024-01-01" || table.Records[0][1] != "70.25" {
		t.Fatalf("unexpected first record: %v", table.Records[0])
	}
}

func TestReadMissingTable(t *testing.T) {
	s := newTestStore(t)

	_, err := s.ReadTable(context.Background(), domrepo.TablePrices)
	if !errors.Is(err, models.ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
}

func TestSaveOverwritesWhole(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := []models.SentimentRecord{
		{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Score: 0.3},
		{Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Score: -0.1},
	}
	if err := s.SaveSentiment(ctx, first); err != nil {
		t.Fatalf("SaveSentiment: %v", err)
	}

	second := []models.SentimentRecord{
		{Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Score: 0.05},
	}
	if err := s.SaveSentiment(ctx, second); err != nil {
		t.Fatalf("SaveSentiment: %v", err)
	}

	table, err := s.ReadTable(ctx, domrepo.TableSentiment)
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}
	if len(table.Records) != 1 || table.Records[0][0] != "2024-02-01" {
		t.Fatalf("expected full overwrite, got %v", table.Records)
	}
}

func TestVersionChangesOnWrite(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, ok := s.Version(ctx, domrepo.TableNews); ok {
		t.Fatal("expected no version before first write")
	}

	items := []models.NewsItem{
		{PublishedAt: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC), Title: "a", Description: "b"},
	}
	if err := s.SaveNews(ctx, items); err != nil {
		t.Fatalf("SaveNews: %v", err)
	}
	v1, ok := s.Version(ctx, domrepo.TableNews)
	if !ok || v1 == "" {
		t.Fatal("expected a version after write")
	}

	time.Sleep(10 * time.Millisecond)
	if err := s.SaveNews(ctx, items); err != nil {
		t.Fatalf("SaveNews: %v", err)
	}
	v2, _ := s.Version(ctx, domrepo.TableNews)
	if v1 == v2 {
		t.Fatalf("version did not roll on rewrite: %s", v1)
	}
}

func TestCachedReaderServesAndInvalidates(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	r := NewCachedTableReader(s, cache.NewMemory(), time.Minute, applogger.Nop())

	recs := []models.ForecastRecord{
		{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Actual: 1, Predicted: 2},
	}
	if err := s.SaveForecasts(ctx, domrepo.TableEnsemble, recs); err != nil {
		t.Fatalf("SaveForecasts: %v", err)
	}

	t1, err := r.ReadTable(ctx, domrepo.TableEnsemble)
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}
	// Second read hits the cache.
	t2, err := r.ReadTable(ctx, domrepo.TableEnsemble)
	if err != nil {
		t.Fatalf("ReadTable (cached): %v", err)
	}
	if len(t1.Records) != 1 || len(t2.Records) != 1 {
		t.Fatalf("unexpected records: %v vs %v", t1.Records, t2.Records)
	}

	time.Sleep(10 * time.Millisecond)
	recs = append(recs, models.ForecastRecord{
		Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Actual: 3, Predicted: 4,
	})
	if err := s.SaveForecasts(ctx, domrepo.TableEnsemble, recs); err != nil {
		t.Fatalf("SaveForecasts: %v", err)
	}

	t3, err := r.ReadTable(ctx, domrepo.TableEnsemble)
	if err != nil {
		t.Fatalf("ReadTable (after rewrite): %v", err)
	}
	if len(t3.Records) != 2 {
		t.Fatalf("cache key did not roll with the file, got %d records", len(t3.Records))
	}
}
