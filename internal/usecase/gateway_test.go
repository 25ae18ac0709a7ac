package usecase

import (
	"context"
	"errors"
	"reflect"
	"strconv"
	"testing"

	"OilPulse/internal/domain/models"
	domrepo "OilPulse/internal/domain/repository"
	applogger "OilPulse/pkg/logger"
)

type fakeReader struct {
	tables map[string]*models.RawTable
}

func (f *fakeReader) ReadTable(_ context.Context, table string) (*models.RawTable, error) {
	t, ok := f.tables[table]
	if !ok {
		return nil, errors.New("storage unavailable: " + table)
	}
	return t, nil
}

func (f *fakeReader) Version(_ context.Context, table string) (string, bool) {
	_, ok := f.tables[table]
	return table + "@1", ok
}

type nopMetrics struct{}

func (nopMetrics) RecordStageRows(string, int)           {}
func (nopMetrics) RecordStageDuration(string, float64)   {}
func (nopMetrics) RecordGatewayRows(string, string, int) {}
func (nopMetrics) RecordRequest(string)                  {}
func (nopMetrics) RecordError(string)                    {}
func (nopMetrics) RecordHoldoutMAE(string, float64)      {}

func newTestGateway(tables map[string]*models.RawTable) *QueryGateway {
	return NewQueryGateway(&fakeReader{tables: tables}, nopMetrics{}, applogger.Nop())
}

func predictionTable() *models.RawTable {
	return &models.RawTable{
		Header: []string{"date", "Actual", "Predicted"},
		Records: [][]string{
			{"2024-01-01", "70.1", "69.8"},
			{"2024-01-02", "71.5", "70.9"},
			{"2024-01-03", "72.2", "71.7"},
			{"2024-01-04", "71.9", "72.0"},
		},
	}
}

func TestPredictionsFullTable(t *testing.T) {
	g := newTestGateway(map[string]*models.RawTable{domrepo.TableEnsemble: predictionTable()})

	rows, err := g.Predictions(context.Background(), models.RangeRequest{})
	if err != nil {
		t.Fatalf("Predictions: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	if rows[0].Date != "2024-01-01" || rows[0].Actual != 70.1 || rows[0].Predicted != 69.8 {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
}

func TestPredictionsRangeFilterInclusive(t *testing.T) {
	g := newTestGateway(map[string]*models.RawTable{domrepo.TableEnsemble: predictionTable()})

	rows, err := g.Predictions(context.Background(), models.RangeRequest{Start: "2024-01-02", End: "2024-01-03"})
	if err != nil {
		t.Fatalf("Predictions: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Date != "2024-01-02" || rows[1].Date != "2024-01-03" {
		t.Fatalf("bounds not inclusive: %+v", rows)
	}
}

func TestPredictionsSingleBoundIgnored(t *testing.T) {
	g := newTestGateway(map[string]*models.RawTable{domrepo.TableEnsemble: predictionTable()})

	rows, err := g.Predictions(context.Background(), models.RangeRequest{Start: "2024-01-03"})
	if err != nil {
		t.Fatalf("Predictions: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("lone bound must not filter, got %d rows", len(rows))
	}
}

func TestPredictionsMalformedBoundIgnored(t *testing.T) {
	g := newTestGateway(map[string]*models.RawTable{domrepo.TableEnsemble: predictionTable()})

	rows, err := g.Predictions(context.Background(), models.RangeRequest{Start: "not-a-date", End: "2024-01-03"})
	if err != nil {
		t.Fatalf("Predictions: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("malformed bound must disable the filter, got %d rows", len(rows))
	}
}

func TestPredictionsEmptyRange(t *testing.T) {
	g := newTestGateway(map[string]*models.RawTable{domrepo.TableEnsemble: predictionTable()})

	rows, err := g.Predictions(context.Background(), models.RangeRequest{Start: "2030-01-01", End: "2030-12-31"})
	if err != nil {
		t.Fatalf("Predictions: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected empty result, got %d rows", len(rows))
	}
}

func TestPredictionsDropsUncoercibleRows(t *testing.T) {
	table := predictionTable()
	table.Records = append(table.Records,
		[]string{"2024-01-05", "oops", "73.0"},
		[]string{"garbage", "73.1", "73.2"},
	)
	g := newTestGateway(map[string]*models.RawTable{domrepo.TableEnsemble: table})

	rows, err := g.Predictions(context.Background(), models.RangeRequest{})
	if err != nil {
		t.Fatalf("Predictions: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected corrupt rows dropped, got %d rows", len(rows))
	}
}

func TestPredictionsMissingTable(t *testing.T) {
	g := newTestGateway(map[string]*models.RawTable{})

	if _, err := g.Predictions(context.Background(), models.RangeRequest{}); err == nil {
		t.Fatal("expected error for missing table, got nil")
	}
}

func TestSentimentRangeFilter(t *testing.T) {
	table := &models.RawTable{
		Header: []string{"date", "sentiment"},
		Records: [][]string{
			{"2024-02-01", "-0.25"},
			{"2024-02-02", "0.1"},
			{"2024-02-03", "0.4"},
		},
	}
	g := newTestGateway(map[string]*models.RawTable{domrepo.TableSentiment: table})

	rows, err := g.Sentiment(context.Background(), models.RangeRequest{Start: "2024-02-02", End: "2024-02-03"})
	if err != nil {
		t.Fatalf("Sentiment: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Sentiment != 0.1 {
		t.Fatalf("unexpected score: %+v", rows[0])
	}
}

func TestNewsNewestFirstAndLimited(t *testing.T) {
	table := &models.RawTable{
		Header: []string{"publishedAt", "title", "description"},
		Records: [][]string{
			{"2024-03-01T08:00:00Z", "oldest", "a"},
			{"2024-03-03T08:00:00Z", "newest", "b"},
			{"2024-03-02T08:00:00Z", "middle", "c"},
		},
	}
	g := newTestGateway(map[string]*models.RawTable{domrepo.TableNews: table})

	rows, err := g.News(context.Background(), models.NewsRequest{Limit: 2})
	if err != nil {
		t.Fatalf("News: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected limit 2, got %d", len(rows))
	}
	if rows[0].Title != "newest" || rows[1].Title != "middle" {
		t.Fatalf("not sorted newest first: %+v", rows)
	}
}

func TestPredictionsFilterIdempotent(t *testing.T) {
	g := newTestGateway(map[string]*models.RawTable{domrepo.TableEnsemble: predictionTable()})
	req := models.RangeRequest{Start: "2024-01-02", End: "2024-01-03"}

	first, err := g.Predictions(context.Background(), req)
	if err != nil {
		t.Fatalf("Predictions: %v", err)
	}

	// Serve the already-filtered rows back through a fresh gateway with the
	// same bounds; the filter must be a fixed point.
	refiltered := &models.RawTable{Header: []string{"date", "Actual", "Predicted"}}
	for _, r := range first {
		refiltered.Records = append(refiltered.Records, []string{
			r.Date,
			strconv.FormatFloat(r.Actual, 'f', -1, 64),
			strconv.FormatFloat(r.Predicted, 'f', -1, 64),
		})
	}
	g2 := newTestGateway(map[string]*models.RawTable{domrepo.TableEnsemble: refiltered})

	second, err := g2.Predictions(context.Background(), req)
	if err != nil {
		t.Fatalf("Predictions (refiltered): %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("re-filtering changed the result:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestNewsRangeFilter(t *testing.T) {
	table := &models.RawTable{
		Header: []string{"publishedAt", "title", "description"},
		Records: [][]string{
			{"2024-03-05T08:00:00Z", "in-range older", "a"},
			{"2024-04-10T08:00:00Z", "out-of-range", "b"},
			{"2024-03-20T08:00:00Z", "in-range newer", "c"},
		},
	}
	g := newTestGateway(map[string]*models.RawTable{domrepo.TableNews: table})

	rows, err := g.News(context.Background(), models.NewsRequest{
		Start: "2024-03-01", End: "2024-03-31", Limit: 5,
	})
	if err != nil {
		t.Fatalf("News: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 in-range articles, got %+v", rows)
	}
	if rows[0].Title != "in-range newer" || rows[1].Title != "in-range older" {
		t.Fatalf("unexpected order or contents: %+v", rows)
	}
}

func TestNewsRangeAppliedBeforeLimit(t *testing.T) {
	table := &models.RawTable{
		Header: []string{"publishedAt", "title", "description"},
		Records: [][]string{
			{"2024-03-20T08:00:00Z", "in-range", "a"},
			{"2024-04-10T08:00:00Z", "newer but out-of-range", "b"},
		},
	}
	g := newTestGateway(map[string]*models.RawTable{domrepo.TableNews: table})

	rows, err := g.News(context.Background(), models.NewsRequest{
		Start: "2024-03-01", End: "2024-03-31", Limit: 1,
	})
	if err != nil {
		t.Fatalf("News: %v", err)
	}
	if len(rows) != 1 || rows[0].Title != "in-range" {
		t.Fatalf("out-of-range article crowded out the in-range one: %+v", rows)
	}
}

func TestNewsTimestampsCanonicalized(t *testing.T) {
	table := &models.RawTable{
		Header: []string{"publishedAt", "title", "description"},
		Records: [][]string{
			{"2024-03-03T08:00:00+02:00", "offset form", "a"},
		},
	}
	g := newTestGateway(map[string]*models.RawTable{domrepo.TableNews: table})

	rows, err := g.News(context.Background(), models.NewsRequest{Limit: 5})
	if err != nil {
		t.Fatalf("News: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 article, got %d", len(rows))
	}
	if rows[0].PublishedAt != "2024-03-03T08:00:00Z" {
		t.Fatalf("timestamp not canonicalized: %q", rows[0].PublishedAt)
	}
}

func TestNewsSkipsBadTimestamps(t *testing.T) {
	table := &models.RawTable{
		Header: []string{"publishedAt", "title", "description"},
		Records: [][]string{
			{"yesterday", "broken", "x"},
			{"2024-03-03T08:00:00Z", "good", "y"},
		},
	}
	g := newTestGateway(map[string]*models.RawTable{domrepo.TableNews: table})

	rows, err := g.News(context.Background(), models.NewsRequest{Limit: 5})
	if err != nil {
		t.Fatalf("News: %v", err)
	}
	if len(rows) != 1 || rows[0].Title != "good" {
		t.Fatalf("expected only the valid article, got %+v", rows)
	}
}
