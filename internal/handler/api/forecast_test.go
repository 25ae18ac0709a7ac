package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"OilPulse/internal/domain/models"
	domrepo "OilPulse/internal/domain/repository"
	"OilPulse/internal/usecase"
	applogger "OilPulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

type stubReader struct {
	tables map[string]*models.RawTable
}

func (s *stubReader) ReadTable(_ context.Context, table string) (*models.RawTable, error) {
	t, ok := s.tables[table]
	if !ok {
		return nil, errors.New("storage unavailable: " + table)
	}
	return t, nil
}

func (s *stubReader) Version(_ context.Context, table string) (string, bool) {
	_, ok := s.tables[table]
	return table + "@1", ok
}

type stubMetrics struct{}

func (stubMetrics) RecordStageRows(string, int)           {}
func (stubMetrics) RecordStageDuration(string, float64)   {}
func (stubMetrics) RecordGatewayRows(string, string, int) {}
func (stubMetrics) RecordRequest(string)                  {}
func (stubMetrics) RecordError(string)                    {}
func (stubMetrics) RecordHoldoutMAE(string, float64)      {}

func newTestServer(tables map[string]*models.RawTable) *echo.Echo {
	gw := usecase.NewQueryGateway(&stubReader{tables: tables}, stubMetrics{}, applogger.Nop())
	h := NewForecastHandler(applogger.Nop(), gw)
	e := echo.New()
	h.RegisterRoutes(e)
	return e
}

func doGet(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestLiveness(t *testing.T) {
	e := newTestServer(nil)

	rec := doGet(e, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "active" {
		t.Fatalf("unexpected liveness body: %v", body)
	}
}

func TestPredictionsEndpoint(t *testing.T) {
	e := newTestServer(map[string]*models.RawTable{
		domrepo.TableEnsemble: {
			Header: []string{"date", "Actual", "Predicted"},
			Records: [][]string{
				{"2024-01-01", "70.1", "69.8"},
				{"2024-01-02", "71.5", "70.9"},
			},
		},
	})

	rec := doGet(e, "/predictions")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var rows []models.PredictionRow
	if err := json.Unmarshal(rec.Body.Bytes(), &rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rows) != 2 || rows[1].Predicted != 70.9 {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestPredictionsRangeQuery(t *testing.T) {
	e := newTestServer(map[string]*models.RawTable{
		domrepo.TableEnsemble: {
			Header: []string{"date", "Actual", "Predicted"},
			Records: [][]string{
				{"2024-01-01", "70.1", "69.8"},
				{"2024-01-02", "71.5", "70.9"},
				{"2024-01-03", "72.0", "71.3"},
			},
		},
	})

	rec := doGet(e, "/predictions?start=2024-01-02&end=2024-01-03")
	var rows []models.PredictionRow
	if err := json.Unmarshal(rec.Body.Bytes(), &rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rows) != 2 || rows[0].Date != "2024-01-02" {
		t.Fatalf("unexpected filtered rows: %+v", rows)
	}
}

func TestPredictionsMissingTableIsServerError(t *testing.T) {
	e := newTestServer(map[string]*models.RawTable{})

	rec := doGet(e, "/predictions")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for missing table, got %d", rec.Code)
	}
}

func TestNewsDefaultLimit(t *testing.T) {
	table := &models.RawTable{Header: []string{"publishedAt", "title", "description"}}
	for i := 0; i < 10; i++ {
		table.Records = append(table.Records, []string{
			"2024-03-0" + string(rune('1'+i%9)) + "T08:00:00Z", "article", "text",
		})
	}
	e := newTestServer(map[string]*models.RawTable{domrepo.TableNews: table})

	rec := doGet(e, "/news")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var rows []models.NewsRow
	if err := json.Unmarshal(rec.Body.Bytes(), &rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("expected default limit 5, got %d", len(rows))
	}
}

func TestNewsLimitValidation(t *testing.T) {
	e := newTestServer(map[string]*models.RawTable{
		domrepo.TableNews: {Header: []string{"publishedAt", "title", "description"}},
	})

	rec := doGet(e, "/news?limit=1000")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for limit=1000, got %d", rec.Code)
	}
}

func TestSentimentEndpointEmpty(t *testing.T) {
	e := newTestServer(map[string]*models.RawTable{
		domrepo.TableSentiment: {Header: []string{"date", "sentiment"}},
	})

	rec := doGet(e, "/sentiment")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var rows []models.SentimentRow
	if err := json.Unmarshal(rec.Body.Bytes(), &rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected empty list, got %+v", rows)
	}
}
