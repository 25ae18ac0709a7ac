package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"OilPulse/internal/domain/models"
	domrepo "OilPulse/internal/domain/repository"
	applogger "OilPulse/pkg/logger"
	"OilPulse/pkg/util"
)

// CSVStore persists one CSV file per table under a data directory. Writes
// replace the whole file through a temp-file rename so readers never see a
// half-written table.
type CSVStore struct {
	dir string
	log *applogger.Logger
}

func NewCSVStore(dir string, log *applogger.Logger) (*CSVStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &CSVStore{dir: dir, log: log.With("csvstore")}, nil
}

func (s *CSVStore) path(table string) string {
	return filepath.Join(s.dir, table+".csv")
}

func (s *CSVStore) SavePrices(ctx context.Context, points []models.PricePoint) error {
	rows := make([][]string, len(points))
	for i, p := range points {
		rows[i] = []string{
			p.Date.Format(util.DateFormat),
			formatFloat(p.Open),
			formatFloat(p.High),
			formatFloat(p.Low),
			formatFloat(p.Close),
			formatFloat(p.Volume),
		}
	}
	return s.writeTable(ctx, domrepo.TablePrices,
		[]string{"date", "1. open", "2. high", "3. low", "4. close", "5. volume"}, rows)
}

func (s *CSVStore) SaveForecasts(ctx context.Context, table string, recs []models.ForecastRecord) error {
	rows := make([][]string, len(recs))
	for i, r := range recs {
		rows[i] = []string{
			r.Date.Format(util.DateFormat),
			formatFloat(r.Actual),
			formatFloat(r.Predicted),
		}
	}
	return s.writeTable(ctx, table, []string{"date", "Actual", "Predicted"}, rows)
}

func (s *CSVStore) SaveSentiment(ctx context.Context, recs []models.SentimentRecord) error {
	rows := make([][]string, len(recs))
	for i, r := range recs {
		rows[i] = []string{
			r.Date.Format(util.DateFormat),
			formatFloat(r.Score),
		}
	}
	return s.writeTable(ctx, domrepo.TableSentiment, []string{"date", "sentiment"}, rows)
}

func (s *CSVStore) SaveNews(ctx context.Context, items []models.NewsItem) error {
	rows := make([][]string, len(items))
	for i, it := range items {
		rows[i] = []string{
			it.PublishedAt.Format(util.TimestampFormat),
			it.Title,
			it.Description,
		}
	}
	return s.writeTable(ctx, domrepo.TableNews, []string{"publishedAt", "title", "description"}, rows)
}

// ReadTable loads a persisted table as untyped cells. A missing or
// unreadable file is ErrStorageUnavailable; the caller decides how that
// maps onto its boundary.
func (s *CSVStore) ReadTable(ctx context.Context, table string) (*models.RawTable, error) {
	f, err := os.Open(s.path(table))
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", models.ErrStorageUnavailable, table, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	all, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", models.ErrStorageUnavailable, table, err)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("%w: %s has no header", models.ErrStorageUnavailable, table)
	}

	return &models.RawTable{Header: all[0], Records: all[1:]}, nil
}

// Version reports a token tied to the file identity and modification time.
func (s *CSVStore) Version(ctx context.Context, table string) (string, bool) {
	p := s.path(table)
	info, err := os.Stat(p)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("%s@%d", p, info.ModTime().UnixNano()), true
}

func (s *CSVStore) writeTable(ctx context.Context, table string, header []string, rows [][]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, table+"-*.tmp")
	if err != nil {
		return fmt.Errorf("temp file for %s: %w", table, err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		tmp.Close()
		return fmt.Errorf("write header for %s: %w", table, err)
	}
	if err := w.WriteAll(rows); err != nil {
		tmp.Close()
		return fmt.Errorf("write rows for %s: %w", table, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush %s: %w", table, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp for %s: %w", table, err)
	}

	if err := os.Rename(tmp.Name(), s.path(table)); err != nil {
		return fmt.Errorf("replace %s: %w", table, err)
	}

	s.log.Info("table written",
		applogger.String("table", table),
		applogger.Int("rows", len(rows)),
	)
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var (
	_ domrepo.ForecastStore = (*CSVStore)(nil)
	_ domrepo.TableReader   = (*CSVStore)(nil)
)
