package usecase

import (
	"context"
	"sort"
	"strconv"
	"time"

	"OilPulse/internal/domain/models"
	domrepo "OilPulse/internal/domain/repository"
	"OilPulse/pkg/util"

	applogger "OilPulse/pkg/logger"
)

// QueryGateway serves persisted pipeline tables over the read path. Every
// request re-reads its table from storage; freshness is whatever the last
// pipeline run wrote. Rows that fail coercion are dropped, not zeroed, so a
// partially corrupt table still serves its intact remainder.
type QueryGateway struct {
	reader  domrepo.TableReader
	metrics domrepo.Metrics
	log     *applogger.Logger
}

func NewQueryGateway(reader domrepo.TableReader, metrics domrepo.Metrics, log *applogger.Logger) *QueryGateway {
	return &QueryGateway{
		reader:  reader,
		metrics: metrics,
		log:     log.With("gateway"),
	}
}

// Predictions returns the ensemble forecast rows, optionally filtered to an
// inclusive date range.
func (g *QueryGateway) Predictions(ctx context.Context, req models.RangeRequest) ([]models.PredictionRow, error) {
	g.metrics.RecordRequest(domrepo.TableEnsemble)

	t, err := g.reader.ReadTable(ctx, domrepo.TableEnsemble)
	if err != nil {
		g.metrics.RecordError("storage")
		return nil, err
	}

	rows := g.coercePredictions(t)
	rows = filterRange(rows, req.Start, req.End, g, domrepo.TableEnsemble,
		func(r models.PredictionRow) string { return r.Date })
	g.metrics.RecordGatewayRows(domrepo.TableEnsemble, "served", len(rows))
	return rows, nil
}

// Sentiment returns the daily sentiment rows, optionally range filtered.
func (g *QueryGateway) Sentiment(ctx context.Context, req models.RangeRequest) ([]models.SentimentRow, error) {
	g.metrics.RecordRequest(domrepo.TableSentiment)

	t, err := g.reader.ReadTable(ctx, domrepo.TableSentiment)
	if err != nil {
		g.metrics.RecordError("storage")
		return nil, err
	}

	rows := g.coerceSentiment(t)
	rows = filterRange(rows, req.Start, req.End, g, domrepo.TableSentiment,
		func(r models.SentimentRow) string { return r.Date })
	g.metrics.RecordGatewayRows(domrepo.TableSentiment, "served", len(rows))
	return rows, nil
}

// News returns the newest articles first, optionally restricted to an
// inclusive date range on the published day, capped at req.Limit.
func (g *QueryGateway) News(ctx context.Context, req models.NewsRequest) ([]models.NewsRow, error) {
	g.metrics.RecordRequest(domrepo.TableNews)

	t, err := g.reader.ReadTable(ctx, domrepo.TableNews)
	if err != nil {
		g.metrics.RecordError("storage")
		return nil, err
	}

	rows := g.coerceNews(t)
	rows = filterRange(rows, req.Start, req.End, g, domrepo.TableNews,
		func(r datedNewsRow) string { return util.Day(r.publishedAt).Format(util.DateFormat) })
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].publishedAt.After(rows[j].publishedAt)
	})

	out := make([]models.NewsRow, 0, req.Limit)
	for _, r := range rows {
		if len(out) == req.Limit {
			break
		}
		out = append(out, r.NewsRow)
	}
	g.metrics.RecordGatewayRows(domrepo.TableNews, "served", len(out))
	return out, nil
}

func (g *QueryGateway) coercePredictions(t *models.RawTable) []models.PredictionRow {
	di := t.ColumnIndex("date")
	ai := t.ColumnIndex("Actual")
	pi := t.ColumnIndex("Predicted")
	if di < 0 || ai < 0 || pi < 0 {
		g.log.Warn("prediction table missing expected columns")
		return []models.PredictionRow{}
	}

	rows := make([]models.PredictionRow, 0, len(t.Records))
	dropped := 0
	for _, rec := range t.Records {
		if len(rec) <= di || len(rec) <= ai || len(rec) <= pi {
			dropped++
			continue
		}
		if _, ok := util.ParseDate(rec[di]); !ok {
			dropped++
			continue
		}
		actual, err := strconv.ParseFloat(rec[ai], 64)
		if err != nil {
			dropped++
			continue
		}
		predicted, err := strconv.ParseFloat(rec[pi], 64)
		if err != nil {
			dropped++
			continue
		}
		rows = append(rows, models.PredictionRow{Date: rec[di], Actual: actual, Predicted: predicted})
	}
	if dropped > 0 {
		g.log.Warn("dropped uncoercible prediction rows", applogger.Int("dropped", dropped))
		g.metrics.RecordGatewayRows(domrepo.TableEnsemble, "dropped", dropped)
	}
	return rows
}

func (g *QueryGateway) coerceSentiment(t *models.RawTable) []models.SentimentRow {
	di := t.ColumnIndex("date")
	si := t.ColumnIndex("sentiment")
	if di < 0 || si < 0 {
		g.log.Warn("sentiment table missing expected columns")
		return []models.SentimentRow{}
	}

	rows := make([]models.SentimentRow, 0, len(t.Records))
	dropped := 0
	for _, rec := range t.Records {
		if len(rec) <= di || len(rec) <= si {
			dropped++
			continue
		}
		if _, ok := util.ParseDate(rec[di]); !ok {
			dropped++
			continue
		}
		score, err := strconv.ParseFloat(rec[si], 64)
		if err != nil {
			dropped++
			continue
		}
		rows = append(rows, models.SentimentRow{Date: rec[di], Sentiment: score})
	}
	if dropped > 0 {
		g.log.Warn("dropped uncoercible sentiment rows", applogger.Int("dropped", dropped))
		g.metrics.RecordGatewayRows(domrepo.TableSentiment, "dropped", dropped)
	}
	return rows
}

type datedNewsRow struct {
	models.NewsRow
	publishedAt time.Time
}

func (g *QueryGateway) coerceNews(t *models.RawTable) []datedNewsRow {
	pi := t.ColumnIndex("publishedAt")
	ti := t.ColumnIndex("title")
	di := t.ColumnIndex("description")
	if pi < 0 || ti < 0 || di < 0 {
		g.log.Warn("news table missing expected columns")
		return nil
	}

	rows := make([]datedNewsRow, 0, len(t.Records))
	dropped := 0
	for _, rec := range t.Records {
		if len(rec) <= pi || len(rec) <= ti || len(rec) <= di {
			dropped++
			continue
		}
		at, ok := util.ParseTimestamp(rec[pi])
		if !ok {
			dropped++
			continue
		}
		rows = append(rows, datedNewsRow{
			NewsRow: models.NewsRow{
				Title:       rec[ti],
				Description: rec[di],
				PublishedAt: at.Format(util.TimestampFormat),
			},
			publishedAt: at,
		})
	}
	if dropped > 0 {
		g.log.Warn("dropped news rows with bad timestamps", applogger.Int("dropped", dropped))
		g.metrics.RecordGatewayRows(domrepo.TableNews, "dropped", dropped)
	}
	return rows
}

// filterRange applies the inclusive [start, end] filter when both bounds
// parse. A single bound, or an unparseable one, disables the filter so a
// malformed query degrades to the full table rather than an error.
func filterRange[T any](rows []T, start, end string, g *QueryGateway, table string, dateOf func(T) string) []T {
	if start == "" || end == "" {
		return rows
	}
	lo, ok := util.ParseDate(start)
	if !ok {
		g.log.Warn("ignoring malformed range start", applogger.String("start", start))
		return rows
	}
	hi, ok := util.ParseDate(end)
	if !ok {
		g.log.Warn("ignoring malformed range end", applogger.String("end", end))
		return rows
	}

	out := make([]T, 0, len(rows))
	for _, r := range rows {
		d, ok := util.ParseDate(dateOf(r))
		if !ok {
			continue
		}
		if d.Before(lo) || d.After(hi) {
			continue
		}
		out = append(out, r)
	}
	g.metrics.RecordGatewayRows(table, "filtered", len(out))
	return out
}
