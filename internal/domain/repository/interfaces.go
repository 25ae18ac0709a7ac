package repository

import (
	"context"

	"OilPulse/internal/domain/models"
)

// Table names of the persisted per-concern tables.
const (
	TablePrices           = "oil_prices"
	TableStagePredictions = "stage_predictions"
	TableEnsemble         = "ensemble_predictions"
	TableSentiment        = "sentiment_scores"
	TableNews             = "news_articles"
)

// ForecastStore persists pipeline outputs. Each save overwrites the whole
// table; there is no incremental update.
type ForecastStore interface {
	SavePrices(ctx context.Context, points []models.PricePoint) error
	SaveForecasts(ctx context.Context, table string, recs []models.ForecastRecord) error
	SaveSentiment(ctx context.Context, recs []models.SentimentRecord) error
	SaveNews(ctx context.Context, items []models.NewsItem) error
}

// TableReader loads persisted tables for the serving layer. Version reports
// an opaque identity+modification token so caches can invalidate wholesale.
type TableReader interface {
	ReadTable(ctx context.Context, table string) (*models.RawTable, error)
	Version(ctx context.Context, table string) (string, bool)
}

type Metrics interface {
	RecordStageRows(stage string, rows int)
	RecordStageDuration(stage string, seconds float64)
	RecordGatewayRows(table, step string, rows int)
	RecordRequest(table string)
	RecordError(kind string)
	RecordHoldoutMAE(stage string, mae float64)
}
