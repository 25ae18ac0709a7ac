package service

import (
	"context"
	"time"

	"OilPulse/internal/domain/models"
)

// SequencePredictor is an opaque trainable sequence model. X is a batch of
// fixed-length windows, each window a [length][features] block; y is the
// one-step-ahead target per window. Implementations must be usable as
// fit-then-predict with no other lifecycle.
type SequencePredictor interface {
	Fit(x [][][]float64, y []float64) error
	Predict(x [][][]float64) ([]float64, error)
}

// MarketDataSource fetches daily price rows for a symbol over an inclusive
// date range. "No data for symbol" and transient transport failures are
// distinguishable via errors.Is on the returned error.
type MarketDataSource interface {
	Fetch(ctx context.Context, symbol string, start, end time.Time) ([]models.PricePoint, error)
}

// NewsSource fetches articles matching a query over a date range.
type NewsSource interface {
	Fetch(ctx context.Context, query string, start, end time.Time) ([]models.NewsItem, error)
}

// SentimentScorer maps text to a scalar in a bounded symmetric range.
type SentimentScorer interface {
	Score(text string) float64
}
