// Package forecast orchestrates the two-stage prediction ensemble on top of
// opaque trainable sequence predictors.
package forecast

import (
	"fmt"
	"math"

	"OilPulse/internal/domain/models"
	domrepo "OilPulse/internal/domain/repository"
	domsvc "OilPulse/internal/domain/service"
	"OilPulse/internal/timeseries"
	applogger "OilPulse/pkg/logger"
)

// PredictorFactory builds a fresh predictor per stage; the two stages must
// never share model state.
type PredictorFactory func() domsvc.SequencePredictor

// Config holds the fixed ensemble hyperparameters. EnsembleWeight is the
// stage-B share of the final combination; it is static, not learned.
type Config struct {
	WindowLength   int
	TrainSplit     float64
	EnsembleWeight float64
	UseSentiment   bool
}

// Result carries both stages' full-history forecasts and holdout errors.
type Result struct {
	StageA    []models.ForecastRecord
	Ensemble  []models.ForecastRecord
	StageAMAE float64
	StageBMAE float64
}

type Ensemble struct {
	cfg     Config
	factory PredictorFactory
	log     *applogger.Logger
	metrics domrepo.Metrics
}

func New(cfg Config, factory PredictorFactory, log *applogger.Logger, metrics domrepo.Metrics) *Ensemble {
	return &Ensemble{cfg: cfg, factory: factory, log: log.With("ensemble"), metrics: metrics}
}

// Run trains stage A on price history alone, feeds its full-history output
// into stage B as an auxiliary column (plus sentiment when configured), and
// combines the two prediction streams under the fixed weighting rule.
func (e *Ensemble) Run(prices models.Series, sentiment models.Series) (*Result, error) {
	wl := e.cfg.WindowLength
	if prices.Len() <= wl {
		return nil, fmt.Errorf("%w: %d price rows for window length %d",
			models.ErrInsufficientHistory, prices.Len(), wl)
	}

	// Stage A: price-only predictor.
	tableA, err := timeseries.Align(prices)
	if err != nil {
		return nil, fmt.Errorf("stage a: %w", err)
	}
	predA, actualA, maeA, err := e.runStage("stage_a", tableA)
	if err != nil {
		return nil, fmt.Errorf("stage a: %w", err)
	}
	datesA := timeseries.UnwindowIndex(prices.Dates, wl)

	res := &Result{StageAMAE: maeA}
	for i, d := range datesA {
		res.StageA = append(res.StageA, models.ForecastRecord{
			Date: d, Actual: actualA[i], Predicted: predA[i],
		})
	}

	// Stage B: price plus stage-A predictions, aligned on the price axis
	// shifted past the first window.
	primaryB := timeseries.Clip(prices,
		prices.Dates[0].AddDate(0, 0, wl),
		prices.Dates[prices.Len()-1])
	aux := []timeseries.Auxiliary{{
		Series: timeseries.NewSeries("Predicted", datesA, predA),
		Fill:   timeseries.FillForwardBackward,
	}}
	if e.cfg.UseSentiment {
		aux = append(aux, timeseries.Auxiliary{Series: sentiment, Fill: timeseries.FillNeutral})
	}
	tableB, err := timeseries.Align(primaryB, aux...)
	if err != nil {
		return nil, fmt.Errorf("stage b: %w", err)
	}
	predB, actualB, maeB, err := e.runStage("stage_b", tableB)
	if err != nil {
		return nil, fmt.Errorf("stage b: %w", err)
	}
	res.StageBMAE = maeB

	// Fixed convex combination of the two prediction streams, aligned on
	// stage B's target dates.
	datesB := timeseries.UnwindowIndex(tableB.Dates, wl)
	stageAOnB := tableB.Column("Predicted")[wl:]
	w := e.cfg.EnsembleWeight
	for i, d := range datesB {
		final := w*predB[i] + (1-w)*stageAOnB[i]
		res.Ensemble = append(res.Ensemble, models.ForecastRecord{
			Date: d, Actual: actualB[i], Predicted: final,
		})
	}

	e.log.Info("ensemble complete",
		applogger.Int("stage_a_rows", len(res.StageA)),
		applogger.Int("ensemble_rows", len(res.Ensemble)),
		applogger.Float64("stage_a_mae", maeA),
		applogger.Float64("stage_b_mae", maeB),
	)
	return res, nil
}

// runStage fits a fresh predictor on the table's windows and returns the
// full-history prediction and actual vectors in original price units, plus
// the holdout mean absolute error. The target is always the primary column
// of the row following each window, scaled through its own independent
// state so feature and target ranges never couple.
func (e *Ensemble) runStage(stage string, table *models.AlignedTable) (pred, actual []float64, mae float64, err error) {
	wl := e.cfg.WindowLength

	featState := timeseries.Fit(table.Rows)
	scaledRows := featState.Transform(table.Rows)

	targetCol := table.Column(table.Columns[0])
	targetState := timeseries.FitColumn(targetCol)
	scaledTarget := targetState.TransformColumn(targetCol)

	x, y := timeseries.Windows(scaledRows, scaledTarget, wl)
	if len(x) == 0 {
		return nil, nil, 0, fmt.Errorf("%w: %d rows yield no windows of length %d",
			models.ErrInsufficientHistory, table.Len(), wl)
	}

	// Chronological split: no shuffling, the holdout is strictly later
	// than everything trained on.
	split := int(float64(len(x)) * e.cfg.TrainSplit)
	if split < 1 {
		return nil, nil, 0, fmt.Errorf("%w: %d windows leave no training split",
			models.ErrInsufficientHistory, len(x))
	}

	m := e.factory()
	if err := m.Fit(x[:split], y[:split]); err != nil {
		return nil, nil, 0, fmt.Errorf("fit: %w", err)
	}
	scaledPred, err := m.Predict(x)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("predict: %w", err)
	}

	pred = targetState.InverseColumn(scaledPred)
	actual = targetState.InverseColumn(y)

	if split < len(x) {
		mae = meanAbsError(actual[split:], pred[split:])
	} else {
		e.log.Warn("empty holdout, skipping evaluation", applogger.String("stage", stage))
	}
	e.metrics.RecordHoldoutMAE(stage, mae)
	e.log.Info("stage trained",
		applogger.String("stage", stage),
		applogger.Int("windows", len(x)),
		applogger.Int("train", split),
		applogger.Int("holdout", len(x)-split),
		applogger.Float64("holdout_mae", mae),
	)
	return pred, actual, mae, nil
}

func meanAbsError(actual, pred []float64) float64 {
	if len(actual) == 0 {
		return 0
	}
	var sum float64
	for i := range actual {
		sum += math.Abs(actual[i] - pred[i])
	}
	return sum / float64(len(actual))
}
