package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"OilPulse/internal/domain/models"
	domrepo "OilPulse/internal/domain/repository"
	domsvc "OilPulse/internal/domain/service"
	"OilPulse/internal/forecast"
	sentsvc "OilPulse/internal/service/sentiment"
	"OilPulse/pkg/util"

	applogger "OilPulse/pkg/logger"
)

// PipelineRunner executes one end-to-end batch: fetch prices and news, score
// sentiment, train the two-stage ensemble, and persist every table wholesale.
// The run is sequential; a failed stage aborts the run and leaves previously
// persisted tables from earlier runs untouched.
type PipelineRunner struct {
	market    domsvc.MarketDataSource
	news      domsvc.NewsSource
	scorer    domsvc.SentimentScorer
	ensemble  *forecast.Ensemble
	store     domrepo.ForecastStore
	metrics   domrepo.Metrics
	log       *applogger.Logger
	symbol    string
	query     string
	start     time.Time
	end       time.Time
	sentiment bool
}

type PipelineParams struct {
	Symbol       string
	Query        string
	Start        time.Time
	End          time.Time
	UseSentiment bool
}

func NewPipelineRunner(
	market domsvc.MarketDataSource,
	news domsvc.NewsSource,
	scorer domsvc.SentimentScorer,
	ensemble *forecast.Ensemble,
	store domrepo.ForecastStore,
	metrics domrepo.Metrics,
	log *applogger.Logger,
	params PipelineParams,
) *PipelineRunner {
	return &PipelineRunner{
		market:    market,
		news:      news,
		scorer:    scorer,
		ensemble:  ensemble,
		store:     store,
		metrics:   metrics,
		log:       log.With("pipeline"),
		symbol:    params.Symbol,
		query:     params.Query,
		start:     params.Start,
		end:       params.End,
		sentiment: params.UseSentiment,
	}
}

// Run executes the whole batch once.
func (p *PipelineRunner) Run(ctx context.Context) error {
	p.log.Info("pipeline run starting",
		applogger.String("symbol", p.symbol),
		applogger.String("start", p.start.Format(util.DateFormat)),
		applogger.String("end", p.end.Format(util.DateFormat)))

	prices, err := p.fetchPrices(ctx)
	if err != nil {
		return err
	}

	sentiment, err := p.collectSentiment(ctx)
	if err != nil {
		return err
	}

	result, err := p.train(ctx, prices, sentiment)
	if err != nil {
		return err
	}

	if err := p.store.SaveForecasts(ctx, domrepo.TableStagePredictions, result.StageA); err != nil {
		p.metrics.RecordError("storage")
		return fmt.Errorf("save stage predictions: %w", err)
	}
	if err := p.store.SaveForecasts(ctx, domrepo.TableEnsemble, result.Ensemble); err != nil {
		p.metrics.RecordError("storage")
		return fmt.Errorf("save ensemble predictions: %w", err)
	}

	p.log.Info("pipeline run complete",
		applogger.Int("forecast_rows", len(result.Ensemble)),
		applogger.Float64("stage_a_mae", result.StageAMAE),
		applogger.Float64("stage_b_mae", result.StageBMAE))
	return nil
}

func (p *PipelineRunner) fetchPrices(ctx context.Context) (models.Series, error) {
	start := time.Now()
	points, err := p.market.Fetch(ctx, p.symbol, p.start, p.end)
	if err != nil {
		p.metrics.RecordError("market_fetch")
		return models.Series{}, fmt.Errorf("fetch prices: %w", err)
	}
	p.metrics.RecordStageDuration("fetch_prices", time.Since(start).Seconds())
	p.metrics.RecordStageRows("fetch_prices", len(points))
	p.log.Info("fetched price history", applogger.Int("rows", len(points)))

	if err := p.store.SavePrices(ctx, points); err != nil {
		p.metrics.RecordError("storage")
		return models.Series{}, fmt.Errorf("save prices: %w", err)
	}

	s := models.Series{Name: "Close"}
	for _, pt := range points {
		s.Dates = append(s.Dates, pt.Date)
		s.Values = append(s.Values, pt.Close)
	}
	return s, nil
}

// collectSentiment fetches articles and reduces them to daily scores. A news
// feed with nothing for the query is tolerated: the run proceeds with an
// empty sentiment series and the ensemble falls back to price-only features.
func (p *PipelineRunner) collectSentiment(ctx context.Context) (models.Series, error) {
	start := time.Now()
	items, err := p.news.Fetch(ctx, p.query, p.start, p.end)
	if err != nil {
		if errors.Is(err, models.ErrNoData) {
			p.log.Warn("no articles for query, proceeding without sentiment",
				applogger.String("query", p.query))
			items = nil
		} else {
			p.metrics.RecordError("news_fetch")
			return models.Series{}, fmt.Errorf("fetch news: %w", err)
		}
	}
	p.metrics.RecordStageDuration("fetch_news", time.Since(start).Seconds())
	p.metrics.RecordStageRows("fetch_news", len(items))

	if err := p.store.SaveNews(ctx, items); err != nil {
		p.metrics.RecordError("storage")
		return models.Series{}, fmt.Errorf("save news: %w", err)
	}

	recs := sentsvc.DailyScores(items, p.scorer)
	if err := p.store.SaveSentiment(ctx, recs); err != nil {
		p.metrics.RecordError("storage")
		return models.Series{}, fmt.Errorf("save sentiment: %w", err)
	}
	p.metrics.RecordStageRows("sentiment", len(recs))
	p.log.Info("scored daily sentiment", applogger.Int("days", len(recs)))

	s := models.Series{Name: "Sentiment"}
	for _, r := range recs {
		s.Dates = append(s.Dates, r.Date)
		s.Values = append(s.Values, r.Score)
	}
	return s, nil
}

func (p *PipelineRunner) train(ctx context.Context, prices, sentiment models.Series) (*forecast.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	result, err := p.ensemble.Run(prices, sentiment)
	if err != nil {
		p.metrics.RecordError("training")
		return nil, fmt.Errorf("train ensemble: %w", err)
	}
	p.metrics.RecordStageDuration("train", time.Since(start).Seconds())
	return result, nil
}
