package di

import (
	"fmt"

	domrepo "OilPulse/internal/domain/repository"
	domsvc "OilPulse/internal/domain/service"
	"OilPulse/internal/forecast"
	"OilPulse/internal/handler/api"
	internalrepo "OilPulse/internal/repository"
	"OilPulse/internal/service/alphavantage"
	"OilPulse/internal/service/cache"
	"OilPulse/internal/service/newsapi"
	"OilPulse/internal/service/sentiment"
	"OilPulse/internal/services/predictor"
	"OilPulse/internal/usecase"
	"OilPulse/pkg/config"
	xhttp "OilPulse/pkg/http"
	applogger "OilPulse/pkg/logger"
	"OilPulse/pkg/metrics"
	"OilPulse/pkg/server"
	"OilPulse/pkg/util"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() domrepo.Metrics {
	return metrics.New()
}

// ProvideStore creates the CSV-backed table store.
func ProvideStore(cfg *config.Config, l *applogger.Logger) (*internalrepo.CSVStore, error) {
	store, err := internalrepo.NewCSVStore(cfg.Data.Dir, l)
	if err != nil {
		return nil, fmt.Errorf("csv store: %w", err)
	}
	return store, nil
}

// ProvideForecastStore exposes the CSV store under its write interface.
func ProvideForecastStore(store *internalrepo.CSVStore) domrepo.ForecastStore {
	return store
}

// ProvideTableReader exposes the read side, wrapped in a byte cache when
// caching is enabled.
func ProvideTableReader(cfg *config.Config, store *internalrepo.CSVStore, l *applogger.Logger) domrepo.TableReader {
	if !cfg.Cache.Enabled {
		return store
	}
	var c cache.BytesCache
	switch cfg.Cache.Backend {
	case "redis":
		c = cache.NewRedis(cache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		})
	default:
		c = cache.NewMemory()
	}
	return internalrepo.NewCachedTableReader(store, c, cfg.Cache.TTL, l)
}

// ProvideGateway creates the serving-side query gateway.
func ProvideGateway(reader domrepo.TableReader, m domrepo.Metrics, l *applogger.Logger) *usecase.QueryGateway {
	return usecase.NewQueryGateway(reader, m, l)
}

// ProvideForecastHandler registers the serving routes.
func ProvideForecastHandler(l *applogger.Logger, gw *usecase.QueryGateway) xhttp.Handler {
	return api.NewForecastHandler(l, gw)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, handler xhttp.Handler, l *applogger.Logger) *server.App {
	return server.New(cfg, handler, l)
}

// ProvideMarketSource creates the Alpha Vantage price client.
func ProvideMarketSource(cfg *config.Config, l *applogger.Logger) domsvc.MarketDataSource {
	return alphavantage.New(alphavantage.Options{
		BaseURL:       cfg.Market.BaseURL,
		APIKey:        cfg.Market.APIKey,
		Timeout:       cfg.Market.Timeout,
		MaxRetries:    cfg.Market.MaxRetries,
		RetryInterval: cfg.Market.RetryInterval,
	}, l)
}

// ProvideNewsSource creates the NewsAPI article client.
func ProvideNewsSource(cfg *config.Config, l *applogger.Logger) domsvc.NewsSource {
	return newsapi.New(newsapi.Options{
		BaseURL:       cfg.News.BaseURL,
		APIKey:        cfg.News.APIKey,
		Timeout:       cfg.News.Timeout,
		MaxRetries:    cfg.News.MaxRetries,
		RetryInterval: cfg.News.RetryInterval,
	}, l)
}

// ProvideScorer creates the lexicon sentiment scorer.
func ProvideScorer() domsvc.SentimentScorer {
	return sentiment.NewScorer()
}

// ProvideEnsemble creates the two-stage forecaster.
func ProvideEnsemble(cfg *config.Config, l *applogger.Logger, m domrepo.Metrics) *forecast.Ensemble {
	factory := func() domsvc.SequencePredictor {
		return predictor.NewLinear(cfg.Pipeline.Epochs, cfg.Pipeline.LearningRate)
	}
	return forecast.New(forecast.Config{
		WindowLength:   cfg.Pipeline.WindowLength,
		TrainSplit:     cfg.Pipeline.TrainSplit,
		EnsembleWeight: cfg.Pipeline.EnsembleWeight,
		UseSentiment:   cfg.Pipeline.UseSentiment,
	}, factory, l, m)
}

// ProvidePipelineRunner assembles the batch pipeline.
func ProvidePipelineRunner(
	cfg *config.Config,
	market domsvc.MarketDataSource,
	news domsvc.NewsSource,
	scorer domsvc.SentimentScorer,
	ens *forecast.Ensemble,
	store domrepo.ForecastStore,
	m domrepo.Metrics,
	l *applogger.Logger,
) (*usecase.PipelineRunner, error) {
	start, ok := util.ParseDate(cfg.Market.StartDate)
	if !ok {
		return nil, fmt.Errorf("bad market.start_date: %q", cfg.Market.StartDate)
	}
	end, ok := util.ParseDate(cfg.Market.EndDate)
	if !ok {
		return nil, fmt.Errorf("bad market.end_date: %q", cfg.Market.EndDate)
	}
	return usecase.NewPipelineRunner(market, news, scorer, ens, store, m, l, usecase.PipelineParams{
		Symbol:       cfg.Market.Symbol,
		Query:        cfg.News.Query,
		Start:        start,
		End:          end,
		UseSentiment: cfg.Pipeline.UseSentiment,
	}), nil
}
