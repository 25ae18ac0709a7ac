//go:build wireinject
// +build wireinject

package di

import (
	"OilPulse/internal/usecase"
	"OilPulse/pkg/config"
	"OilPulse/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up the serving application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Storage
		ProvideStore,
		ProvideTableReader,

		// Serving
		ProvideGateway,
		ProvideForecastHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}

// InitializePipeline wires up the batch pipeline runner.
func InitializePipeline(cfg *config.Config) (*usecase.PipelineRunner, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Storage
		ProvideStore,
		ProvideForecastStore,

		// Upstream clients
		ProvideMarketSource,
		ProvideNewsSource,

		// Model
		ProvideScorer,
		ProvideEnsemble,

		ProvidePipelineRunner,
	)
	return &usecase.PipelineRunner{}, nil
}
