//go:build wireinject
// +build wireinject

package di

import (
	"PortfolioLab/pkg/config"
	"PortfolioLab/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient
		ProvideLogger,
		ProvideMetrics,
		ProvideCache,
		ProvideBytesCache,

		// Engines
		ProvideValidator,
		ProvideIndicatorEngine,
		ProvideProjectionEngine,
		ProvidePerformanceSummarizer,

		// Use cases
		ProvideAggregator,

		// HTTP surface
		ProvideHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
