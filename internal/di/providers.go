package di

import (
	"fmt"
	"net"
	"strconv"

	"PortfolioLab/internal/domain/repository"
	domsvc "PortfolioLab/internal/domain/service"
	"PortfolioLab/internal/handler/api"
	icache "PortfolioLab/internal/service/cache"
	"PortfolioLab/internal/services/analysis"
	"PortfolioLab/internal/usecase"
	"PortfolioLab/pkg/cache"
	"PortfolioLab/pkg/config"
	xhttp "PortfolioLab/pkg/http"
	applogger "PortfolioLab/pkg/logger"
	"PortfolioLab/pkg/metrics"
	"PortfolioLab/pkg/server"
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
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideCache builds the memoization cache. With Redis enabled it layers an
// in-process cache over Redis; otherwise it falls back to memory only.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	rc := cfg.Analysis.Cache

	if !rc.Redis.Enabled {
		opts := []cache.MemoryOption{}
		if rc.MemoryMaxSize > 0 {
			opts = append(opts, cache.WithMemoryMaxSize(rc.MemoryMaxSize))
		}
		return cache.NewMemoryCache(opts...), nil
	}

	host, portStr, err := net.SplitHostPort(rc.Redis.Addr)
	if err != nil {
		return nil, fmt.Errorf("redis addr: %w", err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("redis port: %w", err)
	}

	redisCache, err := cache.NewRedisCache(
		cache.WithRedisHost(host),
		cache.WithRedisPort(port),
		cache.WithRedisPassword(rc.Redis.Password),
		cache.WithRedisDB(rc.Redis.DB),
	)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}

	lopts := []cache.LayeredOption{}
	if rc.MemoryMaxSize > 0 {
		lopts = append(lopts, cache.WithLayeredMemorySize(rc.MemoryMaxSize))
	}
	return cache.NewLayeredCache(redisCache, lopts...), nil
}

// ProvideBytesCache builds the response-byte cache used by GET endpoints.
func ProvideBytesCache(cfg *config.Config) icache.BytesCache {
	if cfg.Analysis.Cache.Redis.Enabled {
		return icache.NewRedisCache(icache.RedisConfig{
			Addr:     cfg.Analysis.Cache.Redis.Addr,
			Password: cfg.Analysis.Cache.Redis.Password,
			DB:       cfg.Analysis.Cache.Redis.DB,
		})
	}
	return icache.NewTTLCache()
}

// ProvideValidator creates the portfolio validator.
func ProvideValidator() domsvc.PortfolioValidator {
	return analysis.NewPortfolioValidator()
}

// ProvideIndicatorEngine creates the indicator engine.
func ProvideIndicatorEngine() domsvc.IndicatorEngine {
	return analysis.NewIndicatorEngine()
}

// ProvideProjectionEngine creates the projection engine.
func ProvideProjectionEngine() domsvc.ProjectionEngine {
	return analysis.NewProjectionEngine()
}

// ProvidePerformanceSummarizer creates the performance summarizer.
func ProvidePerformanceSummarizer() domsvc.PerformanceSummarizer {
	return analysis.NewPerformanceSummarizer()
}

// ProvideAggregator creates the analysis aggregator with per-engine TTLs.
func ProvideAggregator(
	validator domsvc.PortfolioValidator,
	indicators domsvc.IndicatorEngine,
	projection domsvc.ProjectionEngine,
	performance domsvc.PerformanceSummarizer,
	c cache.Service,
	m repository.Metrics,
	cfg *config.Config,
) *usecase.AnalysisAggregator {
	ttls := usecase.CacheTTLs{
		Validation:  cfg.Analysis.CacheTTL.Validation,
		Indicators:  cfg.Analysis.CacheTTL.Indicators,
		Projection:  cfg.Analysis.CacheTTL.Projection,
		Performance: cfg.Analysis.CacheTTL.Performance,
	}
	return usecase.NewAnalysisAggregator(validator, indicators, projection, performance, c, m, ttls)
}

// ProvideHandler creates the Echo handler with rate limiting and response caching.
func ProvideHandler(l *applogger.Logger, agg *usecase.AnalysisAggregator, bc icache.BytesCache, cfg *config.Config) xhttp.Handler {
	h := api.NewAnalysisEchoHandler(l, agg, api.RateLimit{
		Capacity:     cfg.Analysis.RateLimit.Capacity,
		RefillPerSec: cfg.Analysis.RateLimit.RefillPerSec,
	})
	h.SetCache(bc)
	return h
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, handler xhttp.Handler, c cache.Service) *server.App {
	app := server.New(cfg, handler)
	switch cc := c.(type) {
	case *cache.MemoryCache:
		app.AddCloser(cc)
	case *cache.LayeredCache:
		app.AddCloser(cc)
	}
	return app
}
