package api

import (
	"encoding/json"
	"net/http"
	"time"

	"PortfolioLab/internal/domain/models"
	icache "PortfolioLab/internal/service/cache"
	"PortfolioLab/internal/service/metrics"
	"PortfolioLab/internal/service/ratelimit"
	"PortfolioLab/internal/usecase"
	xhttp "PortfolioLab/pkg/http"
	xlogger "PortfolioLab/pkg/logger"

	"github.com/labstack/echo/v4"
)

// RateLimit configures the per-client token bucket applied to analysis
// endpoints.
type RateLimit struct {
	Capacity     float64
	RefillPerSec float64
}

// AnalysisEchoHandler exposes the analysis engines over HTTP. The engines
// see only caller-supplied data; validation findings and degenerate inputs
// come back as 200-payload data, never as HTTP errors.
type AnalysisEchoHandler struct {
	logger *xlogger.Logger
	agg    *usecase.AnalysisAggregator
	cache  icache.BytesCache
	rl     *ratelimit.Limiter
	limit  RateLimit
}

func NewAnalysisEchoHandler(logger *xlogger.Logger, agg *usecase.AnalysisAggregator, limit RateLimit) *AnalysisEchoHandler {
	metrics.Register()
	return &AnalysisEchoHandler{logger: logger, agg: agg, rl: ratelimit.New(), limit: limit}
}

// SetCache injects a byte cache for whole-response caching on GET endpoints.
func (h *AnalysisEchoHandler) SetCache(c icache.BytesCache) { h.cache = c }

func (h *AnalysisEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.POST("/portfolio/validate", h.Validate)
	g.POST("/series/indicators", h.Indicators)
	g.POST("/series/performance", h.Performance)
	g.GET("/projection", h.Projection)
}

func (h *AnalysisEchoHandler) Validate(c echo.Context) error {
	start := time.Now()
	defer h.observe("validate", start)

	if !h.allow(c, "validate") {
		return c.NoContent(http.StatusTooManyRequests)
	}

	req := &models.ValidateRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res := h.agg.Validate(c.Request().Context(), req.Holdings)
	return xhttp.SuccessResponse(c, res)
}

func (h *AnalysisEchoHandler) Indicators(c echo.Context) error {
	start := time.Now()
	defer h.observe("indicators", start)

	if !h.allow(c, "indicators") {
		return c.NoContent(http.StatusTooManyRequests)
	}

	req := &models.IndicatorsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res := h.agg.ApplyIndicators(c.Request().Context(), req.Series, req.Specs, req.SourceKey)
	return xhttp.SuccessResponse(c, res)
}

func (h *AnalysisEchoHandler) Performance(c echo.Context) error {
	start := time.Now()
	defer h.observe("performance", start)

	if !h.allow(c, "performance") {
		return c.NoContent(http.StatusTooManyRequests)
	}

	req := &models.PerformanceRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res := h.agg.Performance(c.Request().Context(), req.Series, req.SourceKey)
	return xhttp.SuccessResponse(c, res)
}

func (h *AnalysisEchoHandler) Projection(c echo.Context) error {
	start := time.Now()
	defer h.observe("projection", start)

	if !h.allow(c, "projection") {
		return c.NoContent(http.StatusTooManyRequests)
	}

	req := &models.ProjectionRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	// Slider-driven parameters repeat constantly; cache the rendered bytes.
	cacheKey := "projection:" + c.Request().URL.RawQuery
	if h.cache != nil {
		if b, ok, err := h.cache.GetBytes(cacheKey); err != nil {
			h.logger.Warn("projection cache_get_error", xlogger.Error(err))
		} else if ok {
			h.logger.Debug("projection cache_hit", xlogger.String("key", cacheKey))
			return c.JSONBlob(http.StatusOK, b)
		}
	}

	res := h.agg.Project(c.Request().Context(), req.CurrentValue, req.Scenario())

	if h.cache != nil {
		if b, err := json.Marshal(xhttp.APIResponse{
			Status:  http.StatusOK,
			Message: http.StatusText(http.StatusOK),
			Data:    res,
		}); err == nil {
			if err := h.cache.SetBytes(cacheKey, b, 30*time.Second); err != nil {
				h.logger.Warn("projection cache_set_error", xlogger.Error(err))
			}
		}
	}

	return xhttp.SuccessResponse(c, res)
}

func (h *AnalysisEchoHandler) allow(c echo.Context, endpoint string) bool {
	if h.limit.Capacity <= 0 {
		return true
	}
	if h.rl.Allow(c.RealIP()+":"+endpoint, h.limit.Capacity, h.limit.RefillPerSec) {
		return true
	}
	metrics.AnalysisErrors.WithLabelValues(endpoint).Inc()
	h.logger.Warn("analysis rate_limited",
		xlogger.String("endpoint", endpoint),
		xlogger.String("remote", c.RealIP()),
	)
	return false
}

func (h *AnalysisEchoHandler) observe(endpoint string, start time.Time) {
	metrics.AnalysisLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}
