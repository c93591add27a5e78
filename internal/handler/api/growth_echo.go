package api

import (
	"errors"
	"net/http"
	"time"

	models "github.com/PaulReadCFA/impliedgrowth/internal/domain/models"
	"github.com/PaulReadCFA/impliedgrowth/internal/renderer"
	calcmetrics "github.com/PaulReadCFA/impliedgrowth/internal/service/metrics"
	"github.com/PaulReadCFA/impliedgrowth/internal/services/valuation"
	"github.com/PaulReadCFA/impliedgrowth/internal/store"
	"github.com/PaulReadCFA/impliedgrowth/internal/usecase"
	xhttp "github.com/PaulReadCFA/impliedgrowth/pkg/http"
	xlogger "github.com/PaulReadCFA/impliedgrowth/pkg/logger"

	"github.com/labstack/echo/v4"
)

// GrowthEchoHandler implements Echo-based HTTP handlers for the calculator.
type GrowthEchoHandler struct {
	logger *xlogger.Logger
	calc   *usecase.GrowthCalculator
	store  *store.Store
	ws     *WSSession
}

func NewGrowthEchoHandler(logger *xlogger.Logger, calc *usecase.GrowthCalculator, st *store.Store, ws *WSSession) *GrowthEchoHandler {
	calcmetrics.Register()
	return &GrowthEchoHandler{logger: logger, calc: calc, store: st, ws: ws}
}

func (h *GrowthEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/growth", h.Growth)
	g.POST("/growth", h.Growth)
	g.GET("/table", h.Table)
	g.GET("/summary", h.Summary)
	g.GET("/equation", h.Equation)
	g.GET("/latest", h.Latest)

	if h.ws != nil {
		e.GET("/ws/calc", h.ws.Serve)
	}
	e.GET("/healthz", h.Health)
}

// readInputs binds and validates the request, including the variant-specific
// cross-check that the direct-D1 model actually received an expected dividend.
func (h *GrowthEchoHandler) readInputs(c echo.Context) (models.ModelInputs, interface{}) {
	req := &models.GrowthRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return models.ModelInputs{}, verr
	}
	if h.calc.Variant() == models.VariantDirectD1 && req.ExpectedDividend == 0 {
		return models.ModelInputs{}, []xhttp.ValidationError{{
			Code:    "ERR_REQUIRED",
			Field:   "expected_dividend",
			Message: "expected_dividend is required for the direct-D1 model",
		}}
	}
	return req.Inputs(), nil
}

func (h *GrowthEchoHandler) calculate(c echo.Context, endpoint string) (*models.GrowthMetrics, error) {
	start := time.Now()
	defer func() {
		calcmetrics.CalcLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	in, verr := h.readInputs(c)
	if verr != nil {
		calcmetrics.CalcErrors.WithLabelValues(endpoint).Inc()
		return nil, xhttp.BadRequestResponse(c, verr)
	}

	m, err := h.calc.Calculate(c.Request().Context(), in)
	if err != nil {
		calcmetrics.CalcErrors.WithLabelValues(endpoint).Inc()
		if errors.Is(err, usecase.ErrFinancialLogic) {
			calcmetrics.InvalidResults.WithLabelValues(string(h.calc.Variant())).Inc()
			return nil, xhttp.AppErrorResponse(c, xhttp.UnprocessableError("ERR_FINANCIAL_LOGIC", err.Error()))
		}
		if errors.Is(err, valuation.ErrDegenerate) {
			return nil, xhttp.AppErrorResponse(c, xhttp.UnprocessableError("ERR_COMPUTATION", err.Error()))
		}
		h.logger.Error("calculate usecase error", xlogger.Error(err))
		return nil, xhttp.AppErrorResponse(c, err)
	}
	return m, nil
}

// Growth returns the complete metrics: solved growth plus the projected
// cash-flow schedule. This is what the chart consumes.
func (h *GrowthEchoHandler) Growth(c echo.Context) error {
	m, done := h.calculate(c, "growth")
	if m == nil {
		return done
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "private, max-age=15")
	return xhttp.SuccessResponse(c, m)
}

// Table returns the accessible data-table rendering of the schedule.
func (h *GrowthEchoHandler) Table(c echo.Context) error {
	m, done := h.calculate(c, "table")
	if m == nil {
		return done
	}
	t := renderer.RenderTable(m)
	return xhttp.ListResponse(c, t, int64(len(t.Rows)))
}

// Summary returns the results-panel rendering.
func (h *GrowthEchoHandler) Summary(c echo.Context) error {
	m, done := h.calculate(c, "summary")
	if m == nil {
		return done
	}
	return xhttp.SuccessResponse(c, renderer.RenderSummary(m))
}

// Equation returns the solved formula with substituted values.
func (h *GrowthEchoHandler) Equation(c echo.Context) error {
	m, done := h.calculate(c, "equation")
	if m == nil {
		return done
	}
	return xhttp.SuccessResponse(c, renderer.RenderEquation(m))
}

// Latest returns the most recently published snapshot, if any.
func (h *GrowthEchoHandler) Latest(c echo.Context) error {
	m := h.store.Latest()
	if m == nil {
		return xhttp.NotFoundResponse(c, "no calculation published yet")
	}
	return xhttp.SuccessResponse(c, m)
}

func (h *GrowthEchoHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

var _ xhttp.Handler = (*GrowthEchoHandler)(nil)
