package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/counterparty_portal/internal/apperrors"
	"github.com/SscSPs/counterparty_portal/internal/core/lifecycle"
	portssvc "github.com/SscSPs/counterparty_portal/internal/core/ports/services"
	"github.com/SscSPs/counterparty_portal/internal/dto"
	"github.com/SscSPs/counterparty_portal/internal/middleware"
	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
	clock               lifecycle.Clock
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade, clock lifecycle.Clock) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
		clock:               clock,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade, clock lifecycle.Clock) {
	h := newExchangeRateHandler(exchangeRateService, clock)

	exchangeRates := rg.Group("/exchange-rates")
	{
		exchangeRates.POST("", h.registerExchangeRate)
		exchangeRates.GET("/:code", h.lookupExchangeRate)
		exchangeRates.GET("/:code/history", h.listExchangeRates)
	}
}

// registerExchangeRate godoc
// @Summary Register an exchange rate
// @Description Stores the USD value of one unit of a currency from an effective date. Rates are immutable.
// @Tags exchange rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.RegisterExchangeRateRequest true "Exchange Rate details"
// @Success 201 {object} dto.ExchangeRateResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 409 {object} dto.ErrorResponse "A rate already exists for that currency and date"
// @Security BearerAuth
// @Router /exchange-rates [post]
func (h *exchangeRateHandler) registerExchangeRate(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.RegisterExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "register exchange rate")
		return
	}

	rate, err := h.exchangeRateService.RegisterRate(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err, "register exchange rate")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Exchange rate registered",
		slog.String("exchange_rate_id", rate.ExchangeRateID),
		slog.String("currency_code", rate.CurrencyCode))
	c.JSON(http.StatusCreated, dto.ToExchangeRateResponse(rate))
}

// lookupExchangeRate godoc
// @Summary Look up the rate of a currency
// @Description Returns the rate effective on asOf (default today). Without exact, the latest rate on or before asOf is used.
// @Tags exchange rates
// @Produce  json
// @Param code path string true "Currency code"
// @Param asOf query string false "Date (YYYY-MM-DD)"
// @Param exact query bool false "Require a rate effective exactly on asOf"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 404 {object} dto.ErrorResponse "No rate for that date"
// @Security BearerAuth
// @Router /exchange-rates/{code} [get]
func (h *exchangeRateHandler) lookupExchangeRate(c *gin.Context) {
	var params dto.ExchangeRateLookupParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "look up exchange rate")
		return
	}

	asOf := h.clock.Now()
	if params.AsOf != "" {
		parsed, err := time.Parse(dateLayout, params.AsOf)
		if err != nil {
			respondError(c, apperrors.NewValidationError("asOf", "must be a date in YYYY-MM-DD format"), "look up exchange rate")
			return
		}
		asOf = parsed
	}

	rate, err := h.exchangeRateService.GetRate(c.Request.Context(), c.Param("code"), asOf, params.Exact)
	if err != nil {
		respondError(c, err, "look up exchange rate")
		return
	}
	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// listExchangeRates godoc
// @Summary List the rates of a currency
// @Tags exchange rates
// @Produce json
// @Param code path string true "Currency code"
// @Param limit query int false "Maximum rows" default(50)
// @Success 200 {array} dto.ExchangeRateResponse
// @Security BearerAuth
// @Router /exchange-rates/{code}/history [get]
func (h *exchangeRateHandler) listExchangeRates(c *gin.Context) {
	var params dto.ListExchangeRatesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "list exchange rates")
		return
	}
	rates, err := h.exchangeRateService.ListRates(c.Request.Context(), c.Param("code"), params.Limit)
	if err != nil {
		respondError(c, err, "list exchange rates")
		return
	}
	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}
