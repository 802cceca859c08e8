package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/SscSPs/counterparty_portal/internal/core/ports/services"
	"github.com/SscSPs/counterparty_portal/internal/dto"
	"github.com/SscSPs/counterparty_portal/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.POST("", h.createCurrency)
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:code", h.getCurrencyByCode)
		currencies.PATCH("/:code", h.updateCurrency)
	}
}

// createCurrency godoc
// @Summary Create a new currency
// @Description Adds a new currency to the system (staff operation)
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   currency body dto.CreateCurrencyRequest true "Currency details"
// @Success 201 {object} dto.CurrencyResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 403 {object} dto.ErrorResponse "Caller is not staff"
// @Failure 409 {object} dto.ErrorResponse "Currency code already exists"
// @Security BearerAuth
// @Router /currencies [post]
func (h *currencyHandler) createCurrency(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "create currency")
		return
	}

	createdCurrency, err := h.currencyService.CreateCurrency(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err, "create currency")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Currency created successfully", slog.String("currency_code", createdCurrency.CurrencyCode))
	c.JSON(http.StatusCreated, dto.ToCurrencyResponse(createdCurrency))
}

// getCurrencyByCode godoc
// @Summary Get a currency by code
// @Description Retrieves details for a specific currency by its 3-letter code
// @Tags currencies
// @Produce  json
// @Param   code path string true "Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.CurrencyResponse
// @Failure 404 {object} dto.ErrorResponse "Currency not found"
// @Security BearerAuth
// @Router /currencies/{code} [get]
func (h *currencyHandler) getCurrencyByCode(c *gin.Context) {
	currency, err := h.currencyService.GetCurrencyByCode(c.Request.Context(), strings.ToUpper(c.Param("code")))
	if err != nil {
		respondError(c, err, "retrieve currency")
		return
	}
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// listCurrencies godoc
// @Summary List currencies
// @Tags currencies
// @Produce  json
// @Param includeInactive query bool false "Include deactivated currencies"
// @Success 200 {array} dto.CurrencyResponse
// @Security BearerAuth
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	vis, ok := bindList(c)
	if !ok {
		return
	}
	currencies, err := h.currencyService.ListCurrencies(c.Request.Context(), vis)
	if err != nil {
		respondError(c, err, "list currencies")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// updateCurrency godoc
// @Summary Update a currency
// @Tags currencies
// @Accept json
// @Produce json
// @Param code path string true "Currency Code"
// @Param currency body dto.UpdateCurrencyRequest true "Fields to change"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 403 {object} dto.ErrorResponse "Caller is not staff"
// @Failure 404 {object} dto.ErrorResponse "Currency not found"
// @Security BearerAuth
// @Router /currencies/{code} [patch]
func (h *currencyHandler) updateCurrency(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UpdateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "update currency")
		return
	}
	currency, err := h.currencyService.UpdateCurrency(c.Request.Context(), strings.ToUpper(c.Param("code")), req, actor)
	if err != nil {
		respondError(c, err, "update currency")
		return
	}
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}
