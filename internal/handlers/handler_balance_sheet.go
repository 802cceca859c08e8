package handlers

import (
	"net/http"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	portssvc "github.com/SscSPs/counterparty_portal/internal/core/ports/services"
	"github.com/SscSPs/counterparty_portal/internal/dto"
	"github.com/gin-gonic/gin"
)

type balanceSheetHandler struct {
	balanceSheetService portssvc.BalanceSheetSvcFacade
}

func registerBalanceSheetRoutes(rg, counterparty *gin.RouterGroup, balanceSheetService portssvc.BalanceSheetSvcFacade) {
	h := &balanceSheetHandler{balanceSheetService: balanceSheetService}

	counterparty.POST("/balance-sheets", h.createBalanceSheet)
	counterparty.GET("/balance-sheets", h.listBalanceSheets)

	sheets := rg.Group("/balance-sheets/:sheetID")
	{
		sheets.GET("", h.getBalanceSheet)
		sheets.PATCH("", h.updateBalanceSheet)
		sheets.DELETE("", h.deactivateBalanceSheet)
		sheets.GET("/summary", h.summarize)
		sheets.GET("/totals", h.categoryTotal)
		sheets.POST("/convert", h.convertToLocal)
		sheets.GET("/items", h.listItems)
		sheets.POST("/items", h.addItem)
	}

	items := rg.Group("/balance-sheet-items/:itemID")
	{
		items.GET("", h.getItem)
		items.PATCH("", h.updateItem)
		items.DELETE("", h.deactivateItem)
	}
}

// createBalanceSheet godoc
// @Summary Create a yearly balance sheet
// @Description A sheet either carries reference (USD) amounts only, or a local currency bound to an exchange rate of that currency.
// @Tags balance sheets
// @Accept json
// @Produce json
// @Param id path string true "Counterparty ID"
// @Param sheet body dto.CreateBalanceSheetRequest true "Balance sheet"
// @Success 201 {object} dto.BalanceSheetResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "A sheet already exists for that year"
// @Security BearerAuth
// @Router /counterparties/{id}/balance-sheets [post]
func (h *balanceSheetHandler) createBalanceSheet(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreateBalanceSheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "create balance sheet")
		return
	}
	sheet, err := h.balanceSheetService.CreateBalanceSheet(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "create balance sheet")
		return
	}
	c.JSON(http.StatusCreated, dto.ToBalanceSheetResponse(sheet))
}

// listBalanceSheets godoc
// @Summary List the balance sheets of a counterparty
// @Tags balance sheets
// @Produce json
// @Param id path string true "Counterparty ID"
// @Param includeInactive query bool false "Include deleted sheets"
// @Success 200 {array} dto.BalanceSheetResponse
// @Security BearerAuth
// @Router /counterparties/{id}/balance-sheets [get]
func (h *balanceSheetHandler) listBalanceSheets(c *gin.Context) {
	vis, ok := bindList(c)
	if !ok {
		return
	}
	sheets, err := h.balanceSheetService.ListBalanceSheets(c.Request.Context(), c.Param("id"), vis)
	if err != nil {
		respondError(c, err, "list balance sheets")
		return
	}
	c.JSON(http.StatusOK, dto.ToListBalanceSheetResponse(sheets))
}

// getBalanceSheet godoc
// @Summary Get a balance sheet
// @Tags balance sheets
// @Produce json
// @Param sheetID path string true "Balance sheet ID"
// @Success 200 {object} dto.BalanceSheetResponse
// @Security BearerAuth
// @Router /balance-sheets/{sheetID} [get]
func (h *balanceSheetHandler) getBalanceSheet(c *gin.Context) {
	sheet, err := h.balanceSheetService.GetBalanceSheet(c.Request.Context(), c.Param("sheetID"))
	if err != nil {
		respondError(c, err, "retrieve balance sheet")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(sheet))
}

// updateBalanceSheet godoc
// @Summary Change the currency binding of a sheet
// @Tags balance sheets
// @Accept json
// @Produce json
// @Param sheetID path string true "Balance sheet ID"
// @Param sheet body dto.UpdateBalanceSheetRequest true "Fields to change"
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /balance-sheets/{sheetID} [patch]
func (h *balanceSheetHandler) updateBalanceSheet(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UpdateBalanceSheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "update balance sheet")
		return
	}
	sheet, err := h.balanceSheetService.UpdateBalanceSheet(c.Request.Context(), c.Param("sheetID"), req, actor)
	if err != nil {
		respondError(c, err, "update balance sheet")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(sheet))
}

// deactivateBalanceSheet godoc
// @Summary Delete a balance sheet
// @Tags balance sheets
// @Param sheetID path string true "Balance sheet ID"
// @Success 204
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /balance-sheets/{sheetID} [delete]
func (h *balanceSheetHandler) deactivateBalanceSheet(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.balanceSheetService.DeactivateBalanceSheet(c.Request.Context(), c.Param("sheetID"), actor); err != nil {
		respondError(c, err, "delete balance sheet")
		return
	}
	c.Status(http.StatusNoContent)
}

// summarize godoc
// @Summary Totals per category and the balance check
// @Tags balance sheets
// @Produce json
// @Param sheetID path string true "Balance sheet ID"
// @Success 200 {object} dto.BalanceSheetSummaryResponse
// @Security BearerAuth
// @Router /balance-sheets/{sheetID}/summary [get]
func (h *balanceSheetHandler) summarize(c *gin.Context) {
	summary, err := h.balanceSheetService.Summarize(c.Request.Context(), c.Param("sheetID"))
	if err != nil {
		respondError(c, err, "summarize balance sheet")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceSheetSummaryResponse(summary))
}

// categoryTotal godoc
// @Summary USD total of one category
// @Tags balance sheets
// @Produce json
// @Param sheetID path string true "Balance sheet ID"
// @Param category query string true "assets, liabilities or equity"
// @Success 200 {object} dto.CategoryTotalResponse
// @Security BearerAuth
// @Router /balance-sheets/{sheetID}/totals [get]
func (h *balanceSheetHandler) categoryTotal(c *gin.Context) {
	var params dto.CategoryTotalParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "total category")
		return
	}
	total, err := h.balanceSheetService.TotalForCategory(c.Request.Context(), c.Param("sheetID"), domain.BalanceSheetCategory(params.Category))
	if err != nil {
		respondError(c, err, "total category")
		return
	}
	c.JSON(http.StatusOK, dto.CategoryTotalResponse{
		Category: params.Category,
		TotalRef: dto.NewAmountResponse(total, domain.ReferenceCurrency),
	})
}

// convertToLocal godoc
// @Summary Convert a USD amount with the sheet's rate
// @Tags balance sheets
// @Accept json
// @Produce json
// @Param sheetID path string true "Balance sheet ID"
// @Param body body dto.ConvertAmountRequest true "USD amount"
// @Success 200 {object} dto.ConversionResponse
// @Failure 422 {object} dto.ErrorResponse "The sheet carries reference amounts only"
// @Security BearerAuth
// @Router /balance-sheets/{sheetID}/convert [post]
func (h *balanceSheetHandler) convertToLocal(c *gin.Context) {
	var req dto.ConvertAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "convert amount")
		return
	}
	local, rate, err := h.balanceSheetService.ConvertToLocal(c.Request.Context(), c.Param("sheetID"), req.AmountRef)
	if err != nil {
		respondError(c, err, "convert amount")
		return
	}
	c.JSON(http.StatusOK, dto.ConversionResponse{
		AmountRef:      dto.NewAmountResponse(req.AmountRef, domain.ReferenceCurrency),
		AmountLocal:    dto.NewAmountResponse(local, rate.CurrencyCode),
		Rate:           rate.RateToReference,
		ExchangeRateID: rate.ExchangeRateID,
	})
}

// listItems godoc
// @Summary Items of a sheet in canonical order
// @Tags balance sheets
// @Produce json
// @Param sheetID path string true "Balance sheet ID"
// @Param includeInactive query bool false "Include deleted items"
// @Success 200 {array} dto.BalanceSheetItemResponse
// @Security BearerAuth
// @Router /balance-sheets/{sheetID}/items [get]
func (h *balanceSheetHandler) listItems(c *gin.Context) {
	vis, ok := bindList(c)
	if !ok {
		return
	}
	items, err := h.balanceSheetService.ListItems(c.Request.Context(), c.Param("sheetID"), vis)
	if err != nil {
		respondError(c, err, "list items")
		return
	}
	c.JSON(http.StatusOK, dto.ToListBalanceSheetItemResponse(items))
}

// addItem godoc
// @Summary Add a line to a sheet
// @Tags balance sheets
// @Accept json
// @Produce json
// @Param sheetID path string true "Balance sheet ID"
// @Param item body dto.CreateBalanceSheetItemRequest true "Item"
// @Success 201 {object} dto.BalanceSheetItemResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /balance-sheets/{sheetID}/items [post]
func (h *balanceSheetHandler) addItem(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreateBalanceSheetItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "add item")
		return
	}
	item, err := h.balanceSheetService.AddItem(c.Request.Context(), c.Param("sheetID"), req, actor)
	if err != nil {
		respondError(c, err, "add item")
		return
	}
	c.JSON(http.StatusCreated, dto.ToBalanceSheetItemResponse(item))
}

// getItem godoc
// @Summary Get a balance sheet item
// @Tags balance sheets
// @Produce json
// @Param itemID path string true "Item ID"
// @Success 200 {object} dto.BalanceSheetItemResponse
// @Security BearerAuth
// @Router /balance-sheet-items/{itemID} [get]
func (h *balanceSheetHandler) getItem(c *gin.Context) {
	item, err := h.balanceSheetService.GetItem(c.Request.Context(), c.Param("itemID"))
	if err != nil {
		respondError(c, err, "retrieve item")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceSheetItemResponse(item))
}

// updateItem godoc
// @Summary Update a balance sheet item
// @Tags balance sheets
// @Accept json
// @Produce json
// @Param itemID path string true "Item ID"
// @Param item body dto.UpdateBalanceSheetItemRequest true "Fields to change"
// @Success 200 {object} dto.BalanceSheetItemResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /balance-sheet-items/{itemID} [patch]
func (h *balanceSheetHandler) updateItem(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UpdateBalanceSheetItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "update item")
		return
	}
	item, err := h.balanceSheetService.UpdateItem(c.Request.Context(), c.Param("itemID"), req, actor)
	if err != nil {
		respondError(c, err, "update item")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceSheetItemResponse(item))
}

// deactivateItem godoc
// @Summary Delete a balance sheet item
// @Tags balance sheets
// @Param itemID path string true "Item ID"
// @Success 204
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /balance-sheet-items/{itemID} [delete]
func (h *balanceSheetHandler) deactivateItem(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.balanceSheetService.DeactivateItem(c.Request.Context(), c.Param("itemID"), actor); err != nil {
		respondError(c, err, "delete item")
		return
	}
	c.Status(http.StatusNoContent)
}
