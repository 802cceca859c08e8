package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/counterparty_portal/internal/core/lifecycle"
	portssvc "github.com/SscSPs/counterparty_portal/internal/core/ports/services"
	"github.com/SscSPs/counterparty_portal/internal/dto"
	"github.com/SscSPs/counterparty_portal/internal/middleware"
	"github.com/gin-gonic/gin"
)

// counterpartyHandler handles HTTP requests related to counterparties.
type counterpartyHandler struct {
	counterpartyService portssvc.CounterpartySvcFacade
	clock               lifecycle.Clock
}

func newCounterpartyHandler(cs portssvc.CounterpartySvcFacade, clock lifecycle.Clock) *counterpartyHandler {
	return &counterpartyHandler{counterpartyService: cs, clock: clock}
}

// registerCounterpartyRoutes registers the counterparty routes and returns the
// /counterparties/:id group that nested resources hang from.
func registerCounterpartyRoutes(rg *gin.RouterGroup, counterpartyService portssvc.CounterpartySvcFacade, clock lifecycle.Clock) *gin.RouterGroup {
	h := newCounterpartyHandler(counterpartyService, clock)

	counterparties := rg.Group("/counterparties")
	{
		counterparties.POST("", h.createCounterparty)
		counterparties.GET("", h.listCounterparties)
	}
	one := counterparties.Group("/:id")
	{
		one.GET("", h.getCounterparty)
		one.PATCH("", h.updateCounterparty)
		one.DELETE("", h.deactivateCounterparty)
		one.GET("/renewal", h.getRenewalStatus)
	}

	rg.GET("/renewals", h.listDueForRenewal)
	return one
}

// createCounterparty godoc
// @Summary Register a counterparty
// @Tags counterparties
// @Accept json
// @Produce json
// @Param counterparty body dto.CreateCounterpartyRequest true "Counterparty details"
// @Success 201 {object} dto.CounterpartyResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Security BearerAuth
// @Router /counterparties [post]
func (h *counterpartyHandler) createCounterparty(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreateCounterpartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "create counterparty")
		return
	}

	cp, err := h.counterpartyService.CreateCounterparty(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err, "create counterparty")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Counterparty created", slog.String("counterparty_id", cp.CounterpartyID))
	c.JSON(http.StatusCreated, dto.ToCounterpartyResponse(cp, h.clock.Now()))
}

// listCounterparties godoc
// @Summary List counterparties
// @Description Keyset paginated by company name. Pass nextToken from the previous page to continue.
// @Tags counterparties
// @Produce json
// @Param search query string false "Matches company or trading name"
// @Param typeID query string false "Counterparty type"
// @Param statusID query string false "Counterparty status"
// @Param dueWithinDays query int false "Only counterparties due for review within this many days"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListCounterpartiesResponse
// @Security BearerAuth
// @Router /counterparties [get]
func (h *counterpartyHandler) listCounterparties(c *gin.Context) {
	var params dto.ListCounterpartiesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "list counterparties")
		return
	}
	items, next, err := h.counterpartyService.ListCounterparties(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "list counterparties")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCounterpartiesResponse(items, next, h.clock.Now()))
}

// getCounterparty godoc
// @Summary Get a counterparty
// @Tags counterparties
// @Produce json
// @Param id path string true "Counterparty ID"
// @Success 200 {object} dto.CounterpartyResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /counterparties/{id} [get]
func (h *counterpartyHandler) getCounterparty(c *gin.Context) {
	cp, err := h.counterpartyService.GetCounterparty(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "retrieve counterparty")
		return
	}
	c.JSON(http.StatusOK, dto.ToCounterpartyResponse(cp, h.clock.Now()))
}

// updateCounterparty godoc
// @Summary Update a counterparty
// @Description Only the creator or staff may update.
// @Tags counterparties
// @Accept json
// @Produce json
// @Param id path string true "Counterparty ID"
// @Param counterparty body dto.UpdateCounterpartyRequest true "Fields to change"
// @Success 200 {object} dto.CounterpartyResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /counterparties/{id} [patch]
func (h *counterpartyHandler) updateCounterparty(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UpdateCounterpartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "update counterparty")
		return
	}
	cp, err := h.counterpartyService.UpdateCounterparty(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "update counterparty")
		return
	}
	c.JSON(http.StatusOK, dto.ToCounterpartyResponse(cp, h.clock.Now()))
}

// deactivateCounterparty godoc
// @Summary Deactivate a counterparty
// @Description Moves the counterparty to the inactive status.
// @Tags counterparties
// @Param id path string true "Counterparty ID"
// @Success 204
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /counterparties/{id} [delete]
func (h *counterpartyHandler) deactivateCounterparty(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.counterpartyService.DeactivateCounterparty(c.Request.Context(), c.Param("id"), actor); err != nil {
		respondError(c, err, "deactivate counterparty")
		return
	}
	c.Status(http.StatusNoContent)
}

// getRenewalStatus godoc
// @Summary Due-diligence renewal status of a counterparty
// @Tags counterparties
// @Produce json
// @Param id path string true "Counterparty ID"
// @Success 200 {object} dto.RenewalStatusResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /counterparties/{id}/renewal [get]
func (h *counterpartyHandler) getRenewalStatus(c *gin.Context) {
	status, err := h.counterpartyService.GetRenewalStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "retrieve renewal status")
		return
	}
	c.JSON(http.StatusOK, dto.ToRenewalStatusResponse(*status))
}

// listDueForRenewal godoc
// @Summary Counterparties due for due-diligence renewal
// @Description Active counterparties whose review falls within withinDays, overdue ones included.
// @Tags counterparties
// @Produce json
// @Param withinDays query int false "Window in days" default(30)
// @Success 200 {array} dto.RenewalStatusResponse
// @Security BearerAuth
// @Router /renewals [get]
func (h *counterpartyHandler) listDueForRenewal(c *gin.Context) {
	var params dto.RenewalListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "list renewals")
		return
	}
	due, err := h.counterpartyService.ListDueForRenewal(c.Request.Context(), params.WithinDays)
	if err != nil {
		respondError(c, err, "list renewals")
		return
	}
	res := make([]dto.RenewalStatusResponse, len(due))
	for i, r := range due {
		res[i] = dto.ToRenewalStatusResponse(r)
	}
	c.JSON(http.StatusOK, res)
}
