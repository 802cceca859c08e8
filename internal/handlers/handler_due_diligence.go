package handlers

import (
	"net/http"

	"github.com/SscSPs/counterparty_portal/internal/apperrors"
	portssvc "github.com/SscSPs/counterparty_portal/internal/core/ports/services"
	"github.com/SscSPs/counterparty_portal/internal/dto"
	"github.com/gin-gonic/gin"
)

type dueDiligenceHandler struct {
	dueDiligenceService portssvc.DueDiligenceSvcFacade
}

func registerDueDiligenceRoutes(rg *gin.RouterGroup, dueDiligenceService portssvc.DueDiligenceSvcFacade) {
	h := &dueDiligenceHandler{dueDiligenceService: dueDiligenceService}

	dd := rg.Group("/due-diligence")
	{
		dd.POST("", h.requestDueDiligence)
		dd.GET("/:ddID", h.getDueDiligence)
		dd.POST("/:ddID/approve", h.approve)
		dd.POST("/:ddID/reject", h.reject)
	}
	rg.GET("/members/:memberID/due-diligence", h.listByMember)
	rg.POST("/webhooks/due-diligence", h.recordResult)
}

// requestDueDiligence godoc
// @Summary Open a screening for a member
// @Tags due diligence
// @Accept json
// @Produce json
// @Param request body dto.RequestDueDiligenceRequest true "Member to screen"
// @Success 201 {object} domain.DueDiligence
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /due-diligence [post]
func (h *dueDiligenceHandler) requestDueDiligence(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.RequestDueDiligenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request due diligence")
		return
	}
	dd, err := h.dueDiligenceService.RequestDueDiligence(c.Request.Context(), req.MemberID, actor)
	if err != nil {
		respondError(c, err, "request due diligence")
		return
	}
	c.JSON(http.StatusCreated, dd)
}

// getDueDiligence godoc
// @Summary Get a screening
// @Tags due diligence
// @Produce json
// @Param ddID path string true "Due diligence ID"
// @Success 200 {object} domain.DueDiligence
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /due-diligence/{ddID} [get]
func (h *dueDiligenceHandler) getDueDiligence(c *gin.Context) {
	dd, err := h.dueDiligenceService.GetDueDiligence(c.Request.Context(), c.Param("ddID"))
	if err != nil {
		respondError(c, err, "retrieve due diligence")
		return
	}
	c.JSON(http.StatusOK, dd)
}

// listByMember godoc
// @Summary Screenings of a member, newest first
// @Tags due diligence
// @Produce json
// @Param memberID path string true "Member ID"
// @Success 200 {array} domain.DueDiligence
// @Security BearerAuth
// @Router /members/{memberID}/due-diligence [get]
func (h *dueDiligenceHandler) listByMember(c *gin.Context) {
	list, err := h.dueDiligenceService.ListByMember(c.Request.Context(), c.Param("memberID"))
	if err != nil {
		respondError(c, err, "list due diligence")
		return
	}
	if list == nil {
		c.JSON(http.StatusOK, []any{})
		return
	}
	c.JSON(http.StatusOK, list)
}

// approve godoc
// @Summary Approve a completed screening
// @Description Staff only. Approval renews the counterparty's next review date.
// @Tags due diligence
// @Accept json
// @Produce json
// @Param ddID path string true "Due diligence ID"
// @Param decision body dto.DueDiligenceDecisionRequest false "Analyst comments"
// @Success 200 {object} domain.DueDiligence
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /due-diligence/{ddID}/approve [post]
func (h *dueDiligenceHandler) approve(c *gin.Context) {
	h.decide(c, true)
}

// reject godoc
// @Summary Reject a completed screening
// @Tags due diligence
// @Accept json
// @Produce json
// @Param ddID path string true "Due diligence ID"
// @Param decision body dto.DueDiligenceDecisionRequest false "Analyst comments"
// @Success 200 {object} domain.DueDiligence
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /due-diligence/{ddID}/reject [post]
func (h *dueDiligenceHandler) reject(c *gin.Context) {
	h.decide(c, false)
}

func (h *dueDiligenceHandler) decide(c *gin.Context, approved bool) {
	action := "reject due diligence"
	decide := h.dueDiligenceService.Reject
	if approved {
		action = "approve due diligence"
		decide = h.dueDiligenceService.Approve
	}

	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.DueDiligenceDecisionRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err, action)
			return
		}
	}
	dd, err := decide(c.Request.Context(), c.Param("ddID"), req.Comments, actor)
	if err != nil {
		respondError(c, err, action)
		return
	}
	c.JSON(http.StatusOK, dd)
}

// recordResult godoc
// @Summary Screening provider callback
// @Description Applies a provider result. Only staff (service) accounts may post results.
// @Tags due diligence
// @Accept json
// @Produce json
// @Param result body dto.DueDiligenceResultRequest true "Screening result"
// @Success 200 {object} domain.DueDiligence
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /webhooks/due-diligence [post]
func (h *dueDiligenceHandler) recordResult(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if !actor.IsStaff {
		respondError(c, apperrors.ErrPermissionDenied, "record due diligence result")
		return
	}
	var req dto.DueDiligenceResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "record due diligence result")
		return
	}
	dd, err := h.dueDiligenceService.RecordResult(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "record due diligence result")
		return
	}
	c.JSON(http.StatusOK, dd)
}
