package handlers

import (
	"net/http"

	"github.com/SscSPs/counterparty_portal/internal/core/lifecycle"
	portssvc "github.com/SscSPs/counterparty_portal/internal/core/ports/services"
	"github.com/SscSPs/counterparty_portal/internal/dto"
	"github.com/gin-gonic/gin"
)

type memberHandler struct {
	memberService portssvc.MemberSvcFacade
	clock         lifecycle.Clock
}

func registerMemberRoutes(rg, counterparty *gin.RouterGroup, memberService portssvc.MemberSvcFacade, clock lifecycle.Clock) {
	h := &memberHandler{memberService: memberService, clock: clock}

	counterparty.POST("/members", h.addMember)
	counterparty.GET("/members", h.listMembers)

	members := rg.Group("/members/:memberID")
	{
		members.GET("", h.getMember)
		members.PATCH("", h.updateMember)
		members.DELETE("", h.deactivateMember)
	}
}

// addMember godoc
// @Summary Add a member to a counterparty
// @Description Shareholders, executives, beneficial owners and directors. PEP members need a position.
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Counterparty ID"
// @Param member body dto.CreateMemberRequest true "Member details"
// @Success 201 {object} dto.MemberResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Identification number already registered for this counterparty"
// @Security BearerAuth
// @Router /counterparties/{id}/members [post]
func (h *memberHandler) addMember(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "add member")
		return
	}
	m, err := h.memberService.AddMember(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "add member")
		return
	}
	c.JSON(http.StatusCreated, dto.ToMemberResponse(m, h.clock.Now()))
}

// listMembers godoc
// @Summary List the members of a counterparty
// @Tags members
// @Produce json
// @Param id path string true "Counterparty ID"
// @Param includeInactive query bool false "Include removed members"
// @Success 200 {array} dto.MemberResponse
// @Security BearerAuth
// @Router /counterparties/{id}/members [get]
func (h *memberHandler) listMembers(c *gin.Context) {
	vis, ok := bindList(c)
	if !ok {
		return
	}
	members, err := h.memberService.ListMembers(c.Request.Context(), c.Param("id"), vis)
	if err != nil {
		respondError(c, err, "list members")
		return
	}
	c.JSON(http.StatusOK, dto.ToListMemberResponse(members, h.clock.Now()))
}

// getMember godoc
// @Summary Get a member
// @Tags members
// @Produce json
// @Param memberID path string true "Member ID"
// @Success 200 {object} dto.MemberResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /members/{memberID} [get]
func (h *memberHandler) getMember(c *gin.Context) {
	m, err := h.memberService.GetMember(c.Request.Context(), c.Param("memberID"))
	if err != nil {
		respondError(c, err, "retrieve member")
		return
	}
	c.JSON(http.StatusOK, dto.ToMemberResponse(m, h.clock.Now()))
}

// updateMember godoc
// @Summary Update a member
// @Tags members
// @Accept json
// @Produce json
// @Param memberID path string true "Member ID"
// @Param member body dto.UpdateMemberRequest true "Fields to change"
// @Success 200 {object} dto.MemberResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /members/{memberID} [patch]
func (h *memberHandler) updateMember(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "update member")
		return
	}
	m, err := h.memberService.UpdateMember(c.Request.Context(), c.Param("memberID"), req, actor)
	if err != nil {
		respondError(c, err, "update member")
		return
	}
	c.JSON(http.StatusOK, dto.ToMemberResponse(m, h.clock.Now()))
}

// deactivateMember godoc
// @Summary Remove a member
// @Tags members
// @Param memberID path string true "Member ID"
// @Success 204
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /members/{memberID} [delete]
func (h *memberHandler) deactivateMember(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.memberService.DeactivateMember(c.Request.Context(), c.Param("memberID"), actor); err != nil {
		respondError(c, err, "remove member")
		return
	}
	c.Status(http.StatusNoContent)
}
