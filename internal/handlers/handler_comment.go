package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/counterparty_portal/internal/core/ports/services"
	"github.com/SscSPs/counterparty_portal/internal/dto"
	"github.com/gin-gonic/gin"
)

type commentHandler struct {
	commentService portssvc.CommentSvcFacade
}

func registerCommentRoutes(rg, counterparty *gin.RouterGroup, commentService portssvc.CommentSvcFacade) {
	h := &commentHandler{commentService: commentService}

	counterparty.POST("/comments", h.addComment)
	counterparty.GET("/comments", h.listComments)

	comments := rg.Group("/comments/:commentID")
	{
		comments.GET("", h.getComment)
		comments.PUT("", h.updateComment)
		comments.DELETE("", h.deactivateComment)
	}
}

// addComment godoc
// @Summary Comment on a counterparty
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Counterparty ID"
// @Param comment body dto.CommentRequest true "Comment"
// @Success 201 {object} dto.CommentResponse
// @Security BearerAuth
// @Router /counterparties/{id}/comments [post]
func (h *commentHandler) addComment(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "add comment")
		return
	}
	comment, err := h.commentService.AddComment(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "add comment")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCommentResponse(comment))
}

// listComments godoc
// @Summary List comments of a counterparty
// @Description Newest first.
// @Tags comments
// @Produce json
// @Param id path string true "Counterparty ID"
// @Param includeInactive query bool false "Include deleted comments"
// @Success 200 {array} dto.CommentResponse
// @Security BearerAuth
// @Router /counterparties/{id}/comments [get]
func (h *commentHandler) listComments(c *gin.Context) {
	vis, ok := bindList(c)
	if !ok {
		return
	}
	comments, err := h.commentService.ListComments(c.Request.Context(), c.Param("id"), vis)
	if err != nil {
		respondError(c, err, "list comments")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCommentResponse(comments))
}

// getComment godoc
// @Summary Get a comment
// @Tags comments
// @Produce json
// @Param commentID path string true "Comment ID"
// @Success 200 {object} dto.CommentResponse
// @Security BearerAuth
// @Router /comments/{commentID} [get]
func (h *commentHandler) getComment(c *gin.Context) {
	comment, err := h.commentService.GetComment(c.Request.Context(), c.Param("commentID"))
	if err != nil {
		respondError(c, err, "retrieve comment")
		return
	}
	c.JSON(http.StatusOK, dto.ToCommentResponse(comment))
}

// updateComment godoc
// @Summary Edit a comment
// @Description Only the author or staff may edit.
// @Tags comments
// @Accept json
// @Produce json
// @Param commentID path string true "Comment ID"
// @Param comment body dto.CommentRequest true "New content"
// @Success 200 {object} dto.CommentResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /comments/{commentID} [put]
func (h *commentHandler) updateComment(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "update comment")
		return
	}
	comment, err := h.commentService.UpdateComment(c.Request.Context(), c.Param("commentID"), req, actor)
	if err != nil {
		respondError(c, err, "update comment")
		return
	}
	c.JSON(http.StatusOK, dto.ToCommentResponse(comment))
}

// deactivateComment godoc
// @Summary Delete a comment
// @Tags comments
// @Param commentID path string true "Comment ID"
// @Success 204
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /comments/{commentID} [delete]
func (h *commentHandler) deactivateComment(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.commentService.DeactivateComment(c.Request.Context(), c.Param("commentID"), actor); err != nil {
		respondError(c, err, "delete comment")
		return
	}
	c.Status(http.StatusNoContent)
}
