package handlers

import (
	"net/http"
	"strings"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	portssvc "github.com/SscSPs/counterparty_portal/internal/core/ports/services"
	"github.com/SscSPs/counterparty_portal/internal/dto"
	"github.com/gin-gonic/gin"
)

type ratingHandler struct {
	ratingService portssvc.RatingSvcFacade
}

func registerRatingRoutes(rg, counterparty *gin.RouterGroup, ratingService portssvc.RatingSvcFacade) {
	h := &ratingHandler{ratingService: ratingService}

	counterparty.POST("/ratings", h.addRating)
	counterparty.GET("/ratings", h.listRatings)

	ratings := rg.Group("/ratings/:ratingID")
	{
		ratings.GET("", h.getRating)
		ratings.PATCH("", h.updateRating)
		ratings.DELETE("", h.deactivateRating)
	}
}

// addRating godoc
// @Summary Record a credit rating
// @Description Multipart form; the supporting file is optional.
// @Tags ratings
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Counterparty ID"
// @Param raterID formData string true "Rater"
// @Param outlookID formData string true "Outlook"
// @Param rating formData string true "Rating symbol"
// @Param scope formData string true "national or international"
// @Param ratingDate formData string true "YYYY-MM-DD"
// @Param file formData file false "Supporting file"
// @Success 201 {object} domain.Rating
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /counterparties/{id}/ratings [post]
func (h *ratingHandler) addRating(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if strings.HasPrefix(c.ContentType(), "multipart/") && !parseMultipart(c, domain.StandardUploadLimit, "add rating") {
		return
	}

	var req dto.CreateRatingRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err, "add rating")
		return
	}

	var file *dto.FileUpload
	if fh := multipartFile(c, "file"); fh != nil {
		upload, closer, err := openUpload(fh)
		if err != nil {
			respondError(c, err, "add rating")
			return
		}
		defer closer.Close()
		file = &upload
	}

	rating, err := h.ratingService.AddRating(c.Request.Context(), c.Param("id"), req, file, actor)
	if err != nil {
		respondError(c, err, "add rating")
		return
	}
	c.JSON(http.StatusCreated, rating)
}

// listRatings godoc
// @Summary List ratings of a counterparty
// @Tags ratings
// @Produce json
// @Param id path string true "Counterparty ID"
// @Param includeInactive query bool false "Include deleted ratings"
// @Success 200 {array} domain.Rating
// @Security BearerAuth
// @Router /counterparties/{id}/ratings [get]
func (h *ratingHandler) listRatings(c *gin.Context) {
	vis, ok := bindList(c)
	if !ok {
		return
	}
	ratings, err := h.ratingService.ListRatings(c.Request.Context(), c.Param("id"), vis)
	if err != nil {
		respondError(c, err, "list ratings")
		return
	}
	c.JSON(http.StatusOK, dto.ToListRatingResponse(ratings))
}

// getRating godoc
// @Summary Get a rating
// @Tags ratings
// @Produce json
// @Param ratingID path string true "Rating ID"
// @Success 200 {object} domain.Rating
// @Security BearerAuth
// @Router /ratings/{ratingID} [get]
func (h *ratingHandler) getRating(c *gin.Context) {
	rating, err := h.ratingService.GetRating(c.Request.Context(), c.Param("ratingID"))
	if err != nil {
		respondError(c, err, "retrieve rating")
		return
	}
	c.JSON(http.StatusOK, rating)
}

// updateRating godoc
// @Summary Update a rating
// @Tags ratings
// @Accept json
// @Produce json
// @Param ratingID path string true "Rating ID"
// @Param rating body dto.UpdateRatingRequest true "Fields to change"
// @Success 200 {object} domain.Rating
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /ratings/{ratingID} [patch]
func (h *ratingHandler) updateRating(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UpdateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "update rating")
		return
	}
	rating, err := h.ratingService.UpdateRating(c.Request.Context(), c.Param("ratingID"), req, actor)
	if err != nil {
		respondError(c, err, "update rating")
		return
	}
	c.JSON(http.StatusOK, rating)
}

// deactivateRating godoc
// @Summary Delete a rating
// @Tags ratings
// @Param ratingID path string true "Rating ID"
// @Success 204
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /ratings/{ratingID} [delete]
func (h *ratingHandler) deactivateRating(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.ratingService.DeactivateRating(c.Request.Context(), c.Param("ratingID"), actor); err != nil {
		respondError(c, err, "delete rating")
		return
	}
	c.Status(http.StatusNoContent)
}
