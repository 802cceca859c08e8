package handlers

import (
	"context"
	"net/http"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	portssvc "github.com/SscSPs/counterparty_portal/internal/core/ports/services"
	"github.com/SscSPs/counterparty_portal/internal/dto"
	"github.com/gin-gonic/gin"
)

// registerReferenceDataRoutes exposes the admin lookups. Every kind gets the same
// three routes: GET lists (?includeInactive=true), POST creates, PUT /:refID
// updates or deactivates (isActive=false). Writes are staff-only.
func registerReferenceDataRoutes(rg *gin.RouterGroup, svc portssvc.ReferenceDataSvcFacade) {
	ref := rg.Group("/reference")

	referenceRoutes(ref.Group("/counterparty-types"), "counterparty type", svc.ListCounterpartyTypes, svc.SaveCounterpartyType)
	referenceRoutes(ref.Group("/counterparty-statuses"), "counterparty status", svc.ListCounterpartyStatuses, svc.SaveCounterpartyStatus)
	referenceRoutes(ref.Group("/document-types"), "document type", svc.ListDocumentTypes, svc.SaveDocumentType)
	referenceRoutes(ref.Group("/raters"), "rater", svc.ListRaters, svc.SaveRater)
	referenceRoutes(ref.Group("/outlooks"), "outlook", svc.ListOutlooks, svc.SaveOutlook)
}

func referenceRoutes[T any](
	g *gin.RouterGroup,
	kind string,
	list func(ctx context.Context, vis domain.Visibility) ([]T, error),
	save func(ctx context.Context, id string, req dto.ReferenceDataRequest, actor domain.Actor) (*T, error),
) {
	g.GET("", func(c *gin.Context) {
		vis, ok := bindList(c)
		if !ok {
			return
		}
		entries, err := list(c.Request.Context(), vis)
		if err != nil {
			respondError(c, err, "list "+kind+" entries")
			return
		}
		if entries == nil {
			entries = []T{}
		}
		c.JSON(http.StatusOK, entries)
	})

	write := func(status int, id func(*gin.Context) string) gin.HandlerFunc {
		return func(c *gin.Context) {
			actor, ok := requireActor(c)
			if !ok {
				return
			}
			var req dto.ReferenceDataRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				respondBindError(c, err, "save "+kind)
				return
			}
			entry, err := save(c.Request.Context(), id(c), req, actor)
			if err != nil {
				respondError(c, err, "save "+kind)
				return
			}
			c.JSON(status, entry)
		}
	}
	g.POST("", write(http.StatusCreated, func(*gin.Context) string { return "" }))
	g.PUT("/:refID", write(http.StatusOK, func(c *gin.Context) string { return c.Param("refID") }))
}
