package handlers

import (
	"net/http"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	portssvc "github.com/SscSPs/counterparty_portal/internal/core/ports/services"
	"github.com/SscSPs/counterparty_portal/internal/dto"
	"github.com/gin-gonic/gin"
)

type notificationHandler struct {
	notificationService portssvc.NotificationSvcFacade
}

func registerNotificationRoutes(rg *gin.RouterGroup, notificationService portssvc.NotificationSvcFacade) {
	h := &notificationHandler{notificationService: notificationService}

	n := rg.Group("/notifications")
	{
		n.GET("", h.listNotifications)
		n.GET("/unread-count", h.countUnread)
		n.POST("/read-all", h.markAllRead)
		n.GET("/settings", h.getSettings)
		n.PUT("/settings", h.updateSettings)
		n.POST("/:notificationID/read", h.markRead)
	}
}

// listNotifications godoc
// @Summary List the caller's notifications
// @Tags notifications
// @Produce json
// @Param unreadOnly query bool false "Only unread notifications"
// @Param limit query int false "Maximum number of notifications" default(50)
// @Success 200 {object} dto.ListNotificationsResponse
// @Security BearerAuth
// @Router /notifications [get]
func (h *notificationHandler) listNotifications(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var params dto.ListNotificationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "list notifications")
		return
	}
	ctx := c.Request.Context()
	notifications, err := h.notificationService.ListNotifications(ctx, actor, params.UnreadOnly, params.Limit)
	if err != nil {
		respondError(c, err, "list notifications")
		return
	}
	unread, err := h.notificationService.CountUnread(ctx, actor)
	if err != nil {
		respondError(c, err, "list notifications")
		return
	}
	res := dto.ListNotificationsResponse{Notifications: notifications, UnreadCount: unread}
	if res.Notifications == nil {
		res.Notifications = []domain.Notification{}
	}
	c.JSON(http.StatusOK, res)
}

// countUnread godoc
// @Summary Number of unread notifications
// @Tags notifications
// @Produce json
// @Success 200 {object} map[string]int
// @Security BearerAuth
// @Router /notifications/unread-count [get]
func (h *notificationHandler) countUnread(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	unread, err := h.notificationService.CountUnread(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "count notifications")
		return
	}
	c.JSON(http.StatusOK, gin.H{"unreadCount": unread})
}

// markRead godoc
// @Summary Mark one notification read
// @Tags notifications
// @Produce json
// @Param notificationID path string true "Notification ID"
// @Success 200 {object} domain.Notification
// @Failure 403 {object} dto.ErrorResponse "Not the recipient"
// @Security BearerAuth
// @Router /notifications/{notificationID}/read [post]
func (h *notificationHandler) markRead(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	n, err := h.notificationService.MarkRead(c.Request.Context(), actor, c.Param("notificationID"))
	if err != nil {
		respondError(c, err, "mark notification read")
		return
	}
	c.JSON(http.StatusOK, n)
}

// markAllRead godoc
// @Summary Mark every notification of the caller read
// @Tags notifications
// @Produce json
// @Success 200 {object} dto.MarkAllReadResponse
// @Security BearerAuth
// @Router /notifications/read-all [post]
func (h *notificationHandler) markAllRead(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	updated, err := h.notificationService.MarkAllRead(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "mark notifications read")
		return
	}
	c.JSON(http.StatusOK, dto.MarkAllReadResponse{Updated: updated})
}

// getSettings godoc
// @Summary Notification preferences of the caller
// @Tags notifications
// @Produce json
// @Success 200 {object} domain.NotificationSettings
// @Security BearerAuth
// @Router /notifications/settings [get]
func (h *notificationHandler) getSettings(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	settings, err := h.notificationService.GetSettings(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "retrieve notification settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// updateSettings godoc
// @Summary Change notification preferences
// @Tags notifications
// @Accept json
// @Produce json
// @Param settings body dto.UpdateNotificationSettingsRequest true "Preferences to change"
// @Success 200 {object} domain.NotificationSettings
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /notifications/settings [put]
func (h *notificationHandler) updateSettings(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UpdateNotificationSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "update notification settings")
		return
	}
	settings, err := h.notificationService.UpdateSettings(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "update notification settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}
