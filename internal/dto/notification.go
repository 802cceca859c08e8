package dto

import "github.com/SscSPs/counterparty_portal/internal/core/domain"

// ListNotificationsParams defines query parameters for listing notifications.
type ListNotificationsParams struct {
	UnreadOnly bool `form:"unreadOnly"`
	Limit      int  `form:"limit,default=50" binding:"min=1,max=200"`
}

// ListNotificationsResponse wraps a recipient's notifications.
type ListNotificationsResponse struct {
	Notifications []domain.Notification `json:"notifications"`
	UnreadCount   int                   `json:"unreadCount"`
}

// UpdateNotificationSettingsRequest defines the updatable preferences.
type UpdateNotificationSettingsRequest struct {
	NotifyDueDiligence   *bool `json:"notifyDueDiligence"`
	NotifyDocumentExpiry *bool `json:"notifyDocumentExpiry"`
	NotifyMatches        *bool `json:"notifyMatches"`
	NotifyApprovals      *bool `json:"notifyApprovals"`
	DDWarningDays        *int  `json:"ddWarningDays" binding:"omitempty,min=1,max=365"`
}

// MarkAllReadResponse reports how many notifications changed.
type MarkAllReadResponse struct {
	Updated int `json:"updated"`
}
