package services

import (
	"context"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	"github.com/SscSPs/counterparty_portal/internal/dto"
)

// NotificationSvcFacade defines the in-app notification operations
type NotificationSvcFacade interface {
	ListNotifications(ctx context.Context, actor domain.Actor, unreadOnly bool, limit int) ([]domain.Notification, error)
	CountUnread(ctx context.Context, actor domain.Actor) (int, error)

	// MarkRead flags one notification read. Only its recipient may do so.
	MarkRead(ctx context.Context, actor domain.Actor, notificationID string) (*domain.Notification, error)
	MarkAllRead(ctx context.Context, actor domain.Actor) (int, error)

	GetSettings(ctx context.Context, actor domain.Actor) (*domain.NotificationSettings, error)
	UpdateSettings(ctx context.Context, actor domain.Actor, req dto.UpdateNotificationSettingsRequest) (*domain.NotificationSettings, error)

	// Notify delivers n unless the recipient muted its kind. It returns false when
	// nothing was stored, either muted or already sent today.
	Notify(ctx context.Context, n domain.Notification) (bool, error)
}

// ReminderSvc scans for upcoming expiries and due reviews.
type ReminderSvc interface {
	Sweep(ctx context.Context) (*domain.ReminderReport, error)
}
