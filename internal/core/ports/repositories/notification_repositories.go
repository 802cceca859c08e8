package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
)

// NotificationReader defines read operations for notifications
type NotificationReader interface {
	FindNotificationByID(ctx context.Context, notificationID string) (*domain.Notification, error)
	// ListNotifications returns a recipient's notifications newest first.
	ListNotifications(ctx context.Context, recipientID string, unreadOnly bool, limit int) ([]domain.Notification, error)
	CountUnread(ctx context.Context, recipientID string) (int, error)
	// FindSettings returns apperrors.ErrNotFound when the user never saved settings.
	FindSettings(ctx context.Context, userID string) (*domain.NotificationSettings, error)
}

// NotificationWriter defines write operations for notifications
type NotificationWriter interface {
	// SaveNotification inserts a notification. A second notification with the same
	// recipient, kind, subject and calendar day yields apperrors.ErrDuplicate.
	SaveNotification(ctx context.Context, n domain.Notification) error
	MarkRead(ctx context.Context, notificationID string, at time.Time) error
	// MarkAllRead returns the number of notifications changed.
	MarkAllRead(ctx context.Context, recipientID string, at time.Time) (int, error)
	SaveSettings(ctx context.Context, settings domain.NotificationSettings) error
}

// NotificationRepositoryFacade combines all notification repository interfaces
type NotificationRepositoryFacade interface {
	NotificationReader
	NotificationWriter
}
