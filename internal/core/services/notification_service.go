package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/counterparty_portal/internal/apperrors"
	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/counterparty_portal/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/counterparty_portal/internal/core/ports/services"
	"github.com/SscSPs/counterparty_portal/internal/dto"
	"github.com/google/uuid"
)

const defaultNotificationLimit = 50

type notificationService struct {
	BaseService
	notificationRepo portsrepo.NotificationRepositoryFacade
}

// NewNotificationService creates the in-app notification service.
func NewNotificationService(notificationRepo portsrepo.NotificationRepositoryFacade, opts ...Option) portssvc.NotificationSvcFacade {
	return &notificationService{
		BaseService:      newBaseService(opts),
		notificationRepo: notificationRepo,
	}
}

var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

func (s *notificationService) ListNotifications(ctx context.Context, actor domain.Actor, unreadOnly bool, limit int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = defaultNotificationLimit
	}
	items, err := s.notificationRepo.ListNotifications(ctx, actor.UserID, unreadOnly, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list notifications", slog.String("user_id", actor.UserID))
		return nil, err
	}
	return orEmpty(items), nil
}

func (s *notificationService) CountUnread(ctx context.Context, actor domain.Actor) (int, error) {
	return s.notificationRepo.CountUnread(ctx, actor.UserID)
}

func (s *notificationService) MarkRead(ctx context.Context, actor domain.Actor, notificationID string) (*domain.Notification, error) {
	n, err := s.notificationRepo.FindNotificationByID(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	if n.RecipientID != actor.UserID {
		s.Metrics.IncrementPermissionDenied("notification")
		return nil, fmt.Errorf("notification %s: %w", notificationID, apperrors.ErrPermissionDenied)
	}
	if n.Read {
		return n, nil
	}

	n.MarkRead(s.Now())
	if err := s.notificationRepo.MarkRead(ctx, notificationID, *n.ReadAt); err != nil {
		s.LogError(ctx, err, "Failed to mark notification read", slog.String("notification_id", notificationID))
		return nil, err
	}
	return n, nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, actor domain.Actor) (int, error) {
	n, err := s.notificationRepo.MarkAllRead(ctx, actor.UserID, s.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to mark all notifications read", slog.String("user_id", actor.UserID))
		return 0, err
	}
	return n, nil
}

func (s *notificationService) GetSettings(ctx context.Context, actor domain.Actor) (*domain.NotificationSettings, error) {
	settings, err := s.notificationRepo.FindSettings(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			d := domain.DefaultNotificationSettings(actor.UserID)
			return &d, nil
		}
		s.LogError(ctx, err, "Failed to load notification settings", slog.String("user_id", actor.UserID))
		return nil, err
	}
	return settings, nil
}

func (s *notificationService) UpdateSettings(ctx context.Context, actor domain.Actor, req dto.UpdateNotificationSettingsRequest) (*domain.NotificationSettings, error) {
	settings, err := s.GetSettings(ctx, actor)
	if err != nil {
		return nil, err
	}

	if req.NotifyDueDiligence != nil {
		settings.NotifyDueDiligence = *req.NotifyDueDiligence
	}
	if req.NotifyDocumentExpiry != nil {
		settings.NotifyDocumentExpiry = *req.NotifyDocumentExpiry
	}
	if req.NotifyMatches != nil {
		settings.NotifyMatches = *req.NotifyMatches
	}
	if req.NotifyApprovals != nil {
		settings.NotifyApprovals = *req.NotifyApprovals
	}
	if req.DDWarningDays != nil {
		if *req.DDWarningDays < 1 || *req.DDWarningDays > domain.MaxDDWarningDays {
			return nil, apperrors.NewValidationError("ddWarningDays", fmt.Sprintf("must be between 1 and %d", domain.MaxDDWarningDays))
		}
		settings.DDWarningDays = *req.DDWarningDays
	}
	settings.LastUpdatedAt = s.Now()

	if err := s.notificationRepo.SaveSettings(ctx, *settings); err != nil {
		s.LogError(ctx, err, "Failed to save notification settings", slog.String("user_id", actor.UserID))
		return nil, err
	}
	return settings, nil
}

func (s *notificationService) Notify(ctx context.Context, n domain.Notification) (bool, error) {
	if n.RecipientID == "" {
		return false, apperrors.NewValidationError("recipientID", "is required")
	}
	settings, err := s.GetSettings(ctx, domain.Actor{UserID: n.RecipientID})
	if err != nil {
		return false, err
	}
	if !settings.Wants(n.Kind) {
		s.LogDebug(ctx, "Notification muted by user settings",
			slog.String("recipient_id", n.RecipientID),
			slog.String("kind", string(n.Kind)))
		return false, nil
	}

	if n.NotificationID == "" {
		n.NotificationID = uuid.NewString()
	}
	if n.Priority == "" {
		n.Priority = domain.PriorityNormal
	}
	n.CreatedAt = s.Now()
	n.Read = false
	n.ReadAt = nil

	if err := s.notificationRepo.SaveNotification(ctx, n); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return false, nil
		}
		s.LogError(ctx, err, "Failed to save notification",
			slog.String("recipient_id", n.RecipientID),
			slog.String("kind", string(n.Kind)))
		return false, err
	}
	return true, nil
}
