package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/counterparty_portal/internal/apperrors"
	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	"github.com/SscSPs/counterparty_portal/internal/core/lifecycle"
	"github.com/SscSPs/counterparty_portal/internal/middleware"
	"github.com/SscSPs/counterparty_portal/internal/platform/metrics"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Clock   lifecycle.Clock
	Metrics *metrics.Metrics
}

// Option configures the BaseService embedded in every service.
type Option func(*BaseService)

// WithClock pins the time source, mainly for tests and batch runs.
func WithClock(clock lifecycle.Clock) Option {
	return func(s *BaseService) {
		s.Clock = clock
	}
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *BaseService) {
		s.Metrics = m
	}
}

func newBaseService(opts []Option) BaseService {
	base := BaseService{Clock: lifecycle.SystemClock{}}
	for _, opt := range opts {
		opt(&base)
	}
	return base
}

// Now returns the current instant in UTC.
func (s *BaseService) Now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeMutation applies the creator-or-staff rule to record.
func (s *BaseService) AuthorizeMutation(ctx context.Context, actor domain.Actor, record domain.Owned, kind, recordID string) error {
	if actor.CanMutate(record.OwnerID()) {
		return nil
	}
	s.Metrics.IncrementPermissionDenied(kind)
	s.LogInfo(ctx, "Mutation denied by ownership rule",
		slog.String("kind", kind),
		slog.String("record_id", recordID),
		slog.String("user_id", actor.UserID))
	return fmt.Errorf("%s %s: %w", kind, recordID, apperrors.ErrPermissionDenied)
}

// AuthorizeStaff refuses non-staff actors.
func (s *BaseService) AuthorizeStaff(ctx context.Context, actor domain.Actor, kind string) error {
	if actor.IsStaff {
		return nil
	}
	s.Metrics.IncrementPermissionDenied(kind)
	s.LogInfo(ctx, "Staff-only operation refused",
		slog.String("kind", kind),
		slog.String("user_id", actor.UserID))
	return fmt.Errorf("%s requires staff: %w", kind, apperrors.ErrPermissionDenied)
}

// normalizeDate drops zero dates sent by form binding and truncates the rest to a calendar date.
func normalizeDate(t *time.Time) *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	d := lifecycle.Date(*t)
	return &d
}
