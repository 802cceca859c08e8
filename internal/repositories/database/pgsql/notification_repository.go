package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/counterparty_portal/internal/core/ports/repositories"
	"github.com/SscSPs/counterparty_portal/internal/models"
	"github.com/SscSPs/counterparty_portal/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	notificationColumns = `notification_id, recipient_id, kind, priority, title, message, subject_id,
	counterparty_id, member_id, due_diligence_id, read, read_at, created_at, created_day`
	notificationSettingsColumns = `user_id, notify_due_diligence, notify_document_expiry, notify_matches,
	notify_approvals, dd_warning_days, last_updated_at`
)

type PgxNotificationRepository struct {
	BaseRepository
}

func newPgxNotificationRepository(pool *pgxpool.Pool) portsrepo.NotificationRepositoryFacade {
	return &PgxNotificationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.NotificationRepositoryFacade = (*PgxNotificationRepository)(nil)

// SaveNotification relies on uq_notifications_daily to refuse same-day repeats.
func (r *PgxNotificationRepository) SaveNotification(ctx context.Context, n domain.Notification) error {
	m := mapping.ToModelNotification(n)
	query := `
		INSERT INTO notifications (` + notificationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.NotificationID, m.RecipientID, m.Kind, m.Priority, m.Title, m.Message, m.SubjectID,
		m.CounterpartyID, m.MemberID, m.DueDiligenceID, m.Read, m.ReadAt, m.CreatedAt, m.CreatedDay,
	)
	return translateError(err, "notification "+m.Kind+" for "+m.RecipientID)
}

func (r *PgxNotificationRepository) FindNotificationByID(ctx context.Context, notificationID string) (*domain.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE notification_id = $1;`
	return findOne(ctx, r.Pool, "notification "+notificationID, mapping.ToDomainNotification, query, notificationID)
}

func (r *PgxNotificationRepository) ListNotifications(ctx context.Context, recipientID string, unreadOnly bool, limit int) ([]domain.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE recipient_id = $1`
	if unreadOnly {
		query += ` AND read = FALSE`
	}
	query += ` ORDER BY created_at DESC LIMIT $2;`
	return findMany[models.Notification](ctx, r.Pool, "notifications", mapping.ToDomainNotificationSlice, query, recipientID, limit)
}

func (r *PgxNotificationRepository) CountUnread(ctx context.Context, recipientID string) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM notifications WHERE recipient_id = $1 AND read = FALSE;`, recipientID).Scan(&count)
	if err != nil {
		return 0, translateError(err, "unread notifications")
	}
	return count, nil
}

// MarkRead keeps the first read timestamp.
func (r *PgxNotificationRepository) MarkRead(ctx context.Context, notificationID string, at time.Time) error {
	query := `UPDATE notifications SET read = TRUE, read_at = COALESCE(read_at, $2) WHERE notification_id = $1;`
	return r.execOne(ctx, "notification "+notificationID, query, notificationID, at)
}

func (r *PgxNotificationRepository) MarkAllRead(ctx context.Context, recipientID string, at time.Time) (int, error) {
	tag, err := r.Pool.Exec(ctx, `UPDATE notifications SET read = TRUE, read_at = $2 WHERE recipient_id = $1 AND read = FALSE;`, recipientID, at)
	if err != nil {
		return 0, translateError(err, "notifications of "+recipientID)
	}
	return int(tag.RowsAffected()), nil
}

func (r *PgxNotificationRepository) FindSettings(ctx context.Context, userID string) (*domain.NotificationSettings, error) {
	query := `SELECT ` + notificationSettingsColumns + ` FROM notification_settings WHERE user_id = $1;`
	return findOne(ctx, r.Pool, "notification settings of "+userID, mapping.ToDomainNotificationSettings, query, userID)
}

func (r *PgxNotificationRepository) SaveSettings(ctx context.Context, settings domain.NotificationSettings) error {
	m := mapping.ToModelNotificationSettings(settings)
	query := `
		INSERT INTO notification_settings (` + notificationSettingsColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE SET
			notify_due_diligence = EXCLUDED.notify_due_diligence,
			notify_document_expiry = EXCLUDED.notify_document_expiry,
			notify_matches = EXCLUDED.notify_matches,
			notify_approvals = EXCLUDED.notify_approvals,
			dd_warning_days = EXCLUDED.dd_warning_days,
			last_updated_at = EXCLUDED.last_updated_at;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.UserID, m.NotifyDueDiligence, m.NotifyDocumentExpiry, m.NotifyMatches, m.NotifyApprovals,
		m.DDWarningDays, m.LastUpdatedAt,
	)
	return translateError(err, "notification settings of "+m.UserID)
}
