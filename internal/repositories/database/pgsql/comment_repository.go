package pgsql

import (
	"context"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/counterparty_portal/internal/core/ports/repositories"
	"github.com/SscSPs/counterparty_portal/internal/models"
	"github.com/SscSPs/counterparty_portal/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

const commentColumns = `comment_id, counterparty_id, content, edited, ` + softDeleteColumns + `, ` + auditColumns

type PgxCommentRepository struct {
	BaseRepository
}

func newPgxCommentRepository(pool *pgxpool.Pool) portsrepo.CommentRepositoryFacade {
	return &PgxCommentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CommentRepositoryFacade = (*PgxCommentRepository)(nil)

func (r *PgxCommentRepository) SaveComment(ctx context.Context, comment domain.Comment) error {
	m := mapping.ToModelComment(comment)
	query := `
		INSERT INTO comments (` + commentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CommentID, m.CounterpartyID, m.Content, m.Edited,
		m.IsActive, m.DeactivatedAt, m.DeactivatedBy,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return translateError(err, "comment "+m.CommentID)
}

func (r *PgxCommentRepository) UpdateComment(ctx context.Context, comment domain.Comment) error {
	m := mapping.ToModelComment(comment)
	query := `
		UPDATE comments SET
			content = $2, edited = $3, is_active = $4, deactivated_at = $5, deactivated_by = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE comment_id = $1;
	`
	return r.execOne(ctx, "comment "+m.CommentID, query,
		m.CommentID, m.Content, m.Edited, m.IsActive, m.DeactivatedAt, m.DeactivatedBy,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
}

func (r *PgxCommentRepository) FindCommentByID(ctx context.Context, commentID string) (*domain.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE comment_id = $1;`
	return findOne(ctx, r.Pool, "comment "+commentID, mapping.ToDomainComment, query, commentID)
}

func (r *PgxCommentRepository) ListComments(ctx context.Context, counterpartyID string, vis domain.Visibility) ([]domain.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE counterparty_id = $1` +
		activeClause(vis, "is_active") + ` ORDER BY created_at DESC;`
	return findMany[models.Comment](ctx, r.Pool, "comments", mapping.ToDomainCommentSlice, query, counterpartyID)
}
