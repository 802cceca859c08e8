package pgsql

import (
	"context"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	"github.com/SscSPs/counterparty_portal/internal/core/lifecycle"
	portsrepo "github.com/SscSPs/counterparty_portal/internal/core/ports/repositories"
	"github.com/SscSPs/counterparty_portal/internal/models"
	"github.com/SscSPs/counterparty_portal/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

const ratingColumns = `rating_id, counterparty_id, rater_id, outlook_id, rating, scope, rating_date,
	file_key, file_name, file_size, file_content_type, ` + softDeleteColumns + `, ` + auditColumns

type PgxRatingRepository struct {
	BaseRepository
}

func newPgxRatingRepository(pool *pgxpool.Pool) portsrepo.RatingRepositoryFacade {
	return &PgxRatingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.RatingRepositoryFacade = (*PgxRatingRepository)(nil)

func (r *PgxRatingRepository) SaveRating(ctx context.Context, rating domain.Rating) error {
	m := mapping.ToModelRating(rating)
	query := `
		INSERT INTO ratings (` + ratingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.RatingID, m.CounterpartyID, m.RaterID, m.OutlookID, m.Rating, m.Scope, lifecycle.Date(m.RatingDate),
		m.FileKey, m.FileName, m.FileSize, m.FileContentType,
		m.IsActive, m.DeactivatedAt, m.DeactivatedBy,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return translateError(err, "rating "+m.RatingID)
}

func (r *PgxRatingRepository) UpdateRating(ctx context.Context, rating domain.Rating) error {
	m := mapping.ToModelRating(rating)
	query := `
		UPDATE ratings SET
			rater_id = $2, outlook_id = $3, rating = $4, scope = $5, rating_date = $6,
			file_key = $7, file_name = $8, file_size = $9, file_content_type = $10,
			is_active = $11, deactivated_at = $12, deactivated_by = $13,
			last_updated_at = $14, last_updated_by = $15
		WHERE rating_id = $1;
	`
	return r.execOne(ctx, "rating "+m.RatingID, query,
		m.RatingID, m.RaterID, m.OutlookID, m.Rating, m.Scope, lifecycle.Date(m.RatingDate),
		m.FileKey, m.FileName, m.FileSize, m.FileContentType,
		m.IsActive, m.DeactivatedAt, m.DeactivatedBy,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
}

func (r *PgxRatingRepository) FindRatingByID(ctx context.Context, ratingID string) (*domain.Rating, error) {
	query := `SELECT ` + ratingColumns + ` FROM ratings WHERE rating_id = $1;`
	return findOne(ctx, r.Pool, "rating "+ratingID, mapping.ToDomainRating, query, ratingID)
}

func (r *PgxRatingRepository) ListRatings(ctx context.Context, counterpartyID string, vis domain.Visibility) ([]domain.Rating, error) {
	query := `SELECT ` + ratingColumns + ` FROM ratings WHERE counterparty_id = $1` +
		activeClause(vis, "is_active") + ` ORDER BY rating_date DESC, created_at DESC;`
	return findMany[models.Rating](ctx, r.Pool, "ratings", mapping.ToDomainRatingSlice, query, counterpartyID)
}
