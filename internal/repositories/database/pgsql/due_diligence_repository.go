package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/counterparty_portal/internal/apperrors"
	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	"github.com/SscSPs/counterparty_portal/internal/core/lifecycle"
	portsrepo "github.com/SscSPs/counterparty_portal/internal/core/ports/repositories"
	"github.com/SscSPs/counterparty_portal/internal/models"
	"github.com/SscSPs/counterparty_portal/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const dueDiligenceColumns = `due_diligence_id, member_id, counterparty_id, state, external_request_id, result_at,
	risk_level, summary, positive_matches, analyst_comments, approved, approved_by, approved_at, ` + auditColumns

const updateDueDiligenceQuery = `
	UPDATE due_diligences SET
		state = $2, external_request_id = $3, result_at = $4, risk_level = $5, summary = $6,
		positive_matches = $7, analyst_comments = $8, approved = $9, approved_by = $10, approved_at = $11,
		last_updated_at = $12, last_updated_by = $13
	WHERE due_diligence_id = $1;
`

type PgxDueDiligenceRepository struct {
	BaseRepository
}

func newPgxDueDiligenceRepository(pool *pgxpool.Pool) portsrepo.DueDiligenceRepositoryFacade {
	return &PgxDueDiligenceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DueDiligenceRepositoryFacade = (*PgxDueDiligenceRepository)(nil)

func updateDueDiligenceArgs(m models.DueDiligence) []any {
	return []any{
		m.DueDiligenceID, m.State, m.ExternalRequestID, m.ResultAt, m.RiskLevel, m.Summary,
		m.PositiveMatches, m.AnalystComments, m.Approved, m.ApprovedBy, m.ApprovedAt,
		m.LastUpdatedAt, m.LastUpdatedBy,
	}
}

func (r *PgxDueDiligenceRepository) SaveDueDiligence(ctx context.Context, dd domain.DueDiligence) error {
	m := mapping.ToModelDueDiligence(dd)
	query := `
		INSERT INTO due_diligences (` + dueDiligenceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.DueDiligenceID, m.MemberID, m.CounterpartyID, m.State, m.ExternalRequestID, m.ResultAt,
		m.RiskLevel, m.Summary, m.PositiveMatches, m.AnalystComments, m.Approved, m.ApprovedBy, m.ApprovedAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return translateError(err, "due diligence "+m.DueDiligenceID)
}

func (r *PgxDueDiligenceRepository) UpdateDueDiligence(ctx context.Context, dd domain.DueDiligence) error {
	m := mapping.ToModelDueDiligence(dd)
	return r.execOne(ctx, "due diligence "+m.DueDiligenceID, updateDueDiligenceQuery, updateDueDiligenceArgs(m)...)
}

// ApproveAndRenew stores the decision and moves the counterparty's next review in one transaction.
func (r *PgxDueDiligenceRepository) ApproveAndRenew(ctx context.Context, dd domain.DueDiligence, counterpartyID string, nextDueDiligence time.Time) (err error) {
	m := mapping.ToModelDueDiligence(dd)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = r.Rollback(ctx, tx)
		}
	}()

	if err = execOneTx(ctx, tx, "due diligence "+m.DueDiligenceID, updateDueDiligenceQuery, updateDueDiligenceArgs(m)...); err != nil {
		return err
	}
	err = execOneTx(ctx, tx, "counterparty "+counterpartyID, `
		UPDATE counterparties
		SET next_due_diligence_date = $2, last_updated_at = $3, last_updated_by = $4
		WHERE counterparty_id = $1;`,
		counterpartyID, lifecycle.Date(nextDueDiligence), m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func (r *PgxDueDiligenceRepository) FindDueDiligenceByID(ctx context.Context, dueDiligenceID string) (*domain.DueDiligence, error) {
	query := `SELECT ` + dueDiligenceColumns + ` FROM due_diligences WHERE due_diligence_id = $1;`
	return findOne(ctx, r.Pool, "due diligence "+dueDiligenceID, mapping.ToDomainDueDiligence, query, dueDiligenceID)
}

func (r *PgxDueDiligenceRepository) FindDueDiligenceByExternalID(ctx context.Context, externalRequestID string) (*domain.DueDiligence, error) {
	if externalRequestID == "" {
		return nil, apperrors.NewNotFoundError("due diligence without external request")
	}
	query := `SELECT ` + dueDiligenceColumns + ` FROM due_diligences WHERE external_request_id = $1;`
	return findOne(ctx, r.Pool, "due diligence "+externalRequestID, mapping.ToDomainDueDiligence, query, externalRequestID)
}

func (r *PgxDueDiligenceRepository) ListDueDiligenceByMember(ctx context.Context, memberID string) ([]domain.DueDiligence, error) {
	query := `SELECT ` + dueDiligenceColumns + ` FROM due_diligences WHERE member_id = $1 ORDER BY created_at DESC;`
	return findMany[models.DueDiligence](ctx, r.Pool, "due diligences", mapping.ToDomainDueDiligenceSlice, query, memberID)
}

func execOneTx(ctx context.Context, tx pgx.Tx, what, query string, args ...any) error {
	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return translateError(err, what)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(what)
	}
	return nil
}
