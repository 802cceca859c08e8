package pgsql

import (
	"context"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/counterparty_portal/internal/core/ports/repositories"
	"github.com/SscSPs/counterparty_portal/internal/models"
	"github.com/SscSPs/counterparty_portal/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	softDeleteColumns = `is_active, deactivated_at, deactivated_by`
	memberColumns     = `member_id, counterparty_id, person_type, full_name, identification_number, nationality,
	birth_date, category, is_pep, pep_position, ` + softDeleteColumns + `, ` + auditColumns
)

type PgxMemberRepository struct {
	BaseRepository
}

func newPgxMemberRepository(pool *pgxpool.Pool) portsrepo.MemberRepositoryFacade {
	return &PgxMemberRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.MemberRepositoryFacade = (*PgxMemberRepository)(nil)

func (r *PgxMemberRepository) SaveMember(ctx context.Context, member domain.Member) error {
	m := mapping.ToModelMember(member)
	query := `
		INSERT INTO members (` + memberColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.MemberID, m.CounterpartyID, m.PersonType, m.FullName, m.IdentificationNumber, m.Nationality,
		m.BirthDate, m.Category, m.IsPEP, m.PEPPosition,
		m.IsActive, m.DeactivatedAt, m.DeactivatedBy,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return translateError(err, "member "+m.IdentificationNumber)
}

func (r *PgxMemberRepository) UpdateMember(ctx context.Context, member domain.Member) error {
	m := mapping.ToModelMember(member)
	query := `
		UPDATE members SET
			person_type = $2, full_name = $3, identification_number = $4, nationality = $5,
			birth_date = $6, category = $7, is_pep = $8, pep_position = $9,
			is_active = $10, deactivated_at = $11, deactivated_by = $12,
			last_updated_at = $13, last_updated_by = $14
		WHERE member_id = $1;
	`
	return r.execOne(ctx, "member "+m.MemberID, query,
		m.MemberID, m.PersonType, m.FullName, m.IdentificationNumber, m.Nationality,
		m.BirthDate, m.Category, m.IsPEP, m.PEPPosition,
		m.IsActive, m.DeactivatedAt, m.DeactivatedBy,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
}

func (r *PgxMemberRepository) FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE member_id = $1;`
	return findOne(ctx, r.Pool, "member "+memberID, mapping.ToDomainMember, query, memberID)
}

func (r *PgxMemberRepository) FindMemberByIdentification(ctx context.Context, counterpartyID, identificationNumber string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE counterparty_id = $1 AND identification_number = $2;`
	return findOne(ctx, r.Pool, "member "+identificationNumber, mapping.ToDomainMember, query, counterpartyID, identificationNumber)
}

func (r *PgxMemberRepository) ListMembers(ctx context.Context, counterpartyID string, vis domain.Visibility) ([]domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE counterparty_id = $1` +
		activeClause(vis, "is_active") + ` ORDER BY category, full_name;`
	return findMany[models.Member](ctx, r.Pool, "members", mapping.ToDomainMemberSlice, query, counterpartyID)
}
