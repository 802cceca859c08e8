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
	auditColumns              = `created_at, created_by, last_updated_at, last_updated_by`
	counterpartyTypeColumns   = `type_id, code, name, description, is_active, ` + auditColumns
	counterpartyStatusColumns = `status_id, code, name, description, color, is_active, ` + auditColumns
	documentTypeColumns       = `type_id, code, name, description, requires_expiration, is_active, ` + auditColumns
	raterColumns              = `rater_id, name, is_active, ` + auditColumns
	outlookColumns            = `outlook_id, name, is_active, ` + auditColumns
)

// PgxReferenceDataRepository stores the admin-managed lookup tables.
type PgxReferenceDataRepository struct {
	BaseRepository
}

func newPgxReferenceDataRepository(pool *pgxpool.Pool) portsrepo.ReferenceDataRepositoryFacade {
	return &PgxReferenceDataRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReferenceDataRepositoryFacade = (*PgxReferenceDataRepository)(nil)

func (r *PgxReferenceDataRepository) FindCounterpartyType(ctx context.Context, typeID string) (*domain.CounterpartyType, error) {
	query := `SELECT ` + counterpartyTypeColumns + ` FROM counterparty_types WHERE type_id = $1;`
	return findOne(ctx, r.Pool, "counterparty type "+typeID, mapping.ToDomainCounterpartyType, query, typeID)
}

func (r *PgxReferenceDataRepository) ListCounterpartyTypes(ctx context.Context, vis domain.Visibility) ([]domain.CounterpartyType, error) {
	query := `SELECT ` + counterpartyTypeColumns + ` FROM counterparty_types WHERE 1=1` +
		activeClause(vis, "is_active") + ` ORDER BY name;`
	return findMany[models.CounterpartyType](ctx, r.Pool, "counterparty types", mapping.ToDomainCounterpartyTypeSlice, query)
}

func (r *PgxReferenceDataRepository) SaveCounterpartyType(ctx context.Context, t domain.CounterpartyType) error {
	m := mapping.ToModelCounterpartyType(t)
	query := `
		INSERT INTO counterparty_types (` + counterpartyTypeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (type_id) DO UPDATE SET
			code = EXCLUDED.code,
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			is_active = EXCLUDED.is_active,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query, m.TypeID, m.Code, m.Name, m.Description, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	return translateError(err, "counterparty type "+m.Code)
}

func (r *PgxReferenceDataRepository) FindCounterpartyStatus(ctx context.Context, statusID string) (*domain.CounterpartyStatus, error) {
	query := `SELECT ` + counterpartyStatusColumns + ` FROM counterparty_statuses WHERE status_id = $1;`
	return findOne(ctx, r.Pool, "counterparty status "+statusID, mapping.ToDomainCounterpartyStatus, query, statusID)
}

func (r *PgxReferenceDataRepository) FindCounterpartyStatusByCode(ctx context.Context, code string) (*domain.CounterpartyStatus, error) {
	query := `SELECT ` + counterpartyStatusColumns + ` FROM counterparty_statuses WHERE code = $1;`
	return findOne(ctx, r.Pool, "counterparty status "+code, mapping.ToDomainCounterpartyStatus, query, code)
}

func (r *PgxReferenceDataRepository) ListCounterpartyStatuses(ctx context.Context, vis domain.Visibility) ([]domain.CounterpartyStatus, error) {
	query := `SELECT ` + counterpartyStatusColumns + ` FROM counterparty_statuses WHERE 1=1` +
		activeClause(vis, "is_active") + ` ORDER BY name;`
	return findMany[models.CounterpartyStatus](ctx, r.Pool, "counterparty statuses", mapping.ToDomainCounterpartyStatusSlice, query)
}

func (r *PgxReferenceDataRepository) SaveCounterpartyStatus(ctx context.Context, s domain.CounterpartyStatus) error {
	m := mapping.ToModelCounterpartyStatus(s)
	query := `
		INSERT INTO counterparty_statuses (` + counterpartyStatusColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (status_id) DO UPDATE SET
			code = EXCLUDED.code,
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			color = EXCLUDED.color,
			is_active = EXCLUDED.is_active,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query, m.StatusID, m.Code, m.Name, m.Description, m.Color, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	return translateError(err, "counterparty status "+m.Code)
}

func (r *PgxReferenceDataRepository) FindDocumentType(ctx context.Context, typeID string) (*domain.DocumentType, error) {
	query := `SELECT ` + documentTypeColumns + ` FROM document_types WHERE type_id = $1;`
	return findOne(ctx, r.Pool, "document type "+typeID, mapping.ToDomainDocumentType, query, typeID)
}

func (r *PgxReferenceDataRepository) ListDocumentTypes(ctx context.Context, vis domain.Visibility) ([]domain.DocumentType, error) {
	query := `SELECT ` + documentTypeColumns + ` FROM document_types WHERE 1=1` +
		activeClause(vis, "is_active") + ` ORDER BY name;`
	return findMany[models.DocumentType](ctx, r.Pool, "document types", mapping.ToDomainDocumentTypeSlice, query)
}

func (r *PgxReferenceDataRepository) SaveDocumentType(ctx context.Context, t domain.DocumentType) error {
	m := mapping.ToModelDocumentType(t)
	query := `
		INSERT INTO document_types (` + documentTypeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (type_id) DO UPDATE SET
			code = EXCLUDED.code,
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			requires_expiration = EXCLUDED.requires_expiration,
			is_active = EXCLUDED.is_active,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query, m.TypeID, m.Code, m.Name, m.Description, m.RequiresExpiration, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	return translateError(err, "document type "+m.Code)
}

func (r *PgxReferenceDataRepository) FindRater(ctx context.Context, raterID string) (*domain.Rater, error) {
	query := `SELECT ` + raterColumns + ` FROM raters WHERE rater_id = $1;`
	return findOne(ctx, r.Pool, "rater "+raterID, mapping.ToDomainRater, query, raterID)
}

func (r *PgxReferenceDataRepository) ListRaters(ctx context.Context, vis domain.Visibility) ([]domain.Rater, error) {
	query := `SELECT ` + raterColumns + ` FROM raters WHERE 1=1` + activeClause(vis, "is_active") + ` ORDER BY name;`
	return findMany[models.Rater](ctx, r.Pool, "raters", mapping.ToDomainRaterSlice, query)
}

func (r *PgxReferenceDataRepository) SaveRater(ctx context.Context, rater domain.Rater) error {
	m := mapping.ToModelRater(rater)
	query := `
		INSERT INTO raters (` + raterColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (rater_id) DO UPDATE SET
			name = EXCLUDED.name,
			is_active = EXCLUDED.is_active,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query, m.RaterID, m.Name, m.IsActive, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	return translateError(err, "rater "+m.Name)
}

func (r *PgxReferenceDataRepository) FindOutlook(ctx context.Context, outlookID string) (*domain.Outlook, error) {
	query := `SELECT ` + outlookColumns + ` FROM outlooks WHERE outlook_id = $1;`
	return findOne(ctx, r.Pool, "outlook "+outlookID, mapping.ToDomainOutlook, query, outlookID)
}

func (r *PgxReferenceDataRepository) ListOutlooks(ctx context.Context, vis domain.Visibility) ([]domain.Outlook, error) {
	query := `SELECT ` + outlookColumns + ` FROM outlooks WHERE 1=1` + activeClause(vis, "is_active") + ` ORDER BY name;`
	return findMany[models.Outlook](ctx, r.Pool, "outlooks", mapping.ToDomainOutlookSlice, query)
}

func (r *PgxReferenceDataRepository) SaveOutlook(ctx context.Context, o domain.Outlook) error {
	m := mapping.ToModelOutlook(o)
	query := `
		INSERT INTO outlooks (` + outlookColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (outlook_id) DO UPDATE SET
			name = EXCLUDED.name,
			is_active = EXCLUDED.is_active,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query, m.OutlookID, m.Name, m.IsActive, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	return translateError(err, "outlook "+m.Name)
}
