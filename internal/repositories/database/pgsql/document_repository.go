package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	"github.com/SscSPs/counterparty_portal/internal/core/lifecycle"
	portsrepo "github.com/SscSPs/counterparty_portal/internal/core/ports/repositories"
	"github.com/SscSPs/counterparty_portal/internal/models"
	"github.com/SscSPs/counterparty_portal/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

const documentColumns = `document_id, counterparty_id, document_type_id, category, description,
	file_key, file_name, file_size, file_content_type, issue_date, expiry_date, ` + softDeleteColumns + `, ` + auditColumns

type PgxDocumentRepository struct {
	BaseRepository
}

func newPgxDocumentRepository(pool *pgxpool.Pool) portsrepo.DocumentRepositoryFacade {
	return &PgxDocumentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DocumentRepositoryFacade = (*PgxDocumentRepository)(nil)

func (r *PgxDocumentRepository) SaveDocument(ctx context.Context, document domain.Document) error {
	m := mapping.ToModelDocument(document)
	query := `
		INSERT INTO documents (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.DocumentID, m.CounterpartyID, m.DocumentTypeID, m.Category, m.Description,
		m.FileKey, m.FileName, m.FileSize, m.FileContentType, m.IssueDate, m.ExpiryDate,
		m.IsActive, m.DeactivatedAt, m.DeactivatedBy,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return translateError(err, "document "+m.FileName)
}

// UpdateDocument changes metadata and the active flag; the stored file is immutable.
func (r *PgxDocumentRepository) UpdateDocument(ctx context.Context, document domain.Document) error {
	m := mapping.ToModelDocument(document)
	query := `
		UPDATE documents SET
			document_type_id = $2, category = $3, description = $4, issue_date = $5, expiry_date = $6,
			is_active = $7, deactivated_at = $8, deactivated_by = $9,
			last_updated_at = $10, last_updated_by = $11
		WHERE document_id = $1;
	`
	return r.execOne(ctx, "document "+m.DocumentID, query,
		m.DocumentID, m.DocumentTypeID, m.Category, m.Description, m.IssueDate, m.ExpiryDate,
		m.IsActive, m.DeactivatedAt, m.DeactivatedBy,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
}

func (r *PgxDocumentRepository) FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE document_id = $1;`
	return findOne(ctx, r.Pool, "document "+documentID, mapping.ToDomainDocument, query, documentID)
}

func (r *PgxDocumentRepository) ListDocuments(ctx context.Context, counterpartyID string, vis domain.Visibility) ([]domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE counterparty_id = $1` +
		activeClause(vis, "is_active") + ` ORDER BY category, created_at DESC;`
	return findMany[models.Document](ctx, r.Pool, "documents", mapping.ToDomainDocumentSlice, query, counterpartyID)
}

func (r *PgxDocumentRepository) ListExpiringDocuments(ctx context.Context, dueBy time.Time) ([]domain.Document, error) {
	query := `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE is_active = TRUE AND expiry_date IS NOT NULL AND expiry_date <= $1
		ORDER BY expiry_date, document_id;
	`
	return findMany[models.Document](ctx, r.Pool, "expiring documents", mapping.ToDomainDocumentSlice, query, lifecycle.Date(dueBy))
}
