package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/counterparty_portal/internal/core/ports/repositories"
	"github.com/SscSPs/counterparty_portal/internal/models"
	"github.com/SscSPs/counterparty_portal/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	balanceSheetColumns = `balance_sheet_id, counterparty_id, year, reference_only, local_currency_code, exchange_rate_id, ` +
		softDeleteColumns + `, ` + auditColumns
	balanceSheetItemColumns = `item_id, balance_sheet_id, category, description, note, amount_ref, amount_local, display_order, ` +
		softDeleteColumns + `, ` + auditColumns
)

// PgxBalanceSheetRepository stores balance sheets and their line items.
type PgxBalanceSheetRepository struct {
	BaseRepository
}

func newPgxBalanceSheetRepository(pool *pgxpool.Pool) portsrepo.BalanceSheetRepositoryFacade {
	return &PgxBalanceSheetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BalanceSheetRepositoryFacade = (*PgxBalanceSheetRepository)(nil)

func (r *PgxBalanceSheetRepository) SaveBalanceSheet(ctx context.Context, sheet domain.BalanceSheet) error {
	m := mapping.ToModelBalanceSheet(sheet)
	query := `
		INSERT INTO balance_sheets (` + balanceSheetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.BalanceSheetID, m.CounterpartyID, m.Year, m.ReferenceOnly, m.LocalCurrencyCode, m.ExchangeRateID,
		m.IsActive, m.DeactivatedAt, m.DeactivatedBy,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return translateError(err, fmt.Sprintf("balance sheet %d of counterparty %s", m.Year, m.CounterpartyID))
}

func (r *PgxBalanceSheetRepository) UpdateBalanceSheet(ctx context.Context, sheet domain.BalanceSheet) error {
	m := mapping.ToModelBalanceSheet(sheet)
	query := `
		UPDATE balance_sheets SET
			year = $2, reference_only = $3, local_currency_code = $4, exchange_rate_id = $5,
			is_active = $6, deactivated_at = $7, deactivated_by = $8,
			last_updated_at = $9, last_updated_by = $10
		WHERE balance_sheet_id = $1;
	`
	return r.execOne(ctx, "balance sheet "+m.BalanceSheetID, query,
		m.BalanceSheetID, m.Year, m.ReferenceOnly, m.LocalCurrencyCode, m.ExchangeRateID,
		m.IsActive, m.DeactivatedAt, m.DeactivatedBy,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
}

func (r *PgxBalanceSheetRepository) FindBalanceSheetByID(ctx context.Context, balanceSheetID string) (*domain.BalanceSheet, error) {
	query := `SELECT ` + balanceSheetColumns + ` FROM balance_sheets WHERE balance_sheet_id = $1;`
	return findOne(ctx, r.Pool, "balance sheet "+balanceSheetID, mapping.ToDomainBalanceSheet, query, balanceSheetID)
}

func (r *PgxBalanceSheetRepository) FindBalanceSheetByYear(ctx context.Context, counterpartyID string, year int) (*domain.BalanceSheet, error) {
	query := `SELECT ` + balanceSheetColumns + ` FROM balance_sheets WHERE counterparty_id = $1 AND year = $2;`
	return findOne(ctx, r.Pool, fmt.Sprintf("balance sheet %d", year), mapping.ToDomainBalanceSheet, query, counterpartyID, year)
}

func (r *PgxBalanceSheetRepository) ListBalanceSheets(ctx context.Context, counterpartyID string, vis domain.Visibility) ([]domain.BalanceSheet, error) {
	query := `SELECT ` + balanceSheetColumns + ` FROM balance_sheets WHERE counterparty_id = $1` +
		activeClause(vis, "is_active") + ` ORDER BY year DESC;`
	return findMany[models.BalanceSheet](ctx, r.Pool, "balance sheets", mapping.ToDomainBalanceSheetSlice, query, counterpartyID)
}

func (r *PgxBalanceSheetRepository) SaveItem(ctx context.Context, item domain.BalanceSheetItem) error {
	m := mapping.ToModelBalanceSheetItem(item)
	query := `
		INSERT INTO balance_sheet_items (` + balanceSheetItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ItemID, m.BalanceSheetID, m.Category, m.Description, m.Note, m.AmountRef, m.AmountLocal, m.DisplayOrder,
		m.IsActive, m.DeactivatedAt, m.DeactivatedBy,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return translateError(err, "balance sheet item "+m.Description)
}

func (r *PgxBalanceSheetRepository) UpdateItem(ctx context.Context, item domain.BalanceSheetItem) error {
	m := mapping.ToModelBalanceSheetItem(item)
	query := `
		UPDATE balance_sheet_items SET
			category = $2, description = $3, note = $4, amount_ref = $5, amount_local = $6, display_order = $7,
			is_active = $8, deactivated_at = $9, deactivated_by = $10,
			last_updated_at = $11, last_updated_by = $12
		WHERE item_id = $1;
	`
	return r.execOne(ctx, "balance sheet item "+m.ItemID, query,
		m.ItemID, m.Category, m.Description, m.Note, m.AmountRef, m.AmountLocal, m.DisplayOrder,
		m.IsActive, m.DeactivatedAt, m.DeactivatedBy,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
}

func (r *PgxBalanceSheetRepository) FindItemByID(ctx context.Context, itemID string) (*domain.BalanceSheetItem, error) {
	query := `SELECT ` + balanceSheetItemColumns + ` FROM balance_sheet_items WHERE item_id = $1;`
	return findOne(ctx, r.Pool, "balance sheet item "+itemID, mapping.ToDomainBalanceSheetItem, query, itemID)
}

// ListItems returns items in canonical order: assets, liabilities, equity,
// then display order, then description.
func (r *PgxBalanceSheetRepository) ListItems(ctx context.Context, balanceSheetID string, vis domain.Visibility) ([]domain.BalanceSheetItem, error) {
	query := `
		SELECT ` + balanceSheetItemColumns + `
		FROM balance_sheet_items
		WHERE balance_sheet_id = $1` + activeClause(vis, "is_active") + `
		ORDER BY CASE category WHEN 'assets' THEN 0 WHEN 'liabilities' THEN 1 ELSE 2 END,
			display_order, description;
	`
	return findMany[models.BalanceSheetItem](ctx, r.Pool, "balance sheet items", mapping.ToDomainBalanceSheetItemSlice, query, balanceSheetID)
}
