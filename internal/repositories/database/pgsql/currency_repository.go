package pgsql

import (
	"context"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/counterparty_portal/internal/core/ports/repositories"
	"github.com/SscSPs/counterparty_portal/internal/models"
	"github.com/SscSPs/counterparty_portal/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

const currencyColumns = `currency_code, symbol, name, is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryFacade {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

// SaveCurrency inserts a currency.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	m := mapping.ToModelCurrency(currency)
	query := `
		INSERT INTO currencies (` + currencyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CurrencyCode,
		m.Symbol,
		m.Name,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	return translateError(err, "currency "+m.CurrencyCode)
}

// UpdateCurrency changes the mutable fields of a currency.
func (r *PgxCurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.Currency) error {
	m := mapping.ToModelCurrency(currency)
	query := `
		UPDATE currencies
		SET symbol = $2, name = $3, is_active = $4, last_updated_at = $5, last_updated_by = $6
		WHERE currency_code = $1;
	`
	return r.execOne(ctx, "currency "+m.CurrencyCode, query,
		m.CurrencyCode, m.Symbol, m.Name, m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy)
}

// FindCurrencyByCode retrieves a currency by its 3-letter code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE currency_code = $1;`
	return findOne(ctx, r.Pool, "currency "+currencyCode, mapping.ToDomainCurrency, query, currencyCode)
}

// ListCurrencies retrieves currencies ordered by code.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context, vis domain.Visibility) ([]domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE 1=1` +
		activeClause(vis, "is_active") + ` ORDER BY currency_code;`
	return findMany[models.Currency](ctx, r.Pool, "currencies", mapping.ToDomainCurrencySlice, query)
}
