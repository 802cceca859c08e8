package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/counterparty_portal/internal/apperrors"
	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	"github.com/SscSPs/counterparty_portal/internal/core/lifecycle"
	portsrepo "github.com/SscSPs/counterparty_portal/internal/core/ports/repositories"
	"github.com/SscSPs/counterparty_portal/internal/models"
	"github.com/SscSPs/counterparty_portal/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

const exchangeRateColumns = `exchange_rate_id, currency_code, rate_to_reference, effective_date, created_at, created_by, last_updated_at, last_updated_by`

// PgxExchangeRateRepository implements the exchange rate repository using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

func newPgxExchangeRateRepository(pool *pgxpool.Pool) portsrepo.ExchangeRateRepositoryFacade {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

// SaveExchangeRate inserts a rate. The (currency, date) unique constraint
// rejects a second rate for the same day.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	m := mapping.ToModelExchangeRate(rate)
	query := `
		INSERT INTO exchange_rates (` + exchangeRateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ExchangeRateID,
		m.CurrencyCode,
		m.RateToReference,
		lifecycle.Date(m.EffectiveDate),
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	return translateError(err, "exchange rate for "+m.CurrencyCode+" on "+m.EffectiveDate.Format(time.DateOnly))
}

// FindExchangeRateByID retrieves an exchange rate by its ID.
func (r *PgxExchangeRateRepository) FindExchangeRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error) {
	query := `SELECT ` + exchangeRateColumns + ` FROM exchange_rates WHERE exchange_rate_id = $1;`
	return findOne(ctx, r.Pool, "exchange rate "+rateID, mapping.ToDomainExchangeRate, query, rateID)
}

// FindRateOnOrBefore returns the most recent rate effective on or before asOf.
func (r *PgxExchangeRateRepository) FindRateOnOrBefore(ctx context.Context, currencyCode string, asOf time.Time) (*domain.ExchangeRate, error) {
	query := `
		SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE currency_code = $1 AND effective_date <= $2
		ORDER BY effective_date DESC
		LIMIT 1;
	`
	rate, err := findOne(ctx, r.Pool, "exchange rate for "+currencyCode, mapping.ToDomainExchangeRate, query, currencyCode, lifecycle.Date(asOf))
	return rate, rateNotFound(err)
}

// FindRateOn returns the rate effective exactly on date.
func (r *PgxExchangeRateRepository) FindRateOn(ctx context.Context, currencyCode string, date time.Time) (*domain.ExchangeRate, error) {
	query := `SELECT ` + exchangeRateColumns + ` FROM exchange_rates WHERE currency_code = $1 AND effective_date = $2;`
	rate, err := findOne(ctx, r.Pool, "exchange rate for "+currencyCode, mapping.ToDomainExchangeRate, query, currencyCode, lifecycle.Date(date))
	return rate, rateNotFound(err)
}

// ListRatesByCurrency returns the most recent rates first.
func (r *PgxExchangeRateRepository) ListRatesByCurrency(ctx context.Context, currencyCode string, limit int) ([]domain.ExchangeRate, error) {
	query := `
		SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE currency_code = $1
		ORDER BY effective_date DESC
		LIMIT $2;
	`
	return findMany[models.ExchangeRate](ctx, r.Pool, "exchange rates", mapping.ToDomainExchangeRateSlice, query, currencyCode, limit)
}

// rateNotFound narrows a missing row to ErrRateNotFound.
func rateNotFound(err error) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.ErrRateNotFound
	}
	return err
}
