package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// FindExchangeRateByID retrieves a rate row by its ID.
	FindExchangeRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error)

	// FindRateOnOrBefore returns the rate with the latest effective date not after asOf.
	// It returns apperrors.ErrRateNotFound when none exists.
	FindRateOnOrBefore(ctx context.Context, currencyCode string, asOf time.Time) (*domain.ExchangeRate, error)

	// FindRateOn returns the rate effective exactly on date, or apperrors.ErrRateNotFound.
	FindRateOn(ctx context.Context, currencyCode string, date time.Time) (*domain.ExchangeRate, error)

	// ListRatesByCurrency returns the most recent rates first.
	ListRatesByCurrency(ctx context.Context, currencyCode string, limit int) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rate data.
// Rates are append-only: there is no update.
type ExchangeRateWriter interface {
	// SaveExchangeRate inserts a rate. A second rate for the same currency and
	// date yields apperrors.ErrDuplicate.
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
