package repositories

import (
	"context"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a specific currency by its code.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves currencies; inactive ones only when vis includes them.
	ListCurrencies(ctx context.Context, vis domain.Visibility) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency data
type CurrencyWriter interface {
	// SaveCurrency persists a new currency. A duplicate code yields apperrors.ErrDuplicate.
	SaveCurrency(ctx context.Context, currency domain.Currency) error

	// UpdateCurrency changes name, symbol and active flag.
	UpdateCurrency(ctx context.Context, currency domain.Currency) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
