package services

import (
	"context"
	"time"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	"github.com/SscSPs/counterparty_portal/internal/dto"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves currencies visible under vis.
	ListCurrencies(ctx context.Context, vis domain.Visibility) ([]domain.Currency, error)
}

// CurrencyWriterSvc defines write operations for currency data
type CurrencyWriterSvc interface {
	// CreateCurrency persists a new currency.
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, actor domain.Actor) (*domain.Currency, error)

	// UpdateCurrency changes symbol, name or active flag.
	UpdateCurrency(ctx context.Context, currencyCode string, req dto.UpdateCurrencyRequest, actor domain.Actor) (*domain.Currency, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// GetRate returns the rate of currencyCode on asOf. Without exact, the most
	// recent rate effective on or before asOf is used.
	GetRate(ctx context.Context, currencyCode string, asOf time.Time, exact bool) (*domain.ExchangeRate, error)

	// GetExchangeRateByID retrieves one rate row.
	GetExchangeRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error)

	// ListRates returns the latest rates of a currency, newest first.
	ListRates(ctx context.Context, currencyCode string, limit int) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rate data
type ExchangeRateWriterSvc interface {
	// RegisterRate stores a new rate. Rates are never updated.
	RegisterRate(ctx context.Context, req dto.RegisterExchangeRateRequest, actor domain.Actor) (*domain.ExchangeRate, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
