package dto

import (
	"time"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RegisterExchangeRateRequest defines the structure for registering a rate.
// RateToReference is the value of one unit of CurrencyCode in USD.
type RegisterExchangeRateRequest struct {
	CurrencyCode    string          `json:"currencyCode" binding:"required,currencycode"`
	RateToReference decimal.Decimal `json:"rateToReference" binding:"required"`
	EffectiveDate   time.Time       `json:"effectiveDate" binding:"required"`
}

// ExchangeRateLookupParams are the query parameters of a rate lookup.
type ExchangeRateLookupParams struct {
	AsOf  string `form:"asOf"`
	Exact bool   `form:"exact"`
}

// ListExchangeRatesParams defines query parameters for listing rates.
type ListExchangeRatesParams struct {
	Limit int `form:"limit,default=50" binding:"min=1,max=500"`
}

// ExchangeRateResponse defines the structure for API responses containing exchange rate details.
type ExchangeRateResponse struct {
	ExchangeRateID    string          `json:"exchangeRateID"`
	CurrencyCode      string          `json:"currencyCode"`
	ReferenceCurrency string          `json:"referenceCurrency"`
	RateToReference   decimal.Decimal `json:"rateToReference"`
	EffectiveDate     time.Time       `json:"effectiveDate"`
	CreatedAt         time.Time       `json:"createdAt"`
	CreatedBy         string          `json:"createdBy"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ExchangeRateID:    rate.ExchangeRateID,
		CurrencyCode:      rate.CurrencyCode,
		ReferenceCurrency: domain.ReferenceCurrency,
		RateToReference:   rate.RateToReference,
		EffectiveDate:     rate.EffectiveDate,
		CreatedAt:         rate.CreatedAt,
		CreatedBy:         rate.CreatedBy,
	}
}

// ToListExchangeRateResponse converts a slice of domain.ExchangeRate to a slice of ExchangeRateResponse DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToExchangeRateResponse(&rates[i])
	}
	return responses
}
