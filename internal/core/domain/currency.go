package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReferenceCurrency is the currency every exchange rate is quoted against.
const ReferenceCurrency = "USD"

// RateScale is the number of decimal places stored for exchange rates.
const RateScale = 6

// AmountScale is the number of decimal places stored for monetary amounts.
const AmountScale = 2

// Currency represents a supported currency in the domain.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // Primary Key (e.g., "COP")
	Symbol       string `json:"symbol"`       // e.g., "$"
	Name         string `json:"name"`         // e.g., "Colombian Peso"
	IsActive     bool   `json:"isActive"`
	AuditFields
}

// ExchangeRate states how many units of the reference currency one unit of
// CurrencyCode is worth on EffectiveDate. Rates are immutable once stored.
type ExchangeRate struct {
	ExchangeRateID  string          `json:"exchangeRateID"`
	CurrencyCode    string          `json:"currencyCode"`
	RateToReference decimal.Decimal `json:"rateToReference"`
	EffectiveDate   time.Time       `json:"effectiveDate"`
	AuditFields
}

// RoundRate normalises a rate to the stored precision.
func RoundRate(rate decimal.Decimal) decimal.Decimal {
	return rate.Round(RateScale)
}

// RoundAmount normalises an amount to the stored precision.
func RoundAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(AmountScale)
}
