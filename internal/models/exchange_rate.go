package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate stores the value of one unit of a currency in the reference currency on a date.
type ExchangeRate struct {
	ExchangeRateID  string          `db:"exchange_rate_id"`
	CurrencyCode    string          `db:"currency_code"`
	RateToReference decimal.Decimal `db:"rate_to_reference"`
	EffectiveDate   time.Time       `db:"effective_date"`
	AuditFields
}
