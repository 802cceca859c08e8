package mapping

import (
	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	"github.com/SscSPs/counterparty_portal/internal/models"
)

// ToModelExchangeRate converts a domain ExchangeRate to a model ExchangeRate
func ToModelExchangeRate(d domain.ExchangeRate) models.ExchangeRate {
	return models.ExchangeRate{
		ExchangeRateID:  d.ExchangeRateID,
		CurrencyCode:    d.CurrencyCode,
		RateToReference: d.RateToReference,
		EffectiveDate:   d.EffectiveDate,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExchangeRate converts a model ExchangeRate to a domain ExchangeRate
func ToDomainExchangeRate(m models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		ExchangeRateID:  m.ExchangeRateID,
		CurrencyCode:    m.CurrencyCode,
		RateToReference: m.RateToReference,
		EffectiveDate:   m.EffectiveDate.UTC(),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainExchangeRateSlice(ms []models.ExchangeRate) []domain.ExchangeRate {
	return mapSlice(ms, ToDomainExchangeRate)
}
