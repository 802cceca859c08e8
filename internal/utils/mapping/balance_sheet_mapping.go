package mapping

import (
	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	"github.com/SscSPs/counterparty_portal/internal/models"
)

// ToModelBalanceSheet converts a domain BalanceSheet to a model BalanceSheet
func ToModelBalanceSheet(d domain.BalanceSheet) models.BalanceSheet {
	return models.BalanceSheet{
		BalanceSheetID:    d.BalanceSheetID,
		CounterpartyID:    d.CounterpartyID,
		Year:              int32(d.Year),
		ReferenceOnly:     d.ReferenceOnly,
		LocalCurrencyCode: d.LocalCurrencyCode,
		ExchangeRateID:    d.ExchangeRateID,
		SoftDelete:        ToModelSoftDelete(d.SoftDelete),
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBalanceSheet converts a model BalanceSheet to a domain BalanceSheet
func ToDomainBalanceSheet(m models.BalanceSheet) domain.BalanceSheet {
	return domain.BalanceSheet{
		BalanceSheetID:    m.BalanceSheetID,
		CounterpartyID:    m.CounterpartyID,
		Year:              int(m.Year),
		ReferenceOnly:     m.ReferenceOnly,
		LocalCurrencyCode: m.LocalCurrencyCode,
		ExchangeRateID:    m.ExchangeRateID,
		SoftDelete:        ToDomainSoftDelete(m.SoftDelete),
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainBalanceSheetSlice(ms []models.BalanceSheet) []domain.BalanceSheet {
	return mapSlice(ms, ToDomainBalanceSheet)
}

// ToModelBalanceSheetItem converts a domain BalanceSheetItem to a model BalanceSheetItem
func ToModelBalanceSheetItem(d domain.BalanceSheetItem) models.BalanceSheetItem {
	return models.BalanceSheetItem{
		ItemID:         d.ItemID,
		BalanceSheetID: d.BalanceSheetID,
		Category:       string(d.Category),
		Description:    d.Description,
		Note:           d.Note,
		AmountRef:      d.AmountRef,
		AmountLocal:    d.AmountLocal,
		DisplayOrder:   int32(d.DisplayOrder),
		SoftDelete:     ToModelSoftDelete(d.SoftDelete),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBalanceSheetItem converts a model BalanceSheetItem to a domain BalanceSheetItem
func ToDomainBalanceSheetItem(m models.BalanceSheetItem) domain.BalanceSheetItem {
	return domain.BalanceSheetItem{
		ItemID:         m.ItemID,
		BalanceSheetID: m.BalanceSheetID,
		Category:       domain.BalanceSheetCategory(m.Category),
		Description:    m.Description,
		Note:           m.Note,
		AmountRef:      m.AmountRef,
		AmountLocal:    m.AmountLocal,
		DisplayOrder:   int(m.DisplayOrder),
		SoftDelete:     ToDomainSoftDelete(m.SoftDelete),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainBalanceSheetItemSlice(ms []models.BalanceSheetItem) []domain.BalanceSheetItem {
	return mapSlice(ms, ToDomainBalanceSheetItem)
}
