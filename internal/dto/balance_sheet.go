package dto

import (
	"time"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	"github.com/SscSPs/counterparty_portal/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateBalanceSheetRequest defines the data needed to create a balance sheet.
type CreateBalanceSheetRequest struct {
	Year              int     `json:"year" binding:"required,min=1900,max=2100"`
	ReferenceOnly     bool    `json:"referenceOnly"`
	LocalCurrencyCode *string `json:"localCurrencyCode" binding:"omitempty,currencycode"`
	ExchangeRateID    *string `json:"exchangeRateID" binding:"omitempty,uuid"`
}

// UpdateBalanceSheetRequest changes the currency binding of a sheet.
// Omitted fields keep their value.
type UpdateBalanceSheetRequest struct {
	ReferenceOnly     *bool   `json:"referenceOnly"`
	LocalCurrencyCode *string `json:"localCurrencyCode" binding:"omitempty,currencycode"`
	ExchangeRateID    *string `json:"exchangeRateID" binding:"omitempty,uuid"`
}

// CreateBalanceSheetItemRequest defines one balance sheet line.
type CreateBalanceSheetItemRequest struct {
	Category     string           `json:"category" binding:"required,oneof=assets liabilities equity"`
	Description  string           `json:"description" binding:"required,max=255"`
	Note         string           `json:"note" binding:"max=1000"`
	AmountRef    decimal.Decimal  `json:"amountRef"`
	AmountLocal  *decimal.Decimal `json:"amountLocal"`
	DisplayOrder int              `json:"displayOrder" binding:"min=0"`
}

// UpdateBalanceSheetItemRequest defines the updatable fields of an item.
type UpdateBalanceSheetItemRequest struct {
	Category     *string          `json:"category" binding:"omitempty,oneof=assets liabilities equity"`
	Description  *string          `json:"description" binding:"omitempty,max=255"`
	Note         *string          `json:"note" binding:"omitempty,max=1000"`
	AmountRef    *decimal.Decimal `json:"amountRef"`
	AmountLocal  *decimal.Decimal `json:"amountLocal"`
	DisplayOrder *int             `json:"displayOrder" binding:"omitempty,min=0"`

	// ClearAmountLocal removes the stored local amount.
	ClearAmountLocal bool `json:"clearAmountLocal"`
}

// ConvertAmountRequest asks for the local equivalent of a USD amount.
type ConvertAmountRequest struct {
	AmountRef decimal.Decimal `json:"amountRef" binding:"required"`
}

// CategoryTotalParams selects one category for a total.
type CategoryTotalParams struct {
	Category string `form:"category" binding:"required,oneof=assets liabilities equity"`
}

// BalanceSheetResponse defines the data returned for a balance sheet.
type BalanceSheetResponse struct {
	BalanceSheetID    string    `json:"balanceSheetID"`
	CounterpartyID    string    `json:"counterpartyID"`
	Year              int       `json:"year"`
	ReferenceOnly     bool      `json:"referenceOnly"`
	LocalCurrencyCode *string   `json:"localCurrencyCode,omitempty"`
	ExchangeRateID    *string   `json:"exchangeRateID,omitempty"`
	IsActive          bool      `json:"isActive"`
	CreatedAt         time.Time `json:"createdAt"`
	CreatedBy         string    `json:"createdBy"`
	LastUpdatedAt     time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy     string    `json:"lastUpdatedBy"`
}

// ToBalanceSheetResponse converts a domain.BalanceSheet to its DTO.
func ToBalanceSheetResponse(b *domain.BalanceSheet) BalanceSheetResponse {
	return BalanceSheetResponse{
		BalanceSheetID:    b.BalanceSheetID,
		CounterpartyID:    b.CounterpartyID,
		Year:              b.Year,
		ReferenceOnly:     b.ReferenceOnly,
		LocalCurrencyCode: b.LocalCurrencyCode,
		ExchangeRateID:    b.ExchangeRateID,
		IsActive:          b.IsActive(),
		CreatedAt:         b.CreatedAt,
		CreatedBy:         b.CreatedBy,
		LastUpdatedAt:     b.LastUpdatedAt,
		LastUpdatedBy:     b.LastUpdatedBy,
	}
}

// ToListBalanceSheetResponse converts a slice of balance sheets.
func ToListBalanceSheetResponse(sheets []domain.BalanceSheet) []BalanceSheetResponse {
	res := make([]BalanceSheetResponse, len(sheets))
	for i := range sheets {
		res[i] = ToBalanceSheetResponse(&sheets[i])
	}
	return res
}

// BalanceSheetItemResponse defines the data returned for an item.
type BalanceSheetItemResponse struct {
	ItemID         string           `json:"itemID"`
	BalanceSheetID string           `json:"balanceSheetID"`
	Category       string           `json:"category"`
	Description    string           `json:"description"`
	Note           string           `json:"note,omitempty"`
	AmountRef      decimal.Decimal  `json:"amountRef"`
	AmountLocal    *decimal.Decimal `json:"amountLocal,omitempty"`
	DisplayOrder   int              `json:"displayOrder"`
	IsActive       bool             `json:"isActive"`
	CreatedBy      string           `json:"createdBy"`
	LastUpdatedAt  time.Time        `json:"lastUpdatedAt"`
}

// ToBalanceSheetItemResponse converts a domain.BalanceSheetItem to its DTO.
func ToBalanceSheetItemResponse(it *domain.BalanceSheetItem) BalanceSheetItemResponse {
	return BalanceSheetItemResponse{
		ItemID:         it.ItemID,
		BalanceSheetID: it.BalanceSheetID,
		Category:       string(it.Category),
		Description:    it.Description,
		Note:           it.Note,
		AmountRef:      it.AmountRef,
		AmountLocal:    it.AmountLocal,
		DisplayOrder:   it.DisplayOrder,
		IsActive:       it.IsActive(),
		CreatedBy:      it.CreatedBy,
		LastUpdatedAt:  it.LastUpdatedAt,
	}
}

// ToListBalanceSheetItemResponse converts a slice of items.
func ToListBalanceSheetItemResponse(items []domain.BalanceSheetItem) []BalanceSheetItemResponse {
	res := make([]BalanceSheetItemResponse, len(items))
	for i := range items {
		res[i] = ToBalanceSheetItemResponse(&items[i])
	}
	return res
}

// AmountResponse is a monetary amount with its display string.
type AmountResponse struct {
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	Display      string          `json:"display"`
}

// NewAmountResponse formats amount in currencyCode.
func NewAmountResponse(amount decimal.Decimal, currencyCode string) AmountResponse {
	return AmountResponse{
		Amount:       amount,
		CurrencyCode: currencyCode,
		Display:      utils.FormatMoney(amount, currencyCode),
	}
}

// CategoryTotalResponse is the total of one category.
type CategoryTotalResponse struct {
	Category  string          `json:"category"`
	TotalRef  AmountResponse  `json:"totalRef"`
	Local     *AmountResponse `json:"totalLocal,omitempty"`
	ItemCount int             `json:"itemCount"`
}

// ConversionResponse is the result of converting a USD amount to the sheet currency.
type ConversionResponse struct {
	AmountRef      AmountResponse  `json:"amountRef"`
	AmountLocal    AmountResponse  `json:"amountLocal"`
	Rate           decimal.Decimal `json:"rate"`
	ExchangeRateID string          `json:"exchangeRateID"`
}

// BalanceSheetSummaryResponse is the display summary of a sheet.
type BalanceSheetSummaryResponse struct {
	BalanceSheet     BalanceSheetResponse       `json:"balanceSheet"`
	Rate             *ExchangeRateResponse      `json:"rate,omitempty"`
	Items            []BalanceSheetItemResponse `json:"items"`
	Totals           []CategoryTotalResponse    `json:"totals"`
	TotalAssets      AmountResponse             `json:"totalAssets"`
	TotalLiabilities AmountResponse             `json:"totalLiabilities"`
	TotalEquity      AmountResponse             `json:"totalEquity"`
	Difference       AmountResponse             `json:"difference"`
	Balanced         bool                       `json:"balanced"`
}

// ToBalanceSheetSummaryResponse converts a domain summary to its DTO.
func ToBalanceSheetSummaryResponse(s *domain.BalanceSheetSummary) BalanceSheetSummaryResponse {
	ref := domain.ReferenceCurrency
	res := BalanceSheetSummaryResponse{
		BalanceSheet:     ToBalanceSheetResponse(&s.BalanceSheet),
		Items:            ToListBalanceSheetItemResponse(s.Items),
		TotalAssets:      NewAmountResponse(s.TotalAssets, ref),
		TotalLiabilities: NewAmountResponse(s.TotalLiabilities, ref),
		TotalEquity:      NewAmountResponse(s.TotalEquity, ref),
		Difference:       NewAmountResponse(s.Difference, ref),
		Balanced:         s.Balanced(),
	}
	if s.Rate != nil {
		rate := ToExchangeRateResponse(s.Rate)
		res.Rate = &rate
	}
	for _, t := range s.Totals {
		ct := CategoryTotalResponse{
			Category:  string(t.Category),
			TotalRef:  NewAmountResponse(t.TotalRef, ref),
			ItemCount: t.ItemCount,
		}
		if t.TotalLocal != nil && s.BalanceSheet.LocalCurrencyCode != nil {
			local := NewAmountResponse(*t.TotalLocal, *s.BalanceSheet.LocalCurrencyCode)
			ct.Local = &local
		}
		res.Totals = append(res.Totals, ct)
	}
	return res
}
