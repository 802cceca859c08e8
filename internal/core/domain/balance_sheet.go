package domain

import (
	"sort"

	"github.com/SscSPs/counterparty_portal/internal/apperrors"
	"github.com/shopspring/decimal"
)

// BalanceSheetCategory classifies a balance sheet line.
type BalanceSheetCategory string

const (
	CategoryAssets      BalanceSheetCategory = "assets"
	CategoryLiabilities BalanceSheetCategory = "liabilities"
	CategoryEquity      BalanceSheetCategory = "equity"
)

// BalanceSheetCategories lists categories in canonical display order.
var BalanceSheetCategories = []BalanceSheetCategory{CategoryAssets, CategoryLiabilities, CategoryEquity}

// Valid reports whether c is a known category.
func (c BalanceSheetCategory) Valid() bool {
	switch c {
	case CategoryAssets, CategoryLiabilities, CategoryEquity:
		return true
	}
	return false
}

func (c BalanceSheetCategory) rank() int {
	for i, k := range BalanceSheetCategories {
		if k == c {
			return i
		}
	}
	return len(BalanceSheetCategories)
}

const (
	MinBalanceSheetYear = 1900
	MaxBalanceSheetYear = 2100
)

// BalanceSheet is a counterparty's statement for one fiscal year. It is either
// reference-only (USD) or bound to a local currency and a specific rate row.
type BalanceSheet struct {
	BalanceSheetID    string  `json:"balanceSheetID"`
	CounterpartyID    string  `json:"counterpartyID"`
	Year              int     `json:"year"`
	ReferenceOnly     bool    `json:"referenceOnly"`
	LocalCurrencyCode *string `json:"localCurrencyCode,omitempty"`
	ExchangeRateID    *string `json:"exchangeRateID,omitempty"`
	SoftDelete
	AuditFields
}

// Validate checks the currency binding rules. rate is the row referenced by
// ExchangeRateID, or nil when none was resolved.
func (b BalanceSheet) Validate(rate *ExchangeRate) error {
	v := &apperrors.ValidationError{}

	if b.CounterpartyID == "" {
		v.Add("counterpartyID", "is required")
	}
	if b.Year < MinBalanceSheetYear || b.Year > MaxBalanceSheetYear {
		v.Add("year", "must be between 1900 and 2100")
	}

	hasLocal := b.LocalCurrencyCode != nil && *b.LocalCurrencyCode != ""
	hasRate := b.ExchangeRateID != nil && *b.ExchangeRateID != ""

	if b.ReferenceOnly {
		if hasLocal {
			v.Add("localCurrencyCode", "must be empty for a reference-only balance sheet")
		}
		if hasRate {
			v.Add("exchangeRateID", "must be empty for a reference-only balance sheet")
		}
		return v.OrNil()
	}

	if !hasLocal {
		v.Add("localCurrencyCode", "is required when the balance sheet is not reference-only")
	}
	if !hasRate {
		v.Add("exchangeRateID", "is required when the balance sheet is not reference-only")
	}
	if hasLocal && hasRate && rate != nil && rate.CurrencyCode != *b.LocalCurrencyCode {
		v.Add("exchangeRateID", "must belong to the local currency "+*b.LocalCurrencyCode)
	}
	return v.OrNil()
}

// ConvertToLocal turns a reference amount into local currency using the bound rate.
// The rate states reference units per local unit, so the amount is divided.
func (b BalanceSheet) ConvertToLocal(amountRef decimal.Decimal, rate *ExchangeRate) (decimal.Decimal, error) {
	if b.ReferenceOnly || rate == nil {
		return decimal.Zero, apperrors.ErrConversionUnavailable
	}
	if !rate.RateToReference.IsPositive() {
		return decimal.Zero, apperrors.ErrConversionUnavailable
	}
	return amountRef.DivRound(rate.RateToReference, AmountScale), nil
}

// BalanceSheetItem is one line of a balance sheet. AmountLocal is a snapshot
// entered by the user and never recomputed from the rate.
type BalanceSheetItem struct {
	ItemID         string               `json:"itemID"`
	BalanceSheetID string               `json:"balanceSheetID"`
	Category       BalanceSheetCategory `json:"category"`
	Description    string               `json:"description"`
	Note           string               `json:"note,omitempty"`
	AmountRef      decimal.Decimal      `json:"amountRef"`
	AmountLocal    *decimal.Decimal     `json:"amountLocal,omitempty"`
	DisplayOrder   int                  `json:"displayOrder"`
	SoftDelete
	AuditFields
}

// Normalize rounds monetary fields to the stored precision.
func (i *BalanceSheetItem) Normalize() {
	i.AmountRef = RoundAmount(i.AmountRef)
	if i.AmountLocal != nil {
		local := RoundAmount(*i.AmountLocal)
		i.AmountLocal = &local
	}
}

// Validate checks the item against the sheet it belongs to.
func (i BalanceSheetItem) Validate(sheet BalanceSheet) error {
	v := &apperrors.ValidationError{}
	if !i.Category.Valid() {
		v.Add("category", "must be one of assets, liabilities, equity")
	}
	if i.Description == "" {
		v.Add("description", "is required")
	}
	if i.AmountRef.IsNegative() {
		v.Add("amountRef", "must be greater than or equal to zero")
	}
	if i.DisplayOrder < 0 {
		v.Add("displayOrder", "must not be negative")
	}
	if sheet.ReferenceOnly && i.AmountLocal != nil {
		v.Add("amountLocal", "must be empty on a reference-only balance sheet")
	} else if i.AmountLocal != nil && i.AmountLocal.IsNegative() {
		v.Add("amountLocal", "must be greater than or equal to zero")
	}
	return v.OrNil()
}

// SortItems orders items by category, display order, then description.
func SortItems(items []BalanceSheetItem) {
	sort.SliceStable(items, func(a, b int) bool {
		x, y := items[a], items[b]
		if x.Category != y.Category {
			return x.Category.rank() < y.Category.rank()
		}
		if x.DisplayOrder != y.DisplayOrder {
			return x.DisplayOrder < y.DisplayOrder
		}
		return x.Description < y.Description
	})
}

// TotalForCategory sums the reference amount of active items in a category.
func TotalForCategory(items []BalanceSheetItem, category BalanceSheetCategory) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		if it.IsActive() && it.Category == category {
			total = total.Add(it.AmountRef)
		}
	}
	return total
}

// CategoryTotal is a per-category sum, with the local equivalent when known.
type CategoryTotal struct {
	Category   BalanceSheetCategory `json:"category"`
	TotalRef   decimal.Decimal      `json:"totalRef"`
	TotalLocal *decimal.Decimal     `json:"totalLocal,omitempty"`
	ItemCount  int                  `json:"itemCount"`
}

// BalanceSheetSummary aggregates a sheet for display.
type BalanceSheetSummary struct {
	BalanceSheet     BalanceSheet       `json:"balanceSheet"`
	Rate             *ExchangeRate      `json:"rate,omitempty"`
	Items            []BalanceSheetItem `json:"items"`
	Totals           []CategoryTotal    `json:"totals"`
	TotalAssets      decimal.Decimal    `json:"totalAssets"`
	TotalLiabilities decimal.Decimal    `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal    `json:"totalEquity"`

	// Difference is assets minus liabilities minus equity; zero when the sheet balances.
	Difference decimal.Decimal `json:"difference"`
}

// Balanced reports whether assets equal liabilities plus equity.
func (s BalanceSheetSummary) Balanced() bool {
	return s.Difference.IsZero()
}

// Summarize builds the display summary from a sheet, its items and bound rate.
func Summarize(sheet BalanceSheet, items []BalanceSheetItem, rate *ExchangeRate) BalanceSheetSummary {
	active := FilterActive(items, ActiveOnly)
	SortItems(active)

	summary := BalanceSheetSummary{
		BalanceSheet: sheet,
		Rate:         rate,
		Items:        active,
	}
	for _, cat := range BalanceSheetCategories {
		total := TotalForCategory(active, cat)
		ct := CategoryTotal{Category: cat, TotalRef: total}
		for _, it := range active {
			if it.Category == cat {
				ct.ItemCount++
			}
		}
		if local, err := sheet.ConvertToLocal(total, rate); err == nil {
			ct.TotalLocal = &local
		}
		summary.Totals = append(summary.Totals, ct)

		switch cat {
		case CategoryAssets:
			summary.TotalAssets = total
		case CategoryLiabilities:
			summary.TotalLiabilities = total
		case CategoryEquity:
			summary.TotalEquity = total
		}
	}
	summary.Difference = summary.TotalAssets.Sub(summary.TotalLiabilities).Sub(summary.TotalEquity)
	return summary
}
