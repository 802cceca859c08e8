package models

import "github.com/shopspring/decimal"

// BalanceSheet is a row of balance_sheets.
type BalanceSheet struct {
	BalanceSheetID    string  `db:"balance_sheet_id"`
	CounterpartyID    string  `db:"counterparty_id"`
	Year              int32   `db:"year"`
	ReferenceOnly     bool    `db:"reference_only"`
	LocalCurrencyCode *string `db:"local_currency_code"`
	ExchangeRateID    *string `db:"exchange_rate_id"`
	SoftDelete
	AuditFields
}

// BalanceSheetItem is a row of balance_sheet_items.
type BalanceSheetItem struct {
	ItemID         string           `db:"item_id"`
	BalanceSheetID string           `db:"balance_sheet_id"`
	Category       string           `db:"category"`
	Description    string           `db:"description"`
	Note           string           `db:"note"`
	AmountRef      decimal.Decimal  `db:"amount_ref"`
	AmountLocal    *decimal.Decimal `db:"amount_local"`
	DisplayOrder   int32            `db:"display_order"`
	SoftDelete
	AuditFields
}
