package services

import (
	"context"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	"github.com/SscSPs/counterparty_portal/internal/dto"
	"github.com/shopspring/decimal"
)

// BalanceSheetReaderSvc defines read operations for balance sheets
type BalanceSheetReaderSvc interface {
	GetBalanceSheet(ctx context.Context, balanceSheetID string) (*domain.BalanceSheet, error)
	ListBalanceSheets(ctx context.Context, counterpartyID string, vis domain.Visibility) ([]domain.BalanceSheet, error)
	GetItem(ctx context.Context, itemID string) (*domain.BalanceSheetItem, error)

	// ListItems returns the items of a sheet in canonical order.
	ListItems(ctx context.Context, balanceSheetID string, vis domain.Visibility) ([]domain.BalanceSheetItem, error)
}

// BalanceSheetCalculatorSvc defines the derived computations on a sheet
type BalanceSheetCalculatorSvc interface {
	// TotalForCategory sums the USD amount of the active items in category.
	TotalForCategory(ctx context.Context, balanceSheetID string, category domain.BalanceSheetCategory) (decimal.Decimal, error)

	// ConvertToLocal converts a USD amount with the rate bound to the sheet.
	ConvertToLocal(ctx context.Context, balanceSheetID string, amountRef decimal.Decimal) (decimal.Decimal, *domain.ExchangeRate, error)

	// Summarize returns totals per category and the balance check.
	Summarize(ctx context.Context, balanceSheetID string) (*domain.BalanceSheetSummary, error)
}

// BalanceSheetWriterSvc defines write operations for balance sheets and items
type BalanceSheetWriterSvc interface {
	CreateBalanceSheet(ctx context.Context, counterpartyID string, req dto.CreateBalanceSheetRequest, actor domain.Actor) (*domain.BalanceSheet, error)
	UpdateBalanceSheet(ctx context.Context, balanceSheetID string, req dto.UpdateBalanceSheetRequest, actor domain.Actor) (*domain.BalanceSheet, error)
	DeactivateBalanceSheet(ctx context.Context, balanceSheetID string, actor domain.Actor) error

	AddItem(ctx context.Context, balanceSheetID string, req dto.CreateBalanceSheetItemRequest, actor domain.Actor) (*domain.BalanceSheetItem, error)
	UpdateItem(ctx context.Context, itemID string, req dto.UpdateBalanceSheetItemRequest, actor domain.Actor) (*domain.BalanceSheetItem, error)
	DeactivateItem(ctx context.Context, itemID string, actor domain.Actor) error
}

// BalanceSheetSvcFacade combines all balance sheet service interfaces
type BalanceSheetSvcFacade interface {
	BalanceSheetReaderSvc
	BalanceSheetCalculatorSvc
	BalanceSheetWriterSvc
}
