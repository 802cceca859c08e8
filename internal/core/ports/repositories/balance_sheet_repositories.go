package repositories

import (
	"context"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
)

// BalanceSheetReader defines read operations for balance sheets and items
type BalanceSheetReader interface {
	FindBalanceSheetByID(ctx context.Context, balanceSheetID string) (*domain.BalanceSheet, error)

	// FindBalanceSheetByYear looks up the sheet of a counterparty for a year, active or not.
	FindBalanceSheetByYear(ctx context.Context, counterpartyID string, year int) (*domain.BalanceSheet, error)

	// ListBalanceSheets returns sheets newest year first.
	ListBalanceSheets(ctx context.Context, counterpartyID string, vis domain.Visibility) ([]domain.BalanceSheet, error)

	FindItemByID(ctx context.Context, itemID string) (*domain.BalanceSheetItem, error)

	// ListItems returns items in canonical order: category, display order, description.
	ListItems(ctx context.Context, balanceSheetID string, vis domain.Visibility) ([]domain.BalanceSheetItem, error)
}

// BalanceSheetWriter defines write operations for balance sheets and items
type BalanceSheetWriter interface {
	// SaveBalanceSheet inserts a sheet. A second sheet for the same counterparty
	// and year yields apperrors.ErrDuplicate.
	SaveBalanceSheet(ctx context.Context, sheet domain.BalanceSheet) error
	UpdateBalanceSheet(ctx context.Context, sheet domain.BalanceSheet) error
	SaveItem(ctx context.Context, item domain.BalanceSheetItem) error
	UpdateItem(ctx context.Context, item domain.BalanceSheetItem) error
}

// BalanceSheetRepositoryFacade combines all balance sheet-related repository interfaces
type BalanceSheetRepositoryFacade interface {
	BalanceSheetReader
	BalanceSheetWriter
}
