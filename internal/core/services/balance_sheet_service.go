package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/counterparty_portal/internal/apperrors"
	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/counterparty_portal/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/counterparty_portal/internal/core/ports/services"
	"github.com/SscSPs/counterparty_portal/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	kindBalanceSheet     = "balance_sheet"
	kindBalanceSheetItem = "balance_sheet_item"
)

type balanceSheetService struct {
	BaseService
	sheetRepo        portsrepo.BalanceSheetRepositoryFacade
	rateRepo         portsrepo.ExchangeRateReader
	currencyRepo     portsrepo.CurrencyReader
	counterpartyRepo portsrepo.CounterpartyReader
}

// NewBalanceSheetService creates the balance sheet engine.
func NewBalanceSheetService(
	sheetRepo portsrepo.BalanceSheetRepositoryFacade,
	rateRepo portsrepo.ExchangeRateReader,
	currencyRepo portsrepo.CurrencyReader,
	counterpartyRepo portsrepo.CounterpartyReader,
	opts ...Option,
) portssvc.BalanceSheetSvcFacade {
	return &balanceSheetService{
		BaseService:      newBaseService(opts),
		sheetRepo:        sheetRepo,
		rateRepo:         rateRepo,
		currencyRepo:     currencyRepo,
		counterpartyRepo: counterpartyRepo,
	}
}

var _ portssvc.BalanceSheetSvcFacade = (*balanceSheetService)(nil)

func (s *balanceSheetService) CreateBalanceSheet(ctx context.Context, counterpartyID string, req dto.CreateBalanceSheetRequest, actor domain.Actor) (*domain.BalanceSheet, error) {
	if _, err := s.counterpartyRepo.FindCounterpartyByID(ctx, counterpartyID); err != nil {
		return nil, err
	}

	if existing, err := s.sheetRepo.FindBalanceSheetByYear(ctx, counterpartyID, req.Year); err == nil && existing != nil {
		return nil, fmt.Errorf("balance sheet %d for counterparty %s: %w", req.Year, counterpartyID, apperrors.ErrDuplicate)
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check balance sheet year", slog.String("counterparty_id", counterpartyID))
		return nil, err
	}

	sheet := domain.BalanceSheet{
		BalanceSheetID:    uuid.NewString(),
		CounterpartyID:    counterpartyID,
		Year:              req.Year,
		ReferenceOnly:     req.ReferenceOnly,
		LocalCurrencyCode: upperPtr(req.LocalCurrencyCode),
		ExchangeRateID:    req.ExchangeRateID,
		SoftDelete:        domain.Activated(),
		AuditFields:       domain.NewAuditFields(actor.UserID, s.Now()),
	}

	if err := s.validateSheet(ctx, sheet); err != nil {
		return nil, err
	}

	if err := s.sheetRepo.SaveBalanceSheet(ctx, sheet); err != nil {
		s.LogError(ctx, err, "Failed to save balance sheet",
			slog.String("counterparty_id", counterpartyID),
			slog.Int("year", req.Year))
		return nil, err
	}

	s.Metrics.IncrementRecordsCreated(kindBalanceSheet)
	s.LogInfo(ctx, "Balance sheet created",
		slog.String("balance_sheet_id", sheet.BalanceSheetID),
		slog.String("counterparty_id", counterpartyID),
		slog.Int("year", sheet.Year))
	return &sheet, nil
}

func (s *balanceSheetService) UpdateBalanceSheet(ctx context.Context, balanceSheetID string, req dto.UpdateBalanceSheetRequest, actor domain.Actor) (*domain.BalanceSheet, error) {
	sheet, err := s.GetBalanceSheet(ctx, balanceSheetID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeMutation(ctx, actor, sheet, kindBalanceSheet, balanceSheetID); err != nil {
		return nil, err
	}

	if req.ReferenceOnly != nil {
		sheet.ReferenceOnly = *req.ReferenceOnly
	}
	if req.LocalCurrencyCode != nil {
		sheet.LocalCurrencyCode = upperPtr(req.LocalCurrencyCode)
	}
	if req.ExchangeRateID != nil {
		sheet.ExchangeRateID = req.ExchangeRateID
	}
	if sheet.ReferenceOnly && req.LocalCurrencyCode == nil && req.ExchangeRateID == nil {
		sheet.LocalCurrencyCode = nil
		sheet.ExchangeRateID = nil
	}

	if err := s.validateSheet(ctx, *sheet); err != nil {
		return nil, err
	}

	if sheet.ReferenceOnly {
		items, err := s.sheetRepo.ListItems(ctx, balanceSheetID, domain.ActiveOnly)
		if err != nil {
			return nil, err
		}
		for _, it := range items {
			if it.AmountLocal != nil {
				return nil, apperrors.NewValidationError("referenceOnly", "items with local amounts must be cleared first")
			}
		}
	}

	sheet.Touch(actor.UserID, s.Now())
	if err := s.sheetRepo.UpdateBalanceSheet(ctx, *sheet); err != nil {
		s.LogError(ctx, err, "Failed to update balance sheet", slog.String("balance_sheet_id", balanceSheetID))
		return nil, err
	}
	return sheet, nil
}

func (s *balanceSheetService) DeactivateBalanceSheet(ctx context.Context, balanceSheetID string, actor domain.Actor) error {
	sheet, err := s.GetBalanceSheet(ctx, balanceSheetID)
	if err != nil {
		return err
	}
	if err := s.AuthorizeMutation(ctx, actor, sheet, kindBalanceSheet, balanceSheetID); err != nil {
		return err
	}

	now := s.Now()
	sheet.Deactivate(actor.UserID, now)
	sheet.Touch(actor.UserID, now)
	if err := s.sheetRepo.UpdateBalanceSheet(ctx, *sheet); err != nil {
		s.LogError(ctx, err, "Failed to deactivate balance sheet", slog.String("balance_sheet_id", balanceSheetID))
		return err
	}
	s.Metrics.IncrementRecordsRemoved(kindBalanceSheet)
	return nil
}

func (s *balanceSheetService) GetBalanceSheet(ctx context.Context, balanceSheetID string) (*domain.BalanceSheet, error) {
	sheet, err := s.sheetRepo.FindBalanceSheetByID(ctx, balanceSheetID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get balance sheet", slog.String("balance_sheet_id", balanceSheetID))
		}
		return nil, err
	}
	return sheet, nil
}

func (s *balanceSheetService) ListBalanceSheets(ctx context.Context, counterpartyID string, vis domain.Visibility) ([]domain.BalanceSheet, error) {
	sheets, err := s.sheetRepo.ListBalanceSheets(ctx, counterpartyID, vis)
	if err != nil {
		s.LogError(ctx, err, "Failed to list balance sheets", slog.String("counterparty_id", counterpartyID))
		return nil, err
	}
	return domain.FilterActive(sheets, vis), nil
}

func (s *balanceSheetService) AddItem(ctx context.Context, balanceSheetID string, req dto.CreateBalanceSheetItemRequest, actor domain.Actor) (*domain.BalanceSheetItem, error) {
	sheet, err := s.activeSheet(ctx, balanceSheetID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeMutation(ctx, actor, sheet, kindBalanceSheet, balanceSheetID); err != nil {
		return nil, err
	}

	item := domain.BalanceSheetItem{
		ItemID:         uuid.NewString(),
		BalanceSheetID: balanceSheetID,
		Category:       domain.BalanceSheetCategory(req.Category),
		Description:    strings.TrimSpace(req.Description),
		Note:           req.Note,
		AmountRef:      req.AmountRef,
		AmountLocal:    req.AmountLocal,
		DisplayOrder:   req.DisplayOrder,
		SoftDelete:     domain.Activated(),
		AuditFields:    domain.NewAuditFields(actor.UserID, s.Now()),
	}
	item.Normalize()
	if err := item.Validate(*sheet); err != nil {
		return nil, err
	}

	if err := s.sheetRepo.SaveItem(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to save balance sheet item", slog.String("balance_sheet_id", balanceSheetID))
		return nil, err
	}
	s.Metrics.IncrementRecordsCreated(kindBalanceSheetItem)
	return &item, nil
}

func (s *balanceSheetService) UpdateItem(ctx context.Context, itemID string, req dto.UpdateBalanceSheetItemRequest, actor domain.Actor) (*domain.BalanceSheetItem, error) {
	item, err := s.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeMutation(ctx, actor, item, kindBalanceSheetItem, itemID); err != nil {
		return nil, err
	}
	sheet, err := s.activeSheet(ctx, item.BalanceSheetID)
	if err != nil {
		return nil, err
	}

	if req.Category != nil {
		item.Category = domain.BalanceSheetCategory(*req.Category)
	}
	if req.Description != nil {
		item.Description = strings.TrimSpace(*req.Description)
	}
	if req.Note != nil {
		item.Note = *req.Note
	}
	if req.AmountRef != nil {
		item.AmountRef = *req.AmountRef
	}
	if req.AmountLocal != nil {
		item.AmountLocal = req.AmountLocal
	}
	if req.ClearAmountLocal {
		item.AmountLocal = nil
	}
	if req.DisplayOrder != nil {
		item.DisplayOrder = *req.DisplayOrder
	}
	item.Normalize()
	if err := item.Validate(*sheet); err != nil {
		return nil, err
	}

	item.Touch(actor.UserID, s.Now())
	if err := s.sheetRepo.UpdateItem(ctx, *item); err != nil {
		s.LogError(ctx, err, "Failed to update balance sheet item", slog.String("item_id", itemID))
		return nil, err
	}
	return item, nil
}

func (s *balanceSheetService) DeactivateItem(ctx context.Context, itemID string, actor domain.Actor) error {
	item, err := s.GetItem(ctx, itemID)
	if err != nil {
		return err
	}
	if err := s.AuthorizeMutation(ctx, actor, item, kindBalanceSheetItem, itemID); err != nil {
		return err
	}

	now := s.Now()
	item.Deactivate(actor.UserID, now)
	item.Touch(actor.UserID, now)
	if err := s.sheetRepo.UpdateItem(ctx, *item); err != nil {
		s.LogError(ctx, err, "Failed to deactivate balance sheet item", slog.String("item_id", itemID))
		return err
	}
	s.Metrics.IncrementRecordsRemoved(kindBalanceSheetItem)
	return nil
}

func (s *balanceSheetService) GetItem(ctx context.Context, itemID string) (*domain.BalanceSheetItem, error) {
	return s.sheetRepo.FindItemByID(ctx, itemID)
}

func (s *balanceSheetService) ListItems(ctx context.Context, balanceSheetID string, vis domain.Visibility) ([]domain.BalanceSheetItem, error) {
	if _, err := s.GetBalanceSheet(ctx, balanceSheetID); err != nil {
		return nil, err
	}
	items, err := s.sheetRepo.ListItems(ctx, balanceSheetID, vis)
	if err != nil {
		s.LogError(ctx, err, "Failed to list balance sheet items", slog.String("balance_sheet_id", balanceSheetID))
		return nil, err
	}
	items = domain.FilterActive(items, vis)
	domain.SortItems(items)
	return items, nil
}

func (s *balanceSheetService) TotalForCategory(ctx context.Context, balanceSheetID string, category domain.BalanceSheetCategory) (decimal.Decimal, error) {
	if !category.Valid() {
		return decimal.Zero, apperrors.NewValidationError("category", "must be one of assets, liabilities, equity")
	}
	items, err := s.ListItems(ctx, balanceSheetID, domain.ActiveOnly)
	if err != nil {
		return decimal.Zero, err
	}
	return domain.TotalForCategory(items, category), nil
}

func (s *balanceSheetService) ConvertToLocal(ctx context.Context, balanceSheetID string, amountRef decimal.Decimal) (decimal.Decimal, *domain.ExchangeRate, error) {
	sheet, err := s.GetBalanceSheet(ctx, balanceSheetID)
	if err != nil {
		return decimal.Zero, nil, err
	}
	if sheet.ReferenceOnly {
		return decimal.Zero, nil, fmt.Errorf("balance sheet %s: %w", balanceSheetID, apperrors.ErrConversionUnavailable)
	}
	rate, err := s.boundRate(ctx, *sheet)
	if err != nil {
		return decimal.Zero, nil, err
	}
	local, err := sheet.ConvertToLocal(amountRef, rate)
	if err != nil {
		return decimal.Zero, nil, err
	}
	return local, rate, nil
}

func (s *balanceSheetService) Summarize(ctx context.Context, balanceSheetID string) (*domain.BalanceSheetSummary, error) {
	sheet, err := s.GetBalanceSheet(ctx, balanceSheetID)
	if err != nil {
		return nil, err
	}
	rate, err := s.boundRate(ctx, *sheet)
	if err != nil {
		return nil, err
	}
	items, err := s.sheetRepo.ListItems(ctx, balanceSheetID, domain.ActiveOnly)
	if err != nil {
		s.LogError(ctx, err, "Failed to load items for summary", slog.String("balance_sheet_id", balanceSheetID))
		return nil, err
	}
	summary := domain.Summarize(*sheet, items, rate)
	return &summary, nil
}

// validateSheet resolves the referenced currency and rate and applies the binding rules.
func (s *balanceSheetService) validateSheet(ctx context.Context, sheet domain.BalanceSheet) error {
	v := &apperrors.ValidationError{}
	if sheet.LocalCurrencyCode != nil && !sheet.ReferenceOnly {
		if _, err := s.currencyRepo.FindCurrencyByCode(ctx, *sheet.LocalCurrencyCode); err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				return err
			}
			v.Add("localCurrencyCode", fmt.Sprintf("currency %s does not exist", *sheet.LocalCurrencyCode))
		}
	}
	rate, err := s.boundRate(ctx, sheet)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		v.Add("exchangeRateID", "does not exist")
	}
	if err := sheet.Validate(rate); err != nil {
		var ve *apperrors.ValidationError
		if !errors.As(err, &ve) {
			return err
		}
		for field, problems := range ve.Fields {
			for _, p := range problems {
				v.Add(field, p)
			}
		}
	}
	return v.OrNil()
}

// boundRate loads the rate row referenced by the sheet, or nil when none is bound.
func (s *balanceSheetService) boundRate(ctx context.Context, sheet domain.BalanceSheet) (*domain.ExchangeRate, error) {
	if sheet.ExchangeRateID == nil || *sheet.ExchangeRateID == "" {
		return nil, nil
	}
	return s.rateRepo.FindExchangeRateByID(ctx, *sheet.ExchangeRateID)
}

// activeSheet loads a sheet that still accepts item changes.
func (s *balanceSheetService) activeSheet(ctx context.Context, balanceSheetID string) (*domain.BalanceSheet, error) {
	sheet, err := s.GetBalanceSheet(ctx, balanceSheetID)
	if err != nil {
		return nil, err
	}
	if !sheet.IsActive() {
		return nil, apperrors.NewValidationError("balanceSheetID", "balance sheet is inactive")
	}
	return sheet, nil
}

func upperPtr(s *string) *string {
	if s == nil {
		return nil
	}
	u := strings.ToUpper(strings.TrimSpace(*s))
	if u == "" {
		return nil
	}
	return &u
}
