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
)

type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a new currency service.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade, opts ...Option) portssvc.CurrencySvcFacade {
	return &currencyService{
		BaseService:  newBaseService(opts),
		currencyRepo: currencyRepo,
	}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, actor domain.Actor) (*domain.Currency, error) {
	code := strings.ToUpper(strings.TrimSpace(req.CurrencyCode))

	if existing, err := s.currencyRepo.FindCurrencyByCode(ctx, code); err == nil && existing != nil {
		return nil, fmt.Errorf("currency %s: %w", code, apperrors.ErrDuplicate)
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check currency", slog.String("currency_code", code))
		return nil, err
	}

	currency := domain.Currency{
		CurrencyCode: code,
		Symbol:       req.Symbol,
		Name:         req.Name,
		IsActive:     true,
		AuditFields:  domain.NewAuditFields(actor.UserID, s.Now()),
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		s.LogError(ctx, err, "Failed to save currency", slog.String("currency_code", code))
		return nil, fmt.Errorf("failed to create currency: %w", err)
	}

	s.Metrics.IncrementRecordsCreated("currency")
	s.LogInfo(ctx, "Currency created", slog.String("currency_code", code))
	return &currency, nil
}

func (s *currencyService) UpdateCurrency(ctx context.Context, currencyCode string, req dto.UpdateCurrencyRequest, actor domain.Actor) (*domain.Currency, error) {
	currency, err := s.GetCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return nil, err
	}

	if req.Symbol != nil {
		currency.Symbol = *req.Symbol
	}
	if req.Name != nil {
		currency.Name = *req.Name
	}
	if req.IsActive != nil {
		currency.IsActive = *req.IsActive
	}
	currency.Touch(actor.UserID, s.Now())

	if err := s.currencyRepo.UpdateCurrency(ctx, *currency); err != nil {
		s.LogError(ctx, err, "Failed to update currency", slog.String("currency_code", currency.CurrencyCode))
		return nil, err
	}
	return currency, nil
}

func (s *currencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	code := strings.ToUpper(strings.TrimSpace(currencyCode))
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get currency", slog.String("currency_code", code))
		}
		return nil, err
	}
	return currency, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context, vis domain.Visibility) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx, vis)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currencies")
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}
