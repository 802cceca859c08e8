package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/counterparty_portal/internal/apperrors"
	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	"github.com/SscSPs/counterparty_portal/internal/core/lifecycle"
	portsrepo "github.com/SscSPs/counterparty_portal/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/counterparty_portal/internal/core/ports/services"
	"github.com/SscSPs/counterparty_portal/internal/dto"
	"github.com/google/uuid"
)

// exchangeRateService is the currency ledger: append-only daily rates of each
// currency against USD.
type exchangeRateService struct {
	BaseService
	rateRepo     portsrepo.ExchangeRateRepositoryFacade
	currencyRepo portsrepo.CurrencyReader
}

// NewExchangeRateService creates a new exchange rate service.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, currencyRepo portsrepo.CurrencyReader, opts ...Option) portssvc.ExchangeRateSvcFacade {
	return &exchangeRateService{
		BaseService:  newBaseService(opts),
		rateRepo:     rateRepo,
		currencyRepo: currencyRepo,
	}
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

// RegisterRate handles the creation of a new exchange rate.
func (s *exchangeRateService) RegisterRate(ctx context.Context, req dto.RegisterExchangeRateRequest, actor domain.Actor) (*domain.ExchangeRate, error) {
	code := strings.ToUpper(strings.TrimSpace(req.CurrencyCode))

	v := &apperrors.ValidationError{}
	if !req.RateToReference.IsPositive() {
		v.Add("rateToReference", "must be greater than zero")
	}
	if req.EffectiveDate.IsZero() {
		v.Add("effectiveDate", "is required")
	}
	if code == domain.ReferenceCurrency {
		v.Add("currencyCode", "the reference currency has no rate")
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, code); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError("currencyCode", fmt.Sprintf("currency %s does not exist", code))
		}
		s.LogError(ctx, err, "Failed to validate currency", slog.String("currency_code", code))
		return nil, err
	}

	effective := lifecycle.Date(req.EffectiveDate)
	if existing, err := s.rateRepo.FindRateOn(ctx, code, effective); err == nil && existing != nil {
		return nil, fmt.Errorf("rate for %s on %s: %w", code, effective.Format("2006-01-02"), apperrors.ErrDuplicate)
	} else if err != nil && !errors.Is(err, apperrors.ErrRateNotFound) {
		s.LogError(ctx, err, "Failed to check existing rate", slog.String("currency_code", code))
		return nil, err
	}

	rate := domain.ExchangeRate{
		ExchangeRateID:  uuid.NewString(),
		CurrencyCode:    code,
		RateToReference: domain.RoundRate(req.RateToReference),
		EffectiveDate:   effective,
		AuditFields:     domain.NewAuditFields(actor.UserID, s.Now()),
	}

	if err := s.rateRepo.SaveExchangeRate(ctx, rate); err != nil {
		s.LogError(ctx, err, "Failed to save exchange rate",
			slog.String("currency_code", code),
			slog.Time("effective_date", effective))
		return nil, err
	}

	s.Metrics.IncrementRecordsCreated("exchange_rate")
	s.LogInfo(ctx, "Exchange rate registered",
		slog.String("exchange_rate_id", rate.ExchangeRateID),
		slog.String("currency_code", code),
		slog.String("rate", rate.RateToReference.String()))
	return &rate, nil
}

// GetRate resolves the rate of currencyCode on asOf.
func (s *exchangeRateService) GetRate(ctx context.Context, currencyCode string, asOf time.Time, exact bool) (*domain.ExchangeRate, error) {
	code := strings.ToUpper(strings.TrimSpace(currencyCode))
	day := lifecycle.Date(asOf)

	var (
		rate *domain.ExchangeRate
		err  error
	)
	if exact {
		rate, err = s.rateRepo.FindRateOn(ctx, code, day)
	} else {
		rate, err = s.rateRepo.FindRateOnOrBefore(ctx, code, day)
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrRateNotFound) {
			s.Metrics.IncrementRateLookup("miss")
			return nil, fmt.Errorf("no rate for %s as of %s: %w", code, day.Format("2006-01-02"), err)
		}
		s.LogError(ctx, err, "Failed to look up exchange rate", slog.String("currency_code", code))
		return nil, err
	}
	s.Metrics.IncrementRateLookup("hit")
	return rate, nil
}

func (s *exchangeRateService) GetExchangeRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error) {
	rate, err := s.rateRepo.FindExchangeRateByID(ctx, rateID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get exchange rate", slog.String("exchange_rate_id", rateID))
		}
		return nil, err
	}
	return rate, nil
}

func (s *exchangeRateService) ListRates(ctx context.Context, currencyCode string, limit int) ([]domain.ExchangeRate, error) {
	if limit <= 0 {
		limit = 50
	}
	rates, err := s.rateRepo.ListRatesByCurrency(ctx, strings.ToUpper(currencyCode), limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list exchange rates", slog.String("currency_code", currencyCode))
		return nil, err
	}
	if rates == nil {
		return []domain.ExchangeRate{}, nil
	}
	return rates, nil
}
