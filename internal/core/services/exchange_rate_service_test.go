package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/counterparty_portal/internal/apperrors"
	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	portssvc "github.com/SscSPs/counterparty_portal/internal/core/ports/services"
	"github.com/SscSPs/counterparty_portal/internal/core/services"
	"github.com/SscSPs/counterparty_portal/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func copRate() *domain.ExchangeRate {
	return &domain.ExchangeRate{
		ExchangeRateID:  "rate-cop-2024-06",
		CurrencyCode:    "COP",
		RateToReference: decimal.RequireFromString("0.00024"),
		EffectiveDate:   day(2024, 6, 1),
	}
}

// --- Test Suite ---
type ExchangeRateServiceTestSuite struct {
	suite.Suite
	mockRateRepo     *MockExchangeRateRepository
	mockCurrencyRepo *MockCurrencyRepository
	service          portssvc.ExchangeRateSvcFacade
}

func (suite *ExchangeRateServiceTestSuite) SetupTest() {
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.service = services.NewExchangeRateService(suite.mockRateRepo, suite.mockCurrencyRepo, testOptions()...)
}

func (suite *ExchangeRateServiceTestSuite) TestRegisterRate_Success() {
	ctx := context.Background()
	req := dto.RegisterExchangeRateRequest{
		CurrencyCode:    "cop",
		RateToReference: decimal.RequireFromString("0.000240123"),
		EffectiveDate:   time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC),
	}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "COP").Return(&domain.Currency{CurrencyCode: "COP", IsActive: true}, nil).Once()
	suite.mockRateRepo.On("FindRateOn", ctx, "COP", day(2024, 6, 1)).Return(nil, apperrors.ErrRateNotFound).Once()
	suite.mockRateRepo.On("SaveExchangeRate", ctx, mock.MatchedBy(func(r domain.ExchangeRate) bool {
		return r.CurrencyCode == "COP" &&
			r.EffectiveDate.Equal(day(2024, 6, 1)) &&
			r.RateToReference.Equal(decimal.RequireFromString("0.00024")) &&
			r.ExchangeRateID != ""
	})).Return(nil).Once()

	rate, err := suite.service.RegisterRate(ctx, req, domain.Actor{UserID: "u1"})

	suite.Require().NoError(err)
	suite.Require().NotNil(rate)
	suite.Equal("COP", rate.CurrencyCode)
	suite.Equal("u1", rate.CreatedBy)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestRegisterRate_DuplicateDay() {
	ctx := context.Background()
	req := dto.RegisterExchangeRateRequest{
		CurrencyCode:    "COP",
		RateToReference: decimal.RequireFromString("0.00025"),
		EffectiveDate:   day(2024, 6, 1),
	}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "COP").Return(&domain.Currency{CurrencyCode: "COP"}, nil).Once()
	suite.mockRateRepo.On("FindRateOn", ctx, "COP", day(2024, 6, 1)).Return(copRate(), nil).Once()

	rate, err := suite.service.RegisterRate(ctx, req, domain.Actor{UserID: "u1"})

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "SaveExchangeRate", mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestRegisterRate_Validation() {
	ctx := context.Background()
	tests := []struct {
		name  string
		req   dto.RegisterExchangeRateRequest
		field string
	}{
		{"zero rate", dto.RegisterExchangeRateRequest{CurrencyCode: "COP", RateToReference: decimal.Zero, EffectiveDate: day(2024, 6, 1)}, "rateToReference"},
		{"negative rate", dto.RegisterExchangeRateRequest{CurrencyCode: "COP", RateToReference: decimal.NewFromInt(-1), EffectiveDate: day(2024, 6, 1)}, "rateToReference"},
		{"missing date", dto.RegisterExchangeRateRequest{CurrencyCode: "COP", RateToReference: decimal.NewFromInt(1)}, "effectiveDate"},
		{"reference currency", dto.RegisterExchangeRateRequest{CurrencyCode: "usd", RateToReference: decimal.NewFromInt(1), EffectiveDate: day(2024, 6, 1)}, "currencyCode"},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.RegisterRate(ctx, tt.req, domain.Actor{UserID: "u1"})

			suite.Require().ErrorIs(err, apperrors.ErrValidation)
			fields, ok := apperrors.FieldErrors(err)
			suite.Require().True(ok)
			suite.Contains(fields, tt.field)
		})
	}
}

func (suite *ExchangeRateServiceTestSuite) TestRegisterRate_UnknownCurrency() {
	ctx := context.Background()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "XXX").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.RegisterRate(ctx, dto.RegisterExchangeRateRequest{
		CurrencyCode:    "XXX",
		RateToReference: decimal.NewFromInt(2),
		EffectiveDate:   day(2024, 6, 1),
	}, domain.Actor{UserID: "u1"})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	fields, _ := apperrors.FieldErrors(err)
	suite.Contains(fields, "currencyCode")
}

func (suite *ExchangeRateServiceTestSuite) TestGetRate_UsesMostRecentPriorRate() {
	ctx := context.Background()
	suite.mockRateRepo.On("FindRateOnOrBefore", ctx, "COP", day(2024, 7, 1)).Return(copRate(), nil).Once()

	rate, err := suite.service.GetRate(ctx, "cop", time.Date(2024, 7, 1, 18, 0, 0, 0, time.UTC), false)

	suite.Require().NoError(err)
	suite.Equal("rate-cop-2024-06", rate.ExchangeRateID)
	suite.True(rate.EffectiveDate.Equal(day(2024, 6, 1)))
}

func (suite *ExchangeRateServiceTestSuite) TestGetRate_ExactDateMiss() {
	ctx := context.Background()
	suite.mockRateRepo.On("FindRateOn", ctx, "COP", day(2024, 7, 1)).Return(nil, apperrors.ErrRateNotFound).Once()

	rate, err := suite.service.GetRate(ctx, "COP", day(2024, 7, 1), true)

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrRateNotFound)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "FindRateOnOrBefore", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestGetRate_RepoErrorPassesThrough() {
	ctx := context.Background()
	repoErr := errors.New("timeout")
	suite.mockRateRepo.On("FindRateOnOrBefore", ctx, "COP", day(2024, 7, 1)).Return(nil, repoErr).Once()

	_, err := suite.service.GetRate(ctx, "COP", day(2024, 7, 1), false)

	suite.ErrorIs(err, repoErr)
	suite.False(errors.Is(err, apperrors.ErrRateNotFound))
}

func (suite *ExchangeRateServiceTestSuite) TestListRates_DefaultLimit() {
	ctx := context.Background()
	suite.mockRateRepo.On("ListRatesByCurrency", ctx, "COP", 50).Return(nil, nil).Once()

	rates, err := suite.service.ListRates(ctx, "cop", 0)

	suite.Require().NoError(err)
	suite.NotNil(rates)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func TestExchangeRateService(t *testing.T) {
	suite.Run(t, new(ExchangeRateServiceTestSuite))
}
