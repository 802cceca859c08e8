package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	portssvc "github.com/SscSPs/counterparty_portal/internal/core/ports/services"
	"github.com/SscSPs/counterparty_portal/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock BalanceSheetService ---
type MockBalanceSheetService struct {
	mock.Mock
}

func (m *MockBalanceSheetService) GetBalanceSheet(ctx context.Context, balanceSheetID string) (*domain.BalanceSheet, error) {
	args := m.Called(ctx, balanceSheetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheet), args.Error(1)
}

func (m *MockBalanceSheetService) ListBalanceSheets(ctx context.Context, counterpartyID string, vis domain.Visibility) ([]domain.BalanceSheet, error) {
	args := m.Called(ctx, counterpartyID, vis)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BalanceSheet), args.Error(1)
}

func (m *MockBalanceSheetService) GetItem(ctx context.Context, itemID string) (*domain.BalanceSheetItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheetItem), args.Error(1)
}

func (m *MockBalanceSheetService) ListItems(ctx context.Context, balanceSheetID string, vis domain.Visibility) ([]domain.BalanceSheetItem, error) {
	args := m.Called(ctx, balanceSheetID, vis)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BalanceSheetItem), args.Error(1)
}

func (m *MockBalanceSheetService) TotalForCategory(ctx context.Context, balanceSheetID string, category domain.BalanceSheetCategory) (decimal.Decimal, error) {
	args := m.Called(ctx, balanceSheetID, category)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockBalanceSheetService) ConvertToLocal(ctx context.Context, balanceSheetID string, amountRef decimal.Decimal) (decimal.Decimal, *domain.ExchangeRate, error) {
	args := m.Called(ctx, balanceSheetID, amountRef)
	if args.Get(1) == nil {
		return args.Get(0).(decimal.Decimal), nil, args.Error(2)
	}
	return args.Get(0).(decimal.Decimal), args.Get(1).(*domain.ExchangeRate), args.Error(2)
}

func (m *MockBalanceSheetService) Summarize(ctx context.Context, balanceSheetID string) (*domain.BalanceSheetSummary, error) {
	args := m.Called(ctx, balanceSheetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheetSummary), args.Error(1)
}

func (m *MockBalanceSheetService) CreateBalanceSheet(ctx context.Context, counterpartyID string, req dto.CreateBalanceSheetRequest, actor domain.Actor) (*domain.BalanceSheet, error) {
	args := m.Called(ctx, counterpartyID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheet), args.Error(1)
}

func (m *MockBalanceSheetService) UpdateBalanceSheet(ctx context.Context, balanceSheetID string, req dto.UpdateBalanceSheetRequest, actor domain.Actor) (*domain.BalanceSheet, error) {
	args := m.Called(ctx, balanceSheetID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheet), args.Error(1)
}

func (m *MockBalanceSheetService) DeactivateBalanceSheet(ctx context.Context, balanceSheetID string, actor domain.Actor) error {
	return m.Called(ctx, balanceSheetID, actor).Error(0)
}

func (m *MockBalanceSheetService) AddItem(ctx context.Context, balanceSheetID string, req dto.CreateBalanceSheetItemRequest, actor domain.Actor) (*domain.BalanceSheetItem, error) {
	args := m.Called(ctx, balanceSheetID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheetItem), args.Error(1)
}

func (m *MockBalanceSheetService) UpdateItem(ctx context.Context, itemID string, req dto.UpdateBalanceSheetItemRequest, actor domain.Actor) (*domain.BalanceSheetItem, error) {
	args := m.Called(ctx, itemID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheetItem), args.Error(1)
}

func (m *MockBalanceSheetService) DeactivateItem(ctx context.Context, itemID string, actor domain.Actor) error {
	return m.Called(ctx, itemID, actor).Error(0)
}

var _ portssvc.BalanceSheetSvcFacade = (*MockBalanceSheetService)(nil)

// --- Mock ExchangeRateService ---
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) GetRate(ctx context.Context, currencyCode string, asOf time.Time, exact bool) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, currencyCode, asOf, exact)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) GetExchangeRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, rateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) ListRates(ctx context.Context, currencyCode string, limit int) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx, currencyCode, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) RegisterRate(ctx context.Context, req dto.RegisterExchangeRateRequest, actor domain.Actor) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

var _ portssvc.ExchangeRateSvcFacade = (*MockExchangeRateService)(nil)

// --- Mock NotificationService ---
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) ListNotifications(ctx context.Context, actor domain.Actor, unreadOnly bool, limit int) ([]domain.Notification, error) {
	args := m.Called(ctx, actor, unreadOnly, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationService) CountUnread(ctx context.Context, actor domain.Actor) (int, error) {
	args := m.Called(ctx, actor)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationService) MarkRead(ctx context.Context, actor domain.Actor, notificationID string) (*domain.Notification, error) {
	args := m.Called(ctx, actor, notificationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *MockNotificationService) MarkAllRead(ctx context.Context, actor domain.Actor) (int, error) {
	args := m.Called(ctx, actor)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationService) GetSettings(ctx context.Context, actor domain.Actor) (*domain.NotificationSettings, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NotificationSettings), args.Error(1)
}

func (m *MockNotificationService) UpdateSettings(ctx context.Context, actor domain.Actor, req dto.UpdateNotificationSettingsRequest) (*domain.NotificationSettings, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NotificationSettings), args.Error(1)
}

func (m *MockNotificationService) Notify(ctx context.Context, n domain.Notification) (bool, error) {
	args := m.Called(ctx, n)
	return args.Bool(0), args.Error(1)
}

var _ portssvc.NotificationSvcFacade = (*MockNotificationService)(nil)

// --- Mock DueDiligenceService ---
type MockDueDiligenceService struct {
	mock.Mock
}

func (m *MockDueDiligenceService) RequestDueDiligence(ctx context.Context, memberID string, actor domain.Actor) (*domain.DueDiligence, error) {
	args := m.Called(ctx, memberID, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DueDiligence), args.Error(1)
}

func (m *MockDueDiligenceService) RecordResult(ctx context.Context, req dto.DueDiligenceResultRequest) (*domain.DueDiligence, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DueDiligence), args.Error(1)
}

func (m *MockDueDiligenceService) Approve(ctx context.Context, dueDiligenceID, comments string, actor domain.Actor) (*domain.DueDiligence, error) {
	args := m.Called(ctx, dueDiligenceID, comments, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DueDiligence), args.Error(1)
}

func (m *MockDueDiligenceService) Reject(ctx context.Context, dueDiligenceID, comments string, actor domain.Actor) (*domain.DueDiligence, error) {
	args := m.Called(ctx, dueDiligenceID, comments, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DueDiligence), args.Error(1)
}

func (m *MockDueDiligenceService) GetDueDiligence(ctx context.Context, dueDiligenceID string) (*domain.DueDiligence, error) {
	args := m.Called(ctx, dueDiligenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DueDiligence), args.Error(1)
}

func (m *MockDueDiligenceService) ListByMember(ctx context.Context, memberID string) ([]domain.DueDiligence, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DueDiligence), args.Error(1)
}

var _ portssvc.DueDiligenceSvcFacade = (*MockDueDiligenceService)(nil)

// --- Mock ReferenceDataService ---
type MockReferenceDataService struct {
	mock.Mock
}

func (m *MockReferenceDataService) ListCounterpartyTypes(ctx context.Context, vis domain.Visibility) ([]domain.CounterpartyType, error) {
	args := m.Called(ctx, vis)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CounterpartyType), args.Error(1)
}

func (m *MockReferenceDataService) ListCounterpartyStatuses(ctx context.Context, vis domain.Visibility) ([]domain.CounterpartyStatus, error) {
	args := m.Called(ctx, vis)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CounterpartyStatus), args.Error(1)
}

func (m *MockReferenceDataService) ListDocumentTypes(ctx context.Context, vis domain.Visibility) ([]domain.DocumentType, error) {
	args := m.Called(ctx, vis)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DocumentType), args.Error(1)
}

func (m *MockReferenceDataService) ListRaters(ctx context.Context, vis domain.Visibility) ([]domain.Rater, error) {
	args := m.Called(ctx, vis)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rater), args.Error(1)
}

func (m *MockReferenceDataService) ListOutlooks(ctx context.Context, vis domain.Visibility) ([]domain.Outlook, error) {
	args := m.Called(ctx, vis)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Outlook), args.Error(1)
}

func (m *MockReferenceDataService) SaveCounterpartyType(ctx context.Context, typeID string, req dto.ReferenceDataRequest, actor domain.Actor) (*domain.CounterpartyType, error) {
	args := m.Called(ctx, typeID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CounterpartyType), args.Error(1)
}

func (m *MockReferenceDataService) SaveCounterpartyStatus(ctx context.Context, statusID string, req dto.ReferenceDataRequest, actor domain.Actor) (*domain.CounterpartyStatus, error) {
	args := m.Called(ctx, statusID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CounterpartyStatus), args.Error(1)
}

func (m *MockReferenceDataService) SaveDocumentType(ctx context.Context, typeID string, req dto.ReferenceDataRequest, actor domain.Actor) (*domain.DocumentType, error) {
	args := m.Called(ctx, typeID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentType), args.Error(1)
}

func (m *MockReferenceDataService) SaveRater(ctx context.Context, raterID string, req dto.ReferenceDataRequest, actor domain.Actor) (*domain.Rater, error) {
	args := m.Called(ctx, raterID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rater), args.Error(1)
}

func (m *MockReferenceDataService) SaveOutlook(ctx context.Context, outlookID string, req dto.ReferenceDataRequest, actor domain.Actor) (*domain.Outlook, error) {
	args := m.Called(ctx, outlookID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Outlook), args.Error(1)
}

var _ portssvc.ReferenceDataSvcFacade = (*MockReferenceDataService)(nil)
