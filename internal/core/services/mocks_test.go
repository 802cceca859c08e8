package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	"github.com/SscSPs/counterparty_portal/internal/core/ports/storage"
	"github.com/SscSPs/counterparty_portal/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context, vis domain.Visibility) ([]domain.Currency, error) {
	args := m.Called(ctx, vis)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	return m.Called(ctx, currency).Error(0)
}

func (m *MockCurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.Currency) error {
	return m.Called(ctx, currency).Error(0)
}

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) FindExchangeRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, rateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) FindRateOnOrBefore(ctx context.Context, currencyCode string, asOf time.Time) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, currencyCode, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) FindRateOn(ctx context.Context, currencyCode string, date time.Time) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, currencyCode, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) ListRatesByCurrency(ctx context.Context, currencyCode string, limit int) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx, currencyCode, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	return m.Called(ctx, rate).Error(0)
}

// --- Mock BalanceSheetRepository ---
type MockBalanceSheetRepository struct {
	mock.Mock
}

func (m *MockBalanceSheetRepository) FindBalanceSheetByID(ctx context.Context, balanceSheetID string) (*domain.BalanceSheet, error) {
	args := m.Called(ctx, balanceSheetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheet), args.Error(1)
}

func (m *MockBalanceSheetRepository) FindBalanceSheetByYear(ctx context.Context, counterpartyID string, year int) (*domain.BalanceSheet, error) {
	args := m.Called(ctx, counterpartyID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheet), args.Error(1)
}

func (m *MockBalanceSheetRepository) ListBalanceSheets(ctx context.Context, counterpartyID string, vis domain.Visibility) ([]domain.BalanceSheet, error) {
	args := m.Called(ctx, counterpartyID, vis)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BalanceSheet), args.Error(1)
}

func (m *MockBalanceSheetRepository) FindItemByID(ctx context.Context, itemID string) (*domain.BalanceSheetItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheetItem), args.Error(1)
}

func (m *MockBalanceSheetRepository) ListItems(ctx context.Context, balanceSheetID string, vis domain.Visibility) ([]domain.BalanceSheetItem, error) {
	args := m.Called(ctx, balanceSheetID, vis)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BalanceSheetItem), args.Error(1)
}

func (m *MockBalanceSheetRepository) SaveBalanceSheet(ctx context.Context, sheet domain.BalanceSheet) error {
	return m.Called(ctx, sheet).Error(0)
}

func (m *MockBalanceSheetRepository) UpdateBalanceSheet(ctx context.Context, sheet domain.BalanceSheet) error {
	return m.Called(ctx, sheet).Error(0)
}

func (m *MockBalanceSheetRepository) SaveItem(ctx context.Context, item domain.BalanceSheetItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockBalanceSheetRepository) UpdateItem(ctx context.Context, item domain.BalanceSheetItem) error {
	return m.Called(ctx, item).Error(0)
}

// --- Mock CounterpartyRepository ---
type MockCounterpartyRepository struct {
	mock.Mock
}

func (m *MockCounterpartyRepository) FindCounterpartyByID(ctx context.Context, counterpartyID string) (*domain.Counterparty, error) {
	args := m.Called(ctx, counterpartyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Counterparty), args.Error(1)
}

func (m *MockCounterpartyRepository) ListCounterparties(ctx context.Context, filter domain.CounterpartyFilter, limit int, afterName, afterID string) ([]domain.Counterparty, error) {
	args := m.Called(ctx, filter, limit, afterName, afterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Counterparty), args.Error(1)
}

func (m *MockCounterpartyRepository) ListDueForRenewal(ctx context.Context, dueBy time.Time, excludeStatusID string) ([]domain.Counterparty, error) {
	args := m.Called(ctx, dueBy, excludeStatusID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Counterparty), args.Error(1)
}

func (m *MockCounterpartyRepository) SaveCounterparty(ctx context.Context, counterparty domain.Counterparty) error {
	return m.Called(ctx, counterparty).Error(0)
}

func (m *MockCounterpartyRepository) UpdateCounterparty(ctx context.Context, counterparty domain.Counterparty) error {
	return m.Called(ctx, counterparty).Error(0)
}

// --- Mock MemberRepository ---
type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) FindMemberByIdentification(ctx context.Context, counterpartyID, identificationNumber string) (*domain.Member, error) {
	args := m.Called(ctx, counterpartyID, identificationNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) ListMembers(ctx context.Context, counterpartyID string, vis domain.Visibility) ([]domain.Member, error) {
	args := m.Called(ctx, counterpartyID, vis)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}

func (m *MockMemberRepository) SaveMember(ctx context.Context, member domain.Member) error {
	return m.Called(ctx, member).Error(0)
}

func (m *MockMemberRepository) UpdateMember(ctx context.Context, member domain.Member) error {
	return m.Called(ctx, member).Error(0)
}

// --- Mock DocumentRepository ---
type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentRepository) ListDocuments(ctx context.Context, counterpartyID string, vis domain.Visibility) ([]domain.Document, error) {
	args := m.Called(ctx, counterpartyID, vis)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

func (m *MockDocumentRepository) ListExpiringDocuments(ctx context.Context, dueBy time.Time) ([]domain.Document, error) {
	args := m.Called(ctx, dueBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

func (m *MockDocumentRepository) SaveDocument(ctx context.Context, document domain.Document) error {
	return m.Called(ctx, document).Error(0)
}

func (m *MockDocumentRepository) UpdateDocument(ctx context.Context, document domain.Document) error {
	return m.Called(ctx, document).Error(0)
}

// --- Mock CommentRepository ---
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) FindCommentByID(ctx context.Context, commentID string) (*domain.Comment, error) {
	args := m.Called(ctx, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListComments(ctx context.Context, counterpartyID string, vis domain.Visibility) ([]domain.Comment, error) {
	args := m.Called(ctx, counterpartyID, vis)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}

func (m *MockCommentRepository) SaveComment(ctx context.Context, comment domain.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *MockCommentRepository) UpdateComment(ctx context.Context, comment domain.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

// --- Mock ReferenceDataRepository ---
type MockReferenceDataRepository struct {
	mock.Mock
}

func (m *MockReferenceDataRepository) FindCounterpartyType(ctx context.Context, typeID string) (*domain.CounterpartyType, error) {
	args := m.Called(ctx, typeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CounterpartyType), args.Error(1)
}

func (m *MockReferenceDataRepository) ListCounterpartyTypes(ctx context.Context, vis domain.Visibility) ([]domain.CounterpartyType, error) {
	args := m.Called(ctx, vis)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CounterpartyType), args.Error(1)
}

func (m *MockReferenceDataRepository) FindCounterpartyStatus(ctx context.Context, statusID string) (*domain.CounterpartyStatus, error) {
	args := m.Called(ctx, statusID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CounterpartyStatus), args.Error(1)
}

func (m *MockReferenceDataRepository) FindCounterpartyStatusByCode(ctx context.Context, code string) (*domain.CounterpartyStatus, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CounterpartyStatus), args.Error(1)
}

func (m *MockReferenceDataRepository) ListCounterpartyStatuses(ctx context.Context, vis domain.Visibility) ([]domain.CounterpartyStatus, error) {
	args := m.Called(ctx, vis)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CounterpartyStatus), args.Error(1)
}

func (m *MockReferenceDataRepository) FindDocumentType(ctx context.Context, typeID string) (*domain.DocumentType, error) {
	args := m.Called(ctx, typeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentType), args.Error(1)
}

func (m *MockReferenceDataRepository) ListDocumentTypes(ctx context.Context, vis domain.Visibility) ([]domain.DocumentType, error) {
	args := m.Called(ctx, vis)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DocumentType), args.Error(1)
}

func (m *MockReferenceDataRepository) FindRater(ctx context.Context, raterID string) (*domain.Rater, error) {
	args := m.Called(ctx, raterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rater), args.Error(1)
}

func (m *MockReferenceDataRepository) ListRaters(ctx context.Context, vis domain.Visibility) ([]domain.Rater, error) {
	args := m.Called(ctx, vis)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rater), args.Error(1)
}

func (m *MockReferenceDataRepository) FindOutlook(ctx context.Context, outlookID string) (*domain.Outlook, error) {
	args := m.Called(ctx, outlookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Outlook), args.Error(1)
}

func (m *MockReferenceDataRepository) ListOutlooks(ctx context.Context, vis domain.Visibility) ([]domain.Outlook, error) {
	args := m.Called(ctx, vis)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Outlook), args.Error(1)
}

func (m *MockReferenceDataRepository) SaveCounterpartyType(ctx context.Context, t domain.CounterpartyType) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockReferenceDataRepository) SaveCounterpartyStatus(ctx context.Context, s domain.CounterpartyStatus) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockReferenceDataRepository) SaveDocumentType(ctx context.Context, t domain.DocumentType) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockReferenceDataRepository) SaveRater(ctx context.Context, r domain.Rater) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockReferenceDataRepository) SaveOutlook(ctx context.Context, o domain.Outlook) error {
	return m.Called(ctx, o).Error(0)
}

// --- Mock NotificationRepository ---
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) FindNotificationByID(ctx context.Context, notificationID string) (*domain.Notification, error) {
	args := m.Called(ctx, notificationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) ListNotifications(ctx context.Context, recipientID string, unreadOnly bool, limit int) ([]domain.Notification, error) {
	args := m.Called(ctx, recipientID, unreadOnly, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, recipientID string) (int, error) {
	args := m.Called(ctx, recipientID)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationRepository) FindSettings(ctx context.Context, userID string) (*domain.NotificationSettings, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NotificationSettings), args.Error(1)
}

func (m *MockNotificationRepository) SaveNotification(ctx context.Context, n domain.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, notificationID string, at time.Time) error {
	return m.Called(ctx, notificationID, at).Error(0)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, recipientID string, at time.Time) (int, error) {
	args := m.Called(ctx, recipientID, at)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationRepository) SaveSettings(ctx context.Context, settings domain.NotificationSettings) error {
	return m.Called(ctx, settings).Error(0)
}

// --- Mock DueDiligenceRepository ---
type MockDueDiligenceRepository struct {
	mock.Mock
}

func (m *MockDueDiligenceRepository) FindDueDiligenceByID(ctx context.Context, dueDiligenceID string) (*domain.DueDiligence, error) {
	args := m.Called(ctx, dueDiligenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DueDiligence), args.Error(1)
}

func (m *MockDueDiligenceRepository) FindDueDiligenceByExternalID(ctx context.Context, externalRequestID string) (*domain.DueDiligence, error) {
	args := m.Called(ctx, externalRequestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DueDiligence), args.Error(1)
}

func (m *MockDueDiligenceRepository) ListDueDiligenceByMember(ctx context.Context, memberID string) ([]domain.DueDiligence, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DueDiligence), args.Error(1)
}

func (m *MockDueDiligenceRepository) SaveDueDiligence(ctx context.Context, dd domain.DueDiligence) error {
	return m.Called(ctx, dd).Error(0)
}

func (m *MockDueDiligenceRepository) UpdateDueDiligence(ctx context.Context, dd domain.DueDiligence) error {
	return m.Called(ctx, dd).Error(0)
}

func (m *MockDueDiligenceRepository) ApproveAndRenew(ctx context.Context, dd domain.DueDiligence, counterpartyID string, nextDueDiligence time.Time) error {
	return m.Called(ctx, dd, counterpartyID, nextDueDiligence).Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) RecordLogin(ctx context.Context, userID string, at time.Time) error {
	return m.Called(ctx, userID, at).Error(0)
}

// --- Mock BlobStore ---
type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) Put(ctx context.Context, obj storage.Object) (string, error) {
	args := m.Called(ctx, obj)
	return args.String(0), args.Error(1)
}

func (m *MockBlobStore) URL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	args := m.Called(ctx, key, ttl)
	return args.String(0), args.Error(1)
}

func (m *MockBlobStore) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

// --- Mock RatingRepository ---
type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) FindRatingByID(ctx context.Context, ratingID string) (*domain.Rating, error) {
	args := m.Called(ctx, ratingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rating), args.Error(1)
}

func (m *MockRatingRepository) ListRatings(ctx context.Context, counterpartyID string, vis domain.Visibility) ([]domain.Rating, error) {
	args := m.Called(ctx, counterpartyID, vis)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rating), args.Error(1)
}

func (m *MockRatingRepository) SaveRating(ctx context.Context, rating domain.Rating) error {
	return m.Called(ctx, rating).Error(0)
}

func (m *MockRatingRepository) UpdateRating(ctx context.Context, rating domain.Rating) error {
	return m.Called(ctx, rating).Error(0)
}

// --- Mock Notifier ---
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) ListNotifications(ctx context.Context, actor domain.Actor, unreadOnly bool, limit int) ([]domain.Notification, error) {
	args := m.Called(ctx, actor, unreadOnly, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotifier) CountUnread(ctx context.Context, actor domain.Actor) (int, error) {
	args := m.Called(ctx, actor)
	return args.Int(0), args.Error(1)
}

func (m *MockNotifier) MarkRead(ctx context.Context, actor domain.Actor, notificationID string) (*domain.Notification, error) {
	args := m.Called(ctx, actor, notificationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *MockNotifier) MarkAllRead(ctx context.Context, actor domain.Actor) (int, error) {
	args := m.Called(ctx, actor)
	return args.Int(0), args.Error(1)
}

func (m *MockNotifier) GetSettings(ctx context.Context, actor domain.Actor) (*domain.NotificationSettings, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NotificationSettings), args.Error(1)
}

func (m *MockNotifier) UpdateSettings(ctx context.Context, actor domain.Actor, req dto.UpdateNotificationSettingsRequest) (*domain.NotificationSettings, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NotificationSettings), args.Error(1)
}

func (m *MockNotifier) Notify(ctx context.Context, n domain.Notification) (bool, error) {
	args := m.Called(ctx, n)
	return args.Bool(0), args.Error(1)
}
