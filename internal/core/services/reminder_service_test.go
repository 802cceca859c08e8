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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReminderServiceTestSuite struct {
	suite.Suite
	docRepo   *MockDocumentRepository
	cpRepo    *MockCounterpartyRepository
	refRepo   *MockReferenceDataRepository
	notifRepo *MockNotificationRepository
	service   portssvc.ReminderSvc
	ctx       context.Context
}

func (suite *ReminderServiceTestSuite) SetupTest() {
	suite.docRepo = new(MockDocumentRepository)
	suite.cpRepo = new(MockCounterpartyRepository)
	suite.refRepo = new(MockReferenceDataRepository)
	suite.notifRepo = new(MockNotificationRepository)
	notifier := services.NewNotificationService(suite.notifRepo, testOptions()...)
	suite.service = services.NewReminderService(suite.docRepo, suite.cpRepo, suite.refRepo, notifier, "inactive", testOptions()...)
	suite.ctx = context.Background()

	suite.refRepo.On("FindCounterpartyStatusByCode", suite.ctx, "inactive").Return(inactiveStatus, nil).Maybe()
}

func expiringDoc(id, owner string, expiry time.Time) domain.Document {
	return domain.Document{
		DocumentID:     id,
		CounterpartyID: "cp-1",
		ExpiryDate:     &expiry,
		File:           domain.BlobRef{FileName: id + ".pdf"},
		SoftDelete:     domain.Activated(),
		AuditFields:    domain.NewAuditFields(owner, fixedNow),
	}
}

func dueCounterparty(id, owner string, due time.Time) domain.Counterparty {
	return domain.Counterparty{
		CounterpartyID:       id,
		FullCompanyName:      id,
		NextDueDiligenceDate: due,
		AuditFields:          domain.NewAuditFields(owner, fixedNow),
	}
}

// renewalHorizon is fixedNow plus the widest warning window a user can pick.
var renewalHorizon = day(2025, 7, 1)

func (suite *ReminderServiceTestSuite) TestSweep() {
	dueBy := day(2024, 7, 31)
	suite.docRepo.On("ListExpiringDocuments", mock.Anything, dueBy).Return([]domain.Document{
		expiringDoc("expired", "u1", day(2024, 6, 28)),
		expiringDoc("today", "u1", day(2024, 7, 1)),
		expiringDoc("soon", "u1", day(2024, 7, 20)),
	}, nil).Once()
	suite.cpRepo.On("ListDueForRenewal", mock.Anything, renewalHorizon, inactiveStatus.StatusID).Return([]domain.Counterparty{
		dueCounterparty("late", "u2", day(2024, 6, 20)),
		dueCounterparty("outside-window", "u2", day(2024, 7, 25)),
		dueCounterparty("imminent", "u1", day(2024, 7, 5)),
	}, nil).Once()

	u2 := domain.DefaultNotificationSettings("u2")
	u2.DDWarningDays = 14
	suite.notifRepo.On("FindSettings", suite.ctx, "u1").Return(nil, apperrors.ErrNotFound)
	suite.notifRepo.On("FindSettings", suite.ctx, "u2").Return(&u2, nil)

	var saved []domain.Notification
	suite.notifRepo.On("SaveNotification", suite.ctx, mock.MatchedBy(func(n domain.Notification) bool {
		return n.SubjectID == "today"
	})).Return(apperrors.ErrDuplicate).Once()
	suite.notifRepo.On("SaveNotification", suite.ctx, mock.AnythingOfType("domain.Notification")).
		Run(func(args mock.Arguments) { saved = append(saved, args.Get(1).(domain.Notification)) }).
		Return(nil)

	report, err := suite.service.Sweep(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal(3, report.DocumentsScanned)
	suite.Equal(3, report.CounterpartiesScanned)
	suite.Equal(4, report.Total())
	suite.Equal(2, report.Skipped)
	suite.Equal(1, report.Sent[domain.NotifyDocumentExpired])
	suite.Equal(1, report.Sent[domain.NotifyDocumentExpiring])
	suite.Equal(1, report.Sent[domain.NotifyDueDiligenceOverdue])
	suite.Equal(1, report.Sent[domain.NotifyDueDiligenceSoon])

	bySubject := map[string]domain.Notification{}
	for _, n := range saved {
		bySubject[n.SubjectID] = n
	}
	suite.Equal(domain.PriorityHigh, bySubject["expired"].Priority)
	suite.Equal(domain.PriorityNormal, bySubject["soon"].Priority)
	suite.Equal(domain.PriorityUrgent, bySubject["late"].Priority)
	suite.Equal(domain.PriorityHigh, bySubject["imminent"].Priority)
	suite.Equal("u2", bySubject["late"].RecipientID)
	suite.NotContains(bySubject, "outside-window")
}

func (suite *ReminderServiceTestSuite) TestSweep_WarningWindowBeyondThirtyDays() {
	suite.docRepo.On("ListExpiringDocuments", mock.Anything, day(2024, 7, 31)).Return(nil, nil).Once()
	suite.cpRepo.On("ListDueForRenewal", mock.Anything, renewalHorizon, inactiveStatus.StatusID).Return([]domain.Counterparty{
		dueCounterparty("in-45-days", "u1", day(2024, 8, 15)),
		dueCounterparty("in-75-days", "u1", day(2024, 9, 14)),
	}, nil).Once()

	u1 := domain.DefaultNotificationSettings("u1")
	u1.DDWarningDays = 60
	suite.notifRepo.On("FindSettings", suite.ctx, "u1").Return(&u1, nil)
	suite.notifRepo.On("SaveNotification", suite.ctx, mock.MatchedBy(func(n domain.Notification) bool {
		return n.SubjectID == "in-45-days" && n.Kind == domain.NotifyDueDiligenceSoon
	})).Return(nil).Once()

	report, err := suite.service.Sweep(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal(1, report.Sent[domain.NotifyDueDiligenceSoon])
	suite.Equal(1, report.Skipped)
	suite.notifRepo.AssertExpectations(suite.T())
}

func (suite *ReminderServiceTestSuite) TestSweep_ScanFailure() {
	scanErr := errors.New("connection reset")
	suite.docRepo.On("ListExpiringDocuments", mock.Anything, mock.Anything).Return(nil, scanErr).Once()
	suite.cpRepo.On("ListDueForRenewal", mock.Anything, mock.Anything, mock.Anything).Return([]domain.Counterparty{}, nil).Maybe()

	report, err := suite.service.Sweep(suite.ctx)

	suite.Nil(report)
	suite.ErrorIs(err, scanErr)
	suite.notifRepo.AssertNotCalled(suite.T(), "SaveNotification", mock.Anything, mock.Anything)
}

func (suite *ReminderServiceTestSuite) TestSweep_NothingDue() {
	suite.docRepo.On("ListExpiringDocuments", mock.Anything, mock.Anything).Return(nil, nil).Once()
	suite.cpRepo.On("ListDueForRenewal", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Once()

	report, err := suite.service.Sweep(suite.ctx)

	suite.Require().NoError(err)
	suite.Zero(report.Total())
	suite.Zero(report.Skipped)
}

func TestReminderService(t *testing.T) {
	suite.Run(t, new(ReminderServiceTestSuite))
}
