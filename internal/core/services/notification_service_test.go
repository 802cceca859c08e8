package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/counterparty_portal/internal/apperrors"
	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	portssvc "github.com/SscSPs/counterparty_portal/internal/core/ports/services"
	"github.com/SscSPs/counterparty_portal/internal/core/services"
	"github.com/SscSPs/counterparty_portal/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type NotificationServiceTestSuite struct {
	suite.Suite
	repo    *MockNotificationRepository
	service portssvc.NotificationSvcFacade
	ctx     context.Context
}

func (suite *NotificationServiceTestSuite) SetupTest() {
	suite.repo = new(MockNotificationRepository)
	suite.service = services.NewNotificationService(suite.repo, testOptions()...)
	suite.ctx = context.Background()
}

func (suite *NotificationServiceTestSuite) TestNotify_DefaultsApplied() {
	suite.repo.On("FindSettings", suite.ctx, "u1").Return(nil, apperrors.ErrNotFound).Once()
	suite.repo.On("SaveNotification", suite.ctx, mock.MatchedBy(func(n domain.Notification) bool {
		return n.NotificationID != "" && n.Priority == domain.PriorityNormal && n.CreatedAt.Equal(fixedNow) && !n.Read
	})).Return(nil).Once()

	sent, err := suite.service.Notify(suite.ctx, domain.Notification{RecipientID: "u1", Kind: domain.NotifySystem, Title: "Hi"})

	suite.Require().NoError(err)
	suite.True(sent)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *NotificationServiceTestSuite) TestNotify_MutedKind() {
	settings := domain.DefaultNotificationSettings("u1")
	settings.NotifyDocumentExpiry = false
	suite.repo.On("FindSettings", suite.ctx, "u1").Return(&settings, nil).Once()

	sent, err := suite.service.Notify(suite.ctx, domain.Notification{RecipientID: "u1", Kind: domain.NotifyDocumentExpiring})

	suite.Require().NoError(err)
	suite.False(sent)
	suite.repo.AssertNotCalled(suite.T(), "SaveNotification", mock.Anything, mock.Anything)
}

func (suite *NotificationServiceTestSuite) TestNotify_AlreadySentToday() {
	suite.repo.On("FindSettings", suite.ctx, "u1").Return(nil, apperrors.ErrNotFound).Once()
	suite.repo.On("SaveNotification", suite.ctx, mock.AnythingOfType("domain.Notification")).Return(apperrors.ErrDuplicate).Once()

	sent, err := suite.service.Notify(suite.ctx, domain.Notification{RecipientID: "u1", Kind: domain.NotifyDueDiligenceSoon, SubjectID: "cp-1"})

	suite.Require().NoError(err)
	suite.False(sent)
}

func (suite *NotificationServiceTestSuite) TestNotify_RequiresRecipient() {
	_, err := suite.service.Notify(suite.ctx, domain.Notification{Kind: domain.NotifySystem})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *NotificationServiceTestSuite) TestMarkRead_OnlyRecipient() {
	n := &domain.Notification{NotificationID: "n-1", RecipientID: "u1"}
	suite.repo.On("FindNotificationByID", suite.ctx, "n-1").Return(n, nil).Once()

	_, err := suite.service.MarkRead(suite.ctx, domain.Actor{UserID: "staff", IsStaff: true}, "n-1")

	suite.ErrorIs(err, apperrors.ErrPermissionDenied)
	suite.repo.AssertNotCalled(suite.T(), "MarkRead", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *NotificationServiceTestSuite) TestMarkRead_Idempotent() {
	readAt := fixedNow.AddDate(0, 0, -1)
	n := &domain.Notification{NotificationID: "n-1", RecipientID: "u1", Read: true, ReadAt: &readAt}
	suite.repo.On("FindNotificationByID", suite.ctx, "n-1").Return(n, nil).Once()

	got, err := suite.service.MarkRead(suite.ctx, domain.Actor{UserID: "u1"}, "n-1")

	suite.Require().NoError(err)
	suite.True(got.ReadAt.Equal(readAt))
	suite.repo.AssertNotCalled(suite.T(), "MarkRead", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *NotificationServiceTestSuite) TestMarkRead_Unread() {
	n := &domain.Notification{NotificationID: "n-1", RecipientID: "u1"}
	suite.repo.On("FindNotificationByID", suite.ctx, "n-1").Return(n, nil).Once()
	suite.repo.On("MarkRead", suite.ctx, "n-1", fixedNow).Return(nil).Once()

	got, err := suite.service.MarkRead(suite.ctx, domain.Actor{UserID: "u1"}, "n-1")

	suite.Require().NoError(err)
	suite.True(got.Read)
}

func (suite *NotificationServiceTestSuite) TestUpdateSettings() {
	suite.repo.On("FindSettings", suite.ctx, "u1").Return(nil, apperrors.ErrNotFound).Once()
	suite.repo.On("SaveSettings", suite.ctx, mock.MatchedBy(func(s domain.NotificationSettings) bool {
		return s.UserID == "u1" && s.DDWarningDays == 14 && !s.NotifyMatches && s.NotifyApprovals
	})).Return(nil).Once()

	days, off := 14, false
	settings, err := suite.service.UpdateSettings(suite.ctx, domain.Actor{UserID: "u1"}, dto.UpdateNotificationSettingsRequest{
		DDWarningDays: &days,
		NotifyMatches: &off,
	})

	suite.Require().NoError(err)
	suite.Equal(14, settings.DDWarningDays)
}

func (suite *NotificationServiceTestSuite) TestUpdateSettings_WarningDaysOutOfRange() {
	suite.repo.On("FindSettings", suite.ctx, "u1").Return(nil, apperrors.ErrNotFound).Maybe()

	for _, days := range []int{0, domain.MaxDDWarningDays + 1} {
		_, err := suite.service.UpdateSettings(suite.ctx, domain.Actor{UserID: "u1"}, dto.UpdateNotificationSettingsRequest{
			DDWarningDays: &days,
		})

		fields, ok := apperrors.FieldErrors(err)
		suite.Require().True(ok)
		suite.Contains(fields, "ddWarningDays")
	}
	suite.repo.AssertNotCalled(suite.T(), "SaveSettings", mock.Anything, mock.Anything)
}

func (suite *NotificationServiceTestSuite) TestListNotifications_DefaultLimit() {
	suite.repo.On("ListNotifications", suite.ctx, "u1", true, 50).Return(nil, nil).Once()

	items, err := suite.service.ListNotifications(suite.ctx, domain.Actor{UserID: "u1"}, true, 0)

	suite.Require().NoError(err)
	suite.NotNil(items)
}

func TestNotificationService(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}
