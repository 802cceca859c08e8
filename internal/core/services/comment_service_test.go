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

type CommentServiceTestSuite struct {
	suite.Suite
	commentRepo *MockCommentRepository
	cpRepo      *MockCounterpartyRepository
	service     portssvc.CommentSvcFacade
	ctx         context.Context
}

func (suite *CommentServiceTestSuite) SetupTest() {
	suite.commentRepo = new(MockCommentRepository)
	suite.cpRepo = new(MockCounterpartyRepository)
	suite.service = services.NewCommentService(suite.commentRepo, suite.cpRepo, testOptions()...)
	suite.ctx = context.Background()
}

func existingComment(owner string) *domain.Comment {
	return &domain.Comment{
		CommentID:      "c-1",
		CounterpartyID: "cp-1",
		Content:        "Waiting for audited statements",
		SoftDelete:     domain.Activated(),
		AuditFields:    domain.NewAuditFields(owner, fixedNow),
	}
}

func (suite *CommentServiceTestSuite) TestAddComment() {
	suite.cpRepo.On("FindCounterpartyByID", suite.ctx, "cp-1").Return(&domain.Counterparty{CounterpartyID: "cp-1"}, nil).Once()
	suite.commentRepo.On("SaveComment", suite.ctx, mock.MatchedBy(func(c domain.Comment) bool {
		return c.Content == "Looks fine" && !c.Edited && c.CreatedBy == "u1"
	})).Return(nil).Once()

	c, err := suite.service.AddComment(suite.ctx, "cp-1", dto.CommentRequest{Content: " Looks fine "}, domain.Actor{UserID: "u1"})

	suite.Require().NoError(err)
	suite.Equal("Looks fine", c.Content)
}

func (suite *CommentServiceTestSuite) TestAddComment_Blank() {
	suite.cpRepo.On("FindCounterpartyByID", suite.ctx, "cp-1").Return(&domain.Counterparty{CounterpartyID: "cp-1"}, nil).Once()

	_, err := suite.service.AddComment(suite.ctx, "cp-1", dto.CommentRequest{Content: "   "}, domain.Actor{UserID: "u1"})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CommentServiceTestSuite) TestUpdateComment_MarksEdited() {
	suite.commentRepo.On("FindCommentByID", suite.ctx, "c-1").Return(existingComment("u1"), nil).Once()
	suite.commentRepo.On("UpdateComment", suite.ctx, mock.MatchedBy(func(c domain.Comment) bool {
		return c.Edited && c.Content == "Statements received"
	})).Return(nil).Once()

	c, err := suite.service.UpdateComment(suite.ctx, "c-1", dto.CommentRequest{Content: "Statements received"}, domain.Actor{UserID: "u1"})

	suite.Require().NoError(err)
	suite.True(c.Edited)
}

func (suite *CommentServiceTestSuite) TestUpdateComment_NonAuthorDenied() {
	suite.commentRepo.On("FindCommentByID", suite.ctx, "c-1").Return(existingComment("u1"), nil).Once()

	_, err := suite.service.UpdateComment(suite.ctx, "c-1", dto.CommentRequest{Content: "hijack"}, domain.Actor{UserID: "u2"})

	suite.ErrorIs(err, apperrors.ErrPermissionDenied)
	suite.commentRepo.AssertNotCalled(suite.T(), "UpdateComment", mock.Anything, mock.Anything)
}

func (suite *CommentServiceTestSuite) TestDeactivateComment_Staff() {
	suite.commentRepo.On("FindCommentByID", suite.ctx, "c-1").Return(existingComment("u1"), nil).Once()
	suite.commentRepo.On("UpdateComment", suite.ctx, mock.MatchedBy(func(c domain.Comment) bool {
		return !c.IsActive() && *c.DeactivatedBy == "staff" && c.Edited
	})).Return(nil).Once()

	err := suite.service.DeactivateComment(suite.ctx, "c-1", domain.Actor{UserID: "staff", IsStaff: true})

	suite.Require().NoError(err)
}

func TestCommentService(t *testing.T) {
	suite.Run(t, new(CommentServiceTestSuite))
}
