package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/counterparty_portal/internal/apperrors"
	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	portssvc "github.com/SscSPs/counterparty_portal/internal/core/ports/services"
	"github.com/SscSPs/counterparty_portal/internal/core/services"
	"github.com/SscSPs/counterparty_portal/internal/dto"
	"github.com/SscSPs/counterparty_portal/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
	ctx      context.Context
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo, testOptions()...)
	suite.ctx = context.Background()
}

func (suite *UserServiceTestSuite) storedUser(password string) *domain.User {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	return &domain.User{UserID: "u1", Username: "analyst", PasswordHash: hash, IsActive: true}
}

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	suite.mockRepo.On("FindUserByUsername", suite.ctx, "analyst").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", suite.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "analyst" &&
			u.PasswordHash != "" && u.PasswordHash != "s3cretpass" &&
			u.CreatedBy == u.UserID && u.IsActive && u.IsStaff &&
			u.Phone == "+57 601 555 0100" && u.Department == "Compliance" && u.Position == "KYC Analyst"
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(suite.ctx, dto.CreateUserRequest{
		Username:   " Analyst ",
		Name:       "Ana Lyst",
		Password:   "s3cretpass",
		IsStaff:    true,
		Phone:      "+57 601 555 0100",
		Department: " Compliance ",
		Position:   "KYC Analyst",
	})

	suite.Require().NoError(err)
	suite.True(utils.CheckPasswordHash("s3cretpass", user.PasswordHash))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateUsername() {
	suite.mockRepo.On("FindUserByUsername", suite.ctx, "analyst").Return(&domain.User{UserID: "u0"}, nil).Once()

	_, err := suite.service.CreateUser(suite.ctx, dto.CreateUserRequest{Username: "analyst", Name: "A", Password: "longenough"})

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestGetUserByID_NotFound() {
	suite.mockRepo.On("FindUserByID", suite.ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.GetUserByID(suite.ctx, "ghost")

	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	suite.mockRepo.On("FindUserByUsername", suite.ctx, "analyst").Return(suite.storedUser("correct-horse"), nil).Once()
	suite.mockRepo.On("RecordLogin", suite.ctx, "u1", fixedNow).Return(nil).Once()

	user, err := suite.service.Authenticate(suite.ctx, "Analyst", "correct-horse")

	suite.Require().NoError(err)
	suite.Require().NotNil(user.LastLoginAt)
	suite.True(user.LastLoginAt.Equal(fixedNow))
}

func (suite *UserServiceTestSuite) TestAuthenticate_Rejections() {
	inactive := suite.storedUser("correct-horse")
	inactive.IsActive = false

	tests := []struct {
		name     string
		user     *domain.User
		err      error
		password string
	}{
		{"unknown user", nil, apperrors.ErrNotFound, "x"},
		{"wrong password", suite.storedUser("correct-horse"), nil, "battery-staple"},
		{"inactive user", inactive, nil, "correct-horse"},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.mockRepo = new(MockUserRepository)
			suite.service = services.NewUserService(suite.mockRepo, testOptions()...)
			suite.mockRepo.On("FindUserByUsername", suite.ctx, "analyst").Return(tt.user, tt.err).Once()

			_, err := suite.service.Authenticate(suite.ctx, "analyst", tt.password)

			suite.ErrorIs(err, apperrors.ErrUnauthorized)
			suite.mockRepo.AssertNotCalled(suite.T(), "RecordLogin", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_Creates() {
	suite.mockRepo.On("FindUserByEmail", suite.ctx, "ana@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", suite.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "ana@example.com" && u.PasswordHash == "" && !u.IsStaff
	})).Return(nil).Once()
	suite.mockRepo.On("RecordLogin", suite.ctx, mock.AnythingOfType("string"), fixedNow).Return(nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(suite.ctx, domain.GoogleUserInfo{
		Email:         "Ana@Example.com",
		VerifiedEmail: true,
		Name:          "Ana",
	})

	suite.Require().NoError(err)
	suite.Equal("Ana", user.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_UnverifiedEmail() {
	_, err := suite.service.FindOrCreateGoogleUser(suite.ctx, domain.GoogleUserInfo{Email: "ana@example.com"})

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindUserByEmail", mock.Anything, mock.Anything)
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
