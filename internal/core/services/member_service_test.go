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

type MemberServiceTestSuite struct {
	suite.Suite
	memberRepo *MockMemberRepository
	cpRepo     *MockCounterpartyRepository
	service    portssvc.MemberSvcFacade
	ctx        context.Context
}

func (suite *MemberServiceTestSuite) SetupTest() {
	suite.memberRepo = new(MockMemberRepository)
	suite.cpRepo = new(MockCounterpartyRepository)
	suite.service = services.NewMemberService(suite.memberRepo, suite.cpRepo, testOptions()...)
	suite.ctx = context.Background()
}

func memberRequest() dto.CreateMemberRequest {
	return dto.CreateMemberRequest{
		PersonType:           "natural",
		FullName:             "Ana Gómez",
		IdentificationNumber: " 52123456 ",
		Category:             "executive",
	}
}

func existingMember(owner string) *domain.Member {
	return &domain.Member{
		MemberID:             "m-1",
		CounterpartyID:       "cp-1",
		PersonType:           domain.PersonNatural,
		FullName:             "Ana Gómez",
		IdentificationNumber: "52123456",
		Category:             domain.MemberExecutive,
		SoftDelete:           domain.Activated(),
		AuditFields:          domain.NewAuditFields(owner, fixedNow),
	}
}

func (suite *MemberServiceTestSuite) TestAddMember_Success() {
	suite.cpRepo.On("FindCounterpartyByID", suite.ctx, "cp-1").Return(&domain.Counterparty{CounterpartyID: "cp-1"}, nil).Once()
	suite.memberRepo.On("FindMemberByIdentification", suite.ctx, "cp-1", "52123456").Return(nil, apperrors.ErrNotFound).Once()
	suite.memberRepo.On("SaveMember", suite.ctx, mock.MatchedBy(func(m domain.Member) bool {
		return m.IdentificationNumber == "52123456" && m.CounterpartyID == "cp-1" && m.IsActive()
	})).Return(nil).Once()

	m, err := suite.service.AddMember(suite.ctx, "cp-1", memberRequest(), domain.Actor{UserID: "u1"})

	suite.Require().NoError(err)
	suite.NotEmpty(m.MemberID)
	suite.memberRepo.AssertExpectations(suite.T())
}

func (suite *MemberServiceTestSuite) TestAddMember_DuplicateIdentification() {
	suite.cpRepo.On("FindCounterpartyByID", suite.ctx, "cp-1").Return(&domain.Counterparty{CounterpartyID: "cp-1"}, nil).Once()
	suite.memberRepo.On("FindMemberByIdentification", suite.ctx, "cp-1", "52123456").Return(existingMember("u0"), nil).Once()

	_, err := suite.service.AddMember(suite.ctx, "cp-1", memberRequest(), domain.Actor{UserID: "u1"})

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.memberRepo.AssertNotCalled(suite.T(), "SaveMember", mock.Anything, mock.Anything)
}

func (suite *MemberServiceTestSuite) TestAddMember_PEPWithoutPosition() {
	suite.cpRepo.On("FindCounterpartyByID", suite.ctx, "cp-1").Return(&domain.Counterparty{CounterpartyID: "cp-1"}, nil).Once()
	req := memberRequest()
	req.IsPEP = true

	_, err := suite.service.AddMember(suite.ctx, "cp-1", req, domain.Actor{UserID: "u1"})

	fields, ok := apperrors.FieldErrors(err)
	suite.Require().True(ok)
	suite.Contains(fields, "pepPosition")
}

func (suite *MemberServiceTestSuite) TestAddMember_PositionDroppedWhenNotPEP() {
	suite.cpRepo.On("FindCounterpartyByID", suite.ctx, "cp-1").Return(&domain.Counterparty{CounterpartyID: "cp-1"}, nil).Once()
	suite.memberRepo.On("FindMemberByIdentification", suite.ctx, "cp-1", "52123456").Return(nil, apperrors.ErrNotFound).Once()
	suite.memberRepo.On("SaveMember", suite.ctx, mock.MatchedBy(func(m domain.Member) bool {
		return m.PEPPosition == ""
	})).Return(nil).Once()
	req := memberRequest()
	req.PEPPosition = "Senator"

	m, err := suite.service.AddMember(suite.ctx, "cp-1", req, domain.Actor{UserID: "u1"})

	suite.Require().NoError(err)
	suite.Empty(m.PEPPosition)
}

func (suite *MemberServiceTestSuite) TestUpdateMember_SameIdentificationSkipsDuplicateCheck() {
	suite.memberRepo.On("FindMemberByID", suite.ctx, "m-1").Return(existingMember("owner"), nil).Once()
	suite.memberRepo.On("UpdateMember", suite.ctx, mock.MatchedBy(func(m domain.Member) bool {
		return m.IsPEP && m.PEPPosition == "Mayor"
	})).Return(nil).Once()

	pep, position := true, "Mayor"
	_, err := suite.service.UpdateMember(suite.ctx, "m-1", dto.UpdateMemberRequest{IsPEP: &pep, PEPPosition: &position}, domain.Actor{UserID: "owner"})

	suite.Require().NoError(err)
	suite.memberRepo.AssertNotCalled(suite.T(), "FindMemberByIdentification", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *MemberServiceTestSuite) TestUpdateMember_NonOwnerDenied() {
	suite.memberRepo.On("FindMemberByID", suite.ctx, "m-1").Return(existingMember("owner"), nil).Once()

	name := "X"
	_, err := suite.service.UpdateMember(suite.ctx, "m-1", dto.UpdateMemberRequest{FullName: &name}, domain.Actor{UserID: "other"})

	suite.ErrorIs(err, apperrors.ErrPermissionDenied)
}

func (suite *MemberServiceTestSuite) TestDeactivateMember_Staff() {
	suite.memberRepo.On("FindMemberByID", suite.ctx, "m-1").Return(existingMember("owner"), nil).Once()
	suite.memberRepo.On("UpdateMember", suite.ctx, mock.MatchedBy(func(m domain.Member) bool {
		return !m.IsActive()
	})).Return(nil).Once()

	err := suite.service.DeactivateMember(suite.ctx, "m-1", domain.Actor{UserID: "staff", IsStaff: true})

	suite.Require().NoError(err)
}

func (suite *MemberServiceTestSuite) TestListMembers_ActiveOnly() {
	inactive := *existingMember("owner")
	inactive.MemberID = "m-2"
	inactive.Active = false
	suite.memberRepo.On("ListMembers", suite.ctx, "cp-1", domain.ActiveOnly).
		Return([]domain.Member{*existingMember("owner"), inactive}, nil).Once()

	members, err := suite.service.ListMembers(suite.ctx, "cp-1", domain.ActiveOnly)

	suite.Require().NoError(err)
	suite.Len(members, 1)
}

func TestMemberService(t *testing.T) {
	suite.Run(t, new(MemberServiceTestSuite))
}
