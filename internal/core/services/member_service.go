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
	"github.com/google/uuid"
)

const kindMember = "member"

type memberService struct {
	BaseService
	memberRepo       portsrepo.MemberRepositoryFacade
	counterpartyRepo portsrepo.CounterpartyReader
}

// NewMemberService creates the member service.
func NewMemberService(memberRepo portsrepo.MemberRepositoryFacade, counterpartyRepo portsrepo.CounterpartyReader, opts ...Option) portssvc.MemberSvcFacade {
	return &memberService{
		BaseService:      newBaseService(opts),
		memberRepo:       memberRepo,
		counterpartyRepo: counterpartyRepo,
	}
}

var _ portssvc.MemberSvcFacade = (*memberService)(nil)

func (s *memberService) AddMember(ctx context.Context, counterpartyID string, req dto.CreateMemberRequest, actor domain.Actor) (*domain.Member, error) {
	if _, err := s.counterpartyRepo.FindCounterpartyByID(ctx, counterpartyID); err != nil {
		return nil, err
	}

	now := s.Now()
	m := domain.Member{
		MemberID:             uuid.NewString(),
		CounterpartyID:       counterpartyID,
		PersonType:           domain.PersonType(req.PersonType),
		FullName:             strings.TrimSpace(req.FullName),
		IdentificationNumber: strings.TrimSpace(req.IdentificationNumber),
		Nationality:          req.Nationality,
		BirthDate:            normalizeDate(req.BirthDate),
		Category:             domain.MemberCategory(req.Category),
		IsPEP:                req.IsPEP,
		PEPPosition:          strings.TrimSpace(req.PEPPosition),
		SoftDelete:           domain.Activated(),
		AuditFields:          domain.NewAuditFields(actor.UserID, now),
	}
	if !m.IsPEP {
		m.PEPPosition = ""
	}
	if err := m.Validate(now); err != nil {
		return nil, err
	}
	if err := s.checkIdentificationFree(ctx, m); err != nil {
		return nil, err
	}

	if err := s.memberRepo.SaveMember(ctx, m); err != nil {
		s.LogError(ctx, err, "Failed to save member", slog.String("counterparty_id", counterpartyID))
		return nil, err
	}
	s.Metrics.IncrementRecordsCreated(kindMember)
	s.LogInfo(ctx, "Member added",
		slog.String("member_id", m.MemberID),
		slog.String("counterparty_id", counterpartyID),
		slog.Bool("pep", m.IsPEP))
	return &m, nil
}

func (s *memberService) UpdateMember(ctx context.Context, memberID string, req dto.UpdateMemberRequest, actor domain.Actor) (*domain.Member, error) {
	m, err := s.GetMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeMutation(ctx, actor, m, kindMember, memberID); err != nil {
		return nil, err
	}

	previousID := m.IdentificationNumber
	if req.PersonType != nil {
		m.PersonType = domain.PersonType(*req.PersonType)
	}
	if req.FullName != nil {
		m.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.IdentificationNumber != nil {
		m.IdentificationNumber = strings.TrimSpace(*req.IdentificationNumber)
	}
	setString(&m.Nationality, req.Nationality)
	if req.BirthDate != nil {
		m.BirthDate = normalizeDate(req.BirthDate)
	}
	if req.Category != nil {
		m.Category = domain.MemberCategory(*req.Category)
	}
	if req.IsPEP != nil {
		m.IsPEP = *req.IsPEP
	}
	if req.PEPPosition != nil {
		m.PEPPosition = strings.TrimSpace(*req.PEPPosition)
	}
	if !m.IsPEP {
		m.PEPPosition = ""
	}

	now := s.Now()
	if err := m.Validate(now); err != nil {
		return nil, err
	}
	if m.IdentificationNumber != previousID {
		if err := s.checkIdentificationFree(ctx, *m); err != nil {
			return nil, err
		}
	}

	m.Touch(actor.UserID, now)
	if err := s.memberRepo.UpdateMember(ctx, *m); err != nil {
		s.LogError(ctx, err, "Failed to update member", slog.String("member_id", memberID))
		return nil, err
	}
	return m, nil
}

func (s *memberService) DeactivateMember(ctx context.Context, memberID string, actor domain.Actor) error {
	m, err := s.GetMember(ctx, memberID)
	if err != nil {
		return err
	}
	if err := s.AuthorizeMutation(ctx, actor, m, kindMember, memberID); err != nil {
		return err
	}

	now := s.Now()
	m.Deactivate(actor.UserID, now)
	m.Touch(actor.UserID, now)
	if err := s.memberRepo.UpdateMember(ctx, *m); err != nil {
		s.LogError(ctx, err, "Failed to deactivate member", slog.String("member_id", memberID))
		return err
	}
	s.Metrics.IncrementRecordsRemoved(kindMember)
	return nil
}

func (s *memberService) GetMember(ctx context.Context, memberID string) (*domain.Member, error) {
	m, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get member", slog.String("member_id", memberID))
		}
		return nil, err
	}
	return m, nil
}

func (s *memberService) ListMembers(ctx context.Context, counterpartyID string, vis domain.Visibility) ([]domain.Member, error) {
	members, err := s.memberRepo.ListMembers(ctx, counterpartyID, vis)
	if err != nil {
		s.LogError(ctx, err, "Failed to list members", slog.String("counterparty_id", counterpartyID))
		return nil, err
	}
	return domain.FilterActive(members, vis), nil
}

// checkIdentificationFree reports ErrDuplicate when another member of the same
// counterparty, active or not, already holds the identification number.
func (s *memberService) checkIdentificationFree(ctx context.Context, m domain.Member) error {
	existing, err := s.memberRepo.FindMemberByIdentification(ctx, m.CounterpartyID, m.IdentificationNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		s.LogError(ctx, err, "Failed to check member identification", slog.String("counterparty_id", m.CounterpartyID))
		return err
	}
	if existing.MemberID == m.MemberID {
		return nil
	}
	return fmt.Errorf("member with identification %s in counterparty %s: %w", m.IdentificationNumber, m.CounterpartyID, apperrors.ErrDuplicate)
}
