package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/counterparty_portal/internal/apperrors"
	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	"github.com/SscSPs/counterparty_portal/internal/core/lifecycle"
	portsrepo "github.com/SscSPs/counterparty_portal/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/counterparty_portal/internal/core/ports/services"
	"github.com/SscSPs/counterparty_portal/internal/dto"
	"github.com/google/uuid"
)

const kindDueDiligence = "due_diligence"

type dueDiligenceService struct {
	BaseService
	ddRepo     portsrepo.DueDiligenceRepositoryFacade
	memberRepo portsrepo.MemberReader
	notifier   portssvc.NotificationSvcFacade
}

// NewDueDiligenceService creates the screening workflow. The provider itself
// is external: results arrive through RecordResult.
func NewDueDiligenceService(
	ddRepo portsrepo.DueDiligenceRepositoryFacade,
	memberRepo portsrepo.MemberReader,
	notifier portssvc.NotificationSvcFacade,
	opts ...Option,
) portssvc.DueDiligenceSvcFacade {
	return &dueDiligenceService{
		BaseService: newBaseService(opts),
		ddRepo:      ddRepo,
		memberRepo:  memberRepo,
		notifier:    notifier,
	}
}

var _ portssvc.DueDiligenceSvcFacade = (*dueDiligenceService)(nil)

func (s *dueDiligenceService) RequestDueDiligence(ctx context.Context, memberID string, actor domain.Actor) (*domain.DueDiligence, error) {
	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if !member.IsActive() {
		return nil, apperrors.NewValidationError("memberID", "refers to an inactive member")
	}

	dd := domain.DueDiligence{
		DueDiligenceID:    uuid.NewString(),
		MemberID:          member.MemberID,
		CounterpartyID:    member.CounterpartyID,
		State:             domain.DDPending,
		ExternalRequestID: uuid.NewString(),
		AuditFields:       domain.NewAuditFields(actor.UserID, s.Now()),
	}
	if err := s.ddRepo.SaveDueDiligence(ctx, dd); err != nil {
		s.LogError(ctx, err, "Failed to save due diligence request", slog.String("member_id", memberID))
		return nil, err
	}

	s.Metrics.IncrementRecordsCreated(kindDueDiligence)
	s.LogInfo(ctx, "Due diligence requested",
		slog.String("due_diligence_id", dd.DueDiligenceID),
		slog.String("member_id", memberID))
	return &dd, nil
}

func (s *dueDiligenceService) RecordResult(ctx context.Context, req dto.DueDiligenceResultRequest) (*domain.DueDiligence, error) {
	state := domain.DueDiligenceState(req.State)
	v := &apperrors.ValidationError{}
	if !state.Valid() {
		v.Add("state", "is not a known state")
	}
	var risk *domain.RiskLevel
	if req.RiskLevel != nil && *req.RiskLevel != "" {
		r := domain.RiskLevel(strings.ToLower(*req.RiskLevel))
		if !r.Valid() {
			v.Add("riskLevel", "must be one of low, medium, high, critical")
		}
		risk = &r
	}
	if req.PositiveMatches < 0 {
		v.Add("positiveMatches", "must not be negative")
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	dd, err := s.findForResult(ctx, req)
	if err != nil {
		return nil, err
	}
	if dd.State.Terminal() && dd.State != state {
		return nil, apperrors.NewValidationError("state", fmt.Sprintf("request is already %s", dd.State))
	}

	previous := dd.State
	dd.ApplyResult(state, s.Now())
	if risk != nil {
		dd.RiskLevel = risk
	}
	if req.Summary != "" {
		dd.Summary = req.Summary
	}
	dd.PositiveMatches = req.PositiveMatches
	dd.Touch(dd.CreatedBy, s.Now())

	if err := s.ddRepo.UpdateDueDiligence(ctx, *dd); err != nil {
		s.LogError(ctx, err, "Failed to store due diligence result", slog.String("due_diligence_id", dd.DueDiligenceID))
		return nil, err
	}
	s.LogInfo(ctx, "Due diligence result recorded",
		slog.String("due_diligence_id", dd.DueDiligenceID),
		slog.String("state", string(dd.State)))

	if previous != state {
		if err := s.notifyResult(ctx, *dd); err != nil {
			return nil, err
		}
	}
	return dd, nil
}

func (s *dueDiligenceService) Approve(ctx context.Context, dueDiligenceID, comments string, actor domain.Actor) (*domain.DueDiligence, error) {
	dd, err := s.decidable(ctx, dueDiligenceID, actor)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	dd.Decide(true, actor.UserID, comments, now)
	dd.Touch(actor.UserID, now)
	next := lifecycle.NextDueDiligence(now)
	if err := s.ddRepo.ApproveAndRenew(ctx, *dd, dd.CounterpartyID, next); err != nil {
		s.LogError(ctx, err, "Failed to approve due diligence", slog.String("due_diligence_id", dueDiligenceID))
		return nil, err
	}
	s.LogInfo(ctx, "Due diligence approved",
		slog.String("due_diligence_id", dueDiligenceID),
		slog.String("counterparty_id", dd.CounterpartyID),
		slog.Time("next_due_diligence", next))
	return dd, nil
}

func (s *dueDiligenceService) Reject(ctx context.Context, dueDiligenceID, comments string, actor domain.Actor) (*domain.DueDiligence, error) {
	dd, err := s.decidable(ctx, dueDiligenceID, actor)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	dd.Decide(false, actor.UserID, comments, now)
	dd.Touch(actor.UserID, now)
	if err := s.ddRepo.UpdateDueDiligence(ctx, *dd); err != nil {
		s.LogError(ctx, err, "Failed to reject due diligence", slog.String("due_diligence_id", dueDiligenceID))
		return nil, err
	}
	s.LogInfo(ctx, "Due diligence rejected", slog.String("due_diligence_id", dueDiligenceID))
	return dd, nil
}

func (s *dueDiligenceService) GetDueDiligence(ctx context.Context, dueDiligenceID string) (*domain.DueDiligence, error) {
	dd, err := s.ddRepo.FindDueDiligenceByID(ctx, dueDiligenceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get due diligence", slog.String("due_diligence_id", dueDiligenceID))
		}
		return nil, err
	}
	return dd, nil
}

func (s *dueDiligenceService) ListByMember(ctx context.Context, memberID string) ([]domain.DueDiligence, error) {
	items, err := s.ddRepo.ListDueDiligenceByMember(ctx, memberID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list due diligence", slog.String("member_id", memberID))
		return nil, err
	}
	return orEmpty(items), nil
}

func (s *dueDiligenceService) findForResult(ctx context.Context, req dto.DueDiligenceResultRequest) (*domain.DueDiligence, error) {
	if req.DueDiligenceID != "" {
		return s.ddRepo.FindDueDiligenceByID(ctx, req.DueDiligenceID)
	}
	if req.ExternalRequestID != "" {
		return s.ddRepo.FindDueDiligenceByExternalID(ctx, req.ExternalRequestID)
	}
	return nil, apperrors.NewValidationError("dueDiligenceID", "dueDiligenceID or externalRequestID is required")
}

// decidable loads a request that a staff actor may approve or reject.
func (s *dueDiligenceService) decidable(ctx context.Context, dueDiligenceID string, actor domain.Actor) (*domain.DueDiligence, error) {
	if err := s.AuthorizeStaff(ctx, actor, kindDueDiligence); err != nil {
		return nil, err
	}
	dd, err := s.GetDueDiligence(ctx, dueDiligenceID)
	if err != nil {
		return nil, err
	}
	if dd.State != domain.DDCompleted {
		return nil, apperrors.NewValidationError("state", "only completed screenings can be decided")
	}
	if dd.Approved != nil {
		return nil, apperrors.NewValidationError("approved", "a decision was already recorded")
	}
	return dd, nil
}

func (s *dueDiligenceService) notifyResult(ctx context.Context, dd domain.DueDiligence) error {
	if dd.RequestedBy() == "" {
		return nil
	}
	base := domain.Notification{
		RecipientID:    dd.RequestedBy(),
		SubjectID:      dd.DueDiligenceID,
		CounterpartyID: &dd.CounterpartyID,
		MemberID:       &dd.MemberID,
		DueDiligenceID: &dd.DueDiligenceID,
	}

	var batch []domain.Notification
	switch dd.State {
	case domain.DDCompleted:
		n := base
		n.Kind = domain.NotifyDueDiligenceDone
		n.Title = "Due diligence completed"
		n.Message = "The screening finished and awaits a decision."
		batch = append(batch, n)
		if dd.PositiveMatches > 0 {
			m := base
			m.Kind = domain.NotifyMatchFound
			m.Priority = domain.PriorityUrgent
			m.Title = "Screening matches found"
			m.Message = fmt.Sprintf("The screening reported %d positive match(es).", dd.PositiveMatches)
			batch = append(batch, m)
		}
	case domain.DDFailed:
		n := base
		n.Kind = domain.NotifyDueDiligenceFailed
		n.Priority = domain.PriorityHigh
		n.Title = "Due diligence failed"
		n.Message = "The screening provider could not complete the request."
		batch = append(batch, n)
	}

	for _, n := range batch {
		if _, err := s.notifier.Notify(ctx, n); err != nil {
			s.LogError(ctx, err, "Failed to notify due diligence result", slog.String("due_diligence_id", dd.DueDiligenceID))
			return err
		}
	}
	return nil
}
