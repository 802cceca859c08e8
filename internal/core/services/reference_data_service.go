package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/counterparty_portal/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/counterparty_portal/internal/core/ports/services"
	"github.com/SscSPs/counterparty_portal/internal/dto"
	"github.com/google/uuid"
)

const (
	kindCounterpartyType   = "counterparty_type"
	kindCounterpartyStatus = "counterparty_status"
	kindDocumentType       = "document_type"
	kindRater              = "rater"
	kindOutlook            = "outlook"

	defaultStatusColor = "#6c757d"
)

type referenceDataService struct {
	BaseService
	refRepo portsrepo.ReferenceDataRepositoryFacade
}

// NewReferenceDataService creates the service for admin-managed lookups.
func NewReferenceDataService(refRepo portsrepo.ReferenceDataRepositoryFacade, opts ...Option) portssvc.ReferenceDataSvcFacade {
	return &referenceDataService{
		BaseService: newBaseService(opts),
		refRepo:     refRepo,
	}
}

var _ portssvc.ReferenceDataSvcFacade = (*referenceDataService)(nil)

func (s *referenceDataService) ListCounterpartyTypes(ctx context.Context, vis domain.Visibility) ([]domain.CounterpartyType, error) {
	items, err := s.refRepo.ListCounterpartyTypes(ctx, vis)
	if err != nil {
		s.LogError(ctx, err, "Failed to list counterparty types")
		return nil, err
	}
	return orEmpty(items), nil
}

func (s *referenceDataService) ListCounterpartyStatuses(ctx context.Context, vis domain.Visibility) ([]domain.CounterpartyStatus, error) {
	items, err := s.refRepo.ListCounterpartyStatuses(ctx, vis)
	if err != nil {
		s.LogError(ctx, err, "Failed to list counterparty statuses")
		return nil, err
	}
	return orEmpty(items), nil
}

func (s *referenceDataService) ListDocumentTypes(ctx context.Context, vis domain.Visibility) ([]domain.DocumentType, error) {
	items, err := s.refRepo.ListDocumentTypes(ctx, vis)
	if err != nil {
		s.LogError(ctx, err, "Failed to list document types")
		return nil, err
	}
	return orEmpty(items), nil
}

func (s *referenceDataService) ListRaters(ctx context.Context, vis domain.Visibility) ([]domain.Rater, error) {
	items, err := s.refRepo.ListRaters(ctx, vis)
	if err != nil {
		s.LogError(ctx, err, "Failed to list raters")
		return nil, err
	}
	return orEmpty(items), nil
}

func (s *referenceDataService) ListOutlooks(ctx context.Context, vis domain.Visibility) ([]domain.Outlook, error) {
	items, err := s.refRepo.ListOutlooks(ctx, vis)
	if err != nil {
		s.LogError(ctx, err, "Failed to list outlooks")
		return nil, err
	}
	return orEmpty(items), nil
}

func (s *referenceDataService) SaveCounterpartyType(ctx context.Context, typeID string, req dto.ReferenceDataRequest, actor domain.Actor) (*domain.CounterpartyType, error) {
	if err := s.AuthorizeStaff(ctx, actor, kindCounterpartyType); err != nil {
		return nil, err
	}
	t := domain.CounterpartyType{TypeID: uuid.NewString(), AuditFields: domain.NewAuditFields(actor.UserID, s.Now())}
	if typeID != "" {
		existing, err := s.refRepo.FindCounterpartyType(ctx, typeID)
		if err != nil {
			return nil, err
		}
		t = *existing
		t.Touch(actor.UserID, s.Now())
	}
	t.Code = codeOrSlug(req.Code, req.Name)
	t.Name = strings.TrimSpace(req.Name)
	t.Description = req.Description
	t.IsActive = req.Active()

	if err := s.refRepo.SaveCounterpartyType(ctx, t); err != nil {
		s.LogError(ctx, err, "Failed to save counterparty type", slog.String("code", t.Code))
		return nil, err
	}
	s.logSaved(ctx, kindCounterpartyType, t.TypeID, typeID == "")
	return &t, nil
}

func (s *referenceDataService) SaveCounterpartyStatus(ctx context.Context, statusID string, req dto.ReferenceDataRequest, actor domain.Actor) (*domain.CounterpartyStatus, error) {
	if err := s.AuthorizeStaff(ctx, actor, kindCounterpartyStatus); err != nil {
		return nil, err
	}
	st := domain.CounterpartyStatus{StatusID: uuid.NewString(), Color: defaultStatusColor, AuditFields: domain.NewAuditFields(actor.UserID, s.Now())}
	if statusID != "" {
		existing, err := s.refRepo.FindCounterpartyStatus(ctx, statusID)
		if err != nil {
			return nil, err
		}
		st = *existing
		st.Touch(actor.UserID, s.Now())
	}
	st.Code = codeOrSlug(req.Code, req.Name)
	st.Name = strings.TrimSpace(req.Name)
	st.Description = req.Description
	if req.Color != "" {
		st.Color = req.Color
	}
	st.IsActive = req.Active()

	if err := s.refRepo.SaveCounterpartyStatus(ctx, st); err != nil {
		s.LogError(ctx, err, "Failed to save counterparty status", slog.String("code", st.Code))
		return nil, err
	}
	s.logSaved(ctx, kindCounterpartyStatus, st.StatusID, statusID == "")
	return &st, nil
}

func (s *referenceDataService) SaveDocumentType(ctx context.Context, typeID string, req dto.ReferenceDataRequest, actor domain.Actor) (*domain.DocumentType, error) {
	if err := s.AuthorizeStaff(ctx, actor, kindDocumentType); err != nil {
		return nil, err
	}
	t := domain.DocumentType{TypeID: uuid.NewString(), AuditFields: domain.NewAuditFields(actor.UserID, s.Now())}
	if typeID != "" {
		existing, err := s.refRepo.FindDocumentType(ctx, typeID)
		if err != nil {
			return nil, err
		}
		t = *existing
		t.Touch(actor.UserID, s.Now())
	}
	t.Code = codeOrSlug(req.Code, req.Name)
	t.Name = strings.TrimSpace(req.Name)
	t.Description = req.Description
	t.RequiresExpiration = req.RequiresExpiration
	t.IsActive = req.Active()

	if err := s.refRepo.SaveDocumentType(ctx, t); err != nil {
		s.LogError(ctx, err, "Failed to save document type", slog.String("code", t.Code))
		return nil, err
	}
	s.logSaved(ctx, kindDocumentType, t.TypeID, typeID == "")
	return &t, nil
}

func (s *referenceDataService) SaveRater(ctx context.Context, raterID string, req dto.ReferenceDataRequest, actor domain.Actor) (*domain.Rater, error) {
	if err := s.AuthorizeStaff(ctx, actor, kindRater); err != nil {
		return nil, err
	}
	r := domain.Rater{RaterID: uuid.NewString(), AuditFields: domain.NewAuditFields(actor.UserID, s.Now())}
	if raterID != "" {
		existing, err := s.refRepo.FindRater(ctx, raterID)
		if err != nil {
			return nil, err
		}
		r = *existing
		r.Touch(actor.UserID, s.Now())
	}
	r.Name = strings.TrimSpace(req.Name)
	r.IsActive = req.Active()

	if err := s.refRepo.SaveRater(ctx, r); err != nil {
		s.LogError(ctx, err, "Failed to save rater", slog.String("name", r.Name))
		return nil, err
	}
	s.logSaved(ctx, kindRater, r.RaterID, raterID == "")
	return &r, nil
}

func (s *referenceDataService) SaveOutlook(ctx context.Context, outlookID string, req dto.ReferenceDataRequest, actor domain.Actor) (*domain.Outlook, error) {
	if err := s.AuthorizeStaff(ctx, actor, kindOutlook); err != nil {
		return nil, err
	}
	o := domain.Outlook{OutlookID: uuid.NewString(), AuditFields: domain.NewAuditFields(actor.UserID, s.Now())}
	if outlookID != "" {
		existing, err := s.refRepo.FindOutlook(ctx, outlookID)
		if err != nil {
			return nil, err
		}
		o = *existing
		o.Touch(actor.UserID, s.Now())
	}
	o.Name = strings.TrimSpace(req.Name)
	o.IsActive = req.Active()

	if err := s.refRepo.SaveOutlook(ctx, o); err != nil {
		s.LogError(ctx, err, "Failed to save outlook", slog.String("name", o.Name))
		return nil, err
	}
	s.logSaved(ctx, kindOutlook, o.OutlookID, outlookID == "")
	return &o, nil
}

func (s *referenceDataService) logSaved(ctx context.Context, kind, id string, created bool) {
	if created {
		s.Metrics.IncrementRecordsCreated(kind)
	}
	s.LogInfo(ctx, "Reference data saved",
		slog.String("kind", kind),
		slog.String("id", id),
		slog.Bool("created", created))
}

// codeOrSlug returns code, or a lower-case snake_case slug of name when code is blank.
func codeOrSlug(code, name string) string {
	if c := strings.TrimSpace(code); c != "" {
		return strings.ToLower(c)
	}
	return strings.ToLower(strings.Join(strings.Fields(name), "_"))
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
