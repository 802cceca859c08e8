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
	"github.com/SscSPs/counterparty_portal/internal/utils/pagination"
	"github.com/google/uuid"
)

const kindCounterparty = "counterparty"

// StatusCodes names the counterparty statuses the workflow relies on.
type StatusCodes struct {
	// Default is assigned when a counterparty is created without a status.
	Default string
	// Inactive is assigned on deactivation and excluded from renewal lists.
	Inactive string
}

type counterpartyService struct {
	BaseService
	counterpartyRepo portsrepo.CounterpartyRepositoryFacade
	refRepo          portsrepo.ReferenceDataReader
	statusCodes      StatusCodes
}

// NewCounterpartyService creates the counterparty service.
func NewCounterpartyService(
	counterpartyRepo portsrepo.CounterpartyRepositoryFacade,
	refRepo portsrepo.ReferenceDataReader,
	statusCodes StatusCodes,
	opts ...Option,
) portssvc.CounterpartySvcFacade {
	return &counterpartyService{
		BaseService:      newBaseService(opts),
		counterpartyRepo: counterpartyRepo,
		refRepo:          refRepo,
		statusCodes:      statusCodes,
	}
}

var _ portssvc.CounterpartySvcFacade = (*counterpartyService)(nil)

func (s *counterpartyService) CreateCounterparty(ctx context.Context, req dto.CreateCounterpartyRequest, actor domain.Actor) (*domain.Counterparty, error) {
	now := s.Now()
	cp := domain.Counterparty{
		CounterpartyID:                   uuid.NewString(),
		FullCompanyName:                  strings.TrimSpace(req.FullCompanyName),
		TradingName:                      req.TradingName,
		CompanyWebsite:                   req.CompanyWebsite,
		HomeRegulatoryBody:               req.HomeRegulatoryBody,
		IsLicensedByRegulatoryBody:       req.IsLicensedByRegulatoryBody,
		IsPubliclyListed:                 req.IsPubliclyListed,
		PubliclyListedCountry:            req.PubliclyListedCountry,
		IsHoldingCompany:                 req.IsHoldingCompany,
		ExternalAuditors:                 req.ExternalAuditors,
		RegisteredAddress:                req.RegisteredAddress,
		BusinessAddress:                  req.BusinessAddress,
		ContactTelephone:                 req.ContactTelephone,
		ContactEmail:                     req.ContactEmail,
		CompanyNatureBusiness:            req.CompanyNatureBusiness,
		Domicile:                         req.Domicile,
		CompanyIncorporationRegistration: req.CompanyIncorporationRegistration,
		DateIncorporation:                normalizeDate(req.DateIncorporation),
		NumberOfEmployees:                req.NumberOfEmployees,
		TypeID:                           req.TypeID,
		StatusID:                         req.StatusID,
		Description:                      req.Description,
		Notes:                            req.Notes,
		AuditFields:                      domain.NewAuditFields(actor.UserID, now),
	}
	if d := normalizeDate(req.NextDueDiligenceDate); d != nil {
		cp.NextDueDiligenceDate = *d
	}
	cp.ApplyDefaults(now)

	if cp.StatusID == "" {
		status, err := s.refRepo.FindCounterpartyStatusByCode(ctx, s.statusCodes.Default)
		if err != nil {
			s.LogError(ctx, err, "Failed to resolve default counterparty status", slog.String("status_code", s.statusCodes.Default))
			return nil, fmt.Errorf("failed to resolve default status %q: %w", s.statusCodes.Default, err)
		}
		cp.StatusID = status.StatusID
	}

	if err := s.validateReferences(ctx, cp); err != nil {
		return nil, err
	}
	if err := cp.Validate(); err != nil {
		return nil, err
	}

	if err := s.counterpartyRepo.SaveCounterparty(ctx, cp); err != nil {
		s.LogError(ctx, err, "Failed to save counterparty", slog.String("name", cp.FullCompanyName))
		return nil, err
	}

	s.Metrics.IncrementRecordsCreated(kindCounterparty)
	s.LogInfo(ctx, "Counterparty created",
		slog.String("counterparty_id", cp.CounterpartyID),
		slog.Time("next_due_diligence", cp.NextDueDiligenceDate))
	return &cp, nil
}

func (s *counterpartyService) UpdateCounterparty(ctx context.Context, counterpartyID string, req dto.UpdateCounterpartyRequest, actor domain.Actor) (*domain.Counterparty, error) {
	cp, err := s.GetCounterparty(ctx, counterpartyID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeMutation(ctx, actor, cp, kindCounterparty, counterpartyID); err != nil {
		return nil, err
	}

	setString(&cp.FullCompanyName, req.FullCompanyName)
	setString(&cp.TradingName, req.TradingName)
	setString(&cp.CompanyWebsite, req.CompanyWebsite)
	setString(&cp.HomeRegulatoryBody, req.HomeRegulatoryBody)
	setString(&cp.PubliclyListedCountry, req.PubliclyListedCountry)
	setString(&cp.ExternalAuditors, req.ExternalAuditors)
	setString(&cp.RegisteredAddress, req.RegisteredAddress)
	setString(&cp.BusinessAddress, req.BusinessAddress)
	setString(&cp.ContactTelephone, req.ContactTelephone)
	setString(&cp.ContactEmail, req.ContactEmail)
	setString(&cp.CompanyNatureBusiness, req.CompanyNatureBusiness)
	setString(&cp.Domicile, req.Domicile)
	setString(&cp.CompanyIncorporationRegistration, req.CompanyIncorporationRegistration)
	setString(&cp.TypeID, req.TypeID)
	setString(&cp.StatusID, req.StatusID)
	setString(&cp.Description, req.Description)
	setString(&cp.Notes, req.Notes)
	if req.IsLicensedByRegulatoryBody != nil {
		cp.IsLicensedByRegulatoryBody = req.IsLicensedByRegulatoryBody
	}
	if req.IsPubliclyListed != nil {
		cp.IsPubliclyListed = req.IsPubliclyListed
	}
	if req.IsHoldingCompany != nil {
		cp.IsHoldingCompany = req.IsHoldingCompany
	}
	if req.DateIncorporation != nil {
		cp.DateIncorporation = normalizeDate(req.DateIncorporation)
	}
	if req.NumberOfEmployees != nil {
		cp.NumberOfEmployees = req.NumberOfEmployees
	}
	if d := normalizeDate(req.NextDueDiligenceDate); d != nil {
		cp.NextDueDiligenceDate = *d
	}
	cp.FullCompanyName = strings.TrimSpace(cp.FullCompanyName)

	if err := s.validateReferences(ctx, *cp); err != nil {
		return nil, err
	}
	if err := cp.Validate(); err != nil {
		return nil, err
	}

	cp.Touch(actor.UserID, s.Now())
	if err := s.counterpartyRepo.UpdateCounterparty(ctx, *cp); err != nil {
		s.LogError(ctx, err, "Failed to update counterparty", slog.String("counterparty_id", counterpartyID))
		return nil, err
	}
	return cp, nil
}

func (s *counterpartyService) DeactivateCounterparty(ctx context.Context, counterpartyID string, actor domain.Actor) error {
	cp, err := s.GetCounterparty(ctx, counterpartyID)
	if err != nil {
		return err
	}
	if err := s.AuthorizeMutation(ctx, actor, cp, kindCounterparty, counterpartyID); err != nil {
		return err
	}

	status, err := s.refRepo.FindCounterpartyStatusByCode(ctx, s.statusCodes.Inactive)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve inactive counterparty status", slog.String("status_code", s.statusCodes.Inactive))
		return fmt.Errorf("failed to resolve inactive status %q: %w", s.statusCodes.Inactive, err)
	}
	if cp.StatusID == status.StatusID {
		return nil
	}

	cp.StatusID = status.StatusID
	cp.Touch(actor.UserID, s.Now())
	if err := s.counterpartyRepo.UpdateCounterparty(ctx, *cp); err != nil {
		s.LogError(ctx, err, "Failed to deactivate counterparty", slog.String("counterparty_id", counterpartyID))
		return err
	}
	s.Metrics.IncrementRecordsRemoved(kindCounterparty)
	s.LogInfo(ctx, "Counterparty deactivated", slog.String("counterparty_id", counterpartyID))
	return nil
}

func (s *counterpartyService) GetCounterparty(ctx context.Context, counterpartyID string) (*domain.Counterparty, error) {
	cp, err := s.counterpartyRepo.FindCounterpartyByID(ctx, counterpartyID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get counterparty", slog.String("counterparty_id", counterpartyID))
		}
		return nil, err
	}
	return cp, nil
}

func (s *counterpartyService) ListCounterparties(ctx context.Context, params dto.ListCounterpartiesParams) ([]domain.Counterparty, string, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	afterName, afterID, err := pagination.DecodeNameCursor(params.NextToken)
	if err != nil {
		return nil, "", apperrors.NewValidationError("nextToken", "is not a valid page token")
	}

	filter := domain.CounterpartyFilter{
		Search:   strings.TrimSpace(params.Search),
		TypeID:   params.TypeID,
		StatusID: params.StatusID,
	}
	if params.DueWithinDays != nil {
		dueBy := lifecycle.Date(s.Now()).AddDate(0, 0, *params.DueWithinDays)
		filter.DueBefore = &dueBy
	}

	items, err := s.counterpartyRepo.ListCounterparties(ctx, filter, limit+1, afterName, afterID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list counterparties")
		return nil, "", err
	}

	next := ""
	if len(items) > limit {
		items = items[:limit]
		last := items[len(items)-1]
		next = pagination.EncodeNameCursor(last.FullCompanyName, last.CounterpartyID)
	}
	if items == nil {
		items = []domain.Counterparty{}
	}
	return items, next, nil
}

func (s *counterpartyService) GetRenewalStatus(ctx context.Context, counterpartyID string) (*domain.RenewalStatus, error) {
	cp, err := s.GetCounterparty(ctx, counterpartyID)
	if err != nil {
		return nil, err
	}
	r := cp.Renewal(s.Now())
	return &r, nil
}

func (s *counterpartyService) ListDueForRenewal(ctx context.Context, withinDays int) ([]domain.RenewalStatus, error) {
	if withinDays < 0 {
		return nil, apperrors.NewValidationError("withinDays", "must not be negative")
	}
	now := s.Now()
	dueBy := lifecycle.Date(now).AddDate(0, 0, withinDays)

	excluded := ""
	if status, err := s.refRepo.FindCounterpartyStatusByCode(ctx, s.statusCodes.Inactive); err == nil {
		excluded = status.StatusID
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	cps, err := s.counterpartyRepo.ListDueForRenewal(ctx, dueBy, excluded)
	if err != nil {
		s.LogError(ctx, err, "Failed to list counterparties due for renewal", slog.Int("within_days", withinDays))
		return nil, err
	}
	out := make([]domain.RenewalStatus, len(cps))
	for i, cp := range cps {
		out[i] = cp.Renewal(now)
	}
	return out, nil
}

// validateReferences checks that the type and status exist and are active.
func (s *counterpartyService) validateReferences(ctx context.Context, cp domain.Counterparty) error {
	v := &apperrors.ValidationError{}
	if cp.TypeID != "" {
		t, err := s.refRepo.FindCounterpartyType(ctx, cp.TypeID)
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			v.Add("typeID", "does not exist")
		case err != nil:
			return err
		case !t.IsActive:
			v.Add("typeID", "refers to an inactive type")
		}
	}
	if cp.StatusID != "" {
		st, err := s.refRepo.FindCounterpartyStatus(ctx, cp.StatusID)
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			v.Add("statusID", "does not exist")
		case err != nil:
			return err
		case !st.IsActive:
			v.Add("statusID", "refers to an inactive status")
		}
	}
	return v.OrNil()
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
