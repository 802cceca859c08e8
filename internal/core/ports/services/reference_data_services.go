package services

import (
	"context"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	"github.com/SscSPs/counterparty_portal/internal/dto"
)

// ReferenceDataReaderSvc lists the admin-managed lookups
type ReferenceDataReaderSvc interface {
	ListCounterpartyTypes(ctx context.Context, vis domain.Visibility) ([]domain.CounterpartyType, error)
	ListCounterpartyStatuses(ctx context.Context, vis domain.Visibility) ([]domain.CounterpartyStatus, error)
	ListDocumentTypes(ctx context.Context, vis domain.Visibility) ([]domain.DocumentType, error)
	ListRaters(ctx context.Context, vis domain.Visibility) ([]domain.Rater, error)
	ListOutlooks(ctx context.Context, vis domain.Visibility) ([]domain.Outlook, error)
}

// ReferenceDataWriterSvc saves lookups. An empty id creates a new entry.
// Writes are restricted to staff.
type ReferenceDataWriterSvc interface {
	SaveCounterpartyType(ctx context.Context, typeID string, req dto.ReferenceDataRequest, actor domain.Actor) (*domain.CounterpartyType, error)
	SaveCounterpartyStatus(ctx context.Context, statusID string, req dto.ReferenceDataRequest, actor domain.Actor) (*domain.CounterpartyStatus, error)
	SaveDocumentType(ctx context.Context, typeID string, req dto.ReferenceDataRequest, actor domain.Actor) (*domain.DocumentType, error)
	SaveRater(ctx context.Context, raterID string, req dto.ReferenceDataRequest, actor domain.Actor) (*domain.Rater, error)
	SaveOutlook(ctx context.Context, outlookID string, req dto.ReferenceDataRequest, actor domain.Actor) (*domain.Outlook, error)
}

// ReferenceDataSvcFacade combines all reference data service interfaces
type ReferenceDataSvcFacade interface {
	ReferenceDataReaderSvc
	ReferenceDataWriterSvc
}
