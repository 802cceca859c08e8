package repositories

import (
	"context"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
)

// ReferenceDataReader defines read operations for admin-managed lookup lists
type ReferenceDataReader interface {
	FindCounterpartyType(ctx context.Context, typeID string) (*domain.CounterpartyType, error)
	ListCounterpartyTypes(ctx context.Context, vis domain.Visibility) ([]domain.CounterpartyType, error)

	FindCounterpartyStatus(ctx context.Context, statusID string) (*domain.CounterpartyStatus, error)
	FindCounterpartyStatusByCode(ctx context.Context, code string) (*domain.CounterpartyStatus, error)
	ListCounterpartyStatuses(ctx context.Context, vis domain.Visibility) ([]domain.CounterpartyStatus, error)

	FindDocumentType(ctx context.Context, typeID string) (*domain.DocumentType, error)
	ListDocumentTypes(ctx context.Context, vis domain.Visibility) ([]domain.DocumentType, error)

	FindRater(ctx context.Context, raterID string) (*domain.Rater, error)
	ListRaters(ctx context.Context, vis domain.Visibility) ([]domain.Rater, error)

	FindOutlook(ctx context.Context, outlookID string) (*domain.Outlook, error)
	ListOutlooks(ctx context.Context, vis domain.Visibility) ([]domain.Outlook, error)
}

// ReferenceDataWriter defines write operations for admin-managed lookup lists.
// Saves are upserts keyed by ID; a clashing code yields apperrors.ErrDuplicate.
type ReferenceDataWriter interface {
	SaveCounterpartyType(ctx context.Context, t domain.CounterpartyType) error
	SaveCounterpartyStatus(ctx context.Context, s domain.CounterpartyStatus) error
	SaveDocumentType(ctx context.Context, t domain.DocumentType) error
	SaveRater(ctx context.Context, r domain.Rater) error
	SaveOutlook(ctx context.Context, o domain.Outlook) error
}

// ReferenceDataRepositoryFacade combines all reference data repository interfaces
type ReferenceDataRepositoryFacade interface {
	ReferenceDataReader
	ReferenceDataWriter
}
