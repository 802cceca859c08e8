package services

import (
	"context"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	"github.com/SscSPs/counterparty_portal/internal/dto"
)

// DueDiligenceSvcFacade defines the screening workflow operations
type DueDiligenceSvcFacade interface {
	RequestDueDiligence(ctx context.Context, memberID string, actor domain.Actor) (*domain.DueDiligence, error)

	// RecordResult applies a provider callback.
	RecordResult(ctx context.Context, req dto.DueDiligenceResultRequest) (*domain.DueDiligence, error)

	// Approve and Reject are staff-only and apply to completed screenings.
	Approve(ctx context.Context, dueDiligenceID, comments string, actor domain.Actor) (*domain.DueDiligence, error)
	Reject(ctx context.Context, dueDiligenceID, comments string, actor domain.Actor) (*domain.DueDiligence, error)

	GetDueDiligence(ctx context.Context, dueDiligenceID string) (*domain.DueDiligence, error)
	ListByMember(ctx context.Context, memberID string) ([]domain.DueDiligence, error)
}
