package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
)

// DueDiligenceRepositoryFacade defines persistence for screening requests.
type DueDiligenceRepositoryFacade interface {
	FindDueDiligenceByID(ctx context.Context, dueDiligenceID string) (*domain.DueDiligence, error)
	FindDueDiligenceByExternalID(ctx context.Context, externalRequestID string) (*domain.DueDiligence, error)
	ListDueDiligenceByMember(ctx context.Context, memberID string) ([]domain.DueDiligence, error)
	SaveDueDiligence(ctx context.Context, dd domain.DueDiligence) error
	UpdateDueDiligence(ctx context.Context, dd domain.DueDiligence) error

	// ApproveAndRenew stores an approval and moves the counterparty's next review
	// date in one transaction.
	ApproveAndRenew(ctx context.Context, dd domain.DueDiligence, counterpartyID string, nextDueDiligence time.Time) error
}
