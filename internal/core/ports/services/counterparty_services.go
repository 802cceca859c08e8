package services

import (
	"context"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	"github.com/SscSPs/counterparty_portal/internal/dto"
)

// CounterpartyReaderSvc defines read operations for counterparties
type CounterpartyReaderSvc interface {
	GetCounterparty(ctx context.Context, counterpartyID string) (*domain.Counterparty, error)

	// ListCounterparties returns one page and the token of the next page, empty on the last one.
	ListCounterparties(ctx context.Context, params dto.ListCounterpartiesParams) ([]domain.Counterparty, string, error)
}

// CounterpartyLifecycleSvc exposes due-diligence renewal tracking
type CounterpartyLifecycleSvc interface {
	GetRenewalStatus(ctx context.Context, counterpartyID string) (*domain.RenewalStatus, error)

	// ListDueForRenewal returns the active counterparties due within withinDays, overdue ones included.
	ListDueForRenewal(ctx context.Context, withinDays int) ([]domain.RenewalStatus, error)
}

// CounterpartyWriterSvc defines write operations for counterparties
type CounterpartyWriterSvc interface {
	CreateCounterparty(ctx context.Context, req dto.CreateCounterpartyRequest, actor domain.Actor) (*domain.Counterparty, error)
	UpdateCounterparty(ctx context.Context, counterpartyID string, req dto.UpdateCounterpartyRequest, actor domain.Actor) (*domain.Counterparty, error)

	// DeactivateCounterparty moves the counterparty to the inactive status.
	DeactivateCounterparty(ctx context.Context, counterpartyID string, actor domain.Actor) error
}

// CounterpartySvcFacade combines all counterparty service interfaces
type CounterpartySvcFacade interface {
	CounterpartyReaderSvc
	CounterpartyLifecycleSvc
	CounterpartyWriterSvc
}
