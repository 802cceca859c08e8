package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
)

// CounterpartyReader defines read operations for counterparty data
type CounterpartyReader interface {
	FindCounterpartyByID(ctx context.Context, counterpartyID string) (*domain.Counterparty, error)

	// ListCounterparties returns a page ordered by company name then ID.
	// afterName/afterID form the keyset cursor of the previous page; both empty for the first page.
	ListCounterparties(ctx context.Context, filter domain.CounterpartyFilter, limit int, afterName, afterID string) ([]domain.Counterparty, error)

	// ListDueForRenewal returns counterparties whose next review is on or before dueBy,
	// excluding those in the given status.
	ListDueForRenewal(ctx context.Context, dueBy time.Time, excludeStatusID string) ([]domain.Counterparty, error)
}

// CounterpartyWriter defines write operations for counterparty data
type CounterpartyWriter interface {
	SaveCounterparty(ctx context.Context, counterparty domain.Counterparty) error
	UpdateCounterparty(ctx context.Context, counterparty domain.Counterparty) error
}

// CounterpartyRepositoryFacade combines all counterparty-related repository interfaces
type CounterpartyRepositoryFacade interface {
	CounterpartyReader
	CounterpartyWriter
}
