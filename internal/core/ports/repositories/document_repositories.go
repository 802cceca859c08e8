package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
)

// DocumentReader defines read operations for document data
type DocumentReader interface {
	FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error)

	// ListDocuments returns documents ordered by category, newest upload first.
	ListDocuments(ctx context.Context, counterpartyID string, vis domain.Visibility) ([]domain.Document, error)

	// ListExpiringDocuments returns active documents whose expiry is on or before dueBy.
	ListExpiringDocuments(ctx context.Context, dueBy time.Time) ([]domain.Document, error)
}

// DocumentWriter defines write operations for document data
type DocumentWriter interface {
	SaveDocument(ctx context.Context, document domain.Document) error
	UpdateDocument(ctx context.Context, document domain.Document) error
}

// DocumentRepositoryFacade combines all document-related repository interfaces
type DocumentRepositoryFacade interface {
	DocumentReader
	DocumentWriter
}
