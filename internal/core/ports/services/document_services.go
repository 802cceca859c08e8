package services

import (
	"context"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	"github.com/SscSPs/counterparty_portal/internal/dto"
)

// DocumentReaderSvc defines read operations for documents
type DocumentReaderSvc interface {
	GetDocument(ctx context.Context, documentID string) (*domain.Document, error)
	ListDocuments(ctx context.Context, counterpartyID string, vis domain.Visibility) ([]domain.Document, error)

	// GroupedDocuments returns the active documents grouped by category.
	GroupedDocuments(ctx context.Context, counterpartyID string) ([]domain.DocumentGroup, error)

	// DownloadURL returns a time-limited link to the stored file.
	DownloadURL(ctx context.Context, documentID string) (*dto.DownloadURLResponse, error)
}

// DocumentWriterSvc defines write operations for documents
type DocumentWriterSvc interface {
	// UploadDocument stores the file and its metadata. policy bounds the accepted file.
	UploadDocument(ctx context.Context, counterpartyID string, req dto.UploadDocumentRequest, file dto.FileUpload, policy domain.UploadPolicy, actor domain.Actor) (*domain.Document, error)
	UpdateDocument(ctx context.Context, documentID string, req dto.UpdateDocumentRequest, actor domain.Actor) (*domain.Document, error)
	DeactivateDocument(ctx context.Context, documentID string, actor domain.Actor) error
}

// DocumentSvcFacade combines all document service interfaces
type DocumentSvcFacade interface {
	DocumentReaderSvc
	DocumentWriterSvc
}
