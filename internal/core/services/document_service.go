package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/SscSPs/counterparty_portal/internal/apperrors"
	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/counterparty_portal/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/counterparty_portal/internal/core/ports/services"
	"github.com/SscSPs/counterparty_portal/internal/core/ports/storage"
	"github.com/SscSPs/counterparty_portal/internal/dto"
	"github.com/google/uuid"
)

const (
	kindDocument = "document"

	defaultDownloadTTL = 15 * time.Minute
)

type documentService struct {
	BaseService
	documentRepo     portsrepo.DocumentRepositoryFacade
	counterpartyRepo portsrepo.CounterpartyReader
	refRepo          portsrepo.ReferenceDataReader
	blobs            storage.BlobStore
	downloadTTL      time.Duration
}

// NewDocumentService creates the document service. Files go to blobs; links
// returned by DownloadURL stay valid for downloadTTL.
func NewDocumentService(
	documentRepo portsrepo.DocumentRepositoryFacade,
	counterpartyRepo portsrepo.CounterpartyReader,
	refRepo portsrepo.ReferenceDataReader,
	blobs storage.BlobStore,
	downloadTTL time.Duration,
	opts ...Option,
) portssvc.DocumentSvcFacade {
	if downloadTTL <= 0 {
		downloadTTL = defaultDownloadTTL
	}
	return &documentService{
		BaseService:      newBaseService(opts),
		documentRepo:     documentRepo,
		counterpartyRepo: counterpartyRepo,
		refRepo:          refRepo,
		blobs:            blobs,
		downloadTTL:      downloadTTL,
	}
}

var _ portssvc.DocumentSvcFacade = (*documentService)(nil)

func (s *documentService) UploadDocument(ctx context.Context, counterpartyID string, req dto.UploadDocumentRequest, file dto.FileUpload, policy domain.UploadPolicy, actor domain.Actor) (*domain.Document, error) {
	if _, err := s.counterpartyRepo.FindCounterpartyByID(ctx, counterpartyID); err != nil {
		return nil, err
	}
	if err := policy.Check(file.FileName, file.Size); err != nil {
		return nil, err
	}

	docType, err := s.documentType(ctx, req.DocumentTypeID)
	if err != nil {
		return nil, err
	}

	doc := domain.Document{
		DocumentID:     uuid.NewString(),
		CounterpartyID: counterpartyID,
		DocumentTypeID: req.DocumentTypeID,
		Category:       domain.DocumentCategory(req.Category),
		Description:    strings.TrimSpace(req.Description),
		IssueDate:      normalizeDate(req.IssueDate),
		ExpiryDate:     normalizeDate(req.ExpiryDate),
		SoftDelete:     domain.Activated(),
		AuditFields:    domain.NewAuditFields(actor.UserID, s.Now()),
	}
	if err := doc.Validate(*docType); err != nil {
		return nil, err
	}

	ref, err := s.storeFile(ctx, fmt.Sprintf("counterparties/%s/documents", counterpartyID), doc.DocumentID, file)
	if err != nil {
		return nil, err
	}
	doc.File = ref

	if err := s.documentRepo.SaveDocument(ctx, doc); err != nil {
		s.LogError(ctx, err, "Failed to save document", slog.String("counterparty_id", counterpartyID))
		s.discardFile(ctx, ref.Key)
		return nil, err
	}

	s.Metrics.IncrementRecordsCreated(kindDocument)
	s.Metrics.ObserveUpload(kindDocument, file.Size)
	s.LogInfo(ctx, "Document uploaded",
		slog.String("document_id", doc.DocumentID),
		slog.String("counterparty_id", counterpartyID),
		slog.Int64("size", file.Size))
	return &doc, nil
}

func (s *documentService) UpdateDocument(ctx context.Context, documentID string, req dto.UpdateDocumentRequest, actor domain.Actor) (*domain.Document, error) {
	doc, err := s.GetDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeMutation(ctx, actor, doc, kindDocument, documentID); err != nil {
		return nil, err
	}

	if req.DocumentTypeID != nil {
		doc.DocumentTypeID = *req.DocumentTypeID
	}
	if req.Category != nil {
		doc.Category = domain.DocumentCategory(*req.Category)
	}
	if req.Description != nil {
		doc.Description = strings.TrimSpace(*req.Description)
	}
	if req.IssueDate != nil {
		doc.IssueDate = normalizeDate(req.IssueDate)
	}
	if req.ExpiryDate != nil {
		doc.ExpiryDate = normalizeDate(req.ExpiryDate)
	}

	docType, err := s.documentType(ctx, doc.DocumentTypeID)
	if err != nil {
		return nil, err
	}
	if err := doc.Validate(*docType); err != nil {
		return nil, err
	}

	doc.Touch(actor.UserID, s.Now())
	if err := s.documentRepo.UpdateDocument(ctx, *doc); err != nil {
		s.LogError(ctx, err, "Failed to update document", slog.String("document_id", documentID))
		return nil, err
	}
	return doc, nil
}

// DeactivateDocument soft-deletes the record. The stored file is kept for audit.
func (s *documentService) DeactivateDocument(ctx context.Context, documentID string, actor domain.Actor) error {
	doc, err := s.GetDocument(ctx, documentID)
	if err != nil {
		return err
	}
	if err := s.AuthorizeMutation(ctx, actor, doc, kindDocument, documentID); err != nil {
		return err
	}

	now := s.Now()
	doc.Deactivate(actor.UserID, now)
	doc.Touch(actor.UserID, now)
	if err := s.documentRepo.UpdateDocument(ctx, *doc); err != nil {
		s.LogError(ctx, err, "Failed to deactivate document", slog.String("document_id", documentID))
		return err
	}
	s.Metrics.IncrementRecordsRemoved(kindDocument)
	return nil
}

func (s *documentService) GetDocument(ctx context.Context, documentID string) (*domain.Document, error) {
	doc, err := s.documentRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get document", slog.String("document_id", documentID))
		}
		return nil, err
	}
	return doc, nil
}

func (s *documentService) ListDocuments(ctx context.Context, counterpartyID string, vis domain.Visibility) ([]domain.Document, error) {
	docs, err := s.documentRepo.ListDocuments(ctx, counterpartyID, vis)
	if err != nil {
		s.LogError(ctx, err, "Failed to list documents", slog.String("counterparty_id", counterpartyID))
		return nil, err
	}
	return domain.FilterActive(docs, vis), nil
}

func (s *documentService) GroupedDocuments(ctx context.Context, counterpartyID string) ([]domain.DocumentGroup, error) {
	docs, err := s.ListDocuments(ctx, counterpartyID, domain.ActiveOnly)
	if err != nil {
		return nil, err
	}
	groups := domain.GroupDocuments(docs)
	if groups == nil {
		return []domain.DocumentGroup{}, nil
	}
	return groups, nil
}

func (s *documentService) DownloadURL(ctx context.Context, documentID string) (*dto.DownloadURLResponse, error) {
	doc, err := s.GetDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}
	url, err := s.blobs.URL(ctx, doc.File.Key, s.downloadTTL)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign download link", slog.String("document_id", documentID))
		return nil, err
	}
	return &dto.DownloadURLResponse{URL: url, ExpiresAt: s.Now().Add(s.downloadTTL)}, nil
}

func (s *documentService) documentType(ctx context.Context, typeID string) (*domain.DocumentType, error) {
	t, err := s.refRepo.FindDocumentType(ctx, typeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError("documentTypeID", "does not exist")
		}
		return nil, err
	}
	return t, nil
}

func (s *documentService) storeFile(ctx context.Context, prefix, id string, file dto.FileUpload) (domain.BlobRef, error) {
	return storeUpload(ctx, &s.BaseService, s.blobs, prefix, id, file)
}

func (s *documentService) discardFile(ctx context.Context, key string) {
	if err := s.blobs.Delete(ctx, key); err != nil {
		s.LogError(ctx, err, "Failed to remove orphaned file", slog.String("key", key))
	}
}

// storeUpload writes file under prefix/id plus its lower-cased extension.
func storeUpload(ctx context.Context, base *BaseService, blobs storage.BlobStore, prefix, id string, file dto.FileUpload) (domain.BlobRef, error) {
	key := fmt.Sprintf("%s/%s%s", prefix, id, strings.ToLower(filepath.Ext(file.FileName)))
	stored, err := blobs.Put(ctx, storage.Object{
		Key:         key,
		Body:        file.Body,
		Size:        file.Size,
		ContentType: file.ContentType,
	})
	if err != nil {
		base.LogError(ctx, err, "Failed to store file", slog.String("key", key))
		return domain.BlobRef{}, fmt.Errorf("failed to store file: %w", err)
	}
	return domain.BlobRef{
		Key:         stored,
		FileName:    filepath.Base(file.FileName),
		Size:        file.Size,
		ContentType: file.ContentType,
	}, nil
}
