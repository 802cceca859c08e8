package dto

import (
	"io"
	"time"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
)

// UploadDocumentRequest holds the form fields sent with a document upload.
type UploadDocumentRequest struct {
	DocumentTypeID string     `form:"documentTypeID" binding:"required"`
	Category       string     `form:"category" binding:"required,oneof=general_financial corporate compliance ownership regulatory other"`
	Description    string     `form:"description" binding:"max=1000"`
	IssueDate      *time.Time `form:"issueDate" time_format:"2006-01-02"`
	ExpiryDate     *time.Time `form:"expiryDate" time_format:"2006-01-02"`
}

// UpdateDocumentRequest changes document metadata. The file itself is immutable.
type UpdateDocumentRequest struct {
	DocumentTypeID *string    `json:"documentTypeID"`
	Category       *string    `json:"category" binding:"omitempty,oneof=general_financial corporate compliance ownership regulatory other"`
	Description    *string    `json:"description" binding:"omitempty,max=1000"`
	IssueDate      *time.Time `json:"issueDate"`
	ExpiryDate     *time.Time `json:"expiryDate"`
}

// FileUpload is an uploaded file handed from the transport to the services.
type FileUpload struct {
	FileName    string
	Size        int64
	ContentType string
	Body        io.Reader
}

// DocumentResponse defines the data returned for a document.
type DocumentResponse struct {
	domain.Document
	Expiry domain.ExpiryStatus `json:"expiry"`
}

// ToDocumentResponse converts a domain.Document to its DTO.
func ToDocumentResponse(d *domain.Document, now time.Time) DocumentResponse {
	return DocumentResponse{Document: *d, Expiry: d.Expiry(now)}
}

// ToListDocumentResponse converts a slice of documents.
func ToListDocumentResponse(docs []domain.Document, now time.Time) []DocumentResponse {
	res := make([]DocumentResponse, len(docs))
	for i := range docs {
		res[i] = ToDocumentResponse(&docs[i], now)
	}
	return res
}

// DocumentGroupResponse is the documents of one category.
type DocumentGroupResponse struct {
	Category  string             `json:"category"`
	Documents []DocumentResponse `json:"documents"`
}

// ToDocumentGroupsResponse converts grouped documents.
func ToDocumentGroupsResponse(groups []domain.DocumentGroup, now time.Time) []DocumentGroupResponse {
	res := make([]DocumentGroupResponse, len(groups))
	for i, g := range groups {
		res[i] = DocumentGroupResponse{
			Category:  string(g.Category),
			Documents: ToListDocumentResponse(g.Documents, now),
		}
	}
	return res
}

// DownloadURLResponse carries a time-limited download link.
type DownloadURLResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// BulkUploadResponse reports the outcome of a multi-file upload. Files are
// stored independently; Failed maps file names to the reason they were refused.
type BulkUploadResponse struct {
	Documents []DocumentResponse       `json:"documents"`
	Failed    map[string]ErrorResponse `json:"failed,omitempty"`
}
