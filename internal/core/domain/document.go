package domain

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/SscSPs/counterparty_portal/internal/apperrors"
	"github.com/SscSPs/counterparty_portal/internal/core/lifecycle"
)

// DocumentType is an admin-managed kind of document. Types flagged with
// RequiresExpiration force issue and expiry dates on their documents.
type DocumentType struct {
	TypeID             string `json:"typeID"`
	Code               string `json:"code"`
	Name               string `json:"name"`
	Description        string `json:"description,omitempty"`
	RequiresExpiration bool   `json:"requiresExpiration"`
	IsActive           bool   `json:"isActive"`
	AuditFields
}

// DocumentCategory groups documents on the counterparty profile.
type DocumentCategory string

const (
	DocCategoryGeneralFinancial DocumentCategory = "general_financial"
	DocCategoryCorporate        DocumentCategory = "corporate"
	DocCategoryCompliance       DocumentCategory = "compliance"
	DocCategoryOwnership        DocumentCategory = "ownership"
	DocCategoryRegulatory       DocumentCategory = "regulatory"
	DocCategoryOther            DocumentCategory = "other"
)

// Valid reports whether c is a known category.
func (c DocumentCategory) Valid() bool {
	switch c {
	case DocCategoryGeneralFinancial, DocCategoryCorporate, DocCategoryCompliance,
		DocCategoryOwnership, DocCategoryRegulatory, DocCategoryOther:
		return true
	}
	return false
}

// BlobRef points at a stored file.
type BlobRef struct {
	Key         string `json:"key"`
	FileName    string `json:"fileName"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType,omitempty"`
}

// Document is a file attached to a counterparty.
type Document struct {
	DocumentID     string           `json:"documentID"`
	CounterpartyID string           `json:"counterpartyID"`
	DocumentTypeID string           `json:"documentTypeID"`
	Category       DocumentCategory `json:"category"`
	Description    string           `json:"description,omitempty"`
	File           BlobRef          `json:"file"`
	IssueDate      *time.Time       `json:"issueDate,omitempty"`
	ExpiryDate     *time.Time       `json:"expiryDate,omitempty"`
	SoftDelete
	AuditFields
}

// UploadedBy returns the uploader.
func (d Document) UploadedBy() string {
	return d.CreatedBy
}

// Validate checks the document against its type.
func (d Document) Validate(docType DocumentType) error {
	v := &apperrors.ValidationError{}
	if d.CounterpartyID == "" {
		v.Add("counterpartyID", "is required")
	}
	if !d.Category.Valid() {
		v.Add("category", "is not a known document category")
	}
	if !docType.IsActive {
		v.Add("documentTypeID", "refers to an inactive document type")
	}
	if docType.RequiresExpiration {
		if d.IssueDate == nil {
			v.Add("issueDate", "is required for this document type")
		}
		if d.ExpiryDate == nil {
			v.Add("expiryDate", "is required for this document type")
		}
	}
	if d.IssueDate != nil && d.ExpiryDate != nil && !lifecycle.Date(*d.IssueDate).Before(lifecycle.Date(*d.ExpiryDate)) {
		v.Add("expiryDate", "must be after the issue date")
	}
	return v.OrNil()
}

// DaysToExpiry returns the days until expiry, or nil for documents that never expire.
func (d Document) DaysToExpiry(now time.Time) *int {
	if d.ExpiryDate == nil {
		return nil
	}
	days := lifecycle.DaysUntil(*d.ExpiryDate, now)
	return &days
}

// IsExpired reports whether the expiry date has passed.
func (d Document) IsExpired(now time.Time) bool {
	days := d.DaysToExpiry(now)
	return days != nil && lifecycle.IsExpired(*days)
}

// ExpiringSoon reports whether expiry falls within the warning window.
func (d Document) ExpiringSoon(now time.Time) bool {
	days := d.DaysToExpiry(now)
	return days != nil && lifecycle.ExpiringSoon(*days)
}

// ExpiryStatus is the derived expiry position of a document.
type ExpiryStatus struct {
	DocumentID   string           `json:"documentID"`
	ExpiryDate   *time.Time       `json:"expiryDate,omitempty"`
	DaysToExpiry *int             `json:"daysToExpiry,omitempty"`
	Status       lifecycle.Status `json:"status,omitempty"`
	Expired      bool             `json:"expired"`
	ExpiringSoon bool             `json:"expiringSoon"`
}

// Expiry computes the expiry status as of now.
func (d Document) Expiry(now time.Time) ExpiryStatus {
	s := ExpiryStatus{DocumentID: d.DocumentID, ExpiryDate: d.ExpiryDate}
	if days := d.DaysToExpiry(now); days != nil {
		s.DaysToExpiry = days
		s.Status = lifecycle.StatusFor(*days)
		s.Expired = lifecycle.IsExpired(*days)
		s.ExpiringSoon = lifecycle.ExpiringSoon(*days)
	}
	return s
}

// DocumentGroup is the documents of one category.
type DocumentGroup struct {
	Category  DocumentCategory `json:"category"`
	Documents []Document       `json:"documents"`
}

// GroupDocuments groups by category, keeping first-seen category order.
// Callers pass documents sorted by category then newest first.
func GroupDocuments(docs []Document) []DocumentGroup {
	var groups []DocumentGroup
	index := map[DocumentCategory]int{}
	for _, d := range docs {
		i, ok := index[d.Category]
		if !ok {
			i = len(groups)
			index[d.Category] = i
			groups = append(groups, DocumentGroup{Category: d.Category})
		}
		groups[i].Documents = append(groups[i].Documents, d)
	}
	return groups
}

const (
	StandardUploadLimit int64 = 10 << 20
	BulkUploadLimit     int64 = 50 << 20
)

// AllowedUploadExtensions lists the accepted file extensions, lower case without dot.
var AllowedUploadExtensions = []string{"pdf", "doc", "docx", "xls", "xlsx", "txt", "jpg", "jpeg", "png"}

// UploadPolicy bounds accepted files.
type UploadPolicy struct {
	MaxBytes          int64
	AllowedExtensions []string
}

// StandardUploadPolicy applies to single document and rating uploads.
func StandardUploadPolicy() UploadPolicy {
	return UploadPolicy{MaxBytes: StandardUploadLimit, AllowedExtensions: AllowedUploadExtensions}
}

// BulkUploadPolicy applies to the bulk upload path.
func BulkUploadPolicy() UploadPolicy {
	return UploadPolicy{MaxBytes: BulkUploadLimit, AllowedExtensions: AllowedUploadExtensions}
}

// Check validates a file name and size. Problems are reported on field "file".
func (p UploadPolicy) Check(fileName string, size int64) error {
	v := &apperrors.ValidationError{}
	if strings.TrimSpace(fileName) == "" {
		v.Add("file", "is required")
		return v
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(fileName)), ".")
	allowed := false
	for _, a := range p.AllowedExtensions {
		if a == ext {
			allowed = true
			break
		}
	}
	if !allowed {
		v.Add("file", fmt.Sprintf("extension %q is not allowed; accepted: %s", ext, strings.Join(p.AllowedExtensions, ", ")))
	}
	if size <= 0 {
		v.Add("file", "is empty")
	}
	if size > p.MaxBytes {
		v.Add("file", fmt.Sprintf("exceeds the maximum size of %d MB", p.MaxBytes>>20))
	}
	return v.OrNil()
}
