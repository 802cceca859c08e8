package mapping

import (
	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	"github.com/SscSPs/counterparty_portal/internal/models"
)

// ToModelAuditFields converts a domain AuditFields to a model AuditFields
func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
		LastUpdatedAt: d.LastUpdatedAt,
		LastUpdatedBy: d.LastUpdatedBy,
	}
}

// ToDomainAuditFields converts a model AuditFields to a domain AuditFields
func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
		LastUpdatedAt: m.LastUpdatedAt,
		LastUpdatedBy: m.LastUpdatedBy,
	}
}

// ToModelSoftDelete converts the domain soft deletion state.
func ToModelSoftDelete(d domain.SoftDelete) models.SoftDelete {
	return models.SoftDelete{
		IsActive:      d.Active,
		DeactivatedAt: d.DeactivatedAt,
		DeactivatedBy: d.DeactivatedBy,
	}
}

// ToDomainSoftDelete converts the model soft deletion columns.
func ToDomainSoftDelete(m models.SoftDelete) domain.SoftDelete {
	return domain.SoftDelete{
		Active:        m.IsActive,
		DeactivatedAt: m.DeactivatedAt,
		DeactivatedBy: m.DeactivatedBy,
	}
}

// ToModelBlob converts an optional file reference to nullable columns.
func ToModelBlob(ref *domain.BlobRef) models.BlobColumns {
	if ref == nil {
		return models.BlobColumns{}
	}
	return models.BlobColumns{
		FileKey:         &ref.Key,
		FileName:        &ref.FileName,
		FileSize:        &ref.Size,
		FileContentType: &ref.ContentType,
	}
}

// ToDomainBlob returns nil when no file is stored.
func ToDomainBlob(m models.BlobColumns) *domain.BlobRef {
	if m.FileKey == nil || *m.FileKey == "" {
		return nil
	}
	ref := &domain.BlobRef{Key: *m.FileKey}
	if m.FileName != nil {
		ref.FileName = *m.FileName
	}
	if m.FileSize != nil {
		ref.Size = *m.FileSize
	}
	if m.FileContentType != nil {
		ref.ContentType = *m.FileContentType
	}
	return ref
}

// mapSlice converts every element with fn.
func mapSlice[M any, D any](ms []M, fn func(M) D) []D {
	ds := make([]D, len(ms))
	for i, m := range ms {
		ds[i] = fn(m)
	}
	return ds
}
