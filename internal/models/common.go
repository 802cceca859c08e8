package models

import "time"

// AuditFields holds the audit columns shared by every table.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	CreatedBy     string    `db:"created_by"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
	LastUpdatedBy string    `db:"last_updated_by"`
}

// SoftDelete holds the soft deletion columns.
type SoftDelete struct {
	IsActive      bool       `db:"is_active"`
	DeactivatedAt *time.Time `db:"deactivated_at"`
	DeactivatedBy *string    `db:"deactivated_by"`
}

// BlobColumns holds the columns describing a stored file.
type BlobColumns struct {
	FileKey         *string `db:"file_key"`
	FileName        *string `db:"file_name"`
	FileSize        *int64  `db:"file_size"`
	FileContentType *string `db:"file_content_type"`
}
