package models

// CounterpartyType is a row of counterparty_types.
type CounterpartyType struct {
	TypeID      string `db:"type_id"`
	Code        string `db:"code"`
	Name        string `db:"name"`
	Description string `db:"description"`
	IsActive    bool   `db:"is_active"`
	AuditFields
}

// CounterpartyStatus is a row of counterparty_statuses.
type CounterpartyStatus struct {
	StatusID    string `db:"status_id"`
	Code        string `db:"code"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Color       string `db:"color"`
	IsActive    bool   `db:"is_active"`
	AuditFields
}

// DocumentType is a row of document_types.
type DocumentType struct {
	TypeID             string `db:"type_id"`
	Code               string `db:"code"`
	Name               string `db:"name"`
	Description        string `db:"description"`
	RequiresExpiration bool   `db:"requires_expiration"`
	IsActive           bool   `db:"is_active"`
	AuditFields
}

// Rater is a row of raters.
type Rater struct {
	RaterID  string `db:"rater_id"`
	Name     string `db:"name"`
	IsActive bool   `db:"is_active"`
	AuditFields
}

// Outlook is a row of outlooks.
type Outlook struct {
	OutlookID string `db:"outlook_id"`
	Name      string `db:"name"`
	IsActive  bool   `db:"is_active"`
	AuditFields
}
