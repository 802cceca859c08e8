package models

import "time"

// Notification is a row of notifications.
type Notification struct {
	NotificationID string     `db:"notification_id"`
	RecipientID    string     `db:"recipient_id"`
	Kind           string     `db:"kind"`
	Priority       string     `db:"priority"`
	Title          string     `db:"title"`
	Message        string     `db:"message"`
	SubjectID      string     `db:"subject_id"`
	CounterpartyID *string    `db:"counterparty_id"`
	MemberID       *string    `db:"member_id"`
	DueDiligenceID *string    `db:"due_diligence_id"`
	Read           bool       `db:"read"`
	ReadAt         *time.Time `db:"read_at"`
	CreatedAt      time.Time  `db:"created_at"`
	CreatedDay     time.Time  `db:"created_day"`
}

// NotificationSettings is a row of notification_settings.
type NotificationSettings struct {
	UserID               string    `db:"user_id"`
	NotifyDueDiligence   bool      `db:"notify_due_diligence"`
	NotifyDocumentExpiry bool      `db:"notify_document_expiry"`
	NotifyMatches        bool      `db:"notify_matches"`
	NotifyApprovals      bool      `db:"notify_approvals"`
	DDWarningDays        int32     `db:"dd_warning_days"`
	LastUpdatedAt        time.Time `db:"last_updated_at"`
}

// DueDiligence is a row of due_diligences.
type DueDiligence struct {
	DueDiligenceID    string     `db:"due_diligence_id"`
	MemberID          string     `db:"member_id"`
	CounterpartyID    string     `db:"counterparty_id"`
	State             string     `db:"state"`
	ExternalRequestID string     `db:"external_request_id"`
	ResultAt          *time.Time `db:"result_at"`
	RiskLevel         *string    `db:"risk_level"`
	Summary           string     `db:"summary"`
	PositiveMatches   int32      `db:"positive_matches"`
	AnalystComments   string     `db:"analyst_comments"`
	Approved          *bool      `db:"approved"`
	ApprovedBy        *string    `db:"approved_by"`
	ApprovedAt        *time.Time `db:"approved_at"`
	AuditFields
}
