package domain

import "time"

// NotificationKind identifies what a notification is about.
type NotificationKind string

const (
	NotifyDueDiligenceSoon    NotificationKind = "dd_due_soon"
	NotifyDueDiligenceOverdue NotificationKind = "dd_overdue"
	NotifyDocumentExpiring    NotificationKind = "document_expiring"
	NotifyDocumentExpired     NotificationKind = "document_expired"
	NotifyDueDiligenceDone    NotificationKind = "dd_completed"
	NotifyDueDiligenceFailed  NotificationKind = "dd_failed"
	NotifyMatchFound          NotificationKind = "match_found"
	NotifyReviewRequired      NotificationKind = "review_required"
	NotifyApprovalPending     NotificationKind = "approval_pending"
	NotifySystem              NotificationKind = "system"
	NotifyReminder            NotificationKind = "reminder"
)

// NotificationPriority orders notifications for display.
type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "low"
	PriorityNormal NotificationPriority = "normal"
	PriorityHigh   NotificationPriority = "high"
	PriorityUrgent NotificationPriority = "urgent"
)

// Notification is an in-app message for one recipient.
type Notification struct {
	NotificationID string               `json:"notificationID"`
	RecipientID    string               `json:"recipientID"`
	Kind           NotificationKind     `json:"kind"`
	Priority       NotificationPriority `json:"priority"`
	Title          string               `json:"title"`
	Message        string               `json:"message"`

	// SubjectID is the record the notification refers to; together with
	// recipient, kind and day it identifies a reminder.
	SubjectID      string     `json:"subjectID,omitempty"`
	CounterpartyID *string    `json:"counterpartyID,omitempty"`
	MemberID       *string    `json:"memberID,omitempty"`
	DueDiligenceID *string    `json:"dueDiligenceID,omitempty"`
	Read           bool       `json:"read"`
	ReadAt         *time.Time `json:"readAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// MarkRead flags the notification read. It is idempotent.
func (n *Notification) MarkRead(at time.Time) {
	if n.Read {
		return
	}
	n.Read = true
	n.ReadAt = &at
}

// MaxDDWarningDays is the widest due-diligence warning window a user may choose.
const MaxDDWarningDays = 365

// NotificationSettings holds per-user notification preferences.
type NotificationSettings struct {
	UserID               string    `json:"userID"`
	NotifyDueDiligence   bool      `json:"notifyDueDiligence"`
	NotifyDocumentExpiry bool      `json:"notifyDocumentExpiry"`
	NotifyMatches        bool      `json:"notifyMatches"`
	NotifyApprovals      bool      `json:"notifyApprovals"`
	DDWarningDays        int       `json:"ddWarningDays"`
	LastUpdatedAt        time.Time `json:"lastUpdatedAt"`
}

// DefaultNotificationSettings returns settings for a user who never saved any.
func DefaultNotificationSettings(userID string) NotificationSettings {
	return NotificationSettings{
		UserID:               userID,
		NotifyDueDiligence:   true,
		NotifyDocumentExpiry: true,
		NotifyMatches:        true,
		NotifyApprovals:      true,
		DDWarningDays:        30,
	}
}

// Wants reports whether the user accepts notifications of kind.
func (s NotificationSettings) Wants(kind NotificationKind) bool {
	switch kind {
	case NotifyDueDiligenceSoon, NotifyDueDiligenceOverdue:
		return s.NotifyDueDiligence
	case NotifyDocumentExpiring, NotifyDocumentExpired:
		return s.NotifyDocumentExpiry
	case NotifyMatchFound:
		return s.NotifyMatches
	case NotifyApprovalPending, NotifyReviewRequired:
		return s.NotifyApprovals
	}
	return true
}

// ReminderReport summarises one reminder sweep.
type ReminderReport struct {
	DocumentsScanned      int                      `json:"documentsScanned"`
	CounterpartiesScanned int                      `json:"counterpartiesScanned"`
	Sent                  map[NotificationKind]int `json:"sent"`

	// Skipped counts reminders already sent today or muted by user settings.
	Skipped int `json:"skipped"`
}

// Total returns the number of notifications created.
func (r ReminderReport) Total() int {
	total := 0
	for _, n := range r.Sent {
		total += n
	}
	return total
}
