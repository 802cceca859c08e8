package mapping

import (
	"time"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	"github.com/SscSPs/counterparty_portal/internal/core/lifecycle"
	"github.com/SscSPs/counterparty_portal/internal/models"
)

// ToModelNotification converts a domain Notification; CreatedDay is the UTC calendar day of creation.
func ToModelNotification(d domain.Notification) models.Notification {
	return models.Notification{
		NotificationID: d.NotificationID,
		RecipientID:    d.RecipientID,
		Kind:           string(d.Kind),
		Priority:       string(d.Priority),
		Title:          d.Title,
		Message:        d.Message,
		SubjectID:      d.SubjectID,
		CounterpartyID: d.CounterpartyID,
		MemberID:       d.MemberID,
		DueDiligenceID: d.DueDiligenceID,
		Read:           d.Read,
		ReadAt:         d.ReadAt,
		CreatedAt:      d.CreatedAt,
		CreatedDay:     lifecycle.Date(d.CreatedAt),
	}
}

func ToDomainNotification(m models.Notification) domain.Notification {
	return domain.Notification{
		NotificationID: m.NotificationID,
		RecipientID:    m.RecipientID,
		Kind:           domain.NotificationKind(m.Kind),
		Priority:       domain.NotificationPriority(m.Priority),
		Title:          m.Title,
		Message:        m.Message,
		SubjectID:      m.SubjectID,
		CounterpartyID: m.CounterpartyID,
		MemberID:       m.MemberID,
		DueDiligenceID: m.DueDiligenceID,
		Read:           m.Read,
		ReadAt:         m.ReadAt,
		CreatedAt:      m.CreatedAt.UTC(),
	}
}

func ToDomainNotificationSlice(ms []models.Notification) []domain.Notification {
	return mapSlice(ms, ToDomainNotification)
}

func ToModelNotificationSettings(d domain.NotificationSettings) models.NotificationSettings {
	return models.NotificationSettings{
		UserID:               d.UserID,
		NotifyDueDiligence:   d.NotifyDueDiligence,
		NotifyDocumentExpiry: d.NotifyDocumentExpiry,
		NotifyMatches:        d.NotifyMatches,
		NotifyApprovals:      d.NotifyApprovals,
		DDWarningDays:        int32(d.DDWarningDays),
		LastUpdatedAt:        d.LastUpdatedAt,
	}
}

func ToDomainNotificationSettings(m models.NotificationSettings) domain.NotificationSettings {
	return domain.NotificationSettings{
		UserID:               m.UserID,
		NotifyDueDiligence:   m.NotifyDueDiligence,
		NotifyDocumentExpiry: m.NotifyDocumentExpiry,
		NotifyMatches:        m.NotifyMatches,
		NotifyApprovals:      m.NotifyApprovals,
		DDWarningDays:        int(m.DDWarningDays),
		LastUpdatedAt:        m.LastUpdatedAt.UTC(),
	}
}

// ToModelDueDiligence converts a domain DueDiligence to a model DueDiligence
func ToModelDueDiligence(d domain.DueDiligence) models.DueDiligence {
	m := models.DueDiligence{
		DueDiligenceID:    d.DueDiligenceID,
		MemberID:          d.MemberID,
		CounterpartyID:    d.CounterpartyID,
		State:             string(d.State),
		ExternalRequestID: d.ExternalRequestID,
		ResultAt:          d.ResultAt,
		Summary:           d.Summary,
		PositiveMatches:   int32(d.PositiveMatches),
		AnalystComments:   d.AnalystComments,
		Approved:          d.Approved,
		ApprovedBy:        d.ApprovedBy,
		ApprovedAt:        d.ApprovedAt,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
	if d.RiskLevel != nil {
		level := string(*d.RiskLevel)
		m.RiskLevel = &level
	}
	return m
}

// ToDomainDueDiligence converts a model DueDiligence to a domain DueDiligence
func ToDomainDueDiligence(m models.DueDiligence) domain.DueDiligence {
	d := domain.DueDiligence{
		DueDiligenceID:    m.DueDiligenceID,
		MemberID:          m.MemberID,
		CounterpartyID:    m.CounterpartyID,
		State:             domain.DueDiligenceState(m.State),
		ExternalRequestID: m.ExternalRequestID,
		ResultAt:          m.ResultAt,
		Summary:           m.Summary,
		PositiveMatches:   int(m.PositiveMatches),
		AnalystComments:   m.AnalystComments,
		Approved:          m.Approved,
		ApprovedBy:        m.ApprovedBy,
		ApprovedAt:        m.ApprovedAt,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
	if m.RiskLevel != nil {
		level := domain.RiskLevel(*m.RiskLevel)
		d.RiskLevel = &level
	}
	return d
}

func ToDomainDueDiligenceSlice(ms []models.DueDiligence) []domain.DueDiligence {
	return mapSlice(ms, ToDomainDueDiligence)
}

// utcPtr normalises a nullable DATE column to UTC.
func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
