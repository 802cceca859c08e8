package domain

import (
	"time"

	"github.com/SscSPs/counterparty_portal/internal/core/lifecycle"
)

// DueDiligenceState is the progress of a screening request.
type DueDiligenceState string

const (
	DDPending    DueDiligenceState = "pending"
	DDInProgress DueDiligenceState = "in_progress"
	DDCompleted  DueDiligenceState = "completed"
	DDFailed     DueDiligenceState = "failed"
	DDCancelled  DueDiligenceState = "cancelled"
)

// Valid reports whether s is a known state.
func (s DueDiligenceState) Valid() bool {
	switch s {
	case DDPending, DDInProgress, DDCompleted, DDFailed, DDCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further results are expected.
func (s DueDiligenceState) Terminal() bool {
	return s == DDCompleted || s == DDFailed || s == DDCancelled
}

// RiskLevel is the outcome classification of a screening.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Valid reports whether r is a known level.
func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh, RiskCritical:
		return true
	}
	return false
}

// DueDiligence is a screening request for one member.
type DueDiligence struct {
	DueDiligenceID    string            `json:"dueDiligenceID"`
	MemberID          string            `json:"memberID"`
	CounterpartyID    string            `json:"counterpartyID"`
	State             DueDiligenceState `json:"state"`
	ExternalRequestID string            `json:"externalRequestID,omitempty"`
	ResultAt          *time.Time        `json:"resultAt,omitempty"`
	RiskLevel         *RiskLevel        `json:"riskLevel,omitempty"`
	Summary           string            `json:"summary,omitempty"`
	PositiveMatches   int               `json:"positiveMatches"`
	AnalystComments   string            `json:"analystComments,omitempty"`
	Approved          *bool             `json:"approved,omitempty"`
	ApprovedBy        *string           `json:"approvedBy,omitempty"`
	ApprovedAt        *time.Time        `json:"approvedAt,omitempty"`
	AuditFields
}

// RequestedBy returns the user who opened the request.
func (d DueDiligence) RequestedBy() string {
	return d.CreatedBy
}

// ApplyResult moves the request to state and stamps the first completion time.
func (d *DueDiligence) ApplyResult(state DueDiligenceState, at time.Time) {
	d.State = state
	if (state == DDCompleted || state == DDFailed) && d.ResultAt == nil {
		d.ResultAt = &at
	}
}

// Decide records an approval decision.
func (d *DueDiligence) Decide(approved bool, userID, comments string, at time.Time) {
	d.Approved = &approved
	d.ApprovedBy = &userID
	d.ApprovedAt = &at
	if comments != "" {
		d.AnalystComments = comments
	}
}

// DurationDays is the number of days from request to result, or nil while open.
func (d DueDiligence) DurationDays() *int {
	if d.ResultAt == nil {
		return nil
	}
	days := lifecycle.DaysUntil(*d.ResultAt, d.CreatedAt)
	return &days
}

// DueDiligenceResult is the payload delivered by the screening provider webhook.
type DueDiligenceResult struct {
	DueDiligenceID    string
	ExternalRequestID string
	State             DueDiligenceState
	RiskLevel         *RiskLevel
	Summary           string
	PositiveMatches   int
}
