package domain

import (
	"net/mail"
	"strings"
	"time"

	"github.com/SscSPs/counterparty_portal/internal/apperrors"
	"github.com/SscSPs/counterparty_portal/internal/core/lifecycle"
)

// CounterpartyType is an admin-managed classification (insurer, reinsurer, broker...).
type CounterpartyType struct {
	TypeID      string `json:"typeID"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"isActive"`
	AuditFields
}

// CounterpartyStatus is an admin-managed workflow state with a display colour.
type CounterpartyStatus struct {
	StatusID    string `json:"statusID"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color"`
	IsActive    bool   `json:"isActive"`
	AuditFields
}

// Counterparty is a corporate entity the business transacts with.
type Counterparty struct {
	CounterpartyID                   string     `json:"counterpartyID"`
	FullCompanyName                  string     `json:"fullCompanyName"`
	TradingName                      string     `json:"tradingName,omitempty"`
	CompanyWebsite                   string     `json:"companyWebsite,omitempty"`
	HomeRegulatoryBody               string     `json:"homeRegulatoryBody,omitempty"`
	IsLicensedByRegulatoryBody       *bool      `json:"isLicensedByRegulatoryBody,omitempty"`
	IsPubliclyListed                 *bool      `json:"isPubliclyListed,omitempty"`
	PubliclyListedCountry            string     `json:"publiclyListedCountry,omitempty"`
	IsHoldingCompany                 *bool      `json:"isHoldingCompany,omitempty"`
	ExternalAuditors                 string     `json:"externalAuditors,omitempty"`
	RegisteredAddress                string     `json:"registeredAddress,omitempty"`
	BusinessAddress                  string     `json:"businessAddress,omitempty"`
	ContactTelephone                 string     `json:"contactTelephone,omitempty"`
	ContactEmail                     string     `json:"contactEmail,omitempty"`
	CompanyNatureBusiness            string     `json:"companyNatureBusiness,omitempty"`
	Domicile                         string     `json:"domicile,omitempty"`
	CompanyIncorporationRegistration string     `json:"companyIncorporationRegistration,omitempty"`
	DateIncorporation                *time.Time `json:"dateIncorporation,omitempty"`
	NumberOfEmployees                *int       `json:"numberOfEmployees,omitempty"`
	TypeID                           string     `json:"typeID"`
	StatusID                         string     `json:"statusID"`
	NextDueDiligenceDate             time.Time  `json:"nextDueDiligenceDate"`
	Description                      string     `json:"description,omitempty"`
	Notes                            string     `json:"notes,omitempty"`
	AuditFields
}

// ApplyDefaults fills the next due-diligence date when unset.
func (c *Counterparty) ApplyDefaults(now time.Time) {
	if c.NextDueDiligenceDate.IsZero() {
		c.NextDueDiligenceDate = lifecycle.NextDueDiligence(now)
	}
}

// Validate checks required fields and simple formats.
func (c Counterparty) Validate() error {
	v := &apperrors.ValidationError{}
	if strings.TrimSpace(c.FullCompanyName) == "" {
		v.Add("fullCompanyName", "is required")
	}
	if c.TypeID == "" {
		v.Add("typeID", "is required")
	}
	if c.StatusID == "" {
		v.Add("statusID", "is required")
	}
	if c.ContactEmail != "" {
		if _, err := mail.ParseAddress(c.ContactEmail); err != nil {
			v.Add("contactEmail", "is not a valid e-mail address")
		}
	}
	if c.IsPubliclyListed != nil && *c.IsPubliclyListed && c.PubliclyListedCountry == "" {
		v.Add("publiclyListedCountry", "is required for publicly listed companies")
	}
	if c.NumberOfEmployees != nil && *c.NumberOfEmployees < 0 {
		v.Add("numberOfEmployees", "must not be negative")
	}
	return v.OrNil()
}

// DaysUntilDueDiligence returns the days remaining until the next review.
func (c Counterparty) DaysUntilDueDiligence(now time.Time) int {
	return lifecycle.DaysUntil(c.NextDueDiligenceDate, now)
}

// DueDiligenceStatus classifies the next review date.
func (c Counterparty) DueDiligenceStatus(now time.Time) lifecycle.Status {
	return lifecycle.StatusFor(c.DaysUntilDueDiligence(now))
}

// RequiresDueDiligenceSoon reports whether the next review is at most a window away.
func (c Counterparty) RequiresDueDiligenceSoon(now time.Time) bool {
	return c.DaysUntilDueDiligence(now) <= lifecycle.WarningWindowDays
}

// RenewalStatus is the derived due-diligence position of a counterparty.
type RenewalStatus struct {
	CounterpartyID       string           `json:"counterpartyID"`
	NextDueDiligenceDate time.Time        `json:"nextDueDiligenceDate"`
	DaysRemaining        int              `json:"daysRemaining"`
	Status               lifecycle.Status `json:"status"`
}

// Renewal computes the renewal status as of now.
func (c Counterparty) Renewal(now time.Time) RenewalStatus {
	days := c.DaysUntilDueDiligence(now)
	return RenewalStatus{
		CounterpartyID:       c.CounterpartyID,
		NextDueDiligenceDate: c.NextDueDiligenceDate,
		DaysRemaining:        days,
		Status:               lifecycle.StatusFor(days),
	}
}

// CounterpartyFilter narrows counterparty listings.
type CounterpartyFilter struct {
	Search   string
	TypeID   string
	StatusID string
	// DueBefore restricts to counterparties whose next review is on or before this date.
	DueBefore *time.Time
}
