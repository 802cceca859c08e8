package dto

import (
	"time"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	"github.com/SscSPs/counterparty_portal/internal/core/lifecycle"
)

// CreateCounterpartyRequest defines the data needed to register a counterparty.
type CreateCounterpartyRequest struct {
	FullCompanyName                  string     `json:"fullCompanyName" binding:"required,max=255"`
	TradingName                      string     `json:"tradingName" binding:"max=255"`
	CompanyWebsite                   string     `json:"companyWebsite" binding:"omitempty,url"`
	HomeRegulatoryBody               string     `json:"homeRegulatoryBody" binding:"max=255"`
	IsLicensedByRegulatoryBody       *bool      `json:"isLicensedByRegulatoryBody"`
	IsPubliclyListed                 *bool      `json:"isPubliclyListed"`
	PubliclyListedCountry            string     `json:"publiclyListedCountry" binding:"max=100"`
	IsHoldingCompany                 *bool      `json:"isHoldingCompany"`
	ExternalAuditors                 string     `json:"externalAuditors" binding:"max=255"`
	RegisteredAddress                string     `json:"registeredAddress"`
	BusinessAddress                  string     `json:"businessAddress"`
	ContactTelephone                 string     `json:"contactTelephone" binding:"max=50"`
	ContactEmail                     string     `json:"contactEmail" binding:"omitempty,email"`
	CompanyNatureBusiness            string     `json:"companyNatureBusiness"`
	Domicile                         string     `json:"domicile" binding:"max=255"`
	CompanyIncorporationRegistration string     `json:"companyIncorporationRegistration" binding:"max=255"`
	DateIncorporation                *time.Time `json:"dateIncorporation" binding:"omitempty,notfuture"`
	NumberOfEmployees                *int       `json:"numberOfEmployees" binding:"omitempty,min=0"`
	TypeID                           string     `json:"typeID" binding:"required"`

	// StatusID defaults to the configured initial status when empty.
	StatusID             string     `json:"statusID"`
	NextDueDiligenceDate *time.Time `json:"nextDueDiligenceDate"`
	Description          string     `json:"description"`
	Notes                string     `json:"notes"`
}

// UpdateCounterpartyRequest defines the updatable counterparty fields.
// Omitted fields keep their value.
type UpdateCounterpartyRequest struct {
	FullCompanyName                  *string    `json:"fullCompanyName" binding:"omitempty,max=255"`
	TradingName                      *string    `json:"tradingName" binding:"omitempty,max=255"`
	CompanyWebsite                   *string    `json:"companyWebsite" binding:"omitempty,url"`
	HomeRegulatoryBody               *string    `json:"homeRegulatoryBody"`
	IsLicensedByRegulatoryBody       *bool      `json:"isLicensedByRegulatoryBody"`
	IsPubliclyListed                 *bool      `json:"isPubliclyListed"`
	PubliclyListedCountry            *string    `json:"publiclyListedCountry"`
	IsHoldingCompany                 *bool      `json:"isHoldingCompany"`
	ExternalAuditors                 *string    `json:"externalAuditors"`
	RegisteredAddress                *string    `json:"registeredAddress"`
	BusinessAddress                  *string    `json:"businessAddress"`
	ContactTelephone                 *string    `json:"contactTelephone"`
	ContactEmail                     *string    `json:"contactEmail" binding:"omitempty,email"`
	CompanyNatureBusiness            *string    `json:"companyNatureBusiness"`
	Domicile                         *string    `json:"domicile"`
	CompanyIncorporationRegistration *string    `json:"companyIncorporationRegistration"`
	DateIncorporation                *time.Time `json:"dateIncorporation" binding:"omitempty,notfuture"`
	NumberOfEmployees                *int       `json:"numberOfEmployees" binding:"omitempty,min=0"`
	TypeID                           *string    `json:"typeID"`
	StatusID                         *string    `json:"statusID"`
	NextDueDiligenceDate             *time.Time `json:"nextDueDiligenceDate"`
	Description                      *string    `json:"description"`
	Notes                            *string    `json:"notes"`
}

// ListCounterpartiesParams defines query parameters for listing counterparties.
type ListCounterpartiesParams struct {
	Search        string `form:"search"`
	TypeID        string `form:"typeID"`
	StatusID      string `form:"statusID"`
	DueWithinDays *int   `form:"dueWithinDays" binding:"omitempty,min=0"`
	Limit         int    `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken     string `form:"nextToken"`
}

// CounterpartyResponse defines the data returned for a counterparty.
type CounterpartyResponse struct {
	domain.Counterparty
	Renewal domain.RenewalStatus `json:"renewal"`
}

// ToCounterpartyResponse converts a domain.Counterparty to its DTO, with the
// renewal position computed as of now.
func ToCounterpartyResponse(c *domain.Counterparty, now time.Time) CounterpartyResponse {
	return CounterpartyResponse{
		Counterparty: *c,
		Renewal:      c.Renewal(now),
	}
}

// ListCounterpartiesResponse is one page of counterparties.
type ListCounterpartiesResponse struct {
	Counterparties []CounterpartyResponse `json:"counterparties"`
	NextToken      string                 `json:"nextToken,omitempty"`
}

// ToListCounterpartiesResponse converts a page of counterparties.
func ToListCounterpartiesResponse(items []domain.Counterparty, nextToken string, now time.Time) ListCounterpartiesResponse {
	res := ListCounterpartiesResponse{
		Counterparties: make([]CounterpartyResponse, len(items)),
		NextToken:      nextToken,
	}
	for i := range items {
		res.Counterparties[i] = ToCounterpartyResponse(&items[i], now)
	}
	return res
}

// RenewalListParams selects counterparties due within a window.
type RenewalListParams struct {
	WithinDays int `form:"withinDays,default=30" binding:"min=0,max=3650"`
}

// RenewalStatusResponse exposes the lifecycle status of one counterparty.
type RenewalStatusResponse struct {
	CounterpartyID       string           `json:"counterpartyID"`
	NextDueDiligenceDate time.Time        `json:"nextDueDiligenceDate"`
	DaysRemaining        int              `json:"daysRemaining"`
	Status               lifecycle.Status `json:"status"`
	RequiresAttention    bool             `json:"requiresAttention"`
}

// ToRenewalStatusResponse converts a domain.RenewalStatus.
func ToRenewalStatusResponse(r domain.RenewalStatus) RenewalStatusResponse {
	return RenewalStatusResponse{
		CounterpartyID:       r.CounterpartyID,
		NextDueDiligenceDate: r.NextDueDiligenceDate,
		DaysRemaining:        r.DaysRemaining,
		Status:               r.Status,
		RequiresAttention:    r.DaysRemaining <= lifecycle.WarningWindowDays,
	}
}
