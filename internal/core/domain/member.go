package domain

import (
	"strings"
	"time"

	"github.com/SscSPs/counterparty_portal/internal/apperrors"
)

// PersonType distinguishes individuals from legal entities.
type PersonType string

const (
	PersonNatural   PersonType = "natural"
	PersonJuridical PersonType = "juridical"
)

// MemberCategory is the role a member holds in the counterparty.
type MemberCategory string

const (
	MemberShareholder             MemberCategory = "shareholder"
	MemberExecutive               MemberCategory = "executive"
	MemberUltimateBeneficialOwner MemberCategory = "ultimate_beneficial_owner"
	MemberBoardOfDirector         MemberCategory = "board_of_director"
)

// Valid reports whether c is a known category.
func (c MemberCategory) Valid() bool {
	switch c {
	case MemberShareholder, MemberExecutive, MemberUltimateBeneficialOwner, MemberBoardOfDirector:
		return true
	}
	return false
}

// Member is a person or entity associated with a counterparty.
// IdentificationNumber is unique per counterparty.
type Member struct {
	MemberID             string         `json:"memberID"`
	CounterpartyID       string         `json:"counterpartyID"`
	PersonType           PersonType     `json:"personType"`
	FullName             string         `json:"fullName"`
	IdentificationNumber string         `json:"identificationNumber"`
	Nationality          string         `json:"nationality,omitempty"`
	BirthDate            *time.Time     `json:"birthDate,omitempty"`
	Category             MemberCategory `json:"category"`
	IsPEP                bool           `json:"isPEP"`
	PEPPosition          string         `json:"pepPosition,omitempty"`
	SoftDelete
	AuditFields
}

// Validate checks required fields and the PEP rule.
func (m Member) Validate(now time.Time) error {
	v := &apperrors.ValidationError{}
	if m.CounterpartyID == "" {
		v.Add("counterpartyID", "is required")
	}
	if strings.TrimSpace(m.FullName) == "" {
		v.Add("fullName", "is required")
	}
	if strings.TrimSpace(m.IdentificationNumber) == "" {
		v.Add("identificationNumber", "is required")
	}
	switch m.PersonType {
	case PersonNatural, PersonJuridical:
	default:
		v.Add("personType", "must be natural or juridical")
	}
	if !m.Category.Valid() {
		v.Add("category", "must be one of shareholder, executive, ultimate_beneficial_owner, board_of_director")
	}
	if m.BirthDate != nil && m.BirthDate.After(now) {
		v.Add("birthDate", "must not be in the future")
	}
	if m.IsPEP && strings.TrimSpace(m.PEPPosition) == "" {
		v.Add("pepPosition", "is required when the member is a politically exposed person")
	}
	return v.OrNil()
}

// Age returns full years since BirthDate, or nil when unknown.
func (m Member) Age(now time.Time) *int {
	if m.BirthDate == nil {
		return nil
	}
	b := *m.BirthDate
	age := now.Year() - b.Year()
	if now.Month() < b.Month() || (now.Month() == b.Month() && now.Day() < b.Day()) {
		age--
	}
	return &age
}
