package dto

import (
	"time"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
)

// CreateMemberRequest defines the data needed to add a member to a counterparty.
type CreateMemberRequest struct {
	PersonType           string     `json:"personType" binding:"required,oneof=natural juridical"`
	FullName             string     `json:"fullName" binding:"required,max=255"`
	IdentificationNumber string     `json:"identificationNumber" binding:"required,max=50"`
	Nationality          string     `json:"nationality" binding:"max=100"`
	BirthDate            *time.Time `json:"birthDate" binding:"omitempty,notfuture"`
	Category             string     `json:"category" binding:"required,oneof=shareholder executive ultimate_beneficial_owner board_of_director"`
	IsPEP                bool       `json:"isPEP"`
	PEPPosition          string     `json:"pepPosition" binding:"max=255"`
}

// UpdateMemberRequest defines the updatable member fields.
type UpdateMemberRequest struct {
	PersonType           *string    `json:"personType" binding:"omitempty,oneof=natural juridical"`
	FullName             *string    `json:"fullName" binding:"omitempty,max=255"`
	IdentificationNumber *string    `json:"identificationNumber" binding:"omitempty,max=50"`
	Nationality          *string    `json:"nationality"`
	BirthDate            *time.Time `json:"birthDate" binding:"omitempty,notfuture"`
	Category             *string    `json:"category" binding:"omitempty,oneof=shareholder executive ultimate_beneficial_owner board_of_director"`
	IsPEP                *bool      `json:"isPEP"`
	PEPPosition          *string    `json:"pepPosition"`
}

// MemberResponse defines the data returned for a member.
type MemberResponse struct {
	domain.Member
	Age *int `json:"age,omitempty"`
}

// ToMemberResponse converts a domain.Member to its DTO.
func ToMemberResponse(m *domain.Member, now time.Time) MemberResponse {
	return MemberResponse{Member: *m, Age: m.Age(now)}
}

// ToListMemberResponse converts a slice of members.
func ToListMemberResponse(members []domain.Member, now time.Time) []MemberResponse {
	res := make([]MemberResponse, len(members))
	for i := range members {
		res[i] = ToMemberResponse(&members[i], now)
	}
	return res
}

// ListParams selects whether soft-deleted rows are returned.
type ListParams struct {
	IncludeInactive bool `form:"includeInactive"`
}

// Visibility maps the query flag to a domain.Visibility.
func (p ListParams) Visibility() domain.Visibility {
	if p.IncludeInactive {
		return domain.IncludeInactive
	}
	return domain.ActiveOnly
}
