package domain

import (
	"strings"
	"time"

	"github.com/SscSPs/counterparty_portal/internal/apperrors"
)

// Rater is a rating agency.
type Rater struct {
	RaterID  string `json:"raterID"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
	AuditFields
}

// Outlook is a rating outlook (stable, positive, negative...).
type Outlook struct {
	OutlookID string `json:"outlookID"`
	Name      string `json:"name"`
	IsActive  bool   `json:"isActive"`
	AuditFields
}

// RatingScope tells whether a rating is on a national or international scale.
type RatingScope string

const (
	ScopeNational      RatingScope = "national"
	ScopeInternational RatingScope = "international"
)

// Valid reports whether s is a known scope.
func (s RatingScope) Valid() bool {
	return s == ScopeNational || s == ScopeInternational
}

// Rating is a credit rating issued for a counterparty.
type Rating struct {
	RatingID       string      `json:"ratingID"`
	CounterpartyID string      `json:"counterpartyID"`
	RaterID        string      `json:"raterID"`
	OutlookID      string      `json:"outlookID"`
	Rating         string      `json:"rating"`
	Scope          RatingScope `json:"scope"`
	RatingDate     time.Time   `json:"ratingDate"`
	SupportingFile *BlobRef    `json:"supportingFile,omitempty"`
	SoftDelete
	AuditFields
}

func (r Rating) Validate(now time.Time) error {
	v := &apperrors.ValidationError{}
	if r.CounterpartyID == "" {
		v.Add("counterpartyID", "is required")
	}
	if r.RaterID == "" {
		v.Add("raterID", "is required")
	}
	if r.OutlookID == "" {
		v.Add("outlookID", "is required")
	}
	if strings.TrimSpace(r.Rating) == "" {
		v.Add("rating", "is required")
	}
	if !r.Scope.Valid() {
		v.Add("scope", "must be national or international")
	}
	if r.RatingDate.IsZero() {
		v.Add("ratingDate", "is required")
	} else if r.RatingDate.After(now) {
		v.Add("ratingDate", "must not be in the future")
	}
	return v.OrNil()
}
